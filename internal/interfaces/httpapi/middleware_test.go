package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-league/internal/domain/session"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

type stubVerifier struct {
	principal session.Principal
	err       error
}

func (s stubVerifier) Verify(_ context.Context, _ string) (session.Principal, error) {
	return s.principal, s.err
}

type fixedIDs struct {
	id  string
	err error
}

func (f fixedIDs) NewID() (string, error) {
	return f.id, f.err
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	var seen session.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = principalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	verifier := stubVerifier{principal: session.Principal{PlayerID: 9, Email: "nine@league.example"}}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", want: http.StatusUnauthorized},
		{name: "valid", header: "bearer good-token", want: http.StatusNoContent},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		RequireAuth(verifier, next).ServeHTTP(rec, req)
		if rec.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, rec.Code)
		}
	}
	if seen.PlayerID != 9 {
		t.Fatalf("expected principal in context, got %+v", seen)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer expired")
	RequireAuth(stubVerifier{err: errors.New("token expired")}, next).ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("verifier errors without a kind map to 500, got %d", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = logging.RequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID(fixedIDs{id: "generated-1"}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leagues", nil))
	if seen != "generated-1" || rec.Header().Get(requestIDHeader) != "generated-1" {
		t.Fatalf("expected generated id, got ctx=%q header=%q", seen, rec.Header().Get(requestIDHeader))
	}

	req := httptest.NewRequest(http.MethodGet, "/leagues", nil)
	req.Header.Set(requestIDHeader, "upstream-7")
	rec = httptest.NewRecorder()
	RequestID(fixedIDs{id: "generated-2"}, next).ServeHTTP(rec, req)
	if seen != "upstream-7" {
		t.Fatalf("expected inbound id to be kept, got %q", seen)
	}

	rec = httptest.NewRecorder()
	RequestID(fixedIDs{err: errors.New("entropy exhausted")}, next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leagues", nil))
	if seen != "" || rec.Header().Get(requestIDHeader) != "" {
		t.Fatalf("expected no id when generation fails, got %q", seen)
	}
}

func TestRecoverPanic(t *testing.T) {
	t.Parallel()

	h := recoverPanic(logging.NewNop(), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))
	rec, body := doRequest(t, h, http.MethodGet, "/leagues", "", "")
	expectError(t, rec, body, http.StatusInternalServerError, "internal", "")
}

func TestRequestTimeout(t *testing.T) {
	t.Parallel()

	var deadline time.Time
	var hasDeadline bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		deadline, hasDeadline = r.Context().Deadline()
	})

	RequestTimeout(time.Second, next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/leagues", nil))
	if !hasDeadline || time.Until(deadline) > time.Second {
		t.Fatalf("expected request deadline within a second, got %v (%v)", deadline, hasDeadline)
	}

	RequestTimeout(0, next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/leagues", nil))
	if hasDeadline {
		t.Fatalf("zero timeout must not set a deadline")
	}
}

func TestRequestLogging_CapturesStatus(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	inner := &statusRecorder{ResponseWriter: rec}
	inner.WriteHeader(http.StatusTeapot)
	inner.WriteHeader(http.StatusOK)
	_, _ = inner.Write([]byte("tea"))
	if inner.status != http.StatusTeapot || inner.bytes != 3 {
		t.Fatalf("unexpected recorder state: status=%d bytes=%d", inner.status, inner.bytes)
	}

	h := RequestLogging(logging.NewNop(), http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leagues", nil))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected status to pass through, got %d", rec.Code)
	}
}

func TestResolveClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/leagues", nil)
	req.RemoteAddr = "10.0.0.5:5555"
	if got := resolveClientIP(req.Context(), req); got != "10.0.0.5" {
		t.Fatalf("expected remote addr, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := resolveClientIP(req.Context(), req); got != "203.0.113.9" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}

	if got := resolveCountryCode(req.Context(), req); got != unknownCountry {
		t.Fatalf("expected unknown country, got %q", got)
	}
	req.Header.Set("CF-IPCountry", "hu")
	if got := resolveCountryCode(req.Context(), req); got != "HU" {
		t.Fatalf("expected HU, got %q", got)
	}
}
