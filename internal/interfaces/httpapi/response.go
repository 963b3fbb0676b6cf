package httpapi

import (
	"context"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-league/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const msgNotFound = "A keresett elem nem található"

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	// Message is shown when the error carries no localized hint.
	Message string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	_, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = sonic.ConfigDefault.NewEncoder(buf).Encode(errorResponse{Error: usecase.MsgServerError, Reason: "internal"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err)
	message := usecase.Message(err)
	if message == "" || mapped.HTTPStatus >= http.StatusInternalServerError {
		message = mapped.Message
	}

	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{
		Error:  message,
		Reason: mapped.Reason,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Error:  usecase.MsgServerError,
		Reason: "internal",
	})
}

func mapError(ctx context.Context, err error) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	// Marks survive wrapping, so crerr.Is also sees store failures.
	switch {
	case crerr.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalid_input", Message: usecase.MsgInvalidRequest}
	case crerr.Is(err, usecase.ErrDuplicateEmail):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "duplicate_email", Message: usecase.MsgEmailRegistered}
	case crerr.Is(err, usecase.ErrAlreadyOnTeam):
		return mappedError{HTTPStatus: http.StatusBadRequest, Reason: "already_on_team", Message: usecase.MsgPlayerAlreadyMember}
	case crerr.Is(err, usecase.ErrInvalidCredentials):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "invalid_credentials", Message: usecase.MsgInvalidCredentials}
	case crerr.Is(err, usecase.ErrUnauthorized):
		return mappedError{HTTPStatus: http.StatusUnauthorized, Reason: "unauthorized", Message: usecase.MsgUnauthorized}
	case crerr.Is(err, usecase.ErrNotCaptain):
		return mappedError{HTTPStatus: http.StatusForbidden, Reason: "not_captain", Message: usecase.MsgOnlyCaptainRecruits}
	case crerr.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Reason: "not_found", Message: msgNotFound}
	case crerr.Is(err, usecase.ErrStore):
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "store_error", Message: usecase.MsgStoreFailure}
	default:
		return mappedError{HTTPStatus: http.StatusInternalServerError, Reason: "internal", Message: usecase.MsgServerError}
	}
}
