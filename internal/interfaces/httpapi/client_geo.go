package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
)

const unknownCountry = "ZZ"

// resolveClientIP picks the first parsable address from the proxy headers,
// falling back to the socket peer.
func resolveClientIP(_ context.Context, r *http.Request) string {
	for _, candidate := range []string{
		r.Header.Get("CF-Connecting-IP"),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	} {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}
	return ""
}

func resolveCountryCode(_ context.Context, r *http.Request) string {
	for _, candidate := range []string{
		r.Header.Get("CF-IPCountry"),
		r.Header.Get("CloudFront-Viewer-Country"),
		r.Header.Get("X-Country-Code"),
	} {
		if code := normalizeCountry(candidate); code != "" {
			return code
		}
	}
	return unknownCountry
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if first, _, found := strings.Cut(value, ","); found {
		value = strings.TrimSpace(first)
	}
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

// normalizeCountry accepts ISO 3166-1 alpha-2 codes only.
func normalizeCountry(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 {
		return ""
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}
