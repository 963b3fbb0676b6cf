package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/football-league/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

// flexID accepts an id sent either as a JSON number or as a numeric string.
// null and "" decode to zero, which the use cases treat as missing.
type flexID int64

func (id *flexID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid id %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*id = 0
			return nil
		}
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", raw)
	}
	*id = flexID(value)
	return nil
}

func (id flexID) Int64() int64 {
	return int64(id)
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return invalidRequest(fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
	}
	return nil
}

// pathID parses a numeric path segment. Anything unparsable becomes 0, which
// never matches a stored row.
func pathID(r *http.Request, name string) int64 {
	value, err := strconv.ParseInt(strings.TrimSpace(r.PathValue(name)), 10, 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (h *Handler) validateRequest(ctx context.Context, payload any, message string) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return crerr.WithHint(fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err), message)
	}
	return nil
}

func invalidRequest(err error) error {
	return crerr.WithHint(err, usecase.MsgInvalidRequest)
}
