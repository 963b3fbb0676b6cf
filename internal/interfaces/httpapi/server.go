package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/football-league/internal/platform/id"
	"github.com/riskibarqy/football-league/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	RequestIDs         id.Generator
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.RequestIDs == nil {
		opts.RequestIDs = id.NewUUIDGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, verifier)

	var h http.Handler = mux
	h = RequestTimeout(opts.RequestTimeout, h)
	h = recoverPanic(logger, h)
	h = CORS(opts.CORSAllowedOrigins, h)
	h = RequestLogging(logger, h)
	h = RequestID(opts.RequestIDs, h)
	return RequestTracing(h)
}
