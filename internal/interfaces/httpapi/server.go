package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/copa-admin/internal/platform/logging"
)

// RouterOptions toggles the optional surfaces of the API.
type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// LogoDir is served under /logos/ when logos are stored on local disk.
	LogoDir string
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerTeamRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerReportRoutes(mux, handler)
	registerImportRoutes(mux, handler)
	if dir := strings.TrimSpace(opts.LogoDir); dir != "" {
		mux.Handle("GET /logos/", http.StripPrefix("/logos/", http.FileServer(http.Dir(dir))))
	}

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}
