package api

import (
	"log/slog"
	"net/http"

	"github.com/patricktheassistant/cyon-movie-night/metrics"
	"github.com/patricktheassistant/cyon-movie-night/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

func ParseEnvironment(s string) Environment {
	if s == "prod" {
		return PROD
	}

	return LOCAL
}

type API struct {
	service *registration.Service
	logger  *slog.Logger
	env     Environment
	metrics *metrics.Metrics
}

func NewAPI(service *registration.Service, logger *slog.Logger, env Environment, m *metrics.Metrics) *API {
	return &API{
		service: service,
		logger:  logger,
		env:     env,
		metrics: m,
	}
}

// Handler builds the full HTTP surface: routes plus the middleware
// stack. Middlewares are applied innermost-first.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}

	r := http.NewServeMux()
	r.HandleFunc("GET /register", a.getRegister)
	r.HandleFunc("POST /register", a.postRegister)
	r.HandleFunc("GET /health", a.getHealth)

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.loggingMiddleware(),
		a.requestIDMiddleware(),
		a.corsMiddleware(),
	), nil
}

func (a *API) getHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
