package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/pr-poehali-dev/lordhost-game-server/docs"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	ordershandlers "github.com/pr-poehali-dev/lordhost-game-server/internal/handlers/orders"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/metrics"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/service"
	"github.com/pr-poehali-dev/lordhost-game-server/pkg/utils"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type OrderHandler interface {
	HandleHTTP(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler OrderHandler
	Metrics      *metrics.Metrics
}

func New(s *service.Services, cfg *config.Config, m *metrics.Metrics) *Handlers {
	return &Handlers{
		OrderHandler: ordershandlers.New(s.OrderService, cfg.ExposeErrors),
		Metrics:      m,
	}
}

// InitRoutes mounts the orders endpoint for every method at the root and at
// /api/orders; method dispatch happens inside the handler.
func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.Metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	r.Get("/ping", ping)

	r.HandleFunc("/", h.OrderHandler.HandleHTTP)
	r.HandleFunc("/api/orders", h.OrderHandler.HandleHTTP)

	return r
}

// ping godoc
//
//	@Summary	Liveness probe
//	@Tags		Service
//	@Produce	json
//	@Success	200	{object}	utils.Response
//	@Router		/ping [get]
func ping(w http.ResponseWriter, _ *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Status: "ok"})
}
