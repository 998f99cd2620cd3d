package http

import (
	"net/http"

	"airport-transfer-board/internal/delivery/http/handler"
	"airport-transfer-board/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	kioskHandler            *handler.KioskHandler
	boardHandler            *handler.BoardHandler
	metricsHandler          http.Handler
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	kioskHandler *handler.KioskHandler,
	boardHandler *handler.BoardHandler,
	metricsHandler http.Handler,
	requestLoggerMiddleware *middleware.RequestLoggerMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		kioskHandler:            kioskHandler,
		boardHandler:            boardHandler,
		metricsHandler:          metricsHandler,
		requestLoggerMiddleware: requestLoggerMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Kiosk screens
	r.router.HandleFunc("/", r.kioskHandler.Page).Methods(http.MethodGet)
	r.router.HandleFunc("/board/table", r.kioskHandler.Table).Methods(http.MethodGet)

	// Screen transitions (form posts)
	r.router.HandleFunc("/search/start", r.kioskHandler.StartSearch).Methods(http.MethodPost)
	r.router.HandleFunc("/search", r.kioskHandler.Search).Methods(http.MethodPost)
	r.router.HandleFunc("/home", r.kioskHandler.Home).Methods(http.MethodPost)
	r.router.HandleFunc("/adventure", r.kioskHandler.Adventure).Methods(http.MethodPost)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Read-only board API
	api.HandleFunc("/board", r.boardHandler.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/datasets/{dataset}/bookings", r.boardHandler.GetDatasetPage).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", r.boardHandler.LookupBooking).Methods(http.MethodGet)

	r.router.Handle("/metrics", r.metricsHandler).Methods(http.MethodGet)

	r.router.Use(r.requestLoggerMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
