// Package handlers exposes the fleet engine over HTTP.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-ops/internal/lifecycle"
	"github.com/ukydev/fleet-ops/internal/middleware"
	"github.com/ukydev/fleet-ops/internal/store"
)

// Handler wires the lifecycle engine and store into HTTP endpoints.
type Handler struct {
	engine   *lifecycle.Engine
	store    *store.Store
	validate *validator.Validate
}

// New builds a Handler around the given engine and store.
func New(engine *lifecycle.Engine, st *store.Store) *Handler {
	return &Handler{
		engine:   engine,
		store:    st,
		validate: validator.New(),
	}
}

// Routes assembles the full router, middleware included.
func (h *Handler) Routes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(middleware.RequestLogger)
	mux.Use(middleware.Recovery)
	mux.Use(middleware.Metrics)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Link", "X-Request-ID"},
		MaxAge:         300,
	}))

	mux.Get("/healthz", h.health)
	mux.Handle("/metrics", promhttp.Handler())

	mux.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", h.listVehicles)
			r.Post("/", h.addVehicle)
			r.Delete("/{id}", h.deleteVehicle)
		})
		r.Route("/drivers", func(r chi.Router) {
			r.Get("/", h.listDrivers)
			r.Post("/", h.addDriver)
			r.Delete("/{id}", h.deleteDriver)
		})
		r.Route("/trips", func(r chi.Router) {
			r.Get("/", h.listTrips)
			r.Post("/", h.createTrip)
			r.Get("/{id}", h.getTrip)
			r.Delete("/{id}", h.deleteTrip)
			r.Post("/{id}/dispatch", h.dispatchTrip)
			r.Post("/{id}/complete", h.completeTrip)
			r.Post("/{id}/cancel", h.cancelTrip)
		})
		r.Route("/maintenance", func(r chi.Router) {
			r.Get("/", h.listMaintenance)
			r.Post("/", h.openMaintenance)
			r.Post("/{id}/close", h.closeMaintenance)
		})
		r.Route("/fuel", func(r chi.Router) {
			r.Get("/", h.listFuelLogs)
			r.Post("/", h.addFuelLog)
		})
		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.listExpenses)
			r.Post("/", h.addExpense)
		})
		r.Route("/reports", func(r chi.Router) {
			r.Get("/vehicle-costs", h.vehicleCosts)
			r.Get("/driver-summaries", h.driverSummaries)
			r.Get("/monthly-fuel", h.monthlyFuel)
			r.Get("/status-counts", h.statusCounts)
		})
		r.Get("/export/{view}", h.exportCSV)
	})

	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeEngineError maps engine rejections onto HTTP statuses. The
// engine's message is surfaced verbatim so callers see the reason.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrEntityNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrResourceUnavailable),
		errors.Is(err, lifecycle.ErrDuplicatePlate):
		writeError(w, http.StatusConflict, err)
	case errors.Is(err, lifecycle.ErrLicenseExpired),
		errors.Is(err, lifecycle.ErrCapacityExceeded),
		errors.Is(err, lifecycle.ErrInvalidOdometer):
		writeError(w, http.StatusUnprocessableEntity, err)
	default:
		writeError(w, http.StatusInternalServerError, err)
	}
}

// decode unmarshals and validates a request body.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return h.validate.Struct(dst)
}
