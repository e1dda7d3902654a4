package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ukydev/fleet-ops/internal/lifecycle"
)

type createTripRequest struct {
	VehicleID        string `json:"vehicle_id" validate:"required"`
	DriverID         string `json:"driver_id" validate:"required"`
	CargoWeight      int    `json:"cargo_weight" validate:"gte=0"`
	PickupLocation   string `json:"pickup_location" validate:"required"`
	DeliveryLocation string `json:"delivery_location" validate:"required"`
}

type completeTripRequest struct {
	FinalOdometer int `json:"final_odometer" validate:"required,gt=0"`
}

func (h *Handler) listTrips(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Trips())
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.store.Trip(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, lifecycle.ErrEntityNotFound)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	trip, err := h.engine.CreateTrip(lifecycle.TripRequest{
		VehicleID:        req.VehicleID,
		DriverID:         req.DriverID,
		CargoWeight:      req.CargoWeight,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, trip)
}

func (h *Handler) dispatchTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.engine.Dispatch(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) completeTrip(w http.ResponseWriter, r *http.Request) {
	var req completeTripRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	trip, err := h.engine.Complete(chi.URLParam(r, "id"), req.FinalOdometer)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) cancelTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := h.engine.Cancel(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trip)
}

func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.DeleteTrip(chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
