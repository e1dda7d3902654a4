package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ukydev/fleet-ops/internal/lifecycle"
	"github.com/ukydev/fleet-ops/internal/models"
)

type openMaintenanceRequest struct {
	VehicleID   string    `json:"vehicle_id" validate:"required"`
	Type        string    `json:"type" validate:"required"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
}

func (h *Handler) listMaintenance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.MaintenanceLogs())
}

func (h *Handler) openMaintenance(w http.ResponseWriter, r *http.Request) {
	var req openMaintenanceRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	serviceType := models.MaintenanceType(req.Type)
	if !serviceType.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown maintenance type %q", req.Type))
		return
	}
	logEntry, err := h.engine.OpenMaintenance(lifecycle.MaintenanceRequest{
		VehicleID:   req.VehicleID,
		Type:        serviceType,
		Cost:        req.Cost,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, logEntry)
}

func (h *Handler) closeMaintenance(w http.ResponseWriter, r *http.Request) {
	logEntry, err := h.engine.CloseMaintenance(chi.URLParam(r, "id"))
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logEntry)
}
