package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-ops/internal/export"
	"github.com/ukydev/fleet-ops/internal/reports"
)

func (h *Handler) vehicleCosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reports.VehicleCosts(h.store.Snapshot()))
}

func (h *Handler) driverSummaries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reports.DriverSummaries(h.store.Snapshot()))
}

func (h *Handler) monthlyFuel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, reports.MonthlyFuelTotals(h.store.Snapshot()))
}

func (h *Handler) statusCounts(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	writeJSON(w, http.StatusOK, map[string][]reports.StatusCount{
		"vehicles": reports.VehicleStatusCounts(snap),
		"trips":    reports.TripStatusCounts(snap),
	})
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	valid := false
	for _, v := range export.Views {
		if v == view {
			valid = true
			break
		}
	}
	if !valid {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown export view %q", view))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", view))
	if err := export.Write(w, view, h.store.Snapshot()); err != nil {
		log.WithField("view", view).WithError(err).Error("csv export failed")
	}
}
