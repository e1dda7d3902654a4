package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ukydev/fleet-ops/internal/models"
)

type addVehicleRequest struct {
	Name         string `json:"name" validate:"required"`
	Model        string `json:"model"`
	LicensePlate string `json:"license_plate" validate:"required"`
	Capacity     int    `json:"capacity" validate:"gte=0"`
	Odometer     int    `json:"odometer" validate:"gte=0"`
	Type         string `json:"type"`
	Region       string `json:"region"`
	FuelType     string `json:"fuel_type"`
	Year         int    `json:"year"`
}

type addDriverRequest struct {
	Name            string    `json:"name" validate:"required"`
	LicenseCategory string    `json:"license_category" validate:"required"`
	LicenseExpiry   time.Time `json:"license_expiry" validate:"required"`
	Phone           string    `json:"phone"`
}

type addFuelLogRequest struct {
	VehicleID      string    `json:"vehicle_id" validate:"required"`
	Liters         float64   `json:"liters" validate:"gt=0"`
	Cost           float64   `json:"cost" validate:"gte=0"`
	Date           time.Time `json:"date" validate:"required"`
	OdometerAtFill int       `json:"odometer_at_fill" validate:"gte=0"`
}

type addExpenseRequest struct {
	VehicleID   string    `json:"vehicle_id" validate:"required"`
	Category    string    `json:"category" validate:"required"`
	Amount      float64   `json:"amount" validate:"gte=0"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description"`
}

func (h *Handler) listVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Vehicles())
}

func (h *Handler) addVehicle(w http.ResponseWriter, r *http.Request) {
	var req addVehicleRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	vehicle, err := h.engine.AddVehicle(models.Vehicle{
		Name:         req.Name,
		Model:        req.Model,
		LicensePlate: req.LicensePlate,
		Capacity:     req.Capacity,
		Odometer:     req.Odometer,
		Type:         models.VehicleType(req.Type),
		Region:       req.Region,
		FuelType:     models.FuelType(req.FuelType),
		Year:         req.Year,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

func (h *Handler) deleteVehicle(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.DeleteVehicle(chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDrivers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Drivers())
}

func (h *Handler) addDriver(w http.ResponseWriter, r *http.Request) {
	var req addDriverRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	driver, err := h.engine.AddDriver(models.Driver{
		Name:            req.Name,
		LicenseCategory: req.LicenseCategory,
		LicenseExpiry:   req.LicenseExpiry,
		Phone:           req.Phone,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, driver)
}

func (h *Handler) deleteDriver(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.DeleteDriver(chi.URLParam(r, "id")); err != nil {
		writeEngineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFuelLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.FuelLogs())
}

func (h *Handler) addFuelLog(w http.ResponseWriter, r *http.Request) {
	var req addFuelLogRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	fuel, err := h.engine.AddFuelLog(models.FuelLog{
		VehicleID:      req.VehicleID,
		Liters:         req.Liters,
		Cost:           req.Cost,
		Date:           req.Date,
		OdometerAtFill: req.OdometerAtFill,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fuel)
}

func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Expenses())
}

func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	expense, err := h.engine.AddExpense(models.Expense{
		VehicleID:   req.VehicleID,
		Category:    req.Category,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}
