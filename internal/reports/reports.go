// Package reports derives read-only views from a store snapshot.
// Nothing here mutates state or returns a domain error: empty input
// yields zero values.
package reports

import (
	"time"

	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

// UnknownName is rendered for references to entities that have since
// been deleted. Deletes do not cascade, so orphaned references are
// expected.
const UnknownName = "Unknown"

// VehicleCost is the per-vehicle cost breakdown.
type VehicleCost struct {
	VehicleID       string  `json:"vehicle_id"`
	VehicleName     string  `json:"vehicle_name"`
	FuelCost        float64 `json:"fuel_cost"`
	MaintenanceCost float64 `json:"maintenance_cost"`
	ExpenseCost     float64 `json:"expense_cost"`
	TotalCost       float64 `json:"total_cost"`
	DistanceKm      int     `json:"distance_km"`
	CostPerKm       float64 `json:"cost_per_km"`
	// CostPerKmDefined is false when the vehicle has no completed trip
	// distance to divide by.
	CostPerKmDefined bool `json:"cost_per_km_defined"`
}

// VehicleCosts folds fuel, maintenance and expense records per vehicle.
// Vehicles appear in store order; orphaned references are appended
// after them under the Unknown name.
func VehicleCosts(snap store.Snapshot) []VehicleCost {
	byID := make(map[string]*VehicleCost)
	var order []string

	row := func(vehicleID string) *VehicleCost {
		if r, ok := byID[vehicleID]; ok {
			return r
		}
		r := &VehicleCost{VehicleID: vehicleID, VehicleName: UnknownName}
		byID[vehicleID] = r
		order = append(order, vehicleID)
		return r
	}

	for _, v := range snap.Vehicles {
		r := row(v.ID)
		r.VehicleName = v.Name
	}
	for _, f := range snap.FuelLogs {
		row(f.VehicleID).FuelCost += f.Cost
	}
	for _, m := range snap.MaintenanceLogs {
		row(m.VehicleID).MaintenanceCost += m.Cost
	}
	for _, e := range snap.Expenses {
		row(e.VehicleID).ExpenseCost += e.Amount
	}
	for _, t := range snap.Trips {
		if t.Status == models.TripCompleted && t.Distance != nil {
			row(t.VehicleID).DistanceKm += *t.Distance
		}
	}

	out := make([]VehicleCost, 0, len(order))
	for _, id := range order {
		r := byID[id]
		r.TotalCost = r.FuelCost + r.MaintenanceCost + r.ExpenseCost
		if r.DistanceKm > 0 {
			r.CostPerKm = r.TotalCost / float64(r.DistanceKm)
			r.CostPerKmDefined = true
		}
		out = append(out, *r)
	}
	return out
}

// DriverSummary is the per-driver performance view.
type DriverSummary struct {
	DriverID       string  `json:"driver_id"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	TotalTrips     int     `json:"total_trips"`
	ActiveTrips    int     `json:"active_trips"`
	CompletedTrips int     `json:"completed_trips"`
	CancelledTrips int     `json:"cancelled_trips"`
	CompletionRate float64 `json:"completion_rate"`
	SafetyScore    float64 `json:"safety_score"`
}

// DriverSummaries folds trip records per driver, in store order.
func DriverSummaries(snap store.Snapshot) []DriverSummary {
	out := make([]DriverSummary, 0, len(snap.Drivers))
	for _, d := range snap.Drivers {
		s := DriverSummary{
			DriverID:       d.ID,
			Name:           d.Name,
			Status:         string(d.Status),
			TotalTrips:     d.TotalTrips,
			CompletionRate: d.CompletionRate,
			SafetyScore:    d.SafetyScore,
		}
		for _, t := range snap.Trips {
			if t.DriverID != d.ID {
				continue
			}
			switch {
			case t.Active():
				s.ActiveTrips++
			case t.Status == models.TripCompleted:
				s.CompletedTrips++
			case t.Status == models.TripCancelled:
				s.CancelledTrips++
			}
		}
		out = append(out, s)
	}
	return out
}

// MonthlyFuel is one calendar-month bucket of fuel usage. Buckets fold
// all years together, matching the dashboard chart this view feeds.
type MonthlyFuel struct {
	Month  string  `json:"month"`
	Liters float64 `json:"liters"`
	Cost   float64 `json:"cost"`
}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyFuelTotals buckets fuel logs by calendar month, Jan through
// Dec, irrespective of year.
func MonthlyFuelTotals(snap store.Snapshot) []MonthlyFuel {
	out := make([]MonthlyFuel, 12)
	for i, name := range monthNames {
		out[i].Month = name
	}
	for _, f := range snap.FuelLogs {
		i := int(f.Date.Month()) - int(time.January)
		out[i].Liters += f.Liters
		out[i].Cost += f.Cost
	}
	return out
}

// StatusCount is one bucket of a status histogram.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// VehicleStatusCounts returns the vehicle status histogram in display
// order, including empty buckets.
func VehicleStatusCounts(snap store.Snapshot) []StatusCount {
	out := make([]StatusCount, 0, len(models.VehicleStatuses))
	for _, status := range models.VehicleStatuses {
		n := 0
		for _, v := range snap.Vehicles {
			if v.Status == status {
				n++
			}
		}
		out = append(out, StatusCount{Status: string(status), Count: n})
	}
	return out
}

// TripStatusCounts returns the trip status histogram in display order,
// including empty buckets.
func TripStatusCounts(snap store.Snapshot) []StatusCount {
	out := make([]StatusCount, 0, len(models.TripStatuses))
	for _, status := range models.TripStatuses {
		n := 0
		for _, t := range snap.Trips {
			if t.Status == status {
				n++
			}
		}
		out = append(out, StatusCount{Status: string(status), Count: n})
	}
	return out
}
