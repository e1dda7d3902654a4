// Package export writes store contents as CSV for spreadsheet use.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/ukydev/fleet-ops/internal/reports"
	"github.com/ukydev/fleet-ops/internal/store"
)

const dateLayout = "2006-01-02"

func writeAll(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func stamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// Vehicles writes the vehicle register.
func Vehicles(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "name", "plate", "type", "status", "capacity_kg", "odometer_km", "fuel_type"}
	rows := make([][]string, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		rows = append(rows, []string{
			v.ID, v.Name, v.LicensePlate, string(v.Type), string(v.Status),
			strconv.Itoa(v.Capacity), strconv.Itoa(v.Odometer), string(v.FuelType),
		})
	}
	return writeAll(w, header, rows)
}

// Drivers writes the driver register.
func Drivers(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "name", "license_category", "license_expiry", "status", "phone", "total_trips", "completion_rate", "safety_score"}
	rows := make([][]string, 0, len(snap.Drivers))
	for _, d := range snap.Drivers {
		rows = append(rows, []string{
			d.ID, d.Name, d.LicenseCategory, d.LicenseExpiry.Format(dateLayout), string(d.Status),
			d.Phone, strconv.Itoa(d.TotalTrips),
			strconv.FormatFloat(d.CompletionRate, 'f', 1, 64),
			strconv.FormatFloat(d.SafetyScore, 'f', 1, 64),
		})
	}
	return writeAll(w, header, rows)
}

// Trips writes the trip ledger. Resource names come from the snapshot;
// deleted vehicles and drivers render as Unknown.
func Trips(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "vehicle", "driver", "pickup", "delivery", "cargo_weight_kg", "status", "created_at", "dispatched_at", "completed_at", "distance_km"}
	rows := make([][]string, 0, len(snap.Trips))
	for _, t := range snap.Trips {
		vehicleName := reports.UnknownName
		if v, ok := snap.Vehicle(t.VehicleID); ok {
			vehicleName = v.Name
		}
		driverName := reports.UnknownName
		if d, ok := snap.Driver(t.DriverID); ok {
			driverName = d.Name
		}
		distance := ""
		if t.Distance != nil {
			distance = strconv.Itoa(*t.Distance)
		}
		rows = append(rows, []string{
			t.ID, vehicleName, driverName, t.PickupLocation, t.DeliveryLocation,
			strconv.Itoa(t.CargoWeight), string(t.Status),
			t.CreatedAt.UTC().Format(time.RFC3339), stamp(t.DispatchedAt), stamp(t.CompletedAt),
			distance,
		})
	}
	return writeAll(w, header, rows)
}

// Maintenance writes the maintenance log.
func Maintenance(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "vehicle_id", "type", "date", "cost", "description", "completed"}
	rows := make([][]string, 0, len(snap.MaintenanceLogs))
	for _, m := range snap.MaintenanceLogs {
		rows = append(rows, []string{
			m.ID, m.VehicleID, string(m.Type), m.Date.Format(dateLayout),
			money(m.Cost), m.Description, strconv.FormatBool(m.Completed),
		})
	}
	return writeAll(w, header, rows)
}

// FuelLogs writes the refuelling ledger.
func FuelLogs(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "vehicle_id", "date", "liters", "cost", "odometer_at_fill_km"}
	rows := make([][]string, 0, len(snap.FuelLogs))
	for _, f := range snap.FuelLogs {
		rows = append(rows, []string{
			f.ID, f.VehicleID, f.Date.Format(dateLayout),
			strconv.FormatFloat(f.Liters, 'f', 2, 64), money(f.Cost),
			strconv.Itoa(f.OdometerAtFill),
		})
	}
	return writeAll(w, header, rows)
}

// Expenses writes the expense ledger.
func Expenses(w io.Writer, snap store.Snapshot) error {
	header := []string{"id", "vehicle_id", "category", "date", "amount", "description"}
	rows := make([][]string, 0, len(snap.Expenses))
	for _, e := range snap.Expenses {
		rows = append(rows, []string{
			e.ID, e.VehicleID, e.Category, e.Date.Format(dateLayout),
			money(e.Amount), e.Description,
		})
	}
	return writeAll(w, header, rows)
}

// VehicleCosts writes the per-vehicle cost report. Cost per km is
// blank when no completed trip distance exists.
func VehicleCosts(w io.Writer, snap store.Snapshot) error {
	header := []string{"vehicle_id", "vehicle_name", "fuel_cost", "maintenance_cost", "expense_cost", "total_cost", "distance_km", "cost_per_km"}
	costs := reports.VehicleCosts(snap)
	rows := make([][]string, 0, len(costs))
	for _, c := range costs {
		perKm := ""
		if c.CostPerKmDefined {
			perKm = strconv.FormatFloat(c.CostPerKm, 'f', 4, 64)
		}
		rows = append(rows, []string{
			c.VehicleID, c.VehicleName, money(c.FuelCost), money(c.MaintenanceCost),
			money(c.ExpenseCost), money(c.TotalCost), strconv.Itoa(c.DistanceKm), perKm,
		})
	}
	return writeAll(w, header, rows)
}

// View names accepted by Write and the export CLI.
const (
	ViewVehicles     = "vehicles"
	ViewDrivers      = "drivers"
	ViewTrips        = "trips"
	ViewMaintenance  = "maintenance"
	ViewFuel         = "fuel"
	ViewExpenses     = "expenses"
	ViewVehicleCosts = "vehicle-costs"
)

// Views lists every exportable view.
var Views = []string{ViewVehicles, ViewDrivers, ViewTrips, ViewMaintenance, ViewFuel, ViewExpenses, ViewVehicleCosts}

// Write renders the named view to w.
func Write(w io.Writer, view string, snap store.Snapshot) error {
	switch view {
	case ViewVehicles:
		return Vehicles(w, snap)
	case ViewDrivers:
		return Drivers(w, snap)
	case ViewTrips:
		return Trips(w, snap)
	case ViewMaintenance:
		return Maintenance(w, snap)
	case ViewFuel:
		return FuelLogs(w, snap)
	case ViewExpenses:
		return Expenses(w, snap)
	case ViewVehicleCosts:
		return VehicleCosts(w, snap)
	}
	return fmt.Errorf("unknown export view %q", view)
}
