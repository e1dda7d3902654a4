package lifecycle

import (
	"fmt"
	"time"

	"github.com/ukydev/fleet-ops/internal/models"
)

// Reader is the read-only view validation evaluates against,
// satisfied by *store.Tx inside an update. Validation never mutates.
type Reader interface {
	Vehicle(id string) (models.Vehicle, bool)
	Driver(id string) (models.Driver, bool)
	Trips() []models.Trip
	MaintenanceLogs() []models.MaintenanceLog
}

// ValidateTripCreation reports whether a proposed trip is legal given
// current entity state. Checks run in a fixed order so the caller
// always sees the most fundamental failure first.
func ValidateTripCreation(r Reader, vehicleID, driverID string, cargoWeight int, now time.Time) error {
	vehicle, ok := r.Vehicle(vehicleID)
	if !ok {
		return fmt.Errorf("%w: vehicle %q", ErrEntityNotFound, vehicleID)
	}
	driver, ok := r.Driver(driverID)
	if !ok {
		return fmt.Errorf("%w: driver %q", ErrEntityNotFound, driverID)
	}
	if vehicle.Status != models.VehicleAvailable {
		return fmt.Errorf("%w: vehicle %s is %s", ErrResourceUnavailable, vehicle.Name, vehicle.Status)
	}
	if reserved, trip := activeTripFor(r, vehicleID, ""); reserved {
		return fmt.Errorf("%w: vehicle %s is reserved by trip %s", ErrResourceUnavailable, vehicle.Name, trip.ID)
	}
	if driver.Status != models.DriverAvailable {
		return fmt.Errorf("%w: driver %s is %s", ErrResourceUnavailable, driver.Name, driver.Status)
	}
	if reserved, trip := activeTripFor(r, "", driverID); reserved {
		return fmt.Errorf("%w: driver %s is reserved by trip %s", ErrResourceUnavailable, driver.Name, trip.ID)
	}
	if !driver.LicenseValidOn(now) {
		return fmt.Errorf("%w: %s expired %s", ErrLicenseExpired, driver.Name, driver.LicenseExpiry.Format("2006-01-02"))
	}
	if cargoWeight > vehicle.Capacity {
		return fmt.Errorf("%w: cargo %dkg exceeds capacity %dkg", ErrCapacityExceeded, cargoWeight, vehicle.Capacity)
	}
	return nil
}

// ValidateStatusTransition enforces the trip state machine.
func ValidateStatusTransition(trip models.Trip, target models.TripStatus) error {
	if !trip.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: trip %s cannot go from %s to %s", ErrInvalidTransition, trip.ID, trip.Status, target)
	}
	return nil
}

// activeTripFor finds a Draft or Dispatched trip referencing the given
// vehicle or driver. Empty ids match nothing.
func activeTripFor(r Reader, vehicleID, driverID string) (bool, models.Trip) {
	for _, t := range r.Trips() {
		if !t.Active() {
			continue
		}
		if vehicleID != "" && t.VehicleID == vehicleID {
			return true, t
		}
		if driverID != "" && t.DriverID == driverID {
			return true, t
		}
	}
	return false, models.Trip{}
}

// openMaintenanceFor finds an open maintenance log referencing the
// vehicle, skipping the log with id exceptID.
func openMaintenanceFor(r Reader, vehicleID, exceptID string) bool {
	for _, m := range r.MaintenanceLogs() {
		if m.ID != exceptID && m.VehicleID == vehicleID && !m.Completed {
			return true
		}
	}
	return false
}
