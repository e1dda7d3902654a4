package lifecycle

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

// Plain add and delete operations. These mutate single entities; the
// cross-entity transitions live in engine.go and maintenance.go.

// AddVehicle registers a new vehicle. The license plate must be unique
// among non-retired vehicles.
func (e *Engine) AddVehicle(v models.Vehicle) (models.Vehicle, error) {
	err := e.store.Update(func(tx *store.Tx) error {
		for _, other := range tx.Vehicles() {
			if other.Status == models.VehicleRetired {
				continue
			}
			if strings.EqualFold(other.LicensePlate, v.LicensePlate) {
				return fmt.Errorf("%w: %s on vehicle %s", ErrDuplicatePlate, other.LicensePlate, other.Name)
			}
		}
		v.ID = e.newID()
		if v.Status == "" {
			v.Status = models.VehicleAvailable
		}
		tx.PutVehicle(v)
		return nil
	})
	if err != nil {
		log.WithField("license_plate", v.LicensePlate).WithError(err).Warn("vehicle add rejected")
		return models.Vehicle{}, err
	}
	log.WithFields(log.Fields{"vehicle_id": v.ID, "name": v.Name}).Info("vehicle added")
	return v, nil
}

// AddDriver registers a new driver.
func (e *Engine) AddDriver(d models.Driver) (models.Driver, error) {
	err := e.store.Update(func(tx *store.Tx) error {
		d.ID = e.newID()
		if d.Status == "" {
			d.Status = models.DriverAvailable
		}
		tx.PutDriver(d)
		return nil
	})
	if err != nil {
		return models.Driver{}, err
	}
	log.WithFields(log.Fields{"driver_id": d.ID, "name": d.Name}).Info("driver added")
	return d, nil
}

// AddFuelLog records a fuel purchase.
func (e *Engine) AddFuelLog(f models.FuelLog) (models.FuelLog, error) {
	err := e.store.Update(func(tx *store.Tx) error {
		f.ID = e.newID()
		tx.PutFuelLog(f)
		return nil
	})
	if err != nil {
		return models.FuelLog{}, err
	}
	log.WithFields(log.Fields{"fuel_log_id": f.ID, "vehicle_id": f.VehicleID}).Info("fuel log added")
	return f, nil
}

// AddExpense records an expense.
func (e *Engine) AddExpense(x models.Expense) (models.Expense, error) {
	err := e.store.Update(func(tx *store.Tx) error {
		x.ID = e.newID()
		tx.PutExpense(x)
		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}
	log.WithFields(log.Fields{"expense_id": x.ID, "vehicle_id": x.VehicleID}).Info("expense added")
	return x, nil
}

// DeleteVehicle removes a vehicle unconditionally. Dependent trips and
// logs are not cascaded; readers tolerate the orphaned references.
func (e *Engine) DeleteVehicle(id string) error {
	err := e.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Vehicle(id); !ok {
			return fmt.Errorf("%w: vehicle %q", ErrEntityNotFound, id)
		}
		tx.DeleteVehicle(id)
		return nil
	})
	if err != nil {
		return err
	}
	log.WithField("vehicle_id", id).Info("vehicle deleted")
	return nil
}

// DeleteDriver removes a driver unconditionally.
func (e *Engine) DeleteDriver(id string) error {
	err := e.store.Update(func(tx *store.Tx) error {
		if _, ok := tx.Driver(id); !ok {
			return fmt.Errorf("%w: driver %q", ErrEntityNotFound, id)
		}
		tx.DeleteDriver(id)
		return nil
	})
	if err != nil {
		return err
	}
	log.WithField("driver_id", id).Info("driver deleted")
	return nil
}
