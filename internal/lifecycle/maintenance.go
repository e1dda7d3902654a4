package lifecycle

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

// MaintenanceRequest carries caller input for OpenMaintenance.
type MaintenanceRequest struct {
	VehicleID   string
	Type        models.MaintenanceType
	Cost        float64
	Date        time.Time
	Description string
}

// OpenMaintenance inserts an open maintenance log and moves the vehicle
// into the shop. A vehicle that is Retired, on a trip, or reserved by
// an active trip cannot enter the shop.
func (e *Engine) OpenMaintenance(req MaintenanceRequest) (models.MaintenanceLog, error) {
	var entry models.MaintenanceLog
	err := e.store.Update(func(tx *store.Tx) error {
		vehicle, ok := tx.Vehicle(req.VehicleID)
		if !ok {
			return fmt.Errorf("%w: vehicle %q", ErrEntityNotFound, req.VehicleID)
		}
		if vehicle.Status == models.VehicleRetired {
			return fmt.Errorf("%w: vehicle %s is retired", ErrResourceUnavailable, vehicle.Name)
		}
		if reserved, trip := activeTripFor(tx, req.VehicleID, ""); reserved {
			return fmt.Errorf("%w: vehicle %s is reserved by trip %s", ErrResourceUnavailable, vehicle.Name, trip.ID)
		}

		entry = models.MaintenanceLog{
			ID:          e.newID(),
			VehicleID:   req.VehicleID,
			Type:        req.Type,
			Cost:        req.Cost,
			Date:        req.Date,
			Description: req.Description,
			Completed:   false,
		}
		vehicle.Status = models.VehicleInShop
		tx.PutMaintenanceLog(entry)
		tx.PutVehicle(vehicle)
		return nil
	})
	if err != nil {
		log.WithField("vehicle_id", req.VehicleID).WithError(err).Warn("maintenance open rejected")
		return models.MaintenanceLog{}, err
	}
	log.WithFields(log.Fields{"log_id": entry.ID, "vehicle_id": entry.VehicleID, "type": entry.Type}).
		Info("maintenance opened")
	return entry, nil
}

// CloseMaintenance marks a log completed. The vehicle returns to
// Available only once no other open log references it, and never if it
// has been Retired in the meantime.
func (e *Engine) CloseMaintenance(logID string) (models.MaintenanceLog, error) {
	var entry models.MaintenanceLog
	err := e.store.Update(func(tx *store.Tx) error {
		var ok bool
		entry, ok = tx.MaintenanceLog(logID)
		if !ok {
			return fmt.Errorf("%w: maintenance log %q", ErrEntityNotFound, logID)
		}
		if entry.Completed {
			return fmt.Errorf("%w: maintenance log %s is already completed", ErrInvalidTransition, logID)
		}

		entry.Completed = true
		tx.PutMaintenanceLog(entry)

		vehicle, ok := tx.Vehicle(entry.VehicleID)
		if !ok {
			// Orphaned reference: the vehicle was deleted. Nothing to release.
			return nil
		}
		if vehicle.Status == models.VehicleRetired {
			return nil
		}
		if openMaintenanceFor(tx, entry.VehicleID, entry.ID) {
			return nil
		}
		vehicle.Status = models.VehicleAvailable
		tx.PutVehicle(vehicle)
		return nil
	})
	if err != nil {
		log.WithField("log_id", logID).WithError(err).Warn("maintenance close rejected")
		return models.MaintenanceLog{}, err
	}
	log.WithFields(log.Fields{"log_id": entry.ID, "vehicle_id": entry.VehicleID}).Info("maintenance closed")
	return entry, nil
}
