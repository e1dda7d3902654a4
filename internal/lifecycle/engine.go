// Package lifecycle implements the trip and maintenance lifecycle
// engine: every validated, multi-entity mutation of fleet state goes
// through here as one atomic command.
package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

// Clock supplies the current time. Injectable for deterministic tests.
type Clock func() time.Time

// IDGenerator supplies fresh entity identifiers. Only uniqueness across
// the store's lifetime is required.
type IDGenerator func() string

// Engine orchestrates trip and maintenance transitions. It is the only
// validated writer of vehicle and driver status fields.
type Engine struct {
	store *store.Store
	now   Clock
	newID IDGenerator
}

// NewEngine wires the engine to its store, clock and id generator.
// A nil clock defaults to time.Now; a nil generator to random UUIDs.
func NewEngine(st *store.Store, clock Clock, ids IDGenerator) *Engine {
	if clock == nil {
		clock = time.Now
	}
	if ids == nil {
		ids = uuid.NewString
	}
	return &Engine{store: st, now: clock, newID: ids}
}

// TripRequest carries caller input for CreateTrip.
type TripRequest struct {
	VehicleID        string
	DriverID         string
	CargoWeight      int
	PickupLocation   string
	DeliveryLocation string
}

// CreateTrip validates the request and inserts a Draft trip. A Draft
// trip reserves its vehicle and driver through validation but does not
// change their status fields yet.
func (e *Engine) CreateTrip(req TripRequest) (models.Trip, error) {
	var trip models.Trip
	err := e.store.Update(func(tx *store.Tx) error {
		if err := ValidateTripCreation(tx, req.VehicleID, req.DriverID, req.CargoWeight, e.now()); err != nil {
			return err
		}
		trip = models.Trip{
			ID:               e.newID(),
			VehicleID:        req.VehicleID,
			DriverID:         req.DriverID,
			CargoWeight:      req.CargoWeight,
			PickupLocation:   req.PickupLocation,
			DeliveryLocation: req.DeliveryLocation,
			Status:           models.TripDraft,
			CreatedAt:        e.now(),
		}
		tx.PutTrip(trip)
		return nil
	})
	if err != nil {
		log.WithFields(log.Fields{"vehicle_id": req.VehicleID, "driver_id": req.DriverID}).
			WithError(err).Warn("trip creation rejected")
		return models.Trip{}, err
	}
	log.WithFields(log.Fields{"trip_id": trip.ID, "vehicle_id": trip.VehicleID, "driver_id": trip.DriverID}).
		Info("trip created")
	return trip, nil
}

// Dispatch moves a Draft trip to Dispatched, putting the vehicle on
// trip and the driver on duty.
func (e *Engine) Dispatch(tripID string) (models.Trip, error) {
	var trip models.Trip
	err := e.store.Update(func(tx *store.Tx) error {
		var ok bool
		trip, ok = tx.Trip(tripID)
		if !ok {
			return fmt.Errorf("%w: trip %q", ErrEntityNotFound, tripID)
		}
		if err := ValidateStatusTransition(trip, models.TripDispatched); err != nil {
			return err
		}
		vehicle, ok := tx.Vehicle(trip.VehicleID)
		if !ok {
			return fmt.Errorf("%w: vehicle %q", ErrEntityNotFound, trip.VehicleID)
		}
		driver, ok := tx.Driver(trip.DriverID)
		if !ok {
			return fmt.Errorf("%w: driver %q", ErrEntityNotFound, trip.DriverID)
		}

		now := e.now()
		trip.Status = models.TripDispatched
		trip.DispatchedAt = &now
		trip.OdometerAtDispatch = vehicle.Odometer
		vehicle.Status = models.VehicleOnTrip
		driver.Status = models.DriverOnDuty

		tx.PutTrip(trip)
		tx.PutVehicle(vehicle)
		tx.PutDriver(driver)
		return nil
	})
	if err != nil {
		log.WithField("trip_id", tripID).WithError(err).Warn("dispatch rejected")
		return models.Trip{}, err
	}
	log.WithField("trip_id", tripID).Info("trip dispatched")
	return trip, nil
}

// Complete moves a Dispatched trip to Completed. The final odometer
// must exceed the vehicle's last known reading; the vehicle and driver
// return to Available and the driver's trip counter advances.
func (e *Engine) Complete(tripID string, finalOdometer int) (models.Trip, error) {
	var trip models.Trip
	err := e.store.Update(func(tx *store.Tx) error {
		var ok bool
		trip, ok = tx.Trip(tripID)
		if !ok {
			return fmt.Errorf("%w: trip %q", ErrEntityNotFound, tripID)
		}
		if err := ValidateStatusTransition(trip, models.TripCompleted); err != nil {
			return err
		}
		vehicle, ok := tx.Vehicle(trip.VehicleID)
		if !ok {
			return fmt.Errorf("%w: vehicle %q", ErrEntityNotFound, trip.VehicleID)
		}
		driver, ok := tx.Driver(trip.DriverID)
		if !ok {
			return fmt.Errorf("%w: driver %q", ErrEntityNotFound, trip.DriverID)
		}
		if finalOdometer <= vehicle.Odometer {
			return fmt.Errorf("%w: reading %d, vehicle at %d", ErrInvalidOdometer, finalOdometer, vehicle.Odometer)
		}

		now := e.now()
		trip.Status = models.TripCompleted
		trip.CompletedAt = &now
		trip.FinalOdometer = &finalOdometer
		if trip.OdometerAtDispatch > 0 {
			distance := finalOdometer - trip.OdometerAtDispatch
			trip.Distance = &distance
		}
		vehicle.Status = models.VehicleAvailable
		vehicle.Odometer = finalOdometer
		driver.Status = models.DriverAvailable
		driver.TotalTrips++

		tx.PutTrip(trip)
		tx.PutVehicle(vehicle)
		tx.PutDriver(driver)
		return nil
	})
	if err != nil {
		log.WithField("trip_id", tripID).WithError(err).Warn("completion rejected")
		return models.Trip{}, err
	}
	log.WithFields(log.Fields{"trip_id": tripID, "final_odometer": finalOdometer}).Info("trip completed")
	return trip, nil
}

// Cancel moves a Draft or Dispatched trip to Cancelled. A Dispatched
// trip releases its vehicle and driver; a Draft held no reservation
// beyond validation, so nothing is released.
func (e *Engine) Cancel(tripID string) (models.Trip, error) {
	var trip models.Trip
	err := e.store.Update(func(tx *store.Tx) error {
		var ok bool
		trip, ok = tx.Trip(tripID)
		if !ok {
			return fmt.Errorf("%w: trip %q", ErrEntityNotFound, tripID)
		}
		if err := ValidateStatusTransition(trip, models.TripCancelled); err != nil {
			return err
		}
		wasDispatched := trip.Status == models.TripDispatched
		trip.Status = models.TripCancelled
		tx.PutTrip(trip)
		if wasDispatched {
			releaseResources(tx, trip)
		}
		return nil
	})
	if err != nil {
		log.WithField("trip_id", tripID).WithError(err).Warn("cancellation rejected")
		return models.Trip{}, err
	}
	log.WithField("trip_id", tripID).Info("trip cancelled")
	return trip, nil
}

// DeleteTrip removes a trip from the store. An active trip is cancelled
// first so its reservations are released before removal.
func (e *Engine) DeleteTrip(tripID string) error {
	err := e.store.Update(func(tx *store.Tx) error {
		trip, ok := tx.Trip(tripID)
		if !ok {
			return fmt.Errorf("%w: trip %q", ErrEntityNotFound, tripID)
		}
		if trip.Status == models.TripDispatched {
			releaseResources(tx, trip)
		}
		tx.DeleteTrip(tripID)
		return nil
	})
	if err != nil {
		log.WithField("trip_id", tripID).WithError(err).Warn("trip deletion rejected")
		return err
	}
	log.WithField("trip_id", tripID).Info("trip deleted")
	return nil
}

// releaseResources returns the trip's vehicle and driver to Available.
// Missing references are tolerated: deletes do not cascade, so either
// entity may already be gone. A Retired vehicle stays Retired.
func releaseResources(tx *store.Tx, trip models.Trip) {
	if vehicle, ok := tx.Vehicle(trip.VehicleID); ok && vehicle.Status != models.VehicleRetired {
		vehicle.Status = models.VehicleAvailable
		tx.PutVehicle(vehicle)
	}
	if driver, ok := tx.Driver(trip.DriverID); ok {
		driver.Status = models.DriverAvailable
		tx.PutDriver(driver)
	}
}
