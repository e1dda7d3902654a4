package models

import "time"

// TripStatus is the closed set of states a trip moves through.
type TripStatus string

const (
	TripDraft      TripStatus = "Draft"
	TripDispatched TripStatus = "Dispatched"
	TripCompleted  TripStatus = "Completed"
	TripCancelled  TripStatus = "Cancelled"
)

// TripStatuses lists every trip status in display order.
var TripStatuses = []TripStatus{TripDraft, TripDispatched, TripCompleted, TripCancelled}

// tripTransitions is the exhaustive transition table. Completed and
// Cancelled are terminal.
var tripTransitions = map[TripStatus][]TripStatus{
	TripDraft:      {TripDispatched, TripCancelled},
	TripDispatched: {TripCompleted, TripCancelled},
	TripCompleted:  nil,
	TripCancelled:  nil,
}

// Valid reports whether s is a known trip status.
func (s TripStatus) Valid() bool {
	_, ok := tripTransitions[s]
	return ok
}

// Terminal reports whether no transition leaves s.
func (s TripStatus) Terminal() bool {
	return s.Valid() && len(tripTransitions[s]) == 0
}

// CanTransitionTo reports whether target is reachable from s in one step.
func (s TripStatus) CanTransitionTo(target TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Trip represents a cargo trip assigning a vehicle and a driver.
type Trip struct {
	ID                 string     `json:"id" bson:"_id"`
	VehicleID          string     `json:"vehicle_id" bson:"vehicle_id"`
	DriverID           string     `json:"driver_id" bson:"driver_id"`
	CargoWeight        int        `json:"cargo_weight" bson:"cargo_weight"` // kg
	PickupLocation     string     `json:"pickup_location" bson:"pickup_location"`
	DeliveryLocation   string     `json:"delivery_location" bson:"delivery_location"`
	Status             TripStatus `json:"status" bson:"status"`
	CreatedAt          time.Time  `json:"created_at" bson:"created_at"`
	DispatchedAt       *time.Time `json:"dispatched_at,omitempty" bson:"dispatched_at,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	OdometerAtDispatch int        `json:"odometer_at_dispatch,omitempty" bson:"odometer_at_dispatch,omitempty"`
	FinalOdometer      *int       `json:"final_odometer,omitempty" bson:"final_odometer,omitempty"`
	Distance           *int       `json:"distance,omitempty" bson:"distance,omitempty"` // km
}

// Active reports whether the trip holds (or will hold) a resource
// reservation on its vehicle and driver.
func (t Trip) Active() bool {
	return t.Status == TripDraft || t.Status == TripDispatched
}
