package models

import "time"

// FuelLog represents a single fuel purchase for a vehicle.
type FuelLog struct {
	ID             string    `json:"id" bson:"_id"`
	VehicleID      string    `json:"vehicle_id" bson:"vehicle_id"`
	Liters         float64   `json:"liters" bson:"liters"`
	Cost           float64   `json:"cost" bson:"cost"`
	Date           time.Time `json:"date" bson:"date"`
	OdometerAtFill int       `json:"odometer_at_fill" bson:"odometer_at_fill"` // km
}
