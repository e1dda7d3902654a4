package models

import "time"

// Expense represents a non-fuel, non-maintenance cost attributed to a
// vehicle (tolls, parking, insurance and so on).
type Expense struct {
	ID          string    `json:"id" bson:"_id"`
	VehicleID   string    `json:"vehicle_id" bson:"vehicle_id"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        time.Time `json:"date" bson:"date"`
	Description string    `json:"description" bson:"description"`
}
