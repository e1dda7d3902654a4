package models

import "time"

// DriverStatus is the closed set of states a driver can be in.
type DriverStatus string

const (
	DriverAvailable DriverStatus = "Available"
	DriverOnDuty    DriverStatus = "On Duty"
	DriverOffDuty   DriverStatus = "Off Duty"
	DriverSuspended DriverStatus = "Suspended"
)

// DriverStatuses lists every driver status in display order.
var DriverStatuses = []DriverStatus{DriverAvailable, DriverOnDuty, DriverOffDuty, DriverSuspended}

// Valid reports whether s is a known driver status.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverAvailable, DriverOnDuty, DriverOffDuty, DriverSuspended:
		return true
	}
	return false
}

// Driver represents a fleet driver.
type Driver struct {
	ID              string       `json:"id" bson:"_id"`
	Name            string       `json:"name" bson:"name"`
	LicenseCategory string       `json:"license_category" bson:"license_category"`
	LicenseExpiry   time.Time    `json:"license_expiry" bson:"license_expiry"`
	Status          DriverStatus `json:"status" bson:"status"`
	Phone           string       `json:"phone" bson:"phone"`
	TotalTrips      int          `json:"total_trips" bson:"total_trips"`
	CompletionRate  float64      `json:"completion_rate" bson:"completion_rate"` // 0-100
	SafetyScore     float64      `json:"safety_score" bson:"safety_score"`       // 0-100
}

// LicenseValidOn reports whether the driver's license is valid on the
// given date. Expiry on the same calendar day still counts as valid.
func (d Driver) LicenseValidOn(date time.Time) bool {
	y, m, day := date.UTC().Date()
	startOfDay := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return !d.LicenseExpiry.Before(startOfDay)
}
