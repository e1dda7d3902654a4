package models

// VehicleStatus is the closed set of states a vehicle can be in. The
// lifecycle engine is the only validated writer of this field.
type VehicleStatus string

const (
	VehicleAvailable VehicleStatus = "Available"
	VehicleOnTrip    VehicleStatus = "On Trip"
	VehicleInShop    VehicleStatus = "In Shop"
	VehicleRetired   VehicleStatus = "Retired"
)

// VehicleStatuses lists every vehicle status in display order.
var VehicleStatuses = []VehicleStatus{VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired}

// Valid reports whether s is a known vehicle status.
func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleOnTrip, VehicleInShop, VehicleRetired:
		return true
	}
	return false
}

// VehicleType categorizes a vehicle by body class.
type VehicleType string

const (
	VehicleTruck VehicleType = "Truck"
	VehicleVan   VehicleType = "Van"
	VehicleSedan VehicleType = "Sedan"
	VehicleSUV   VehicleType = "SUV"
)

// FuelType is the fuel a vehicle runs on.
type FuelType string

const (
	FuelDiesel   FuelType = "Diesel"
	FuelGasoline FuelType = "Gasoline"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// Vehicle represents a fleet vehicle.
type Vehicle struct {
	ID           string        `json:"id" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Model        string        `json:"model" bson:"model"`
	LicensePlate string        `json:"license_plate" bson:"license_plate"`
	Capacity     int           `json:"capacity" bson:"capacity"` // kg
	Odometer     int           `json:"odometer" bson:"odometer"` // km, never decreases
	Status       VehicleStatus `json:"status" bson:"status"`
	Type         VehicleType   `json:"type" bson:"type"`
	Region       string        `json:"region" bson:"region"`
	FuelType     FuelType      `json:"fuel_type" bson:"fuel_type"`
	Year         int           `json:"year" bson:"year"`
}
