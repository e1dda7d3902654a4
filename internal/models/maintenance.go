package models

import "time"

// MaintenanceType is the closed set of service categories.
type MaintenanceType string

const (
	MaintenanceOilChange    MaintenanceType = "Oil Change"
	MaintenanceTireRotation MaintenanceType = "Tire Rotation"
	MaintenanceBrakeService MaintenanceType = "Brake Service"
	MaintenanceEngineRepair MaintenanceType = "Engine Repair"
	MaintenanceTransmission MaintenanceType = "Transmission"
	MaintenanceInspection   MaintenanceType = "General Inspection"
	MaintenanceBodyWork     MaintenanceType = "Body Work"
)

// Valid reports whether t is a known maintenance type.
func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceOilChange, MaintenanceTireRotation, MaintenanceBrakeService,
		MaintenanceEngineRepair, MaintenanceTransmission, MaintenanceInspection,
		MaintenanceBodyWork:
		return true
	}
	return false
}

// MaintenanceLog represents a vehicle maintenance record. An open log
// (Completed == false) keeps the referenced vehicle in the shop.
type MaintenanceLog struct {
	ID          string          `json:"id" bson:"_id"`
	VehicleID   string          `json:"vehicle_id" bson:"vehicle_id"`
	Type        MaintenanceType `json:"type" bson:"type"`
	Cost        float64         `json:"cost" bson:"cost"`
	Date        time.Time       `json:"date" bson:"date"`
	Description string          `json:"description" bson:"description"`
	Completed   bool            `json:"completed" bson:"completed"`
}
