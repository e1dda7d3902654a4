package models

import "time"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func stamp(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func intPtr(n int) *int { return &n }

// SeedVehicles returns the demo fleet.
func SeedVehicles() []Vehicle {
	return []Vehicle{
		{ID: "v1", Name: "Atlas Heavy", Model: "Volvo FH16", LicensePlate: "FL-1001", Capacity: 25000, Odometer: 134500, Status: VehicleAvailable, Type: VehicleTruck, Region: "Northeast", FuelType: FuelDiesel, Year: 2022},
		{ID: "v2", Name: "Swift Runner", Model: "Mercedes Sprinter", LicensePlate: "FL-1002", Capacity: 3500, Odometer: 87200, Status: VehicleOnTrip, Type: VehicleVan, Region: "Southeast", FuelType: FuelDiesel, Year: 2023},
		{ID: "v3", Name: "City Glider", Model: "Toyota Camry", LicensePlate: "FL-1003", Capacity: 500, Odometer: 45600, Status: VehicleAvailable, Type: VehicleSedan, Region: "Midwest", FuelType: FuelHybrid, Year: 2024},
		{ID: "v4", Name: "Titan Hauler", Model: "Kenworth T680", LicensePlate: "FL-1004", Capacity: 30000, Odometer: 210300, Status: VehicleInShop, Type: VehicleTruck, Region: "West", FuelType: FuelDiesel, Year: 2021},
		{ID: "v5", Name: "Urban Scout", Model: "Ford Transit", LicensePlate: "FL-1005", Capacity: 4000, Odometer: 62100, Status: VehicleAvailable, Type: VehicleVan, Region: "Northeast", FuelType: FuelGasoline, Year: 2023},
		{ID: "v6", Name: "Eco Cruiser", Model: "Tesla Model Y", LicensePlate: "FL-1006", Capacity: 800, Odometer: 22300, Status: VehicleAvailable, Type: VehicleSUV, Region: "West", FuelType: FuelElectric, Year: 2024},
		{ID: "v7", Name: "Road King", Model: "Peterbilt 579", LicensePlate: "FL-1007", Capacity: 28000, Odometer: 185000, Status: VehicleOnTrip, Type: VehicleTruck, Region: "Southeast", FuelType: FuelDiesel, Year: 2022},
		{ID: "v8", Name: "Metro Express", Model: "RAM ProMaster", LicensePlate: "FL-1008", Capacity: 4500, Odometer: 93400, Status: VehicleRetired, Type: VehicleVan, Region: "Midwest", FuelType: FuelGasoline, Year: 2019},
		{ID: "v9", Name: "Pathfinder", Model: "Chevrolet Suburban", LicensePlate: "FL-1009", Capacity: 1000, Odometer: 56700, Status: VehicleAvailable, Type: VehicleSUV, Region: "Northeast", FuelType: FuelGasoline, Year: 2023},
		{ID: "v10", Name: "Horizon Freight", Model: "Freightliner Cascadia", LicensePlate: "FL-1010", Capacity: 32000, Odometer: 245800, Status: VehicleAvailable, Type: VehicleTruck, Region: "West", FuelType: FuelDiesel, Year: 2021},
		{ID: "v11", Name: "Nimble Dash", Model: "Ford E-Transit", LicensePlate: "FL-1011", Capacity: 3800, Odometer: 18900, Status: VehicleAvailable, Type: VehicleVan, Region: "Southeast", FuelType: FuelElectric, Year: 2024},
		{ID: "v12", Name: "Granite Force", Model: "Mack Anthem", LicensePlate: "FL-1012", Capacity: 27000, Odometer: 178500, Status: VehicleOnTrip, Type: VehicleTruck, Region: "Midwest", FuelType: FuelDiesel, Year: 2022},
	}
}

// SeedDrivers returns the demo driver roster.
func SeedDrivers() []Driver {
	return []Driver{
		{ID: "d1", Name: "Marcus Johnson", LicenseCategory: "CDL-A", LicenseExpiry: date(2027, time.March, 15), Status: DriverAvailable, Phone: "+1-555-0101", TotalTrips: 342, CompletionRate: 97.4, SafetyScore: 94},
		{ID: "d2", Name: "Elena Rodriguez", LicenseCategory: "CDL-B", LicenseExpiry: date(2026, time.November, 20), Status: DriverOnDuty, Phone: "+1-555-0102", TotalTrips: 218, CompletionRate: 99.1, SafetyScore: 98},
		{ID: "d3", Name: "James O'Brien", LicenseCategory: "CDL-A", LicenseExpiry: date(2025, time.June, 1), Status: DriverAvailable, Phone: "+1-555-0103", TotalTrips: 456, CompletionRate: 95.8, SafetyScore: 88},
		{ID: "d4", Name: "Aisha Patel", LicenseCategory: "Class C", LicenseExpiry: date(2027, time.September, 10), Status: DriverAvailable, Phone: "+1-555-0104", TotalTrips: 127, CompletionRate: 100, SafetyScore: 96},
		{ID: "d5", Name: "Robert Kim", LicenseCategory: "CDL-A", LicenseExpiry: date(2024, time.December, 31), Status: DriverSuspended, Phone: "+1-555-0105", TotalTrips: 389, CompletionRate: 92.3, SafetyScore: 72},
		{ID: "d6", Name: "Fatima Hassan", LicenseCategory: "CDL-B", LicenseExpiry: date(2026, time.August, 5), Status: DriverOnDuty, Phone: "+1-555-0106", TotalTrips: 198, CompletionRate: 98.5, SafetyScore: 95},
		{ID: "d7", Name: "David Thompson", LicenseCategory: "CDL-A", LicenseExpiry: date(2027, time.January, 22), Status: DriverAvailable, Phone: "+1-555-0107", TotalTrips: 521, CompletionRate: 96.2, SafetyScore: 91},
		{ID: "d8", Name: "Maria Santos", LicenseCategory: "Class C", LicenseExpiry: date(2026, time.May, 18), Status: DriverOffDuty, Phone: "+1-555-0108", TotalTrips: 89, CompletionRate: 98.9, SafetyScore: 97},
	}
}

// SeedTrips returns the demo trip history.
func SeedTrips() []Trip {
	return []Trip{
		{ID: "t1", VehicleID: "v2", DriverID: "d2", CargoWeight: 2800, PickupLocation: "Atlanta, GA", DeliveryLocation: "Miami, FL", Status: TripDispatched, CreatedAt: stamp(2026, time.February, 18, 8, 0), DispatchedAt: timePtr(stamp(2026, time.February, 18, 9, 30))},
		{ID: "t2", VehicleID: "v7", DriverID: "d6", CargoWeight: 22000, PickupLocation: "Charlotte, NC", DeliveryLocation: "Nashville, TN", Status: TripDispatched, CreatedAt: stamp(2026, time.February, 17, 14, 0), DispatchedAt: timePtr(stamp(2026, time.February, 17, 16, 0))},
		{ID: "t3", VehicleID: "v12", DriverID: "d1", CargoWeight: 18500, PickupLocation: "Chicago, IL", DeliveryLocation: "Detroit, MI", Status: TripDispatched, CreatedAt: stamp(2026, time.February, 19, 6, 0), DispatchedAt: timePtr(stamp(2026, time.February, 19, 7, 0))},
		{ID: "t4", VehicleID: "v1", DriverID: "d3", CargoWeight: 20000, PickupLocation: "Boston, MA", DeliveryLocation: "Philadelphia, PA", Status: TripCompleted, CreatedAt: stamp(2026, time.February, 10, 10, 0), DispatchedAt: timePtr(stamp(2026, time.February, 10, 12, 0)), CompletedAt: timePtr(stamp(2026, time.February, 11, 18, 0)), FinalOdometer: intPtr(135100), Distance: intPtr(500)},
		{ID: "t5", VehicleID: "v5", DriverID: "d7", CargoWeight: 3200, PickupLocation: "New York, NY", DeliveryLocation: "Hartford, CT", Status: TripCompleted, CreatedAt: stamp(2026, time.February, 12, 9, 0), DispatchedAt: timePtr(stamp(2026, time.February, 12, 10, 0)), CompletedAt: timePtr(stamp(2026, time.February, 12, 16, 0)), FinalOdometer: intPtr(62600), Distance: intPtr(180)},
		{ID: "t6", VehicleID: "v3", DriverID: "d4", CargoWeight: 400, PickupLocation: "Columbus, OH", DeliveryLocation: "Indianapolis, IN", Status: TripDraft, CreatedAt: stamp(2026, time.February, 20, 11, 0)},
		{ID: "t7", VehicleID: "v6", DriverID: "d8", CargoWeight: 600, PickupLocation: "San Francisco, CA", DeliveryLocation: "Los Angeles, CA", Status: TripCancelled, CreatedAt: stamp(2026, time.February, 15, 13, 0)},
	}
}

// SeedMaintenanceLogs returns the demo maintenance history.
func SeedMaintenanceLogs() []MaintenanceLog {
	return []MaintenanceLog{
		{ID: "m1", VehicleID: "v4", Type: MaintenanceEngineRepair, Cost: 4500, Date: date(2026, time.February, 15), Description: "Major engine overhaul - turbo replacement", Completed: false},
		{ID: "m2", VehicleID: "v1", Type: MaintenanceOilChange, Cost: 280, Date: date(2026, time.February, 5), Description: "Routine oil and filter change", Completed: true},
		{ID: "m3", VehicleID: "v7", Type: MaintenanceTireRotation, Cost: 350, Date: date(2026, time.January, 28), Description: "Full tire rotation and alignment", Completed: true},
		{ID: "m4", VehicleID: "v10", Type: MaintenanceBrakeService, Cost: 1200, Date: date(2026, time.February, 10), Description: "Brake pads and rotor replacement", Completed: true},
		{ID: "m5", VehicleID: "v2", Type: MaintenanceInspection, Cost: 150, Date: date(2026, time.February, 1), Description: "Quarterly general inspection", Completed: true},
		{ID: "m6", VehicleID: "v8", Type: MaintenanceTransmission, Cost: 6800, Date: date(2026, time.January, 15), Description: "Transmission rebuild", Completed: true},
	}
}

// SeedFuelLogs returns the demo fuel purchase history.
func SeedFuelLogs() []FuelLog {
	return []FuelLog{
		{ID: "f1", VehicleID: "v1", Liters: 320, Cost: 480, Date: date(2026, time.February, 18), OdometerAtFill: 134500},
		{ID: "f2", VehicleID: "v2", Liters: 85, Cost: 127.50, Date: date(2026, time.February, 17), OdometerAtFill: 87200},
		{ID: "f3", VehicleID: "v7", Liters: 350, Cost: 525, Date: date(2026, time.February, 16), OdometerAtFill: 185000},
		{ID: "f4", VehicleID: "v5", Liters: 95, Cost: 152, Date: date(2026, time.February, 14), OdometerAtFill: 62100},
		{ID: "f5", VehicleID: "v10", Liters: 380, Cost: 570, Date: date(2026, time.February, 12), OdometerAtFill: 245800},
		{ID: "f6", VehicleID: "v12", Liters: 340, Cost: 510, Date: date(2026, time.February, 11), OdometerAtFill: 178500},
		{ID: "f7", VehicleID: "v4", Liters: 310, Cost: 465, Date: date(2026, time.February, 8), OdometerAtFill: 210300},
		{ID: "f8", VehicleID: "v9", Liters: 75, Cost: 120, Date: date(2026, time.February, 6), OdometerAtFill: 56700},
		{ID: "f9", VehicleID: "v1", Liters: 315, Cost: 472.50, Date: date(2026, time.February, 2), OdometerAtFill: 134000},
		{ID: "f10", VehicleID: "v3", Liters: 45, Cost: 72, Date: date(2026, time.February, 1), OdometerAtFill: 45600},
		{ID: "f11", VehicleID: "v7", Liters: 345, Cost: 517.50, Date: date(2026, time.January, 30), OdometerAtFill: 184500},
		{ID: "f12", VehicleID: "v2", Liters: 80, Cost: 120, Date: date(2026, time.January, 28), OdometerAtFill: 86800},
	}
}

// SeedExpenses returns the demo expense history.
func SeedExpenses() []Expense {
	return []Expense{
		{ID: "e1", VehicleID: "v1", Category: "Tolls", Amount: 85, Date: date(2026, time.February, 18), Description: "Northeast corridor tolls"},
		{ID: "e2", VehicleID: "v2", Category: "Parking", Amount: 45, Date: date(2026, time.February, 17), Description: "Overnight parking - Miami depot"},
		{ID: "e3", VehicleID: "v4", Category: "Towing", Amount: 350, Date: date(2026, time.February, 15), Description: "Emergency tow to service center"},
		{ID: "e4", VehicleID: "v7", Category: "Tolls", Amount: 120, Date: date(2026, time.February, 16), Description: "Interstate tolls"},
		{ID: "e5", VehicleID: "v5", Category: "Insurance", Amount: 450, Date: date(2026, time.February, 1), Description: "Monthly insurance premium"},
		{ID: "e6", VehicleID: "v10", Category: "Registration", Amount: 280, Date: date(2026, time.January, 15), Description: "Annual registration renewal"},
	}
}
