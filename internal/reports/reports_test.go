package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

func intPtr(n int) *int { return &n }

func TestVehicleCosts(t *testing.T) {
	snap := store.Snapshot{
		Vehicles: []models.Vehicle{
			{ID: "v1", Name: "Atlas Heavy"},
			{ID: "v2", Name: "City Runner"},
		},
		FuelLogs: []models.FuelLog{
			{ID: "f1", VehicleID: "v1", Liters: 100, Cost: 150},
			{ID: "f2", VehicleID: "v1", Liters: 50, Cost: 75},
		},
		MaintenanceLogs: []models.MaintenanceLog{
			{ID: "m1", VehicleID: "v1", Cost: 400},
		},
		Expenses: []models.Expense{
			{ID: "e1", VehicleID: "v1", Amount: 75},
		},
		Trips: []models.Trip{
			{ID: "t1", VehicleID: "v1", Status: models.TripCompleted, Distance: intPtr(500)},
			{ID: "t2", VehicleID: "v1", Status: models.TripCompleted, Distance: intPtr(100)},
			{ID: "t3", VehicleID: "v1", Status: models.TripDispatched},
		},
	}

	rows := VehicleCosts(snap)
	require.Len(t, rows, 2)

	assert.Equal(t, "Atlas Heavy", rows[0].VehicleName)
	assert.Equal(t, 225.0, rows[0].FuelCost)
	assert.Equal(t, 400.0, rows[0].MaintenanceCost)
	assert.Equal(t, 75.0, rows[0].ExpenseCost)
	assert.Equal(t, 700.0, rows[0].TotalCost)
	assert.Equal(t, 600, rows[0].DistanceKm)
	assert.True(t, rows[0].CostPerKmDefined)
	assert.InDelta(t, 700.0/600.0, rows[0].CostPerKm, 1e-9)

	assert.Equal(t, "City Runner", rows[1].VehicleName)
	assert.Zero(t, rows[1].TotalCost)
	assert.False(t, rows[1].CostPerKmDefined, "no distance means cost per km is undefined")
}

func TestVehicleCostsOrphanedReference(t *testing.T) {
	snap := store.Snapshot{
		Vehicles: []models.Vehicle{{ID: "v1", Name: "Atlas Heavy"}},
		FuelLogs: []models.FuelLog{{ID: "f1", VehicleID: "v-gone", Cost: 200}},
	}

	rows := VehicleCosts(snap)
	require.Len(t, rows, 2)
	assert.Equal(t, "v-gone", rows[1].VehicleID)
	assert.Equal(t, UnknownName, rows[1].VehicleName)
	assert.Equal(t, 200.0, rows[1].FuelCost)
}

func TestVehicleCostsEmpty(t *testing.T) {
	assert.Empty(t, VehicleCosts(store.Snapshot{}))
}

func TestDriverSummaries(t *testing.T) {
	snap := store.Snapshot{
		Drivers: []models.Driver{
			{ID: "d1", Name: "Marcus Johnson", Status: models.DriverOnDuty, TotalTrips: 342, CompletionRate: 97.4, SafetyScore: 94},
		},
		Trips: []models.Trip{
			{ID: "t1", DriverID: "d1", Status: models.TripDraft},
			{ID: "t2", DriverID: "d1", Status: models.TripDispatched},
			{ID: "t3", DriverID: "d1", Status: models.TripCompleted},
			{ID: "t4", DriverID: "d1", Status: models.TripCancelled},
			{ID: "t5", DriverID: "d2", Status: models.TripCompleted},
		},
	}

	rows := DriverSummaries(snap)
	require.Len(t, rows, 1)
	assert.Equal(t, "Marcus Johnson", rows[0].Name)
	assert.Equal(t, 342, rows[0].TotalTrips)
	assert.Equal(t, 2, rows[0].ActiveTrips)
	assert.Equal(t, 1, rows[0].CompletedTrips)
	assert.Equal(t, 1, rows[0].CancelledTrips)
}

func TestMonthlyFuelTotals(t *testing.T) {
	snap := store.Snapshot{
		FuelLogs: []models.FuelLog{
			{ID: "f1", Liters: 100, Cost: 150, Date: time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "f2", Liters: 50, Cost: 80, Date: time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC)},
			{ID: "f3", Liters: 30, Cost: 45, Date: time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)},
		},
	}

	buckets := MonthlyFuelTotals(snap)
	require.Len(t, buckets, 12)
	assert.Equal(t, "Jan", buckets[0].Month)
	assert.Equal(t, "Dec", buckets[11].Month)

	// February folds both years together.
	assert.Equal(t, 150.0, buckets[1].Liters)
	assert.Equal(t, 230.0, buckets[1].Cost)
	assert.Equal(t, 30.0, buckets[11].Liters)
	assert.Zero(t, buckets[0].Liters)
}

func TestStatusCounts(t *testing.T) {
	snap := store.Snapshot{
		Vehicles: []models.Vehicle{
			{ID: "v1", Status: models.VehicleAvailable},
			{ID: "v2", Status: models.VehicleAvailable},
			{ID: "v3", Status: models.VehicleInShop},
		},
		Trips: []models.Trip{
			{ID: "t1", Status: models.TripDispatched},
		},
	}

	vc := VehicleStatusCounts(snap)
	require.Len(t, vc, 4)
	assert.Equal(t, string(models.VehicleAvailable), vc[0].Status)
	assert.Equal(t, 2, vc[0].Count)
	assert.Equal(t, 0, vc[1].Count, "empty buckets are kept")

	tc := TripStatusCounts(snap)
	require.Len(t, tc, 4)
	total := 0
	for _, b := range tc {
		total += b.Count
	}
	assert.Equal(t, 1, total)
}
