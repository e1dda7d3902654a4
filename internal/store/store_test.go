package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-ops/internal/models"
)

func TestStorePutGetDelete(t *testing.T) {
	s := New()

	_, ok := s.Vehicle("v1")
	assert.False(t, ok)

	err := s.Update(func(tx *Tx) error {
		tx.PutVehicle(models.Vehicle{ID: "v1", Name: "Atlas Heavy"})
		return nil
	})
	require.NoError(t, err)

	v, ok := s.Vehicle("v1")
	require.True(t, ok)
	assert.Equal(t, "Atlas Heavy", v.Name)

	err = s.Update(func(tx *Tx) error {
		tx.DeleteVehicle("v1")
		tx.DeleteVehicle("nope") // no-op
		return nil
	})
	require.NoError(t, err)

	_, ok = s.Vehicle("v1")
	assert.False(t, ok)
}

func TestStoreInsertionOrder(t *testing.T) {
	s := New()
	err := s.Update(func(tx *Tx) error {
		tx.PutDriver(models.Driver{ID: "d3", Name: "third"})
		tx.PutDriver(models.Driver{ID: "d1", Name: "first"})
		tx.PutDriver(models.Driver{ID: "d2", Name: "second"})
		return nil
	})
	require.NoError(t, err)

	drivers := s.Drivers()
	require.Len(t, drivers, 3)
	assert.Equal(t, "d3", drivers[0].ID)
	assert.Equal(t, "d1", drivers[1].ID)
	assert.Equal(t, "d2", drivers[2].ID)

	// Replacing an entry keeps its position.
	err = s.Update(func(tx *Tx) error {
		tx.PutDriver(models.Driver{ID: "d1", Name: "renamed"})
		return nil
	})
	require.NoError(t, err)

	drivers = s.Drivers()
	assert.Equal(t, "d1", drivers[1].ID)
	assert.Equal(t, "renamed", drivers[1].Name)
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutVehicle(models.Vehicle{ID: "v1", Odometer: 100})
		return nil
	}))

	snap := s.Snapshot()

	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutVehicle(models.Vehicle{ID: "v1", Odometer: 999})
		tx.PutVehicle(models.Vehicle{ID: "v2"})
		return nil
	}))

	require.Len(t, snap.Vehicles, 1)
	assert.Equal(t, 100, snap.Vehicles[0].Odometer)

	v, ok := snap.Vehicle("v1")
	require.True(t, ok)
	assert.Equal(t, 100, v.Odometer)
	_, ok = snap.Vehicle("v2")
	assert.False(t, ok)
}

func TestLoadReplacesState(t *testing.T) {
	s := New()
	require.NoError(t, s.Update(func(tx *Tx) error {
		tx.PutVehicle(models.Vehicle{ID: "old"})
		tx.PutTrip(models.Trip{ID: "t-old"})
		return nil
	}))

	s.Load(Snapshot{
		Vehicles: []models.Vehicle{{ID: "v1"}, {ID: "v2"}},
		Drivers:  []models.Driver{{ID: "d1"}},
	})

	vehicles := s.Vehicles()
	require.Len(t, vehicles, 2)
	assert.Equal(t, "v1", vehicles[0].ID)
	assert.Equal(t, "v2", vehicles[1].ID)
	assert.Empty(t, s.Trips())
	assert.Len(t, s.Drivers(), 1)
}

func TestUpdateErrorLeavesNoTrace(t *testing.T) {
	s := New()
	err := s.Update(func(tx *Tx) error {
		return assert.AnError
	})
	assert.Error(t, err)
	assert.Empty(t, s.Vehicles())
}
