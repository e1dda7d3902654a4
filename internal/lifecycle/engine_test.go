package lifecycle

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-ops/internal/models"
	"github.com/ukydev/fleet-ops/internal/store"
)

var testNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

// newTestEngine returns an engine with a frozen clock and sequential ids.
func newTestEngine(t *testing.T) (*Engine, *store.Store) {
	t.Helper()
	st := store.New()
	seq := 0
	ids := func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return NewEngine(st, func() time.Time { return testNow }, ids), st
}

func seedPair(t *testing.T, st *store.Store) {
	t.Helper()
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		tx.PutVehicle(models.Vehicle{
			ID: "v1", Name: "Atlas Heavy", Capacity: 25000, Odometer: 134500,
			Status: models.VehicleAvailable, LicensePlate: "FL-1001",
		})
		tx.PutDriver(models.Driver{
			ID: "d1", Name: "Marcus Johnson", Status: models.DriverAvailable,
			LicenseExpiry: testNow.AddDate(1, 0, 0),
		})
		return nil
	}))
}

func TestCreateTrip(t *testing.T) {
	t.Run("success leaves resources untouched", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)

		trip, err := e.CreateTrip(TripRequest{
			VehicleID: "v1", DriverID: "d1", CargoWeight: 20000,
			PickupLocation: "Boston, MA", DeliveryLocation: "Philadelphia, PA",
		})
		require.NoError(t, err)
		assert.Equal(t, models.TripDraft, trip.Status)
		assert.Equal(t, testNow, trip.CreatedAt)
		assert.NotEmpty(t, trip.ID)

		// A Draft trip reserves nothing through status fields.
		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleAvailable, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverAvailable, d.Status)
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		_, err := e.CreateTrip(TripRequest{VehicleID: "nope", DriverID: "d1", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})

	t.Run("unknown driver", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "nope", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})

	t.Run("vehicle not available", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		require.NoError(t, st.Update(func(tx *store.Tx) error {
			v, _ := tx.Vehicle("v1")
			v.Status = models.VehicleInShop
			tx.PutVehicle(v)
			return nil
		}))
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrResourceUnavailable)
	})

	t.Run("driver not available", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		require.NoError(t, st.Update(func(tx *store.Tx) error {
			d, _ := tx.Driver("d1")
			d.Status = models.DriverSuspended
			tx.PutDriver(d)
			return nil
		}))
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrResourceUnavailable)
	})

	t.Run("license expired yesterday", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		require.NoError(t, st.Update(func(tx *store.Tx) error {
			d, _ := tx.Driver("d1")
			d.LicenseExpiry = testNow.AddDate(0, 0, -1)
			tx.PutDriver(d)
			return nil
		}))
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrLicenseExpired)
	})

	t.Run("license expiring today accepted", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		require.NoError(t, st.Update(func(tx *store.Tx) error {
			d, _ := tx.Driver("d1")
			d.LicenseExpiry = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
			tx.PutDriver(d)
			return nil
		}))
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		assert.NoError(t, err)
	})

	t.Run("cargo over capacity", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 25001})
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("cargo at exact capacity accepted", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 25000})
		assert.NoError(t, err)
	})
}

func TestCreateTripResourceExclusivity(t *testing.T) {
	// A Draft trip changes no status fields, so exclusivity must come
	// from the reservation check, not from vehicle/driver status.
	e, st := newTestEngine(t)
	seedPair(t, st)
	require.NoError(t, st.Update(func(tx *store.Tx) error {
		tx.PutVehicle(models.Vehicle{ID: "v2", Name: "Urban Scout", Capacity: 4000, Status: models.VehicleAvailable, LicensePlate: "FL-1005"})
		tx.PutDriver(models.Driver{ID: "d2", Name: "Elena Rodriguez", Status: models.DriverAvailable, LicenseExpiry: testNow.AddDate(1, 0, 0)})
		return nil
	}))

	_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
	require.NoError(t, err)

	t.Run("vehicle reserved by draft trip", func(t *testing.T) {
		_, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d2", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrResourceUnavailable)
	})

	t.Run("driver reserved by draft trip", func(t *testing.T) {
		_, err := e.CreateTrip(TripRequest{VehicleID: "v2", DriverID: "d1", CargoWeight: 100})
		assert.ErrorIs(t, err, ErrResourceUnavailable)
	})

	t.Run("free pair still accepted", func(t *testing.T) {
		_, err := e.CreateTrip(TripRequest{VehicleID: "v2", DriverID: "d2", CargoWeight: 100})
		assert.NoError(t, err)
	})
}

func TestDispatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)

		dispatched, err := e.Dispatch(trip.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TripDispatched, dispatched.Status)
		require.NotNil(t, dispatched.DispatchedAt)
		assert.Equal(t, testNow, *dispatched.DispatchedAt)
		assert.Equal(t, 134500, dispatched.OdometerAtDispatch)

		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleOnTrip, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverOnDuty, d.Status)
	})

	t.Run("already dispatched", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Dispatch(trip.ID)
		require.NoError(t, err)

		_, err = e.Dispatch(trip.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		// States unchanged by the rejected attempt.
		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleOnTrip, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverOnDuty, d.Status)
	})

	t.Run("unknown trip", func(t *testing.T) {
		e, _ := newTestEngine(t)
		_, err := e.Dispatch("nope")
		assert.ErrorIs(t, err, ErrEntityNotFound)
	})
}

func TestComplete(t *testing.T) {
	start := func(t *testing.T) (*Engine, *store.Store, models.Trip) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 20000})
		require.NoError(t, err)
		_, err = e.Dispatch(trip.ID)
		require.NoError(t, err)
		return e, st, trip
	}

	t.Run("success updates everything", func(t *testing.T) {
		e, st, trip := start(t)
		completed, err := e.Complete(trip.ID, 135000)
		require.NoError(t, err)

		assert.Equal(t, models.TripCompleted, completed.Status)
		require.NotNil(t, completed.FinalOdometer)
		assert.Equal(t, 135000, *completed.FinalOdometer)
		require.NotNil(t, completed.Distance)
		assert.Equal(t, 500, *completed.Distance)
		require.NotNil(t, completed.CompletedAt)

		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleAvailable, v.Status)
		assert.Equal(t, 135000, v.Odometer)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverAvailable, d.Status)
		assert.Equal(t, 1, d.TotalTrips)
	})

	t.Run("odometer not above current rejected", func(t *testing.T) {
		e, st, trip := start(t)
		_, err := e.Complete(trip.ID, 134500)
		assert.ErrorIs(t, err, ErrInvalidOdometer)
		_, err = e.Complete(trip.ID, 134499)
		assert.ErrorIs(t, err, ErrInvalidOdometer)

		// Rejection leaves the trip dispatched and the odometer alone.
		got, _ := st.Trip(trip.ID)
		assert.Equal(t, models.TripDispatched, got.Status)
		v, _ := st.Vehicle("v1")
		assert.Equal(t, 134500, v.Odometer)
	})

	t.Run("draft trip cannot complete", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Complete(trip.ID, 200000)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("completed trip is terminal", func(t *testing.T) {
		e, _, trip := start(t)
		_, err := e.Complete(trip.ID, 135000)
		require.NoError(t, err)
		_, err = e.Complete(trip.ID, 136000)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = e.Dispatch(trip.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = e.Cancel(trip.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestCancel(t *testing.T) {
	t.Run("dispatched trip releases resources", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Dispatch(trip.ID)
		require.NoError(t, err)

		cancelled, err := e.Cancel(trip.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TripCancelled, cancelled.Status)

		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleAvailable, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverAvailable, d.Status)
	})

	t.Run("draft trip releases nothing", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)

		_, err = e.Cancel(trip.ID)
		require.NoError(t, err)

		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleAvailable, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverAvailable, d.Status)
	})

	t.Run("cancelled trip is terminal", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Cancel(trip.ID)
		require.NoError(t, err)
		_, err = e.Cancel(trip.ID)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestDeleteTrip(t *testing.T) {
	t.Run("terminal trip removed", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Cancel(trip.ID)
		require.NoError(t, err)

		require.NoError(t, e.DeleteTrip(trip.ID))
		_, ok := st.Trip(trip.ID)
		assert.False(t, ok)
	})

	t.Run("dispatched trip releases resources before removal", func(t *testing.T) {
		e, st := newTestEngine(t)
		seedPair(t, st)
		trip, err := e.CreateTrip(TripRequest{VehicleID: "v1", DriverID: "d1", CargoWeight: 100})
		require.NoError(t, err)
		_, err = e.Dispatch(trip.ID)
		require.NoError(t, err)

		require.NoError(t, e.DeleteTrip(trip.ID))
		_, ok := st.Trip(trip.ID)
		assert.False(t, ok)

		v, _ := st.Vehicle("v1")
		assert.Equal(t, models.VehicleAvailable, v.Status)
		d, _ := st.Driver("d1")
		assert.Equal(t, models.DriverAvailable, d.Status)
	})

	t.Run("unknown trip", func(t *testing.T) {
		e, _ := newTestEngine(t)
		assert.ErrorIs(t, e.DeleteTrip("nope"), ErrEntityNotFound)
	})
}

// TestTripLifecycleEndToEnd walks the full happy path: create, dispatch,
// complete with a 500 km leg.
func TestTripLifecycleEndToEnd(t *testing.T) {
	e, st := newTestEngine(t)
	seedPair(t, st)

	trip, err := e.CreateTrip(TripRequest{
		VehicleID: "v1", DriverID: "d1", CargoWeight: 20000,
		PickupLocation: "Boston, MA", DeliveryLocation: "Philadelphia, PA",
	})
	require.NoError(t, err)
	assert.Equal(t, models.TripDraft, trip.Status)
	v, _ := st.Vehicle("v1")
	assert.Equal(t, models.VehicleAvailable, v.Status)

	trip, err = e.Dispatch(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TripDispatched, trip.Status)
	v, _ = st.Vehicle("v1")
	assert.Equal(t, models.VehicleOnTrip, v.Status)
	d, _ := st.Driver("d1")
	assert.Equal(t, models.DriverOnDuty, d.Status)

	trip, err = e.Complete(trip.ID, v.Odometer+500)
	require.NoError(t, err)
	assert.Equal(t, models.TripCompleted, trip.Status)
	require.NotNil(t, trip.Distance)
	assert.Equal(t, 500, *trip.Distance)

	v, _ = st.Vehicle("v1")
	assert.Equal(t, models.VehicleAvailable, v.Status)
	assert.Equal(t, 135000, v.Odometer)
	d, _ = st.Driver("d1")
	assert.Equal(t, models.DriverAvailable, d.Status)
	assert.Equal(t, 1, d.TotalTrips)

	// Monotonic timestamps within the trip.
	require.NotNil(t, trip.DispatchedAt)
	require.NotNil(t, trip.CompletedAt)
	assert.False(t, trip.DispatchedAt.Before(trip.CreatedAt))
	assert.False(t, trip.CompletedAt.Before(*trip.DispatchedAt))
}
