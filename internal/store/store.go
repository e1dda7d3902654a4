// Package store holds the authoritative in-memory fleet collections.
// It is a pure keyed container: no validation happens here.
package store

import (
	"sync"

	"github.com/ukydev/fleet-ops/internal/models"
)

// Store keeps the six fleet collections keyed by id, preserving
// insertion order for display. A single RWMutex serializes writers;
// readers either take the read lock or work from a Snapshot.
type Store struct {
	mu sync.RWMutex
	state
}

// state is the unguarded collection data. Tx embeds it so lifecycle
// operations can read and write while the store's write lock is held.
type state struct {
	vehicles collection[models.Vehicle]
	drivers  collection[models.Driver]
	trips    collection[models.Trip]
	logs     collection[models.MaintenanceLog]
	fuel     collection[models.FuelLog]
	expenses collection[models.Expense]
}

// collection is an id-keyed map plus insertion order.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

// put inserts or replaces by id. A replaced entry keeps its position.
func (c *collection[T]) put(id string, v T) {
	if _, exists := c.byID[id]; !exists {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

// delete removes if present; no-op otherwise.
func (c *collection[T]) delete(id string) {
	if _, exists := c.byID[id]; !exists {
		return
	}
	delete(c.byID, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *collection[T]) list() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// New creates an empty store.
func New() *Store {
	return &Store{state: state{
		vehicles: newCollection[models.Vehicle](),
		drivers:  newCollection[models.Driver](),
		trips:    newCollection[models.Trip](),
		logs:     newCollection[models.MaintenanceLog](),
		fuel:     newCollection[models.FuelLog](),
		expenses: newCollection[models.Expense](),
	}}
}

// Update runs fn while holding the write lock. Lifecycle operations use
// this to apply their cross-entity mutations as one atomic unit: a
// concurrent reader never observes a partially applied transition.
// fn must perform all validation before its first mutation.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{state: &s.state})
}

// Tx exposes the collections to a single writer inside Update.
type Tx struct {
	state *state
}

func (tx *Tx) Vehicle(id string) (models.Vehicle, bool) { return tx.state.vehicles.get(id) }
func (tx *Tx) Driver(id string) (models.Driver, bool) { return tx.state.drivers.get(id) }
func (tx *Tx) Trip(id string) (models.Trip, bool) { return tx.state.trips.get(id) }
func (tx *Tx) MaintenanceLog(id string) (models.MaintenanceLog, bool) {
	return tx.state.logs.get(id)
}

func (tx *Tx) Vehicles() []models.Vehicle { return tx.state.vehicles.list() }
func (tx *Tx) Drivers() []models.Driver { return tx.state.drivers.list() }
func (tx *Tx) Trips() []models.Trip { return tx.state.trips.list() }
func (tx *Tx) MaintenanceLogs() []models.MaintenanceLog { return tx.state.logs.list() }

func (tx *Tx) PutVehicle(v models.Vehicle) { tx.state.vehicles.put(v.ID, v) }
func (tx *Tx) PutDriver(d models.Driver) { tx.state.drivers.put(d.ID, d) }
func (tx *Tx) PutTrip(t models.Trip) { tx.state.trips.put(t.ID, t) }
func (tx *Tx) PutMaintenanceLog(m models.MaintenanceLog) { tx.state.logs.put(m.ID, m) }
func (tx *Tx) PutFuelLog(f models.FuelLog) { tx.state.fuel.put(f.ID, f) }
func (tx *Tx) PutExpense(e models.Expense) { tx.state.expenses.put(e.ID, e) }

func (tx *Tx) DeleteVehicle(id string) { tx.state.vehicles.delete(id) }
func (tx *Tx) DeleteDriver(id string) { tx.state.drivers.delete(id) }
func (tx *Tx) DeleteTrip(id string) { tx.state.trips.delete(id) }

// Read accessors taking the read lock, for callers outside Update.

// Vehicle looks up a vehicle by id.
func (s *Store) Vehicle(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.get(id)
}

// Driver looks up a driver by id.
func (s *Store) Driver(id string) (models.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.get(id)
}

// Trip looks up a trip by id.
func (s *Store) Trip(id string) (models.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips.get(id)
}

// MaintenanceLog looks up a maintenance log by id.
func (s *Store) MaintenanceLog(id string) (models.MaintenanceLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs.get(id)
}

// Vehicles lists all vehicles in insertion order.
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.list()
}

// Drivers lists all drivers in insertion order.
func (s *Store) Drivers() []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.list()
}

// Trips lists all trips in insertion order.
func (s *Store) Trips() []models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trips.list()
}

// MaintenanceLogs lists all maintenance logs in insertion order.
func (s *Store) MaintenanceLogs() []models.MaintenanceLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.logs.list()
}

// FuelLogs lists all fuel logs in insertion order.
func (s *Store) FuelLogs() []models.FuelLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fuel.list()
}

// Expenses lists all expenses in insertion order.
func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expenses.list()
}
