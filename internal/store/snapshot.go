package store

import "github.com/ukydev/fleet-ops/internal/models"

// Snapshot is a point-in-time copy of every collection, safe to read
// without synchronization. Mutating the store afterwards does not
// affect an existing snapshot.
type Snapshot struct {
	Vehicles        []models.Vehicle        `bson:"vehicles"`
	Drivers         []models.Driver         `bson:"drivers"`
	Trips           []models.Trip           `bson:"trips"`
	MaintenanceLogs []models.MaintenanceLog `bson:"maintenance_logs"`
	FuelLogs        []models.FuelLog        `bson:"fuel_logs"`
	Expenses        []models.Expense        `bson:"expenses"`
}

// Snapshot copies all six collections under the read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Vehicles:        s.vehicles.list(),
		Drivers:         s.drivers.list(),
		Trips:           s.trips.list(),
		MaintenanceLogs: s.logs.list(),
		FuelLogs:        s.fuel.list(),
		Expenses:        s.expenses.list(),
	}
}

// Load replaces the store's contents with the snapshot, preserving the
// snapshot's ordering. Used when restoring archived state.
func (s *Store) Load(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fresh := state{
		vehicles: newCollection[models.Vehicle](),
		drivers:  newCollection[models.Driver](),
		trips:    newCollection[models.Trip](),
		logs:     newCollection[models.MaintenanceLog](),
		fuel:     newCollection[models.FuelLog](),
		expenses: newCollection[models.Expense](),
	}
	for _, v := range snap.Vehicles {
		fresh.vehicles.put(v.ID, v)
	}
	for _, d := range snap.Drivers {
		fresh.drivers.put(d.ID, d)
	}
	for _, t := range snap.Trips {
		fresh.trips.put(t.ID, t)
	}
	for _, m := range snap.MaintenanceLogs {
		fresh.logs.put(m.ID, m)
	}
	for _, f := range snap.FuelLogs {
		fresh.fuel.put(f.ID, f)
	}
	for _, e := range snap.Expenses {
		fresh.expenses.put(e.ID, e)
	}
	s.state = fresh
}

// Vehicle looks up a vehicle in the snapshot.
func (s Snapshot) Vehicle(id string) (models.Vehicle, bool) {
	for _, v := range s.Vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// Driver looks up a driver in the snapshot.
func (s Snapshot) Driver(id string) (models.Driver, bool) {
	for _, d := range s.Drivers {
		if d.ID == id {
			return d, true
		}
	}
	return models.Driver{}, false
}
