// Package main provides a load simulator that drives the fleetd API
// through randomized trip lifecycles. Useful for demos and for
// watching the metrics endpoints under churn.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

var routes = []struct{ Pickup, Delivery string }{
	{"Chicago, IL", "Detroit, MI"},
	{"Atlanta, GA", "Miami, FL"},
	{"Dallas, TX", "Houston, TX"},
	{"Seattle, WA", "Portland, OR"},
	{"Denver, CO", "Salt Lake City, UT"},
	{"Boston, MA", "New York, NY"},
	{"Phoenix, AZ", "Las Vegas, NV"},
	{"Minneapolis, MN", "Milwaukee, WI"},
}

type vehicle struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Capacity int    `json:"capacity"`
	Odometer int    `json:"odometer"`
}

type driver struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type trip struct {
	ID        string `json:"id"`
	VehicleID string `json:"vehicle_id"`
	Status    string `json:"status"`
}

type simulator struct {
	apiURL string
	client *http.Client
	rng    *rand.Rand
}

func newSimulator(apiURL string, seed int64) *simulator {
	return &simulator{
		apiURL: apiURL,
		client: &http.Client{Timeout: 10 * time.Second},
		rng:    rand.New(rand.NewSource(seed)),
	}
}

func (s *simulator) getJSON(path string, out interface{}) error {
	resp, err := s.client.Get(s.apiURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *simulator) postJSON(path string, body interface{}, out interface{}) (int, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return 0, err
		}
	}
	resp, err := s.client.Post(s.apiURL+path, "application/json", &buf)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

// available filters entities with the given status.
func available(vehicles []vehicle) []vehicle {
	out := vehicles[:0:0]
	for _, v := range vehicles {
		if v.Status == "Available" {
			out = append(out, v)
		}
	}
	return out
}

func availableDrivers(drivers []driver) []driver {
	out := drivers[:0:0]
	for _, d := range drivers {
		if d.Status == "Available" {
			out = append(out, d)
		}
	}
	return out
}

// runTrip takes one trip through a full lifecycle: create, dispatch,
// then complete or cancel. Rejections are logged and tolerated; the
// server is the arbiter of what is allowed.
func (s *simulator) runTrip() error {
	var vehicles []vehicle
	if err := s.getJSON("/api/vehicles", &vehicles); err != nil {
		return err
	}
	var drivers []driver
	if err := s.getJSON("/api/drivers", &drivers); err != nil {
		return err
	}

	freeVehicles := available(vehicles)
	freeDrivers := availableDrivers(drivers)
	if len(freeVehicles) == 0 || len(freeDrivers) == 0 {
		log.Info("no free vehicle/driver pair, skipping tick")
		return nil
	}

	v := freeVehicles[s.rng.Intn(len(freeVehicles))]
	d := freeDrivers[s.rng.Intn(len(freeDrivers))]
	route := routes[s.rng.Intn(len(routes))]
	cargo := 0
	if v.Capacity > 0 {
		cargo = s.rng.Intn(v.Capacity + 1)
	}

	var created trip
	status, err := s.postJSON("/api/trips", map[string]interface{}{
		"vehicle_id":        v.ID,
		"driver_id":         d.ID,
		"cargo_weight":      cargo,
		"pickup_location":   route.Pickup,
		"delivery_location": route.Delivery,
	}, &created)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		log.WithFields(log.Fields{"status": status, "vehicle": v.Name, "driver": d.Name}).Info("trip rejected")
		return nil
	}
	log.WithFields(log.Fields{"trip_id": created.ID, "vehicle": v.Name, "driver": d.Name}).Info("trip created")

	if status, err = s.postJSON("/api/trips/"+created.ID+"/dispatch", nil, nil); err != nil {
		return err
	}
	if status != http.StatusOK {
		log.WithFields(log.Fields{"trip_id": created.ID, "status": status}).Warn("dispatch rejected")
		return nil
	}

	// one in five trips gets cancelled mid-flight
	if s.rng.Intn(5) == 0 {
		if _, err := s.postJSON("/api/trips/"+created.ID+"/cancel", nil, nil); err != nil {
			return err
		}
		log.WithField("trip_id", created.ID).Info("trip cancelled")
		return nil
	}

	final := v.Odometer + 50 + s.rng.Intn(900)
	if status, err = s.postJSON("/api/trips/"+created.ID+"/complete", map[string]interface{}{
		"final_odometer": final,
	}, nil); err != nil {
		return err
	}
	if status != http.StatusOK {
		log.WithFields(log.Fields{"trip_id": created.ID, "status": status}).Warn("complete rejected")
		return nil
	}
	log.WithFields(log.Fields{"trip_id": created.ID, "final_odometer": final}).Info("trip completed")
	return nil
}

func main() {
	apiURL := os.Getenv("FLEET_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}
	interval := 2 * time.Second
	if v := os.Getenv("FLEET_SIM_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			interval = parsed
		}
	}

	sim := newSimulator(apiURL, time.Now().UnixNano())
	log.WithFields(log.Fields{"api": apiURL, "interval": interval.String()}).Info("simulator starting")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		if err := sim.runTrip(); err != nil {
			log.WithError(err).Warn("simulation tick failed")
		}
	}
}
