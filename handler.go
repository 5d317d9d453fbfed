package heliostat

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"

	"github.com/subtlepseudonym/heliostat/device"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Printf("ERR: encode response: %s", err)
	}
}

// PositionHandler serves the sun's position as JSON. The optional t
// parameter selects an instant in unix seconds; lat and lon override
// the calculator's location for the request.
func PositionHandler(calculator *Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		calc := calculator
		if query.Has("lat") || query.Has("lon") {
			location, err := parseLocation(query.Get("lat"), query.Get("lon"), calculator.Location())
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{err.Error()})
				return
			}
			calc = New(location)
		}

		if !query.Has("t") {
			if !calculator.HasTimeSource() {
				writeJSON(w, http.StatusServiceUnavailable, errorResponse{"no time source"})
				return
			}
			writeJSON(w, http.StatusOK, calc.PositionAt(calculator.now()))
			return
		}

		param := query.Get("t")
		t, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			log.Printf("ERR: parse time param %q: %s", param, err)
			writeJSON(w, http.StatusBadRequest, errorResponse{"unable to parse t parameter"})
			return
		}

		writeJSON(w, http.StatusOK, calc.PositionAt(t))
	}
}

// TrackerHandler serves the tracker's most recent position as JSON
func TrackerHandler(tracker *Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		last := tracker.Last()
		if last.IsZero() {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{"tracker has not run"})
			return
		}
		writeJSON(w, http.StatusOK, last)
	}
}

type deviceStatus struct {
	Label  string `json:"label"`
	Device string `json:"device"`
	On     bool   `json:"on"`
}

// DeviceHandler serves the power state of the device named by the
// label path value, or the sorted device labels when the label is empty
func DeviceHandler(devices map[string]device.Device) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := r.PathValue("label")
		if label == "" {
			labels := make([]string, 0, len(devices))
			for l := range devices {
				labels = append(labels, l)
			}
			sort.Strings(labels)
			writeJSON(w, http.StatusOK, labels)
			return
		}

		dev, ok := devices[label]
		if !ok {
			writeJSON(w, http.StatusNotFound, errorResponse{fmt.Sprintf("unknown device %q", label)})
			return
		}

		on, err := dev.Power()
		if err != nil {
			log.Printf("ERR: %s", err)
			writeJSON(w, http.StatusBadGateway, errorResponse{"unable to query device"})
			return
		}

		writeJSON(w, http.StatusOK, deviceStatus{
			Label:  dev.Label(),
			Device: dev.String(),
			On:     on,
		})
	}
}

// parseLocation parses latitude and longitude parameters, falling back
// to the coordinates of def for a missing parameter
func parseLocation(lat, lon string, def Location) (Location, error) {
	location := def

	if lat != "" {
		p, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return Location{}, fmt.Errorf("parse lat: %w", err)
		}
		location.Latitude = p
	}

	if lon != "" {
		p, err := strconv.ParseFloat(lon, 64)
		if err != nil {
			return Location{}, fmt.Errorf("parse lon: %w", err)
		}
		location.Longitude = p
	}

	err := location.Validate()
	if err != nil {
		return Location{}, err
	}

	return location, nil
}
