package device

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var tasmotaClient = &http.Client{
	Timeout: defaultTimeout,
}

// S31 is a Sonoff S31 plug running Tasmota. Like other relays it
// switches on for any non-zero brightness.
type S31 struct {
	Address  string
	MAC      string
	Firmware string
	Hardware string
	label    string
}

type TasmotaFirmwareStatus struct {
	Status struct {
		Version  string `json:"Version"`
		Hardware string `json:"Hardware"`
	} `json:"StatusFWR"`
}

type TasmotaPowerState struct {
	Power string `json:"POWER"`
}

func ConnectS31(label, addr, mac string) (Device, error) {
	s31 := &S31{
		Address: addr,
		MAC:     mac,
		label:   label,
	}

	var status TasmotaFirmwareStatus
	err := s31.command("Status 2", &status)
	if err != nil {
		return nil, fmt.Errorf("%s: query status: %w", label, err)
	}
	s31.Firmware = status.Status.Version
	s31.Hardware = status.Status.Hardware

	return s31, nil
}

func (s *S31) Transition(color *Color, _ time.Duration) error {
	power := "Off"
	if color.Brightness > 0 {
		power = "On"
	}

	var state TasmotaPowerState
	err := s.command("Power "+power, &state)
	if err != nil {
		return fmt.Errorf("%s: set power state: %w", s.label, err)
	}
	if !strings.EqualFold(state.Power, power) {
		return fmt.Errorf("%s: set power state: device reports %q", s.label, state.Power)
	}

	return nil
}

// Power reports whether the relay is closed
func (s *S31) Power() (bool, error) {
	var state TasmotaPowerState
	err := s.command("Power", &state)
	if err != nil {
		return false, fmt.Errorf("%s: query power state: %w", s.label, err)
	}
	return strings.EqualFold(state.Power, "on"), nil
}

// command runs a tasmota console command over http
func (s *S31) command(cmnd string, v interface{}) error {
	query := fmt.Sprintf("http://%s/cm?cmnd=%s", s.Address, url.PathEscape(cmnd))
	res, err := tasmotaClient.Get(query)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("response: %s", res.Status)
	}

	err = json.NewDecoder(res.Body).Decode(v)
	if err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (s *S31) Label() string {
	return s.label
}

func (s *S31) String() string {
	return fmt.Sprintf("Sonoff S31 %s %s", s.Hardware, s.Firmware)
}
