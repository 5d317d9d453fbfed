package device

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var shellyClient = &http.Client{
	Timeout: defaultTimeout,
}

// Shelly is a gen2 relay. Relays have no brightness, so any
// non-zero brightness switches the relay on.
type Shelly struct {
	Address  string
	MAC      string
	Firmware string
	Hardware string
	label    string
	index    int // index of attached port on device
}

type ShellyDeviceInfo struct {
	ID         string `json:"id"`
	MAC        string `json:"mac"`
	Model      string `json:"model"`
	Generation int    `json:"gen"`
	FirmwareID string `json:"fw_id"`
	Version    string `json:"ver"`
	App        string `json:"app"`
}

type ShellySwitchSetResponse struct {
	WasOn bool `json:"was_on"`
}

type ShellySwitchStatus struct {
	ID     int  `json:"id"`
	Output bool `json:"output"`
}

func ConnectShelly(label, addr, mac string, index int) (Device, error) {
	shelly := &Shelly{
		Address: addr,
		MAC:     mac,
		label:   label,
		index:   index,
	}

	var info ShellyDeviceInfo
	err := shelly.rpc("Shelly.GetDeviceInfo", &info)
	if err != nil {
		return nil, fmt.Errorf("%s: query info: %w", label, err)
	}
	shelly.Firmware = info.FirmwareID
	shelly.Hardware = info.App

	return shelly, nil
}

func (s *Shelly) Transition(color *Color, _ time.Duration) error {
	on := color.Brightness > 0

	var res ShellySwitchSetResponse
	method := fmt.Sprintf("Switch.Set?id=%d&on=%t", s.index, on)
	err := s.rpc(method, &res)
	if err != nil {
		return fmt.Errorf("%s: set power state: %w", s.label, err)
	}

	return nil
}

// Power reports whether the relay is closed
func (s *Shelly) Power() (bool, error) {
	var status ShellySwitchStatus
	err := s.rpc(fmt.Sprintf("Switch.GetStatus?id=%d", s.index), &status)
	if err != nil {
		return false, fmt.Errorf("%s: query switch status: %w", s.label, err)
	}
	return status.Output, nil
}

func (s *Shelly) rpc(method string, v interface{}) error {
	query := fmt.Sprintf("http://%s/rpc/%s", s.Address, method)
	res, err := shellyClient.Get(query)
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

func (s *Shelly) Label() string {
	return s.label
}

func (s *Shelly) String() string {
	return fmt.Sprintf("Shelly %s %s", s.Hardware, s.Firmware)
}
