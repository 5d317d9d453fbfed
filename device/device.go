// Package device controls lights that follow the sun
package device

import (
	"fmt"
	"math"
	"time"
)

const (
	defaultLifxPort     = 56700
	defaultRetryBackoff = 250 * time.Millisecond
	defaultRetryLimit   = 5
	defaultTimeout      = 10 * time.Second
)

type Type string

const (
	TypeLifx   Type = "lifx"
	TypeShelly Type = "shelly"
	TypeS31    Type = "s31"
)

// Color is an HSBK color. Hue, saturation and brightness span the full
// uint16 range.
//
// https://lan.developer.lifx.com/docs/representing-color-with-hsbk
type Color struct {
	Hue        uint16
	Saturation uint16
	Brightness uint16
	Kelvin     uint16
}

// Setting is a color as written by people: hue in degrees, saturation
// and brightness in percent
type Setting struct {
	Hue        int `json:"hue"`        // 0-360
	Saturation int `json:"saturation"` // 0-100
	Brightness int `json:"brightness"` // 0-100
	Kelvin     int `json:"kelvin"`     // 1500-9000
}

// Color converts the setting into device units
func (s Setting) Color() Color {
	hue := s.Hue % 360
	if hue < 0 {
		hue += 360
	}

	return Color{
		Hue:        uint16(hue * 0x10000 / 360),
		Saturation: percent(s.Saturation),
		Brightness: percent(s.Brightness),
		Kelvin:     uint16(s.Kelvin),
	}
}

func percent(p int) uint16 {
	if p < 0 {
		p = 0
	} else if p > 100 {
		p = 100
	}
	return uint16(p * math.MaxUint16 / 100)
}

// Config locates a device on the network
type Config struct {
	Type  string `json:"type"`
	Host  string `json:"host"`
	MAC   string `json:"mac"`
	Index int    `json:"index,omitempty"` // relay port, shelly only
}

type Device interface {
	Transition(*Color, time.Duration) error
	Power() (bool, error)
	Label() string
	String() string
}

func Connect(label string, device Config) (Device, error) {
	switch Type(device.Type) {
	case TypeLifx:
		addr := fmt.Sprintf("%s:%d", device.Host, defaultLifxPort)
		return ConnectLifx(label, addr, device.MAC)
	case TypeShelly:
		return ConnectShelly(label, device.Host, device.MAC, device.Index)
	case TypeS31:
		return ConnectS31(label, device.Host, device.MAC)
	default:
		return nil, fmt.Errorf("unknown device type: %s", device.Type)
	}
}
