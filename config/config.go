package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/subtlepseudonym/heliostat"
	"github.com/subtlepseudonym/heliostat/device"
)

const (
	DefaultListen     = ":9000"
	DefaultTrack      = "@every 5m"
	DefaultTransition = "30s"
)

type Config struct {
	Location   heliostat.Location       `json:"location"`
	Listen     string                   `json:"listen"`
	Track      string                   `json:"track"`      // cron spec for the tracker
	Transition string                   `json:"transition"` // tracker transition duration
	Curve      *Curve                   `json:"curve,omitempty"`
	Devices    map[string]device.Config `json:"devices"`
	Jobs       []Job                    `json:"jobs"`
}

// Curve configures how tracked devices follow the sun. Devices not
// listed under Devices are left to jobs.
type Curve struct {
	NightElevation float64        `json:"night_elevation"`
	DayElevation   float64        `json:"day_elevation"`
	Night          device.Setting `json:"night"`
	Day            device.Setting `json:"day"`
	Devices        []string       `json:"devices"`
}

func (c *Curve) Curve() device.Curve {
	return device.Curve{
		NightElevation: c.NightElevation,
		DayElevation:   c.DayElevation,
		Night:          c.Night.Color(),
		Day:            c.Day.Color(),
	}
}

// Job defines when to run, on which device, what the desired final
// state is, and how long to take getting there.
//
// Schedule is a standard cron spec or "@sunrise"/"@sunset" followed
// by an optional offset, such as "@sunset -30m".
type Job struct {
	Schedule string `json:"schedule"`
	Device   string `json:"device"`

	device.Setting

	Transition string `json:"transition"`
}

func Open(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	config := Config{
		Listen:     DefaultListen,
		Track:      DefaultTrack,
		Transition: DefaultTransition,
	}
	err = json.NewDecoder(f).Decode(&config)
	if err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	err := c.Location.Validate()
	if err != nil {
		return fmt.Errorf("location: %w", err)
	}

	if _, err := heliostat.ParseSchedule(c.Track, c.Location); err != nil {
		return fmt.Errorf("track schedule: %w", err)
	}

	if _, err := time.ParseDuration(c.Transition); err != nil {
		return fmt.Errorf("track transition: %w", err)
	}

	if c.Curve != nil {
		if c.Curve.NightElevation > c.Curve.DayElevation {
			return fmt.Errorf("curve night elevation %v is above day elevation %v", c.Curve.NightElevation, c.Curve.DayElevation)
		}
		for _, label := range c.Curve.Devices {
			if _, ok := c.Devices[label]; !ok {
				return fmt.Errorf("curve references missing device %q", label)
			}
		}
	}

	for _, job := range c.Jobs {
		if _, ok := c.Devices[job.Device]; !ok {
			return fmt.Errorf("schedule references missing device %q", job.Device)
		}
		if _, err := heliostat.ParseSchedule(job.Schedule, c.Location); err != nil {
			return fmt.Errorf("job %s: %w", job.Device, err)
		}
		if _, err := time.ParseDuration(job.Transition); err != nil {
			return fmt.Errorf("job %s: parse transition: %w", job.Device, err)
		}
	}

	return nil
}
