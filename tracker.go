package heliostat

import (
	"log"
	"sync"
	"time"

	"github.com/subtlepseudonym/heliostat/device"
)

// Tracker is a set of devices whose color follows the sun's
// elevation at a single location
type Tracker struct {
	Devices map[string]device.Device

	calculator *Calculator
	curve      device.Curve
	transition time.Duration

	mu   sync.RWMutex
	last Position
}

func NewTracker(calculator *Calculator, curve device.Curve, transition time.Duration) *Tracker {
	return &Tracker{
		Devices:    make(map[string]device.Device),
		calculator: calculator,
		curve:      curve,
		transition: transition,
	}
}

// Run records the sun's current position and transitions every device
// to the matching color
//
// This implements robfig/cron.Job
func (t *Tracker) Run() {
	pos := t.calculator.Position()
	if pos.IsZero() {
		log.Printf("ERR: tracker: no time source")
		return
	}

	t.mu.Lock()
	t.last = pos
	t.mu.Unlock()

	color := t.curve.Color(pos.Elevation)
	log.Printf("sun: elevation %.2f° azimuth %.2f°, brightness %.0f%%", pos.Elevation, pos.Azimuth, float64(color.Brightness)/0xFFFF*100)

	var wg sync.WaitGroup
	for _, dev := range t.Devices {
		wg.Add(1)
		go func(dev device.Device) {
			defer wg.Done()

			c := color
			err := dev.Transition(&c, t.transition)
			if err != nil {
				log.Printf("ERR: %s", err)
			}
		}(dev)
	}
	wg.Wait()
}

// Last returns the position recorded by the most recent Run
func (t *Tracker) Last() Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last
}

// Job transitions a single device to a fixed color
//
// This implements robfig/cron.Job
type Job struct {
	Device     device.Device
	Color      *device.Color
	Transition time.Duration
}

func (j Job) Run() {
	log.Printf("%s: transitioning over %s", j.Device.Label(), j.Transition)
	err := j.Device.Transition(j.Color, j.Transition)
	if err != nil {
		log.Printf("ERR: transition device: %s", err)
	}
}
