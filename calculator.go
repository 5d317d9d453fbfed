// Package heliostat computes the position of the sun as seen from a
// fixed location on earth and drives devices from it.
package heliostat

import (
	"sync"
	"time"

	"github.com/subtlepseudonym/heliostat/solar"
)

// TimeSource returns the current time in seconds since the unix epoch
type TimeSource func() int64

// SystemClock is a TimeSource backed by the system clock
func SystemClock() int64 {
	return time.Now().Unix()
}

// Position is the sun's position at a particular instant.
//
// The zero Position is returned when the current position is requested
// without a TimeSource.
type Position struct {
	Elevation float64 `json:"elevation"` // degrees above the horizon
	Azimuth   float64 `json:"azimuth"`   // degrees clockwise from north
	Distance  float64 `json:"distance"`  // kilometers
	Time      int64   `json:"time"`      // unix seconds
}

// IsZero reports whether p is the empty Position
func (p Position) IsZero() bool {
	return p == Position{}
}

// cached is the most recently calculated instant
type cached struct {
	instant int64
	coords  solar.Coordinates
}

// Calculator computes solar positions for a single location. It is
// safe for concurrent use.
type Calculator struct {
	location  Location
	latitude  float64 // radians
	longitude float64 // radians
	now       TimeSource

	mu    sync.Mutex
	cache *cached
}

type Option func(*Calculator)

// WithTimeSource sets the source used for current position queries
func WithTimeSource(source TimeSource) Option {
	return func(c *Calculator) {
		c.now = source
	}
}

func New(location Location, opts ...Option) *Calculator {
	c := &Calculator{
		location:  location,
		latitude:  solar.Radians(location.Latitude),
		longitude: solar.Radians(location.Longitude),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Calculator) Location() Location {
	return c.location
}

// HasTimeSource reports whether current position queries can be
// answered
func (c *Calculator) HasTimeSource() bool {
	return c.now != nil
}

// Position returns the sun's current position, or the zero Position if
// the Calculator has no TimeSource.
func (c *Calculator) Position() Position {
	if c.now == nil {
		return Position{}
	}

	return c.PositionAt(c.now())
}

// PositionAt returns the sun's position at t, in unix seconds
func (c *Calculator) PositionAt(t int64) Position {
	coords := c.calculate(t)
	elevation, azimuth := coords.Degrees()

	return Position{
		Elevation: elevation,
		Azimuth:   azimuth,
		Distance:  coords.Kilometers(),
		Time:      t,
	}
}

// PositionAtTime returns the sun's position at t. Sub-second precision
// is discarded.
func (c *Calculator) PositionAtTime(t time.Time) Position {
	return c.PositionAt(t.Unix())
}

// Elevation returns the sun's current elevation in degrees
func (c *Calculator) Elevation() float64 {
	return c.Position().Elevation
}

func (c *Calculator) ElevationAt(t int64) float64 {
	return c.PositionAt(t).Elevation
}

// Azimuth returns the sun's current azimuth in degrees
func (c *Calculator) Azimuth() float64 {
	return c.Position().Azimuth
}

func (c *Calculator) AzimuthAt(t int64) float64 {
	return c.PositionAt(t).Azimuth
}

// Distance returns the current earth-sun distance in kilometers
func (c *Calculator) Distance() float64 {
	return c.Position().Distance
}

func (c *Calculator) DistanceAt(t int64) float64 {
	return c.PositionAt(t).Distance
}

// calculate returns coordinates for instant, reusing the previous
// result when the instant has not changed
func (c *Calculator) calculate(instant int64) solar.Coordinates {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && c.cache.instant == instant {
		return c.cache.coords
	}

	coords := solar.Calculate(instant, c.latitude, c.longitude)
	c.cache = &cached{
		instant: instant,
		coords:  coords,
	}

	return coords
}
