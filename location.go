package heliostat

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be within [-90, 90] degrees")
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180] degrees")
)

// Location is a point on the earth's surface in degrees, north and
// east positive
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate reports whether the location names a real place.
//
// The calculator accepts any location; Validate is applied where
// locations enter from configuration or user input.
func (l Location) Validate() error {
	if math.IsNaN(l.Latitude) || l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: %v", ErrInvalidLatitude, l.Latitude)
	}
	if math.IsNaN(l.Longitude) || l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: %v", ErrInvalidLongitude, l.Longitude)
	}

	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("%.4f,%.4f", l.Latitude, l.Longitude)
}
