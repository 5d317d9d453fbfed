package device

import (
	"math"
)

// Curve maps the sun's elevation onto a light color. Below
// NightElevation the Night color is used, above DayElevation the Day
// color, and in between brightness and kelvin are interpolated
// linearly. Hue and saturation switch at the midpoint.
type Curve struct {
	NightElevation float64 // degrees
	DayElevation   float64 // degrees
	Night          Color
	Day            Color
}

// DefaultCurve ramps from off at the end of civil twilight to a bright
// neutral white once the sun is 10° up
var DefaultCurve = Curve{
	NightElevation: -6,
	DayElevation:   10,
	Night:          Color{Kelvin: 2500},
	Day:            Color{Brightness: math.MaxUint16, Kelvin: 5000},
}

// Progress returns how far elevation lies between night and day, in
// [0, 1]
func (c Curve) Progress(elevation float64) float64 {
	switch {
	case math.IsNaN(elevation), elevation <= c.NightElevation:
		return 0
	case elevation >= c.DayElevation:
		return 1
	default:
		return (elevation - c.NightElevation) / (c.DayElevation - c.NightElevation)
	}
}

func (c Curve) Color(elevation float64) Color {
	progress := c.Progress(elevation)

	color := c.Night
	if progress >= 0.5 {
		color = c.Day
	}
	color.Brightness = lerp(c.Night.Brightness, c.Day.Brightness, progress)
	color.Kelvin = lerp(c.Night.Kelvin, c.Day.Kelvin, progress)

	return color
}

func lerp(from, to uint16, progress float64) uint16 {
	return uint16(math.Round(float64(from) + (float64(to)-float64(from))*progress))
}
