package solar

import (
	"math"
)

// GreenwichHourAngle approximates the earth's sidereal rotation
// since 2000-01-01T12:00 as the hour angle of the Greenwich meridian,
// in radians.
//
// The whole-day term is wrapped before the fractional terms are added;
// (360 * days) % 360 vanishes for whole days and is kept as written.
func GreenwichHourAngle(julianDay int64, fraction float64) float64 {
	days := julianDay - Y2KJulianDay

	gha := 280.46061837 + float64((360*days)%360) + 0.98564736629*float64(days) +
		360.98564736629*fraction

	return degToRad * math.Mod(gha, 360)
}

// HourAngle is the local hour angle of the sun: how far the earth has
// rotated the observer's meridian past the sun's right ascension
func HourAngle(greenwichHourAngle, longitude, rightAscension float64) float64 {
	return greenwichHourAngle + longitude - rightAscension
}

// Elevation is the geometric angle of the sun above the horizon.
// No refraction correction is applied.
func Elevation(latitude, declination, hourAngle float64) float64 {
	sin := math.Sin(latitude)*math.Sin(declination) +
		math.Cos(latitude)*math.Cos(declination)*math.Cos(hourAngle)

	// rounding can push the sine past ±1 at the subsolar point
	return math.Asin(math.Max(-1, math.Min(1, sin)))
}

// Azimuth is the sun's bearing measured clockwise from true north,
// in the range [0, 2π).
func Azimuth(latitude, declination, hourAngle float64) float64 {
	az := math.Pi + math.Atan2(
		math.Sin(hourAngle),
		math.Cos(hourAngle)*math.Sin(latitude)-math.Tan(declination)*math.Cos(latitude),
	)

	if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}
	return az
}
