// Package solar contains the pure computation behind heliostat: a low
// order series approximation of the sun's geocentric position and its
// conversion into horizontal coordinates for an observer.
//
// Accuracy is a fraction of a degree over several centuries around
// 2000. All angles are radians and distances astronomical units.
package solar

import (
	"time"
)

const KilometersPerAU = 149597870.7

// Coordinates is the position of the sun as seen by an observer
type Coordinates struct {
	Elevation float64 // radians above the horizon, negative below
	Azimuth   float64 // radians clockwise from north
	Distance  float64 // astronomical units
}

// Calculate returns the sun's position at instant, expressed in unix
// seconds, for an observer at latitude and longitude (radians, east
// positive).
//
// Every instant produces a result; out of range locations produce
// values that have no physical meaning.
func Calculate(instant int64, latitude, longitude float64) Coordinates {
	t := time.Unix(instant, 0).UTC()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	julianDay := JulianDay(year, int(month), day)
	fraction := DayFraction(hour, minute, second)
	centuries := JulianCenturies(julianDay, fraction)

	meanLongitude := MeanLongitude(centuries)
	meanAnomaly := MeanAnomaly(centuries)
	eccentricity := OrbitEccentricity(centuries)
	center := EquationOfTheCenter(meanAnomaly, centuries)

	trueAnomaly := meanAnomaly + center
	trueLongitude := EclipticLongitude(meanLongitude, center)
	obliquity := Obliquity(centuries)

	rightAscension := RightAscension(trueLongitude, obliquity)
	declination := Declination(trueLongitude, obliquity)
	hourAngle := HourAngle(GreenwichHourAngle(julianDay, fraction), longitude, rightAscension)

	return Coordinates{
		Elevation: Elevation(latitude, declination, hourAngle),
		Azimuth:   Azimuth(latitude, declination, hourAngle),
		Distance:  Distance(eccentricity, trueAnomaly),
	}
}

// Kilometers converts the earth-sun distance to kilometers
func (c Coordinates) Kilometers() float64 {
	return c.Distance * KilometersPerAU
}

// Degrees returns elevation and azimuth in degrees
func (c Coordinates) Degrees() (elevation, azimuth float64) {
	return c.Elevation * radToDeg, c.Azimuth * radToDeg
}

// Radians converts degrees to radians
func Radians(degrees float64) float64 {
	return degrees * degToRad
}

// Degrees converts radians to degrees
func Degrees(radians float64) float64 {
	return radians * radToDeg
}
