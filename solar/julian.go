package solar

import (
	"math"
	"time"
)

const (
	Y2KJulianDay         = 2451545 // Julian day number of 2000-01-01
	DaysPerJulianCentury = 36525.0
	SecondsPerDay        = 86400 // not including leap seconds
)

// JulianDay returns the Julian day number for a proleptic Gregorian
// calendar date. The result refers to noon of that date; use
// DayFraction to offset it to a particular time of day.
//
// January and February are treated as months 13 and 14 of the
// previous year so that the leap day falls at the end of the
// calculation year.
//
// https://en.wikipedia.org/wiki/Julian_day
func JulianDay(year, month, day int) int64 {
	if month <= 2 {
		year--
		month += 12
	}

	a := floorDiv(year, 100)
	b := 2 - a + floorDiv(a, 4)

	return int64(math.Floor(365.25*float64(year+4716))) +
		int64(math.Floor(30.6001*float64(month+1))) +
		int64(day+b) - 1524
}

// DayFraction returns the fraction of a day elapsed at the given
// time of day, relative to noon. Midnight is -0.5.
func DayFraction(hour, minute, second int) float64 {
	seconds := hour*3600 + minute*60 + second
	return float64(seconds)/SecondsPerDay - 0.5
}

// JulianDate returns the continuous Julian date for t in UTC.
// No leap second or terrestrial time correction is applied.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return float64(JulianDay(year, int(month), day)) + DayFraction(hour, minute, second)
}

// floorDiv is integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
