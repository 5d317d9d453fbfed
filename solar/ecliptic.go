package solar

import (
	"math"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// JulianCenturies converts a Julian day number and day fraction into
// Julian centuries elapsed since 2000-01-01T12:00.
func JulianCenturies(julianDay int64, fraction float64) float64 {
	elapsed := float64(julianDay - Y2KJulianDay)
	return (elapsed + fraction) / DaysPerJulianCentury
}

// MeanLongitude calculates the mean longitude of the sun, in
// radians, for a time expressed in Julian centuries.
func MeanLongitude(centuries float64) float64 {
	return degToRad * math.Mod(280.46645+36000.76983*centuries, 360)
}

// MeanAnomaly calculates the fraction of the sun's orbital period
// elapsed since perihelion, expressed as an angle in radians.
func MeanAnomaly(centuries float64) float64 {
	return degToRad * math.Mod(357.5291+35999.0503*centuries, 360)
}

// OrbitEccentricity is the eccentricity of the earth's orbit,
// which decreases slowly over time.
func OrbitEccentricity(centuries float64) float64 {
	return 0.016708617 - 0.000042037*centuries
}

// EquationOfTheCenter calculates the angular difference
// between the position of the actual sun (with an elliptical
// orbit) and the mean sun (with a circular orbit). This
// can be expressed as a function of mean anomaly and
// orbital eccentricity, which itself drifts with time.
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func EquationOfTheCenter(meanAnomaly, centuries float64) float64 {
	firstOrder := (1.9146 - 0.004847*centuries) * math.Sin(meanAnomaly)
	secondOrder := (0.019993 - 0.000101*centuries) * math.Sin(2*meanAnomaly)
	thirdOrder := 0.00029 * math.Sin(3*meanAnomaly)

	return degToRad * (firstOrder + secondOrder + thirdOrder)
}

// EclipticLongitude calculates the sun's true longitude along the
// ecliptic, wrapped to a single revolution
func EclipticLongitude(meanLongitude, center float64) float64 {
	return math.Mod(center+meanLongitude, 2*math.Pi)
}

// Obliquity is the tilt of the earth's equator relative to the
// ecliptic: 23°26'21.448" less 46.815" per century.
func Obliquity(centuries float64) float64 {
	return degToRad * (23 + 26/60.0 + 21.448/3600.0 - 46.815/3600.0*centuries)
}

// RightAscension converts ecliptic longitude into right ascension
func RightAscension(longitude, obliquity float64) float64 {
	return math.Atan2(math.Sin(longitude)*math.Cos(obliquity), math.Cos(longitude))
}

// Declination converts ecliptic longitude into declination
func Declination(longitude, obliquity float64) float64 {
	return math.Asin(math.Sin(obliquity) * math.Sin(longitude))
}

// Distance calculates the earth-sun distance in astronomical units
// from the orbit eccentricity and the sun's true anomaly.
func Distance(eccentricity, trueAnomaly float64) float64 {
	return 1.000001018 * (1 - eccentricity*eccentricity) / (1 + eccentricity*math.Cos(trueAnomaly))
}
