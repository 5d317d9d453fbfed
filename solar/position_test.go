package solar

import (
	"math"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

// angleBetween returns the smallest separation between two bearings in degrees
func angleBetween(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		time          time.Time
		lat, lon      float64 // degrees
		wantElevation float64 // degrees
		wantAzimuth   float64 // degrees
		tolerance     float64
	}{
		{
			name:          "equator at equinox solar noon",
			time:          time.Date(2024, time.March, 20, 12, 7, 0, 0, time.UTC),
			lat:           0,
			lon:           0,
			wantElevation: 89.8,
			tolerance:     1,
		},
		{
			name:          "Greenwich winter solstice noon",
			time:          time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC),
			lat:           51.4769,
			lon:           0,
			wantElevation: 15.09,
			wantAzimuth:   180.4,
			tolerance:     0.5,
		},
		{
			name:          "Boulder summer solstice early afternoon",
			time:          time.Date(2024, time.June, 21, 19, 0, 0, 0, time.UTC),
			lat:           40.015,
			lon:           -105.27,
			wantElevation: 73.4,
			wantAzimuth:   177.5,
			tolerance:     0.5,
		},
		{
			name:          "northern midnight points north",
			time:          time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC),
			lat:           45,
			lon:           0,
			wantElevation: -21.56,
			wantAzimuth:   0,
			tolerance:     1,
		},
		{
			name:          "southern midnight points south",
			time:          time.Date(2024, time.June, 21, 0, 0, 0, 0, time.UTC),
			lat:           -45,
			lon:           0,
			wantElevation: -68.43,
			wantAzimuth:   180,
			tolerance:     1.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords := Calculate(tt.time.Unix(), Radians(tt.lat), Radians(tt.lon))
			elevation, azimuth := coords.Degrees()

			if math.Abs(elevation-tt.wantElevation) > tt.tolerance {
				t.Errorf("elevation = %.3f°, want %.3f° (±%.2f)", elevation, tt.wantElevation, tt.tolerance)
			}

			// azimuth is meaningless with the sun overhead
			if tt.wantElevation < 89 && angleBetween(azimuth, tt.wantAzimuth) > tt.tolerance {
				t.Errorf("azimuth = %.3f°, want %.3f° (±%.2f)", azimuth, tt.wantAzimuth, tt.tolerance)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	instant := time.Date(2031, time.August, 9, 17, 45, 12, 0, time.UTC).Unix()
	lat, lon := Radians(-33.8688), Radians(151.2093)

	first := Calculate(instant, lat, lon)
	second := Calculate(instant, lat, lon)
	assert.Equal(t, first, second)
}

func TestCalculateRanges(t *testing.T) {
	lat, lon := Radians(64.1466), Radians(-21.9426)

	start := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, time.January, 1, 0, 0, 0, 0, time.UTC)
	for tm := start; tm.Before(end); tm = tm.Add(97*time.Hour + 13*time.Minute) {
		coords := Calculate(tm.Unix(), lat, lon)

		if coords.Distance < 0.983 || coords.Distance > 1.017 {
			t.Fatalf("%s: distance %.6f AU outside orbital bounds", tm, coords.Distance)
		}
		if coords.Azimuth < 0 || coords.Azimuth >= 2*math.Pi {
			t.Fatalf("%s: azimuth %.6f outside [0, 2π)", tm, coords.Azimuth)
		}
		if math.IsNaN(coords.Elevation) || math.Abs(coords.Elevation) > math.Pi/2 {
			t.Fatalf("%s: elevation %.6f outside [-π/2, π/2]", tm, coords.Elevation)
		}
	}
}

func TestElevationOverhead(t *testing.T) {
	for i := 0; i < 100000; i++ {
		x := Radians(-90 + 180*float64(i)/100000)
		el := Elevation(x, x, 0)
		if math.IsNaN(el) || math.Abs(el-math.Pi/2) > 1e-6 {
			t.Fatalf("Elevation(%v, %v, 0) = %v, want π/2", x, x, el)
		}
	}
}

func TestCalculateSubsolarPoint(t *testing.T) {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC).Unix()
	for i := int64(0); i < 2000; i++ {
		instant := start + i*15779
		tm := time.Unix(instant, 0).UTC()
		year, month, day := tm.Date()
		hour, minute, second := tm.Clock()

		julianDay := JulianDay(year, int(month), day)
		fraction := DayFraction(hour, minute, second)
		centuries := JulianCenturies(julianDay, fraction)
		longitude := EclipticLongitude(MeanLongitude(centuries), EquationOfTheCenter(MeanAnomaly(centuries), centuries))
		obliquity := Obliquity(centuries)

		// the observer directly beneath the sun
		lat := Declination(longitude, obliquity)
		lon := RightAscension(longitude, obliquity) - GreenwichHourAngle(julianDay, fraction)

		coords := Calculate(instant, lat, lon)
		if math.IsNaN(coords.Elevation) || math.Abs(coords.Elevation-math.Pi/2) > 1e-6 {
			t.Fatalf("%s: elevation %v at %.6f,%.6f, want π/2", tm, coords.Elevation, Degrees(lat), Degrees(lon))
		}
	}
}

func TestPerihelionAphelion(t *testing.T) {
	// perihelion falls in early January, aphelion in early July
	jan := Calculate(time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC).Unix(), 0, 0)
	jul := Calculate(time.Date(2024, time.July, 5, 0, 0, 0, 0, time.UTC).Unix(), 0, 0)

	assert.Assert(t, jan.Distance < jul.Distance)
	assert.Assert(t, math.Abs(jan.Kilometers()-147.1e6) < 0.1e6, "perihelion %.0f km", jan.Kilometers())
	assert.Assert(t, math.Abs(jul.Kilometers()-152.1e6) < 0.1e6, "aphelion %.0f km", jul.Kilometers())
}

func TestDeclinationAtSolstice(t *testing.T) {
	centuries := JulianCenturies(JulianDay(2024, 6, 20), DayFraction(20, 51, 0))
	meanLongitude := MeanLongitude(centuries)
	center := EquationOfTheCenter(MeanAnomaly(centuries), centuries)
	longitude := EclipticLongitude(meanLongitude, center)

	declination := Degrees(Declination(longitude, Obliquity(centuries)))
	assert.Assert(t, math.Abs(declination-23.44) < 0.05, "declination %.4f°", declination)
}

func TestObliquity(t *testing.T) {
	assert.Assert(t, math.Abs(Degrees(Obliquity(0))-23.4392911) < 1e-6)
	assert.Assert(t, Obliquity(1) < Obliquity(0))
}

func TestAzimuthWraps(t *testing.T) {
	// sin(π) is a hair above zero, which would place the sun at exactly 2π
	az := Azimuth(Radians(45), 0, math.Pi)
	assert.Assert(t, az >= 0 && az < 2*math.Pi, "azimuth %v", az)
}
