package solar

import (
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gotest.tools/v3/assert"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  int64
	}{
		{"J2000 epoch", 2000, 1, 1, 2451545},
		{"Gregorian reform", 1582, 10, 15, 2299161},
		{"Sputnik launch", 1957, 10, 4, 2436116},
		{"January rolls to previous year", 1987, 1, 27, 2446823},
		{"leap day", 2024, 2, 29, 2460370},
		{"after leap day", 2024, 3, 1, 2460371},
		{"far future", 2100, 12, 31, 2488434},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.year, tt.month, tt.day)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestJulianDayMatchesMeeus(t *testing.T) {
	date := time.Date(1600, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2400, time.January, 1, 0, 0, 0, 0, time.UTC)

	for ; date.Before(end); date = date.AddDate(0, 0, 13) {
		year, month, day := date.Date()
		want := julian.CalendarGregorianToJD(year, int(month), float64(day)) + 0.5

		got := JulianDay(year, int(month), day)
		if float64(got) != want {
			t.Fatalf("JulianDay(%d, %d, %d) = %d, want %.1f", year, month, day, got, want)
		}
	}
}

func TestJulianDayMonotonic(t *testing.T) {
	date := time.Date(1583, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2500, time.January, 1, 0, 0, 0, 0, time.UTC)

	year, month, day := date.Date()
	prev := JulianDay(year, int(month), day)
	for date = date.AddDate(0, 0, 1); date.Before(end); date = date.AddDate(0, 0, 1) {
		year, month, day = date.Date()
		jd := JulianDay(year, int(month), day)
		if jd != prev+1 {
			t.Fatalf("%s: JulianDay = %d, previous day was %d", date.Format("2006-01-02"), jd, prev)
		}
		prev = jd
	}
}

func TestDayFraction(t *testing.T) {
	assert.Equal(t, DayFraction(0, 0, 0), -0.5)
	assert.Equal(t, DayFraction(12, 0, 0), 0.0)
	assert.Equal(t, DayFraction(18, 0, 0), 0.25)
	assert.Assert(t, math.Abs(DayFraction(23, 59, 59)-(0.5-1.0/SecondsPerDay)) < 1e-12)

	prev := DayFraction(0, 0, 0)
	for s := 1; s < SecondsPerDay; s++ {
		got := DayFraction(s/3600, s/60%60, s%60)
		if math.Abs(got-prev-1.0/SecondsPerDay) > 1e-12 {
			t.Fatalf("second %d: DayFraction stepped %v, want %v", s, got-prev, 1.0/SecondsPerDay)
		}
		prev = got
	}
}

func TestJulianDate(t *testing.T) {
	times := []time.Time{
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, time.June, 21, 6, 30, 15, 0, time.UTC),
		time.Date(2038, time.January, 19, 3, 14, 8, 0, time.FixedZone("EST", -5*3600)),
	}

	for _, tm := range times {
		got := JulianDate(tm)
		want := julian.TimeToJD(tm.UTC())
		assert.Assert(t, math.Abs(got-want) < 1e-6, "%s: got %f, want %f", tm, got, want)
	}
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, floorDiv(7, 2), 3)
	assert.Equal(t, floorDiv(-7, 2), -4)
	assert.Equal(t, floorDiv(-8, 2), -4)
	assert.Equal(t, floorDiv(0, 100), 0)
	assert.Equal(t, floorDiv(-1, 100), -1)
}
