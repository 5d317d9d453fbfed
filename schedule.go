package heliostat

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/robfig/cron/v3"
)

const (
	sunrisePrefix = "@sunrise"
	sunsetPrefix  = "@sunset"

	// searchLimit bounds how many days Next will look ahead for an
	// event at latitudes with polar day or night
	searchLimit = 366
)

type SolarEvent int

const (
	Sunrise SolarEvent = iota
	Sunset
)

func (e SolarEvent) String() string {
	switch e {
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	default:
		return fmt.Sprintf("SolarEvent(%d)", int(e))
	}
}

// SunTimes returns sunrise and sunset in UTC for the calendar date of
// date at location. Either value is the zero time if the sun does not
// rise or set that day.
func SunTimes(location Location, date time.Time) (rise, set time.Time) {
	year, month, day := date.Date()
	return sunrise.SunriseSunset(location.Latitude, location.Longitude, year, month, day)
}

// SolarSchedule fires at an offset from sunrise or sunset each day
//
// This implements robfig/cron.Schedule
type SolarSchedule struct {
	Location Location      `json:"location"`
	Event    SolarEvent    `json:"event"`
	Offset   time.Duration `json:"offset"`
}

// Next returns the first event time strictly after now. The zero time
// is returned if no event occurs within a year, which cron treats as
// never.
func (s SolarSchedule) Next(now time.Time) time.Time {
	date := now.UTC().AddDate(0, 0, -1)

	for i := 0; i < searchLimit; i++ {
		rise, set := SunTimes(s.Location, date)
		event := rise
		if s.Event == Sunset {
			event = set
		}

		if !event.IsZero() {
			next := event.Add(s.Offset)
			if next.After(now) {
				log.Printf("next %s %s: %s", s.Event, s.Offset, next.Local().Format(time.RFC3339))
				return next
			}
		}

		date = date.AddDate(0, 0, 1)
	}

	log.Printf("ERR: no %s within %d days at %s", s.Event, searchLimit, s.Location)
	return time.Time{}
}

// ParseSchedule parses a cron spec, additionally accepting
// "@sunrise [offset]" and "@sunset [offset]" where offset is a
// time.ParseDuration string such as "-30m".
func ParseSchedule(spec string, location Location) (cron.Schedule, error) {
	var event SolarEvent
	switch {
	case strings.HasPrefix(spec, sunrisePrefix):
		event = Sunrise
	case strings.HasPrefix(spec, sunsetPrefix):
		event = Sunset
	default:
		schedule, err := cron.ParseStandard(spec)
		if err != nil {
			return nil, fmt.Errorf("parse cron spec: %w", err)
		}
		return schedule, nil
	}

	fields := strings.Fields(spec)
	if fields[0] != sunrisePrefix && fields[0] != sunsetPrefix {
		return nil, fmt.Errorf("unknown descriptor %q", fields[0])
	}

	var offset time.Duration
	if len(fields) > 2 {
		return nil, fmt.Errorf("%s: too many fields", spec)
	}
	if len(fields) == 2 {
		var err error
		offset, err = time.ParseDuration(fields[1])
		if err != nil {
			return nil, fmt.Errorf("parse %s offset: %w", event, err)
		}
	}

	return SolarSchedule{
		Location: location,
		Event:    event,
		Offset:   offset,
	}, nil
}
