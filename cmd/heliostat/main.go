package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/subtlepseudonym/heliostat"
)

func main() {
	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("ERR: load tz location: %s", err)
		}
		time.Local = loc
	}

	if len(os.Args) < 2 || strings.HasPrefix(os.Args[1], "-") {
		runPosition(os.Args[1:])
		return
	}

	switch os.Args[1] {
	case "watch":
		runWatch(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(1)
	}
}

func usage() {
	printUsage(os.Stderr)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `heliostat: where is the sun

Usage:
  heliostat [flags]           # sun position at an instant
  heliostat watch [flags]     # live sun position
  heliostat serve [flags]     # track the sun with lights

Position flags:
  -lat float
        latitude in degrees (north positive)
  -lon float
        longitude in degrees (east positive, west negative)
  -time string
        RFC 3339 time or unix seconds (defaults to now)
  -json
        output result as JSON
`)
}

// locationFlags registers the -lat and -lon flags on fs
func locationFlags(fs *flag.FlagSet) func() heliostat.Location {
	lat := fs.Float64("lat", 0, "latitude in degrees (north positive)")
	lon := fs.Float64("lon", 0, "longitude in degrees (east positive, west negative)")

	return func() heliostat.Location {
		location := heliostat.Location{
			Latitude:  *lat,
			Longitude: *lon,
		}

		if err := location.Validate(); err != nil {
			log.Fatalf("ERR: %s", err)
		}
		if *lat == 0 && *lon == 0 {
			log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use -lat and -lon to set a real location.")
		}
		return location
	}
}

func runPosition(args []string) {
	fs := flag.NewFlagSet("heliostat", flag.ExitOnError)
	fs.Usage = usage
	location := locationFlags(fs)
	timeS := fs.String("time", "", "RFC 3339 time or unix seconds (defaults to now)")
	jsonOut := fs.Bool("json", false, "output result as JSON")

	if err := fs.Parse(args); err != nil {
		log.Fatalf("ERR: parse flags: %s", err)
	}

	instant, err := parseInstant(*timeS, time.Now())
	if err != nil {
		log.Fatalf("ERR: invalid -time %q: %s", *timeS, err)
	}

	loc := location()
	pos := heliostat.New(loc).PositionAt(instant)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(pos); err != nil {
			log.Fatalf("ERR: encode position: %s", err)
		}
		return
	}

	fmt.Println(renderPosition(loc, pos))
}

// parseInstant accepts unix seconds or an RFC 3339 timestamp. An empty
// string selects now.
func parseInstant(s string, now time.Time) (int64, error) {
	if s == "" {
		return now.Unix(), nil
	}

	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return unix, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("parse time: %w", err)
	}
	return t.Unix(), nil
}
