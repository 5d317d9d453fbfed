package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/heliostat"
	"github.com/subtlepseudonym/heliostat/config"
	"github.com/subtlepseudonym/heliostat/device"
)

const defaultConfigFile = "secrets/heliostat.cfg"

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configFile := fs.String("config", defaultConfigFile, "path to JSON config file")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("ERR: parse flags: %s", err)
	}

	cfg, err := config.Open(*configFile)
	if err != nil {
		log.Fatalf("ERR: read config file failed: %s", err)
	}

	err = cfg.Validate()
	if err != nil {
		log.Fatalf("ERR: invalid config: %s", err)
	}

	devices := make(map[string]device.Device)
	for label, dev := range cfg.Devices {
		d, err := device.Connect(label, dev)
		if err != nil {
			log.Printf("ERR: connect device: %s", err)
			continue
		}
		devices[label] = d
		log.Printf("registered device: %q %s", label, d)
	}

	calculator := heliostat.New(cfg.Location, heliostat.WithTimeSource(heliostat.SystemClock))

	transition, _ := time.ParseDuration(cfg.Transition) // checked by Validate
	curve := device.DefaultCurve
	var tracked []string
	if cfg.Curve != nil {
		curve = cfg.Curve.Curve()
		tracked = cfg.Curve.Devices
	}

	tracker := heliostat.NewTracker(calculator, curve, transition)
	for _, label := range tracked {
		if d, ok := devices[label]; ok {
			tracker.Devices[label] = d
		}
	}

	now := time.Now() // used for logging cron entries
	sunCron := cron.New()

	trackSchedule, _ := heliostat.ParseSchedule(cfg.Track, cfg.Location)
	sunCron.Schedule(trackSchedule, tracker)
	log.Printf("tracker: %s: %d devices", trackSchedule.Next(now).Local().Format(time.RFC3339), len(tracker.Devices))

	for _, job := range cfg.Jobs {
		dev, ok := devices[job.Device]
		if !ok {
			log.Printf("ERR: job device %q not connected", job.Device)
			continue
		}

		schedule, _ := heliostat.ParseSchedule(job.Schedule, cfg.Location)
		jobTransition, _ := time.ParseDuration(job.Transition)
		color := job.Setting.Color()

		sunCron.Schedule(schedule, heliostat.Job{
			Device:     dev,
			Color:      &color,
			Transition: jobTransition,
		})
		log.Printf("job: %s: %s", schedule.Next(now).Local().Format(time.RFC3339), dev.Label())
	}

	// record a position immediately rather than waiting for the first tick
	go tracker.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/position", heliostat.PositionHandler(calculator))
	mux.HandleFunc("/tracker", heliostat.TrackerHandler(tracker))
	mux.HandleFunc("GET /devices/{$}", heliostat.DeviceHandler(devices))
	mux.HandleFunc("GET /devices/{label}", heliostat.DeviceHandler(devices))

	srv := http.Server{
		Addr:    cfg.Listen,
		Handler: mux,
	}
	log.Printf("listening on %s", srv.Addr)

	sunCron.Start()
	log.Fatal(srv.ListenAndServe())
}
