package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/subtlepseudonym/heliostat"
	"github.com/subtlepseudonym/heliostat/solar"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // yellow
	duskStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // orange
	nightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))  // blue

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)
)

// compass names bearings in 16 points starting from north
var compass = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func compassPoint(azimuth float64) string {
	idx := int((azimuth+11.25)/22.5) % len(compass)
	if idx < 0 {
		idx += len(compass)
	}
	return compass[idx]
}

// elevationStyle colors the elevation by how much light the sun gives
func elevationStyle(elevation float64) lipgloss.Style {
	switch {
	case elevation >= 0:
		return dayStyle
	case elevation >= -6:
		return duskStyle
	default:
		return nightStyle
	}
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func formatSunTime(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return t.Local().Format("15:04 MST")
}

func renderPosition(location heliostat.Location, pos heliostat.Position) string {
	t := time.Unix(pos.Time, 0)
	rise, set := heliostat.SunTimes(location, t.UTC())

	rows := []string{
		titleStyle.Render(fmt.Sprintf("Sun at %s", location)),
		row("time", t.Local().Format(time.RFC3339)),
		row("julian date", fmt.Sprintf("%.5f", solar.JulianDate(t))),
		lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render("elevation"),
			elevationStyle(pos.Elevation).Render(fmt.Sprintf("%.2f°", pos.Elevation)),
		),
		row("azimuth", fmt.Sprintf("%.2f° %s", pos.Azimuth, compassPoint(pos.Azimuth))),
		row("distance", fmt.Sprintf("%.0f km", pos.Distance)),
		row("sunrise", formatSunTime(rise)),
		row("sunset", formatSunTime(set)),
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}
