package main

import (
	"flag"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/subtlepseudonym/heliostat"
)

const (
	defaultInterval = time.Second
	minInterval     = 100 * time.Millisecond
)

type tickMsg time.Time

// watchModel redraws the sun's position on every tick
type watchModel struct {
	calculator *heliostat.Calculator
	interval   time.Duration
	position   heliostat.Position
}

func newWatchModel(calculator *heliostat.Calculator, interval time.Duration) watchModel {
	return watchModel{
		calculator: calculator,
		interval:   interval,
		position:   calculator.Position(),
	}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tickMsg:
		m.position = m.calculator.Position()
		return m, m.tick()
	}
	return m, nil
}

// View implements tea.Model.
func (m watchModel) View() string {
	return renderPosition(m.calculator.Location(), m.position) + "\n" +
		labelStyle.Render("q to quit") + "\n"
}

func runWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	location := locationFlags(fs)
	interval := fs.Duration("interval", defaultInterval, "refresh interval (e.g. 1s, 1m)")

	if err := fs.Parse(args); err != nil {
		log.Fatalf("ERR: parse flags: %s", err)
	}
	if *interval < minInterval {
		*interval = minInterval
	}

	calculator := heliostat.New(location(), heliostat.WithTimeSource(heliostat.SystemClock))

	p := tea.NewProgram(newWatchModel(calculator, *interval))
	if _, err := p.Run(); err != nil {
		log.Fatalf("ERR: run watch view: %s", err)
	}
}
