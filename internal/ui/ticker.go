package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type timerTickMsg struct {
	gen int
}

// Ticker feeds the focus timer from Bubble Tea tick messages so every tick is
// handled inside Update. Each Start begins a new generation; ticks from an
// earlier generation are dropped.
type Ticker struct {
	tick    func()
	running bool
	armed   bool
	gen     int
}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) Start(tick func()) {
	t.tick = tick
	t.running = true
	t.armed = true
	t.gen++
}

func (t *Ticker) Stop() {
	t.running = false
	t.armed = false
}

// arm returns the first tick command after Start, once.
func (t *Ticker) arm() tea.Cmd {
	if !t.armed {
		return nil
	}
	t.armed = false
	return timerTickCmd(t.gen)
}

// fire delivers one tick and schedules the next while the generation lives.
func (t *Ticker) fire(gen int) tea.Cmd {
	if !t.running || gen != t.gen {
		return nil
	}
	t.tick()
	if !t.running || gen != t.gen {
		return nil
	}
	return timerTickCmd(gen)
}

func timerTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return timerTickMsg{gen: gen} })
}
