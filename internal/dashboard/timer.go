package dashboard

import (
	"fmt"

	"github.com/faizmokh/productify/internal/storage"
)

// DefaultPresetMinutes is the focus length used when none is configured.
const DefaultPresetMinutes = 25

// Ticker is the periodic capability driving a running countdown: once started
// it calls tick once per second, on the same goroutine that handles user input,
// until stopped.
type Ticker interface {
	Start(tick func())
	Stop()
}

type TimerState uint8

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerPaused
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	default:
		return "idle"
	}
}

// TimerEvent is emitted when a countdown reaches zero. Err is set when the
// new session count could not be persisted.
type TimerEvent struct {
	Sessions int
	Err      error
}

// TimerSnapshot is a read-only copy of the timer for rendering.
type TimerSnapshot struct {
	State     TimerState
	Remaining int
	Total     int
	Preset    int
	Sessions  int
}

// Clock renders the remaining time as MM:SS.
func (s TimerSnapshot) Clock() string {
	return fmt.Sprintf("%02d:%02d", s.Remaining/60, s.Remaining%60)
}

// FocusTimer is a single countdown. Only the completed-session count is
// persisted; the countdown itself never survives a reload.
type FocusTimer struct {
	adapter   *storage.Adapter
	ticker    Ticker
	listeners []func(TimerEvent)

	state     TimerState
	remaining int
	total     int
	preset    int
	sessions  int
}

// NewFocusTimer returns an Idle timer at presetMinutes. A nil ticker means the
// owner calls Tick itself.
func NewFocusTimer(adapter *storage.Adapter, ticker Ticker, presetMinutes int) *FocusTimer {
	if presetMinutes <= 0 {
		presetMinutes = DefaultPresetMinutes
	}
	if ticker == nil {
		ticker = manualTicker{}
	}
	t := &FocusTimer{adapter: adapter, ticker: ticker, preset: presetMinutes}
	t.idle()
	return t
}

// OnSessionComplete registers fn to be called for every completed countdown.
func (t *FocusTimer) OnSessionComplete(fn func(TimerEvent)) {
	t.listeners = append(t.listeners, fn)
}

// Start runs the countdown from Idle or Paused. It is a no-op while running.
func (t *FocusTimer) Start() {
	if t.state == TimerRunning {
		return
	}
	t.state = TimerRunning
	t.ticker.Start(t.Tick)
}

// Pause stops a running countdown, keeping the remaining time.
func (t *FocusTimer) Pause() {
	if t.state != TimerRunning {
		return
	}
	t.ticker.Stop()
	t.state = TimerPaused
}

// Toggle pauses a running countdown and starts any other.
func (t *FocusTimer) Toggle() {
	if t.state == TimerRunning {
		t.Pause()
		return
	}
	t.Start()
}

// Tick advances a running countdown by one second. Remaining never goes below
// zero; reaching zero completes the session.
func (t *FocusTimer) Tick() {
	if t.state != TimerRunning {
		return
	}
	t.remaining--
	if t.remaining > 0 {
		return
	}
	t.remaining = 0
	t.complete()
}

// Reset abandons the current countdown without counting it.
func (t *FocusTimer) Reset() {
	t.ticker.Stop()
	t.idle()
}

// SelectPreset abandons the current countdown and switches to minutes.
func (t *FocusTimer) SelectPreset(minutes int) error {
	if minutes <= 0 {
		return ErrInvalidPreset
	}
	t.ticker.Stop()
	t.preset = minutes
	t.idle()
	return nil
}

func (t *FocusTimer) State() TimerState { return t.state }
func (t *FocusTimer) Remaining() int    { return t.remaining }
func (t *FocusTimer) Total() int        { return t.total }
func (t *FocusTimer) Preset() int       { return t.preset }
func (t *FocusTimer) Sessions() int     { return t.sessions }

// Progress is the fraction of the countdown still remaining, 1 at start.
func (t *FocusTimer) Progress() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.total)
}

func (t *FocusTimer) Snapshot() TimerSnapshot {
	return TimerSnapshot{
		State:     t.state,
		Remaining: t.remaining,
		Total:     t.total,
		Preset:    t.preset,
		Sessions:  t.sessions,
	}
}

// Load restores the session count. The countdown is reset to the preset.
func (t *FocusTimer) Load() error {
	t.ticker.Stop()
	t.idle()
	sessions, ok, err := storage.Load[int](t.adapter, TimerSessionsKey)
	if err != nil {
		return err
	}
	if ok && sessions >= 0 {
		t.sessions = sessions
	}
	return nil
}

func (t *FocusTimer) complete() {
	t.ticker.Stop()
	t.sessions++
	err := t.adapter.Save(TimerSessionsKey, t.sessions)
	t.idle()

	event := TimerEvent{Sessions: t.sessions, Err: err}
	for _, fn := range t.listeners {
		fn(event)
	}
}

func (t *FocusTimer) idle() {
	t.state = TimerIdle
	t.total = t.preset * 60
	t.remaining = t.total
}

type manualTicker struct{}

func (manualTicker) Start(func()) {}
func (manualTicker) Stop()        {}
