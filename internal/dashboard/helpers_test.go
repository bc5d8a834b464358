package dashboard

import (
	"errors"
	"testing"

	"github.com/faizmokh/productify/internal/storage"
)

var errWriteFailed = errors.New("quota exceeded")

// flakySubstrate fails every Set while failing is true.
type flakySubstrate struct {
	*storage.Memory
	failing bool
}

func (f *flakySubstrate) Set(key, value string) error {
	if f.failing {
		return errWriteFailed
	}
	return f.Memory.Set(key, value)
}

// fakeTicker records Start/Stop; tests drive the tick by hand.
type fakeTicker struct {
	tick    func()
	starts  int
	stops   int
	running bool
}

func (f *fakeTicker) Start(tick func()) {
	f.tick = tick
	f.starts++
	f.running = true
}

func (f *fakeTicker) Stop() {
	f.stops++
	f.running = false
}

func (f *fakeTicker) fire(n int) {
	for range n {
		if !f.running {
			return
		}
		f.tick()
	}
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func newMemoryAdapter(t *testing.T) (*storage.Adapter, *flakySubstrate) {
	t.Helper()
	sub := &flakySubstrate{Memory: storage.NewMemory()}
	return storage.NewAdapter(sub, nil), sub
}
