package sysclip

import (
	"errors"
	"testing"

	"github.com/faizmokh/productify/internal/dashboard"
)

func TestWriteTextUnsupported(t *testing.T) {
	s := &System{unsupported: true, write: func(string) error { return nil }}
	if err := s.WriteText("hi"); !errors.Is(err, dashboard.ErrClipboardUnavailable) {
		t.Fatalf("WriteText err = %v, want ErrClipboardUnavailable", err)
	}
}

func TestWriteTextFailureIsDenied(t *testing.T) {
	s := &System{write: func(string) error { return errors.New("exit status 1") }}
	if err := s.WriteText("hi"); !errors.Is(err, dashboard.ErrClipboardDenied) {
		t.Fatalf("WriteText err = %v, want ErrClipboardDenied", err)
	}
}

func TestWriteText(t *testing.T) {
	var got string
	s := &System{write: func(text string) error { got = text; return nil }}
	if err := s.WriteText("standup notes"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if got != "standup notes" {
		t.Fatalf("clipboard = %q", got)
	}
}
