// Package sysclip connects the notes buffer to the system clipboard.
package sysclip

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/faizmokh/productify/internal/dashboard"
)

// System writes to the OS clipboard through xclip/xsel/wl-copy, pbcopy or the
// Windows API, whichever is present.
type System struct {
	unsupported bool
	write       func(string) error
}

func New() *System {
	return &System{unsupported: clipboard.Unsupported, write: clipboard.WriteAll}
}

func (s *System) WriteText(text string) error {
	if s.unsupported {
		return dashboard.ErrClipboardUnavailable
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("%w: %v", dashboard.ErrClipboardDenied, err)
	}
	return nil
}
