package dashboard

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/faizmokh/productify/internal/storage"
)

// Clipboard is the external capability notes are copied to. Implementations
// report ErrClipboardUnavailable or ErrClipboardDenied.
type Clipboard interface {
	WriteText(text string) error
}

// NotesStore owns the single free-text buffer.
type NotesStore struct {
	adapter   *storage.Adapter
	clipboard Clipboard
	text      string
}

func NewNotesStore(adapter *storage.Adapter, clipboard Clipboard) *NotesStore {
	return &NotesStore{adapter: adapter, clipboard: clipboard}
}

func (n *NotesStore) Text() string {
	return n.text
}

func (n *NotesStore) Count() int {
	return utf8.RuneCountInString(n.text)
}

// SetText replaces the buffer and returns its character count.
func (n *NotesStore) SetText(text string) (int, error) {
	n.text = text
	return n.Count(), n.adapter.Save(NotesKey, n.text)
}

// Clear empties the buffer once confirm returns true. confirm is not asked
// when there is nothing to clear.
func (n *NotesStore) Clear(confirm func() bool) error {
	if strings.TrimSpace(n.text) == "" {
		return ErrNotesEmpty
	}
	if confirm == nil || !confirm() {
		return ErrNotConfirmed
	}
	n.text = ""
	return n.adapter.Save(NotesKey, n.text)
}

// CopyToClipboard writes the buffer to the clipboard without changing it.
func (n *NotesStore) CopyToClipboard() error {
	if n.clipboard == nil {
		return ErrClipboardUnavailable
	}
	if strings.TrimSpace(n.text) == "" {
		return ErrNothingToCopy
	}
	err := n.clipboard.WriteText(n.text)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrClipboardUnavailable), errors.Is(err, ErrClipboardDenied):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrClipboardDenied, err)
	}
}

func (n *NotesStore) Load() error {
	text, ok, err := storage.Load[string](n.adapter, NotesKey)
	if err != nil {
		return err
	}
	if ok {
		n.text = text
	}
	return nil
}
