package dashboard

import (
	"fmt"
	"strings"
)

// Keys under which each store persists its state.
const (
	TasksKey         = "productify_tasks"
	NotesKey         = "productify_notes"
	TimerSessionsKey = "productify_timer_sessions"
	ThemeKey         = "productify_theme"
	QuotesKey        = "productify_quotes"
)

// MaxTaskLength bounds task text, counted in characters.
const MaxTaskLength = 200

// Task is one entry of the task list. Its identity is its position.
type Task struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Filter narrows which tasks are shown. It is never persisted.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// ParseFilter accepts all|completed|pending, case-insensitively.
func ParseFilter(value string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(value))); f {
	case FilterAll, FilterCompleted, FilterPending:
		return f, nil
	case "":
		return FilterAll, nil
	default:
		return FilterAll, fmt.Errorf("%w %q (expected all|completed|pending)", ErrUnknownFilter, value)
	}
}

// Matches reports whether t should be shown under f.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}

// Stats summarizes the task list.
type Stats struct {
	Total           int
	Completed       int
	Pending         int
	PercentComplete int
}

// SavedQuote is one entry of the quote book.
type SavedQuote struct {
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
}
