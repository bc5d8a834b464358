package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/storage"
)

func newTestModel(t *testing.T, presetMinutes int) (Model, *dashboard.Controller, *Ticker) {
	t.Helper()
	ticker := NewTicker()
	controller := dashboard.NewController(storage.NewAdapter(storage.NewMemory(), nil), dashboard.Options{
		Ticker:        ticker,
		PresetMinutes: presetMinutes,
	})
	if err := controller.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return NewModel(context.Background(), controller, nil, ticker, []int{1, 5, 25}), controller, ticker
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func typeText(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		if r == ' ' {
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func gotoTab(t *testing.T, m Model, target tab) Model {
	t.Helper()
	for m.tab != target {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	return m
}

func TestAddToggleAndDeleteTask(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)
	m = gotoTab(t, m, tabTasks)

	m = update(t, m, runes("a"))
	if m.mode != modeAddTask {
		t.Fatalf("mode = %v, want modeAddTask", m.mode)
	}
	m = update(t, m, typeText("write report")...)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	tasks := controller.Tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "write report" {
		t.Fatalf("tasks = %+v", tasks)
	}
	if m.notice.Message != "Task added" {
		t.Fatalf("notice = %q", m.notice.Message)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !controller.Tasks.Tasks()[0].Completed {
		t.Fatalf("task not toggled")
	}
	if !strings.Contains(m.View(), "[x]") {
		t.Fatalf("view missing completed marker:\n%s", m.View())
	}

	m = update(t, m, runes("d"))
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode = %v, want modeConfirmDelete", m.mode)
	}
	m = update(t, m, runes("n"))
	if controller.Tasks.Len() != 1 {
		t.Fatalf("declined delete removed the task")
	}

	m = update(t, m, runes("d"), runes("y"))
	if controller.Tasks.Len() != 0 {
		t.Fatalf("task not deleted")
	}
	if m.notice.Message != "Task deleted" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
}

func TestEmptyTaskShowsWarning(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)
	m = gotoTab(t, m, tabTasks)

	m = update(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyEnter})
	if controller.Tasks.Len() != 0 {
		t.Fatalf("empty task was added")
	}
	if m.notice.Level != dashboard.LevelWarning || m.notice.Message != "Please enter a task" {
		t.Fatalf("notice = %+v", m.notice)
	}
}

func TestFilterActsOnVisibleTasks(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)
	for _, text := range []string{"one", "two", "three"} {
		if _, err := controller.Tasks.Add(text); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if _, err := controller.Tasks.Toggle(0); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	m = gotoTab(t, m, tabTasks)

	m = update(t, m, runes("f"))
	if controller.Tasks.Filter() != dashboard.FilterPending {
		t.Fatalf("filter = %q, want pending", controller.Tasks.Filter())
	}

	// The first visible row is "two", stored at index 1.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !controller.Tasks.Tasks()[1].Completed {
		t.Fatalf("wrong task toggled: %+v", controller.Tasks.Tasks())
	}
	if m.selected != 0 {
		t.Fatalf("selected = %d, want clamp to 0", m.selected)
	}
}

func TestNotesEditSavesAsYouType(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)
	m = gotoTab(t, m, tabNotes)

	m = update(t, m, runes("e"))
	m = update(t, m, typeText("hi")...)
	if controller.Notes.Text() != "hi" {
		t.Fatalf("notes = %q, want hi", controller.Notes.Text())
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != modeNormal {
		t.Fatalf("mode = %v after esc", m.mode)
	}

	m = update(t, m, runes("X"), runes("y"))
	if controller.Notes.Text() != "" {
		t.Fatalf("notes not cleared")
	}
	if m.notice.Message != "Notes cleared" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
}

func TestClearEmptyNotesSkipsConfirm(t *testing.T) {
	m, _, _ := newTestModel(t, 25)
	m = gotoTab(t, m, tabNotes)

	m = update(t, m, runes("X"))
	if m.mode != modeNormal {
		t.Fatalf("mode = %v, want no confirmation", m.mode)
	}
	if m.notice.Message != "Notes are already empty" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
}

func TestFocusTimerRunsOnTicks(t *testing.T) {
	m, controller, ticker := newTestModel(t, 1)
	m = gotoTab(t, m, tabFocus)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(Model)
	if cmd == nil {
		t.Fatalf("start did not schedule a tick")
	}
	if controller.Timer.State() != dashboard.TimerRunning {
		t.Fatalf("state = %v", controller.Timer.State())
	}

	gen := ticker.gen
	m = update(t, m, timerTickMsg{gen: gen})
	if got := controller.Timer.Remaining(); got != 59 {
		t.Fatalf("remaining = %d, want 59", got)
	}

	// A stale generation is ignored.
	m = update(t, m, timerTickMsg{gen: gen - 1})
	if got := controller.Timer.Remaining(); got != 59 {
		t.Fatalf("remaining = %d after stale tick", got)
	}

	for range 59 {
		m = update(t, m, timerTickMsg{gen: gen})
	}
	if controller.Timer.Sessions() != 1 {
		t.Fatalf("sessions = %d, want 1", controller.Timer.Sessions())
	}
	if controller.Timer.State() != dashboard.TimerIdle {
		t.Fatalf("state = %v, want idle", controller.Timer.State())
	}
	if m.notice.Message != dashboard.SessionCompleteMessage {
		t.Fatalf("notice = %q", m.notice.Message)
	}

	// Further ticks after completion change nothing.
	m = update(t, m, timerTickMsg{gen: gen})
	if controller.Timer.Remaining() != 60 {
		t.Fatalf("remaining = %d, want reset to 60", controller.Timer.Remaining())
	}
}

func TestPauseDropsPendingTick(t *testing.T) {
	m, controller, ticker := newTestModel(t, 1)
	m = gotoTab(t, m, tabFocus)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	gen := ticker.gen
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if controller.Timer.State() != dashboard.TimerPaused {
		t.Fatalf("state = %v, want paused", controller.Timer.State())
	}

	update(t, m, timerTickMsg{gen: gen})
	if controller.Timer.Remaining() != 60 {
		t.Fatalf("tick applied while paused")
	}
}

func TestPresetCycles(t *testing.T) {
	m, controller, _ := newTestModel(t, 1)
	m = gotoTab(t, m, tabFocus)

	m = update(t, m, runes("p"))
	if controller.Timer.Preset() != 5 {
		t.Fatalf("preset = %d, want 5", controller.Timer.Preset())
	}
	if m.notice.Message != "Focus set to 5 minutes" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
	update(t, m, runes("p"), runes("p"))
	if controller.Timer.Preset() != 1 {
		t.Fatalf("preset = %d, want wrap to 1", controller.Timer.Preset())
	}
}

func TestThemePicker(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)

	m = update(t, m, runes("t"))
	if m.mode != modePickTheme {
		t.Fatalf("mode = %v, want modePickTheme", m.mode)
	}
	m = update(t, m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyEnter})

	if got := controller.Theme.Active(); got != dashboard.ThemeDracula {
		t.Fatalf("theme = %q, want dracula", got)
	}
	if m.theme != dashboard.ThemeDracula {
		t.Fatalf("styles not refreshed for %q", m.theme)
	}
	if m.notice.Message != "Theme: dracula" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
}

func TestSaveAndDeleteQuote(t *testing.T) {
	m, controller, _ := newTestModel(t, 25)

	m = update(t, m, runes("s"))
	quotes := controller.Quotes.All()
	if len(quotes) != 1 || quotes[0].Category != quoteCategory {
		t.Fatalf("quotes = %+v", quotes)
	}
	if quotes[0].Text != m.quote.Content {
		t.Fatalf("saved %q, showing %q", quotes[0].Text, m.quote.Content)
	}

	m = gotoTab(t, m, tabQuotes)
	if !strings.Contains(m.View(), quotes[0].Author) {
		t.Fatalf("quotes tab missing author:\n%s", m.View())
	}
	m = update(t, m, runes("d"), runes("y"))
	if len(controller.Quotes.All()) != 0 {
		t.Fatalf("quote not deleted")
	}
	if m.notice.Message != "Quote deleted" {
		t.Fatalf("notice = %q", m.notice.Message)
	}
}

func TestDashboardViewWithoutFeeds(t *testing.T) {
	m, _, _ := newTestModel(t, 25)
	view := m.View()
	for _, want := range []string{"Weather disabled", "(offline)", "0/0 tasks completed"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m, _, _ := newTestModel(t, 25)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q did not quit")
	}
}
