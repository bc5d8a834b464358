package dashboard

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/faizmokh/productify/internal/storage"
)

// Action names one user intent the controller can handle.
type Action string

const (
	ActionTaskAdd     Action = "task.add"
	ActionTaskToggle  Action = "task.toggle"
	ActionTaskDelete  Action = "task.delete"
	ActionTaskFilter  Action = "task.filter"
	ActionNotesSet    Action = "notes.set"
	ActionNotesClear  Action = "notes.clear"
	ActionNotesCopy   Action = "notes.copy"
	ActionTimerStart  Action = "timer.start"
	ActionTimerPause  Action = "timer.pause"
	ActionTimerToggle Action = "timer.toggle"
	ActionTimerReset  Action = "timer.reset"
	ActionTimerPreset Action = "timer.preset"
	ActionThemeSet    Action = "theme.set"
	ActionQuoteSave   Action = "quote.save"
	ActionQuoteDelete Action = "quote.delete"
)

// Command carries an Action and whichever arguments it needs. Index is
// 0-based.
type Command struct {
	Action  Action
	Text    string
	Index   int
	Minutes int
	Filter  Filter
	Confirm func() bool
	Quote   SavedQuote
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is the transient message shown after a command. A zero Notice means
// there is nothing to show.
type Notice struct {
	Level   Level
	Message string
}

func (n Notice) Quiet() bool { return n.Message == "" }

func success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func warning(msg string) Notice { return Notice{Level: LevelWarning, Message: msg} }
func failure(msg string) Notice { return Notice{Level: LevelError, Message: msg} }

// SessionCompleteMessage is queued whenever a focus countdown finishes.
const SessionCompleteMessage = "🎉 Focus session complete! Time for a break."

// Notifier is told about every completed focus session.
type Notifier interface {
	SessionComplete(sessions int) error
}

// Options configures NewController. Every field is optional.
type Options struct {
	Clipboard     Clipboard
	Ticker        Ticker
	Notifier      Notifier
	PresetMinutes int
	Logger        *slog.Logger
}

// IndexedTask is a visible task together with its position in the full list.
type IndexedTask struct {
	Index int
	Task
}

// Snapshot is the read-only state a view renders from.
type Snapshot struct {
	Tasks     []IndexedTask
	Stats     Stats
	Filter    Filter
	Notes     string
	NoteCount int
	Timer     TimerSnapshot
	Theme     Theme
	Quotes    []SavedQuote
}

type handler func(Command) (Notice, error)

// Controller routes commands to the owning store and turns every outcome
// into a Notice. It must be used from a single goroutine.
type Controller struct {
	Tasks  *TaskStore
	Notes  *NotesStore
	Timer  *FocusTimer
	Theme  *ThemeSelector
	Quotes *QuoteBook

	logger   *slog.Logger
	notifier Notifier
	pending  []Notice
	handlers map[Action]handler
}

func NewController(adapter *storage.Adapter, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		Tasks:    NewTaskStore(adapter),
		Notes:    NewNotesStore(adapter, opts.Clipboard),
		Timer:    NewFocusTimer(adapter, opts.Ticker, opts.PresetMinutes),
		Theme:    NewThemeSelector(adapter),
		Quotes:   NewQuoteBook(adapter),
		logger:   logger,
		notifier: opts.Notifier,
	}
	c.handlers = map[Action]handler{
		ActionTaskAdd:     c.addTask,
		ActionTaskToggle:  c.toggleTask,
		ActionTaskDelete:  c.deleteTask,
		ActionTaskFilter:  c.filterTasks,
		ActionNotesSet:    c.setNotes,
		ActionNotesClear:  c.clearNotes,
		ActionNotesCopy:   c.copyNotes,
		ActionTimerStart:  c.timerControl(c.Timer.Start),
		ActionTimerPause:  c.timerControl(c.Timer.Pause),
		ActionTimerToggle: c.timerControl(c.Timer.Toggle),
		ActionTimerReset:  c.timerControl(c.Timer.Reset),
		ActionTimerPreset: c.selectPreset,
		ActionThemeSet:    c.setTheme,
		ActionQuoteSave:   c.saveQuote,
		ActionQuoteDelete: c.deleteQuote,
	}
	c.Timer.OnSessionComplete(c.sessionComplete)
	return c
}

// Handle runs cmd. The returned error is the underlying cause, if any; the
// Notice is what the user should see.
func (c *Controller) Handle(cmd Command) (Notice, error) {
	h, ok := c.handlers[cmd.Action]
	if !ok {
		c.logger.Warn("unknown action", "action", cmd.Action)
		return failure("Unknown action"), fmt.Errorf("%w %q", ErrUnknownAction, cmd.Action)
	}
	return h(cmd)
}

// Load rehydrates every store. A failing store does not stop the others.
func (c *Controller) Load() error {
	return errors.Join(
		c.Tasks.Load(),
		c.Notes.Load(),
		c.Timer.Load(),
		c.Theme.Load(),
		c.Quotes.Load(),
	)
}

func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Stats:     c.Tasks.Stats(),
		Filter:    c.Tasks.Filter(),
		Notes:     c.Notes.Text(),
		NoteCount: c.Notes.Count(),
		Timer:     c.Timer.Snapshot(),
		Theme:     c.Theme.Active(),
		Quotes:    c.Quotes.All(),
	}
	for i, t := range c.Tasks.Visible() {
		snap.Tasks = append(snap.Tasks, IndexedTask{Index: i, Task: t})
	}
	return snap
}

// TakeNotices returns and clears notices raised outside Handle, such as a
// finished focus session.
func (c *Controller) TakeNotices() []Notice {
	pending := c.pending
	c.pending = nil
	return pending
}

func (c *Controller) addTask(cmd Command) (Notice, error) {
	_, err := c.Tasks.Add(cmd.Text)
	switch {
	case err == nil:
		return success("Task added"), nil
	case errors.Is(err, ErrEmptyInput):
		return warning("Please enter a task"), err
	case errors.Is(err, ErrDuplicateTask):
		return warning("This task already exists"), err
	case errors.Is(err, ErrTooLong):
		return warning(fmt.Sprintf("Task is too long (max %d characters)", MaxTaskLength)), err
	}
	return c.saveFailed("tasks", err)
}

func (c *Controller) toggleTask(cmd Command) (Notice, error) {
	task, err := c.Tasks.Toggle(cmd.Index)
	if errors.Is(err, ErrIndexOutOfRange) {
		return c.staleIndex(cmd, err)
	}
	if err != nil {
		return c.saveFailed("tasks", err)
	}
	if task.Completed {
		return success("Task completed! 🎉"), nil
	}
	return success("Task marked as pending"), nil
}

func (c *Controller) deleteTask(cmd Command) (Notice, error) {
	_, err := c.Tasks.Delete(cmd.Index)
	if errors.Is(err, ErrIndexOutOfRange) {
		return c.staleIndex(cmd, err)
	}
	if err != nil {
		return c.saveFailed("tasks", err)
	}
	return success("Task deleted"), nil
}

func (c *Controller) filterTasks(cmd Command) (Notice, error) {
	filter, err := ParseFilter(string(cmd.Filter))
	if err != nil {
		return warning("Unknown filter"), err
	}
	c.Tasks.SetFilter(filter)
	return Notice{}, nil
}

func (c *Controller) setNotes(cmd Command) (Notice, error) {
	if _, err := c.Notes.SetText(cmd.Text); err != nil {
		return c.saveFailed("notes", err)
	}
	return Notice{}, nil
}

func (c *Controller) clearNotes(cmd Command) (Notice, error) {
	err := c.Notes.Clear(cmd.Confirm)
	switch {
	case err == nil:
		return success("Notes cleared"), nil
	case errors.Is(err, ErrNotesEmpty):
		return warning("Notes are already empty"), err
	case errors.Is(err, ErrNotConfirmed):
		return Notice{}, err
	}
	return c.saveFailed("notes", err)
}

func (c *Controller) copyNotes(Command) (Notice, error) {
	err := c.Notes.CopyToClipboard()
	switch {
	case err == nil:
		return success("Copied to clipboard!"), nil
	case errors.Is(err, ErrNothingToCopy):
		return warning("Nothing to copy"), err
	}
	c.logger.Warn("clipboard write failed", "op", "copy", "err", err)
	return failure("Failed to copy"), err
}

func (c *Controller) timerControl(fn func()) handler {
	return func(Command) (Notice, error) {
		fn()
		return Notice{}, nil
	}
}

func (c *Controller) selectPreset(cmd Command) (Notice, error) {
	if err := c.Timer.SelectPreset(cmd.Minutes); err != nil {
		return warning("Preset must be a positive number of minutes"), err
	}
	return success(fmt.Sprintf("Focus set to %d minutes", cmd.Minutes)), nil
}

func (c *Controller) setTheme(cmd Command) (Notice, error) {
	err := c.Theme.SetTheme(cmd.Text)
	if errors.Is(err, ErrUnknownTheme) {
		return failure("Unknown theme"), err
	}
	if err != nil {
		return c.saveFailed("theme", err)
	}
	return success("Theme: " + c.Theme.Active().Label()), nil
}

func (c *Controller) saveQuote(cmd Command) (Notice, error) {
	_, err := c.Quotes.Add(cmd.Quote)
	if errors.Is(err, ErrEmptyInput) {
		return warning("Please fill in all fields"), err
	}
	if err != nil {
		return c.saveFailed("quotes", err)
	}
	return success("Quote saved"), nil
}

func (c *Controller) deleteQuote(cmd Command) (Notice, error) {
	_, err := c.Quotes.Delete(cmd.Index)
	if errors.Is(err, ErrIndexOutOfRange) {
		return c.staleIndex(cmd, err)
	}
	if err != nil {
		return c.saveFailed("quotes", err)
	}
	return success("Quote deleted"), nil
}

func (c *Controller) sessionComplete(ev TimerEvent) {
	c.pending = append(c.pending, success(SessionCompleteMessage))
	if ev.Err != nil {
		c.pending = append(c.pending, warning("Failed to save focus sessions"))
	}
	if c.notifier == nil {
		return
	}
	if err := c.notifier.SessionComplete(ev.Sessions); err != nil {
		c.logger.Warn("notification failed", "op", "notify", "err", err)
	}
}

// staleIndex covers a view acting on a row that no longer exists.
func (c *Controller) staleIndex(cmd Command, err error) (Notice, error) {
	c.logger.Warn("index out of range", "action", cmd.Action, "index", cmd.Index)
	return Notice{}, err
}

// saveFailed keeps the in-memory change and only warns.
func (c *Controller) saveFailed(what string, err error) (Notice, error) {
	if errors.Is(err, storage.ErrStorageFailure) {
		return warning("Failed to save " + what), err
	}
	c.logger.Error("unexpected error", "what", what, "err", err)
	return failure("Something went wrong"), err
}
