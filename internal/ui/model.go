package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/productify/internal/dashboard"
	"github.com/faizmokh/productify/internal/feeds"
)

const quoteCategory = "inspiration"

// Model owns Bubble Tea state for the dashboard.
type Model struct {
	ctx        context.Context
	controller *dashboard.Controller
	feeds      *feeds.Client
	ticker     *Ticker
	presets    []int

	tab         tab
	mode        mode
	selected    int
	quoteCursor int
	themeCursor int

	input  textinput.Model
	notes  textarea.Model
	bar    progress.Model
	spin   spinner.Model
	help   help.Model
	keys   keyMap
	styles Styles
	theme  dashboard.Theme

	now            time.Time
	weather        feeds.Conditions
	weatherErr     error
	weatherLoading bool
	quote          feeds.Quote
	quoteFallback  bool
	quoteLoading   bool

	notice dashboard.Notice
}

type tab uint8

const (
	tabDashboard tab = iota
	tabTasks
	tabNotes
	tabFocus
	tabQuotes
	tabCount
)

var tabNames = [...]string{"Dashboard", "Tasks", "Notes", "Focus", "Quotes"}

func (t tab) String() string { return tabNames[t] }

type mode uint8

const (
	modeNormal mode = iota
	modeAddTask
	modeEditNotes
	modeConfirmDelete
	modeConfirmClear
	modePickTheme
)

type clockTickMsg struct {
	now time.Time
}

type weatherResultMsg struct {
	weather feeds.Conditions
	err     error
}

type quoteResultMsg struct {
	quote feeds.Quote
	err   error
}

// NewModel seeds the dashboard. client may be nil, in which case the weather
// and quote cards stay on their fallbacks.
func NewModel(ctx context.Context, controller *dashboard.Controller, client *feeds.Client, ticker *Ticker, presets []int) Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = dashboard.MaxTaskLength

	notes := textarea.New()
	notes.Placeholder = "Jot something down..."
	notes.SetWidth(60)
	notes.SetHeight(10)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	if len(presets) == 0 {
		presets = []int{dashboard.DefaultPresetMinutes}
	}

	m := Model{
		ctx:            ctx,
		controller:     controller,
		feeds:          client,
		ticker:         ticker,
		presets:        presets,
		input:          input,
		notes:          notes,
		spin:           spin,
		help:           help.New(),
		keys:           defaultKeys(),
		now:            time.Now(),
		weatherLoading: client != nil,
		quoteLoading:   client != nil,
	}
	if client == nil {
		m.quote = feeds.FallbackQuote(rand.IntN(len(feeds.FallbackQuotes)))
		m.quoteFallback = true
	}
	return m.applyTheme()
}

// Init starts the clock and fetches the weather and quote cards.
func (m Model) Init() tea.Cmd {
	return tea.Batch(clockTickCmd(), m.fetchWeatherCmd(), m.fetchQuoteCmd(), m.spin.Tick)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case clockTickMsg:
		m.now = msg.now
		return m, clockTickCmd()
	case timerTickMsg:
		cmd := m.ticker.fire(msg.gen)
		return m.takeNotices(), cmd
	case weatherResultMsg:
		return m.handleWeatherResult(msg)
	case quoteResultMsg:
		return m.handleQuoteResult(msg)
	case spinner.TickMsg:
		if !m.weatherLoading && !m.quoteLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.beginPickTheme()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.tab {
	case tabDashboard:
		return m.handleDashboardKey(msg)
	case tabTasks:
		return m.handleTasksKey(msg)
	case tabNotes:
		return m.handleNotesKey(msg)
	case tabFocus:
		return m.handleFocusKey(msg)
	case tabQuotes:
		return m.handleQuotesKey(msg)
	}
	return m, nil
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		if m.feeds == nil || m.weatherLoading {
			return m, nil
		}
		m.weatherLoading = true
		return m, tea.Batch(m.fetchWeatherCmd(), m.spin.Tick)
	case key.Matches(msg, m.keys.Quote):
		if m.feeds == nil {
			m.quote = feeds.FallbackQuote(rand.IntN(len(feeds.FallbackQuotes)))
			return m, nil
		}
		if m.quoteLoading {
			return m, nil
		}
		m.quoteLoading = true
		return m, tea.Batch(m.fetchQuoteCmd(), m.spin.Tick)
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(dashboard.Command{
			Action: dashboard.ActionQuoteSave,
			Quote: dashboard.SavedQuote{
				Text:     m.quote.Content,
				Author:   m.quote.Author,
				Category: quoteCategory,
			},
		})
	}
	return m, nil
}

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := len(m.controller.Snapshot().Tasks)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.selected < visible-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAddTask
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		index, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.dispatch(dashboard.Command{Action: dashboard.ActionTaskToggle, Index: index})
	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selectedTask(); !ok {
			return m, nil
		}
		m.mode = modeConfirmDelete
	case key.Matches(msg, m.keys.Filter):
		next := nextFilter(m.controller.Tasks.Filter())
		m.selected = 0
		return m.dispatch(dashboard.Command{Action: dashboard.ActionTaskFilter, Filter: next})
	}
	return m, nil
}

func (m Model) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.mode = modeEditNotes
		m.notes.SetValue(m.controller.Notes.Text())
		cmd := m.notes.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Copy):
		return m.dispatch(dashboard.Command{Action: dashboard.ActionNotesCopy})
	case key.Matches(msg, m.keys.Clear):
		if m.controller.Notes.Text() == "" {
			return m.dispatch(dashboard.Command{Action: dashboard.ActionNotesClear})
		}
		m.mode = modeConfirmClear
	}
	return m, nil
}

func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m.dispatch(dashboard.Command{Action: dashboard.ActionTimerToggle})
	case key.Matches(msg, m.keys.Reset):
		return m.dispatch(dashboard.Command{Action: dashboard.ActionTimerReset})
	case key.Matches(msg, m.keys.Preset):
		return m.dispatch(dashboard.Command{
			Action:  dashboard.ActionTimerPreset,
			Minutes: nextPreset(m.presets, m.controller.Timer.Preset()),
		})
	}
	return m, nil
}

func (m Model) handleQuotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.controller.Quotes.All())
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.quoteCursor < count-1 {
			m.quoteCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.quoteCursor > 0 {
			m.quoteCursor--
		}
	case key.Matches(msg, m.keys.Delete):
		if count == 0 {
			return m, nil
		}
		m.mode = modeConfirmDelete
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAddTask:
		switch msg.Type {
		case tea.KeyEnter:
			text := m.input.Value()
			m.mode = modeNormal
			m.input.Blur()
			m.input.Reset()
			return m.dispatch(dashboard.Command{Action: dashboard.ActionTaskAdd, Text: text})
		case tea.KeyEsc:
			m.mode = modeNormal
			m.input.Blur()
			m.input.Reset()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	case modeEditNotes:
		switch msg.Type {
		case tea.KeyEsc:
			m.mode = modeNormal
			m.notes.Blur()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		if m.notes.Value() == m.controller.Notes.Text() {
			return m, cmd
		}
		next, save := m.dispatch(dashboard.Command{Action: dashboard.ActionNotesSet, Text: m.notes.Value()})
		return next, tea.Batch(cmd, save)
	case modeConfirmDelete, modeConfirmClear:
		switch msg.String() {
		case "y", "Y":
			return m.confirm()
		case "n", "N", "esc":
			m.mode = modeNormal
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case modePickTheme:
		switch msg.String() {
		case "down", "j":
			if m.themeCursor < len(dashboard.Themes)-1 {
				m.themeCursor++
			}
		case "up", "k":
			if m.themeCursor > 0 {
				m.themeCursor--
			}
		case "enter":
			m.mode = modeNormal
			return m.dispatch(dashboard.Command{
				Action: dashboard.ActionThemeSet,
				Text:   string(dashboard.Themes[m.themeCursor]),
			})
		case "esc", "t", "q":
			m.mode = modeNormal
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) confirm() (tea.Model, tea.Cmd) {
	current := m.mode
	m.mode = modeNormal
	yes := func() bool { return true }

	switch {
	case current == modeConfirmClear:
		m.notes.Reset()
		return m.dispatch(dashboard.Command{Action: dashboard.ActionNotesClear, Confirm: yes})
	case m.tab == tabQuotes:
		return m.dispatch(dashboard.Command{Action: dashboard.ActionQuoteDelete, Index: m.quoteCursor})
	default:
		index, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m.dispatch(dashboard.Command{Action: dashboard.ActionTaskDelete, Index: index})
	}
}

func (m Model) beginPickTheme() (tea.Model, tea.Cmd) {
	m.mode = modePickTheme
	m.themeCursor = 0
	for i, theme := range dashboard.Themes {
		if theme == m.controller.Theme.Active() {
			m.themeCursor = i
		}
	}
	return m, nil
}

// dispatch hands cmd to the controller and keeps the view in step with the
// result. A stale index produces a quiet notice, which leaves the status line
// untouched.
func (m Model) dispatch(cmd dashboard.Command) (Model, tea.Cmd) {
	notice, _ := m.controller.Handle(cmd)
	if !notice.Quiet() {
		m.notice = notice
	}
	m = m.takeNotices().clampSelection().applyTheme()
	return m, m.ticker.arm()
}

func (m Model) takeNotices() Model {
	for _, n := range m.controller.TakeNotices() {
		m.notice = n
	}
	return m
}

func (m Model) clampSelection() Model {
	if n := len(m.controller.Snapshot().Tasks); m.selected >= n {
		m.selected = max(n-1, 0)
	}
	if n := len(m.controller.Quotes.All()); m.quoteCursor >= n {
		m.quoteCursor = max(n-1, 0)
	}
	return m
}

func (m Model) applyTheme() Model {
	theme := m.controller.Theme.Active()
	if theme == m.theme {
		return m
	}
	palette := PaletteFor(theme)
	m.theme = theme
	m.styles = NewStyles(palette)
	m.bar = progress.New(progress.WithGradient(palette.Accent, palette.Success), progress.WithWidth(40))
	return m
}

// selectedTask maps the cursor to an index in the full task list.
func (m Model) selectedTask() (int, bool) {
	tasks := m.controller.Snapshot().Tasks
	if m.selected < 0 || m.selected >= len(tasks) {
		return 0, false
	}
	return tasks[m.selected].Index, true
}

func (m Model) handleWeatherResult(msg weatherResultMsg) (tea.Model, tea.Cmd) {
	m.weatherLoading = false
	m.weather = msg.weather
	m.weatherErr = msg.err
	return m, nil
}

func (m Model) handleQuoteResult(msg quoteResultMsg) (tea.Model, tea.Cmd) {
	m.quoteLoading = false
	m.quoteFallback = msg.err != nil
	if msg.err != nil {
		m.quote = feeds.FallbackQuote(rand.IntN(len(feeds.FallbackQuotes)))
		return m, nil
	}
	m.quote = msg.quote
	return m, nil
}

func (m Model) fetchWeatherCmd() tea.Cmd {
	client := m.feeds
	ctx := m.ctx
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		weather, err := client.Weather(ctx)
		return weatherResultMsg{weather: weather, err: err}
	}
}

func (m Model) fetchQuoteCmd() tea.Cmd {
	client := m.feeds
	ctx := m.ctx
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		quote, err := client.RandomQuote(ctx)
		return quoteResultMsg{quote: quote, err: err}
	}
}

func clockTickCmd() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return clockTickMsg{now: t} })
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder
	snap := m.controller.Snapshot()

	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")

	if m.mode == modePickTheme {
		b.WriteString(m.viewThemePicker(snap.Theme))
	} else {
		switch m.tab {
		case tabDashboard:
			b.WriteString(m.viewDashboard(snap))
		case tabTasks:
			b.WriteString(m.viewTasks(snap))
		case tabNotes:
			b.WriteString(m.viewNotes(snap))
		case tabFocus:
			b.WriteString(m.viewFocus(snap.Timer))
		case tabQuotes:
			b.WriteString(m.viewQuotes(snap.Quotes))
		}
	}

	switch m.mode {
	case modeConfirmDelete:
		what := "task"
		if m.tab == tabQuotes {
			what = "quote"
		}
		fmt.Fprintf(&b, "\nDelete this %s? (y/n, Esc to cancel)\n", what)
	case modeConfirmClear:
		b.WriteString("\nClear all notes? (y/n, Esc to cancel)\n")
	}

	if !m.notice.Quiet() {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice(m.notice))
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, tabCount)
	for t := range tabCount {
		style := m.styles.Tab
		if t == m.tab {
			style = m.styles.TabOn
		}
		parts = append(parts, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) viewDashboard(snap dashboard.Snapshot) string {
	greeting := m.styles.Title.Render(dashboard.Greeting(m.now.Hour()))
	clock := m.styles.Label.Render(m.now.Format("Monday, 02 January 2006  15:04:05"))

	var weather string
	switch {
	case m.weatherLoading:
		weather = m.spin.View() + " Loading weather..."
	case m.feeds == nil:
		weather = m.styles.Hint.Render("Weather disabled")
	case m.weatherErr != nil:
		desc, detail := feeds.Unavailable(m.weatherErr)
		weather = desc + "\n" + m.styles.Hint.Render(detail)
	default:
		weather = fmt.Sprintf("%s %s  %s\n%s\n%s",
			m.weather.Icon(), m.weather.TemperatureLabel(), m.weather.Description(),
			m.styles.Label.Render(m.weather.Location.String()),
			m.styles.Label.Render(fmt.Sprintf("humidity %d%%  wind %s", m.weather.Humidity, m.weather.WindLabel())))
	}

	quote := m.spin.View() + " Loading quote..."
	if !m.quoteLoading {
		quote = fmt.Sprintf("%q\n%s", m.quote.Content, m.styles.Label.Render("— "+m.quote.Author))
		if m.quoteFallback {
			quote += m.styles.Hint.Render("  (offline)")
		}
	}

	stats := fmt.Sprintf("%d/%d tasks completed, %d pending\n%s",
		snap.Stats.Completed, snap.Stats.Total, snap.Stats.Pending,
		m.bar.ViewAs(float64(snap.Stats.PercentComplete)/100))
	focus := fmt.Sprintf("Focus %s (%s), %d sessions completed", snap.Timer.Clock(), snap.Timer.State, snap.Timer.Sessions)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Card.Render(m.styles.Title.Render("Weather")+"\n"+weather),
		m.styles.Card.Render(m.styles.Title.Render("Quote")+"\n"+quote),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		clock,
		"",
		cards,
		m.styles.Card.Render(stats+"\n"+focus),
	)
}

func (m Model) viewTasks(snap dashboard.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		m.styles.Title.Render("Tasks"),
		m.styles.Label.Render(fmt.Sprintf("filter: %s  %d/%d done", snap.Filter, snap.Stats.Completed, snap.Stats.Total)))

	if len(snap.Tasks) == 0 {
		b.WriteString(m.styles.Hint.Render("(no tasks)"))
		b.WriteByte('\n')
	}
	for i, t := range snap.Tasks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		box := "[ ] "
		text := m.styles.Value.Render(t.Text)
		if t.Completed {
			box = "[x] "
			text = m.styles.Done.Render(t.Text)
		}
		if i == m.selected {
			cursor = m.styles.Selected.Render(cursor)
		}
		b.WriteString(cursor + box + text + "\n")
	}

	if m.mode == modeAddTask {
		b.WriteString("\nNew task\n")
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) viewNotes(snap dashboard.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n",
		m.styles.Title.Render("Notes"),
		m.styles.Label.Render(fmt.Sprintf("%d characters", snap.NoteCount)))

	switch {
	case m.mode == modeEditNotes:
		b.WriteString(m.notes.View())
		b.WriteString("\n" + m.styles.Hint.Render("Esc to finish editing"))
	case snap.Notes == "":
		b.WriteString(m.styles.Hint.Render("(empty, press e to write)"))
	default:
		b.WriteString(m.styles.Card.Render(snap.Notes))
	}
	b.WriteByte('\n')
	return b.String()
}

func (m Model) viewFocus(timer dashboard.TimerSnapshot) string {
	presets := make([]string, 0, len(m.presets))
	for _, p := range m.presets {
		label := fmt.Sprintf("%dm", p)
		if p == timer.Preset {
			label = m.styles.Selected.Render("[" + label + "]")
		} else {
			label = m.styles.Label.Render(label)
		}
		presets = append(presets, label)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Focus"),
		m.styles.Clock.Render(timer.Clock()),
		m.bar.ViewAs(m.controller.Timer.Progress()),
		"",
		m.styles.Label.Render("state ")+m.styles.Value.Render(timer.State.String()),
		m.styles.Label.Render("sessions ")+m.styles.Value.Render(fmt.Sprint(timer.Sessions)),
		m.styles.Label.Render("presets ")+strings.Join(presets, " "),
	)
}

func (m Model) viewQuotes(quotes []dashboard.SavedQuote) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Saved quotes"))
	b.WriteString("\n\n")
	if len(quotes) == 0 {
		b.WriteString(m.styles.Hint.Render("(none yet, press s on the dashboard to save one)"))
		b.WriteByte('\n')
	}
	for i, q := range quotes {
		cursor := "  "
		if i == m.quoteCursor {
			cursor = m.styles.Selected.Render("> ")
		}
		fmt.Fprintf(&b, "%s%q %s\n", cursor, q.Text,
			m.styles.Label.Render(fmt.Sprintf("— %s [%s]", q.Author, q.Category)))
	}
	return b.String()
}

func (m Model) viewThemePicker(active dashboard.Theme) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Theme"))
	b.WriteString("\n\n")
	for i, theme := range dashboard.Themes {
		cursor := "  "
		if i == m.themeCursor {
			cursor = "> "
		}
		line := cursor + theme.Label()
		if theme == active {
			line += " *"
		}
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(PaletteFor(theme).Accent)).Render("  ")
		if i == m.themeCursor {
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(swatch + " " + line + "\n")
	}
	b.WriteString("\n" + m.styles.Hint.Render("enter to apply, esc to close"))
	b.WriteByte('\n')
	return b.String()
}

func nextFilter(current dashboard.Filter) dashboard.Filter {
	switch current {
	case dashboard.FilterAll:
		return dashboard.FilterPending
	case dashboard.FilterPending:
		return dashboard.FilterCompleted
	default:
		return dashboard.FilterAll
	}
}

func nextPreset(presets []int, current int) int {
	for i, p := range presets {
		if p == current {
			return presets[(i+1)%len(presets)]
		}
	}
	return presets[0]
}
