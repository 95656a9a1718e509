package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pdxmph/todo-tui/internal/app"
	"github.com/pdxmph/todo-tui/internal/calendar"
	"github.com/pdxmph/todo-tui/internal/timer"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Model represents the main application state
type Model struct {
	state     *app.State
	selected  int
	width     int
	height    int
	inputMode bool
	input     textinput.Model
	clock     func() time.Time
}

// tickMsg starts a new frame once a second
type tickMsg time.Time

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // Red for overdue

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Orange within a day

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	doneStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("240"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	timerDoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// New creates a new application model
func New(state *app.State) *Model {
	// Setup new task input
	ti := textinput.New()
	ti.Placeholder = "New task..."
	ti.Width = 40
	ti.CharLimit = 200
	ti.Prompt = "> "
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230"))
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	return &Model{
		state: state,
		input: ti,
		clock: time.Now,
	}
}

// Init starts the frame ticker
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// apply routes one intent into the state and keeps the selection in range
func (m *Model) apply(intent app.Intent) {
	m.state.Apply(intent)
	m.selected = m.ensureValidSelection()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.input.Width = m.width - 20
		}
		return m, nil

	case tickMsg:
		m.apply(app.Tick{Now: time.Time(msg)})
		return m, tick()

	case tea.KeyMsg:
		// Every key press is a frame of its own
		m.state.Apply(app.Tick{Now: m.clock()})

		// Calendar mode handling
		if m.state.Picker.Open {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.apply(app.CancelCalendar{})
			case "enter":
				m.apply(app.ConfirmDay{Day: m.state.Picker.Day})
			case "h", "left":
				m.apply(app.ShiftDay{Delta: -1})
			case "l", "right":
				m.apply(app.ShiftDay{Delta: 1})
			case "k", "up":
				m.apply(app.ShiftDay{Delta: -7})
			case "j", "down":
				m.apply(app.ShiftDay{Delta: 7})
			case "[", "p", "pgup":
				m.apply(app.ShiftMonth{Delta: -1})
			case "]", "n", "pgdown":
				m.apply(app.ShiftMonth{Delta: 1})
			}
			return m, nil
		}

		// Input mode handling
		if m.inputMode {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.inputMode = false
				m.input.Blur()
				m.input.Reset()
				return m, nil
			case "enter":
				m.apply(app.AddTask{Text: m.input.Value()})
				m.inputMode = false
				m.input.Blur()
				m.input.Reset()
				return m, nil
			case "ctrl+d":
				m.apply(app.OpenCalendar{})
				return m, nil
			case "ctrl+r":
				m.apply(app.ClearDue{})
				return m, nil
			}

			// Pass all other keys to the textinput
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		// Normal mode handling
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "j", "down":
			if m.selected < m.state.Store.Len()-1 {
				m.selected++
			}

		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}

		case "g", "home":
			m.selected = 0

		case "G", "end":
			if n := m.state.Store.Len(); n > 0 {
				m.selected = n - 1
			}

		case " ", "x":
			m.apply(app.ToggleTask{Index: m.selected})

		case "d", "delete":
			m.apply(app.DeleteTask{Index: m.selected})

		case "a", "i":
			m.inputMode = true
			m.input.Reset()
			m.input.Focus()
			return m, textinput.Blink

		case "c":
			// Pick a due date, then type the task
			m.inputMode = true
			m.input.Reset()
			m.input.Focus()
			m.apply(app.OpenCalendar{})
			return m, textinput.Blink

		case "A":
			m.apply(app.CheckAll{})

		case "U":
			m.apply(app.UncheckAll{})

		case "X":
			m.apply(app.ClearCompleted{})

		case "s":
			m.apply(app.StopTimer{})

		default:
			if minutes, ok := m.presetForKey(msg.String()); ok {
				m.apply(app.StartTimer{Minutes: minutes})
			}
		}
	}

	return m, nil
}

// presetForKey maps "1".."9" to the configured timer presets
func (m Model) presetForKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	idx := int(key[0] - '1')
	if idx >= len(m.state.Presets) {
		return 0, false
	}
	return m.state.Presets[idx], true
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	n := m.state.Store.Len()
	if n == 0 {
		return 0
	}
	if m.selected >= n {
		return n - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlay the date picker if it is open
	if m.state.Picker.Open {
		return m.renderCalendar()
	}

	header := m.renderHeader()
	input := m.renderInput()
	help := m.renderHelp()

	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(input) - 4
	list := m.renderList(m.width-2, listHeight)

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		input,
		borderStyle.Width(m.width-2).Height(listHeight).Render(list),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, help)
}

// renderHeader renders the clock and timer line
func (m Model) renderHeader() string {
	now := m.state.Now.Format("2006-01-02 15:04:05")

	var timerView string
	switch {
	case m.state.Timer.Running():
		timerView = "Timer: " + m.state.TimerLabel()
	case m.state.TimerDone:
		timerView = timerDoneStyle.Render(m.state.TimerLabel())
	default:
		var presets []string
		for i, p := range m.state.Presets {
			if i >= 9 {
				break
			}
			presets = append(presets, fmt.Sprintf("%d:%s", i+1, timer.PresetLabel(p)))
		}
		timerView = "Timer: " + m.state.TimerLabel() + " " + labelStyle.Render("["+strings.Join(presets, " ")+"]")
	}

	return titleStyle.Render("Todo") + "  " + now + "    " + timerView
}

// renderInput renders the new task line
func (m Model) renderInput() string {
	line := labelStyle.Render("  press a to add a task")
	if m.inputMode {
		line = m.input.View()
	}
	if m.state.PendingDue != nil {
		line += "  " + urgentStyle.Render("Due: "+formatDate(*m.state.PendingDue))
	}
	return line
}

// renderList renders the task list
func (m Model) renderList(width, height int) string {
	var lines []string

	tasks := m.state.Store.Tasks()
	total, open, done := m.state.Store.Counts()

	// Header
	header := fmt.Sprintf("Tasks (%d)", total)
	if total > 0 {
		header += labelStyle.Render(fmt.Sprintf(" [%d open, %d done]", open, done))
	}
	lines = append(lines, header)
	if width > 2 {
		lines = append(lines, strings.Repeat("─", width-2))
	}

	if len(tasks) == 0 {
		lines = append(lines, labelStyle.Render("Nothing to do."))
		return strings.Join(lines, "\n")
	}

	// Calculate visible range
	visibleHeight := height - 2 // account for header
	if visibleHeight < 1 {
		visibleHeight = 1
	}
	startIdx := 0
	if m.selected >= visibleHeight {
		startIdx = m.selected - visibleHeight + 1
	}

	for i := startIdx; i < len(tasks) && i < startIdx+visibleHeight; i++ {
		lines = append(lines, m.renderTask(i, tasks[i]))
	}

	return strings.Join(lines, "\n")
}

// renderTask renders one task line
func (m Model) renderTask(i int, task todo.Task) string {
	box := "[ ] "
	if task.Completed {
		box = "[x] "
	}

	due := ""
	if task.HasDue() {
		due = "  Due: " + formatDate(*task.Due)
	}

	textStyle, dueStyle := m.taskStyles(i, task)
	if i == m.selected {
		box = selectedStyle.Render(box)
	}

	line := box + textStyle.Render(task.Text)
	if due != "" {
		line += dueStyle.Render(due)
	}
	return line
}

// taskStyles picks the text and due date styles for the task at index i.
// The selection only changes the background.
func (m Model) taskStyles(i int, task todo.Task) (text, due lipgloss.Style) {
	due = urgencyStyle(m.state.Urgency(i))
	text = due
	if task.Completed {
		text = doneStyle
	}

	if i == m.selected {
		bg := selectedStyle.GetBackground()
		text = text.Copy().Background(bg)
		due = due.Copy().Background(bg)
	}
	return text, due
}

// urgencyStyle picks the color for an urgency class
func urgencyStyle(u todo.Urgency) lipgloss.Style {
	switch u {
	case todo.Overdue:
		return overdueStyle
	case todo.Urgent:
		return urgentStyle
	default:
		return neutralStyle
	}
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	if m.inputMode {
		return " Type task • Enter: add • Ctrl+D: due date • Ctrl+R: clear due • Esc: cancel"
	}

	help := " j/k: navigate • space: toggle • d: delete • a: add • c: add with due date"
	help += " • A: check all • U: uncheck all • X: clear done"

	if m.state.Timer.Running() {
		help += " • s: stop timer"
	} else {
		help += " • 1-" + fmt.Sprint(min(len(m.state.Presets), 9)) + ": timer"
	}

	help += " • q: quit"

	return help
}

// renderCalendar renders the date picker overlay
func (m Model) renderCalendar() string {
	picker := m.state.Picker

	var lines []string
	lines = append(lines, "Pick a due date:")
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  ◀  %s  ▶", picker.Cursor.Title()))
	lines = append(lines, "")

	var head []string
	for _, wd := range calendar.Weekdays {
		head = append(head, fmt.Sprintf("%3s", wd))
	}
	lines = append(lines, strings.Join(head, " "))

	for _, week := range picker.Cursor.Grid() {
		var cells []string
		for _, day := range week {
			cell := "   "
			if day != 0 {
				cell = fmt.Sprintf("%3d", day)
				if day == picker.Day {
					cell = selectedStyle.Render(cell)
				} else if picker.Cursor.Contains(m.state.Now) && day == m.state.Now.Day() {
					cell = urgentStyle.Render(cell)
				}
			}
			cells = append(cells, cell)
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	lines = append(lines, "")
	lines = append(lines, "←/→/↑/↓: move • [/]: month • Enter: select • Esc: cancel")

	// Create a bordered box and center it
	content := strings.Join(lines, "\n")
	box := borderStyle.
		Padding(1).
		Background(lipgloss.Color("235")).
		Render(content)

	// Center the box on the screen
	centered := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)

	return centered
}

// formatDate renders a due date as a local calendar day
func formatDate(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
