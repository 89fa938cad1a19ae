package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/lawbuddy/app"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type UICommand struct {
	ClientFlags `embed:""`
	TopK        int     `name:"top-k" help:"Initial number of sources to retrieve (1-10)." default:"5"`
	MinScore    float64 `help:"Initial minimum similarity score for sources (0.0-1.0)." default:"0.2"`
	Context     bool    `help:"Show the full text of retrieved documents." default:"false"`
	LogFile     string  `help:"Write logs to this file. Logs are discarded if empty." env:"LOG_FILE" default:""`
}

func (c UICommand) Run(ctx context.Context) (err error) {
	var w io.Writer = io.Discard
	if c.LogFile != "" {
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	log := getLoggerTo(w, c.LogLevel)

	s := c.state()
	s.Settings.TopK = c.TopK
	s.Settings.MinScore = c.MinScore
	s.Settings.ReturnContext = c.Context

	p := tea.NewProgram(newModel(ctx, c.newApp(log), s), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

type keyMap struct {
	Submit        key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	Status        key.Binding
	InitDocuments key.Binding
	SystemInfo    key.Binding
	FewerSources  key.Binding
	MoreSources   key.Binding
	LowerScore    key.Binding
	RaiseScore    key.Binding
	ToggleContext key.Binding
	Example       key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	Quit          key.Binding
}

var keys = keyMap{
	Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ask")),
	NextField:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Status:        key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "status")),
	InitDocuments: key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "init documents")),
	SystemInfo:    key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "system info")),
	FewerSources:  key.NewBinding(key.WithKeys("f5"), key.WithHelp("f5/f6", "sources -/+")),
	MoreSources:   key.NewBinding(key.WithKeys("f6")),
	LowerScore:    key.NewBinding(key.WithKeys("f7"), key.WithHelp("f7/f8", "min score -/+")),
	RaiseScore:    key.NewBinding(key.WithKeys("f8")),
	ToggleContext: key.NewBinding(key.WithKeys("f9"), key.WithHelp("f9", "context")),
	Example:       key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6"), key.WithHelp("alt+1-6", "example")),
	ScrollUp:      key.NewBinding(key.WithKeys("pgup")),
	ScrollDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	Quit:          key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.Example, k.Status, k.InitDocuments, k.SystemInfo, k.FewerSources, k.LowerScore, k.ToggleContext, k.ScrollDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type field int

const (
	fieldQuestion field = iota
	fieldInstructions
	fieldAPIURL
	fieldCount
)

// panelMsg carries the outcome of an action back to the update loop.
type panelMsg struct {
	panel app.Panel
}

type model struct {
	ctx   context.Context
	app   app.App
	state app.State

	focus        field
	question     textarea.Model
	instructions textarea.Model
	apiURL       textinput.Model
	viewport     viewport.Model
	spinner      spinner.Model
	help         help.Model

	// inFlight is true while a request is outstanding. Only one request may
	// be outstanding at a time.
	inFlight bool
	activity string
	width    int
}

func newModel(ctx context.Context, a app.App, s app.State) model {
	q := textarea.New()
	q.Placeholder = "E.g., What are the elements required to prove negligence in tort law?"
	q.Prompt = "┃ "
	q.ShowLineNumbers = false
	q.SetHeight(3)
	q.CharLimit = 0
	q.FocusedStyle.CursorLine = lipgloss.NewStyle()
	q.KeyMap.InsertNewline.SetEnabled(false)
	q.SetValue(s.Question)
	q.Focus()

	ins := textarea.New()
	ins.Placeholder = "E.g., Focus on Nigerian case law and provide practical examples..."
	ins.Prompt = "┃ "
	ins.ShowLineNumbers = false
	ins.SetHeight(2)
	ins.CharLimit = 0
	ins.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ins.KeyMap.InsertNewline.SetEnabled(false)
	ins.SetValue(s.Instructions)

	u := textinput.New()
	u.Prompt = "API URL: "
	u.SetValue(s.Settings.APIURL)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(Pink)))

	vp := viewport.New(80, 10)
	vp.SetContent(renderDisclaimer(80))

	return model{
		ctx:          ctx,
		app:          a,
		state:        s,
		question:     q,
		instructions: ins,
		apiURL:       u,
		viewport:     vp,
		spinner:      sp,
		help:         help.New(),
		width:        80,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// syncState copies the input widgets into the state.
func (m model) syncState() model {
	m.state.Question = m.question.Value()
	m.state.Instructions = m.instructions.Value()
	m.state.Settings.APIURL = strings.TrimSpace(m.apiURL.Value())
	return m
}

// run starts an action that calls the API. The action receives a copy of
// the state, so edits made while it is in flight don't affect it.
func (m model) run(activity string, f func(ctx context.Context, s app.State) app.Panel) (model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	m = m.syncState()
	m.inFlight = true
	m.activity = activity
	ctx, s := m.ctx, m.state
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		return panelMsg{panel: f(ctx, s)}
	})
}

func (m model) setFocus(f field) (model, tea.Cmd) {
	m.focus = (f + fieldCount) % fieldCount
	m.question.Blur()
	m.instructions.Blur()
	m.apiURL.Blur()
	switch m.focus {
	case fieldInstructions:
		return m, m.instructions.Focus()
	case fieldAPIURL:
		return m, m.apiURL.Focus()
	default:
		return m, m.question.Focus()
	}
}

func (m model) updateFocused(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
	case fieldAPIURL:
		m.apiURL, cmd = m.apiURL.Update(msg)
	default:
		m.question, cmd = m.question.Update(msg)
	}
	return m, cmd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case panelMsg:
		m.inFlight = false
		m.activity = ""
		m.viewport.SetContent(renderPanel(msg.panel, m.width) + "\n" + renderDisclaimer(m.width))
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.inFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.question.SetWidth(msg.Width)
		m.instructions.SetWidth(msg.Width)
		m.apiURL.Width = msg.Width - lipgloss.Width(m.apiURL.Prompt) - 1
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.formView())-lipgloss.Height(m.footerView())-2, 3)
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		return m.updateFocused(msg)
	}
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Submit):
		return m.run("🔍 Researching legal sources...", m.app.Submit)
	case key.Matches(msg, keys.Status):
		return m.run("Checking system status...", m.app.CheckStatus)
	case key.Matches(msg, keys.InitDocuments):
		return m.run("Initializing document database...", m.app.InitializeDocuments)
	case key.Matches(msg, keys.SystemInfo):
		return m.run("Fetching system info...", func(ctx context.Context, s app.State) app.Panel {
			return m.app.SystemInfo(ctx, s, app.FormatJSON)
		})
	case key.Matches(msg, keys.Example):
		return m.selectExample(int(msg.Runes[len(msg.Runes)-1] - '1'))
	case key.Matches(msg, keys.NextField):
		return m.setFocus(m.focus + 1)
	case key.Matches(msg, keys.PrevField):
		return m.setFocus(m.focus - 1)
	case key.Matches(msg, keys.FewerSources):
		m.state = m.state.WithTopK(-1)
		return m, nil
	case key.Matches(msg, keys.MoreSources):
		m.state = m.state.WithTopK(1)
		return m, nil
	case key.Matches(msg, keys.LowerScore):
		m.state = m.state.WithMinScore(-1)
		return m, nil
	case key.Matches(msg, keys.RaiseScore):
		m.state = m.state.WithMinScore(1)
		return m, nil
	case key.Matches(msg, keys.ToggleContext):
		m.state = m.state.WithReturnContextToggled()
		return m, nil
	case key.Matches(msg, keys.ScrollUp, keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	default:
		return m.updateFocused(msg)
	}
}

func (m model) selectExample(i int) (tea.Model, tea.Cmd) {
	s, err := m.app.SelectExample(m.syncState().state, i)
	if err != nil {
		return m, nil
	}
	m.state = s
	m.question.SetValue(s.Question)
	return m.setFocus(fieldQuestion)
}

var (
	settingsStyle = lipgloss.NewStyle().Background(CurrentLine).Foreground(Foreground).Padding(0, 1)
	focusedLabel  = lipgloss.NewStyle().Foreground(Pink).Bold(true)
	blurredLabel  = lipgloss.NewStyle().Foreground(Comment)
	exampleStyle  = lipgloss.NewStyle().Foreground(Cyan)
	selectedStyle = lipgloss.NewStyle().Foreground(Green).Bold(true)
	activityStyle = lipgloss.NewStyle().Foreground(Yellow)
)

func (m model) label(f field, text string) string {
	if m.focus == f {
		return focusedLabel.Render("▸ " + text)
	}
	return blurredLabel.Render("  " + text)
}

func (m model) settingsView() string {
	contextSetting := "off"
	if m.state.Settings.ReturnContext {
		contextSetting = "on"
	}
	return settingsStyle.Render(fmt.Sprintf("⚙️  Sources: %d │ Min confidence: %.1f │ Full context: %s",
		m.state.Settings.TopK, m.state.Settings.MinScore, contextSetting))
}

func (m model) examplesView() string {
	var sb strings.Builder
	sb.WriteString(blurredLabel.Render("💡 Example Questions"))
	for i, e := range app.Examples {
		sb.WriteString("\n")
		style := exampleStyle
		if e == m.state.LastExample {
			style = selectedStyle
		}
		sb.WriteString(style.Render(fmt.Sprintf("alt+%d %s", i+1, e)))
	}
	return sb.String()
}

func (m model) formView() string {
	return strings.Join([]string{
		titleStyle.Render("⚖️  Law Study Buddy") + " " + subtitleStyle.Render("AI-Powered Legal Research Assistant"),
		m.settingsView(),
		m.label(fieldQuestion, "🔍 Enter your legal question:"),
		m.question.View(),
		m.label(fieldInstructions, "Custom instructions (optional):"),
		m.instructions.View(),
		m.label(fieldAPIURL, "Settings:"),
		m.apiURL.View(),
		m.examplesView(),
	}, "\n")
}

func (m model) footerView() string {
	status := ""
	if m.inFlight {
		status = m.spinner.View() + " " + activityStyle.Render(m.activity)
	}
	return status + "\n" + m.help.View(keys)
}

func (m model) View() string {
	return fmt.Sprintf("%s\n%s\n%s",
		m.formView(),
		m.viewport.View(),
		m.footerView(),
	)
}
