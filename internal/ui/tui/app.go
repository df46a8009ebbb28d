package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/formdraft/internal/domain"
	"github.com/aalvaropc/formdraft/internal/usecase"
)

const labelWidth = 14

type model struct {
	theme   Theme
	deps    Deps
	session *usecase.FormSession

	inputs []textinput.Model
	// focus indexes inputs; len(inputs) is the submit button.
	focus int

	submitting bool
	status     string
	width      int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		deps:    deps,
		session: deps.Session,
		theme:   ThemeFor(deps.Session.Theme()),
		inputs:  make([]textinput.Model, len(domain.Fields)),
	}

	draft := deps.Session.Draft()
	for i, f := range domain.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Label()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		ti.SetValue(draft.Get(f))
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()
	m.applyTheme()
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case submitDoneMsg:
		return m.onSubmitDone(msg)

	case noticeTickMsg:
		// Notice() drops the expired toast; the next View simply stops rendering it.
		_, _ = m.session.Notice()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+t":
			m.theme = ThemeFor(m.session.ToggleTheme())
			m.applyTheme()
			return m, nil

		case "esc":
			m.session.DismissNotice()
			m.status = ""
			return m, nil

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)

		case "enter":
			return m.submit()
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if after := m.inputs[m.focus].Value(); after != before {
		if err := m.session.Change(domain.Fields[m.focus], after); err != nil {
			m.status = userMessage(err)
		}
	}
	return m, cmd
}

func (m model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	if m.focus < len(m.inputs) {
		_ = m.session.Blur(domain.Fields[m.focus])
		m.inputs[m.focus].Blur()
	}

	n := len(m.inputs) + 1
	m.focus = ((m.focus+delta)%n + n) % n

	if m.focus < len(m.inputs) {
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		m.status = userMessage(domain.ErrSubmitInFlight)
		return m, nil
	}
	if m.focus < len(m.inputs) {
		_ = m.session.Blur(domain.Fields[m.focus])
	}
	m.submitting = true
	m.status = ""
	return m, cmdSubmit(m.session)
}

func (m model) onSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.status = userMessage(msg.err)

	if msg.err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Debug("tui.submit.done", "err", msg.err)
		}
		return m, nil
	}

	draft := m.session.Draft()
	for i, f := range domain.Fields {
		m.inputs[i].SetValue(draft.Get(f))
		m.inputs[i].Blur()
	}
	m.focus = 0
	return m, tea.Batch(m.inputs[0].Focus(), cmdNoticeTick(m.deps.NoticeTTL))
}

func (m *model) applyTheme() {
	for i := range m.inputs {
		m.inputs[i].TextStyle = m.theme.Title.UnsetBold()
		m.inputs[i].PlaceholderStyle = m.theme.Help
		m.inputs[i].Cursor.Style = m.theme.Focused
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("Form") + "    " + m.theme.Help.Render("[ctrl+t] "+toggleLabel(m.theme.Name))
	if m.deps.WorkspaceRoot != "" {
		header += "\n" + m.theme.Subtitle.Render(clampString("Workspace: "+m.deps.WorkspaceRoot, 60))
	}

	var b strings.Builder
	if n, ok := m.session.ActiveNotice(); ok {
		switch n.Kind {
		case domain.NoticeSuccess:
			b.WriteString(m.theme.Success.Render("✅ " + n.Text))
		case domain.NoticeError:
			b.WriteString(m.theme.Alert.Render(n.Text + "\n" + m.theme.Help.Render("esc dismiss")))
		}
		b.WriteString("\n\n")
	}

	val := m.session.Validation()
	for i, f := range domain.Fields {
		label := m.theme.Label.Render(padRight(f.Label(), labelWidth))
		if i == m.focus {
			label = m.theme.Focused.Render(padRight(f.Label(), labelWidth))
		}
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := val.Visible(f); msg != "" {
			b.WriteString(strings.Repeat(" ", labelWidth))
			b.WriteString(m.theme.Error.Render(msg))
			b.WriteString("\n")
		}
	}

	button := "Submit"
	if m.submitting {
		button = "Submitting…"
	}
	b.WriteString("\n")
	if m.focus == len(m.inputs) {
		b.WriteString(m.theme.Button.Render(button))
	} else {
		b.WriteString(m.theme.Help.Render("[ " + button + " ]"))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.theme.Error.Render(m.status))
	}

	help := m.theme.Help.Render(fmt.Sprintf("tab/↑/↓ move • enter submit • ctrl+t theme (%s) • esc dismiss • ctrl+c quit", m.theme.Name))
	return wrap.Render(header + "\n\n" + m.theme.Card.Render(b.String()) + "\n" + help)
}
