package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateEnded
	stateError
)

// logEntry is one block of the scrolling game log.
type logEntry struct {
	text string
	user bool
}

type model struct {
	ctx       context.Context
	state     sessionState
	engine    *game.Engine
	handler   *commands.Handler
	textInput textinput.Model
	viewport  viewport.Model
	ready     bool
	entries   []logEntry
	width     int
	height    int
	err       error
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func newModel(ctx context.Context, eng *game.Engine, h *commands.Handler) (model, error) {
	intro, err := h.Intro(eng)
	if err != nil {
		return model{}, fmt.Errorf("rendering intro: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return model{
		ctx:       ctx,
		state:     statePlaying,
		engine:    eng,
		handler:   h,
		textInput: ti,
		entries:   []logEntry{{text: intro}},
	}, nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if m.state != statePlaying {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.logWidth(), m.logHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.logWidth()
			m.viewport.Height = m.logHeight()
		}
		m.refresh()
		return m, nil
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit runs the typed line through the command handler.
func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.textInput.Value()
	m.textInput.Reset()
	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	m.entries = append(m.entries, logEntry{text: "> " + line, user: true})

	resp, err := m.handler.Exec(m.ctx, m.engine, line)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, nil
	}

	if resp.Text != "" {
		m.entries = append(m.entries, logEntry{text: resp.Text})
	}
	if resp.End {
		m.state = stateEnded
		m.textInput.Blur()
	}

	m.refresh()
	return m, nil
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) logHeight() int {
	return max(m.height-6, 1)
}

func (m model) View() string {
	var s string

	switch m.state {
	case statePlaying, stateEnded:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderState(),
		)

		help := helpStyle.Render("Commands: go, take, drop, inspect, buy, sell, money, examine, inventory, quit.")
		if m.state == stateEnded {
			help = helpStyle.Render("The adventure is over. Press any key to leave.")
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderLog() string {
	width := m.logWidth()

	blocks := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		if e.user {
			blocks = append(blocks, userStyle.Width(width).Render(e.text))
			continue
		}
		blocks = append(blocks, gameStyle.Width(width).Render(e.text))
	}
	return strings.Join(blocks, "\n\n")
}

func (m model) renderState() string {
	room := m.engine.CurrentRoom()
	player := m.engine.Player()

	location := titleStyle.Render("LOCATION") + "\n" + room.Name + "\n\n"
	money := titleStyle.Render("MONEY") + "\n" + player.Money().String() + "\n\n"

	items := titleStyle.Render("INVENTORY") + "\n"
	carried := player.Inventory().Items()
	if len(carried) == 0 {
		items += "Nothing\n"
	}
	for _, item := range carried {
		items += item.Name + "\n"
	}

	return stateStyle.
		Width(max(m.width-m.logWidth()-2, 0)).
		Height(m.logHeight()).
		Render(location + money + items)
}

// Run plays one session in a full-screen terminal UI until the player
// quits or wins, or ctx is cancelled.
func Run(ctx context.Context, eng *game.Engine, h *commands.Handler, opts ...tea.ProgramOption) error {
	m, err := newModel(ctx, eng, h)
	if err != nil {
		return err
	}

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("running tui: %w", err)
	}

	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
