package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/namedeck/internal/config"
	"github.com/jask/namedeck/internal/store"
)

// Model is the root bubbletea model. It owns the navigation stack and the
// chrome around the active screen (header, status bar, footer). The store is
// the single shared instance built in main; screens subscribe to it on mount.
type Model struct {
	cfg        config.Config
	st         *store.Store
	screens    ScreenStack
	width      int
	height     int
	status     string
	statusErr  bool
	quitting   bool
	saveConfig func(config.Config) error
}

// labelPrefixSetter is implemented by screens that render the shared label.
type labelPrefixSetter interface {
	setLabelPrefix(prefix string)
}

var quitBinding = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

func New(cfg config.Config, st *store.Store) Model {
	applyAccent(cfg.UI.AccentColor)
	m := Model{
		cfg:        cfg,
		st:         st,
		width:      100,
		height:     32,
		saveConfig: config.Save,
	}
	home := NewHomeScreen(st, cfg.UI.LabelPrefix, cfg.UI.RequiredMessage)
	m.screens.Push(home)
	home.Mount()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		msg.Screen.Mount()
		return m, nil
	case PopScreenMsg:
		return m.popTop(nil)
	case prefixSavedMsg:
		return m.applyPrefix(msg.Prefix)
	case tea.KeyMsg:
		if key.Matches(msg, quitBinding) {
			m.quitting = true
			return m, tea.Quit
		}
		return m.routeToTop(msg)
	default:
		return m.routeToTop(msg)
	}
}

func (m Model) routeToTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	top := m.screens.Top()
	if top == nil {
		return m, nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		return m.popTop(cmd)
	}
	m.screens.replaceTop(next)
	return m, cmd
}

// popTop unmounts and removes the active screen. Popping the last screen
// ends the program.
func (m Model) popTop(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if popped := m.screens.Pop(); popped != nil {
		popped.Unmount()
	}
	if m.screens.Len() == 0 {
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) applyPrefix(prefix string) (tea.Model, tea.Cmd) {
	m.cfg.UI.LabelPrefix = prefix
	for _, s := range m.screens.items {
		if setter, ok := s.(labelPrefixSetter); ok {
			setter.setLabelPrefix(prefix)
		}
	}
	cfg := m.cfg
	save := m.saveConfig
	return m, func() tea.Msg {
		if err := save(cfg); err != nil {
			return StatusMsg{Text: err.Error(), IsErr: true}
		}
		return StatusMsg{Text: "label prefix saved"}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	top := m.screens.Top()
	if top == nil {
		return ""
	}

	width := max(1, m.width)
	header := renderBar(headerBarStyle, width, m.headerText(top.Title()), colorMantle)
	status := renderStatusBar(width, m.status, m.statusErr)
	footer := renderFooter(width, append(top.Bindings(), quitBinding))

	bodyHeight := max(1, m.height-3)
	body := clipHeight(top.View(width, bodyHeight), bodyHeight)

	return header + "\n" + body + "\n" + status + "\n" + footer
}

func (m Model) headerText(title string) string {
	app := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle).Render("namedeck")
	sep := lipgloss.NewStyle().Foreground(colorBorder).Background(colorMantle).Render(" | ")
	rest := lipgloss.NewStyle().Foreground(colorText).Background(colorMantle).Render(title)
	return app + sep + rest
}
