package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// prefixScreen edits the display-label prefix. Saving pops the screen and
// hands the new prefix to the root model, which applies it to every mounted
// screen and persists it to config.
type prefixScreen struct {
	input       textinput.Model
	requiredMsg string
	invalid     bool
	keys        prefixKeys
}

type prefixKeys struct {
	Save key.Binding
	Back key.Binding
}

func newPrefixScreen(current, requiredMsg string) *prefixScreen {
	inp := textinput.New()
	inp.Prompt = "Prefix: "
	inp.SetValue(current)
	inp.CharLimit = 32
	inp.Focus()
	return &prefixScreen{
		input:       inp,
		requiredMsg: requiredMsg,
		keys: prefixKeys{
			Save: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
	}
}

func (s *prefixScreen) Title() string { return "Label Prefix" }

func (s *prefixScreen) Mount()   {}
func (s *prefixScreen) Unmount() {}

func (s *prefixScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, s.keys.Back):
			return s, nil, true
		case k.Type == tea.KeyEnter:
			value := s.input.Value()
			if strings.TrimSpace(value) == "" {
				s.invalid = true
				return s, nil, false
			}
			return s, func() tea.Msg { return prefixSavedMsg{Prefix: value} }, true
		}
		s.invalid = false
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *prefixScreen) View(width, height int) string {
	lines := []string{titleStyle.Render("Display Label Prefix"), "", s.input.View()}
	if s.invalid {
		lines = append(lines, errorStyle.Render(s.requiredMsg))
	}
	body := strings.Join(lines, "\n")
	return clipHeight(frameStyle.Width(max(20, width-2)).Render(body), height)
}

func (s *prefixScreen) Bindings() []key.Binding {
	return []key.Binding{s.keys.Save, s.keys.Back}
}
