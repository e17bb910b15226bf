package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/namedeck/internal/store"
)

type homeKeys struct {
	Save    key.Binding
	Details key.Binding
	Prefix  key.Binding
	Clear   key.Binding
	Quit    key.Binding
}

func newHomeKeys() homeKeys {
	return homeKeys{
		Save:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Details: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "details")),
		Prefix:  key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "label prefix")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Quit:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
	}
}

// HomeScreen is the entry screen. It edits the shared name and pushes the
// detail screen.
type HomeScreen struct {
	st   *store.Store
	form *nameForm
	keys homeKeys
}

func NewHomeScreen(st *store.Store, labelPrefix, requiredMsg string) *HomeScreen {
	return &HomeScreen{
		st:   st,
		form: newNameForm(st, labelPrefix, requiredMsg),
		keys: newHomeKeys(),
	}
}

func (s *HomeScreen) Title() string { return "Home" }

func (s *HomeScreen) Mount()   { s.form.mount() }
func (s *HomeScreen) Unmount() { s.form.unmount() }

func (s *HomeScreen) setLabelPrefix(prefix string) { s.form.setLabelPrefix(prefix) }

func (s *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, s.keys.Details):
			next := NewDetailScreen(s.st, s.form.labelPrefix, s.form.requiredMsg)
			return s, pushCmd(next), false
		case key.Matches(k, s.keys.Prefix):
			return s, pushCmd(newPrefixScreen(s.form.labelPrefix, s.form.requiredMsg)), false
		case key.Matches(k, s.keys.Clear):
			s.st.Clear()
			return s, StatusCmd("cleared"), false
		case key.Matches(k, s.keys.Quit):
			return s, nil, true
		}
	}
	return s, s.form.update(msg), false
}

func (s *HomeScreen) View(width, height int) string {
	body := titleStyle.Render("Write Your Name") + "\n\n" + s.form.view()
	return clipHeight(frameStyle.Width(max(20, width-2)).Render(body), height)
}

func (s *HomeScreen) Bindings() []key.Binding {
	return []key.Binding{s.keys.Save, s.keys.Details, s.keys.Prefix, s.keys.Clear, s.keys.Quit}
}
