package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/namedeck/internal/store"
)

type detailKeys struct {
	Save  key.Binding
	Clear key.Binding
	Back  key.Binding
}

func newDetailKeys() detailKeys {
	return detailKeys{
		Save:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Clear: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Back:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// DetailScreen edits the same shared name as the home screen and pops back
// to it. Navigation never touches the store.
type DetailScreen struct {
	st   *store.Store
	form *nameForm
	keys detailKeys
}

func NewDetailScreen(st *store.Store, labelPrefix, requiredMsg string) *DetailScreen {
	return &DetailScreen{
		st:   st,
		form: newNameForm(st, labelPrefix, requiredMsg),
		keys: newDetailKeys(),
	}
}

func (s *DetailScreen) Title() string { return "Details" }

func (s *DetailScreen) Mount()   { s.form.mount() }
func (s *DetailScreen) Unmount() { s.form.unmount() }

func (s *DetailScreen) setLabelPrefix(prefix string) { s.form.setLabelPrefix(prefix) }

func (s *DetailScreen) Update(msg tea.Msg) (Screen, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, s.keys.Clear):
			s.st.Clear()
			return s, StatusCmd("cleared"), false
		case key.Matches(k, s.keys.Back):
			return s, nil, true
		}
	}
	return s, s.form.update(msg), false
}

func (s *DetailScreen) View(width, height int) string {
	body := titleStyle.Render("Update Your Name") + "\n\n" + s.form.view()
	return clipHeight(frameStyle.Width(max(20, width-2)).Render(body), height)
}

func (s *DetailScreen) Bindings() []key.Binding {
	return []key.Binding{s.keys.Save, s.keys.Clear, s.keys.Back}
}
