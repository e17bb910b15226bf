package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/namedeck/internal/store"
)

// nameForm is the shared edit-plus-display unit both screens render: a text
// input, an inline validation message, and a read-only label bound to the
// store. The form is either idle or showing the required-field error; any
// keystroke returns it to idle.
type nameForm struct {
	st          *store.Store
	input       textinput.Model
	labelPrefix string
	requiredMsg string
	invalid     bool
	sub         store.Subscription
	display     string
}

func newNameForm(st *store.Store, labelPrefix, requiredMsg string) *nameForm {
	inp := textinput.New()
	inp.Prompt = "Name: "
	inp.Placeholder = "type a name"
	inp.CharLimit = 64
	inp.Focus()
	return &nameForm{
		st:          st,
		input:       inp,
		labelPrefix: labelPrefix,
		requiredMsg: requiredMsg,
	}
}

// mount registers the store listener; unmount removes it. The listener only
// refreshes the cached label, so a stale callback after unmount would touch
// freed-for-reuse state. The pair is driven by the root model's push/pop.
func (f *nameForm) mount() {
	f.sub = f.st.Subscribe(f.refresh)
	f.refresh()
}

func (f *nameForm) unmount() {
	f.st.Unsubscribe(f.sub)
	f.sub = ""
}

func (f *nameForm) refresh() {
	if name, ok := f.st.Name(); ok {
		f.display = f.labelPrefix + name
	} else {
		f.display = ""
	}
}

func (f *nameForm) setLabelPrefix(prefix string) {
	f.labelPrefix = prefix
	f.refresh()
}

func (f *nameForm) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		if k.Type == tea.KeyEnter {
			return f.submit()
		}
		f.invalid = false
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *nameForm) submit() tea.Cmd {
	value := strings.TrimSpace(f.input.Value())
	if value == "" {
		f.invalid = true
		return nil
	}
	f.invalid = false
	f.st.SetName(value)
	f.input.SetValue("")
	return StatusCmd("saved")
}

func (f *nameForm) view() string {
	lines := []string{f.input.View()}
	if f.invalid {
		lines = append(lines, errorStyle.Render(f.requiredMsg))
	}
	lines = append(lines, "", labelStyle.Render(f.display))
	return strings.Join(lines, "\n")
}
