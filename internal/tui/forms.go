package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a vertical group of labelled text inputs with one focused at a
// time. Tab/shift+tab (and up/down outside the focused input) move focus.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
	limit       int
}

func newForm(fields ...fieldSpec) form {
	f := form{}
	for i, spec := range fields {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Prompt = "> "
		if spec.limit > 0 {
			ti.CharLimit = spec.limit
		}
		if spec.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, spec.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func (f *form) Update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) Next() {
	if len(f.inputs) == 0 {
		return
	}
	f.setFocus((f.focus + 1) % len(f.inputs))
}

func (f *form) Prev() {
	if len(f.inputs) == 0 {
		return
	}
	f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
}

func (f *form) setFocus(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	f.inputs[i].Focus()
}

func (f *form) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.setFocus(0)
}

func (f *form) View(t Theme) string {
	var b strings.Builder
	for i := range f.inputs {
		b.WriteString(t.FieldLabel.Render(f.labels[i]))
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		if i != len(f.inputs)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// picker is a fixed-option selector (trigger types, languages).
type picker struct {
	label    string
	options  []string
	selected int
}

func (p *picker) Next() {
	p.selected = (p.selected + 1) % len(p.options)
}

func (p *picker) Value() string {
	return p.options[p.selected]
}

func (p *picker) View(t Theme) string {
	var b strings.Builder
	b.WriteString(t.FieldLabel.Render(p.label))
	b.WriteString(" ")
	for i, opt := range p.options {
		if i == p.selected {
			b.WriteString(t.CardTitle.Render("[" + opt + "]"))
		} else {
			b.WriteString(t.CardTagline.Render(" " + opt + " "))
		}
		if i != len(p.options)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
