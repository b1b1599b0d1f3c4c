package teaui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tourdiary/pkg/app"
	"tableflip.dev/tourdiary/pkg/entry"
	"tableflip.dev/tourdiary/pkg/tui/theme"
)

const (
	fieldTopic = iota
	fieldPlace
	fieldPurpose
	fieldDateTime
	fieldAlarm
	fieldCount
)

var fieldLabels = [fieldCount]string{"Topic", "Place", "Purpose", "Date & Time", "Alarm"}

// form is the five-field entry form. The alarm field is a checkbox toggled
// with space.
type form struct {
	inputs [fieldAlarm]textinput.Model
	alarm  bool
	focus  int
}

func newForm() form {
	var f form
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		f.inputs[i] = ti
	}
	f.inputs[fieldDateTime].Placeholder = entry.LayoutLocal
	f.inputs[fieldTopic].Placeholder = "required"
	f.setFocus(fieldTopic)
	return f
}

func (f *form) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == f.focus {
			cmd = f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return cmd
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }

func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

// value gathers the form the way the submit handler sees it.
func (f *form) value() app.Form {
	return app.Form{
		Topic:    f.inputs[fieldTopic].Value(),
		Place:    f.inputs[fieldPlace].Value(),
		Purpose:  f.inputs[fieldPurpose].Value(),
		DateTime: f.inputs[fieldDateTime].Value(),
		Alarm:    f.alarm,
	}
}

func (f *form) reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.alarm = false
	return f.setFocus(fieldTopic)
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.focus == fieldAlarm {
		if k, ok := msg.(tea.KeyPressMsg); ok && isToggle(k.String()) {
			f.alarm = !f.alarm
		}
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func isToggle(key string) bool {
	switch key {
	case "space", " ", "x":
		return true
	}
	return false
}

func (f *form) view(th theme.Theme) string {
	var b strings.Builder
	for i := 0; i < fieldCount; i++ {
		label := th.Form.Label
		if i == f.focus {
			label = th.Form.ActiveLabel
		}
		b.WriteString(label.Render(fieldLabels[i]))
		if i == fieldAlarm {
			box := "[ ]"
			if f.alarm {
				box = "[x]"
			}
			b.WriteString(box)
		} else {
			b.WriteString(f.inputs[i].View())
		}
		b.WriteString("\n")
	}
	return b.String()
}
