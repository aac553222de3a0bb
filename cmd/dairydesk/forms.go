package main

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"dairydesk/cmd/dairydesk/ui"
)

// form is a vertical stack of labeled text inputs with one focused field.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

type fieldSpec struct {
	label       string
	placeholder string
	secret      bool
}

func newForm(styles ui.Styles, fields ...fieldSpec) form {
	f := form{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, spec := range fields {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Prompt = "│ "
		ti.PromptStyle = styles.Prompt
		ti.CharLimit = 128
		ti.Width = 40
		if spec.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.labels[i] = spec.label
		f.inputs[i] = ti
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// value returns the trimmed content of field i.
func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
}

func (f *form) next() {
	f.move(1)
}

func (f *form) prev() {
	f.move(-1)
}

func (f *form) move(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards a message to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// view renders labels and inputs stacked vertically.
func (f *form) view(styles ui.Styles) string {
	out := ""
	for i := range f.inputs {
		out += styles.Muted.Render(f.labels[i]) + "\n"
		out += f.inputs[i].View() + "\n"
	}
	return out
}

// Form field indices, named so submit handlers read clearly.
const (
	loginEmail = iota
	loginPassword
)

const (
	regName = iota
	regEmail
	regPassword
	regRole
	regFarmName
	regFarmAddress
)

const (
	farmName = iota
	farmAddress
	farmPrice
)

const (
	cattleTag = iota
	cattleBreed
	cattleShed
)

const (
	buyQuantity = iota
	buySession
	buyDate
)

func newLoginForm(styles ui.Styles) form {
	return newForm(styles,
		fieldSpec{label: "Email", placeholder: "you@example.com"},
		fieldSpec{label: "Password", secret: true},
	)
}

func newRegisterForm(styles ui.Styles) form {
	return newForm(styles,
		fieldSpec{label: "Name", placeholder: "Full name"},
		fieldSpec{label: "Email", placeholder: "you@example.com"},
		fieldSpec{label: "Password", secret: true},
		fieldSpec{label: "Role", placeholder: "FARM_OWNER, WORKER or BUYER"},
		fieldSpec{label: "Farm name (owners, optional)"},
		fieldSpec{label: "Farm address (owners, optional)"},
	)
}

func newFarmForm(styles ui.Styles) form {
	return newForm(styles,
		fieldSpec{label: "Name", placeholder: "Meadowbrook Dairy"},
		fieldSpec{label: "Address"},
		fieldSpec{label: "Price per liter", placeholder: "1.50"},
	)
}

func newCattleForm(styles ui.Styles) form {
	return newForm(styles,
		fieldSpec{label: "Tag ID", placeholder: "unique within the farm"},
		fieldSpec{label: "Breed", placeholder: "Holstein"},
		fieldSpec{label: "Shed ID (optional)"},
	)
}

func newBuyForm(styles ui.Styles) form {
	return newForm(styles,
		fieldSpec{label: "Quantity (liters)", placeholder: "2.5"},
		fieldSpec{label: "Session", placeholder: "MORNING or EVENING"},
		fieldSpec{label: "Date", placeholder: "2026-09-01"},
	)
}
