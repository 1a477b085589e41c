package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ncarv/balcao/internal/empresas"
	"github.com/ncarv/balcao/internal/search"
)

// fieldKind distinguishes free-text filter fields from fixed-option ones.
type fieldKind int

const (
	fieldText fieldKind = iota
	fieldEnum
)

// enumOption is one selectable value for a fixed-option field. The value is
// what goes on the wire; an empty value means the criterion is unset.
type enumOption struct {
	label string
	value string
}

var tipoOptions = []enumOption{
	{"Todos", ""},
	{"Matriz", "1"},
	{"Filial", "2"},
}

// The registry matches porte_empresa by its label text, not a numeric code,
// so the option labels double as the wire values.
var porteOptions = []enumOption{
	{"Todos", ""},
	{"Micro Empresa", "Micro Empresa"},
	{"Empresa de Pequeno Porte", "Empresa de Pequeno Porte"},
	{"Demais", "Demais"},
	{"Não Informado", "Não Informado"},
}

// formField describes one filter input in form order.
type formField struct {
	name        string // wire name, see empresas.Field*
	label       string
	kind        fieldKind
	placeholder string
	charLimit   int
	options     []enumOption
}

func formFields() []formField {
	return []formField{
		{name: empresas.FieldNome, label: "Nome", kind: fieldText, placeholder: "razão social ou fantasia"},
		{name: empresas.FieldCNPJ, label: "CNPJ", kind: fieldText, placeholder: "somente dígitos", charLimit: 14},
		{name: empresas.FieldMatriz, label: "Tipo", kind: fieldEnum, options: tipoOptions},
		{name: empresas.FieldPorte, label: "Porte", kind: fieldEnum, options: porteOptions},
		{name: empresas.FieldCEP, label: "CEP", kind: fieldText, charLimit: 8},
		{name: empresas.FieldUF, label: "UF", kind: fieldText, charLimit: 2},
		{name: empresas.FieldCapitalMin, label: "Capital mín.", kind: fieldText, placeholder: "R$"},
		{name: empresas.FieldCapitalMax, label: "Capital máx.", kind: fieldText, placeholder: "R$"},
		{name: empresas.FieldAberturaDe, label: "Abertura de", kind: fieldText, placeholder: "AAAA-MM-DD", charLimit: 10},
		{name: empresas.FieldAberturaAte, label: "Abertura até", kind: fieldText, placeholder: "AAAA-MM-DD", charLimit: 10},
	}
}

// initFormInputs builds the textinput models for the text fields. Enum
// fields keep a selected-option index instead.
func (m *Model) initFormInputs() {
	m.fields = formFields()
	m.inputs = make([]textinput.Model, len(m.fields))
	m.enumIdx = make(map[int]int, 2)

	for i, f := range m.fields {
		if f.kind == fieldEnum {
			m.enumIdx[i] = 0
			continue
		}
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.CharLimit = f.charLimit
		in.Prompt = ""
		m.inputs[i] = in
	}
	m.focusField = 0
	m.focusInput()
}

// focusInput moves textinput focus to the current form field.
func (m *Model) focusInput() {
	for i := range m.inputs {
		if m.fields[i].kind == fieldText {
			m.inputs[i].Blur()
		}
	}
	if m.focusResults {
		return
	}
	if m.fields[m.focusField].kind == fieldText {
		m.inputs[m.focusField].Focus()
	}
}

// cycleEnum advances the selected option of an enum field and pushes the new
// value into the filter state. Editing a criterion never fetches.
func (m *Model) cycleEnum(idx, delta int) {
	f := m.fields[idx]
	n := len(f.options)
	m.enumIdx[idx] = ((m.enumIdx[idx]+delta)%n + n) % n
	m.ctl.SetFilter(f.name, f.options[m.enumIdx[idx]].value)
}

// resetForm clears every input and the underlying filter state in one step.
func (m *Model) resetForm() {
	m.ctl.ResetFilters()
	for i, f := range m.fields {
		if f.kind == fieldEnum {
			m.enumIdx[i] = 0
			continue
		}
		m.inputs[i].SetValue("")
	}
}

// handleFormKey processes keyboard input while a filter field is focused.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := m.fields[m.focusField]

	switch {
	case key.Matches(msg, m.keys.Tab):
		if m.focusField == len(m.fields)-1 {
			m.focusResults = true
		} else {
			m.focusField++
		}
		m.focusInput()
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		if m.focusField == 0 {
			m.focusResults = true
		} else {
			m.focusField--
		}
		m.focusInput()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m, m.submitSearch()

	case key.Matches(msg, m.keys.Escape):
		if m.ctl.Phase() == search.PhaseFailure {
			m.ctl.ClearError()
			return m, nil
		}
		m.focusResults = true
		m.focusInput()
		return m, nil
	}

	if field.kind == fieldEnum {
		switch msg.String() {
		case "left":
			m.cycleEnum(m.focusField, -1)
		case "right", " ":
			m.cycleEnum(m.focusField, 1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusField], cmd = m.inputs[m.focusField].Update(msg)
	m.ctl.SetFilter(field.name, m.inputs[m.focusField].Value())
	return m, cmd
}

// renderForm renders the filter pane.
func (m Model) renderForm(width, height int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	innerWidth := width - 2

	var lines []string
	for i, f := range m.fields {
		current := focused && i == m.focusField

		marker := "  "
		labelStyle := styles.MutedText
		if current {
			marker = "▸ "
			labelStyle = styles.AccentText
		}

		var value string
		switch f.kind {
		case fieldEnum:
			opt := f.options[m.enumIdx[i]]
			value = ternary(current, "◂ "+opt.label+" ▸", opt.label)
		default:
			if current {
				value = m.inputs[i].View()
			} else {
				value = m.inputs[i].Value()
			}
		}

		line := bg.Render(marker, styles.AccentText) +
			bg.Render(padRight(f.label, 13), labelStyle) +
			bg.Render(truncate(value, maxInt(innerWidth-16, 4)), styles.Text)
		lines = append(lines, line)
		lines = append(lines, "")
	}

	hint := bg.Render("enter", styles.AccentText) + bg.Render(": buscar", styles.FaintText)
	lines = append(lines, hint)

	content := strings.Join(lines, "\n")
	title := "Filtros"
	if !m.ctl.Filters().IsZero() {
		title = "Filtros ●"
	}
	return m.renderTitledBox(title, content, width, height, focused)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
