package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ncarv/balcao/internal/format"
	"github.com/ncarv/balcao/internal/prefs"
	"github.com/ncarv/balcao/internal/search"
)

// resultColumns defines the table layout. Nome takes whatever width is left.
type resultColumn struct {
	label string
	width int // 0 = flexible
	right bool
}

func resultColumns(compact bool) []resultColumn {
	if compact {
		return []resultColumn{
			{label: "Nome"},
			{label: "CNPJ", width: 18},
			{label: "Capital Social", width: 16, right: true},
			{label: "UF", width: 2},
		}
	}
	return []resultColumn{
		{label: "Nome"},
		{label: "CNPJ", width: 18},
		{label: "Tipo", width: 6},
		{label: "Porte", width: 14},
		{label: "Capital Social", width: 16, right: true},
		{label: "Abertura", width: 10},
		{label: "UF", width: 2},
	}
}

// handleResultsKey processes keyboard input while the results pane has focus.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.ctl.Results()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.focusResults = false
		m.focusField = 0
		m.focusInput()
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.focusResults = false
		m.focusField = len(m.fields) - 1
		m.focusInput()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(results)-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if len(results) > 0 {
			m.selectedRow = len(results) - 1
		}
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.selectedRow < len(results) {
			m.openDetail(&results[m.selectedRow])
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if req, ok := m.ctl.NextPage(); ok {
			m.selectedRow = 0
			return m, m.runRequest(req)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if req, ok := m.ctl.PrevPage(); ok {
			m.selectedRow = 0
			return m, m.runRequest(req)
		}
		return m, nil

	case key.Matches(msg, m.keys.CyclePerPage):
		if req, ok := m.ctl.CyclePageSize(); ok {
			m.selectedRow = 0
			m.savePrefs()
			return m, m.runRequest(req)
		}
		return m, nil

	case key.Matches(msg, m.keys.ResetFilters):
		m.resetForm()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.ctl.ClearError()
		return m, nil
	}

	return m, nil
}

// savePrefs persists the cosmetic preferences. Failures are ignored; losing
// a theme choice is not worth interrupting the session.
func (m Model) savePrefs() {
	_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, PageSize: m.ctl.PageSize()})
}

// renderResults renders the results pane: column header, one row per record
// and a pagination footer.
func (m Model) renderResults(width, height int, focused bool) string {
	bgColor := m.theme.SurfaceAlt
	if focused {
		bgColor = m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	innerWidth := width - 2
	innerHeight := height - 2
	compact := innerWidth < 96

	cols := resultColumns(compact)
	nameWidth := innerWidth - 2
	for _, c := range cols {
		if c.width > 0 {
			nameWidth -= c.width + 2
		}
	}
	nameWidth = maxInt(nameWidth, 12)

	var lines []string

	// Column header
	var header []string
	for _, c := range cols {
		w := c.width
		if w == 0 {
			w = nameWidth
		}
		cell := ternary(c.right, padLeft(c.label, w), padRight(c.label, w))
		header = append(header, bg.Render(cell, styles.MutedText))
	}
	lines = append(lines, " "+bg.Join(header, "  "))
	lines = append(lines, "")

	results := m.ctl.Results()
	switch {
	case m.ctl.Phase() == search.PhaseLoading && len(results) == 0:
		lines = append(lines, " "+bg.Render(m.spin.View()+" Consultando registros...", styles.InfoText))
	case m.ctl.Phase() == search.PhaseSuccess && len(results) == 0:
		lines = append(lines, " "+bg.Render("Nenhum resultado encontrado", styles.MutedText))
	default:
		for i, e := range results {
			selected := focused && i == m.selectedRow

			cells := []string{format.Capitalize(e.RazaoSocial), format.CNPJ(e.CNPJ)}
			if !compact {
				cells = append(cells, e.Matriz.Label(), format.Capitalize(e.PorteEmpresa))
			}
			cells = append(cells, format.Currency(e.CapitalSocial))
			if !compact {
				cells = append(cells, format.Date(e.DataInicioAtividade))
			}
			cells = append(cells, e.UF)

			var row string
			if selected {
				var parts []string
				for j, c := range cols {
					w := c.width
					if w == 0 {
						w = nameWidth
					}
					parts = append(parts, ternary(c.right, padLeft(cells[j], w), padRight(truncate(cells[j], w), w)))
				}
				row = styles.Selected.Width(innerWidth).Render(" " + strings.Join(parts, "  "))
			} else {
				cellStyles := rowCellStyles(styles, compact)
				var parts []string
				for j, c := range cols {
					w := c.width
					if w == 0 {
						w = nameWidth
					}
					cell := ternary(c.right, padLeft(cells[j], w), padRight(truncate(cells[j], w), w))
					parts = append(parts, bg.Render(cell, cellStyles[j]))
				}
				row = " " + bg.Join(parts, "  ")
			}
			lines = append(lines, row)
		}
	}

	// Pad so the footer sits on the last content line.
	for len(lines) < innerHeight-1 {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight-1 {
		lines = lines[:innerHeight-1]
	}
	lines = append(lines, " "+m.renderResultsFooter(bg, styles))

	title := fmt.Sprintf("Resultados (%d)", m.ctl.Total())
	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, focused)
}

// rowCellStyles returns the per-column styles for an unselected row, in the
// same order as resultColumns.
func rowCellStyles(styles Styles, compact bool) []lipgloss.Style {
	if compact {
		return []lipgloss.Style{styles.Text, styles.MutedText, styles.AccentText, styles.Text}
	}
	return []lipgloss.Style{
		styles.Text,       // Nome
		styles.MutedText,  // CNPJ
		styles.FaintText,  // Tipo
		styles.FaintText,  // Porte
		styles.AccentText, // Capital Social
		styles.MutedText,  // Abertura
		styles.Text,       // UF
	}
}

// renderResultsFooter renders the "x–y de N • pág p/m • s por página" line.
func (m Model) renderResultsFooter(bg BgStyle, styles Styles) string {
	total := m.ctl.Total()
	page := m.ctl.Page()
	size := m.ctl.PageSize()

	var rangeStr string
	if total == 0 {
		rangeStr = "0 de 0"
	} else {
		from := page*size + 1
		to := page*size + len(m.ctl.Results())
		if to < from {
			to = minInt(total, from+size-1)
		}
		rangeStr = fmt.Sprintf("%d–%d de %d", from, to, total)
	}

	parts := []string{
		bg.Render(rangeStr, styles.Text),
		bg.Render(fmt.Sprintf("pág %d/%d", page+1, m.ctl.PageCount()), styles.MutedText),
		bg.Render(fmt.Sprintf("%d por página", size), styles.MutedText),
	}
	if m.ctl.Phase() == search.PhaseLoading {
		parts = append(parts, bg.Render(m.spin.View(), styles.InfoText))
	}

	sep := bg.Spaces(1) + bg.Render("•", styles.FaintText) + bg.Spaces(1)
	return strings.Join(parts, sep)
}

// minInt returns the smaller of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
