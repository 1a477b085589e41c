package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ncarv/balcao/internal/empresas"
	"github.com/ncarv/balcao/internal/format"
)

// openDetail shows the detail overlay for one record.
func (m *Model) openDetail(e *empresas.Empresa) {
	m.detail = e
	m.showDetail = true
	m.detailViewport.Width = m.detailModalWidth() - 4 // border + padding
	m.detailViewport.Height = m.detailModalHeight() - 5
	m.detailViewport.SetContent(m.buildDetailContent())
	m.detailViewport.GotoTop()
}

func (m Model) detailModalWidth() int {
	return minInt(maxInt(m.width-10, 40), 84)
}

func (m Model) detailModalHeight() int {
	return maxInt(m.height-6, 12)
}

// handleDetailKey processes keyboard input while the detail overlay is open.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.showDetail = false
		m.detail = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.detailViewport, cmd = m.detailViewport.Update(msg)
	return m, cmd
}

// buildDetailContent renders the sectioned view-model as viewport text.
func (m Model) buildDetailContent() string {
	styles := m.theme.Styles()
	labelWidth := 20

	var b strings.Builder
	for i, section := range PresentDetail(m.detail) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.AccentText.Bold(true).Render(section.Title))
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render(strings.Repeat("─", m.detailViewport.Width)))
		b.WriteString("\n")
		for _, field := range section.Fields {
			b.WriteString(styles.MutedText.Render(padRight(field.Label, labelWidth)))
			b.WriteString(styles.Text.Render(field.Value))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderDetail renders the detail overlay centered over the screen.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	e := m.detail
	if e == nil {
		return ""
	}

	// Title row: company name plus a status chip.
	name := truncate(format.Capitalize(e.RazaoSocial), m.detailModalWidth()-24)
	if name == "" {
		name = format.CNPJ(e.CNPJ)
	}
	chip := styles.StatusStyle(string(e.SituacaoCadastral)).Render(e.SituacaoCadastral.Label())
	title := styles.Text.Bold(true).Render(name) + "  " + chip

	hint := styles.FaintText.Render("j/k rolar • esc fechar")

	content := title + "\n\n" + m.detailViewport.View() + "\n" + hint

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderFocus)).
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(m.detailModalWidth())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
