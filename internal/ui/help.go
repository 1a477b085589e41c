package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Navegação",
			items: []helpItem{
				{"tab", "Alternar campo/resultados"},
				{"j/k", "Linha acima/abaixo"},
				{"g/G", "Primeira/última linha"},
				{"enter", "Buscar ou abrir detalhes"},
				{"esc", "Fechar/voltar"},
			},
		},
		{
			title: "Paginação",
			items: []helpItem{
				{"←/→", "Página anterior/próxima"},
				{"s", "Itens por página (10/20/50)"},
			},
		},
		{
			title: "Filtros",
			items: []helpItem{
				{"enter", "Aplicar critérios"},
				{"r", "Limpar todos os filtros"},
				{"←/→", "Alternar opção (Tipo/Porte)"},
			},
		},
		{
			title: "Geral",
			items: []helpItem{
				{"T", "Alternar tema"},
				{"h/?", "Esta ajuda"},
				{"e/ctrl+c", "Sair"},
			},
		},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Atalhos de Teclado")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(12)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	content := b.String()

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

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

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
