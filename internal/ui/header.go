package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncarv/balcao/internal/search"
)

// renderHeader renders the status bar: logo, API state, result count and
// last-update timestamp.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("balcão", styles.Logo)}

	switch m.ctl.Phase() {
	case search.PhaseIdle:
		parts = append(parts, bg.Render("Conectando...", styles.WarningText.Bold(true)))
	case search.PhaseLoading:
		parts = append(parts, bg.Render(m.spin.View()+" Consultando", styles.InfoText))
	case search.PhaseSuccess:
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	case search.PhaseFailure:
		parts = append(parts, bg.Render("API "+classifyConnectionError(m.ctl.LastError()), styles.DangerText.Bold(true)))
	}

	parts = append(parts,
		bg.Render("Registros:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", m.ctl.Total()), styles.Text),
	)

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Failure banner: stale results stay on screen, the message rides here.
	if m.ctl.Phase() == search.PhaseFailure {
		maxErr := 80
		if m.width < 100 {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render("ERRO", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.ctl.LastError(), maxErr), styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, sep))
}

// formatTimestamp formats the last successful update time with a relative
// indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (agora)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm atrás)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh atrás)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the failure cause.
func classifyConnectionError(msg string) string {
	switch {
	case msg == "":
		return ""
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NÃO ENCONTRADO"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERRO"
	}
}

// renderCommandBar renders the command hints bar for the focused area.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	if m.focusResults {
		commands = []cmd{
			{"j/k", "Navegar"},
			{"Enter", "Detalhes"},
			{"←/→", "Páginas"},
			{"s", fmt.Sprintf("%d/pág", m.ctl.PageSize())},
			{"r", "Limpar"},
			{"Tab", "Filtros"},
			{"?", "Ajuda"},
			{"e", "Sair"},
		}
	} else {
		commands = []cmd{
			{"Tab", "Próximo campo"},
			{"Enter", "Buscar"},
			{"Esc", "Resultados"},
			{"Ctrl+C", "Sair"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
