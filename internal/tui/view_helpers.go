package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderButton draws an action control. A disabled control never reacts to
// enter, so it is drawn struck through regardless of focus.
func renderButton(label string, enabled, focused bool) string {
	text := "[ " + label + " ]"
	switch {
	case !enabled:
		return disabledButtonStyle.Render(text)
	case focused:
		return focusedButtonStyle.Render(text)
	default:
		return buttonStyle.Render(text)
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
