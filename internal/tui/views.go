package tui

import (
	"strings"

	"github.com/MKhiriev/go-massage-link/models"
)

func (m sessionView) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.view {
	case models.ViewHome:
		body = m.viewHome()
	case models.ViewClient:
		body = m.viewClient()
	case models.ViewMasseuse:
		body = m.viewMasseuse()
	}

	body += "\n\n" + m.viewFooter()
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m sessionView) viewHome() string {
	var b strings.Builder

	b.WriteString("Real-time communication between clients and masseuses\n\n")

	b.WriteString(titleStyle.Render("For Clients"))
	b.WriteString("\n")
	b.WriteString("Name     │ [")
	b.WriteString(m.inputs[inputClientName].View())
	b.WriteString("]\n")
	if m.submitting {
		b.WriteString("[ " + m.spinner.View() + " Starting session... ]")
	} else {
		b.WriteString(renderButton("Start Massage Session", m.canCreate(), m.focus == inputClientName))
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("For Masseuses"))
	b.WriteString("\n")
	b.WriteString("Session  │ [")
	b.WriteString(m.inputs[inputSessionID].View())
	b.WriteString("]\n")
	b.WriteString(renderButton("Join as Masseuse", m.canJoin(), m.focus == inputSessionID))

	return renderPage(
		"INTERACTIVE MASSAGE COMMUNICATION",
		b.String(),
		"tab: next field │ enter: confirm │ ctrl+v: about",
	)
}

func (m sessionView) viewClient() string {
	var b strings.Builder

	b.WriteString("Session ID: ")
	b.WriteString(m.sessionID)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Welcome " + m.clientName + "!"))
	b.WriteString("\n")
	b.WriteString("Share your Session ID with your masseuse: ")
	b.WriteString(m.sessionID)
	b.WriteString("\n")
	m.writeSessionDetails(&b)
	m.writeStatus(&b)

	return renderPage("YOUR MASSAGE EXPERIENCE", strings.TrimRight(b.String(), "\n"), "c: copy id │ r: refresh │ q: quit")
}

func (m sessionView) viewMasseuse() string {
	var b strings.Builder

	b.WriteString("Session: ")
	b.WriteString(m.sessionID)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render("Connected to Session"))
	b.WriteString("\n")
	b.WriteString("Session ID: ")
	b.WriteString(m.sessionID)
	b.WriteString("\n")
	if m.session != nil {
		b.WriteString("Client: ")
		b.WriteString(valueOrDash(m.session.ClientName))
		b.WriteString("\n")
	}
	m.writeSessionDetails(&b)
	m.writeStatus(&b)

	return renderPage("MASSEUSE DASHBOARD", strings.TrimRight(b.String(), "\n"), "r: load session │ q: quit")
}

func (m sessionView) writeSessionDetails(b *strings.Builder) {
	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading session...\n")
		return
	}
	if m.session == nil || !m.session.HasPreferences() {
		return
	}

	s := m.session
	b.WriteString("\nPreference │ Value\n")
	b.WriteString("───────────┼──────────────────────────────\n")
	b.WriteString("Pressure   │ " + valueOrDash(s.Pressure) + "\n")
	b.WriteString("Speed      │ " + valueOrDash(s.Speed) + "\n")
	b.WriteString("Depth      │ " + valueOrDash(s.Depth) + "\n")
	b.WriteString("Focus      │ " + joinOrDash(s.FocusZones) + "\n")
	b.WriteString("Avoid      │ " + joinOrDash(s.IgnoreZones) + "\n")
	if s.UpdatedAt != "" {
		b.WriteString("Updated    │ " + s.UpdatedAt + "\n")
	}
}

func (m sessionView) writeStatus(b *strings.Builder) {
	if m.status == "" {
		return
	}
	b.WriteString("\nStatus: ")
	b.WriteString(m.status)
	b.WriteString("\n")
}

func (m sessionView) viewFooter() string {
	state := m.connection.String()
	switch m.connection {
	case connectionOnline:
		state = onlineStyle.Render(state)
	case connectionOffline:
		state = offlineStyle.Render(state)
	}
	return helpStyle.Render("backend: "+m.backendURL+" │ connection: ") + state
}
