package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"futuristic-aid/internal/feature"
	"futuristic-aid/internal/sim"
)

func (m *MainModel) View() string {
	var sections []string

	sections = append(sections, m.topBarView())

	switch {
	case m.auth != authNone:
		sections = append(sections, m.authView())
	case m.panel.IsOpen():
		sections = append(sections, m.panelView())
	default:
		sections = append(sections, m.gridView())
	}

	if notif := m.notifyView(); notif != "" {
		sections = append(sections, notif)
	}
	sections = append(sections, m.footerView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *MainModel) topBarView() string {
	title := m.theme.TopBarTitle.Render("🚀 Futuristic AID")

	badge := m.theme.TopBarMeta.Render("not signed in")
	if user := m.app.State.CurrentUser(); user != nil {
		badge = m.theme.TopBarBadge.Render("👤 " + user.Name)
	}

	status := m.theme.TopBarMeta.Render(m.statusText)
	if m.busy {
		status = m.theme.TopBarMeta.Render(spinnerFrames[m.spinnerPos] + " " + m.statusText)
	}
	themeTag := m.theme.TopBarMeta.Render("theme: " + m.theme.Name)

	left := title + "  " + badge
	right := status + "  " + themeTag
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return m.theme.TopBar.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *MainModel) gridView() string {
	cardWidth := (m.width - 2) / gridColumns
	if cardWidth < 18 {
		cardWidth = 18
	}
	inner := cardWidth - 4

	var rows []string
	for start := 0; start < len(m.cards); start += gridColumns {
		end := start + gridColumns
		if end > len(m.cards) {
			end = len(m.cards)
		}
		var cells []string
		for i := start; i < end; i++ {
			d := m.cards[i]
			style := m.theme.Card
			if i == m.selected {
				style = m.theme.CardFocused
			}
			body := m.theme.CardTitle.Render(d.Icon+" "+d.Title) + "\n" +
				m.theme.CardTagline.Width(inner).Render(d.Tagline)
			cells = append(cells, style.Width(cardWidth-2).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m *MainModel) authView() string {
	title := "Sign In"
	hint := "enter submit · esc cancel · tab next field"
	if m.auth == authSignup {
		title = "Create Account"
	}
	body := m.theme.ModalTitle.Render(title) + "\n\n" +
		m.authForm.View(m.theme) + "\n\n" +
		m.theme.Footer.Render(hint)
	return m.centerModal(body)
}

func (m *MainModel) panelView() string {
	d := feature.Get(m.panel.Key())
	var b strings.Builder
	b.WriteString(m.theme.ModalTitle.Render(d.Icon + " " + d.Title))
	b.WriteString("\n\n")

	switch m.panel.Key() {
	case feature.Chat:
		b.WriteString(m.chatView())
	case feature.Analytics:
		b.WriteString(m.analyticsView(d))
	case feature.Automation:
		b.WriteString(m.automationView())
	case feature.Prediction:
		b.WriteString(m.predictionView(d))
	case feature.Voice:
		b.WriteString(m.voiceView())
	case feature.Security:
		b.WriteString(m.securityView())
	case feature.Translation:
		b.WriteString(m.translationView())
	case feature.OCR:
		b.WriteString(m.ocrView())
	case feature.Scheduler:
		b.WriteString(m.schedulerView())
	case feature.Weather:
		b.WriteString(m.weatherView())
	}

	return m.centerModal(b.String())
}

func (m *MainModel) centerModal(body string) string {
	modal := m.theme.Modal.Width(m.modalWidth()).Render(body)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, modal)
}

func (m *MainModel) modalWidth() int {
	w := m.width - 8
	if w > 90 {
		w = 90
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m *MainModel) chatView() string {
	var b strings.Builder
	if m.ready {
		b.WriteString(m.chatVP.View())
		b.WriteString("\n\n")
	}
	b.WriteString(m.chatInput.View())
	return b.String()
}

func (m *MainModel) analyticsView(d feature.Descriptor) string {
	var b strings.Builder
	if m.analyticsReport != nil {
		b.WriteString(m.theme.ResultBox.Render(m.analyticsReport.Render()))
		if m.analyticsPath != "" {
			b.WriteString("\n")
			b.WriteString(m.theme.CardTagline.Render("Saved to " + m.analyticsPath))
		}
	} else {
		for _, line := range d.Body {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Footer.Render("enter: generate report"))
	}
	return b.String()
}

func (m *MainModel) automationView() string {
	var b strings.Builder
	b.WriteString(m.automationForm.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.triggerPick.View(m.theme))
	b.WriteString("\n\n")

	tasks := m.app.Automations.Tasks()
	if len(tasks) == 0 {
		b.WriteString(m.theme.CardTagline.Render("No automations yet."))
	} else {
		b.WriteString(m.theme.CardTitle.Render("Active Automations"))
		b.WriteString("\n")
		for _, t := range tasks {
			line := fmt.Sprintf("• %s (%s) · %s · runs: %d", t.Name, t.Trigger, t.Status, t.Executions)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("enter: create · space: cycle trigger (on empty name)"))
	return b.String()
}

func (m *MainModel) predictionView(d feature.Descriptor) string {
	var b strings.Builder
	if p := m.prediction; p != nil {
		b.WriteString(m.theme.CardTitle.Render("📈 User Growth Forecast"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Next Month: %s users · Next Quarter: %s users · Confidence: %s\n\n", p.UserGrowth.NextMonth, p.UserGrowth.NextQuarter, p.UserGrowth.Confidence)
		b.WriteString(m.theme.CardTitle.Render("💰 Revenue Prediction"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Next Month: %s · Next Quarter: %s · Confidence: %s\n\n", p.Revenue.NextMonth, p.Revenue.NextQuarter, p.Revenue.Confidence)
		b.WriteString(m.theme.CardTitle.Render("🎯 Conversion Optimization"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Predicted Improvement: %s · New Rate: %s · Confidence: %s\n\n", p.Conversion.Improvement, p.Conversion.NewRate, p.Conversion.Confidence)
		b.WriteString(m.theme.CardTitle.Render("📊 Market Trends"))
		b.WriteString("\n")
		for _, trend := range p.Trends {
			b.WriteString("• " + trend + "\n")
		}
	} else {
		for _, line := range d.Body {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(m.theme.Footer.Render("enter: run AI prediction"))
	}
	return b.String()
}

func (m *MainModel) voiceView() string {
	var b strings.Builder
	b.WriteString(m.theme.CardTagline.Render(m.voiceStatus))
	b.WriteString("\n\n")
	b.WriteString(m.voiceForm.View(m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Render(`try: "open dashboard" · "switch theme" · "show analytics" · "start automation"`))
	return b.String()
}

func (m *MainModel) securityView() string {
	var b strings.Builder
	check := func(on bool) string {
		if on {
			return "✅ Active"
		}
		return "❌ Inactive"
	}
	fmt.Fprintf(&b, "Firewall: %s\n", check(m.securityStatus.FirewallActive))
	fmt.Fprintf(&b, "Malware Protection: %s\n", check(m.securityStatus.MalwareProtection))
	fmt.Fprintf(&b, "Last Scan: %s\n\n", m.securityStatus.LastScan.Format("Jan 2 15:04"))
	if m.scanResult != nil {
		b.WriteString(m.theme.ResultBox.Render(fmt.Sprintf("%s\nThreats found: %d", m.scanResult.Message, m.scanResult.ThreatsFound)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.Footer.Render("enter: run security scan"))
	return b.String()
}

func (m *MainModel) translationView() string {
	var b strings.Builder
	b.WriteString(m.translateForm.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.fromLang.View(m.theme))
	b.WriteString("\n")
	b.WriteString(m.toLang.View(m.theme))
	b.WriteString("\n\n")
	if tr := m.translation; tr != nil {
		result := fmt.Sprintf("%s → %s\n\n%s", sim.LanguageName(tr.FromLang), sim.LanguageName(tr.ToLang), tr.Translated)
		b.WriteString(m.theme.ResultBox.Render(result))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.Footer.Render("enter: translate · space: cycle languages (on empty text)"))
	return b.String()
}

func (m *MainModel) ocrView() string {
	var b strings.Builder
	b.WriteString(m.ocrForm.View(m.theme))
	b.WriteString("\n\n")
	if r := m.ocrResult; r != nil {
		b.WriteString(m.theme.CardTagline.Render("Extracted from " + r.FileName + " at " + r.Processed))
		b.WriteString("\n")
		b.WriteString(m.theme.ResultBox.Render(r.Text))
		b.WriteString("\n\n")
	}
	b.WriteString(m.theme.Footer.Render("enter: extract text"))
	return b.String()
}

func (m *MainModel) schedulerView() string {
	var b strings.Builder
	b.WriteString(m.schedulerForm.View(m.theme))
	b.WriteString("\n\n")

	upcoming := m.app.Events.Upcoming()
	if len(upcoming) == 0 {
		b.WriteString(m.theme.CardTagline.Render("No upcoming events."))
	} else {
		b.WriteString(m.theme.CardTitle.Render("Upcoming Events"))
		b.WriteString("\n")
		for _, ev := range upcoming {
			b.WriteString("• " + ev.Describe() + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("enter: schedule event"))
	return b.String()
}

func (m *MainModel) weatherView() string {
	var b strings.Builder
	b.WriteString(m.weatherForm.View(m.theme))
	b.WriteString("\n\n")

	if snap := m.weatherSnap; snap != nil {
		head := fmt.Sprintf("%s · %d°C · %s\nHumidity %d%% · Wind %d km/h · updated %s",
			snap.Location, snap.TempC, snap.Condition, snap.HumidityPct, snap.WindKmh, snap.UpdatedAt.Format("15:04"))
		b.WriteString(m.theme.ResultBox.Render(head))
		b.WriteString("\n\n")
		b.WriteString(m.theme.CardTitle.Render("5-Day Forecast"))
		b.WriteString("\n")
		for _, day := range snap.Forecast {
			fmt.Fprintf(&b, "%-9s %3d°C  %s\n", day.Day, day.TempC, day.Condition)
		}
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Footer.Render("enter: search location"))
	return b.String()
}

func (m *MainModel) notifyView() string {
	active := m.notifier.Active()
	if len(active) == 0 {
		return ""
	}
	var lines []string
	for _, notif := range active {
		style := m.theme.NotifyStyle(notif.Severity)
		if m.notifier.Exiting(notif) {
			style = m.theme.NotifyExiting
		}
		lines = append(lines, style.Render(notif.Message))
	}
	stack := lipgloss.JoinVertical(lipgloss.Right, lines...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, stack)
}

func (m *MainModel) footerView() string {
	if m.auth != authNone {
		return m.theme.Footer.Render("enter submit · tab next field · esc cancel · ctrl+c quit")
	}
	if m.panel.IsOpen() {
		return m.theme.Footer.Render("esc close · tab next field · ctrl+c quit")
	}
	parts := []string{"←↑↓→ select", "enter open", "t theme"}
	if m.app.State.LoggedIn() {
		parts = append(parts, "o log out")
	} else {
		parts = append(parts, "i sign in", "s sign up")
	}
	parts = append(parts, "q quit")
	return m.theme.Footer.Render(strings.Join(parts, " · "))
}
