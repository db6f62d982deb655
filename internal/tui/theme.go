package tui

import (
	"github.com/charmbracelet/lipgloss"

	"futuristic-aid/internal/app"
)

type Theme struct {
	Name string

	TextPrimary lipgloss.AdaptiveColor
	TextMuted   lipgloss.AdaptiveColor

	Accent  lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warn    lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	TopBar      lipgloss.Style
	TopBarTitle lipgloss.Style
	TopBarBadge lipgloss.Style
	TopBarMeta  lipgloss.Style
	Footer      lipgloss.Style

	Card        lipgloss.Style
	CardFocused lipgloss.Style
	CardTitle   lipgloss.Style
	CardTagline lipgloss.Style

	Modal      lipgloss.Style
	ModalTitle lipgloss.Style
	FieldLabel lipgloss.Style
	ResultBox  lipgloss.Style

	ChatYou lipgloss.Style
	ChatAI  lipgloss.Style

	NotifyInfo    lipgloss.Style
	NotifySuccess lipgloss.Style
	NotifyWarning lipgloss.Style
	NotifyError   lipgloss.Style
	NotifyExiting lipgloss.Style
}

// NewTheme maps the persisted theme preference onto a palette.
func NewTheme(name string) Theme {
	switch name {
	case app.ThemeDark:
		return newDarkTheme()
	default:
		return newLightTheme()
	}
}

func newLightTheme() Theme {
	t := Theme{
		Name:        app.ThemeLight,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#1d2433", Dark: "#f2f2f2"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#4a5568", Dark: "#c7c7c7"},
		Accent:      lipgloss.AdaptiveColor{Light: "#6366f1", Dark: "#8b8df2"},
		Success:     lipgloss.AdaptiveColor{Light: "#10b981", Dark: "#46d1b7"},
		Warn:        lipgloss.AdaptiveColor{Light: "#f59e0b", Dark: "#f4b27d"},
		Error:       lipgloss.AdaptiveColor{Light: "#ef4444", Dark: "#ff7a7a"},
		Border:      lipgloss.AdaptiveColor{Light: "#cbd5e0", Dark: "#3a3a3a"},
	}
	return t.buildStyles()
}

func newDarkTheme() Theme {
	t := Theme{
		Name:        app.ThemeDark,
		TextPrimary: lipgloss.AdaptiveColor{Light: "#eaeaea", Dark: "#eaeaea"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#b7b7b7", Dark: "#b7b7b7"},
		Accent:      lipgloss.AdaptiveColor{Light: "#8b5cf6", Dark: "#a78bfa"},
		Success:     lipgloss.AdaptiveColor{Light: "#059669", Dark: "#46d1b7"},
		Warn:        lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#f4b27d"},
		Error:       lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ff7a7a"},
		Border:      lipgloss.AdaptiveColor{Light: "#2a2a2a", Dark: "#2a2a2a"},
	}
	return t.buildStyles()
}

func (t Theme) buildStyles() Theme {
	t.TopBar = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.TopBarTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.TopBarBadge = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.TopBarMeta = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.Footer = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(0, 1)
	t.CardFocused = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent).Padding(0, 1)
	t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)
	t.CardTagline = lipgloss.NewStyle().Foreground(t.TextMuted)

	t.Modal = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Accent).Padding(1, 2)
	t.ModalTitle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.FieldLabel = lipgloss.NewStyle().Foreground(t.TextMuted)
	t.ResultBox = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(t.Border).Padding(0, 1)

	t.ChatYou = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	t.ChatAI = lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary)

	t.NotifyInfo = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#ffffff", Dark: "#ffffff"}).Background(lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#3b82f6"}).Padding(0, 1)
	t.NotifySuccess = t.NotifyInfo.Background(lipgloss.AdaptiveColor{Light: "#10b981", Dark: "#10b981"})
	t.NotifyWarning = t.NotifyInfo.Background(lipgloss.AdaptiveColor{Light: "#f59e0b", Dark: "#f59e0b"})
	t.NotifyError = t.NotifyInfo.Background(lipgloss.AdaptiveColor{Light: "#ef4444", Dark: "#ef4444"})
	t.NotifyExiting = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	return t
}

// NotifyStyle picks the style for a severity.
func (t Theme) NotifyStyle(sev Severity) lipgloss.Style {
	switch sev {
	case SevSuccess:
		return t.NotifySuccess
	case SevWarning:
		return t.NotifyWarning
	case SevError:
		return t.NotifyError
	default:
		return t.NotifyInfo
	}
}
