package sim

import "strings"

// VoiceAction is the typed command a recognized utterance maps to.
type VoiceAction string

const (
	VoiceOpenDashboard   VoiceAction = "open-dashboard"
	VoiceSwitchTheme     VoiceAction = "switch-theme"
	VoiceShowAnalytics   VoiceAction = "show-analytics"
	VoiceStartAutomation VoiceAction = "start-automation"
	VoiceUnrecognized    VoiceAction = "unrecognized"
)

// voiceRules: first match wins, same shape as the chat table.
var voiceRules = []struct {
	keyword string
	action  VoiceAction
}{
	{"dashboard", VoiceOpenDashboard},
	{"theme", VoiceSwitchTheme},
	{"analytics", VoiceShowAnalytics},
	{"automation", VoiceStartAutomation},
}

// MatchVoiceCommand maps an utterance to its action.
func MatchVoiceCommand(command string) VoiceAction {
	cmd := strings.ToLower(command)
	for _, rule := range voiceRules {
		if strings.Contains(cmd, rule.keyword) {
			return rule.action
		}
	}
	return VoiceUnrecognized
}

// VoiceHint is shown when an utterance matched nothing.
const VoiceHint = `Command not recognized. Try: "open dashboard", "switch theme", etc.`
