package sim

import (
	"fmt"
	"strings"
)

// ChatCategory names the rule that produced a reply.
type ChatCategory string

const (
	CategoryGreeting    ChatCategory = "greeting"
	CategoryWeather     ChatCategory = "weather"
	CategoryAnalytics   ChatCategory = "analytics"
	CategoryAutomation  ChatCategory = "automation"
	CategoryPrediction  ChatCategory = "prediction"
	CategorySecurity    ChatCategory = "security"
	CategoryTranslation ChatCategory = "translation"
	CategoryScheduling  ChatCategory = "scheduling"
	CategoryHelp        ChatCategory = "help"
	CategoryThanks      ChatCategory = "thanks"
	CategoryQuestion    ChatCategory = "question"
	CategoryProblem     ChatCategory = "problem"
	CategoryFallback    ChatCategory = "fallback"
)

// ChatReply is one assistant response.
type ChatReply struct {
	Category ChatCategory
	Text     string
}

type chatRule struct {
	category ChatCategory
	keywords []string
	response string
}

// chatRules is evaluated top to bottom; the first rule with a matching
// keyword wins, so order carries priority. "thank" deliberately sits near
// the bottom so it cannot shadow the topical rules.
var chatRules = []chatRule{
	{
		category: CategoryGreeting,
		keywords: []string{"hello", "hi", "hey"},
		response: "Hello! I'm your AI assistant. I can help you with analytics, automation, predictions, and much more. What would you like to explore today?",
	},
	{
		category: CategoryWeather,
		keywords: []string{"weather"},
		response: "I can help you with weather information! The current weather shows sunny conditions at 24°C. Would you like me to check weather for a specific location?",
	},
	{
		category: CategoryAnalytics,
		keywords: []string{"analytics", "data"},
		response: "Great! I can provide detailed analytics. Currently showing 1,247 total users with 89 active sessions. Would you like me to generate a comprehensive report?",
	},
	{
		category: CategoryAutomation,
		keywords: []string{"automation", "task"},
		response: "I can help you set up task automation! You can create time-based, event-based, or manual triggers. What kind of task would you like to automate?",
	},
	{
		category: CategoryPrediction,
		keywords: []string{"prediction", "forecast"},
		response: "Based on current trends, I predict 15% user growth next month and $125K revenue next quarter. Would you like detailed predictive analysis?",
	},
	{
		category: CategorySecurity,
		keywords: []string{"security", "threat"},
		response: "Security status: All systems secure! Firewall active, malware protection enabled. Last scan completed 2 hours ago with no threats detected.",
	},
	{
		category: CategoryTranslation,
		keywords: []string{"translate", "language"},
		response: "I can translate text between multiple languages including English, Spanish, French, German, and Hindi. What would you like me to translate?",
	},
	{
		category: CategoryScheduling,
		keywords: []string{"schedule", "meeting"},
		response: "I can help you schedule meetings and events intelligently. I'll find the best time slots based on your availability. What event would you like to schedule?",
	},
	{
		category: CategoryHelp,
		keywords: []string{"help", "what can you do"},
		response: "I can assist with: 📊 Data Analytics, 🤖 Task Automation, 🔮 Predictions, 🛡️ Security, 🌐 Translation, 📅 Scheduling, 🌤️ Weather, 👁️ OCR, and 🎤 Voice Commands. What interests you?",
	},
	{
		category: CategoryThanks,
		keywords: []string{"thank"},
		response: "You're welcome! I'm always here to help. Is there anything else you'd like to explore or any other features you'd like to try?",
	},
}

// Responses for inputs no keyword rule caught but that still read as a
// question or a complaint. Both sit between the rule table and the random
// fallback.
const (
	questionResponse = "That's a great question! I can look into it with our analytics, predictions, or automation tools. Which feature would you like me to use?"
	problemResponse  = "Sorry to hear something isn't working as expected. All systems report operational on my end. Could you tell me which feature is giving you trouble?"
)

var fallbackTemplates = []string{
	`Interesting question about %q. Based on my analysis, I'd recommend exploring our automation features for this type of task.`,
	`I understand you're asking about %q. Let me process this through our AI systems and provide you with actionable insights.`,
	`Great point! Regarding %q, our predictive models suggest this could be optimized using our smart features.`,
	`Thanks for that input on %q. I can help you implement a solution using our advanced AI capabilities.`,
	`That's a valuable question about %q. Our system can analyze this and provide data-driven recommendations.`,
}

// Respond matches input against the ordered rule table and returns the
// canned reply. Inputs no rule catches are checked for question and then
// problem phrasing; what remains gets a uniformly random fallback template
// interpolating the original text.
func (e *Engine) Respond(input string) ChatReply {
	msg := strings.ToLower(input)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return ChatReply{Category: rule.category, Text: rule.response}
			}
		}
	}
	trimmed := strings.TrimSpace(input)
	if strings.HasSuffix(trimmed, "?") {
		return ChatReply{Category: CategoryQuestion, Text: questionResponse}
	}
	if ScoreSentiment(input) == SentimentNegative {
		return ChatReply{Category: CategoryProblem, Text: problemResponse}
	}
	tpl := fallbackTemplates[e.intn(len(fallbackTemplates))]
	return ChatReply{Category: CategoryFallback, Text: fmt.Sprintf(tpl, trimmed)}
}

// Sentiment of a message, by small word lists. Anything that matches
// neither list is neutral.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

var positiveWords = []string{"thank", "great", "good", "awesome", "love", "nice", "perfect", "excellent"}
var negativeWords = []string{"bad", "problem", "issue", "error", "broken", "hate", "fail", "wrong"}

// ScoreSentiment tags text as positive, negative or neutral.
func ScoreSentiment(text string) Sentiment {
	msg := strings.ToLower(text)
	score := 0
	for _, w := range positiveWords {
		if strings.Contains(msg, w) {
			score++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(msg, w) {
			score--
		}
	}
	switch {
	case score > 0:
		return SentimentPositive
	case score < 0:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
