package feature

// Key identifies one dashboard panel.
type Key string

const (
	Chat        Key = "chat"
	Analytics   Key = "analytics"
	Automation  Key = "automation"
	Prediction  Key = "prediction"
	Voice       Key = "voice"
	Security    Key = "security"
	Translation Key = "translation"
	OCR         Key = "ocr"
	Scheduler   Key = "scheduler"
	Weather     Key = "weather"
)

// Descriptor is the static display content of a feature panel.
type Descriptor struct {
	Key     Key
	Title   string
	Tagline string
	Body    []string
	Icon    string
}

var ordered = []Descriptor{
	{
		Key:     Chat,
		Title:   "AI Chat Assistant",
		Tagline: "Conversational help across every feature",
		Icon:    "💬",
		Body: []string{
			"Hello! I'm your AI assistant. How can I help you today?",
		},
	},
	{
		Key:     Analytics,
		Title:   "Data Analytics",
		Tagline: "Real-time data visualization and insights",
		Icon:    "📊",
		Body: []string{
			"Total Users: 1,247",
			"Active Sessions: 89",
			"Data Processed: 2.4 TB",
		},
	},
	{
		Key:     Automation,
		Title:   "Task Automation",
		Tagline: "Create and manage automated workflows",
		Icon:    "🤖",
		Body: []string{
			"Triggers: Time-based, Event-based, Manual",
		},
	},
	{
		Key:     Prediction,
		Title:   "Predictive Analysis",
		Tagline: "Advanced forecasting and trend analysis",
		Icon:    "🔮",
		Body: []string{
			"📈 User growth: +15% next month",
			"💰 Revenue forecast: $125K next quarter",
			"🎯 Conversion rate: 3.2% improvement expected",
		},
	},
	{
		Key:     Voice,
		Title:   "Voice Commands",
		Tagline: "Control the system using voice commands",
		Icon:    "🎤",
		Body: []string{
			`Available commands: "open dashboard", "switch theme", "show analytics", "start automation"`,
		},
	},
	{
		Key:     Security,
		Title:   "AI Security",
		Tagline: "Advanced threat detection and system protection",
		Icon:    "🛡️",
		Body: []string{
			"Firewall: Active",
			"Malware Protection: Enabled",
			"Last Scan: 2 hours ago",
		},
	},
	{
		Key:     Translation,
		Title:   "Language Translation",
		Tagline: "Real-time multi-language translation",
		Icon:    "🌐",
		Body: []string{
			"Languages: English, Spanish, French, German, Hindi",
		},
	},
	{
		Key:     OCR,
		Title:   "OCR Scanner",
		Tagline: "Extract text from images and documents",
		Icon:    "👁️",
		Body: []string{
			"Upload an image to extract its text.",
		},
	},
	{
		Key:     Scheduler,
		Title:   "Smart Scheduler",
		Tagline: "Intelligent meeting and task management",
		Icon:    "📅",
		Body: []string{
			"📅 Team Meeting - Today 2:00 PM",
		},
	},
	{
		Key:     Weather,
		Title:   "Weather Intelligence",
		Tagline: "Advanced weather forecasting",
		Icon:    "🌤️",
		Body: []string{
			"24°C Sunny — New Delhi, India",
			"Humidity: 65% | Wind: 12 km/h",
		},
	},
}

var fallback = Descriptor{
	Title: "Feature",
	Body:  []string{"Feature content not available."},
}

// Get returns the descriptor for key. Unknown keys return the fallback
// descriptor; Get never fails.
func Get(key Key) Descriptor {
	for _, d := range ordered {
		if d.Key == key {
			return d
		}
	}
	return fallback
}

// All returns the descriptors in dashboard order.
func All() []Descriptor {
	out := make([]Descriptor, len(ordered))
	copy(out, ordered)
	return out
}
