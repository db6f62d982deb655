package sim

import (
	"strconv"
	"strings"
	"testing"
)

func TestRespondKeywordCategories(t *testing.T) {
	e := NewEngine(1)
	cases := []struct {
		input    string
		category ChatCategory
	}{
		{"hello there", CategoryGreeting},
		{"what's the weather like", CategoryWeather},
		{"show me the data", CategoryAnalytics},
		{"automate this task", CategoryAutomation},
		{"give me a forecast", CategoryPrediction},
		{"any security threats?", CategorySecurity},
		{"translate this for me", CategoryTranslation},
		{"schedule a meeting", CategoryScheduling},
		{"what can you do", CategoryHelp},
		{"thank you", CategoryThanks},
	}
	for _, tc := range cases {
		reply := e.Respond(tc.input)
		if reply.Category != tc.category {
			t.Errorf("Respond(%q) category = %s, want %s", tc.input, reply.Category, tc.category)
		}
		if reply.Text == "" {
			t.Errorf("Respond(%q) returned empty text", tc.input)
		}
	}
}

func TestRespondRuleOrderBeatsThanks(t *testing.T) {
	e := NewEngine(1)
	// "thank" appears, but the weather rule sits above it in the table.
	reply := e.Respond("thanks, and what is the weather today?")
	if reply.Category != CategoryWeather {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryWeather)
	}
}

func TestRespondQuestionDetection(t *testing.T) {
	e := NewEngine(1)
	reply := e.Respond("how do I get started?")
	if reply.Category != CategoryQuestion {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryQuestion)
	}

	// Keyword rules beat question detection.
	reply = e.Respond("what's the weather today?")
	if reply.Category != CategoryWeather {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryWeather)
	}
}

func TestRespondProblemDetection(t *testing.T) {
	e := NewEngine(1)
	reply := e.Respond("the export is broken")
	if reply.Category != CategoryProblem {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryProblem)
	}

	// Question detection beats problem detection.
	reply = e.Respond("why is it broken?")
	if reply.Category != CategoryQuestion {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryQuestion)
	}
}

func TestRespondFallbackQuotesInput(t *testing.T) {
	e := NewEngine(7)
	input := "quantum computing"
	reply := e.Respond(input)
	if reply.Category != CategoryFallback {
		t.Fatalf("category = %s, want %s", reply.Category, CategoryFallback)
	}
	if !strings.Contains(reply.Text, strconv.Quote(input)) {
		t.Fatalf("fallback %q does not quote the input", reply.Text)
	}
}

func TestRespondDeterministicWithSeed(t *testing.T) {
	a := NewEngine(42)
	b := NewEngine(42)
	for i := 0; i < 5; i++ {
		ra := a.Respond("something unmatched")
		rb := b.Respond("something unmatched")
		if ra.Text != rb.Text {
			t.Fatalf("seeded engines diverged at step %d: %q vs %q", i, ra.Text, rb.Text)
		}
	}
}

func TestScoreSentiment(t *testing.T) {
	cases := []struct {
		text string
		want Sentiment
	}{
		{"thank you, this is great", SentimentPositive},
		{"there is a problem, it's broken", SentimentNegative},
		{"tell me about the dashboard", SentimentNeutral},
		{"great feature but it's broken", SentimentNeutral},
	}
	for _, tc := range cases {
		if got := ScoreSentiment(tc.text); got != tc.want {
			t.Errorf("ScoreSentiment(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
