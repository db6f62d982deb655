package tui

import (
	"fmt"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"futuristic-aid/internal/app"
	"futuristic-aid/internal/feature"
	"futuristic-aid/internal/sim"
)

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	cfg := app.DefaultConfig()
	cfg.StorageRoot = t.TempDir()
	cfg.ExportDir = t.TempDir()
	cfg.SimMinDelayMs = 40
	cfg.SimMaxDelayMs = 40
	application, err := app.NewApplication(cfg, 1)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	t.Cleanup(application.Close)
	return New(application)
}

func notifierMessages(m *MainModel) []string {
	var out []string
	for _, n := range m.notifier.Active() {
		out = append(out, n.Message)
	}
	return out
}

func TestReportProgressAnnouncesEveryStage(t *testing.T) {
	m := newTestModel(t)
	m.panel.Open(feature.Analytics)
	gen := m.panel.Generation()

	for step := range sim.ReportProgressSteps {
		m.Update(reportProgressMsg{gen: gen, step: step})
	}

	got := notifierMessages(m)
	for _, pct := range sim.ReportProgressSteps {
		want := fmt.Sprintf("Report generation: %d%% complete", pct)
		found := false
		for _, msg := range got {
			if msg == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing %q in %v", want, got)
		}
	}
	if len(got) == 0 || got[len(got)-1] != "Analytics report generated and downloaded!" {
		t.Fatalf("success toast must come after 100%%, got %v", got)
	}

	if m.analyticsReport == nil || m.analyticsPath == "" {
		t.Fatal("report not materialized at the final stage")
	}
	if _, err := os.Stat(m.analyticsPath); err != nil {
		t.Fatalf("exported report missing: %v", err)
	}
}

func TestReportProgressStaleGenerationIgnored(t *testing.T) {
	m := newTestModel(t)
	m.panel.Open(feature.Analytics)
	gen := m.panel.Generation()
	m.panel.Close()

	for step := range sim.ReportProgressSteps {
		m.Update(reportProgressMsg{gen: gen, step: step})
	}
	if len(m.notifier.Active()) != 0 || m.analyticsReport != nil {
		t.Fatal("closed panel still received progress")
	}
}

func TestActionDelayFollowsConfig(t *testing.T) {
	m := newTestModel(t)
	if d := m.actionDelay(); d != 40*time.Millisecond {
		t.Fatalf("delay = %v, want the configured 40ms", d)
	}
}

func TestSpaceCyclesTriggerPicker(t *testing.T) {
	m := newTestModel(t)
	m.panel.Open(feature.Automation)

	before := m.triggerPick.Value()
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if after := m.triggerPick.Value(); after == before {
		t.Fatalf("space did not cycle the trigger, still %q", after)
	}
}
