package app

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestAutomations(t *testing.T) (*Automations, *PrefStore) {
	t.Helper()
	store := NewPrefStore(t.TempDir())
	return NewAutomations(store, zap.NewNop()), store
}

func TestAutomationCreate(t *testing.T) {
	m, _ := newTestAutomations(t)

	task, err := m.Create("  Nightly backup ", TriggerTimeBased)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Name != "Nightly backup" || task.Trigger != TriggerTimeBased {
		t.Fatalf("task = %+v", task)
	}
	if task.Status != "Active" || task.Executions != 0 || task.ID == 0 {
		t.Fatalf("task = %+v", task)
	}
}

func TestAutomationCreateValidation(t *testing.T) {
	m, _ := newTestAutomations(t)

	if _, err := m.Create("  ", TriggerManual); !errors.Is(err, ErrMissingTaskFields) {
		t.Fatalf("empty name: err = %v", err)
	}
	if _, err := m.Create("X", ""); !errors.Is(err, ErrMissingTaskFields) {
		t.Fatalf("empty trigger: err = %v", err)
	}
	if _, err := m.Create("X", "Lunar"); !errors.Is(err, ErrUnknownTrigger) {
		t.Fatalf("unknown trigger: err = %v", err)
	}
}

func TestAutomationIDsStrictlyIncrease(t *testing.T) {
	m, _ := newTestAutomations(t)

	var last int64
	for i := 0; i < 5; i++ {
		task, err := m.Create("task", TriggerManual)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if task.ID <= last {
			t.Fatalf("id %d not greater than %d", task.ID, last)
		}
		last = task.ID
	}
}

func TestExecuteDueNotifiesOnCadence(t *testing.T) {
	m, _ := newTestAutomations(t)
	if _, err := m.Create("Sync", TriggerTimeBased); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for i := 1; i < NotifyEvery; i++ {
		notices, err := m.ExecuteDue()
		if err != nil {
			t.Fatalf("ExecuteDue %d: %v", i, err)
		}
		if len(notices) != 0 {
			t.Fatalf("run %d produced notices: %v", i, notices)
		}
	}

	notices, err := m.ExecuteDue()
	if err != nil {
		t.Fatalf("ExecuteDue: %v", err)
	}
	if len(notices) != 1 || !strings.Contains(notices[0], "Sync") {
		t.Fatalf("notices = %v", notices)
	}

	tasks := m.Tasks()
	if tasks[0].Executions != NotifyEvery {
		t.Fatalf("Executions = %d, want %d", tasks[0].Executions, NotifyEvery)
	}
	if tasks[0].LastRun == nil {
		t.Fatal("LastRun not set")
	}
}

func TestExecuteDueNoTasks(t *testing.T) {
	m, _ := newTestAutomations(t)
	notices, err := m.ExecuteDue()
	if err != nil {
		t.Fatalf("ExecuteDue: %v", err)
	}
	if notices != nil {
		t.Fatalf("notices = %v", notices)
	}
}

func TestAutomationsRestore(t *testing.T) {
	store := NewPrefStore(t.TempDir())

	m := NewAutomations(store, zap.NewNop())
	created, err := m.Create("Persisted", TriggerEventBased)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	restored := NewAutomations(store, zap.NewNop())
	if err := restored.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	tasks := restored.Tasks()
	if len(tasks) != 1 || tasks[0].Name != "Persisted" {
		t.Fatalf("restored = %+v", tasks)
	}

	// Restored lastID keeps new ids ahead of persisted ones.
	next, err := restored.Create("Another", TriggerManual)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if next.ID <= created.ID {
		t.Fatalf("id %d not greater than restored %d", next.ID, created.ID)
	}
}
