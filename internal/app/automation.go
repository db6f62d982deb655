package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Automation trigger categories. Triggers are labels only; nothing
// evaluates them against real events.
const (
	TriggerTimeBased  = "Time-based"
	TriggerEventBased = "Event-based"
	TriggerManual     = "Manual"
)

// Automation validation errors.
var (
	ErrMissingTaskFields = errors.New("please fill in all fields")
	ErrUnknownTrigger    = errors.New("unknown trigger")
)

// AutomationTask is one user-created workflow record. IDs derive from the
// creation timestamp in milliseconds, which keeps them unique and sortable.
type AutomationTask struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Trigger    string     `json:"trigger"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created"`
	Executions int        `json:"executions"`
	LastRun    *time.Time `json:"last_run,omitempty"`
}

// NotifyEvery is the execution cadence at which the executor announces a
// task's progress.
const NotifyEvery = 5

// Automations owns the task list and the periodic simulated executor.
type Automations struct {
	store  *PrefStore
	logger *zap.Logger
	now    func() time.Time

	tasks  []AutomationTask
	lastID int64
}

func NewAutomations(store *PrefStore, logger *zap.Logger) *Automations {
	return &Automations{store: store, logger: logger, now: time.Now}
}

// Restore loads persisted tasks.
func (m *Automations) Restore() error {
	var tasks []AutomationTask
	if _, err := m.store.Load(KeyAutomations, &tasks); err != nil {
		return err
	}
	m.tasks = tasks
	for _, t := range tasks {
		if t.ID > m.lastID {
			m.lastID = t.ID
		}
	}
	return nil
}

// Create validates the form fields and appends an Active task with zero
// executions.
func (m *Automations) Create(name, trigger string) (AutomationTask, error) {
	name = strings.TrimSpace(name)
	if name == "" || trigger == "" {
		return AutomationTask{}, ErrMissingTaskFields
	}
	switch trigger {
	case TriggerTimeBased, TriggerEventBased, TriggerManual:
	default:
		return AutomationTask{}, ErrUnknownTrigger
	}

	now := m.now()
	id := now.UnixMilli()
	// Two creations inside the same millisecond still get distinct ids.
	if id <= m.lastID {
		id = m.lastID + 1
	}
	m.lastID = id

	task := AutomationTask{
		ID:        id,
		Name:      name,
		Trigger:   trigger,
		Status:    "Active",
		CreatedAt: now,
	}
	m.tasks = append(m.tasks, task)
	if err := m.store.Set(KeyAutomations, m.tasks); err != nil {
		return task, err
	}
	m.logger.Info("automation created", zap.String("name", name), zap.String("trigger", trigger))
	return task, nil
}

// Tasks returns the task list oldest-first.
func (m *Automations) Tasks() []AutomationTask {
	return m.tasks
}

// ExecuteDue increments every active task's execution counter once and
// persists. It returns messages for tasks that hit the notification
// cadence. This is the executor's single step, exposed so the caller (and
// tests) drive the clock.
func (m *Automations) ExecuteDue() ([]string, error) {
	if len(m.tasks) == 0 {
		return nil, nil
	}
	now := m.now()
	var notices []string
	for i := range m.tasks {
		if m.tasks[i].Status != "Active" {
			continue
		}
		m.tasks[i].Executions++
		m.tasks[i].LastRun = &now
		if m.tasks[i].Executions%NotifyEvery == 0 {
			notices = append(notices, fmt.Sprintf(
				"Automation %q executed %d times", m.tasks[i].Name, m.tasks[i].Executions))
		}
	}
	if err := m.store.Set(KeyAutomations, m.tasks); err != nil {
		return notices, err
	}
	return notices, nil
}

// RunExecutor ticks ExecuteDue every interval until ctx is cancelled,
// delivering notices through notify. One executor serves all tasks; its
// lifetime is bound to the application's context so nothing leaks.
func (m *Automations) RunExecutor(ctx context.Context, interval time.Duration, notify func(string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			notices, err := m.ExecuteDue()
			if err != nil {
				m.logger.Error("automation executor", zap.Error(err))
				continue
			}
			for _, n := range notices {
				notify(n)
			}
		}
	}
}
