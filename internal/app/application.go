package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"futuristic-aid/internal/sim"
)

// Application wires configuration, storage, state and the simulators
// together and owns the automation executor's lifetime.
type Application struct {
	Config      Config
	Logger      *zap.Logger
	Store       *PrefStore
	State       *State
	Auth        *Auth
	History     *ChatHistory
	Automations *Automations
	Engine      *sim.Engine
	Weather     *sim.WeatherService
	Events      *EventList

	cancelExec context.CancelFunc
}

// NewApplication builds the wired application and restores persisted
// state. A non-zero seed makes every simulator deterministic.
func NewApplication(cfg Config, seed int64) (*Application, error) {
	logger := NewLogger(cfg.StorageRoot)
	store := NewPrefStore(cfg.StorageRoot)

	// The persisted theme wins over the config file's.
	var theme string
	if ok, _ := store.Load(KeyTheme, &theme); !ok {
		theme = cfg.Theme
	}
	state := NewState(theme)

	engine := sim.NewEngine(seed, sim.WithDelayBounds(
		time.Duration(cfg.SimMinDelayMs)*time.Millisecond,
		time.Duration(cfg.SimMaxDelayMs)*time.Millisecond,
	))

	a := &Application{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		State:       state,
		Auth:        NewAuth(state, store, logger),
		History:     NewChatHistory(store),
		Automations: NewAutomations(store, logger),
		Engine:      engine,
		Weather:     sim.NewWeatherService(engine),
		Events:      NewEventList(store),
	}

	if err := a.Auth.Restore(); err != nil {
		return nil, err
	}
	if err := a.History.Restore(); err != nil {
		return nil, err
	}
	if err := a.Automations.Restore(); err != nil {
		return nil, err
	}
	if err := a.Events.Restore(); err != nil {
		return nil, err
	}
	return a, nil
}

// SetTheme applies and persists a theme preference.
func (a *Application) SetTheme(theme string) error {
	a.State.SetTheme(theme)
	return a.Store.Set(KeyTheme, a.State.Theme())
}

// ToggleTheme flips the theme and persists the result.
func (a *Application) ToggleTheme() (string, error) {
	theme := a.State.ToggleTheme()
	return theme, a.Store.Set(KeyTheme, theme)
}

// StartExecutor launches the automation executor; notices arrive on
// notify. Calling it twice restarts the executor.
func (a *Application) StartExecutor(notify func(string)) {
	a.StopExecutor()
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelExec = cancel
	interval := time.Duration(a.Config.AutomationInterval) * time.Second
	go a.Automations.RunExecutor(ctx, interval, notify)
}

// StopExecutor cancels a running executor, if any.
func (a *Application) StopExecutor() {
	if a.cancelExec != nil {
		a.cancelExec()
		a.cancelExec = nil
	}
}

// Close releases everything the application owns.
func (a *Application) Close() {
	a.StopExecutor()
	_ = a.Logger.Sync()
}
