package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"futuristic-aid/internal/app"
	"futuristic-aid/internal/feature"
	"futuristic-aid/internal/sim"
)

const gridColumns = 5

type authMode int

const (
	authNone authMode = iota
	authLogin
	authSignup
)

// Messages. Simulator completions carry the panel generation they were
// started under; Update drops the stale ones.
type (
	notifyTickMsg struct{}
	spinMsg       struct{}

	simDoneMsg struct {
		key     feature.Key
		gen     int
		payload any
	}

	reportProgressMsg struct {
		gen  int
		step int
	}

	weatherRefreshMsg struct {
		gen      int
		location string
	}

	execNoticeMsg struct{ text string }
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// MainModel is the dashboard: a card grid, one modal feature panel at a
// time, the notification stack, and the auth overlay.
type MainModel struct {
	app   *app.Application
	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	cards    []feature.Descriptor
	selected int

	panel    Panel
	notifier *Notifier

	auth     authMode
	authForm form

	busy       bool
	statusText string
	spinnerPos int

	// chat
	chatInput textinput.Model
	chatVP    viewport.Model

	// per-panel forms and results
	automationForm form
	triggerPick    picker
	translateForm  form
	fromLang       picker
	toLang         picker
	ocrForm        form
	schedulerForm  form
	weatherForm    form
	voiceForm      form
	voiceStatus    string

	analyticsReport *sim.AnalyticsReport
	analyticsPath   string
	prediction      *sim.Prediction
	translation     *sim.Translation
	ocrResult       *sim.OCRResult
	weatherSnap     *sim.WeatherSnapshot
	scanResult      *sim.ScanResult
	securityStatus  sim.SecurityStatus

	execCh chan string
}

// New builds the dashboard model and starts the automation executor.
func New(application *app.Application) *MainModel {
	m := &MainModel{
		app:        application,
		theme:      NewTheme(application.State.Theme()),
		keys:       defaultKeyMap(),
		width:      100,
		height:     30,
		cards:      feature.All(),
		notifier:   NewNotifier(time.Now),
		statusText: "Ready",
		execCh:     make(chan string, 16),
	}

	m.chatInput = textinput.New()
	m.chatInput.Placeholder = "Type your message..."
	m.chatInput.Prompt = "> "
	m.chatInput.CharLimit = 500

	m.authForm = newForm()
	m.automationForm = newForm(fieldSpec{label: "Task Name", placeholder: "Enter task name"})
	m.triggerPick = picker{label: "Trigger:", options: []string{app.TriggerTimeBased, app.TriggerEventBased, app.TriggerManual}}
	m.translateForm = newForm(fieldSpec{label: "Text to translate", placeholder: "Enter text to translate..."})
	m.fromLang = picker{label: "From:", options: sim.Languages}
	m.toLang = picker{label: "To:", options: []string{"hi", "es", "fr", "de", "en"}}
	m.ocrForm = newForm(fieldSpec{label: "Image file", placeholder: "path/to/image.png"})
	m.schedulerForm = newForm(
		fieldSpec{label: "Event Title", placeholder: "Enter event title"},
		fieldSpec{label: "Date & Time", placeholder: "2026-01-15 14:00"},
		fieldSpec{label: "Duration (minutes)", placeholder: "60"},
	)
	m.weatherForm = newForm(fieldSpec{label: "Search Location", placeholder: "Enter city name"})
	m.voiceForm = newForm(fieldSpec{label: "Say a command", placeholder: `"open dashboard", "switch theme"...`})
	m.voiceStatus = "Voice recognition is ready"
	m.securityStatus = application.Engine.Status()

	application.StartExecutor(func(text string) {
		select {
		case m.execCh <- text:
		default:
			// Drop when the UI can't keep up; notices are best-effort.
		}
	})

	return m
}

func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenExec())
}

func (m *MainModel) listenExec() tea.Cmd {
	ch := m.execCh
	return func() tea.Msg {
		return execNoticeMsg{text: <-ch}
	}
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.chatVP = viewport.New(m.chatWidth(), m.chatHeight())
			m.ready = true
		} else {
			m.chatVP.Width = m.chatWidth()
			m.chatVP.Height = m.chatHeight()
		}
		m.refreshChatViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case notifyTickMsg:
		if m.notifier.Prune() {
			return m, m.notifyTick()
		}
		return m, nil

	case spinMsg:
		m.spinnerPos = (m.spinnerPos + 1) % len(spinnerFrames)
		if m.busy {
			return m, m.spinTick()
		}
		return m, nil

	case execNoticeMsg:
		cmd := m.push(msg.text, SevInfo)
		return m, tea.Batch(cmd, m.listenExec())

	case reportProgressMsg:
		return m.onReportProgress(msg)

	case weatherRefreshMsg:
		return m.onWeatherRefresh(msg)

	case simDoneMsg:
		return m.onSimDone(msg)
	}

	return m, m.updateActiveInput(msg)
}

func (m *MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.app.Close()
		return m, tea.Quit
	}

	if m.auth != authNone {
		return m.handleAuthKey(msg)
	}

	if m.panel.IsOpen() {
		return m.handlePanelKey(msg)
	}

	// Dashboard grid.
	switch {
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()

	case msg.String() == "q":
		m.app.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Login):
		if !m.app.State.LoggedIn() {
			m.auth = authLogin
			m.authForm = newForm(
				fieldSpec{label: "Email", placeholder: "you@example.com"},
				fieldSpec{label: "Password", placeholder: "password", secret: true},
			)
		}
		return m, nil

	case key.Matches(msg, m.keys.Signup):
		if !m.app.State.LoggedIn() {
			m.auth = authSignup
			m.authForm = newForm(
				fieldSpec{label: "Name", placeholder: "Your name"},
				fieldSpec{label: "Email", placeholder: "you@example.com"},
				fieldSpec{label: "Password", placeholder: "password", secret: true},
				fieldSpec{label: "Confirm Password", placeholder: "password again", secret: true},
			)
		}
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		if m.app.State.LoggedIn() {
			if err := m.app.Auth.Logout(); err != nil {
				return m, m.push(err.Error(), SevError)
			}
			return m, m.push("Logged out successfully!", SevInfo)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-gridColumns)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(gridColumns)

	case key.Matches(msg, m.keys.Enter):
		if !m.app.State.LoggedIn() {
			return m, m.push("Sign in to open features", SevWarning)
		}
		return m, m.openPanel(m.cards[m.selected].Key)
	}
	return m, nil
}

func (m *MainModel) moveSelection(delta int) {
	next := m.selected + delta
	if next >= 0 && next < len(m.cards) {
		m.selected = next
	}
}

// openPanel transitions the controller and runs the feature's init hook
// once for this open.
func (m *MainModel) openPanel(k feature.Key) tea.Cmd {
	m.panel.Open(k)
	switch k {
	case feature.Chat:
		// init hook: focus the chat input and show history.
		m.chatInput.Focus()
		m.refreshChatViewport()
		m.chatVP.GotoBottom()
		return textinput.Blink
	case feature.Voice:
		// init hook: capability probe, graceful no-op when absent.
		if !m.app.Config.VoiceEnabled {
			m.voiceStatus = "Voice recognition unavailable"
			return m.push("Voice recognition not supported in this browser", SevError)
		}
		m.voiceStatus = "Voice recognition is ready"
	case feature.Security:
		m.securityStatus = m.app.Engine.Status()
	case feature.Weather:
		if m.weatherSnap == nil {
			// Seed with the configured default location.
			snap, err := m.app.Weather.Lookup(m.app.Config.DefaultLocation)
			if err == nil {
				m.weatherSnap = &snap
			}
		}
	}
	return nil
}

func (m *MainModel) closePanel() {
	m.panel.Close()
	m.busy = false
	m.statusText = "Ready"
	m.chatInput.Blur()
}

func (m *MainModel) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.auth = authNone
		return m, nil
	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Down):
		m.authForm.Next()
		return m, nil
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Up):
		m.authForm.Prev()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		return m, m.submitAuth()
	}
	return m, m.authForm.Update(msg)
}

func (m *MainModel) submitAuth() tea.Cmd {
	switch m.auth {
	case authLogin:
		user, err := m.app.Auth.Login(m.authForm.Value(0), m.authForm.Value(1))
		if err != nil {
			return m.push(err.Error(), SevError)
		}
		m.auth = authNone
		m.app.Logger.Info("ui login", zap.String("user", user.Name))
		return m.push("Login successful!", SevSuccess)
	case authSignup:
		_, err := m.app.Auth.Signup(m.authForm.Value(0), m.authForm.Value(1), m.authForm.inputs[2].Value(), m.authForm.inputs[3].Value())
		if err != nil {
			return m.push(err.Error(), SevError)
		}
		m.auth = authNone
		return m.push("Account created successfully!", SevSuccess)
	}
	return nil
}

func (m *MainModel) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Close) {
		m.closePanel()
		return m, nil
	}

	k := m.panel.Key()
	switch {
	case key.Matches(msg, m.keys.Tab):
		m.panelForm(k).Next()
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.panelForm(k).Prev()
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		return m, m.submitPanel(k)
	}

	// Space cycles pickers on panels that have them, but only when the
	// focused input is empty so typing spaces still works.
	if key.Matches(msg, m.keys.Cycle) {
		switch k {
		case feature.Automation:
			if m.automationForm.Value(0) == "" {
				m.triggerPick.Next()
				return m, nil
			}
		case feature.Translation:
			if m.translateForm.Value(0) == "" {
				m.fromLang.Next()
				m.toLang.Next()
				return m, nil
			}
		}
	}

	return m, m.updateActiveInput(msg)
}

func (m *MainModel) panelForm(k feature.Key) *form {
	switch k {
	case feature.Automation:
		return &m.automationForm
	case feature.Translation:
		return &m.translateForm
	case feature.OCR:
		return &m.ocrForm
	case feature.Scheduler:
		return &m.schedulerForm
	case feature.Weather:
		return &m.weatherForm
	case feature.Voice:
		return &m.voiceForm
	}
	return &m.authForm
}

func (m *MainModel) updateActiveInput(msg tea.Msg) tea.Cmd {
	if m.auth != authNone {
		return m.authForm.Update(msg)
	}
	if !m.panel.IsOpen() {
		return nil
	}
	if m.panel.Key() == feature.Chat {
		var cmd tea.Cmd
		m.chatInput, cmd = m.chatInput.Update(msg)
		return cmd
	}
	return m.panelForm(m.panel.Key()).Update(msg)
}

// actionDelay draws one simulated round-trip from the engine's configured
// latency bounds, so sim_min_delay_ms/sim_max_delay_ms in the config file
// govern every panel action.
func (m *MainModel) actionDelay() time.Duration {
	return m.app.Engine.Latency()
}

// simCmd schedules compute after the given delay, stamped with the current
// panel generation.
func (m *MainModel) simCmd(k feature.Key, delay time.Duration, compute func() any) tea.Cmd {
	gen := m.panel.Generation()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return simDoneMsg{key: k, gen: gen, payload: compute()}
	})
}

func (m *MainModel) startBusy(status string) tea.Cmd {
	m.busy = true
	m.statusText = status
	m.spinnerPos = 0
	return m.spinTick()
}

func (m *MainModel) spinTick() tea.Cmd {
	d := 90 * time.Millisecond
	if m.app.Config.ReduceMotion {
		d = 250 * time.Millisecond
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return spinMsg{} })
}

func (m *MainModel) push(text string, sev Severity) tea.Cmd {
	m.notifier.Push(text, sev)
	return m.notifyTick()
}

func (m *MainModel) notifyTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return notifyTickMsg{} })
}

func (m *MainModel) toggleTheme() tea.Cmd {
	theme, err := m.app.ToggleTheme()
	if err != nil {
		return m.push(err.Error(), SevError)
	}
	m.theme = NewTheme(theme)
	return m.push("Theme: "+theme, SevInfo)
}

// submitPanel runs the open feature's action. Validation failures notify
// and incur no simulated delay.
func (m *MainModel) submitPanel(k feature.Key) tea.Cmd {
	switch k {
	case feature.Chat:
		return m.sendChat()

	case feature.Analytics:
		gen := m.panel.Generation()
		cmd := m.push("Generating comprehensive analytics report...", SevInfo)
		return tea.Batch(cmd, m.startBusy("Generating report…"), tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
			return reportProgressMsg{gen: gen, step: 0}
		}))

	case feature.Automation:
		task, err := m.app.Automations.Create(m.automationForm.Value(0), m.triggerPick.Value())
		if err != nil {
			return m.push(err.Error(), SevError)
		}
		m.automationForm.Reset()
		return m.push(fmt.Sprintf("Automation %q created and activated!", task.Name), SevSuccess)

	case feature.Prediction:
		cmd := m.push("Initializing AI prediction models...", SevInfo)
		return tea.Batch(cmd, m.startBusy("Running prediction…"), m.simCmd(k, m.actionDelay(), func() any {
			p := m.app.Engine.Predict()
			return &p
		}))

	case feature.Voice:
		return m.submitVoice()

	case feature.Security:
		cmd := m.push("Security scan initiated...", SevInfo)
		return tea.Batch(cmd, m.startBusy("Scanning…"), m.simCmd(k, sim.SecurityScanDelay, func() any {
			r := m.app.Engine.Scan()
			return &r
		}))

	case feature.Translation:
		text := m.translateForm.Value(0)
		from, to := m.fromLang.Value(), m.toLang.Value()
		if strings.TrimSpace(text) == "" {
			return m.push(sim.ErrMissingText.Error(), SevError)
		}
		cmd := m.push("Translating text...", SevInfo)
		return tea.Batch(cmd, m.startBusy("Translating…"), m.simCmd(k, m.actionDelay(), func() any {
			tr, err := sim.Translate(text, from, to)
			if err != nil {
				return err
			}
			return &tr
		}))

	case feature.OCR:
		path := m.ocrForm.Value(0)
		if path == "" {
			return m.push(sim.ErrMissingFile.Error(), SevError)
		}
		cmd := m.push("Processing image for text extraction...", SevInfo)
		return tea.Batch(cmd, m.startBusy("Extracting text…"), m.simCmd(k, m.actionDelay(), func() any {
			r, err := m.app.Engine.ExtractText(path, 0)
			if err != nil {
				return err
			}
			return &r
		}))

	case feature.Scheduler:
		return m.submitScheduler()

	case feature.Weather:
		location := m.weatherForm.Value(0)
		if location == "" {
			return m.push(sim.ErrMissingLocation.Error(), SevError)
		}
		gen := m.panel.Generation()
		cmd := m.push(fmt.Sprintf("Getting weather for %s...", location), SevInfo)
		return tea.Batch(cmd, m.startBusy("Fetching weather…"), tea.Tick(m.actionDelay(), func(time.Time) tea.Msg {
			snap, err := m.app.Weather.Lookup(location)
			if err != nil {
				return simDoneMsg{key: k, gen: gen, payload: err}
			}
			return simDoneMsg{key: k, gen: gen, payload: &snap}
		}))
	}
	return nil
}

func (m *MainModel) sendChat() tea.Cmd {
	text := strings.TrimSpace(m.chatInput.Value())
	if text == "" {
		return nil
	}
	if _, err := m.app.History.Append(text, "user"); err != nil {
		m.app.Logger.Error("append chat", zap.Error(err))
	}
	m.chatInput.Reset()
	m.refreshChatViewport()
	m.chatVP.GotoBottom()

	// The assistant replies after one simulated thinking pause.
	return m.simCmd(feature.Chat, m.actionDelay(), func() any {
		reply := m.app.Engine.Respond(text)
		return &reply
	})
}

func (m *MainModel) submitVoice() tea.Cmd {
	if !m.app.Config.VoiceEnabled {
		return m.push("Voice recognition not supported in this browser", SevError)
	}
	command := m.voiceForm.Value(0)
	if command == "" {
		return nil
	}
	m.voiceForm.Reset()
	m.voiceStatus = fmt.Sprintf("Command received: %q", command)

	switch sim.MatchVoiceCommand(command) {
	case sim.VoiceOpenDashboard:
		m.closePanel()
		return nil
	case sim.VoiceSwitchTheme:
		return m.toggleTheme()
	case sim.VoiceShowAnalytics:
		m.closePanel()
		return m.openPanel(feature.Analytics)
	case sim.VoiceStartAutomation:
		m.closePanel()
		return m.openPanel(feature.Automation)
	default:
		m.voiceStatus = sim.VoiceHint
		return nil
	}
}

func (m *MainModel) submitScheduler() tea.Cmd {
	title := m.schedulerForm.Value(0)
	when := m.schedulerForm.Value(1)
	durText := m.schedulerForm.Value(2)

	at, err := time.ParseInLocation("2006-01-02 15:04", when, time.Local)
	if err != nil {
		return m.push(sim.ErrMissingEventFields.Error(), SevError)
	}
	duration := sim.DefaultEventDuration
	if durText != "" {
		duration, err = strconv.Atoi(durText)
		if err != nil {
			return m.push(sim.ErrBadDuration.Error(), SevError)
		}
	}

	ev, err := sim.ScheduleEvent(title, at, duration)
	if err != nil {
		return m.push(err.Error(), SevError)
	}
	if err := m.app.Events.Add(ev); err != nil {
		return m.push(err.Error(), SevError)
	}
	m.schedulerForm.Reset()
	return m.push("Event scheduled successfully!", SevSuccess)
}

func (m *MainModel) onReportProgress(msg reportProgressMsg) (tea.Model, tea.Cmd) {
	if !m.panel.Current(feature.Analytics, msg.gen) {
		return m, nil
	}
	cmd := m.push(fmt.Sprintf("Report generation: %d%% complete", sim.ReportProgressSteps[msg.step]), SevInfo)
	if next := msg.step + 1; next < len(sim.ReportProgressSteps) {
		return m, tea.Batch(cmd, tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
			return reportProgressMsg{gen: msg.gen, step: next}
		}))
	}

	// 100% announced; materialize and export the report.
	m.busy = false
	m.statusText = "Ready"
	report := m.app.Engine.GenerateReport()
	m.analyticsReport = &report
	path, err := report.Export(m.app.Config.ExportDir)
	if err != nil {
		m.app.Logger.Error("export report", zap.Error(err))
		return m, tea.Batch(cmd, m.push(err.Error(), SevError))
	}
	m.analyticsPath = path
	return m, tea.Batch(cmd, m.push("Analytics report generated and downloaded!", SevSuccess))
}

func (m *MainModel) onWeatherRefresh(msg weatherRefreshMsg) (tea.Model, tea.Cmd) {
	if !m.panel.Current(feature.Weather, msg.gen) {
		return m, nil
	}
	snap, err := m.app.Weather.Refresh(msg.location)
	if err != nil {
		return m, nil
	}
	m.weatherSnap = &snap
	cmd := m.push(fmt.Sprintf("Weather auto-updated for %s", msg.location), SevInfo)
	return m, tea.Batch(cmd, m.weatherAutoRefresh(msg.location))
}

func (m *MainModel) weatherAutoRefresh(location string) tea.Cmd {
	gen := m.panel.Generation()
	return tea.Tick(sim.WeatherAutoUpdateInterval, func(time.Time) tea.Msg {
		return weatherRefreshMsg{gen: gen, location: location}
	})
}

func (m *MainModel) onSimDone(msg simDoneMsg) (tea.Model, tea.Cmd) {
	// Chat replies survive panel churn: the history owns them, the panel
	// just renders it. Everything else is dropped when stale.
	if msg.key == feature.Chat {
		if reply, ok := msg.payload.(*sim.ChatReply); ok {
			if _, err := m.app.History.Append(reply.Text, "assistant"); err != nil {
				m.app.Logger.Error("append chat", zap.Error(err))
			}
			if m.panel.Key() == feature.Chat {
				m.refreshChatViewport()
				m.chatVP.GotoBottom()
			}
		}
		return m, nil
	}

	if !m.panel.Current(msg.key, msg.gen) {
		return m, nil
	}
	m.busy = false
	m.statusText = "Ready"

	if err, ok := msg.payload.(error); ok {
		return m, m.push(err.Error(), SevError)
	}

	switch payload := msg.payload.(type) {
	case *sim.Prediction:
		m.prediction = payload
		return m, m.push("AI prediction analysis completed!", SevSuccess)

	case *sim.ScanResult:
		m.scanResult = payload
		m.securityStatus.LastScan = payload.CompletedAt
		return m, m.push(payload.Message, SevSuccess)

	case *sim.Translation:
		m.translation = payload
		return m, m.push("Translation completed successfully!", SevSuccess)

	case *sim.OCRResult:
		m.ocrResult = payload
		path, err := m.app.Engine.Export(*payload, m.app.Config.ExportDir)
		if err != nil {
			m.app.Logger.Error("export ocr text", zap.Error(err))
		} else {
			m.app.Logger.Info("ocr export", zap.String("path", path))
		}
		return m, m.push("Text extraction completed successfully!", SevSuccess)

	case *sim.WeatherSnapshot:
		m.weatherSnap = payload
		m.weatherForm.Reset()
		cmds := []tea.Cmd{
			m.push(fmt.Sprintf("Weather updated for %s!", payload.Location), SevSuccess),
			m.weatherAutoRefresh(payload.Location),
		}
		if alert := sim.Alert(*payload); alert != nil {
			sev := SevInfo
			if alert.Severity == "warning" {
				sev = SevWarning
			}
			cmds = append(cmds, m.push(alert.Message, sev))
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m *MainModel) chatWidth() int {
	w := m.width - 12
	if w < 40 {
		w = 40
	}
	return w
}

func (m *MainModel) chatHeight() int {
	h := m.height - 14
	if h < 6 {
		h = 6
	}
	return h
}

func (m *MainModel) refreshChatViewport() {
	if !m.ready {
		return
	}
	var b strings.Builder
	width := m.chatWidth() - 2
	for _, msg := range m.app.History.Messages() {
		label := m.theme.ChatAI.Render("AI Assistant")
		if msg.Sender == "user" {
			label = m.theme.ChatYou.Render("You")
		}
		meta := m.theme.TopBarMeta.Render(msg.Timestamp.Format("15:04"))
		body := lipgloss.NewStyle().Foreground(m.theme.TextPrimary).Width(width).Render(msg.Text)
		b.WriteString(label + " " + meta + "\n" + body + "\n\n")
	}
	m.chatVP.SetContent(strings.TrimRight(b.String(), "\n"))
}
