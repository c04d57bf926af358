package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// Game is the contract between the terminal loop and a simulation.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a short identifier used for file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. Called at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// Options wires optional persistence and recording into a game model.
// Every field may be left zero.
type Options struct {
	Store         *storage.Store  // Game history
	Scores        *highscore.File // High-score table
	Recorder      *replay.Recorder
	ReplayPath    string // Where the recorder's game is saved on game over
	Player        string // Default name for name entry and history
	Difficulty    string
	HoldTicks     int
	MaxNameLength int
	Logger        *log.Logger
	Embedded      bool // Running inside a menu; B returns to it
}

// phase of a game model.
type phase int

const (
	phasePlaying phase = iota
	phaseNameEntry
	phaseFinished
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       Game
	opts       Options
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	holds      *HoldTracker
	keyMapper  *KeyMapper
	gameState  core.GameState
	phase      phase
	nameInput  textinput.Model
	rank       int    // Place in the high-score table, -1 if none
	status     string // Last persistence problem, shown on screen
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Recorder != nil {
		opts.Recorder.Reseed(cfg.Seed)
	}

	ti := textinput.New()
	ti.Placeholder = highscore.DefaultName
	ti.Prompt = "Name: "
	if opts.MaxNameLength > 0 {
		ti.CharLimit = opts.MaxNameLength
		ti.Width = opts.MaxNameLength
	}

	return Model{
		game:       game,
		opts:       opts,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		holds:      NewHoldTracker(opts.HoldTicks),
		keyMapper:  NewKeyMapper(),
		nameInput:  ti,
		rank:       -1,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	if m.phase == phaseNameEntry {
		return m.handleNameKey(msg)
	}

	if m.opts.Embedded && msg.String() == "b" && (m.gameState.Paused || m.phase == phaseFinished) {
		m.backToMenu = true
		return m, tea.Quit
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm, core.ActionBack:
	case core.ActionRestart:
		if m.phase == phaseFinished {
			m.inputFrame.Set(core.ActionRestart)
		}
	default:
		m.holds.Press(action, &m.inputFrame)
	}

	return m, nil
}

// handleNameKey edits the name for a new high score.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.submitName()
		return m, nil
	case tea.KeyEsc:
		m.nameInput.Blur()
		m.saveHistory(m.opts.Player)
		m.phase = phaseFinished
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.phase == phaseFinished {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	var cmd tea.Cmd
	if m.phase == phasePlaying {
		m.holds.Tick(&m.inputFrame)
		if m.opts.Recorder != nil {
			m.opts.Recorder.Record(m.inputFrame)
		}

		result := m.game.Step(m.inputFrame)
		m.gameState = result.State

		if m.gameState.GameOver {
			cmd = m.finishGame()
		}
	}

	m.inputFrame.Clear()
	return m, tea.Batch(cmd, tickCmd(m.config.TickRate))
}

// restart begins a new game with a fresh seed.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	if m.opts.Recorder != nil {
		m.opts.Recorder.Reseed(m.config.Seed)
	}
	m.gameState = m.game.State()
	m.holds.Reset()
	m.inputFrame.Clear()
	m.phase = phasePlaying
	m.rank = -1
	m.status = ""
}

// finishGame saves the recording and either opens name entry or records
// the result straight away.
func (m *Model) finishGame() tea.Cmd {
	m.phase = phaseFinished

	if m.opts.Recorder != nil && m.opts.ReplayPath != "" {
		rec := m.opts.Recorder.Finish(m.gameState)
		if err := replay.Save(m.opts.ReplayPath, rec); err != nil {
			m.report("could not save replay", err)
		}
	}

	if m.opts.Scores != nil && m.gameState.Score > 0 {
		ok, err := m.opts.Scores.Qualifies(m.gameState.Score)
		if err != nil {
			m.report("could not read high scores", err)
		}
		if ok {
			m.phase = phaseNameEntry
			m.nameInput.SetValue(m.opts.Player)
			m.nameInput.CursorEnd()
			return m.nameInput.Focus()
		}
	}

	m.saveHistory(m.opts.Player)
	return nil
}

// submitName enters the typed name into the high-score table.
func (m *Model) submitName() {
	name := strings.TrimSpace(m.nameInput.Value())
	m.nameInput.Blur()
	m.phase = phaseFinished

	rank, err := m.opts.Scores.Submit(name, m.gameState.Score)
	if err != nil {
		m.report("could not save high score", err)
	}
	m.rank = rank
	m.saveHistory(name)
}

// saveHistory appends the finished game to the database.
func (m *Model) saveHistory(name string) {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if name == "" {
		name = highscore.DefaultName
	}

	_, err := m.opts.Store.SaveResult(storage.GameResult{
		Player:     name,
		Score:      m.gameState.Score,
		Ticks:      m.gameState.Ticks,
		Seed:       m.config.Seed,
		Difficulty: m.opts.Difficulty,
	})
	if err != nil {
		m.report("could not save game history", err)
	}
}

// report keeps a persistence error for display and logs it when a logger is set.
// Persistence failures never interrupt the game.
func (m *Model) report(msg string, err error) {
	m.status = msg
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, "error", err, "player", m.opts.Player)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseNameEntry {
		return m.nameEntryView()
	}

	m.game.Render(m.screen)

	bottom := m.screen.Height() - 1
	if m.phase == phaseFinished {
		if m.rank >= 0 {
			m.screen.DrawTextCentered(m.screen.Height()/2+5, fmt.Sprintf("New high score! Rank #%d", m.rank+1))
		}
		if m.opts.Embedded {
			m.screen.DrawTextCentered(bottom, "B: back to menu")
		}
	}
	if m.status != "" {
		m.screen.DrawTextColor(1, bottom, m.status, core.ColorRed)
	}

	return RenderScreen(m.screen)
}

// nameEntryView renders the high-score name prompt.
func (m Model) nameEntryView() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3)

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("NEW HIGH SCORE"),
		fmt.Sprintf("Score: %d", m.gameState.Score),
		"",
		m.nameInput.View(),
		"",
		hintStyle.Render("enter: save  esc: skip"),
	)

	return lipgloss.Place(m.screen.Width(), m.screen.Height(),
		lipgloss.Center, lipgloss.Center, boxStyle.Render(body))
}

// State returns the latest game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model and returns the
// state of the last game played.
func Run(game Game, opts Options, cfg core.RuntimeConfig) (core.GameState, error) {
	m, err := RunModel(game, opts, cfg)
	if err != nil {
		return core.GameState{}, err
	}
	return m.State(), nil
}

// RunModel runs the game and returns the final model, so callers can see
// whether the player went back to the menu.
func RunModel(game Game, opts Options, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(game, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(Model); ok {
		return m, nil
	}
	return model, nil
}
