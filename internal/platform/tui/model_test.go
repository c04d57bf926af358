package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

// fakeGame ends after overAt steps with a fixed score.
type fakeGame struct {
	overAt int
	score  int
	resets int
	state  core.GameState
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
	g.inputs = nil
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.state.Ticks++
	if g.overAt > 0 && g.state.Ticks >= g.overAt {
		g.state.GameOver = true
		g.state.Score = g.score
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func startModel(g *fakeGame, opts Options) Model {
	m := NewModel(g, opts, testRuntimeConfig())
	m.Init()
	return m
}

func TestModelSynthesizesKeyRelease(t *testing.T) {
	g := &fakeGame{}
	m := startModel(g, Options{HoldTicks: 2})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, TickMsg{})
	m = send(t, m, TickMsg{})
	send(t, m, TickMsg{})

	if len(g.inputs) != 3 {
		t.Fatalf("steps = %d, expected 3", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionTurnLeft) {
		t.Errorf("step 0 = %v, expected turn left", g.inputs[0].Actions)
	}
	if !g.inputs[1].Has(core.ActionReleaseLeft) {
		t.Errorf("step 1 = %v, expected release left", g.inputs[1].Actions)
	}
	if !g.inputs[2].Empty() {
		t.Errorf("step 2 = %v, expected no input", g.inputs[2].Actions)
	}
}

func TestModelNameEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	scores, err := highscore.NewFile(path, 5, 16)
	if err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{overAt: 1, score: 12}
	m := startModel(g, Options{Scores: scores, Player: "ann", MaxNameLength: 16})

	m = send(t, m, TickMsg{})
	if m.phase != phaseNameEntry {
		t.Fatalf("phase = %v, expected name entry", m.phase)
	}
	if m.nameInput.Value() != "ann" {
		t.Errorf("name = %q, expected the player default", m.nameInput.Value())
	}

	// Letters that are game keys elsewhere go into the name
	m = send(t, m, runeKey('q'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.phase != phaseFinished {
		t.Errorf("phase = %v, expected finished", m.phase)
	}
	if m.IsQuitting() {
		t.Error("typing q during name entry should not quit")
	}
	if m.rank != 0 {
		t.Errorf("rank = %d, expected 0", m.rank)
	}

	table, err := scores.Table()
	if err != nil {
		t.Fatal(err)
	}
	entries := table.Entries()
	if len(entries) != 1 || entries[0].Name != "annq" || entries[0].Score != 12 {
		t.Errorf("entries = %+v, expected [annq 12]", entries)
	}
}

func TestModelSkipNameEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	scores, err := highscore.NewFile(path, 5, 16)
	if err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{overAt: 1, score: 3}
	m := startModel(g, Options{Scores: scores})

	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.phase != phaseFinished {
		t.Errorf("phase = %v, expected finished", m.phase)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("skipping should not write the high-score file")
	}
}

func TestModelZeroScoreSkipsNameEntry(t *testing.T) {
	scores, err := highscore.NewFile(filepath.Join(t.TempDir(), "scores.txt"), 5, 16)
	if err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{overAt: 1}
	m := startModel(g, Options{Scores: scores})

	m = send(t, m, TickMsg{})
	if m.phase != phaseFinished {
		t.Errorf("phase = %v, expected finished", m.phase)
	}
}

func TestModelRecordsReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.replay")
	rec := replay.NewRecorder(config.DefaultAsteroidsConfig(), 0)

	g := &fakeGame{overAt: 3}
	m := startModel(g, Options{Recorder: rec, ReplayPath: path, HoldTicks: 10})

	m = send(t, m, runeKey('f'))
	for i := 0; i < 3; i++ {
		m = send(t, m, TickMsg{})
	}

	loaded, err := replay.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", loaded.Seed)
	}
	if loaded.Steps != 3 {
		t.Errorf("Steps = %d, expected 3", loaded.Steps)
	}
	if len(loaded.Frames) != 1 || loaded.Frames[0].Step != 0 {
		t.Errorf("Frames = %+v, expected fire on step 0", loaded.Frames)
	}
	if m.State().Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", m.State().Ticks)
	}
}

func TestModelStopsSteppingAfterGameOver(t *testing.T) {
	g := &fakeGame{overAt: 2}
	m := startModel(g, Options{})

	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}
	if len(g.inputs) != 2 {
		t.Errorf("steps = %d, expected 2", len(g.inputs))
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{overAt: 1}
	m := startModel(g, Options{})

	// Restart is ignored while playing
	m = send(t, m, runeKey('r'))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart should be ignored before game over")
	}

	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('r'))
	m = send(t, m, TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if m.phase != phasePlaying {
		t.Errorf("phase = %v, expected playing", m.phase)
	}
	if m.config.Seed == 7 {
		t.Error("restart should pick a new seed")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}

	// Only while paused
	m := startModel(g, Options{Embedded: true})
	m = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, TickMsg{})
	if !m.State().Paused {
		t.Fatal("game should be paused")
	}
	m = send(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}

	// Not outside a menu
	m = startModel(&fakeGame{overAt: 1}, Options{})
	m = send(t, m, TickMsg{})
	m = send(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored without a menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := startModel(&fakeGame{}, Options{})
	m = send(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := startModel(&fakeGame{}, Options{})
	if m.View() == "" {
		t.Error("view should not be empty while playing")
	}
}
