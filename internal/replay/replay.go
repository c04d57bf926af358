// Package replay records the input of a game and plays it back.
//
// A game is deterministic for a given seed, configuration and input
// sequence, so a recording only stores those and re-simulates everything
// else. Recordings are stored as MessagePack.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// FormatVersion is written into every recording.
const FormatVersion = 1

var (
	// ErrUnsupportedVersion is returned when decoding a recording from a newer format.
	ErrUnsupportedVersion = errors.New("replay: unsupported recording version")
	// ErrMismatch is returned by Verify when playback diverges from the recording.
	ErrMismatch = errors.New("replay: playback does not match recording")
)

// Frame is the input of one step. Steps without input are not stored.
type Frame struct {
	Step    int           `msgpack:"s"`
	Actions []core.Action `msgpack:"a"`
}

// Recording is everything needed to re-simulate a game.
type Recording struct {
	Version    int                    `msgpack:"v"`
	Seed       int64                  `msgpack:"seed"`
	Config     config.AsteroidsConfig `msgpack:"config"`
	Steps      int                    `msgpack:"steps"`
	Frames     []Frame                `msgpack:"frames"`
	FinalScore int                    `msgpack:"score"`
	FinalTicks int                    `msgpack:"ticks"`
	RecordedAt time.Time              `msgpack:"at"`
}

// Recorder collects input frames while a game is played.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game with the given config and seed.
func NewRecorder(cfg config.AsteroidsConfig, seed int64) *Recorder {
	r := &Recorder{}
	r.Restart(cfg, seed)
	return r
}

// Restart discards recorded input and starts over.
func (r *Recorder) Restart(cfg config.AsteroidsConfig, seed int64) {
	r.rec = Recording{
		Version: FormatVersion,
		Seed:    seed,
		Config:  cfg,
	}
}

// Reseed starts over with the same configuration and a new seed.
func (r *Recorder) Reseed(seed int64) {
	r.Restart(r.rec.Config, seed)
}

// Record stores the input passed to one Step call. Call it once per step,
// including steps with no input.
func (r *Recorder) Record(in core.InputFrame) {
	if !in.Empty() {
		r.rec.Frames = append(r.rec.Frames, Frame{
			Step:    r.rec.Steps,
			Actions: in.Clone().Actions,
		})
	}
	r.rec.Steps++
}

// Steps returns the number of recorded steps.
func (r *Recorder) Steps() int {
	return r.rec.Steps
}

// Finish stamps the final state and returns the recording.
func (r *Recorder) Finish(state core.GameState) *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	rec.FinalScore = state.Score
	rec.FinalTicks = state.Ticks
	rec.RecordedAt = time.Now().UTC()
	return &rec
}

// Play re-simulates the recording on a fresh game and returns the final state.
// The optional observe callback runs after every step.
func Play(rec *Recording, observe func(step int, g *asteroids.Game)) core.GameState {
	g := asteroids.New(rec.Config)
	rc := core.DefaultConfig()
	rc.Seed = rec.Seed
	g.Reset(rc)

	next := 0
	state := g.State()
	for step := 0; step < rec.Steps; step++ {
		in := core.NewInputFrame()
		for next < len(rec.Frames) && rec.Frames[next].Step == step {
			for _, a := range rec.Frames[next].Actions {
				in.Set(a)
			}
			next++
		}

		state = g.Step(in).State
		if observe != nil {
			observe(step, g)
		}
	}
	return state
}

// Verify plays the recording and checks that it ends with the recorded score and tick count.
func Verify(rec *Recording) (core.GameState, error) {
	state := Play(rec, nil)
	if state.Score != rec.FinalScore || state.Ticks != rec.FinalTicks {
		return state, fmt.Errorf("%w: score %d (recorded %d), ticks %d (recorded %d)",
			ErrMismatch, state.Score, rec.FinalScore, state.Ticks, rec.FinalTicks)
	}
	return state, nil
}

// Encode writes the recording as MessagePack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	return nil
}

// Decode reads a MessagePack recording.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if rec.Version < 1 || rec.Version > FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, rec.Version)
	}
	if err := rec.Config.Validate(); err != nil {
		return nil, fmt.Errorf("replay: invalid config: %w", err)
	}
	return &rec, nil
}

// Save writes the recording to path, creating parent directories.
func Save(path string, rec *Recording) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("replay: create %s: %w", path, err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("replay: close %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("replay: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}
