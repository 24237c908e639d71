// Package session wraps the board engine with the state a running game
// needs: a cursor clamped to the grid, a latched win/lose status, elapsed
// time, and restart / difficulty-change handling. The session exclusively
// owns its board and replaces it wholesale instead of resetting in place.
package session

import (
	"math/rand"
	"time"

	"github.com/PhoneMinThu/minesweeper/internal/board"
	"github.com/PhoneMinThu/minesweeper/internal/config"
)

// Status is the game status, latched once a reveal or chord reports unsafe
// or the board is fully cleared.
type Status int

const (
	Playing Status = iota
	Win
	Lose
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "unknown"
	}
}

// Params describes the board a session plays on.
type Params struct {
	Difficulty config.Difficulty
	Width      int
	Height     int
	Mines      int
}

// ParamsForDifficulty builds Params from a preset.
func ParamsForDifficulty(d config.Difficulty) Params {
	w, h, m := d.Parameters()
	return Params{Difficulty: d, Width: w, Height: h, Mines: m}
}

// Session is the single-threaded game session consumed by the TUI.
type Session struct {
	params Params
	board  *board.Board
	seed   int64
	rng    *rand.Rand

	cursorX int
	cursorY int
	status  Status

	started   bool
	startedAt time.Time
	endedAt   time.Time

	// now is swappable for deterministic timer tests.
	now func() time.Time
}

// New creates a session with a fresh board. A zero seed picks one from the
// current time; the seed itself seeds a stream of board seeds so that
// restarts produce new layouts while the whole run stays reproducible.
func New(params Params, seed int64) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		params: params,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
	}
	s.newBoard()
	return s
}

// newBoard replaces the board and resets per-game state.
func (s *Session) newBoard() {
	s.board = board.New(s.params.Width, s.params.Height, s.params.Mines,
		rand.New(rand.NewSource(s.rng.Int63())))
	s.cursorX = 0
	s.cursorY = 0
	s.status = Playing
	s.started = false
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

// Board returns the underlying board for read access during rendering.
func (s *Session) Board() *board.Board { return s.board }

// Params returns the current board parameters.
func (s *Session) Params() Params { return s.params }

// Status returns the current game status.
func (s *Session) Status() Status { return s.status }

// Cursor returns the cursor position.
func (s *Session) Cursor() (x, y int) { return s.cursorX, s.cursorY }

// MinesLeft returns the mine counter shown in the header: total mines minus
// placed flags, floored at zero.
func (s *Session) MinesLeft() int {
	left := s.board.Mines() - s.board.FlagsCount()
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed returns the time since the first reveal/chord attempt. It is zero
// before the timer starts and frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	if !s.started {
		return 0
	}
	if s.status != Playing {
		return s.endedAt.Sub(s.startedAt)
	}
	return s.now().Sub(s.startedAt)
}

// MoveCursor moves the cursor by (dx, dy), clamped to the grid.
func (s *Session) MoveCursor(dx, dy int) {
	if s.status != Playing {
		return
	}
	s.cursorX = clamp(s.cursorX+dx, 0, s.board.Width()-1)
	s.cursorY = clamp(s.cursorY+dy, 0, s.board.Height()-1)
}

// Reveal uncovers the cell under the cursor and updates the status.
func (s *Session) Reveal() {
	if s.status != Playing {
		return
	}
	s.startTimer()
	s.finish(s.board.Reveal(s.cursorX, s.cursorY))
}

// ToggleFlag flips the flag on the cell under the cursor.
func (s *Session) ToggleFlag() {
	if s.status != Playing {
		return
	}
	s.board.ToggleFlag(s.cursorX, s.cursorY)
}

// Chord chords on the cell under the cursor and updates the status.
func (s *Session) Chord() {
	if s.status != Playing {
		return
	}
	s.startTimer()
	s.finish(s.board.Chord(s.cursorX, s.cursorY))
}

// startTimer starts the elapsed clock on the first reveal/chord attempt.
func (s *Session) startTimer() {
	if !s.started {
		s.started = true
		s.startedAt = s.now()
	}
}

// finish latches the status after a reveal or chord.
func (s *Session) finish(safe bool) {
	switch {
	case !safe:
		s.status = Lose
	case s.board.IsWin():
		s.status = Win
	default:
		return
	}
	s.endedAt = s.now()
}

// Restart discards the board and starts a fresh game with the same
// parameters and a new layout.
func (s *Session) Restart() {
	s.newBoard()
}

// CycleDifficulty switches to the next preset and starts a fresh game.
func (s *Session) CycleDifficulty() {
	s.params = ParamsForDifficulty(s.params.Difficulty.Cycle())
	s.newBoard()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
