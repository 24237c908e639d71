// Package board implements the minesweeper board engine: lazy mine placement
// with first-click safety, neighbor counting, flood-fill auto-reveal, flag
// toggling, chording, and the win query. It contains pure game logic with no
// external dependencies so it stays testable in isolation.
package board

import (
	"fmt"
	"math/rand"
	"time"
)

// Point is a cell coordinate on the board.
type Point struct {
	X, Y int
}

// CellState is the player-visible state of a single cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is the per-cell view exposed to callers. Adjacent is the count of
// mine-bearing neighbors (0-8) and is meaningful only when State is Revealed.
// Mine is set only on a revealed mine, the cell that ended the game; hidden
// and flagged cells never leak their content.
type Cell struct {
	State    CellState
	Adjacent int
	Mine     bool
}

// Board is a mutable minesweeper grid. Mines are placed lazily on the first
// reveal, excluding the revealed cell, so the first click is never a mine.
// The board is exclusively owned by one session; no internal locking.
type Board struct {
	width     int
	height    int
	mineCount int

	cells       []Cell // indexed y*width + x
	mines       []bool
	minesPlaced bool
	flags       int

	rng *rand.Rand
}

// neighborOffsets are the 8 king-move offsets in row-major order, which keeps
// Neighbors deterministic for tests.
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// New creates a board with all cells hidden and the mine layout unplaced.
// Invalid dimensions or a mine count that fills the grid indicate a
// misconfigured preset and panic rather than returning an error.
// A nil rng falls back to a time-seeded source.
func New(width, height, mines int, rng *rand.Rand) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", width, height))
	}
	if mines < 0 || mines >= width*height {
		panic(fmt.Sprintf("board: invalid mine count %d for %dx%d grid", mines, width, height))
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Board{
		width:     width,
		height:    height,
		mineCount: mines,
		cells:     make([]Cell, width*height),
		mines:     make([]bool, width*height),
		rng:       rng,
	}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Height returns the board height in cells.
func (b *Board) Height() int { return b.height }

// Mines returns the total mine count.
func (b *Board) Mines() int { return b.mineCount }

// FlagsCount returns the number of currently flagged cells.
func (b *Board) FlagsCount() int { return b.flags }

// MinesPlaced reports whether the lazy mine placement has happened yet.
func (b *Board) MinesPlaced() bool { return b.minesPlaced }

// InBounds reports whether (x, y) is a valid cell coordinate.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// CellAt returns the visible state of the cell at (x, y).
// Out-of-bounds coordinates return a hidden cell.
func (b *Board) CellAt(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{State: Hidden}
	}
	i := b.index(x, y)
	c := b.cells[i]
	if c.State == Revealed && b.mines[i] {
		c.Mine = true
	}
	return c
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}

// Neighbors returns the valid grid-adjacent coordinates of (x, y), diagonals
// included, in row-major offset order.
func (b *Board) Neighbors(x, y int) []Point {
	out := make([]Point, 0, 8)
	for _, d := range neighborOffsets {
		nx, ny := x+d.X, y+d.Y
		if b.InBounds(nx, ny) {
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	return out
}

// AdjacentMines returns the number of mine-bearing cells among the neighbors
// of (x, y).
func (b *Board) AdjacentMines(x, y int) int {
	count := 0
	for _, p := range b.Neighbors(x, y) {
		if b.mines[b.index(p.X, p.Y)] {
			count++
		}
	}
	return count
}

// placeMinesExcluding draws the mine layout: mineCount distinct cells chosen
// uniformly from all cells except exclude. Idempotent; guarded by minesPlaced
// so repeated reveals never re-shuffle an existing layout.
func (b *Board) placeMinesExcluding(exclude Point) {
	if b.minesPlaced {
		return
	}

	candidates := make([]int, 0, b.width*b.height-1)
	skip := b.index(exclude.X, exclude.Y)
	for i := range b.cells {
		if i != skip {
			candidates = append(candidates, i)
		}
	}

	// Uniform draw without replacement: permute, take the prefix.
	perm := b.rng.Perm(len(candidates))
	for i := 0; i < b.mineCount; i++ {
		b.mines[candidates[perm[i]]] = true
	}

	b.minesPlaced = true
}

// Reveal uncovers the cell at (x, y). The first reveal places the mine layout
// excluding this cell, so it is always safe. Out-of-bounds, already revealed,
// and flagged cells are no-ops. Returns false only when a hidden mine was
// struck; a mine hit is an expected game outcome, not an error.
func (b *Board) Reveal(x, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}
	b.placeMinesExcluding(Point{X: x, Y: y})

	i := b.index(x, y)
	if b.cells[i].State != Hidden {
		return true
	}
	if b.mines[i] {
		// Show the struck mine; the game is over either way.
		b.cells[i].State = Revealed
		return false
	}

	b.revealSafe(x, y)
	return true
}

// revealSafe uncovers a known non-mine hidden cell and flood-fills outward
// from it while the revealed count is zero. Iterative with an explicit stack
// to keep stack depth bounded on large boards.
func (b *Board) revealSafe(x, y int) {
	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := b.index(p.X, p.Y)
		if b.cells[i].State != Hidden {
			continue
		}

		n := b.AdjacentMines(p.X, p.Y)
		b.cells[i] = Cell{State: Revealed, Adjacent: n}
		if n != 0 {
			continue
		}

		// Zero-count cell: expand into hidden non-mine neighbors.
		// Flagged cells and mines are never touched by the fill.
		for _, q := range b.Neighbors(p.X, p.Y) {
			j := b.index(q.X, q.Y)
			if b.cells[j].State == Hidden && !b.mines[j] {
				stack = append(stack, q)
			}
		}
	}
}

// ToggleFlag flips the cell at (x, y) between Hidden and Flagged.
// Revealed cells and out-of-bounds coordinates are unaffected.
func (b *Board) ToggleFlag(x, y int) {
	if !b.InBounds(x, y) {
		return
	}
	i := b.index(x, y)
	switch b.cells[i].State {
	case Hidden:
		b.cells[i].State = Flagged
		b.flags++
	case Flagged:
		b.cells[i].State = Hidden
		b.flags--
	}
}

// Chord reveals all hidden neighbors of a revealed numbered cell at once,
// permitted only when the count of flagged neighbors equals the cell's
// number. Every eligible neighbor is processed before the result is
// reported, so a mis-flagged chord still reveals the rest of the batch.
// Returns false if any revealed neighbor was a mine.
func (b *Board) Chord(x, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}
	cell := b.cells[b.index(x, y)]
	if cell.State != Revealed || cell.Adjacent == 0 {
		return true
	}

	flagged := 0
	for _, p := range b.Neighbors(x, y) {
		if b.cells[b.index(p.X, p.Y)].State == Flagged {
			flagged++
		}
	}
	if flagged != cell.Adjacent {
		return true
	}

	safe := true
	for _, p := range b.Neighbors(x, y) {
		if b.cells[b.index(p.X, p.Y)].State != Hidden {
			continue
		}
		if !b.Reveal(p.X, p.Y) {
			safe = false
		}
	}
	return safe
}

// IsWin reports whether every non-mine cell is revealed. Flags on mines are
// irrelevant: the game is won by clearing all safe cells.
func (b *Board) IsWin() bool {
	for i := range b.cells {
		if !b.mines[i] && b.cells[i].State != Revealed {
			return false
		}
	}
	return true
}
