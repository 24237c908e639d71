package board

import (
	"math/rand"
	"testing"
)

// forceMines fixes the mine layout directly, bypassing the lazy random draw.
func forceMines(b *Board, mines ...Point) {
	for _, p := range mines {
		b.mines[b.index(p.X, p.Y)] = true
	}
	b.minesPlaced = true
}

func TestNewPanicsOnInvalidParameters(t *testing.T) {
	cases := []struct {
		name    string
		w, h, m int
	}{
		{"zero width", 0, 5, 1},
		{"zero height", 5, 0, 1},
		{"negative mines", 5, 5, -1},
		{"mines fill grid", 3, 3, 9},
		{"mines exceed grid", 3, 3, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d, %d, %d) should panic", tc.w, tc.h, tc.m)
				}
			}()
			New(tc.w, tc.h, tc.m, nil)
		})
	}
}

func TestFirstRevealIsNeverAMine(t *testing.T) {
	// The layout is drawn lazily excluding the first revealed cell, so the
	// first click must be safe for any seed and any target cell.
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		b := New(9, 9, 80, rng) // 80 mines in 81 cells: only one safe spot

		x := int(seed) % 9
		y := (int(seed) / 9) % 9
		if !b.Reveal(x, y) {
			t.Fatalf("seed %d: first reveal at (%d,%d) hit a mine", seed, x, y)
		}
		if !b.MinesPlaced() {
			t.Fatalf("seed %d: mines not placed after first reveal", seed)
		}
	}
}

func TestPlacementIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(8, 8, 10, rng)
	b.Reveal(3, 3)

	layout := make([]bool, len(b.mines))
	copy(layout, b.mines)

	// Further reveals must never re-shuffle the layout.
	b.Reveal(0, 0)
	b.Reveal(7, 7)
	b.Reveal(3, 3)

	for i := range layout {
		if b.mines[i] != layout[i] {
			t.Fatal("mine layout changed after placement")
		}
	}
}

func TestPlacementCountsExactMines(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New(16, 16, 40, rng)
	b.Reveal(5, 5)

	total := 0
	for _, m := range b.mines {
		if m {
			total++
		}
	}
	if total != 40 {
		t.Errorf("expected exactly 40 mines, got %d", total)
	}
}

func TestRevealedCountsMatchNeighbors(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	b := New(12, 10, 20, rng)
	b.Reveal(6, 5)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := b.CellAt(x, y)
			if c.State != Revealed {
				continue
			}
			if b.mines[b.index(x, y)] {
				t.Errorf("mine at (%d,%d) is revealed", x, y)
			}
			if want := b.AdjacentMines(x, y); c.Adjacent != want {
				t.Errorf("cell (%d,%d): Adjacent = %d, want %d", x, y, c.Adjacent, want)
			}
		}
	}
}

func TestMineFreeBoardRevealsEverything(t *testing.T) {
	// 4x3 with 0 mines: one reveal flood-fills all 12 cells.
	b := New(4, 3, 0, rand.New(rand.NewSource(1)))
	if !b.Reveal(0, 0) {
		t.Fatal("reveal on mine-free board reported unsafe")
	}

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			c := b.CellAt(x, y)
			if c.State != Revealed || c.Adjacent != 0 {
				t.Errorf("cell (%d,%d) = %+v, want Revealed(0)", x, y, c)
			}
		}
	}
	if !b.IsWin() {
		t.Error("board should be won after full flood fill")
	}
}

func TestFloodFillStopsAtNumberedBorder(t *testing.T) {
	// Mine in the corner of a 5x5 board; revealing the far corner must
	// uncover everything except the mine, with the one-ring border numbered.
	b := New(5, 5, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 0, Y: 0})

	if !b.Reveal(4, 4) {
		t.Fatal("reveal reported unsafe")
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := b.CellAt(x, y)
			if x == 0 && y == 0 {
				if c.State == Revealed {
					t.Error("flood fill revealed the mine cell")
				}
				continue
			}
			if c.State != Revealed {
				t.Errorf("cell (%d,%d) not revealed by flood fill", x, y)
			}
		}
	}
	if b.CellAt(1, 1).Adjacent != 1 {
		t.Errorf("border cell (1,1) Adjacent = %d, want 1", b.CellAt(1, 1).Adjacent)
	}
	if !b.IsWin() {
		t.Error("all safe cells revealed, expected win")
	}
}

func TestFloodFillSkipsFlaggedCells(t *testing.T) {
	b := New(4, 3, 0, rand.New(rand.NewSource(1)))
	b.ToggleFlag(2, 1)
	b.Reveal(0, 0)

	if got := b.CellAt(2, 1).State; got != Flagged {
		t.Errorf("flagged cell state after flood fill = %v, want flagged", got)
	}
}

func TestFlagRoundTrip(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))

	b.ToggleFlag(1, 1)
	if b.CellAt(1, 1).State != Flagged {
		t.Fatal("cell should be flagged after first toggle")
	}
	if b.FlagsCount() != 1 {
		t.Errorf("FlagsCount = %d, want 1", b.FlagsCount())
	}

	b.ToggleFlag(1, 1)
	if b.CellAt(1, 1).State != Hidden {
		t.Fatal("cell should be hidden after second toggle")
	}
	if b.FlagsCount() != 0 {
		t.Errorf("FlagsCount = %d, want 0", b.FlagsCount())
	}
}

func TestFlagOnRevealedCellIsNoop(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 2, Y: 2})
	b.Reveal(0, 0)

	b.ToggleFlag(0, 0)
	if b.CellAt(0, 0).State != Revealed {
		t.Error("revealed cell must not become flagged")
	}
	if b.FlagsCount() != 0 {
		t.Errorf("FlagsCount = %d, want 0", b.FlagsCount())
	}
}

func TestFlaggedCellIsImmuneToReveal(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 1, Y: 1})

	b.ToggleFlag(1, 1)
	if !b.Reveal(1, 1) {
		t.Fatal("revealing a flagged mine must be a safe no-op")
	}
	if b.CellAt(1, 1).State != Flagged {
		t.Error("flagged cell changed state on reveal")
	}
}

func TestOutOfBoundsOperationsAreNoops(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))

	if !b.Reveal(-1, 0) || !b.Reveal(0, -1) || !b.Reveal(3, 0) || !b.Reveal(0, 3) {
		t.Error("out-of-bounds reveal must return safe")
	}
	if b.MinesPlaced() {
		t.Error("out-of-bounds reveal must not place mines")
	}

	b.ToggleFlag(-1, -1)
	if b.FlagsCount() != 0 {
		t.Error("out-of-bounds flag toggled something")
	}
	if !b.Chord(99, 99) {
		t.Error("out-of-bounds chord must return safe")
	}
}

func TestRevealingAMineLoses(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 2, Y: 2})

	if b.Reveal(2, 2) {
		t.Fatal("revealing a mine must report unsafe")
	}

	// The struck mine is shown to the renderer; hidden cells never leak.
	if c := b.CellAt(2, 2); c.State != Revealed || !c.Mine {
		t.Errorf("struck cell = %+v, want revealed mine", c)
	}
	if b.CellAt(0, 0).Mine {
		t.Error("hidden cell leaked its mine flag")
	}
}

func TestChordRevealsNeighborsWhenFlagsMatch(t *testing.T) {
	// 3x3, mine at (2,2). Reveal (1,1) -> Revealed(1); flag the mine, then
	// chord (1,1) clears every remaining neighbor safely.
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 2, Y: 2})

	if !b.Reveal(1, 1) {
		t.Fatal("center reveal reported unsafe")
	}
	if c := b.CellAt(1, 1); c.State != Revealed || c.Adjacent != 1 {
		t.Fatalf("center = %+v, want Revealed(1)", c)
	}

	b.ToggleFlag(2, 2)
	if !b.Chord(1, 1) {
		t.Fatal("chord with correct flag reported unsafe")
	}
	if !b.IsWin() {
		t.Error("all safe cells should be revealed after chord")
	}
}

func TestChordWithMismatchedFlagsIsNoop(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 2, Y: 2})
	b.Reveal(1, 1)

	// No flags placed: count 0 != 1, nothing is risked.
	if !b.Chord(1, 1) {
		t.Fatal("gated chord must return safe")
	}
	for _, p := range b.Neighbors(1, 1) {
		if b.CellAt(p.X, p.Y).State != Hidden {
			t.Errorf("neighbor (%d,%d) changed during gated chord", p.X, p.Y)
		}
	}

	// Two flags: count 2 != 1, still gated.
	b.ToggleFlag(0, 0)
	b.ToggleFlag(2, 2)
	if !b.Chord(1, 1) {
		t.Fatal("over-flagged chord must return safe")
	}
	if b.CellAt(0, 1).State != Hidden {
		t.Error("over-flagged chord revealed a neighbor")
	}
}

func TestChordOnNonNumberedCellsIsNoop(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 2, Y: 2})

	if !b.Chord(0, 0) { // hidden
		t.Error("chord on hidden cell must return safe")
	}
	b.ToggleFlag(0, 0)
	if !b.Chord(0, 0) { // flagged
		t.Error("chord on flagged cell must return safe")
	}
	b.ToggleFlag(0, 0)

	b.Reveal(0, 0) // Revealed(0), flood fills
	if !b.Chord(0, 0) {
		t.Error("chord on zero cell must return safe")
	}
}

func TestChordWithWrongFlagRevealsMine(t *testing.T) {
	// 2x2, mine at (0,0). Flagging (1,0) instead and chording (1,1) reveals
	// the real mine: the classic mis-flag punishment.
	b := New(2, 2, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 0, Y: 0})

	if !b.Reveal(1, 1) {
		t.Fatal("reveal (1,1) reported unsafe")
	}
	if c := b.CellAt(1, 1); c.Adjacent != 1 {
		t.Fatalf("cell (1,1) Adjacent = %d, want 1", c.Adjacent)
	}

	b.ToggleFlag(1, 0) // wrong cell
	if b.Chord(1, 1) {
		t.Fatal("mis-flagged chord must report unsafe")
	}

	// The batch is processed to completion: the other hidden neighbor is
	// revealed even though the chord already hit a mine.
	if b.CellAt(0, 1).State != Revealed {
		t.Error("chord stopped early instead of processing all neighbors")
	}
}

func TestWinIgnoresFlagsOnMines(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 0, Y: 0})

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 0 && y == 0 {
				continue
			}
			b.Reveal(x, y)
		}
	}

	// Mine is not flagged, yet all safe cells are revealed.
	if !b.IsWin() {
		t.Error("win must not require flagging mines")
	}
}

func TestWinMonotonicity(t *testing.T) {
	b := New(3, 3, 1, rand.New(rand.NewSource(1)))
	forceMines(b, Point{X: 0, Y: 0})

	if b.IsWin() {
		t.Fatal("fresh board cannot be won")
	}

	b.Reveal(2, 2)
	won := b.IsWin()

	// No operation can un-reveal a cell, so a win can never be revoked.
	b.ToggleFlag(0, 0)
	b.ToggleFlag(0, 0)
	b.Reveal(1, 1)
	b.Chord(1, 1)
	if won && !b.IsWin() {
		t.Error("win status regressed")
	}
}

func TestNeighborsAtCornersAndEdges(t *testing.T) {
	b := New(4, 3, 0, rand.New(rand.NewSource(1)))

	cases := []struct {
		x, y, want int
	}{
		{0, 0, 3}, // corner
		{3, 2, 3}, // opposite corner
		{1, 0, 5}, // top edge
		{0, 1, 5}, // left edge
		{1, 1, 8}, // interior
	}
	for _, tc := range cases {
		got := b.Neighbors(tc.x, tc.y)
		if len(got) != tc.want {
			t.Errorf("Neighbors(%d,%d) returned %d cells, want %d", tc.x, tc.y, len(got), tc.want)
		}
		for _, p := range got {
			if !b.InBounds(p.X, p.Y) {
				t.Errorf("Neighbors(%d,%d) produced out-of-bounds %v", tc.x, tc.y, p)
			}
		}
	}
}

func TestNeighborsOrderIsDeterministic(t *testing.T) {
	b := New(3, 3, 0, rand.New(rand.NewSource(1)))

	want := []Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	got := b.Neighbors(1, 1)
	if len(got) != len(want) {
		t.Fatalf("Neighbors(1,1) returned %d cells, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(1,1)[%d] = %v, want %v (row-major order)", i, got[i], want[i])
		}
	}
}

func TestSeededBoardsAreDeterministic(t *testing.T) {
	layout := func(seed int64) []bool {
		b := New(9, 9, 10, rand.New(rand.NewSource(seed)))
		b.Reveal(4, 4)
		out := make([]bool, len(b.mines))
		copy(out, b.mines)
		return out
	}

	l1 := layout(12345)
	l2 := layout(12345)
	for i := range l1 {
		if l1[i] != l2[i] {
			t.Fatal("same seed produced different layouts")
		}
	}
}
