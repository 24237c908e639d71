package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PhoneMinThu/minesweeper/internal/board"
	"github.com/PhoneMinThu/minesweeper/internal/session"
)

// Cell glyphs. Each cell renders as a glyph plus a trailing space so the
// grid reads roughly square in a terminal.
const (
	glyphHidden = "■"
	glyphFlag   = "⚑"
	glyphZero   = "·"
	glyphMine   = "*"
)

var (
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	zeroStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	mineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)

	// numberStyles[n] colors a revealed count of n, classic minesweeper palette.
	numberStyles = [9]lipgloss.Style{
		zeroStyle,
		lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),   // 1 blue
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),   // 2 green
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),   // 3 red
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),   // 4 magenta
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),   // 5 bright red
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),   // 6 cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),   // 7 yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),  // 8 bright magenta
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	headerMinesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	headerTimeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	winStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("2")).
			Foreground(lipgloss.Color("2")).
			Bold(true).
			Padding(0, 2)
	loseStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("1")).
			Foreground(lipgloss.Color("1")).
			Bold(true).
			Padding(0, 2)
)

// cellView returns the styled glyph for one cell.
func cellView(c board.Cell, underCursor bool) string {
	var glyph string
	var style lipgloss.Style

	switch c.State {
	case board.Flagged:
		glyph, style = glyphFlag, flagStyle
	case board.Revealed:
		switch {
		case c.Mine:
			glyph, style = glyphMine, mineStyle
		case c.Adjacent == 0:
			glyph, style = glyphZero, zeroStyle
		default:
			glyph, style = fmt.Sprintf("%d", c.Adjacent), numberStyles[c.Adjacent]
		}
	default:
		glyph, style = glyphHidden, hiddenStyle
	}

	if underCursor {
		style = cursorStyle
	}
	return style.Render(glyph)
}

// renderBoard draws the grid with the cursor highlighted.
func renderBoard(sess *session.Session) string {
	b := sess.Board()
	cx, cy := sess.Cursor()

	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.Width(); x++ {
			sb.WriteString(cellView(b.CellAt(x, y), x == cx && y == cy))
			if x < b.Width()-1 {
				sb.WriteByte(' ')
			}
		}
	}
	return boardStyle.Render(sb.String())
}

// renderHeader draws the mine counter, difficulty, and clock.
func renderHeader(sess *session.Session) string {
	elapsed := int(sess.Elapsed().Seconds())
	clock := fmt.Sprintf("%02d:%02d", elapsed/60, elapsed%60)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		headerMinesStyle.Render(fmt.Sprintf(" Mines: %d ", sess.MinesLeft())),
		lipgloss.NewStyle().Render(fmt.Sprintf(" [%s] ", sess.Params().Difficulty)),
		headerTimeStyle.Render(fmt.Sprintf(" Time: %s ", clock)),
	)
}

// renderOverlay draws the end-of-game banner, or an empty string while playing.
func renderOverlay(status session.Status) string {
	switch status {
	case session.Win:
		return winStyle.Render("You win! Press R to restart or D to change difficulty")
	case session.Lose:
		return loseStyle.Render("Boom! You lost. Press R to restart or D to change difficulty")
	default:
		return ""
	}
}
