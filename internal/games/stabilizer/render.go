package stabilizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/datachomps/stabilizer/internal/core"
)

const (
	cellWidth   = 2 // screen columns per board cell
	headerRows  = 1
	panelGap    = 2
	minPanelW   = 12
	scoreFormat = "%05d"
)

// layout holds screen positions derived from the board size, the label
// set and the screen size.
type layout struct {
	boardX, boardY int
	boardW, boardH int // including the frame
	panelX, panelW int
	width, height  int // area needed for header, board and panel
}

func (g *Game) layout() layout {
	w, h := g.settings.Width, g.settings.Height
	if g.session != nil {
		w, h = g.session.Settings().Width, g.session.Settings().Height
	}

	lay := layout{
		boardW: w*cellWidth + 2,
		boardH: h + 2,
		panelW: minPanelW,
	}
	for _, s := range []string{g.labels.Score, g.labels.HighScore, g.labels.Stability, g.labels.Stable, g.labels.Overflow} {
		lay.panelW = max(lay.panelW, utf8.RuneCountInString(s))
	}
	lay.width = lay.boardW + panelGap + lay.panelW
	lay.height = headerRows + lay.boardH

	lay.boardX = max(0, (g.screenW-lay.width)/2)
	lay.boardY = headerRows
	lay.panelX = lay.boardX + lay.boardW + panelGap
	return lay
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if g.tooSmall {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, g.labels.TooSmall, core.ColorRose)
		dst.DrawTextCentered(mid+1, g.labels.Resize, core.ColorSlate)
		return
	}

	lay := g.layout()
	dst.DrawTextCentered(0, g.labels.Title, core.ColorGold)

	g.renderBoard(dst, lay)
	g.renderPanel(dst, lay)

	switch g.session.Phase() {
	case PhaseIdle:
		g.renderStartPrompt(dst, lay)
	case PhaseGameOver:
		g.renderGameOver(dst, lay)
	}
}

// renderBoard draws the frame, the locked cells and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, lay layout) {
	dst.DrawBox(core.NewRect(lay.boardX, lay.boardY, lay.boardW, lay.boardH), core.ColorGrid)

	board := g.session.board
	for y := range board.Height() {
		for x := range board.Width() {
			if c := board[y][x]; c != core.ColorDefault {
				drawCell(dst, lay, x, y, c)
			} else {
				sx, sy := cellOrigin(lay, x, y)
				dst.SetColored(sx, sy, '·', core.ColorGrid)
			}
		}
	}

	if g.session.Phase() != PhaseRunning {
		return
	}
	p := g.session.piece
	for _, c := range p.Cells() {
		if board.InBounds(c.X, c.Y) {
			drawCell(dst, lay, c.X, c.Y, p.Color)
		}
	}
}

func cellOrigin(lay layout, x, y int) (int, int) {
	return lay.boardX + 1 + x*cellWidth, lay.boardY + 1 + y
}

func drawCell(dst *core.Screen, lay layout, x, y int, c core.Color) {
	sx, sy := cellOrigin(lay, x, y)
	dst.DrawTextColored(sx, sy, strings.Repeat("█", cellWidth), c)
}

// renderPanel draws score, best score and the stability status.
func (g *Game) renderPanel(dst *core.Screen, lay layout) {
	x, y := lay.panelX, lay.boardY+1
	l := g.labels

	dst.DrawTextColored(x, y, l.Score, core.ColorSlate)
	dst.DrawTextColored(x, y+1, fmt.Sprintf(scoreFormat, g.session.Score()), core.ColorGold)

	dst.DrawTextColored(x, y+3, l.HighScore, core.ColorSlate)
	dst.DrawTextColored(x, y+4, fmt.Sprintf(scoreFormat, max(g.best, g.session.Score())), core.ColorText)

	dst.DrawTextColored(x, y+6, l.Stability, core.ColorSlate)
	if g.session.Phase() == PhaseGameOver {
		dst.DrawTextColored(x, y+7, l.Overflow, core.ColorRose)
	} else {
		dst.DrawTextColored(x, y+7, l.Stable, core.ColorEmerald)
	}
}

// clearInterior blanks the inside of the board frame for an overlay.
func clearInterior(dst *core.Screen, lay layout) {
	dst.FillRect(core.NewRect(lay.boardX+1, lay.boardY+1, lay.boardW-2, lay.boardH-2), ' ', core.ColorDefault)
}

// drawBoardLines writes lines centred inside the board frame starting at y.
// Lines wider than the frame are wrapped. It returns the row after the
// last line written.
func drawBoardLines(dst *core.Screen, lay layout, y int, text string, c core.Color) int {
	inner := lay.boardW - 2
	for _, line := range wrapText(text, inner-2) {
		x := lay.boardX + 1 + (inner-utf8.RuneCountInString(line))/2
		dst.DrawTextColored(x, y, line, c)
		y++
	}
	return y
}

func (g *Game) renderStartPrompt(dst *core.Screen, lay layout) {
	clearInterior(dst, lay)
	desc := wrapText(g.labels.Desc, lay.boardW-4)
	y := lay.boardY + (lay.boardH-len(desc)-2)/2
	y = drawBoardLines(dst, lay, y, g.labels.Desc, core.ColorText)
	drawBoardLines(dst, lay, y+1, "[ENTER] "+g.labels.Init, core.ColorAmber)
}

func (g *Game) renderGameOver(dst *core.Screen, lay layout) {
	clearInterior(dst, lay)
	y := lay.boardY + lay.boardH/2 - 3
	y = drawBoardLines(dst, lay, y, g.labels.Breach, core.ColorRose)
	y = drawBoardLines(dst, lay, y+1, fmt.Sprintf("%s "+scoreFormat, g.labels.Score, g.session.Score()), core.ColorGold)
	drawBoardLines(dst, lay, y+1, "[R] "+g.labels.Restart, core.ColorAmber)
}

// wrapText breaks text into lines of at most width cells, splitting words
// that are longer than width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(ansi.Wrap(text, width, ""), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
