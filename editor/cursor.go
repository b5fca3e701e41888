package editor

import (
	"tedit/buffer"
)

// Direction names a cursor movement.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	Home
	End
)

// CursorController owns the logical cursor position, the derived rendered
// column and the scroll offsets of the viewport.
//
// Y may equal buffer.NumRows(): the virtual row one past the last, where
// typing appends a new row. X is a rune index into the current row.
type CursorController struct {
	X, Y       int
	RenderX    int
	RowOffset  int
	ColOffset  int
	ScreenRows int
	ScreenCols int
}

func NewCursorController(cols, rows int) *CursorController {
	return &CursorController{ScreenCols: cols, ScreenRows: rows}
}

// renderXFor maps the logical column X to the rendered column of row,
// accounting for tab expansion.
func (c *CursorController) renderXFor(row *buffer.Row) int {
	renderX := 0
	for _, ch := range row.Content[:c.X] {
		if ch == '\t' {
			renderX += (buffer.TabStop - 1) - (renderX % buffer.TabStop) + 1
		} else {
			renderX++
		}
	}
	return renderX
}

// Scroll recomputes RenderX and moves the offsets the minimal amount that
// keeps the cursor inside the viewport.
func (c *CursorController) Scroll(buf *buffer.Buffer) {
	c.RenderX = 0
	if c.Y < buf.NumRows() {
		c.RenderX = c.renderXFor(buf.Row(c.Y))
	}
	c.RowOffset = min(c.RowOffset, c.Y)
	if c.Y >= c.RowOffset+c.ScreenRows {
		c.RowOffset = c.Y - c.ScreenRows + 1
	}
	c.ColOffset = min(c.ColOffset, c.RenderX)
	if c.RenderX >= c.ColOffset+c.ScreenCols {
		c.ColOffset = c.RenderX - c.ScreenCols + 1
	}
}

// Move applies one cursor movement and clamps X to the new row's length.
// Left at column 0 wraps to the end of the previous row, Right at the end
// of a row wraps to the start of the next.
func (c *CursorController) Move(dir Direction, buf *buffer.Buffer) {
	numRows := buf.NumRows()

	switch dir {
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		if c.Y < numRows {
			c.Y++
		}
	case Left:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = len(buf.Row(c.Y).Content)
		}
	case Right:
		if c.Y < numRows {
			rowLen := len(buf.Row(c.Y).Content)
			if c.X < rowLen {
				c.X++
			} else if c.X == rowLen {
				c.Y++
				c.X = 0
			}
		}
	case Home:
		c.X = 0
	case End:
		if c.Y < numRows {
			c.X = len(buf.Row(c.Y).Content)
		}
	}

	rowLen := 0
	if c.Y < numRows {
		rowLen = len(buf.Row(c.Y).Content)
	}
	c.X = min(c.X, rowLen)
}
