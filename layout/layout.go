// Package layout carves the terminal into the regions of the editor UI.
package layout

type Point struct {
	X, Y int
}

// Dimensions is a rectangular screen region.
type Dimensions struct {
	Origin Point
	Width  int
	Height int
}

// SplitRows splits a width x height terminal vertically into the text
// area, the status line and the message line, top to bottom. The two bars
// are one row each; the text area gets the rest.
func SplitRows(width, height int) (text, status, message Dimensions) {
	rows := height - 2
	if rows < 0 {
		rows = 0
	}
	text = Dimensions{Origin: Point{0, 0}, Width: width, Height: rows}
	status = Dimensions{Origin: Point{0, rows}, Width: width, Height: 1}
	message = Dimensions{Origin: Point{0, rows + 1}, Width: width, Height: 1}
	return text, status, message
}
