package buffer

// TabStop is the column grid tabs expand to.
const TabStop = 8

// Row is one logical line of the document. Content holds the stored
// characters (never a newline), Render the tab-expanded form shown on
// screen. Render is derived from Content and the two are kept in lockstep:
// every mutation of Content re-renders the row.
type Row struct {
	Content []rune
	Render  []rune
}

func NewRow(content string) *Row {
	row := &Row{Content: []rune(content)}
	row.render()
	return row
}

// render rebuilds Render from Content. Each tab advances the rendered
// column to the next multiple of TabStop; everything else is copied
// through one column wide.
func (r *Row) render() {
	rendered := make([]rune, 0, len(r.Content))
	index := 0
	for _, c := range r.Content {
		index++
		if c == '\t' {
			rendered = append(rendered, ' ')
			for index%TabStop != 0 {
				rendered = append(rendered, ' ')
				index++
			}
		} else {
			rendered = append(rendered, c)
		}
	}
	r.Render = rendered
}

// InsertChar inserts ch before position at, 0 <= at <= len(Content).
func (r *Row) InsertChar(at int, ch rune) {
	r.Content = append(r.Content, 0)
	copy(r.Content[at+1:], r.Content[at:])
	r.Content[at] = ch
	r.render()
}

// DeleteChar removes the character at position at, 0 <= at < len(Content).
func (r *Row) DeleteChar(at int) {
	r.Content = append(r.Content[:at], r.Content[at+1:]...)
	r.render()
}
