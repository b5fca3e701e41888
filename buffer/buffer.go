// Package buffer implements the edit buffer: an ordered sequence of rows
// tied to an optional filename, with a dirty counter tracking unsaved
// mutations.
package buffer

import (
	"errors"
	"log"
	"strings"

	"tedit/files"
)

// ErrNoFilename is returned by Save when the buffer has no filename yet.
var ErrNoFilename = errors.New("no file name specified")

type Buffer struct {
	rows     []*Row
	Filename string
	dirty    int

	log *log.Logger
}

func NewBuffer(log *log.Logger) *Buffer {
	return &Buffer{log: log}
}

// LoadFile reads the file at path into the buffer, one row per line, and
// remembers path as the buffer's filename.
func (b *Buffer) LoadFile(path string) error {
	lines, err := files.ReadLines(path)
	if err != nil {
		return err
	}
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.Filename = path
	b.log.Printf("Loaded %d rows from %s", len(b.rows), path)
	return nil
}

func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns the row at index at. Panics if at is out of range.
func (b *Buffer) Row(at int) *Row {
	return b.rows[at]
}

// InsertRow inserts a new row with the given content at position at,
// 0 <= at <= NumRows().
func (b *Buffer) InsertRow(at int, content string) {
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(content)
}

// JoinAdjacentRows removes the row at position at and appends its content
// to the row above it. Requires 1 <= at < NumRows().
func (b *Buffer) JoinAdjacentRows(at int) {
	current := b.rows[at]
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	previous := b.rows[at-1]
	previous.Content = append(previous.Content, current.Content...)
	previous.render()
}

// SplitRow splits the row at position at into two: the characters before
// column col stay, the rest become a new row directly below.
func (b *Buffer) SplitRow(at, col int) {
	row := b.rows[at]
	suffix := string(row.Content[col:])
	row.Content = row.Content[:col]
	row.render()
	b.InsertRow(at+1, suffix)
}

// Serialize joins all row contents with a single '\n', no trailing newline.
func (b *Buffer) Serialize() string {
	contents := make([]string, len(b.rows))
	for i, row := range b.rows {
		contents[i] = string(row.Content)
	}
	return strings.Join(contents, "\n")
}

// Save writes the serialized buffer to the buffer's filename, truncating
// the file to the exact serialized length, and resets the dirty counter.
// Returns the number of bytes written.
func (b *Buffer) Save() (int, error) {
	if b.Filename == "" {
		return 0, ErrNoFilename
	}
	n, err := files.Write(b.Filename, b.Serialize())
	if err != nil {
		return n, err
	}
	b.dirty = 0
	b.log.Printf("Wrote %d bytes to %s", n, b.Filename)
	return n, nil
}

// Touch records one buffer-mutating operation since the last save.
func (b *Buffer) Touch() {
	b.dirty++
}

// Dirty reports the number of mutations since the last successful save.
// Nonzero means unsaved changes.
func (b *Buffer) Dirty() int {
	return b.dirty
}
