package buffer

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func expectString(a, b string, t *testing.T) {
	t.Helper()
	if a != b {
		t.Fatalf("expected '%v', got '%v'", a, b)
	}
}

func expectInt(a, b int, t *testing.T) {
	t.Helper()
	if a != b {
		t.Fatalf("expected %v, got %v", a, b)
	}
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRenderTabs(t *testing.T) {
	row := NewRow("a\tb")
	expectString("a       b", string(row.Render), t)

	row = NewRow("\t")
	expectString("        ", string(row.Render), t)

	row = NewRow("12345678\tx")
	expectString("12345678        x", string(row.Render), t)
}

func TestRenderStaysInLockstep(t *testing.T) {
	row := NewRow("ab")
	row.InsertChar(1, '\t')
	expectString("a\tb", string(row.Content), t)
	expectString("a       b", string(row.Render), t)

	row.DeleteChar(1)
	expectString("ab", string(row.Content), t)
	expectString("ab", string(row.Render), t)
}

func TestInsertChar(t *testing.T) {
	row := NewRow("fo")
	row.InsertChar(2, 'o')
	expectString("foo", string(row.Content), t)
	row.InsertChar(0, 'x')
	expectString("xfoo", string(row.Content), t)
}

func TestInsertRow(t *testing.T) {
	buf := NewBuffer(testLogger())
	buf.InsertRow(0, "foo")
	buf.InsertRow(1, "baz")
	buf.InsertRow(1, "bar")
	expectInt(3, buf.NumRows(), t)
	expectString("foo\nbar\nbaz", buf.Serialize(), t)
}

func TestJoinAdjacentRows(t *testing.T) {
	buf := NewBuffer(testLogger())
	buf.InsertRow(0, "foo")
	buf.InsertRow(1, "bar")
	buf.JoinAdjacentRows(1)
	expectInt(1, buf.NumRows(), t)
	expectString("foobar", string(buf.Row(0).Content), t)
	expectString("foobar", string(buf.Row(0).Render), t)
}

func TestSplitRow(t *testing.T) {
	buf := NewBuffer(testLogger())
	buf.InsertRow(0, "AB")
	buf.SplitRow(0, 1)
	expectInt(2, buf.NumRows(), t)
	expectString("A", string(buf.Row(0).Content), t)
	expectString("B", string(buf.Row(1).Content), t)

	buf.JoinAdjacentRows(1)
	expectString("AB", string(buf.Row(0).Content), t)
}

func TestSaveWithoutFilename(t *testing.T) {
	buf := NewBuffer(testLogger())
	buf.InsertRow(0, "foo")
	if _, err := buf.Save(); err != ErrNoFilename {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
}

func TestSaveResetsDirty(t *testing.T) {
	buf := NewBuffer(testLogger())
	buf.Filename = filepath.Join(t.TempDir(), "t.txt")
	buf.InsertRow(0, "hi")
	buf.Touch()
	expectInt(1, buf.Dirty(), t)

	n, err := buf.Save()
	if err != nil {
		t.Fatal(err)
	}
	expectInt(2, n, t)
	expectInt(0, buf.Dirty(), t)
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(src, []byte("one\ntwo\nthree\n"), 0664); err != nil {
		t.Fatal(err)
	}

	buf := NewBuffer(testLogger())
	if err := buf.LoadFile(src); err != nil {
		t.Fatal(err)
	}
	expectInt(3, buf.NumRows(), t)

	// saved file matches the source modulo the trailing newline
	buf.Filename = filepath.Join(dir, "out.txt")
	if _, err := buf.Save(); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(buf.Filename)
	if err != nil {
		t.Fatal(err)
	}
	expectString("one\ntwo\nthree", string(out), t)
}

func TestSaveTruncatesStaleBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	if err := os.WriteFile(path, []byte("a much longer previous content"), 0664); err != nil {
		t.Fatal(err)
	}

	buf := NewBuffer(testLogger())
	buf.Filename = path
	buf.InsertRow(0, "short")
	if _, err := buf.Save(); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	expectString("short", string(out), t)
}
