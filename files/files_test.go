package files

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(path, content, 0664); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(write(t, []byte("one\ntwo\n")))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestReadLinesNoTrailingNewline(t *testing.T) {
	lines, err := ReadLines(write(t, []byte("one\ntwo")))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || lines[1] != "two" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestReadLinesStripsCarriageReturn(t *testing.T) {
	lines, err := ReadLines(write(t, []byte("one\r\ntwo\r\n")))
	if err != nil {
		t.Fatal(err)
	}
	if lines[0] != "one" || lines[1] != "two" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestReadLinesEmptyFile(t *testing.T) {
	lines, err := ReadLines(write(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}

func TestReadLinesRejectsInvalidUTF8(t *testing.T) {
	if _, err := ReadLines(write(t, []byte{0xff, 0xfe, 'a'})); err == nil {
		t.Fatal("expected an error for invalid UTF-8")
	}
}

func TestWriteTruncates(t *testing.T) {
	path := write(t, []byte("something quite long already"))
	n, err := Write(path, "tiny")
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4 bytes written, got %d", n)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "tiny" {
		t.Fatalf("expected 'tiny', got %q", out)
	}
}

func TestWriteCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	if _, err := Write(path, "hi\n!"); err != nil {
		t.Fatal(err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hi\n!" {
		t.Fatalf("expected 'hi\\n!', got %q", out)
	}
}
