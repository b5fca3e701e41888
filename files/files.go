// Package files holds the filesystem primitives of the editor: reading a
// document into lines at startup and writing the serialized buffer back at
// save time.
package files

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// ReadLines reads the whole file at path and splits it into lines on '\n'.
// A trailing newline does not produce an empty final line, and a trailing
// '\r' on a line is stripped. The file must be valid UTF-8.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("file %s is not valid UTF-8", path)
	}

	text := string(content)
	if text == "" {
		return nil, nil
	}
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}

// Write truncates the file at path to exactly len(data) bytes and writes
// data from the start, so the file on disk matches the buffer byte for
// byte afterwards. Returns the number of bytes written.
//
// Not atomic: a crash mid-write leaves a short file. Known weakness, kept
// as is.
func Write(path string, data string) (int, error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0664)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if err := file.Truncate(int64(len(data))); err != nil {
		return 0, err
	}

	n, err := file.WriteString(data)
	if err != nil {
		return n, err
	}

	return n, nil
}
