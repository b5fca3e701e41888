package editor

import "time"

const messageTimeout = 5 * time.Second

// StatusMessage is the transient one-line notice on the message bar. It
// stays visible for five seconds after being set.
type StatusMessage struct {
	text  string
	setAt time.Time
}

func (m *StatusMessage) Set(text string) {
	m.text = text
	m.setAt = time.Now()
}

// Message returns the current text, or "" once it has expired. Reading an
// expired message clears it.
func (m *StatusMessage) Message() string {
	if m.text == "" {
		return ""
	}
	if time.Since(m.setAt) > messageTimeout {
		m.text = ""
		return ""
	}
	return m.text
}
