package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Prompt collects one line of input on the message bar. template must
// contain one %s placeholder for the text typed so far. It re-enters the
// normal frame/read-key pipeline until Enter confirms a non-empty input or
// Esc aborts; an abort returns "".
func (e *Editor) Prompt(template string) (string, error) {
	var input []rune
	for {
		e.status.Set(fmt.Sprintf(template, string(input)))
		e.RefreshScreen()
		ev, err := e.ReadKey()
		if err != nil {
			return "", err
		}
		plain := ev.Modifiers() == tcell.ModNone
		shiftOnly := ev.Modifiers()&^tcell.ModShift == 0

		switch {
		case ev.Key() == tcell.KeyEnter && plain:
			if len(input) > 0 {
				e.status.Set("")
				return string(input), nil
			}
		case ev.Key() == tcell.KeyEscape:
			e.status.Set("")
			return "", nil
		case (ev.Key() == tcell.KeyBackspace || ev.Key() == tcell.KeyBackspace2 ||
			ev.Key() == tcell.KeyDelete) && plain:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.Key() == tcell.KeyTab && shiftOnly:
			input = append(input, '\t')
		case ev.Key() == tcell.KeyRune && shiftOnly:
			input = append(input, ev.Rune())
		}
	}
}
