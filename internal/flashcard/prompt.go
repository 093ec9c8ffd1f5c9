package flashcard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/eiannone/keyboard"
)

// Prompter blocks between cards until the user asks for the next one or
// wants to stop. A done ctx stops the wait as a quit.
type Prompter interface {
	Wait(ctx context.Context) (quit bool, err error)
}

// LinePrompter reads one line per card. "q", "quit" and end of input stop
// the session.
type LinePrompter struct {
	in    *bufio.Scanner
	out   io.Writer
	once  sync.Once
	lines chan string
	err   error
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewScanner(r), out: w, lines: make(chan string)}
}

// read feeds lines to Wait; err is set before lines is closed.
func (p *LinePrompter) read() {
	defer close(p.lines)
	for p.in.Scan() {
		p.lines <- p.in.Text()
	}
	p.err = p.in.Err()
}

func (p *LinePrompter) Wait(ctx context.Context) (bool, error) {
	if ctx.Err() != nil {
		return true, nil
	}
	p.once.Do(func() { go p.read() })

	fmt.Fprint(p.out, "\nPress Enter for the next scale, q to quit: ")
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return true, nil
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return true, p.err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "q", "quit", "exit":
			return true, nil
		}
		return false, nil
	}
}

// KeyPrompter waits for a single keypress on the terminal. q, Esc and
// Ctrl-C stop the session.
type KeyPrompter struct {
	out    io.Writer
	events <-chan keyboard.KeyEvent
}

// OpenKeyPrompter puts the terminal in raw mode until Close is called.
func OpenKeyPrompter(w io.Writer) (*KeyPrompter, error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, fmt.Errorf("opening keyboard: %w", err)
	}
	return &KeyPrompter{out: w, events: events}, nil
}

func (p *KeyPrompter) Close() error {
	return keyboard.Close()
}

func (p *KeyPrompter) Wait(ctx context.Context) (bool, error) {
	if ctx.Err() != nil {
		return true, nil
	}
	fmt.Fprint(p.out, "\nPress any key for the next scale, q to quit")
	quit, err := waitKey(ctx, p.events)
	fmt.Fprint(p.out, "\n\n")
	return quit, err
}

func waitKey(ctx context.Context, events <-chan keyboard.KeyEvent) (bool, error) {
	select {
	case <-ctx.Done():
		return true, nil
	case ev, ok := <-events:
		if !ok {
			return true, nil
		}
		if ev.Err != nil {
			return true, fmt.Errorf("reading key: %w", ev.Err)
		}
		return isQuitKey(ev.Rune, ev.Key), nil
	}
}

func isQuitKey(char rune, key keyboard.Key) bool {
	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	}
	return char == 'q' || char == 'Q'
}
