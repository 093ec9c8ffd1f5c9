// Package flashcard runs the interactive scale quiz: it draws roots from a
// Deck, prints each generated scale as a Card and waits on a Prompter before
// showing the next one.
package flashcard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/boyvinall/go-scaler/internal/scale"
)

// Session is one run of the flashcard loop.
type Session struct {
	Out     io.Writer
	Prompt  Prompter
	Deck    *Deck
	Name    string
	Pattern scale.Pattern
	// Notation is called once per card with the drawn root.
	Notation func(root scale.Note) scale.Notation
	// Limit stops the session after that many cards. Zero means no limit.
	Limit  int
	Logger *log.Logger
}

// Run shows cards until the prompter asks to quit, the limit is reached or
// ctx is done. It returns the number of cards shown.
func (s *Session) Run(ctx context.Context) (int, error) {
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	shown := 0
	for {
		if ctx.Err() != nil {
			logger.Println("session cancelled")
			return shown, nil
		}

		root := s.Deck.Next()
		notation := s.Notation(root)
		logger.Printf("card %d: root %s, notation %T", shown+1, root, notation)

		card, err := NewCard(notation, root, s.Name, s.Pattern)
		switch {
		case errors.Is(err, scale.ErrInvalidRootNote):
			if _, err := fmt.Fprintf(s.Out, "Invalid root note: %s\n", root); err != nil {
				return shown, err
			}
		case err != nil:
			return shown, err
		default:
			if err := card.Print(s.Out); err != nil {
				return shown, err
			}
			shown++
		}

		if s.Limit > 0 && shown >= s.Limit {
			return shown, nil
		}

		quit, err := s.Prompt.Wait(ctx)
		if err != nil {
			return shown, err
		}
		if quit {
			return shown, nil
		}
	}
}
