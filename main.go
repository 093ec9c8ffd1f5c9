package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/boyvinall/go-scaler/internal/flashcard"
	"github.com/boyvinall/go-scaler/internal/scale"
)

func validateScale(name string) error {
	_, err := scale.LookupPattern(name)
	return err
}

func validateNotation(name string) error {
	_, err := scale.ParseNotation(name, 0)
	return err
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "scaler",
		Usage: "Learn music scales with flashcards",
		UsageText: "scaler --note Bb --scale dorian\n" +
			"scaler --fifths --notation key",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "scale",
				Aliases:   []string{"s"},
				Value:     "major",
				Usage:     "scale or mode: " + strings.Join(scale.PatternNames(), ", "),
				Validator: validateScale,
			},
			&cli.StringFlag{
				Name:    "note",
				Aliases: []string{"n"},
				Usage:   "root note (e.g. C, G, Bb, F#); prints one scale and exits, not with --fifths, --fourths or --count",
			},
			&cli.StringFlag{
				Name:      "notation",
				Value:     "chromatic",
				Usage:     "note tables: " + strings.Join(scale.NotationNames, ", "),
				Validator: validateNotation,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "stop after this many flashcards, 0 for no limit",
				Validator: func(n int) error {
					if n < 0 {
						return fmt.Errorf("count must not be negative")
					}
					return nil
				},
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for random choices, 0 picks one",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log to stderr",
			},
		},
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
			{
				Flags: [][]cli.Flag{
					{&cli.BoolFlag{Name: "sharps", Aliases: []string{"sf"}, Usage: "prefer sharps"}},
					{&cli.BoolFlag{Name: "flats", Aliases: []string{"fl"}, Usage: "prefer flats"}},
					{&cli.BoolFlag{Name: "random-notation", Aliases: []string{"r"}, Usage: "pick sharps or flats at random for each scale"}},
				},
			},
			{
				Flags: [][]cli.Flag{
					{&cli.BoolFlag{Name: "fifths", Usage: "walk the circle of fifths instead of random roots"}},
					{&cli.BoolFlag{Name: "fourths", Usage: "walk the circle of fourths instead of random roots"}},
				},
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, c *cli.Command) error {
	logger := log.New(io.Discard, "scaler: ", log.LstdFlags|log.Lshortfile)
	if c.Bool("debug") {
		logger.SetOutput(c.ErrWriter)
	}

	name := c.String("scale")
	pattern, err := scale.LookupPattern(name)
	if err != nil {
		return err
	}

	rnd := newRand(c.Int64("seed"))
	pick, err := newPicker(c.String("notation"), accidentals(c), c.Bool("random-notation"), rnd)
	if err != nil {
		return err
	}

	if c.IsSet("note") {
		for _, f := range []string{"fifths", "fourths", "count"} {
			if c.IsSet(f) {
				return fmt.Errorf("--%s cannot be used with --note", f)
			}
		}
		root := scale.ParseNote(c.String("note"))
		logger.Printf("single scale: root %s, scale %s", root, name)
		card, err := flashcard.NewCard(pick.notation(root), root, name, pattern)
		if err != nil {
			return err
		}
		return card.Print(c.Writer)
	}

	logger.Printf("flashcards: %s order, %s accidentals, notation %s", order(c), accidentals(c), c.String("notation"))
	deck, err := flashcard.NewDeck(order(c), pick.roots(), rnd)
	if err != nil {
		return err
	}

	prompt, done, err := newPrompter(c)
	if err != nil {
		return err
	}
	defer done()

	s := &flashcard.Session{
		Out:      c.Writer,
		Prompt:   prompt,
		Deck:     deck,
		Name:     name,
		Pattern:  pattern,
		Notation: pick.notation,
		Limit:    c.Int("count"),
		Logger:   logger,
	}
	shown, err := s.Run(ctx)
	logger.Printf("%d flashcards shown", shown)
	return err
}

func accidentals(c *cli.Command) scale.Accidental {
	switch {
	case c.Bool("sharps"):
		return scale.Sharps
	case c.Bool("flats"):
		return scale.Flats
	}
	return 0
}

func order(c *cli.Command) flashcard.Order {
	switch {
	case c.Bool("fifths"):
		return flashcard.Fifths
	case c.Bool("fourths"):
		return flashcard.Fourths
	}
	return flashcard.Random
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// a second signal gets the default handling
	context.AfterFunc(ctx, stop)
	err := newCommand().Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Println("Error:", err)
		fmt.Println("Use --help for more information.")
		os.Exit(1)
	}
}
