package main

import (
	"math/rand/v2"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"

	"github.com/boyvinall/go-scaler/internal/flashcard"
	"github.com/boyvinall/go-scaler/internal/scale"
)

// picker chooses the notation for each flashcard. With random set it tosses
// a coin between sharps and flats, falling back to the other one when the
// tossed notation has no such root.
type picker struct {
	base   scale.Notation
	sharps scale.Notation
	flats  scale.Notation
	rnd    *rand.Rand
}

func newPicker(name string, prefer scale.Accidental, random bool, rnd *rand.Rand) (*picker, error) {
	base, err := scale.ParseNotation(name, prefer)
	if err != nil {
		return nil, err
	}
	p := &picker{base: base}
	if !random {
		return p, nil
	}
	if p.sharps, err = scale.ParseNotation(name, scale.Sharps); err != nil {
		return nil, err
	}
	if p.flats, err = scale.ParseNotation(name, scale.Flats); err != nil {
		return nil, err
	}
	p.rnd = rnd
	return p, nil
}

func (p *picker) notation(root scale.Note) scale.Notation {
	if p.rnd == nil {
		return p.base
	}
	first, second := p.sharps, p.flats
	if p.rnd.IntN(2) == 1 {
		first, second = second, first
	}
	if slices.Contains(first.Roots(), root) {
		return first
	}
	return second
}

func (p *picker) roots() []scale.Note {
	return p.base.Roots()
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// newPrompter reads single keys from a terminal and whole lines otherwise.
func newPrompter(c *cli.Command) (flashcard.Prompter, func(), error) {
	if f, ok := c.Reader.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		kp, err := flashcard.OpenKeyPrompter(c.Writer)
		if err != nil {
			return nil, nil, err
		}
		return kp, func() { _ = kp.Close() }, nil
	}
	return flashcard.NewLinePrompter(c.Reader, c.Writer), func() {}, nil
}
