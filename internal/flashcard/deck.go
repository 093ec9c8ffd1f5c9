package flashcard

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/boyvinall/go-scaler/internal/scale"
)

// Order controls how a Deck picks the next root.
type Order int

const (
	Random Order = iota
	Fifths
	Fourths
)

func (o Order) String() string {
	switch o {
	case Fifths:
		return "fifths"
	case Fourths:
		return "fourths"
	default:
		return "random"
	}
}

// CircleOfFifths lists the 14 traditional key roots by ascending fifths.
// F#/Gb and C#/Db both appear.
var CircleOfFifths = []scale.Note{"C", "G", "D", "A", "E", "B", "F#", "Gb", "C#", "Db", "Ab", "Eb", "Bb", "F"}

// CircleOfFourths is CircleOfFifths walked backwards from C.
var CircleOfFourths = func() []scale.Note {
	out := []scale.Note{CircleOfFifths[0]}
	for i := len(CircleOfFifths) - 1; i > 0; i-- {
		out = append(out, CircleOfFifths[i])
	}
	return out
}()

// Deck hands out roots forever. Fifths and Fourths cycle through their
// circle; Random draws from the given roots without repeating the previous
// root back to back.
type Deck struct {
	order Order
	roots []scale.Note
	rnd   *rand.Rand
	next  int
}

// NewDeck returns a deck. roots is only used by Random and must not be empty
// for it.
func NewDeck(order Order, roots []scale.Note, rnd *rand.Rand) (*Deck, error) {
	d := &Deck{order: order, rnd: rnd}
	switch order {
	case Fifths:
		d.roots = CircleOfFifths
	case Fourths:
		d.roots = CircleOfFourths
	case Random:
		if len(roots) == 0 {
			return nil, fmt.Errorf("no roots to draw from")
		}
		if rnd == nil {
			return nil, fmt.Errorf("random order needs a source")
		}
		d.roots = slices.Clone(roots)
		d.next = -1
	default:
		return nil, fmt.Errorf("unknown order %d", order)
	}
	return d, nil
}

// Next returns the next root.
func (d *Deck) Next() scale.Note {
	if d.order != Random {
		n := d.roots[d.next]
		d.next = (d.next + 1) % len(d.roots)
		return n
	}
	i := d.rnd.IntN(len(d.roots))
	if i == d.next && len(d.roots) > 1 {
		i = (i + 1 + d.rnd.IntN(len(d.roots)-1)) % len(d.roots)
	}
	d.next = i
	return d.roots[i]
}
