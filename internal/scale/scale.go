// Package scale spells the notes of musical scales from a root note and a
// pattern of semitone steps.
//
// Three notations are available. Chromatic uses a 12-position table of
// enharmonic spellings and avoids repeating a letter within a scale. Fixed
// uses a plain sharp or flat table. KeySignature uses one table per major key
// so that every key of the circle of fifths is spelled as written in its
// signature.
package scale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidRootNote = errors.New("invalid root note")
	ErrUnknownPattern  = errors.New("unknown scale")
	ErrUnknownNotation = errors.New("unknown notation")
)

func invalidRoot(root Note) error {
	return fmt.Errorf("%w: %s", ErrInvalidRootNote, root)
}

// Scale is an ordered sequence of notes. The first and last notes are the
// root as spelled by the caller.
type Scale []Note

func (s Scale) String() string {
	parts := make([]string, len(s))
	for i, n := range s {
		parts[i] = string(n)
	}
	return strings.Join(parts, " ")
}

// Notation generates scales from one family of note tables.
type Notation interface {
	Generate(root Note, p Pattern) (Scale, error)
	// Roots lists every root spelling the notation accepts.
	Roots() []Note
}

// Generate spells the scale built on root from the chromatic table. When
// prefer is zero it is derived from the root with DetermineAccidentals.
//
// Each step picks the preferred spelling of the chromatic position it lands
// on; if that letter is already in the scale the other spelling is used
// instead. The last note is always reset to root.
func Generate(root Note, p Pattern, prefer Accidental) (Scale, error) {
	start, ok := chromaticPosition(root)
	if !ok {
		return nil, invalidRoot(root)
	}
	if prefer == 0 {
		prefer = DetermineAccidentals(root)
	}

	s := make(Scale, 0, len(p)+1)
	s = append(s, root)
	used := map[byte]bool{root.Letter(): true}

	for _, pos := range positions(start, p) {
		group := chromatic[pos]
		next, other := group[0], group[len(group)-1]
		if prefer == Flats {
			next, other = other, next
		}
		if used[next.Letter()] {
			next = other
		}
		used[next.Letter()] = true
		s = append(s, next)
	}

	s[len(s)-1] = root
	return s, nil
}

// Chromatic is the Notation backed by the chromatic table.
type Chromatic struct {
	Prefer Accidental
}

func (c Chromatic) Generate(root Note, p Pattern) (Scale, error) {
	return Generate(root, p, c.Prefer)
}

func (c Chromatic) Roots() []Note {
	var roots []Note
	for _, group := range chromatic {
		roots = append(roots, group...)
	}
	return roots
}
