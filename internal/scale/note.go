package scale

import (
	"strings"
)

// Note is a note spelling such as "C", "F#" or "Bb". It carries no octave.
type Note string

// Letter returns the letter name (A-G) of the note.
func (n Note) Letter() byte {
	if n == "" {
		return 0
	}
	return n[0]
}

// Accidental selects between the sharp and flat spelling of a chromatic
// position. The zero value means the preference is derived from the root.
type Accidental int

const (
	Sharps Accidental = iota + 1
	Flats
)

func (a Accidental) String() string {
	switch a {
	case Sharps:
		return "sharps"
	case Flats:
		return "flats"
	default:
		return "auto"
	}
}

// Chromatic scale with enharmonic equivalents, sharp spelling first
var chromatic = [12][]Note{
	{"C"},
	{"C#", "Db"},
	{"D"},
	{"D#", "Eb"},
	{"E"},
	{"F"},
	{"F#", "Gb"},
	{"G"},
	{"G#", "Ab"},
	{"A"},
	{"A#", "Bb"},
	{"B"},
}

func chromaticPosition(n Note) (int, bool) {
	for i, group := range chromatic {
		for _, spelling := range group {
			if spelling == n {
				return i, true
			}
		}
	}
	return 0, false
}

// DetermineAccidentals picks the spelling preference conventionally used for
// a key rooted on n. F is the only natural-letter key written with flats.
func DetermineAccidentals(n Note) Accidental {
	switch {
	case strings.Contains(string(n), "b"):
		return Flats
	case strings.Contains(string(n), "#"):
		return Sharps
	case n == "F":
		return Flats
	default:
		return Sharps
	}
}

// ParseNote normalises user input into a note spelling: "bb" becomes "Bb",
// "f#" becomes "F#" and the unicode ♯ and ♭ signs are accepted.
// The result is not validated against any table.
func ParseNote(s string) Note {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r == '♯' || r == '#':
			b.WriteByte('#')
		case r == '♭' || r == 'b' || r == 'B':
			b.WriteByte('b')
		default:
			b.WriteRune(r)
		}
	}
	return Note(b.String())
}
