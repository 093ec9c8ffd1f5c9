package scale

import (
	"fmt"
	"slices"
)

// Table is a fixed ordered chromatic note list. Scales generated from a
// table use its spellings verbatim.
type Table [12]Note

var (
	SharpTable = Table{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	FlatTable  = Table{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// KeyRoots are the roots that have a key signature table, sharp keys first.
var KeyRoots = []Note{"C", "G", "D", "A", "E", "B", "F#", "C#", "F", "Bb", "Eb", "Ab", "Db", "Gb"}

// Chromatic tables per major key, starting at the root. Diatonic degrees
// follow the key signature, the rest use the key's accidental.
var keyTables = map[Note]Table{
	"C":  {"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
	"G":  {"G", "G#", "A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#"},
	"D":  {"D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#"},
	"A":  {"A", "A#", "B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#"},
	"E":  {"E", "F", "F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#"},
	"B":  {"B", "C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#"},
	"F#": {"F#", "G", "G#", "A", "A#", "B", "C", "C#", "D", "D#", "E", "E#"},
	"C#": {"C#", "D", "D#", "E", "E#", "F#", "G", "G#", "A", "A#", "B", "B#"},
	"F":  {"F", "Gb", "G", "Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E"},
	"Bb": {"Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A"},
	"Eb": {"Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C", "Db", "D"},
	"Ab": {"Ab", "A", "Bb", "B", "C", "Db", "D", "Eb", "E", "F", "Gb", "G"},
	"Db": {"Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B", "C"},
	"Gb": {"Gb", "G", "Ab", "A", "Bb", "Cb", "C", "Db", "D", "Eb", "E", "F"},
}

// KeyTable returns the key signature table for root.
func KeyTable(root Note) (Table, error) {
	t, ok := keyTables[root]
	if !ok {
		return Table{}, invalidRoot(root)
	}
	return t, nil
}

func (t Table) index(n Note) (int, bool) {
	for i, spelling := range t {
		if spelling == n {
			return i, true
		}
	}
	return 0, false
}

// Generate walks the table from root, one entry per semitone.
func (t Table) Generate(root Note, p Pattern) (Scale, error) {
	start, ok := t.index(root)
	if !ok {
		return nil, invalidRoot(root)
	}
	s := make(Scale, 0, len(p)+1)
	s = append(s, root)
	for _, pos := range positions(start, p) {
		s = append(s, t[pos])
	}
	s[len(s)-1] = root
	return s, nil
}

func (t Table) Roots() []Note {
	return slices.Clone(t[:])
}

// Fixed is the Notation backed by SharpTable or FlatTable. With no
// preference the table is chosen per root with DetermineAccidentals.
type Fixed struct {
	Prefer Accidental
}

func (f Fixed) table(root Note) Table {
	prefer := f.Prefer
	if prefer == 0 {
		prefer = DetermineAccidentals(root)
	}
	if prefer == Flats {
		return FlatTable
	}
	return SharpTable
}

func (f Fixed) Generate(root Note, p Pattern) (Scale, error) {
	return f.table(root).Generate(root, p)
}

func (f Fixed) Roots() []Note {
	switch f.Prefer {
	case Sharps:
		return SharpTable.Roots()
	case Flats:
		return FlatTable.Roots()
	}
	roots := SharpTable.Roots()
	for _, n := range FlatTable {
		if !slices.Contains(roots, n) {
			roots = append(roots, n)
		}
	}
	return roots
}

// KeySignature is the Notation backed by the per-key tables.
type KeySignature struct{}

func (KeySignature) Generate(root Note, p Pattern) (Scale, error) {
	t, err := KeyTable(root)
	if err != nil {
		return nil, err
	}
	return t.Generate(root, p)
}

func (KeySignature) Roots() []Note {
	return slices.Clone(KeyRoots)
}

// NotationNames lists the names accepted by ParseNotation.
var NotationNames = []string{"chromatic", "key", "fixed"}

// ParseNotation returns the named notation. prefer is ignored by "key".
func ParseNotation(name string, prefer Accidental) (Notation, error) {
	switch name {
	case "chromatic":
		return Chromatic{Prefer: prefer}, nil
	case "key":
		return KeySignature{}, nil
	case "fixed":
		return Fixed{Prefer: prefer}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotation, name)
	}
}
