package scale

import (
	"fmt"
	"slices"
)

// Pattern is a sequence of semitone steps.
type Pattern []int

// Whole and half step patterns for scales and modes
var patterns = map[string]Pattern{
	"major":      {2, 2, 1, 2, 2, 2, 1},
	"dorian":     {2, 1, 2, 2, 2, 1, 2},
	"phrygian":   {1, 2, 2, 2, 1, 2, 2},
	"lydian":     {2, 2, 2, 1, 2, 2, 1},
	"mixolydian": {2, 2, 1, 2, 2, 1, 2},
	"minor":      {2, 1, 2, 2, 1, 2, 2},
	"locrian":    {1, 2, 2, 1, 2, 2, 2},
	"diminished": {2, 1, 2, 1, 2, 1, 2, 1},
	"augmented":  {2, 2, 2, 2, 2, 2},
	"dominant":   {2, 2, 1, 2, 2, 1, 1},
}

// LookupPattern returns a copy of the named pattern.
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return slices.Clone(p), nil
}

// PatternNames returns the known pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// positions walks the chromatic cycle from start and returns the index
// reached after each step.
func positions(start int, p Pattern) []int {
	out := make([]int, 0, len(p))
	i := start
	for _, step := range p {
		i = ((i+step)%12 + 12) % 12
		out = append(out, i)
	}
	return out
}
