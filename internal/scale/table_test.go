package scale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boyvinall/go-scaler/internal/scale"
)

func TestKeySignatureBb(t *testing.T) {
	tbl, err := scale.KeyTable("Bb")
	require.NoError(t, err)
	got, err := tbl.Generate("Bb", major)
	require.NoError(t, err)
	require.Equal(t, notes("Bb", "C", "D", "Eb", "F", "G", "A", "Bb"), got)
}

// TestKeySignatureMajorLetters checks every key table spells its own major
// scale with each letter exactly once.
func TestKeySignatureMajorLetters(t *testing.T) {
	for _, root := range scale.KeyRoots {
		got, err := scale.KeySignature{}.Generate(root, major)
		require.NoError(t, err, root)
		require.Len(t, got, 8)
		assert.Equal(t, root, got[0])
		assert.Equal(t, root, got[7])
		assert.Len(t, letters(got[:7]), 7, "%s: %v", root, got)
	}
}

func TestKeySignatureSpellings(t *testing.T) {
	cases := map[scale.Note]scale.Scale{
		"F#": notes("F#", "G#", "A#", "B", "C#", "D#", "E#", "F#"),
		"C#": notes("C#", "D#", "E#", "F#", "G#", "A#", "B#", "C#"),
		"Gb": notes("Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F", "Gb"),
	}
	for root, want := range cases {
		got, err := scale.KeySignature{}.Generate(root, major)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestKeySignatureInvalidRoot(t *testing.T) {
	_, err := scale.KeyTable("G#")
	require.ErrorIs(t, err, scale.ErrInvalidRootNote)

	got, err := scale.KeySignature{}.Generate("A#", major)
	require.ErrorIs(t, err, scale.ErrInvalidRootNote)
	require.Nil(t, got)
}

func TestFixedTables(t *testing.T) {
	got, err := scale.SharpTable.Generate("G", major)
	require.NoError(t, err)
	require.Equal(t, notes("G", "A", "B", "C", "D", "E", "F#", "G"), got)

	got, err = scale.FlatTable.Generate("Bb", major)
	require.NoError(t, err)
	require.Equal(t, notes("Bb", "C", "D", "Eb", "F", "G", "A", "Bb"), got)

	// table spellings are used verbatim, even when a letter repeats
	got, err = scale.SharpTable.Generate("F", major)
	require.NoError(t, err)
	require.Equal(t, notes("F", "G", "A", "A#", "C", "D", "E", "F"), got)

	_, err = scale.SharpTable.Generate("Bb", major)
	require.ErrorIs(t, err, scale.ErrInvalidRootNote)
	_, err = scale.FlatTable.Generate("F#", major)
	require.ErrorIs(t, err, scale.ErrInvalidRootNote)
}

func TestFixedNotation(t *testing.T) {
	got, err := scale.Fixed{}.Generate("Bb", major)
	require.NoError(t, err)
	require.Equal(t, notes("Bb", "C", "D", "Eb", "F", "G", "A", "Bb"), got)

	got, err = scale.Fixed{}.Generate("F", major)
	require.NoError(t, err)
	require.Equal(t, notes("F", "G", "A", "Bb", "C", "D", "E", "F"), got)

	_, err = scale.Fixed{Prefer: scale.Sharps}.Generate("Bb", major)
	require.ErrorIs(t, err, scale.ErrInvalidRootNote)
}

// TestRootsGenerate checks every notation accepts all the roots it lists.
func TestRootsGenerate(t *testing.T) {
	notations := map[string]scale.Notation{
		"chromatic":   scale.Chromatic{},
		"chromatic-b": scale.Chromatic{Prefer: scale.Flats},
		"key":         scale.KeySignature{},
		"fixed":       scale.Fixed{},
		"fixed-#":     scale.Fixed{Prefer: scale.Sharps},
		"fixed-b":     scale.Fixed{Prefer: scale.Flats},
	}
	for name, n := range notations {
		for _, root := range n.Roots() {
			got, err := n.Generate(root, major)
			require.NoError(t, err, "%s %s", name, root)
			require.Equal(t, root, got[0])
		}
	}
	assert.Len(t, scale.Chromatic{}.Roots(), 17)
	assert.Len(t, scale.Fixed{}.Roots(), 17)
	assert.Len(t, scale.Fixed{Prefer: scale.Flats}.Roots(), 12)
	assert.Len(t, scale.KeySignature{}.Roots(), 14)
}

func TestParseNotation(t *testing.T) {
	for _, name := range scale.NotationNames {
		_, err := scale.ParseNotation(name, scale.Flats)
		require.NoError(t, err, name)
	}
	n, err := scale.ParseNotation("fixed", scale.Flats)
	require.NoError(t, err)
	require.Equal(t, scale.Fixed{Prefer: scale.Flats}, n)

	_, err = scale.ParseNotation("solfege", 0)
	require.ErrorIs(t, err, scale.ErrUnknownNotation)
}
