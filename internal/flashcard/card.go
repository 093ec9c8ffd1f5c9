package flashcard

import (
	"fmt"
	"io"
	"strings"

	"github.com/boyvinall/go-scaler/internal/scale"
)

// Card is one generated scale, ready to print.
type Card struct {
	Root  scale.Note
	Name  string
	Scale scale.Scale
}

// NewCard generates the scale for root and wraps it in a Card.
func NewCard(n scale.Notation, root scale.Note, name string, p scale.Pattern) (Card, error) {
	s, err := n.Generate(root, p)
	if err != nil {
		return Card{}, err
	}
	return Card{Root: root, Name: name, Scale: s}, nil
}

// Print writes the card as two lines: the root, then the scale.
func (c Card) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Root Note: %s\nScale (%s): %s\n", c.Root, capitalize(c.Name), c.Scale)
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
