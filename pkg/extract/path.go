package extract

import (
	"strings"

	"depdm/pkg/deptree"
)

// Path is one completed template match: the visited words in order plus
// the two slot positions that become a tensor entry.
//
// Path identity is the word sequence alone; the pattern name is carried
// but deliberately excluded. Two templates that happen to match the same
// word sequence in one fragment collapse to a single path, keeping the
// name of whichever template the catalog lists first. Downstream counts
// depend on this collapsing, so it must not be "fixed" to key on the
// name as well.
type Path struct {
	PatternName string
	Words       []*deptree.Node
	FirstSlot   int
	SecondSlot  int
}

// First returns the word selected by the first output slot.
func (p Path) First() string {
	return p.Words[p.FirstSlot].Word
}

// Second returns the word selected by the second output slot.
func (p Path) Second() string {
	return p.Words[p.SecondSlot].Word
}

// key is the identity of the path for set membership.
func (p Path) key() string {
	words := make([]string, len(p.Words))
	for i, n := range p.Words {
		words[i] = n.Word
	}
	return strings.Join(words, "\x00")
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteString(p.PatternName)
	b.WriteString("[")
	for i, n := range p.Words {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(n.Word)
	}
	b.WriteString("]")
	return b.String()
}
