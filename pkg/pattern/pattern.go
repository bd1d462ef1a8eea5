package pattern

import (
	"fmt"
	"strings"
)

// Pattern is one named path template: a step sequence of alternating
// node, direction, and edge tests, plus the two positions in the matched
// word sequence that become a tensor entry. Names are not unique; several
// templates may feed the same relation.
type Pattern struct {
	Name       string
	Steps      []Step
	FirstSlot  int
	SecondSlot int
}

// Validate checks the structural contract of a template:
//
//   - steps alternate node, direction, edge with a node test first;
//   - the sequence ends on a node test or on a direction/edge pair;
//   - a negated edge test appears only as a final pair toward dependents;
//   - both output slots index a word position the template can produce.
//
// Templates are static configuration, so a violation is a programming
// error surfaced at startup rather than a per-fragment condition.
func (p Pattern) Validate() error {
	n := len(p.Steps)
	if n == 0 {
		return fmt.Errorf("pattern %q has no steps", p.Name)
	}
	if n%3 == 2 {
		return fmt.Errorf("pattern %q ends on a bare direction", p.Name)
	}
	for i, s := range p.Steps {
		var want StepKind
		switch i % 3 {
		case 0:
			want = StepNode
		case 1:
			want = StepDirection
		case 2:
			want = StepEdge
		}
		if s.Kind != want {
			return fmt.Errorf("pattern %q step %d out of order", p.Name, i)
		}
		if s.Kind == StepEdge && s.Edge.Negated {
			if i != n-1 {
				return fmt.Errorf("pattern %q has negated edge test %q before the final step", p.Name, s.Edge.Name)
			}
			if p.Steps[i-1].Dir != ToDependents {
				return fmt.Errorf("pattern %q negates edge test %q toward the governor", p.Name, s.Edge.Name)
			}
		}
	}
	words := p.WordCount()
	for _, slot := range []int{p.FirstSlot, p.SecondSlot} {
		if slot < 0 || slot >= words {
			return fmt.Errorf("pattern %q slot %d outside its %d-word sequence", p.Name, slot, words)
		}
	}
	return nil
}

// WordCount is the number of words a complete match of this template
// visits. A template ending on a direction/edge pair does not consume a
// node for that pair.
func (p Pattern) WordCount() int {
	return (len(p.Steps) + 2) / 3
}

func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(": ")
	for i, s := range p.Steps {
		switch s.Kind {
		case StepNode:
			if s.Node.Any {
				b.WriteString("*")
			} else if s.Node.Lexeme != "" {
				b.WriteString(s.Node.Lexeme)
			} else {
				fmt.Fprintf(&b, "class(%d)", s.Node.Class)
			}
		case StepDirection:
			if s.Dir == ToGovernor {
				b.WriteString(" <-")
			} else {
				b.WriteString(" -")
			}
		case StepEdge:
			b.WriteString(s.Edge.Name)
			if p.Steps[i-1].Dir == ToGovernor {
				b.WriteString("- ")
			} else {
				b.WriteString("-> ")
			}
		}
	}
	return b.String()
}

// ValidateAll validates every template in a catalog, reporting the first
// violation.
func ValidateAll(patterns []Pattern) error {
	for _, p := range patterns {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}
