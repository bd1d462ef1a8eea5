package pattern

import "depdm/pkg/deptree"

// Direction says which way a template step walks the tree: up the single
// governor edge, or fanning out over all matching dependent edges.
type Direction uint8

const (
	ToGovernor Direction = iota
	ToDependents
)

// NodeTest is a category constraint on a tree node. Any matches every
// node; a non-empty Lexeme additionally pins a lexicalized preposition.
type NodeTest struct {
	Any    bool
	Class  deptree.WordClass
	Lexeme string
}

// Matches reports whether the category satisfies the test.
func (t NodeTest) Matches(c deptree.Category) bool {
	if t.Any {
		return true
	}
	if t.Class != c.Class {
		return false
	}
	if t.Lexeme != "" && t.Lexeme != c.Lexeme {
		return false
	}
	return true
}

// EdgeTest is a relation constraint on a dependency edge. Negated flips
// the search semantics, not the match itself: a negated test succeeds
// when no dependent edge satisfies Match, and is only legal as the final
// step of a template (enforced by Pattern.Validate).
type EdgeTest struct {
	Name    string
	Match   func(deptree.Relation) bool
	Negated bool
}

// StepKind discriminates the tagged Step variant.
type StepKind uint8

const (
	StepNode StepKind = iota
	StepDirection
	StepEdge
)

// Step is one element of a template's test sequence. Exactly one of
// Node, Dir, or Edge is meaningful depending on Kind.
type Step struct {
	Kind StepKind
	Node NodeTest
	Dir  Direction
	Edge EdgeTest
}

func node(t NodeTest) Step { return Step{Kind: StepNode, Node: t} }
func dir(d Direction) Step { return Step{Kind: StepDirection, Dir: d} }
func edge(t EdgeTest) Step { return Step{Kind: StepEdge, Edge: t} }

// Node tests used by the catalog.
var (
	isNoun      = NodeTest{Class: deptree.ClassNoun}
	isVerb      = NodeTest{Class: deptree.ClassVerb}
	isAdjective = NodeTest{Class: deptree.ClassAdjective}
	isPrep      = NodeTest{Class: deptree.ClassPreposition}
	isTo        = NodeTest{Class: deptree.ClassTo}
	isNode      = NodeTest{Any: true}
)

func isLexPrep(lexeme string) NodeTest {
	return NodeTest{Class: deptree.ClassPreposition, Lexeme: lexeme}
}

func relIs(want deptree.Relation) func(deptree.Relation) bool {
	return func(r deptree.Relation) bool { return r == want }
}

// Edge tests used by the catalog. Family tests mirror the label
// hierarchy: a plain nsubj test accepts the passive variant too, and
// notsubj accepts any relation outside the subject family.
var (
	isNSubj        = EdgeTest{Name: "nsubj", Match: deptree.Relation.IsNominalSubject}
	isNSubjNotPass = EdgeTest{Name: "nsubjnotpass", Match: relIs(deptree.RelNSubj)}
	isNSubjPass    = EdgeTest{Name: "nsubjpass", Match: relIs(deptree.RelNSubjPass)}
	isDObj         = EdgeTest{Name: "dobj", Match: relIs(deptree.RelDObj)}
	isNotDObj      = EdgeTest{Name: "notdobj", Match: relIs(deptree.RelDObj), Negated: true}
	isAgent        = EdgeTest{Name: "agent", Match: relIs(deptree.RelAgent)}
	isIObj         = EdgeTest{Name: "iobj", Match: relIs(deptree.RelIObj)}
	isAMod         = EdgeTest{Name: "amod", Match: relIs(deptree.RelAMod)}
	isConj         = EdgeTest{Name: "conj", Match: relIs(deptree.RelConj)}
	isCC           = EdgeTest{Name: "cc", Match: relIs(deptree.RelCC)}
	isCop          = EdgeTest{Name: "cop", Match: relIs(deptree.RelCop)}
	isPrepRel      = EdgeTest{Name: "prep", Match: relIs(deptree.RelPrep)}
	isPObj         = EdgeTest{Name: "pobj", Match: relIs(deptree.RelPObj)}
	isXComp        = EdgeTest{Name: "xcomp", Match: relIs(deptree.RelXComp)}
	isNotSubj      = EdgeTest{Name: "notsubj", Match: func(r deptree.Relation) bool {
		return !r.IsSubject()
	}}
)
