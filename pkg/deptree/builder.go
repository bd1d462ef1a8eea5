package deptree

import (
	"regexp"
	"strconv"
	"strings"
)

// Tokens are only-letters or only-digits; anything else poisons the
// whole fragment.
var (
	onlyLetters = regexp.MustCompile(`^[a-zA-Z]*$`)
	onlyDigits  = regexp.MustCompile(`^[0-9]*$`)
)

// Parse builds the tree for one space-separated fragment of
// `word/POS-TAG/DEP-LABEL/governor-index` tokens. The governor index is
// 1-based; 0 marks the fragment root.
//
// Validation is all-or-nothing: a malformed token, a word with
// disallowed characters, a single-character word other than "a", an
// unresolvable tag or label, or an out-of-range governor index all yield
// a nil graph and no partial output.
func Parse(fragment string) []*Node {
	elts := strings.Split(fragment, " ")
	nodes := make([]*Node, len(elts))
	edges := make([]*Edge, len(elts))
	govIndex := make([]int, len(elts))

	for i, elt := range elts {
		fields := strings.Split(elt, "/")
		if len(fields) != 4 {
			return nil
		}
		word := fields[0]
		if !onlyLetters.MatchString(word) && !onlyDigits.MatchString(word) {
			return nil
		}
		if len(word) == 1 && word != "a" {
			return nil
		}
		gov, err := strconv.Atoi(fields[3])
		if err != nil || gov < 0 || gov > len(elts) {
			return nil
		}
		cat, ok := ResolveCategory(fields[1], word)
		if !ok {
			return nil
		}
		rel, ok := ResolveRelation(fields[2])
		if !ok {
			return nil
		}

		govIndex[i] = gov
		nodes[i] = &Node{
			Category: cat,
			Word:     word,
			Start:    IsStart(cat),
		}
		if gov != 0 {
			edges[i] = &Edge{Relation: rel, Dependent: nodes[i]}
			nodes[i].Governor = edges[i]
		}
	}

	// Second pass: every node's governor is now constructed, so the
	// dependent lists can be completed.
	for i, gov := range govIndex {
		if gov == 0 {
			continue
		}
		parent := nodes[gov-1]
		parent.Dependents = append(parent.Dependents, edges[i])
		edges[i].Governor = parent
	}

	return nodes
}
