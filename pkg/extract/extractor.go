package extract

import (
	"depdm/pkg/deptree"
	"depdm/pkg/pattern"
)

// Extractor runs a template catalog against fragment trees. It is
// stateless across fragments and safe to reuse for a whole run.
type Extractor struct {
	patterns []pattern.Pattern
}

// New creates an Extractor over a validated catalog. The caller is
// expected to have run pattern.ValidateAll first; templates that would
// need mid-sequence negation semantics are rejected there rather than
// silently mis-executed here.
func New(patterns []pattern.Pattern) *Extractor {
	return &Extractor{patterns: patterns}
}

// Extract searches the fragment from every start node under every
// template and returns the union of completed paths. The union is a set
// under Path identity (word sequence only), so identical sequences found
// by different templates collapse to the first one found.
func (e *Extractor) Extract(graph []*deptree.Node) []Path {
	var paths []Path
	seen := make(map[string]struct{})
	for _, n := range graph {
		if !n.Start {
			continue
		}
		for _, p := range e.patterns {
			for _, found := range search(n, 0, p, nil, nil) {
				k := found.key()
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				paths = append(paths, found)
			}
		}
	}
	return paths
}

// search explores the fragment depth-first from node, which must satisfy
// the node test at step. acc holds the words matched so far and visited
// the nodes on the current branch; neither is mutated, so sibling
// branches cannot see each other's state. The fragment is a tree, which
// alone bounds the recursion; the visited set additionally protects
// against malformed cyclic input.
func search(node *deptree.Node, step int, p pattern.Pattern, acc []*deptree.Node, visited map[*deptree.Node]struct{}) []Path {
	if !p.Steps[step].Node.Matches(node.Category) {
		return nil
	}
	if _, ok := visited[node]; ok {
		return nil
	}

	branchVisited := make(map[*deptree.Node]struct{}, len(visited)+1)
	for k := range visited {
		branchVisited[k] = struct{}{}
	}
	branchVisited[node] = struct{}{}
	words := make([]*deptree.Node, len(acc), len(acc)+1)
	copy(words, acc)
	words = append(words, node)

	completed := func() Path {
		return Path{
			PatternName: p.Name,
			Words:       words,
			FirstSlot:   p.FirstSlot,
			SecondSlot:  p.SecondSlot,
		}
	}

	// Last node test in the sequence: the path is complete.
	if step == len(p.Steps)-1 {
		return []Path{completed()}
	}

	dir := p.Steps[step+1].Dir
	et := p.Steps[step+2].Edge
	finalPair := step+2 == len(p.Steps)-1

	if dir == pattern.ToGovernor {
		ge := node.Governor
		if ge == nil || !et.Match(ge.Relation) {
			return nil
		}
		// A final governor pair succeeds without consuming the governor
		// node itself.
		if finalPair {
			return []Path{completed()}
		}
		return search(ge.Governor, step+3, p, words, branchVisited)
	}

	matching := node.SelectDependents(et.Match)

	if et.Negated {
		// Catalog validation guarantees a negated test is a final pair:
		// success means no matching dependent exists at all.
		if len(matching) == 0 && finalPair {
			return []Path{completed()}
		}
		return nil
	}

	var out []Path
	for _, e := range matching {
		if finalPair {
			// Once per matching edge with an unchanged word sequence;
			// the copies collapse under Path identity.
			out = append(out, completed())
			continue
		}
		out = append(out, search(e.Dependent, step+3, p, words, branchVisited)...)
	}
	return out
}
