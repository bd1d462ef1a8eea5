package deptree

// Node is one token of a dependency-parse fragment. Nodes form a rooted
// tree: at most one incoming Governor edge, any number of owned
// Dependents edges. The fragment root has a nil Governor.
type Node struct {
	Category   Category
	Word       string
	Governor   *Edge
	Dependents []*Edge
	Start      bool
}

// Edge is a directed, relation-tagged link between two nodes. It is owned
// by the Dependents list of its Governor node and referenced back from its
// Dependent node.
type Edge struct {
	Relation  Relation
	Dependent *Node
	Governor  *Node
}

// SelectDependents returns the outgoing edges whose relation satisfies
// match, preserving fragment order.
func (n *Node) SelectDependents(match func(Relation) bool) []*Edge {
	var out []*Edge
	for _, e := range n.Dependents {
		if match(e.Relation) {
			out = append(out, e)
		}
	}
	return out
}

func (n *Node) String() string {
	return n.Word
}
