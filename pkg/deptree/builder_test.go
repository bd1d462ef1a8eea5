package deptree

import "testing"

func TestParseBuildsTree(t *testing.T) {
	graph := Parse("soldier/NN/nsubj/2 read/VBP/root/0 book/NN/dobj/2")
	if graph == nil {
		t.Fatal("Parse() = nil, want graph")
	}
	if len(graph) != 3 {
		t.Fatalf("len(graph) = %d, want 3", len(graph))
	}

	soldier, read, book := graph[0], graph[1], graph[2]

	if read.Governor != nil {
		t.Errorf("root node has governor edge %v", read.Governor)
	}
	if soldier.Governor == nil || soldier.Governor.Governor != read {
		t.Error("soldier should govern up to read")
	}
	if soldier.Governor.Relation != RelNSubj {
		t.Errorf("soldier governor relation = %v, want nsubj", soldier.Governor.Relation)
	}
	if book.Governor == nil || book.Governor.Governor != read {
		t.Error("book should govern up to read")
	}
	if len(read.Dependents) != 2 {
		t.Fatalf("len(read.Dependents) = %d, want 2", len(read.Dependents))
	}
	if read.Dependents[0].Dependent != soldier || read.Dependents[1].Dependent != book {
		t.Error("dependent edges out of fragment order")
	}

	if !soldier.Start || !book.Start {
		t.Error("noun nodes should be flagged as start nodes")
	}
	if read.Start {
		t.Error("verb node should not be a start node")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
	}{
		{
			name:     "missing field",
			fragment: "soldier/NN/nsubj read/VBP/root/0",
		},
		{
			name:     "extra field",
			fragment: "soldier/NN/nsubj/2/x read/VBP/root/0",
		},
		{
			name:     "single letter word",
			fragment: "x/NN/nsubj/2 y/VBZ/root/0",
		},
		{
			name:     "punctuation in word",
			fragment: "sol-dier/NN/nsubj/2 read/VBP/root/0",
		},
		{
			name:     "mixed letters and digits",
			fragment: "abc123/NN/nsubj/2 read/VBP/root/0",
		},
		{
			name:     "non numeric governor index",
			fragment: "soldier/NN/nsubj/two read/VBP/root/0",
		},
		{
			name:     "governor index out of range",
			fragment: "soldier/NN/nsubj/5 read/VBP/root/0",
		},
		{
			name:     "negative governor index",
			fragment: "soldier/NN/nsubj/-1 read/VBP/root/0",
		},
		{
			name:     "unknown pos tag",
			fragment: "soldier/XX/nsubj/2 read/VBP/root/0",
		},
		{
			name:     "unknown dependency label",
			fragment: "soldier/NN/abbrev/2 read/VBP/root/0",
		},
		{
			name:     "preposition outside lexicon",
			fragment: "soldier/NN/nsubj/2 read/VBP/root/0 qua/IN/prep/2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.fragment); got != nil {
				t.Errorf("Parse(%q) = %v, want nil", tt.fragment, got)
			}
		})
	}
}

func TestParseAcceptsSingleA(t *testing.T) {
	graph := Parse("a/DT/det/2 book/NN/root/0")
	if graph == nil {
		t.Fatal("fragment with word \"a\" should parse")
	}
}

func TestParseAcceptsDigits(t *testing.T) {
	graph := Parse("1944/CD/num/2 year/NN/root/0")
	if graph == nil {
		t.Fatal("all-digit word should parse")
	}
}

// Following governor edges from any node must terminate within the
// fragment length.
func TestGovernorChainTerminates(t *testing.T) {
	graph := Parse("old/JJ/amod/2 soldier/NN/nsubj/3 read/VBP/root/0 book/NN/dobj/3")
	if graph == nil {
		t.Fatal("Parse() = nil, want graph")
	}
	for i, n := range graph {
		steps := 0
		for cur := n; cur.Governor != nil; cur = cur.Governor.Governor {
			steps++
			if steps > len(graph) {
				t.Fatalf("governor chain from node %d did not terminate", i)
			}
		}
	}
}
