package pattern

import (
	"strings"
	"testing"

	"depdm/pkg/deptree"
)

func TestCatalogValidates(t *testing.T) {
	if err := ValidateAll(Catalog()); err != nil {
		t.Fatalf("ValidateAll(Catalog()) = %v", err)
	}
}

func TestCatalogOrderAndSize(t *testing.T) {
	catalog := Catalog()
	if catalog[0].Name != "sbj_intr" {
		t.Errorf("first template = %q, want sbj_intr", catalog[0].Name)
	}
	// 15 delexicalized templates plus one per preposition.
	want := 15 + len(catalogPrepositions)
	if len(catalog) != want {
		t.Errorf("len(Catalog()) = %d, want %d", len(catalog), want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		pattern Pattern
		wantErr string
	}{
		{
			name:    "empty steps",
			pattern: Pattern{Name: "empty"},
			wantErr: "no steps",
		},
		{
			name: "bare direction at end",
			pattern: Pattern{Name: "dangling", Steps: []Step{
				node(isNoun), dir(ToGovernor),
			}},
			wantErr: "bare direction",
		},
		{
			name: "steps out of order",
			pattern: Pattern{Name: "shuffled", Steps: []Step{
				dir(ToGovernor),
			}},
			wantErr: "out of order",
		},
		{
			name: "negated test mid sequence",
			pattern: Pattern{Name: "midneg", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
				node(isNoun), dir(ToDependents), edge(isNotDObj), node(isVerb),
			}},
			wantErr: "before the final step",
		},
		{
			name: "negated test toward governor",
			pattern: Pattern{Name: "govneg", FirstSlot: 0, SecondSlot: 0, Steps: []Step{
				node(isNoun), dir(ToGovernor), edge(isNotDObj),
			}},
			wantErr: "toward the governor",
		},
		{
			name: "slot out of range",
			pattern: Pattern{Name: "wideslot", FirstSlot: 0, SecondSlot: 2, Steps: []Step{
				node(isNoun), dir(ToGovernor), edge(isNSubj), node(isVerb),
			}},
			wantErr: "outside",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pattern.Validate()
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name  string
		steps []Step
		want  int
	}{
		{
			name:  "single node",
			steps: []Step{node(isNoun)},
			want:  1,
		},
		{
			name: "full triple",
			steps: []Step{
				node(isNoun), dir(ToGovernor), edge(isNSubj), node(isVerb),
			},
			want: 2,
		},
		{
			name: "trailing pair consumes no node",
			steps: []Step{
				node(isNoun), dir(ToGovernor), edge(isConj), node(isNoun),
				dir(ToDependents), edge(isCC),
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pattern{Name: tt.name, Steps: tt.steps}
			if got := p.WordCount(); got != tt.want {
				t.Errorf("WordCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNodeTestMatches(t *testing.T) {
	withPrep := deptree.Category{Class: deptree.ClassPreposition, Lexeme: "WITH"}
	if !isNode.Matches(withPrep) {
		t.Error("wildcard test should match any category")
	}
	if !isPrep.Matches(withPrep) {
		t.Error("unlexicalized preposition test should match any preposition")
	}
	if !isLexPrep("WITH").Matches(withPrep) {
		t.Error("lexicalized test should match its own preposition")
	}
	if isLexPrep("UNDER").Matches(withPrep) {
		t.Error("lexicalized test should reject other prepositions")
	}
	if isNoun.Matches(withPrep) {
		t.Error("noun test should reject prepositions")
	}
}
