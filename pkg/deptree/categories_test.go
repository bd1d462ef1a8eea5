package deptree

import "testing"

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		name   string
		posTag string
		word   string
		want   Category
		ok     bool
	}{
		{
			name:   "noun family collapses",
			posTag: "NNPS",
			word:   "Soldiers",
			want:   Category{Class: ClassNoun},
			ok:     true,
		},
		{
			name:   "verb family collapses",
			posTag: "VBG",
			word:   "singing",
			want:   Category{Class: ClassVerb},
			ok:     true,
		},
		{
			name:   "adjective family collapses",
			posTag: "JJR",
			word:   "older",
			want:   Category{Class: ClassAdjective},
			ok:     true,
		},
		{
			name:   "preposition lexicalizes uppercased",
			posTag: "IN",
			word:   "with",
			want:   Category{Class: ClassPreposition, Lexeme: "WITH"},
			ok:     true,
		},
		{
			name:   "to keeps its own class",
			posTag: "TO",
			word:   "to",
			want:   Category{Class: ClassTo},
			ok:     true,
		},
		{
			name:   "preposition outside lexicon misses",
			posTag: "IN",
			word:   "qua",
			ok:     false,
		},
		{
			name:   "unknown tag misses",
			posTag: "FW",
			word:   "gestalt",
			ok:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveCategory(tt.posTag, tt.word)
			if ok != tt.ok {
				t.Fatalf("ResolveCategory(%q, %q) ok = %v, want %v", tt.posTag, tt.word, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveCategory(%q, %q) = %+v, want %+v", tt.posTag, tt.word, got, tt.want)
			}
		})
	}
}

func TestResolveRelation(t *testing.T) {
	if _, ok := ResolveRelation("nsubj"); !ok {
		t.Error("nsubj should resolve")
	}
	if _, ok := ResolveRelation("abbrev"); ok {
		t.Error("abbrev should not resolve")
	}
	if r, ok := ResolveRelation("root"); !ok || r != RelDep {
		t.Error("root should resolve to the generic dependency")
	}
}

func TestIsStart(t *testing.T) {
	if !IsStart(Category{Class: ClassNoun}) {
		t.Error("nouns are start nodes")
	}
	for _, c := range []WordClass{ClassVerb, ClassAdjective, ClassPreposition, ClassTo, ClassGeneric} {
		if IsStart(Category{Class: c}) {
			t.Errorf("class %d should not be a start node", c)
		}
	}
}

func TestRelationFamilies(t *testing.T) {
	if !RelNSubj.IsNominalSubject() || !RelNSubjPass.IsNominalSubject() {
		t.Error("nsubj and nsubjpass are both nominal subjects")
	}
	if RelDObj.IsNominalSubject() {
		t.Error("dobj is not a nominal subject")
	}
	if !RelCSubjPass.IsSubject() {
		t.Error("csubjpass belongs to the subject family")
	}
	if RelAgent.IsSubject() {
		t.Error("agent is outside the subject family")
	}
}
