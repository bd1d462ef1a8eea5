package deptree

import "strings"

// WordClass groups Penn TreeBank part-of-speech tags into the coarse
// word classes the pattern catalog tests against. Preposition-introducer
// tokens (tag IN) are additionally lexicalized via Category.Lexeme.
type WordClass uint8

const (
	ClassUnknown WordClass = iota
	ClassNoun
	ClassVerb
	ClassAdjective
	ClassPreposition
	ClassTo
	ClassGeneric
)

// Category is the resolved linguistic category of a token. For
// ClassPreposition the Lexeme carries the uppercased preposition itself,
// since prepositional links are the only lexicalized links in the model.
type Category struct {
	Class  WordClass
	Lexeme string
}

// Relation identifies the grammatical role of a dependency edge. The set
// is closed: labels outside the table below do not resolve and cause the
// whole fragment to be skipped.
type Relation uint8

const (
	RelDep Relation = iota
	RelAux
	RelAuxPass
	RelCop
	RelAgent
	RelNSubj
	RelNSubjPass
	RelCSubj
	RelCSubjPass
	RelDObj
	RelIObj
	RelPObj
	RelCComp
	RelXComp
	RelConj
	RelCC
	RelAMod
	RelAdvMod
	RelAppos
	RelDet
	RelPoss
	RelNum
	RelMark
	RelPrep
	RelPrt
	RelRcMod
	RelNN
)

// posClasses maps every recognized POS tag except IN to a word class.
// Tag families collapse: all noun tags become ClassNoun, and so on.
var posClasses = map[string]WordClass{
	"NN": ClassNoun, "NNS": ClassNoun, "NNP": ClassNoun, "NNPS": ClassNoun,
	"VB": ClassVerb, "VBD": ClassVerb, "VBG": ClassVerb, "VBN": ClassVerb,
	"VBP": ClassVerb, "VBZ": ClassVerb, "MD": ClassVerb,
	"JJ": ClassAdjective, "JJR": ClassAdjective, "JJS": ClassAdjective,
	"TO": ClassTo,
	"CC": ClassGeneric, "CD": ClassGeneric, "DT": ClassGeneric,
	"EX": ClassGeneric, "PDT": ClassGeneric, "POS": ClassGeneric,
	"PRP": ClassGeneric, "PRP$": ClassGeneric,
	"RB": ClassGeneric, "RBR": ClassGeneric, "RBS": ClassGeneric,
	"RP": ClassGeneric, "WDT": ClassGeneric, "WP": ClassGeneric,
	"WP$": ClassGeneric, "WRB": ClassGeneric,
}

// prepositions is the lexicon of preposition-introducer words the catalog
// can lexicalize. An IN-tagged word outside this set does not resolve.
var prepositions = map[string]struct{}{
	"ON": {}, "UPON": {}, "AT": {}, "AMONG": {}, "BETWEEN": {}, "FOR": {},
	"OF": {}, "WITH": {}, "BY": {}, "FROM": {}, "WITHIN": {}, "AS": {},
	"INTO": {}, "UNDER": {}, "THAN": {}, "ALONG": {}, "THROUGHOUT": {},
	"LIKE": {}, "UP": {}, "ABOVE": {}, "IF": {}, "SINCE": {}, "WITHOUT": {},
	"UNTIL": {}, "BEYOND": {}, "UNLIKE": {}, "NOTWITHSTANDING": {},
	"AMONGST": {}, "THAT": {}, "AGAINST": {}, "BRANCH": {}, "DURING": {},
	"BEFORE": {}, "THOUGH": {}, "AFTER": {}, "BELOW": {}, "OVER": {},
	"EXCEPT": {}, "OUT": {}, "ABOUT": {}, "PER": {}, "DESPITE": {},
	"AROUND": {}, "SO": {}, "THROUGH": {}, "TILL": {}, "BEHIND": {},
	"TOWARDS": {}, "VERSUS": {}, "OUTSIDE": {}, "ACROSS": {}, "TOWARD": {},
	"BESIDES": {}, "OFF": {}, "NEAR": {}, "INSIDE": {}, "ROUND": {},
	"UNTO": {}, "ATOP": {}, "DOWN": {},
}

var relations = map[string]Relation{
	"dep":       RelDep,
	"aux":       RelAux,
	"auxpass":   RelAuxPass,
	"cop":       RelCop,
	"agent":     RelAgent,
	"nsubj":     RelNSubj,
	"nsubjpass": RelNSubjPass,
	"csubj":     RelCSubj,
	"csubjpass": RelCSubjPass,
	"dobj":      RelDObj,
	"iobj":      RelIObj,
	"pobj":      RelPObj,
	"ccomp":     RelCComp,
	"xcomp":     RelXComp,
	"conj":      RelConj,
	"cc":        RelCC,
	"amod":      RelAMod,
	"advmod":    RelAdvMod,
	"appos":     RelAppos,
	"det":       RelDet,
	"poss":      RelPoss,
	"num":       RelNum,
	"mark":      RelMark,
	"prep":      RelPrep,
	"prt":       RelPrt,
	"rcmod":     RelRcMod,
	"nn":        RelNN,
	"root":      RelDep,
}

// startClasses drives the start-node flag on built fragments. Only one
// class is configured today; swapping the entry point is a table edit.
var startClasses = map[WordClass]struct{}{
	ClassNoun: {},
}

// ResolveCategory maps a POS tag and its word to a Category. IN-tagged
// words resolve through the preposition lexicon on the uppercased word;
// every other tag resolves through the fixed tag table. The second return
// value is false when the tag or word is outside the closed tables, which
// callers treat as "this fragment cannot be parsed".
func ResolveCategory(posTag, word string) (Category, bool) {
	if posTag == "IN" {
		lex := strings.ToUpper(word)
		if _, ok := prepositions[lex]; !ok {
			return Category{}, false
		}
		return Category{Class: ClassPreposition, Lexeme: lex}, true
	}
	class, ok := posClasses[posTag]
	if !ok {
		return Category{}, false
	}
	return Category{Class: class}, true
}

// ResolveRelation maps a dependency label to a Relation. Unknown labels
// are a recoverable miss, not an error.
func ResolveRelation(label string) (Relation, bool) {
	r, ok := relations[label]
	return r, ok
}

// IsStart reports whether a node of the given category qualifies as a
// search entry point.
func IsStart(c Category) bool {
	_, ok := startClasses[c.Class]
	return ok
}

// IsSubject reports whether the relation belongs to the subject family.
func (r Relation) IsSubject() bool {
	switch r {
	case RelNSubj, RelNSubjPass, RelCSubj, RelCSubjPass:
		return true
	}
	return false
}

// IsNominalSubject reports whether the relation is nsubj or its passive
// variant. The catalog's plain nsubj test accepts both.
func (r Relation) IsNominalSubject() bool {
	return r == RelNSubj || r == RelNSubjPass
}
