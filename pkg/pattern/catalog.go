package pattern

import "strings"

// prepLexeme converts a template name to the lexicon form the registry
// assigns to IN-tagged words.
func prepLexeme(name string) string {
	return strings.ToUpper(name)
}

// Catalog returns the fixed, ordered template table of the DepDM context
// model: noun-verb, noun-noun, and adjective-noun links, all delexicalized
// except the prepositional ones.
//
// Several relations have more than one template because the same semantic
// link surfaces in different parse shapes (active vs. passive subjects,
// double-object vs. prepositional datives).
func Catalog() []Pattern {
	ps := []Pattern{
		// "The teacher is singing": the verb has no dobj dependent.
		{Name: "sbj_intr", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubjNotPass), node(isVerb),
			dir(ToDependents), edge(isNotDObj),
		}},
		// "The soldier is reading a book".
		{Name: "sbj_tr", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubjNotPass), node(isVerb),
			dir(ToDependents), edge(isDObj), node(isNode),
		}},
		// Passive equivalent: "The book is being read by the soldier".
		{Name: "sbj_tr", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isAgent), node(isVerb),
		}},
		{Name: "obj", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubjPass), node(isVerb),
		}},
		{Name: "obj", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isDObj), node(isVerb),
		}},
		{Name: "iobj", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isIObj), node(isVerb),
		}},
		// Prepositional dative: "Paula passed the parcel to her father".
		{Name: "iobj", FirstSlot: 0, SecondSlot: 2, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isPObj), node(isTo),
			dir(ToGovernor), edge(isPrepRel), node(isVerb),
			dir(ToDependents), edge(isDObj), node(isNode),
		}},
		{Name: "iobj", FirstSlot: 0, SecondSlot: 2, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubj), node(isNoun),
			dir(ToGovernor), edge(isXComp), node(isVerb),
		}},
		// "Simon gave his uncle a dirty look": the non-subject edge from a
		// verb that also takes a direct object.
		{Name: "iobj", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNotSubj), node(isVerb),
			dir(ToDependents), edge(isDObj), node(isNoun),
		}},
		{Name: "nmod", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToDependents), edge(isAMod), node(isAdjective),
		}},
		// "teachers and soldiers".
		{Name: "coord", FirstSlot: 0, SecondSlot: 1, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isConj), node(isNoun),
			dir(ToDependents), edge(isCC),
		}},
		// "The woman became pregnant" / "The soldier became sergeant".
		{Name: "prd", FirstSlot: 1, SecondSlot: 2, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubj), node(isAdjective),
			dir(ToDependents), edge(isCop), node(isVerb),
		}},
		{Name: "prd", FirstSlot: 1, SecondSlot: 2, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubj), node(isNoun),
			dir(ToDependents), edge(isCop), node(isVerb),
		}},
		// "The soldier talked with his sergeant": subject and oblique
		// object of the same verb.
		{Name: "verb", FirstSlot: 0, SecondSlot: 3, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubj), node(isVerb),
			dir(ToDependents), edge(isPrepRel), node(isPrep),
			dir(ToDependents), edge(isPObj), node(isNoun),
		}},
		{Name: "verb", FirstSlot: 0, SecondSlot: 2, Steps: []Step{
			node(isNoun), dir(ToGovernor), edge(isNSubj), node(isVerb),
			dir(ToDependents), edge(isDObj), node(isNoun),
		}},
	}

	// One lexicalized template per preposition: NN <-pobj- PREP <-prep- VB.
	for _, prep := range catalogPrepositions {
		ps = append(ps, Pattern{
			Name: prep, FirstSlot: 0, SecondSlot: 2, Steps: []Step{
				node(isNoun), dir(ToGovernor), edge(isPObj), node(isLexPrep(prepLexeme(prep))),
				dir(ToGovernor), edge(isPrepRel), node(isVerb),
			},
		})
	}
	return ps
}

// catalogPrepositions lists the lexicalized templates in catalog order.
// The template name is the lowercase preposition itself.
var catalogPrepositions = []string{
	"on", "upon", "at", "among", "between", "for", "of", "with", "by",
	"from", "within", "as", "into", "under", "than", "along", "throughout",
	"like", "up", "above", "if", "since", "without", "until", "beyond",
	"unlike", "notwithstanding", "amongst", "that", "against", "branch",
	"during", "before", "though", "after", "below", "over", "except",
	"out", "about", "per", "despite", "around", "so", "through", "till",
	"behind", "towards", "versus", "outside", "across", "toward",
	"besides", "off", "near", "inside", "round", "unto", "atop", "down",
}
