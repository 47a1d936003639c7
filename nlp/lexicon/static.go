package lexicon

import (
	. "lightblue/nlp/ccg"
)

const STATIC_SOURCE = "(static)"

func item(pf string, logScore float64, cat *Category) *Node {
	return &Node{Rule: LEX, PF: pf, Cat: cat, LogScore: logScore, Source: STATIC_SOURCE}
}

// caseMarker reads a particle after a bare noun phrase or a common noun.
func caseMarker(pf string, cases ...FeatureValue) []*Node {
	return []*Node{
		item(pf, -0.1, Bwd(TypeRaised(cases...), NewNP(F(Nc)))),
		item(pf, -0.2, Bwd(TypeRaised(cases...), CatN)),
	}
}

// copula is です: it turns a plain adjectival clause into a polite one.
func copula() *Node {
	return item("です", -0.1, Bwd(
		NewS(Shared(1, Adjective), F(Term), Shared(2, PM), F(P), F(M), F(M), F(M)),
		NewS(Shared(1, Adjective), F(Term), Shared(2, PM), F(M), F(M), F(M), F(M)),
	))
}

// pastSuffix is an ending attaching to continuative and euphonic stems.
func pastSuffix(word string, pos, conj ValueSet) *Node {
	return LexicalItem(word, STATIC_SOURCE, 100, Bwd(
		NewS(append([]Feature{Shared(1, pos), Fixed(conj)}, M5()...)...),
		NewS(append([]Feature{Shared(1, pos), F(Cont, EuphT)}, M5()...)...),
	))
}

// adnominalSuffix turns an adjective stem into a noun modifier whose subject
// is the modified noun.
func adnominalSuffix(word string, pos ValueSet) *Node {
	return LexicalItem(word, STATIC_SOURCE, 90, Bwd(
		Fwd(CatN, CatN),
		Bwd(DefS(pos, vs(Stem)), NewNP(F(Ga))),
	))
}

// godanEndings are the plain endings of consonant verbs and of the
// irregular verb 来る.
var godanEndings = []struct {
	word string
	pos  ValueSet
}{
	{"く", vs(V5k, V5IKU, V5YUK)},
	{"ぐ", vs(V5g)},
	{"す", vs(V5s)},
	{"つ", vs(V5t)},
	{"ぬ", vs(V5n)},
	{"ぶ", vs(V5b)},
	{"む", vs(V5m)},
	{"う", vs(V5w, V5TOW)},
	{"る", vs(V5r, V1, V5ARU, V5NAS, VK)},
}

// Static is the hand-written part of the lexicon: particles, copula,
// inflectional endings and brackets.
func Static() []*Node {
	var nodes []*Node
	nodes = append(nodes, caseMarker("が", Ga)...)
	nodes = append(nodes, caseMarker("を", O)...)
	nodes = append(nodes, caseMarker("に", Ni)...)
	nodes = append(nodes, caseMarker("は", Ga, O)...)
	nodes = append(nodes,
		item("の", -0.1, Bwd(Fwd(CatN, CatN), NewNP(F(Nc)))),
		item("の", -0.2, Bwd(Fwd(CatN, CatN), CatN)),
		LexicalItem("と", STATIC_SOURCE, 90, CatCONJ),
		copula(),
		ConjSuffix("い", STATIC_SOURCE, vs(Aauo, Ai), vs(Term, Attr)),
		adnominalSuffix("い", vs(Aauo, Ai)),
		ConjNSuffix("だ", STATIC_SOURCE, vs(Nda), vs(Term)),
		ConjNSuffix("な", STATIC_SOURCE, vs(Nna), vs(Attr)),
		pastSuffix("た", Verb, vs(Term, Attr)),
		LexicalItem("（", STATIC_SOURCE, 100, CatLPAREN),
		LexicalItem("(", STATIC_SOURCE, 100, CatLPAREN),
		LexicalItem("）", STATIC_SOURCE, 100, CatRPAREN),
		LexicalItem(")", STATIC_SOURCE, 100, CatRPAREN),
	)
	for _, e := range godanEndings {
		nodes = append(nodes, ConjSuffix(e.word, STATIC_SOURCE, e.pos, vs(Term, Attr)))
	}
	return nodes
}

// EmptyCategories are the zero-width items tried at every span: dropped
// subjects and objects.
func EmptyCategories() []*Node {
	return []*Node{
		EmptyCategory("pro", "EC", 95, TypeRaised(Ga)),
		EmptyCategory("pro", "EC", 90, TypeRaised(O)),
	}
}
