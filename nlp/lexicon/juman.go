package lexicon

import (
	"strings"

	"lightblue/nlp/format/lex"

	. "lightblue/nlp/ccg"
)

const (
	COMMON_NOUN_SOURCE = "(CN)"
	PROPER_NOUN_SOURCE = "(PN)"
	COMMON_NOUN_POS    = "名詞:普通名詞"
)

var PROPER_NOUN_POS = []string{"名詞:固有名詞", "名詞:人名", "名詞:地名", "名詞:組織名"}

type posRule struct {
	prefix string
	cats   func(caseFrame string) []*Category
}

func vs(values ...FeatureValue) ValueSet {
	return NewValueSet(values...)
}

func verb(pos, conj ValueSet) func(string) []*Category {
	return func(caseFrame string) []*Category {
		return ConstructVerb(caseFrame, pos, conj)
	}
}

func predicate(pos, conj ValueSet) func(string) []*Category {
	return func(string) []*Category {
		return ConstructPredicate(pos, conj)
	}
}

func constant(cats ...func() []*Category) func(string) []*Category {
	return func(string) []*Category {
		var retval []*Category
		for _, c := range cats {
			retval = append(retval, c()...)
		}
		return retval
	}
}

func modifierOf(c func() *Category) func(string) []*Category {
	return func(string) []*Category {
		return []*Category{Fwd(c(), c())}
	}
}

func exclamation() []*Category {
	return []*Category{DefS(vs(Exp), vs(Term))}
}

// POS prefixes are tried in order, so a more specific prefix comes before
// any prefix of it.
var posRules = []posRule{
	{"名詞:副詞的名詞", constant(ConstructSubordinateConjunction)},
	{"名詞:時相名詞", predicate(vs(Nda, Nna, Nno, Nni, Nemp), vs(NStem))},
	{"動詞:子音動詞カ行促音便形", verb(vs(V5IKU, V5YUK), vs(Stem))},
	{"動詞:子音動詞カ行", verb(vs(V5k), vs(Stem))},
	{"動詞:子音動詞サ行", verb(vs(V5s), vs(Stem))},
	{"動詞:子音動詞タ行", verb(vs(V5t), vs(Stem))},
	{"動詞:子音動詞ナ行", verb(vs(V5n), vs(Stem))},
	{"動詞:子音動詞マ行", verb(vs(V5m), vs(Stem))},
	{"動詞:子音動詞ラ行イ形", verb(vs(V5NAS), vs(Stem))},
	{"動詞:子音動詞ラ行", verb(vs(V5r), vs(Stem))},
	{"動詞:子音動詞ワ行文語音便形", verb(vs(V5TOW), vs(Stem))},
	{"動詞:子音動詞ワ行", verb(vs(V5w), vs(Stem))},
	{"動詞:子音動詞ガ行", verb(vs(V5g), vs(Stem))},
	{"動詞:子音動詞バ行", verb(vs(V5b), vs(Stem))},
	{"動詞:母音動詞", verb(vs(V1), vs(Stem, Neg, Cont, NegL, EuphT))},
	{"動詞:カ変動詞", verb(vs(VK), vs(Stem, Cont))},
	{"名詞:サ変名詞", func(caseFrame string) []*Category {
		cats := ConstructCommonNoun()
		cats = append(cats, ConstructVerb(caseFrame, vs(VS, VSN), vs(Stem))...)
		return append(cats, ConstructPredicate(vs(Nda, Ntar), vs(NStem))...)
	}},
	{"動詞:サ変動詞", verb(vs(VS), vs(Stem))},
	{"動詞:ザ変動詞", verb(vs(VZ), vs(Stem))},
	{"動詞:動詞性接尾辞ます型", verb(vs(V5NAS), vs(Stem))},
	{"形容詞:イ形容詞アウオ段", predicate(vs(Aauo), vs(Stem))},
	{"形容詞:イ形容詞イ段特殊", predicate(vs(Ai, Nna), vs(Stem))},
	{"形容詞:イ形容詞イ段", predicate(vs(Ai), vs(Stem, Term))},
	{"形容詞:ナ形容詞特殊", predicate(vs(Nda, Nna), vs(NStem))},
	{"形容詞:ナ形容詞", predicate(vs(Nda, Nna, Nni), vs(NStem))},
	{"形容詞:ナノ形容詞", predicate(vs(Nda, Nna, Nno, Nni), vs(NStem))},
	{"形容詞:タル形容詞", predicate(vs(Ntar, Nto), vs(Stem))},
	{"副詞", func(string) []*Category {
		return append(ConstructPredicate(vs(Nda, Nna, Nno, Nni, Nto, Nemp), vs(NStem)), ConstructCommonNoun()...)
	}},
	{"連体詞", constant(ConstructNominalPrefix)},
	{"接続詞", constant(ConstructConjunction)},
	{"接頭辞:名詞接頭辞", constant(ConstructNominalPrefix)},
	{"接頭辞:動詞接頭辞", modifierOf(func() *Category { return DefS(Verb, vs(Stem)) })},
	{"接頭辞:イ形容詞接頭辞", modifierOf(func() *Category { return Bwd(DefS(vs(Aauo), vs(Stem)), NewNP(F(Ga))) })},
	{"接頭辞:ナ形容詞接頭辞", modifierOf(func() *Category { return Bwd(DefS(vs(Nda), vs(NStem)), NewNP(F(Ga))) })},
	{"接尾辞:名詞性名詞助数辞", constant(ConstructNominalSuffix)},
	{"接尾辞:名詞性特殊接尾辞", constant(ConstructNominalSuffix)},
	{"接尾辞:名詞性述語接尾辞", constant(ConstructNominalSuffix)},
	{"特殊:括弧始", func(string) []*Category { return []*Category{CatLPAREN} }},
	{"特殊:括弧終", func(string) []*Category { return []*Category{CatRPAREN} }},
	{"数詞", constant(ConstructCommonNoun)},
	{"感動詞", constant(exclamation)},
}

// JumanPosToCats maps a Juman part of speech to its categories. Unknown
// parts of speech are read as exclamations.
func JumanPosToCats(pos, caseFrame string) []*Category {
	for _, rule := range posRules {
		if strings.HasPrefix(pos, rule.prefix) {
			return rule.cats(caseFrame)
		}
	}
	return exclamation()
}

func IsProperNounPos(pos string) bool {
	for _, prefix := range PROPER_NOUN_POS {
		if strings.HasPrefix(pos, prefix) {
			return true
		}
	}
	return false
}

// Noun is one surface form of a common or proper noun with all its
// readings merged.
type Noun struct {
	Hyoki    string
	Readings string
	Score    int
}

type nounTable struct {
	index map[string]int
	nouns []Noun
}

func (t *nounTable) add(r lex.Record) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, exists := t.index[r.Hyoki]; exists {
		n := &t.nouns[i]
		n.Readings = n.Readings + ";" + r.DaihyoYomi()
		n.Score = max(n.Score, r.Score)
		return
	}
	t.index[r.Hyoki] = len(t.nouns)
	t.nouns = append(t.nouns, Noun{Hyoki: r.Hyoki, Readings: r.DaihyoYomi(), Score: r.Score})
}

// Nouns splits the common and proper nouns out of records, merged per
// surface form in order of first occurrence.
func Nouns(records []lex.Record) (common, proper []Noun) {
	var cn, pn nounTable
	for _, r := range records {
		switch {
		case strings.HasPrefix(r.Pos, COMMON_NOUN_POS):
			cn.add(r)
		case IsProperNounPos(r.Pos):
			pn.add(r)
		}
	}
	return cn.nouns, pn.nouns
}

func sourceTag(source string) string {
	runes := []rune(source)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return "(J" + string(runes) + ")"
}

// FromRecords turns dictionary records into lexical items: entries mapped
// by part of speech first, then common nouns, then proper nouns.
func FromRecords(records []lex.Record) []*Node {
	var nodes []*Node
	for _, r := range records {
		if strings.HasPrefix(r.Pos, COMMON_NOUN_POS) || IsProperNounPos(r.Pos) {
			continue
		}
		for _, cat := range JumanPosToCats(r.Pos, r.CaseFrame) {
			nodes = append(nodes, LexicalItem(r.Hyoki, sourceTag(r.Source), r.Score, cat))
		}
	}
	common, proper := Nouns(records)
	for _, n := range common {
		for _, cat := range ConstructCommonNoun() {
			nodes = append(nodes, LexicalItem(n.Hyoki, COMMON_NOUN_SOURCE, n.Score, cat))
		}
	}
	for _, n := range proper {
		for _, cat := range ConstructProperNoun() {
			nodes = append(nodes, LexicalItem(n.Hyoki, PROPER_NOUN_SOURCE, n.Score, cat))
		}
	}
	return nodes
}
