package lexicon

import (
	"strings"

	. "lightblue/nlp/ccg"
)

// VerbCat adds one argument per case frame character, innermost first:
// ガ NP[Ga], ヲ NP[O], ニ NP[Ni], ト Sbar[ToCL], ヨ NP[Niyotte]. Other
// characters are ignored.
func VerbCat(caseFrame string, cat *Category) *Category {
	for _, c := range caseFrame {
		switch c {
		case 'ガ':
			cat = Bwd(cat, NewNP(F(Ga)))
		case 'ヲ':
			cat = Bwd(cat, NewNP(F(O)))
		case 'ニ':
			cat = Bwd(cat, NewNP(F(Ni)))
		case 'ト':
			cat = Bwd(cat, NewSbar(F(ToCL)))
		case 'ヨ':
			cat = Bwd(cat, NewNP(F(Niyotte)))
		}
	}
	return cat
}

// ConstructVerb builds one category per #-separated case frame; an empty
// frame means ガ.
func ConstructVerb(caseFrame string, pos, conj ValueSet) []*Category {
	if caseFrame == "" {
		caseFrame = "ガ"
	}
	frames := strings.Split(caseFrame, "#")
	retval := make([]*Category, len(frames))
	for i, frame := range frames {
		retval[i] = VerbCat(frame, DefS(pos, conj))
	}
	return retval
}

func ConstructPredicate(pos, conj ValueSet) []*Category {
	return []*Category{Bwd(DefS(pos, conj), NewNP(F(Ga)))}
}

func ConstructCommonNoun() []*Category {
	return []*Category{CatN}
}

func ConstructProperNoun() []*Category {
	return []*Category{TypeRaised(Nc)}
}

func ConstructNominalPrefix() []*Category {
	return []*Category{Fwd(CatN, CatN)}
}

func ConstructNominalSuffix() []*Category {
	return []*Category{Fwd(CatN, CatN)}
}

func ConstructConjunction() []*Category {
	s := func() *Category {
		return NewVar(false, 1, NewS(
			Fixed(AnyPos),
			F(Term, NTerm, Pre, Imper),
			Shared(2, PM),
			Shared(3, PM),
			Shared(4, PM),
			F(M),
			F(M),
		))
	}
	return []*Category{Fwd(s(), s())}
}

func ConstructSubordinateConjunction() []*Category {
	clause := NewS(
		Fixed(AnyPos),
		F(Attr),
		Shared(7, PM),
		Shared(8, PM),
		Shared(9, PM),
		F(M),
		F(M),
	)
	return []*Category{Bwd(Fwd(ModifiableS(), ModifiableS()), clause)}
}

func conjugation(pos, conj, stem ValueSet) *Category {
	return Bwd(
		NewS(append([]Feature{Shared(1, pos), Fixed(conj)}, M5()...)...),
		NewS(append([]Feature{Shared(1, pos), Fixed(stem)}, M5()...)...),
	)
}

// ConjSuffix is an inflectional ending attaching to a stem of the given
// parts of speech.
func ConjSuffix(word, source string, pos, conj ValueSet) *Node {
	return LexicalItem(word, source, 100, conjugation(pos, conj, NewValueSet(Stem)))
}

// ConjNSuffix attaches to a nominal stem.
func ConjNSuffix(word, source string, pos, conj ValueSet) *Node {
	return LexicalItem(word, source, 100, conjugation(pos, conj, NewValueSet(NStem)))
}
