package ccg

var (
	Verb      = NewValueSet(V5k, V5s, V5t, V5n, V5m, V5r, V5w, V5g, V5z, V5b, V5IKU, V5YUK, V5ARU, V5NAS, V5TOW, V1, VK, VS, VSN, VZ, VURU)
	Adjective = NewValueSet(Aauo, Ai, ANAS, ATII, ABES)
	NomPred   = NewValueSet(Nda, Nna, Nno, Nni, Nemp, Ntar)
	AnyPos    = Verb.Union(Adjective).Union(NomPred)
	NonStem   = NewValueSet(Neg, Cont, Term, Attr, Hyp, Imper, Pre, NStem, VoR, VoS, VoE, NegL, TeForm)
	PM        = NewValueSet(P, M)
)

// M5 is the five trailing slots of an S in their default setting.
func M5() []Feature {
	return []Feature{F(M), F(M), F(M), F(M), F(M)}
}

// DefS is S with the given part of speech and conjugation and defaults
// elsewhere.
func DefS(pos, conj ValueSet) *Category {
	return NewS(append([]Feature{Fixed(pos), Fixed(conj)}, M5()...)...)
}

// ModifiableS is the S a modifier may attach to.
func ModifiableS() *Category {
	return NewS(
		Shared(2, AnyPos),
		Shared(3, NonStem),
		Shared(4, PM),
		Shared(5, PM),
		Shared(6, PM),
		F(M),
		F(M),
	)
}

// TypeRaised builds T/(T\NP[cases]) over ModifiableS.
func TypeRaised(cases ...FeatureValue) *Category {
	return Fwd(NewVar(true, 1, ModifiableS()), Bwd(NewVar(true, 1, ModifiableS()), NewNP(F(cases...))))
}
