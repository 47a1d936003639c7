package ccg

import (
	"fmt"
	"math/bits"
	"strings"

	"lightblue/util"
)

type FeatureValue uint8

const (
	// verbs
	V5k FeatureValue = iota
	V5s
	V5t
	V5n
	V5m
	V5r
	V5w
	V5g
	V5z
	V5b
	V5IKU
	V5YUK
	V5ARU
	V5NAS
	V5TOW
	V1
	VK
	VS
	VSN
	VZ
	VURU
	// adjectives
	Aauo
	Ai
	ANAS
	ATII
	ABES
	// nominal predicates
	Nda
	Nna
	Nno
	Ntar
	Nni
	Nemp
	Nto
	Exp
	// conjugation forms
	Stem
	UStem
	NStem
	Neg
	Cont
	Term
	Attr
	Hyp
	Imper
	Pre
	NTerm
	NegL
	TeForm
	NiForm
	EuphT
	EuphD
	ModU
	ModD
	ModS
	ModM
	VoR
	VoS
	VoE
	// binary values
	P
	M
	// case
	Nc
	Ga
	O
	Ni
	To
	Niyotte
	No
	// clause types
	ToCL
	YooniCL
	Decl
)

var FeatureValues = util.NewEnumSetOf(
	"V5k", "V5s", "V5t", "V5n", "V5m", "V5r", "V5w", "V5g", "V5z", "V5b",
	"V5IKU", "V5YUK", "V5ARU", "V5NAS", "V5TOW", "V1", "VK", "VS", "VSN", "VZ", "VURU",
	"Aauo", "Ai", "ANAS", "ATII", "ABES",
	"Nda", "Nna", "Nno", "Ntar", "Nni", "Nemp", "Nto", "Exp",
	"Stem", "UStem", "NStem", "Neg", "Cont", "Term", "Attr", "Hyp", "Imper", "Pre",
	"NTerm", "NegL", "TeForm", "NiForm", "EuphT", "EuphD", "ModU", "ModD", "ModS", "ModM",
	"VoR", "VoS", "VoE",
	"P", "M",
	"Nc", "Ga", "O", "Ni", "To", "Niyotte", "No",
	"ToCL", "YooniCL", "Decl",
)

func (v FeatureValue) String() string {
	return FeatureValues.ValueOf(int(v))
}

func ParseFeatureValue(name string) (FeatureValue, error) {
	i, exists := FeatureValues.IndexOf(name)
	if !exists {
		return 0, fmt.Errorf("unknown feature value %q", name)
	}
	return FeatureValue(i), nil
}

// ValueSet is an unordered set of feature values.
type ValueSet [2]uint64

func NewValueSet(vs ...FeatureValue) ValueSet {
	var s ValueSet
	for _, v := range vs {
		s[v>>6] |= 1 << (v & 63)
	}
	return s
}

func (s ValueSet) Has(v FeatureValue) bool {
	return s[v>>6]&(1<<(v&63)) != 0
}

func (s ValueSet) Intersect(o ValueSet) ValueSet {
	return ValueSet{s[0] & o[0], s[1] & o[1]}
}

func (s ValueSet) Union(o ValueSet) ValueSet {
	return ValueSet{s[0] | o[0], s[1] | o[1]}
}

func (s ValueSet) IsEmpty() bool {
	return s[0] == 0 && s[1] == 0
}

func (s ValueSet) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1])
}

// Values lists the members in enumeration order.
func (s ValueSet) Values() []FeatureValue {
	retval := make([]FeatureValue, 0, s.Len())
	for i := 0; i < FeatureValues.Len(); i++ {
		if s.Has(FeatureValue(i)) {
			retval = append(retval, FeatureValue(i))
		}
	}
	return retval
}

func (s ValueSet) String() string {
	vs := s.Values()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.String()
	}
	return strings.Join(names, ",")
}

// Feature is one slot of a feature list: a fixed value set, or a value set
// shared between all slots carrying the same index.
type Feature struct {
	Shared bool
	Index  int
	Values ValueSet
}

func F(vs ...FeatureValue) Feature {
	return Feature{Values: NewValueSet(vs...)}
}

func SF(i int, vs ...FeatureValue) Feature {
	return Feature{Shared: true, Index: i, Values: NewValueSet(vs...)}
}

func Fixed(s ValueSet) Feature {
	return Feature{Values: s}
}

func Shared(i int, s ValueSet) Feature {
	return Feature{Shared: true, Index: i, Values: s}
}

func (f Feature) String() string {
	if f.Shared {
		return fmt.Sprintf("%d:[%v]", f.Index, f.Values)
	}
	return "[" + f.Values.String() + "]"
}

func featuresString(fs []Feature) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}
