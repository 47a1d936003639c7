package ccg

import "fmt"

type Kind uint8

const (
	S Kind = iota
	NP
	N
	Sbar
	CONJ
	LPAREN
	RPAREN
	Forward
	Backward
	Var
)

var kindNames = [...]string{"S", "NP", "N", "Sbar", "CONJ", "LPAREN", "RPAREN", "/", "\\", "T"}

func (k Kind) String() string {
	return kindNames[k]
}

// Category is an immutable CCG category. Result and Arg are set for
// Forward (Result/Arg) and Backward (Result\Arg); Exact, Index and
// Restriction for Var; Features for S, NP and Sbar.
type Category struct {
	Kind        Kind
	Features    []Feature
	Result, Arg *Category

	Exact       bool
	Index       int
	Restriction *Category
}

var (
	CatN      = &Category{Kind: N}
	CatCONJ   = &Category{Kind: CONJ}
	CatLPAREN = &Category{Kind: LPAREN}
	CatRPAREN = &Category{Kind: RPAREN}
)

func NewS(fs ...Feature) *Category {
	return &Category{Kind: S, Features: fs}
}

func NewNP(fs ...Feature) *Category {
	return &Category{Kind: NP, Features: fs}
}

func NewSbar(fs ...Feature) *Category {
	return &Category{Kind: Sbar, Features: fs}
}

// Fwd builds x/y.
func Fwd(x, y *Category) *Category {
	return &Category{Kind: Forward, Result: x, Arg: y}
}

// Bwd builds x\y.
func Bwd(x, y *Category) *Category {
	return &Category{Kind: Backward, Result: x, Arg: y}
}

func NewVar(exact bool, index int, restriction *Category) *Category {
	return &Category{Kind: Var, Exact: exact, Index: index, Restriction: restriction}
}

func (c *Category) HasFeatures() bool {
	return c.Kind == S || c.Kind == NP || c.Kind == Sbar
}

func (c *Category) IsFunctor() bool {
	return c.Kind == Forward || c.Kind == Backward
}

func (c *Category) withFeatures(fs []Feature) *Category {
	return &Category{Kind: c.Kind, Features: fs}
}

func (c *Category) String() string {
	switch c.Kind {
	case S, NP, Sbar:
		return c.Kind.String() + featuresString(c.Features)
	case Forward, Backward:
		return fmt.Sprintf("(%v%v%v)", c.Result, c.Kind, c.Arg)
	case Var:
		exact := ""
		if c.Exact {
			exact = "!"
		}
		return fmt.Sprintf("T%s%d<%v>", exact, c.Index, c.Restriction)
	default:
		return c.Kind.String()
	}
}

// MaxIndex is the largest variable or shared feature index in c, 0 if none.
func MaxIndex(c *Category) int {
	switch c.Kind {
	case Var:
		return max(c.Index, MaxIndex(c.Restriction))
	case Forward, Backward:
		return max(MaxIndex(c.Result), MaxIndex(c.Arg))
	case S, NP, Sbar:
		return maxFeatureIndex(c.Features)
	default:
		return 0
	}
}

func maxFeatureIndex(fs []Feature) int {
	retval := 0
	for _, f := range fs {
		if f.Shared && f.Index > retval {
			retval = f.Index
		}
	}
	return retval
}

// ShiftIndex renames every variable and shared feature index i to i+offset.
func ShiftIndex(c *Category, offset int) *Category {
	if offset == 0 {
		return c
	}
	switch c.Kind {
	case Var:
		return NewVar(c.Exact, c.Index+offset, ShiftIndex(c.Restriction, offset))
	case Forward, Backward:
		return &Category{Kind: c.Kind, Result: ShiftIndex(c.Result, offset), Arg: ShiftIndex(c.Arg, offset)}
	case S, NP, Sbar:
		fs := make([]Feature, len(c.Features))
		for i, f := range c.Features {
			if f.Shared {
				f.Index += offset
			}
			fs[i] = f
		}
		return c.withFeatures(fs)
	default:
		return c
	}
}

// Equivalent reports structural equality up to a consistent renaming of
// variable indices and of shared feature indices.
func Equivalent(a, b *Category) bool {
	r := &renaming{
		cats:  [2]map[int]int{{}, {}},
		feats: [2]map[int]int{{}, {}},
	}
	return r.equivalent(a, b)
}

type renaming struct {
	cats, feats [2]map[int]int
}

func (r *renaming) pair(m [2]map[int]int, i, j int) bool {
	if to, exists := m[0][i]; exists {
		return to == j
	}
	if from, exists := m[1][j]; exists {
		return from == i
	}
	m[0][i] = j
	m[1][j] = i
	return true
}

func (r *renaming) equivalent(a, b *Category) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Var:
		return a.Exact == b.Exact && r.pair(r.cats, a.Index, b.Index) && r.equivalent(a.Restriction, b.Restriction)
	case Forward, Backward:
		return r.equivalent(a.Result, b.Result) && r.equivalent(a.Arg, b.Arg)
	case S, NP, Sbar:
		if len(a.Features) != len(b.Features) {
			return false
		}
		for i, fa := range a.Features {
			fb := b.Features[i]
			if fa.Shared != fb.Shared || fa.Values != fb.Values {
				return false
			}
			if fa.Shared && !r.pair(r.feats, fa.Index, fb.Index) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
