package ccg

// Penalty holds the log-score discounts of the crossed rules.
type Penalty struct {
	CrossedComposition1 float64
	CrossedComposition2 float64
	CrossedSubstitution float64
}

var DefaultPenalty = Penalty{
	CrossedComposition1: 2,
	CrossedComposition2: 3,
	CrossedSubstitution: 2,
}

type Rules struct {
	Penalty Penalty
}

var DefaultRules = &Rules{Penalty: DefaultPenalty}

func NewRules(p Penalty) *Rules {
	return &Rules{Penalty: p}
}

type binaryRule func(*Rules, *Node, *Node) []*Node

var binaryRules = []binaryRule{
	(*Rules).ForwardApplication,
	(*Rules).BackwardApplication,
	(*Rules).ForwardComposition1,
	(*Rules).BackwardComposition1,
	(*Rules).ForwardComposition2,
	(*Rules).BackwardComposition2,
	(*Rules).ForwardComposition3,
	(*Rules).BackwardComposition3,
	(*Rules).ForwardCrossedComposition1,
	(*Rules).ForwardCrossedComposition2,
	(*Rules).ForwardCrossedSubstitution,
}

// Binary applies every binary rule to l and r, in a fixed order.
func (rs *Rules) Binary(l, r *Node) []*Node {
	var retval []*Node
	for _, rule := range binaryRules {
		retval = append(retval, rule(rs, l, r)...)
	}
	return retval
}

// Unary is the hook for type-changing rules; there are none.
func (rs *Rules) Unary(n *Node) []*Node {
	return nil
}

func offset(l, r *Node) int {
	return 1 + max(MaxIndex(l.Cat), MaxIndex(r.Cat))
}

func combine(rule RuleSymbol, l, r *Node, cat *Category, penalty float64) []*Node {
	return []*Node{{
		Rule:      rule,
		PF:        l.PF + r.PF,
		Cat:       cat,
		Daughters: []*Node{l, r},
		LogScore:  l.LogScore + r.LogScore - penalty,
	}}
}

// peel returns the categories along the result spine of c: for depth 2 and
// c = (a|b)|d it returns [a, b, d]. All slashes must be of the given kind.
func peel(c *Category, kind Kind, depth int) ([]*Category, bool) {
	args := make([]*Category, depth)
	for k := depth - 1; k >= 0; k-- {
		if c.Kind != kind {
			return nil, false
		}
		args[k] = c.Arg
		c = c.Result
	}
	return append([]*Category{c}, args...), true
}

func wrapSlashes(kind Kind, head *Category, args []*Category) *Category {
	for _, a := range args {
		head = &Category{Kind: kind, Result: head, Arg: a}
	}
	return head
}

// X/Y  Y  =>  X
func (rs *Rules) ForwardApplication(l, r *Node) []*Node {
	if l.Cat.Kind != Forward || l.Rule.IsForwardComposition() {
		return nil
	}
	x, y1 := l.Cat.Result, l.Cat.Arg
	if y1.Kind == Var && y1.Exact {
		return nil
	}
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, r.Cat, ShiftIndex(y1, inc))
	if !ok {
		return nil
	}
	return combine(FFA, l, r, Substitute(sub, ShiftIndex(x, inc)), 0)
}

// Y  X\Y  =>  X
func (rs *Rules) BackwardApplication(l, r *Node) []*Node {
	if r.Cat.Kind != Backward || r.Rule.IsBackwardComposition() {
		return nil
	}
	x, y2 := r.Cat.Result, r.Cat.Arg
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, l.Cat, ShiftIndex(y2, inc))
	if !ok {
		return nil
	}
	return combine(BFA, l, r, Substitute(sub, ShiftIndex(x, inc)), 0)
}

// forwardComposition implements X/Y  (Y/Z1)../Zn  =>  (X/Z1)../Zn. maxArgs
// caps the arguments of Z1 after substitution.
func (rs *Rules) forwardComposition(rule RuleSymbol, depth, maxArgs int, l, r *Node) []*Node {
	if l.Cat.Kind != Forward || l.Rule.IsForwardComposition() {
		return nil
	}
	x, y1 := l.Cat.Result, l.Cat.Arg
	if y1.IsTNoncaseNP() {
		return nil
	}
	spine, ok := peel(r.Cat, Forward, depth)
	if !ok {
		return nil
	}
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, spine[0], ShiftIndex(y1, inc))
	if !ok {
		return nil
	}
	zs := spine[1:]
	if Substitute(sub, zs[0]).NumberOfArguments() > maxArgs {
		return nil
	}
	return combine(rule, l, r, Substitute(sub, wrapSlashes(Forward, ShiftIndex(x, inc), zs)), 0)
}

func (rs *Rules) ForwardComposition1(l, r *Node) []*Node {
	return rs.forwardComposition(FFC1, 1, 3, l, r)
}

func (rs *Rules) ForwardComposition2(l, r *Node) []*Node {
	return rs.forwardComposition(FFC2, 2, 2, l, r)
}

func (rs *Rules) ForwardComposition3(l, r *Node) []*Node {
	return rs.forwardComposition(FFC3, 3, 1, l, r)
}

// backwardComposition implements (Y\Z1)..\Zn  X\Y  =>  (X\Z1)..\Zn.
func (rs *Rules) backwardComposition(rule RuleSymbol, depth, maxArgs int, l, r *Node) []*Node {
	if r.Cat.Kind != Backward || r.Rule.IsBackwardComposition() {
		return nil
	}
	x, y2 := r.Cat.Result, r.Cat.Arg
	spine, ok := peel(l.Cat, Backward, depth)
	if !ok {
		return nil
	}
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, spine[0], ShiftIndex(y2, inc))
	if !ok {
		return nil
	}
	zs := spine[1:]
	if Substitute(sub, zs[0]).NumberOfArguments() > maxArgs {
		return nil
	}
	return combine(rule, l, r, Substitute(sub, wrapSlashes(Backward, ShiftIndex(x, inc), zs)), 0)
}

func (rs *Rules) BackwardComposition1(l, r *Node) []*Node {
	return rs.backwardComposition(BFC1, 1, 3, l, r)
}

func (rs *Rules) BackwardComposition2(l, r *Node) []*Node {
	return rs.backwardComposition(BFC2, 2, 2, l, r)
}

func (rs *Rules) BackwardComposition3(l, r *Node) []*Node {
	return rs.backwardComposition(BFC3, 3, 1, l, r)
}

// X/Y  Y\Z  =>  X\Z, Z an argument category.
func (rs *Rules) ForwardCrossedComposition1(l, r *Node) []*Node {
	if l.Cat.Kind != Forward || r.Cat.Kind != Backward || l.Rule.IsForwardComposition() {
		return nil
	}
	x, y1 := l.Cat.Result, l.Cat.Arg
	y2, z := r.Cat.Result, r.Cat.Arg
	if y1.IsTNoncaseNP() || !z.IsArgument() {
		return nil
	}
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, y2, ShiftIndex(y1, inc))
	if !ok {
		return nil
	}
	cat := Substitute(sub, Bwd(ShiftIndex(x, inc), z))
	return combine(FFCx1, l, r, cat, rs.Penalty.CrossedComposition1)
}

// X/Y  (Y\Z1)\Z2  =>  (X\Z1)\Z2, Z1 and Z2 argument categories.
func (rs *Rules) ForwardCrossedComposition2(l, r *Node) []*Node {
	if l.Cat.Kind != Forward || l.Rule.IsForwardComposition() {
		return nil
	}
	spine, ok := peel(r.Cat, Backward, 2)
	if !ok {
		return nil
	}
	x, y1 := l.Cat.Result, l.Cat.Arg
	y2, z1, z2 := spine[0], spine[1], spine[2]
	if y1.IsTNoncaseNP() || !z1.IsArgument() || !z2.IsArgument() {
		return nil
	}
	inc := offset(l, r)
	_, sub, ok := Unify(Substitution{}, nil, ShiftIndex(y1, inc), y2)
	if !ok {
		return nil
	}
	if Substitute(sub, z1).NumberOfArguments() > 2 {
		return nil
	}
	cat := Substitute(sub, Bwd(Bwd(ShiftIndex(x, inc), z1), z2))
	return combine(FFCx2, l, r, cat, rs.Penalty.CrossedComposition2)
}

// (X/Y)\Z1  Y\Z2  =>  X\Z, Z the unification of Z1 and Z2.
func (rs *Rules) ForwardCrossedSubstitution(l, r *Node) []*Node {
	if l.Cat.Kind != Backward || l.Cat.Result.Kind != Forward || r.Cat.Kind != Backward {
		return nil
	}
	x, y1, z1 := l.Cat.Result.Result, l.Cat.Result.Arg, l.Cat.Arg
	y2, z2 := r.Cat.Result, r.Cat.Arg
	if !z1.IsArgument() || !z2.IsArgument() {
		return nil
	}
	inc := offset(l, r)
	z, sub, ok := Unify(Substitution{}, nil, ShiftIndex(z1, inc), z2)
	if !ok {
		return nil
	}
	_, sub, ok = Unify(sub, nil, ShiftIndex(y1, inc), y2)
	if !ok {
		return nil
	}
	cat := Substitute(sub, Bwd(ShiftIndex(x, inc), z))
	return combine(FFSx, l, r, cat, rs.Penalty.CrossedSubstitution)
}

// Coordinable reports whether two conjuncts unify once renamed apart.
func Coordinable(a, b *Category) bool {
	_, _, ok := Unify(Substitution{}, nil, a, ShiftIndex(b, 1+MaxIndex(a)))
	return ok
}

// X  CONJ  X  =>  X
func (rs *Rules) Coordination(l, c, r *Node) []*Node {
	if c.Cat.Kind != CONJ || l.Rule == COORD {
		return nil
	}
	if !(r.Cat.EndsWithT() || r.Cat.IsNStem()) || !Coordinable(l.Cat, r.Cat) {
		return nil
	}
	return []*Node{{
		Rule:      COORD,
		PF:        l.PF + c.PF + r.PF,
		Cat:       r.Cat,
		Daughters: []*Node{l, c, r},
		LogScore:  l.LogScore + r.LogScore,
	}}
}

// LPAREN  X  RPAREN  =>  X
func (rs *Rules) Parenthesis(l, c, r *Node) []*Node {
	if l.Cat.Kind != LPAREN || r.Cat.Kind != RPAREN {
		return nil
	}
	return []*Node{{
		Rule:      PAREN,
		PF:        l.PF + c.PF + r.PF,
		Cat:       c.Cat,
		Daughters: []*Node{l, c, r},
		LogScore:  c.LogScore,
	}}
}
