package ccg

func banIndex(banned []int, i int) []int {
	retval := make([]int, len(banned)+1)
	retval[0] = i
	copy(retval[1:], banned)
	return retval
}

func isBanned(banned []int, i int) bool {
	for _, b := range banned {
		if b == i {
			return true
		}
	}
	return false
}

// occurs reports whether c, read through sub, mentions a variable with one
// of the given indices.
func occurs(sub Substitution, c *Category, indices []int) bool {
	return occursIn(sub, c, indices, nil)
}

func occursIn(sub Substitution, c *Category, indices, seen []int) bool {
	switch c.Kind {
	case Var:
		j, v := sub.Cats.Fetch(c.Index, c)
		if isBanned(indices, c.Index) || isBanned(indices, j) {
			return true
		}
		if isBanned(seen, j) {
			return false
		}
		seen = banIndex(seen, j)
		if v.Kind == Var {
			if v.Index != j && isBanned(indices, v.Index) {
				return true
			}
			return occursIn(sub, v.Restriction, indices, seen)
		}
		return occursIn(sub, v, indices, seen)
	case Forward, Backward:
		return occursIn(sub, c.Result, indices, seen) || occursIn(sub, c.Arg, indices, seen)
	default:
		return false
	}
}

// Unify computes the most general category subsuming c1 and c2 under sub.
// Indices in banned may not be bound again; this keeps a variable from
// unifying with a structure that contains it. The operand order does not
// matter up to renaming.
func Unify(sub Substitution, banned []int, c1, c2 *Category) (*Category, Substitution, bool) {
	return unify(sub, banned, sub.deref(c1), sub.deref(c2))
}

func unify(sub Substitution, banned []int, c1, c2 *Category) (*Category, Substitution, bool) {
	switch {
	case c1.Kind == Var && c2.Kind == Var:
		return unifyVars(sub, banned, c1, c2)
	case c1.Kind == Var:
		return bindVar(sub, banned, c1, c2)
	case c2.Kind == Var:
		return bindVar(sub, banned, c2, c1)
	case c1.Kind != c2.Kind:
		return nil, sub, false
	}
	switch c1.Kind {
	case S, NP, Sbar:
		fs, sub2, ok := UnifyFeatures(sub, c1.Features, c2.Features)
		if !ok {
			return nil, sub, false
		}
		return c1.withFeatures(fs), sub2, true
	case Forward, Backward:
		arg, sub2, ok := Unify(sub, banned, c1.Arg, c2.Arg)
		if !ok {
			return nil, sub, false
		}
		res, sub3, ok := Unify(sub2, banned, c1.Result, c2.Result)
		if !ok {
			return nil, sub, false
		}
		return &Category{Kind: c1.Kind, Result: res, Arg: arg}, sub3, true
	default:
		return c1, sub, true
	}
}

func unifyVars(sub Substitution, banned []int, v1, v2 *Category) (*Category, Substitution, bool) {
	i, j := v1.Index, v2.Index
	if isBanned(banned, i) || isBanned(banned, j) {
		return nil, sub, false
	}
	if i == j {
		return v1, sub, true
	}
	lo, hi := min(i, j), max(i, j)
	inner := banIndex(banned, lo)
	var (
		r    *Category
		sub2 Substitution
		ok   bool
	)
	switch {
	case v1.Exact == v2.Exact:
		r, sub2, ok = unify(sub, inner, v1.Restriction, v2.Restriction)
	case v1.Exact:
		r, sub2, ok = UnifyWithHead(sub, inner, v1.Restriction, v2.Restriction)
	default:
		r, sub2, ok = UnifyWithHead(sub, inner, v2.Restriction, v1.Restriction)
	}
	if !ok || occurs(sub2, r, banIndex(inner, hi)) {
		return nil, sub, false
	}
	result := NewVar(v1.Exact && v2.Exact, lo, r)
	sub2.Cats = sub2.Cats.Alter(hi, LinkEntry[*Category](lo)).Alter(lo, ValueEntry(result))
	return result, sub2, true
}

func bindVar(sub Substitution, banned []int, v, c *Category) (*Category, Substitution, bool) {
	if isBanned(banned, v.Index) {
		return nil, sub, false
	}
	var (
		r    *Category
		sub2 Substitution
		ok   bool
	)
	if v.Exact {
		r, sub2, ok = UnifyWithHead(sub, banIndex(banned, v.Index), v.Restriction, c)
	} else {
		r, sub2, ok = Unify(sub, banIndex(banned, v.Index), v.Restriction, c)
	}
	if !ok || occurs(sub2, r, banIndex(banned, v.Index)) {
		return nil, sub, false
	}
	sub2.Cats = sub2.Cats.Alter(v.Index, ValueEntry(r))
	return r, sub2, true
}

// UnifyWithHead unifies c1 with the head of c2: the slashes of c2 are peeled
// off and put back around the unified head unchanged.
func UnifyWithHead(sub Substitution, banned []int, c1, c2 *Category) (*Category, Substitution, bool) {
	switch c2.Kind {
	case Forward, Backward:
		head, sub2, ok := UnifyWithHead(sub, banned, c1, c2.Result)
		if !ok {
			return nil, sub, false
		}
		return &Category{Kind: c2.Kind, Result: head, Arg: c2.Arg}, sub2, true
	case Var:
		if isBanned(banned, c2.Index) {
			return nil, sub, false
		}
		inner := banIndex(banned, c2.Index)
		r, sub2, ok := Unify(sub, inner, c1, c2.Restriction)
		if !ok || occurs(sub2, r, inner) {
			return nil, sub, false
		}
		result := NewVar(c2.Exact, c2.Index, r)
		sub2.Cats = sub2.Cats.Alter(c2.Index, ValueEntry(result))
		return result, sub2, true
	default:
		return Unify(sub, banned, c1, c2)
	}
}

// UnifyFeatures unifies two feature lists slot by slot.
func UnifyFeatures(sub Substitution, f1, f2 []Feature) ([]Feature, Substitution, bool) {
	if len(f1) != len(f2) {
		return nil, sub, false
	}
	retval := make([]Feature, len(f1))
	cur := sub
	for k := range f1 {
		f, next, ok := UnifyFeature(cur, f1[k], f2[k])
		if !ok {
			return nil, sub, false
		}
		retval[k] = f
		cur = next
	}
	return retval, cur, true
}

func UnifyFeature(sub Substitution, f1, f2 Feature) (Feature, Substitution, bool) {
	fsub := sub.Feats
	switch {
	case f1.Shared && f2.Shared:
		i, v1 := fsub.Fetch(f1.Index, f1.Values)
		j, v2 := fsub.Fetch(f2.Index, f2.Values)
		v3 := v1.Intersect(v2)
		if v3.IsEmpty() {
			return Feature{}, sub, false
		}
		if i == j {
			sub.Feats = fsub.Alter(i, ValueEntry(v3))
			return Shared(i, v3), sub, true
		}
		lo, hi := min(i, j), max(i, j)
		sub.Feats = fsub.Alter(lo, ValueEntry(v3)).Alter(hi, LinkEntry[ValueSet](lo))
		return Shared(lo, v3), sub, true
	case f1.Shared:
		i, v1 := fsub.Fetch(f1.Index, f1.Values)
		v3 := v1.Intersect(f2.Values)
		if v3.IsEmpty() {
			return Feature{}, sub, false
		}
		sub.Feats = fsub.Alter(i, ValueEntry(v3))
		return Shared(i, v3), sub, true
	case f2.Shared:
		return UnifyFeature(sub, f2, f1)
	default:
		v3 := f1.Values.Intersect(f2.Values)
		if v3.IsEmpty() {
			return Feature{}, sub, false
		}
		return Fixed(v3), sub, true
	}
}

// Unifiable reports whether two feature lists unify from scratch.
func Unifiable(f1, f2 []Feature) bool {
	_, _, ok := UnifyFeatures(Substitution{}, f1, f2)
	return ok
}
