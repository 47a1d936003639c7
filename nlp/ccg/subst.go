package ccg

// SubstEntry is either a link to another index or a bound value.
type SubstEntry[T any] struct {
	Link   bool
	Target int
	Value  T
}

func LinkEntry[T any](j int) SubstEntry[T] {
	return SubstEntry[T]{Link: true, Target: j}
}

func ValueEntry[T any](v T) SubstEntry[T] {
	return SubstEntry[T]{Value: v}
}

type binding[T any] struct {
	index int
	entry SubstEntry[T]
	next  *binding[T]
}

// Assignment is a persistent association list from index to entry. The
// newest binding of an index shadows older ones; the zero value is empty.
type Assignment[T any] struct {
	head *binding[T]
	size int
}

func (a Assignment[T]) Alter(i int, e SubstEntry[T]) Assignment[T] {
	return Assignment[T]{head: &binding[T]{i, e, a.head}, size: a.size + 1}
}

func (a Assignment[T]) Lookup(i int) (SubstEntry[T], bool) {
	for b := a.head; b != nil; b = b.next {
		if b.index == i {
			return b.entry, true
		}
	}
	var zero SubstEntry[T]
	return zero, false
}

// Fetch resolves index i, following links to lower indices. It returns the
// index reached and its value, or def when that index is unbound.
func (a Assignment[T]) Fetch(i int, def T) (int, T) {
	for {
		e, exists := a.Lookup(i)
		switch {
		case !exists:
			return i, def
		case e.Link && e.Target < i:
			i = e.Target
		case e.Link:
			return i, def
		default:
			return i, e.Value
		}
	}
}

// Len counts bindings including shadowed ones.
func (a Assignment[T]) Len() int {
	return a.size
}

func (a Assignment[T]) IsEmpty() bool {
	return a.head == nil
}

// Substitution holds category variable and shared feature bindings for a
// single unification problem.
type Substitution struct {
	Cats  Assignment[*Category]
	Feats Assignment[ValueSet]
}

func (s Substitution) IsEmpty() bool {
	return s.Cats.IsEmpty() && s.Feats.IsEmpty()
}

func (s Substitution) deref(c *Category) *Category {
	if c.Kind != Var {
		return c
	}
	_, v := s.Cats.Fetch(c.Index, c)
	return v
}

// Substitute applies s to every variable and shared feature of c.
func Substitute(s Substitution, c *Category) *Category {
	switch c.Kind {
	case Var:
		j, v := s.Cats.Fetch(c.Index, c)
		if v == c {
			return NewVar(c.Exact, j, substituteFeatures(s, c.Restriction))
		}
		return substituteFeatures(s, v)
	case Forward, Backward:
		return &Category{Kind: c.Kind, Result: Substitute(s, c.Result), Arg: Substitute(s, c.Arg)}
	case S, NP, Sbar:
		return c.withFeatures(SubstituteFeatures(s, c.Features))
	default:
		return c
	}
}

// substituteFeatures rewrites the shared features of an already bound value
// without resolving its variables again.
func substituteFeatures(s Substitution, c *Category) *Category {
	switch c.Kind {
	case Forward, Backward:
		return &Category{Kind: c.Kind, Result: substituteFeatures(s, c.Result), Arg: substituteFeatures(s, c.Arg)}
	case Var:
		return NewVar(c.Exact, c.Index, substituteFeatures(s, c.Restriction))
	case S, NP, Sbar:
		return c.withFeatures(SubstituteFeatures(s, c.Features))
	default:
		return c
	}
}

func SubstituteFeatures(s Substitution, fs []Feature) []Feature {
	retval := make([]Feature, len(fs))
	for i, f := range fs {
		if f.Shared {
			j, v := s.Feats.Fetch(f.Index, f.Values)
			f = Shared(j, v)
		}
		retval[i] = f
	}
	return retval
}
