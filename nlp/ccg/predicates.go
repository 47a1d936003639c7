package ccg

var bunsetsuForms = NewValueSet(Cont, Term, Attr, Hyp, Imper, Pre, NTerm, NStem, TeForm, NiForm)

// IsBase is true for categories that are neither functors nor variables
// standing for functors.
func (c *Category) IsBase() bool {
	switch c.Kind {
	case Forward, Backward:
		return false
	case Var:
		return c.Exact || c.Restriction.IsBase()
	default:
		return true
	}
}

// IsNoncaseNP is true for NP whose case slot admits Nc.
func (c *Category) IsNoncaseNP() bool {
	if c.Kind != NP || len(c.Features) == 0 {
		return false
	}
	return c.Features[0].Values.Has(Nc)
}

// IsArgument is true for case-marked NP and for any Sbar.
func (c *Category) IsArgument() bool {
	switch c.Kind {
	case NP:
		return !c.IsNoncaseNP()
	case Sbar:
		return true
	default:
		return false
	}
}

// IsTNoncaseNP matches T\NP[Nc].
func (c *Category) IsTNoncaseNP() bool {
	return c.Kind == Backward && c.Result.Kind == Var && c.Arg.IsNoncaseNP()
}

// IsBunsetsu is true when c may stand right before a clause-internal
// punctuation mark.
func (c *Category) IsBunsetsu() bool {
	switch c.Kind {
	case Forward, Backward:
		return c.Result.IsBunsetsu()
	case LPAREN, N:
		return false
	case S:
		if len(c.Features) > 1 {
			return !c.Features[1].Values.Intersect(bunsetsuForms).IsEmpty()
		}
		return true
	default:
		return true
	}
}

func (c *Category) EndsWithT() bool {
	switch c.Kind {
	case Forward:
		return c.Result.EndsWithT()
	case Var:
		return true
	default:
		return false
	}
}

func (c *Category) IsNStem() bool {
	switch c.Kind {
	case Backward:
		return c.Result.IsNStem()
	case S:
		return len(c.Features) > 1 && c.Features[1].Values.Has(NStem)
	default:
		return false
	}
}

// NumberOfArguments counts the slashes along the result spine.
func (c *Category) NumberOfArguments() int {
	if c.IsFunctor() {
		return 1 + c.Result.NumberOfArguments()
	}
	return 0
}
