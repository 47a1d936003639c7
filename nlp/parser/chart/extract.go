package chart

import (
	"sort"

	"lightblue/nlp/ccg"
)

type Outcome int

const (
	Failed Outcome = iota
	Full
	Partial
)

var outcomeNames = [...]string{"failed", "full", "partial"}

func (o Outcome) String() string {
	return outcomeNames[o]
}

type ParseResult struct {
	Outcome Outcome
	Nodes   []*ccg.Node
}

// numberOfArgs ranks categories as parse results; lower is better and
// non-propositional categories come last.
func numberOfArgs(c *ccg.Category) int {
	switch c.Kind {
	case ccg.Forward, ccg.Backward:
		return numberOfArgs(c.Result) + 1
	case ccg.Var:
		return numberOfArgs(c.Restriction)
	case ccg.S:
		return 1
	case ccg.NP:
		return 10
	case ccg.Sbar:
		return 0
	case ccg.N:
		return 2
	default:
		return 100
	}
}

func sortByNumberOfArgs(nodes []*ccg.Node) []*ccg.Node {
	retval := make([]*ccg.Node, len(nodes))
	copy(retval, nodes)
	sort.SliceStable(retval, func(a, b int) bool {
		na, nb := numberOfArgs(retval[a].Cat), numberOfArgs(retval[b].Cat)
		if na != nb {
			return na < nb
		}
		return retval[a].LogScore > retval[b].LogScore
	})
	return retval
}

func wrapAll(nodes []*ccg.Node) []*ccg.Node {
	retval := make([]*ccg.Node, len(nodes))
	for k, n := range nodes {
		retval[k] = ccg.Wrap(n)
	}
	return retval
}

// ExtractParseResult picks the best ranked span. A span starting at 0 gives
// a full result; otherwise the preceding spans are conjoined right to left
// into a partial one.
func ExtractParseResult(beamWidth int, chart Chart) ParseResult {
	positions := chart.Positions()
	if len(positions) == 0 {
		return ParseResult{Outcome: Failed}
	}
	top := positions[0]
	nodes := chart[top]
	if len(nodes) == 0 {
		return ParseResult{Outcome: Failed}
	}
	results := wrapAll(sortByNumberOfArgs(nodes))
	if top.I == 0 {
		return ParseResult{Outcome: Full, Nodes: results}
	}
	rest := before(positions[1:], top.I)
	for len(rest) > 0 {
		p := rest[0]
		left := chart[p]
		if len(left) == 0 {
			rest = rest[1:]
			continue
		}
		wrapped := wrapAll(left)
		joined := make([]*ccg.Node, 0, len(results)*len(wrapped))
		for _, y := range results {
			for _, x := range wrapped {
				joined = append(joined, ccg.Conjoin(x, y))
			}
		}
		if len(joined) > beamWidth {
			joined = joined[:beamWidth]
		}
		results = joined
		rest = before(rest[1:], p.I)
	}
	return ParseResult{Outcome: Partial, Nodes: results}
}

func before(positions []Position, i int) []Position {
	var retval []Position
	for _, p := range positions {
		if p.J <= i {
			retval = append(retval, p)
		}
	}
	return retval
}
