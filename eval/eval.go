package eval

import (
	"fmt"

	"lightblue/nlp/parser/chart"
)

func Ratio(part, all int) float64 {
	if all == 0 {
		return 0
	}
	return float64(part) / float64(all)
}

// Result counts parse outcomes over a corpus and remembers the sentences
// that got no derivation at all.
type Result struct {
	Full, Partial, Failed int
	Failures              []string
}

func (r *Result) Add(outcome chart.Outcome) {
	switch outcome {
	case chart.Full:
		r.Full++
	case chart.Partial:
		r.Partial++
	default:
		r.Failed++
	}
}

func (r *Result) AddSentence(sentence string, outcome chart.Outcome) {
	r.Add(outcome)
	if outcome == chart.Failed {
		r.Failures = append(r.Failures, sentence)
	}
}

func (r *Result) All() int {
	return r.Full + r.Partial + r.Failed
}

// Coverage is the share of sentences with a full derivation.
func (r *Result) Coverage() float64 {
	return Ratio(r.Full, r.All())
}

// PartialCoverage also counts sentences covered by conjoined fragments.
func (r *Result) PartialCoverage() float64 {
	return Ratio(r.Full+r.Partial, r.All())
}

func (r *Result) String() string {
	return fmt.Sprintf("Sentences %d Full %d Partial %d Failed %d Coverage %.2f%% (with partial %.2f%%)",
		r.All(), r.Full, r.Partial, r.Failed, 100*r.Coverage(), 100*r.PartialCoverage())
}
