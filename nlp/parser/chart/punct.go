package chart

import (
	"strings"
	"unicode"

	"lightblue/nlp/ccg"
)

const (
	dropped    = "！？!?…「」◎○●▲△▼▽■□◆◇★☆※†‡."
	commaLike  = "，,-―?／＼"
	punctScore = 100
)

// Purify removes whitespace and symbols the grammar ignores, and maps comma
// variants to 、.
func Purify(sentence string) string {
	var b strings.Builder
	for _, c := range sentence {
		switch {
		case unicode.IsSpace(c), strings.ContainsRune(dropped, c):
		case strings.ContainsRune(commaLike, c):
			b.WriteRune('、')
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

// closeSpans copies the bunsetsu-final candidates of every span ending at i
// to the span that also covers the punctuation mark at i.
func closeSpans(chart Chart, i int) {
	var ending []Position
	for p := range chart {
		if p.J == i {
			ending = append(ending, p)
		}
	}
	for _, p := range ending {
		var kept []*ccg.Node
		for _, n := range chart[p] {
			if n.Cat.IsBunsetsu() {
				kept = append(kept, n)
			}
		}
		chart[Position{p.I, i + 1}] = kept
	}
}

func andCONJ(c string) *ccg.Node {
	return ccg.LexicalItem(c, "punct", punctScore, ccg.CatCONJ)
}

// emptyCM reads a comma as an elided ga or o case marker.
func emptyCM(c string) *ccg.Node {
	return ccg.LexicalItem(c, "punct", punctScore-1, ccg.Bwd(ccg.TypeRaised(ccg.Ga, ccg.O), ccg.NewNP(ccg.F(ccg.Nc))))
}
