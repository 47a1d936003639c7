package ccg

import (
	"fmt"
	"math"
	"strings"

	"lightblue/util"
)

type RuleSymbol uint8

const (
	LEX RuleSymbol = iota
	EC
	FFA
	BFA
	FFC1
	BFC1
	FFC2
	BFC2
	FFC3
	BFC3
	FFCx1
	FFCx2
	FFSx
	COORD
	PAREN
	WRAP
	DC
	DREL
)

var RuleSymbols = util.NewEnumSetOf(
	"LEX", "EC", "FFA", "BFA", "FFC1", "BFC1", "FFC2", "BFC2", "FFC3", "BFC3",
	"FFCx1", "FFCx2", "FFSx", "COORD", "PAREN", "WRAP", "DC", "DREL",
)

func (r RuleSymbol) String() string {
	return RuleSymbols.ValueOf(int(r))
}

func (r RuleSymbol) IsForwardComposition() bool {
	return r == FFC1 || r == FFC2 || r == FFC3
}

func (r RuleSymbol) IsBackwardComposition() bool {
	return r == BFC1 || r == BFC2 || r == BFC3
}

// Node is one derivation step. Leaves have no daughters.
type Node struct {
	Rule      RuleSymbol
	PF        string
	Cat       *Category
	Daughters []*Node
	LogScore  float64
	Source    string
}

// Score is the display score, e^LogScore.
func (n *Node) Score() float64 {
	return math.Pow(2.7182, n.LogScore)
}

func (n *Node) String() string {
	return fmt.Sprintf("%v %s %v (%.4f)", n.Rule, n.PF, n.Cat, n.Score())
}

// Debug renders the derivation below n, one node per line.
func (n *Node) Debug() string {
	var b strings.Builder
	n.debug(&b, 0)
	return b.String()
}

func (n *Node) debug(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.String())
	if n.Source != "" {
		b.WriteString(" [" + n.Source + "]")
	}
	b.WriteByte('\n')
	for _, d := range n.Daughters {
		d.debug(b, depth+1)
	}
}

// LexicalItem builds a leaf with a score given as a percentage.
func LexicalItem(pf, source string, score int, cat *Category) *Node {
	return &Node{
		Rule:     LEX,
		PF:       pf,
		Cat:      cat,
		LogScore: math.Log(float64(score) / 100),
		Source:   source,
	}
}

// EmptyCategory builds a zero-width leaf; word names it in the source tag.
func EmptyCategory(word, source string, score int, cat *Category) *Node {
	return &Node{
		Rule:     EC,
		Cat:      cat,
		LogScore: math.Log(float64(score) / 100),
		Source:   word + ":" + source,
	}
}

var declarative = NewSbar(F(Decl))

// Wrap closes a complete derivation as a declarative clause.
func Wrap(n *Node) *Node {
	return &Node{
		Rule:      WRAP,
		PF:        n.PF,
		Cat:       declarative,
		Daughters: []*Node{n},
		LogScore:  n.LogScore + math.Log(0.9),
	}
}

// Conjoin joins two adjacent derivations as a discourse.
func Conjoin(l, r *Node) *Node {
	return &Node{
		Rule:      DC,
		PF:        l.PF + r.PF,
		Cat:       declarative,
		Daughters: []*Node{l, r},
		LogScore:  l.LogScore + r.LogScore,
	}
}
