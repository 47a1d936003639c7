package chart

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"lightblue/alg"
	"lightblue/alg/search"
	"lightblue/nlp/ccg"
)

const DEFAULT_MAX_WORD_LENGTH = 23

// Position is the character span [I, J).
type Position struct {
	I, J int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.I, p.J)
}

// Chart maps spans to their candidates, best first.
type Chart map[Position][]*ccg.Node

func (c Chart) Lookup(i, j int) []*ccg.Node {
	return c[Position{i, j}]
}

// Positions returns the spans in ranking order: larger end first, then
// smaller start.
func (c Chart) Positions() []Position {
	retval := make([]Position, 0, len(c))
	for p := range c {
		retval = append(retval, p)
	}
	sort.Slice(retval, func(a, b int) bool {
		if retval[a].J != retval[b].J {
			return retval[a].J > retval[b].J
		}
		return retval[a].I < retval[b].I
	})
	return retval
}

// Lexicon returns the lexical entries whose phonetic form equals word.
type Lexicon interface {
	Lookup(word string) []*ccg.Node
}

// Numerator restricts a lexicon to the entries occurring in a sentence.
type Numerator interface {
	Numeration(sentence string) Lexicon
}

type Parser struct {
	Lexicon         Lexicon
	EmptyCategories []*ccg.Node
	Rules           *ccg.Rules
	MaxWordLength   int
	Log             bool
}

func NewParser(lexicon Lexicon, emptyCategories []*ccg.Node) *Parser {
	return &Parser{
		Lexicon:         lexicon,
		EmptyCategories: emptyCategories,
		Rules:           ccg.DefaultRules,
		MaxWordLength:   DEFAULT_MAX_WORD_LENGTH,
	}
}

type scoredNode struct {
	*ccg.Node
}

func (n scoredNode) Score() float64 {
	return n.LogScore
}

// Parse fills the chart one character at a time.
func (p *Parser) Parse(beamWidth int, sentence string) Chart {
	if beamWidth <= 0 {
		panic(fmt.Sprintf("Beam width must be positive, got %d", beamWidth))
	}
	chart := make(Chart)
	if len(sentence) == 0 {
		return chart
	}
	lexicon := p.Lexicon
	if numerator, ok := lexicon.(Numerator); ok {
		lexicon = numerator.Numeration(strings.ReplaceAll(sentence, "―", "。"))
	}
	text := []rune(Purify(sentence))
	seps := alg.NewStackArray(len(text) + 1)
	seps.Push(0)
	for i, char := range text {
		if _, ok := seps.Peek(); !ok {
			panic("Empty segmentation stack")
		}
		switch char {
		case '、':
			closeSpans(chart, i)
			chart[Position{i, i + 1}] = []*ccg.Node{andCONJ(string(char)), emptyCM(string(char))}
			seps.Push(i + 1)
		case '。':
			closeSpans(chart, i)
			seps.Push(i + 1)
		default:
			p.fillColumn(chart, lexicon, beamWidth, text, i+1)
			switch char {
			case '「', '『':
				seps.Push(i + 1)
			case '」', '』':
				if seps.Size() > 1 {
					seps.Pop()
				}
			}
		}
	}
	return chart
}

// fillColumn computes every cell ending at j, from the shortest span to the
// longest.
func (p *Parser) fillColumn(chart Chart, lexicon Lexicon, beamWidth int, text []rune, j int) {
	maxLen := p.MaxWordLength
	if maxLen <= 0 {
		maxLen = DEFAULT_MAX_WORD_LENGTH
	}
	for i := j - 1; i >= 0; i-- {
		var list []*ccg.Node
		if j-i <= maxLen {
			list = append(list, lexicon.Lookup(string(text[i:j]))...)
		}
		list = p.unary(list)
		list = p.binary(chart, i, j, list)
		list = p.coordination(chart, i, j, list)
		list = p.parenthesis(chart, i, j, list)
		list = p.emptyCategories(list)
		chart[Position{i, j}] = p.prune(beamWidth, list)
		if p.Log {
			log.Println("Cell", Position{i, j}, "kept", len(chart[Position{i, j}]), "of", len(list))
		}
	}
}

func (p *Parser) prune(beamWidth int, list []*ccg.Node) []*ccg.Node {
	candidates := make([]scoredNode, len(list))
	for k, n := range list {
		candidates[k] = scoredNode{n}
	}
	top := search.Beam(beamWidth, candidates)
	retval := make([]*ccg.Node, len(top))
	for k, n := range top {
		retval[k] = n.Node
	}
	return retval
}

func (p *Parser) unary(list []*ccg.Node) []*ccg.Node {
	retval := list
	for _, n := range list {
		retval = append(retval, p.Rules.Unary(n)...)
	}
	return retval
}

func (p *Parser) binary(chart Chart, i, j int, list []*ccg.Node) []*ccg.Node {
	for k := i + 1; k < j; k++ {
		for _, l := range chart.Lookup(i, k) {
			for _, r := range chart.Lookup(k, j) {
				list = append(list, p.Rules.Binary(l, r)...)
			}
		}
	}
	return list
}

func (p *Parser) coordination(chart Chart, i, j int, list []*ccg.Node) []*ccg.Node {
	for k := i + 1; k < j-1; k++ {
		for _, c := range chart.Lookup(k, k+1) {
			if c.Cat.Kind != ccg.CONJ {
				continue
			}
			for _, l := range chart.Lookup(i, k) {
				for _, r := range chart.Lookup(k+1, j) {
					list = append(list, p.Rules.Coordination(l, c, r)...)
				}
			}
		}
	}
	return list
}

func (p *Parser) parenthesis(chart Chart, i, j int, list []*ccg.Node) []*ccg.Node {
	if i+3 > j {
		return list
	}
	for _, l := range chart.Lookup(i, i+1) {
		if l.Cat.Kind != ccg.LPAREN {
			continue
		}
		for _, r := range chart.Lookup(j-1, j) {
			if r.Cat.Kind != ccg.RPAREN {
				continue
			}
			for _, c := range chart.Lookup(i+1, j-1) {
				list = append(list, p.Rules.Parenthesis(l, c, r)...)
			}
		}
	}
	return list
}

// emptyCategories lets each empty category combine on either side of every
// candidate, feeding the results to the next empty category.
func (p *Parser) emptyCategories(list []*ccg.Node) []*ccg.Node {
	for _, ec := range p.EmptyCategories {
		next := make([]*ccg.Node, 0, len(list))
		for _, n := range list {
			next = append(next, n)
			next = append(next, p.Rules.Binary(n, ec)...)
			next = append(next, p.Rules.Binary(ec, n)...)
		}
		list = next
	}
	return list
}

// SimpleParse returns the extracted derivations, or nothing on failure.
func (p *Parser) SimpleParse(beamWidth int, sentence string) []*ccg.Node {
	return ExtractParseResult(beamWidth, p.Parse(beamWidth, sentence)).Nodes
}
