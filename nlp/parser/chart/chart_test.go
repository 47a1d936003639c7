package chart

import (
	"strings"
	"testing"

	"lightblue/nlp/ccg"
)

type mapLexicon map[string][]*ccg.Node

func (m mapLexicon) Lookup(word string) []*ccg.Node {
	return m[word]
}

type numeratingLexicon struct {
	mapLexicon
	seen string
}

func (n *numeratingLexicon) Numeration(sentence string) Lexicon {
	n.seen = sentence
	return n.mapLexicon
}

var (
	npNc    = ccg.NewNP(ccg.F(ccg.Nc))
	npGa    = ccg.NewNP(ccg.F(ccg.Ga))
	hashiru = ccg.Bwd(ccg.DefS(ccg.NewValueSet(ccg.V5r), ccg.NewValueSet(ccg.Term)), npGa)
)

func testLexicon() mapLexicon {
	return mapLexicon{
		"太郎": {ccg.LexicalItem("太郎", "test", 100, npNc)},
		"花子": {ccg.LexicalItem("花子", "test", 100, npNc)},
		"が":  {ccg.LexicalItem("が", "test", 100, ccg.Bwd(ccg.TypeRaised(ccg.Ga), npNc))},
		"走る": {ccg.LexicalItem("走る", "test", 100, hashiru)},
		"（":  {ccg.LexicalItem("（", "test", 100, ccg.CatLPAREN)},
		"）":  {ccg.LexicalItem("）", "test", 100, ccg.CatRPAREN)},
	}
}

func TestParseSimpleSentence(t *testing.T) {
	p := NewParser(testLexicon(), nil)
	chart := p.Parse(10, "太郎が走る")
	if len(chart.Lookup(0, 5)) == 0 {
		t.Fatalf("Expected a derivation for the whole sentence")
	}
	result := ExtractParseResult(10, chart)
	if result.Outcome != Full {
		t.Fatalf("Expected full parse, got %v", result.Outcome)
	}
	top := result.Nodes[0]
	if top.Rule != ccg.WRAP || top.Cat.Kind != ccg.Sbar {
		t.Errorf("Expected wrapped Sbar, got %v", top)
	}
	d := top.Daughters[0]
	if d.Rule != ccg.FFA || d.Cat.Kind != ccg.S {
		t.Errorf("Expected FFA to S, got %v", d)
	}
	if d.Cat.Features[0].Values != ccg.NewValueSet(ccg.V5r) || d.Cat.Features[1].Values != ccg.NewValueSet(ccg.Term) {
		t.Errorf("Expected verb features carried through, got %v", d.Cat)
	}
	if d.PF != "太郎が走る" {
		t.Errorf("Expected PF 太郎が走る, got %v", d.PF)
	}
}

func TestParseDoubleNominative(t *testing.T) {
	p := NewParser(testLexicon(), nil)
	chart := p.Parse(10, "太郎が花子が走る")
	if len(chart.Lookup(0, 8)) != 0 {
		t.Errorf("Expected no derivation for the whole sentence, got %v", chart.Lookup(0, 8))
	}
	if _, ok := chart[Position{0, 8}]; !ok {
		t.Errorf("Expected the whole sentence span to be filled even when empty")
	}
	result := ExtractParseResult(10, chart)
	if result.Outcome != Failed || len(result.Nodes) != 0 {
		t.Errorf("Expected failure, got %v with %d nodes", result.Outcome, len(result.Nodes))
	}
	if nodes := p.SimpleParse(10, "太郎が花子が走る"); len(nodes) != 0 {
		t.Errorf("Expected SimpleParse to return nothing, got %v", nodes)
	}
}

func TestParseEmpty(t *testing.T) {
	p := NewParser(testLexicon(), nil)
	chart := p.Parse(10, "")
	if len(chart) != 0 {
		t.Errorf("Expected empty chart, got %v cells", len(chart))
	}
	if ExtractParseResult(10, chart).Outcome != Failed {
		t.Errorf("Expected failure on empty input")
	}
	if ExtractParseResult(10, p.Parse(10, "！？ …")).Outcome != Failed {
		t.Errorf("Expected failure on input purified to nothing")
	}
}

func TestParseBeamWidth(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic on non-positive beam width")
		}
	}()
	NewParser(testLexicon(), nil).Parse(0, "太郎")
}

func TestParseBeamOrder(t *testing.T) {
	lex := mapLexicon{"あ": {
		ccg.LexicalItem("あ", "a", 10, npNc),
		ccg.LexicalItem("あ", "b", 90, npNc),
		ccg.LexicalItem("あ", "c", 50, npNc),
		ccg.LexicalItem("あ", "d", 90, npNc),
		ccg.LexicalItem("あ", "e", 70, npNc),
	}}
	cell := NewParser(lex, nil).Parse(3, "あ").Lookup(0, 1)
	if len(cell) != 3 {
		t.Fatalf("Expected 3 candidates, got %v", len(cell))
	}
	expected := []string{"b", "d", "e"}
	for k, n := range cell {
		if n.Source != expected[k] {
			t.Errorf("Expected %v at %d, got %v", expected[k], k, n.Source)
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	p := NewParser(testLexicon(), nil)
	first := p.SimpleParse(5, "太郎が、花子が走る")
	second := p.SimpleParse(5, "太郎が、花子が走る")
	if len(first) != len(second) {
		t.Fatalf("Expected same number of results, got %v and %v", len(first), len(second))
	}
	for k := range first {
		if first[k].Debug() != second[k].Debug() {
			t.Errorf("Expected identical derivations at %d", k)
		}
	}
}

func TestParseComma(t *testing.T) {
	p := NewParser(testLexicon(), nil)
	chart := p.Parse(10, "太郎が、走る")
	comma := chart.Lookup(3, 4)
	if len(comma) != 2 || comma[0].Cat.Kind != ccg.CONJ || comma[1].Cat.Kind != ccg.Backward {
		t.Fatalf("Expected CONJ and empty case marker at the comma, got %v", comma)
	}
	if comma[0].LogScore <= comma[1].LogScore {
		t.Errorf("Expected CONJ reading first")
	}
	if len(chart.Lookup(0, 4)) != 1 || chart.Lookup(0, 4)[0].PF != "太郎が" {
		t.Errorf("Expected the bunsetsu before the comma to be extended, got %v", chart.Lookup(0, 4))
	}
	result := ExtractParseResult(10, chart)
	if result.Outcome != Full {
		t.Fatalf("Expected full parse, got %v", result.Outcome)
	}
	if result.Nodes[0].Daughters[0].Rule != ccg.FFA {
		t.Errorf("Expected FFA across the comma, got %v", result.Nodes[0].Daughters[0])
	}
}

func TestParseMaxWordLength(t *testing.T) {
	long := strings.Repeat("あ", DEFAULT_MAX_WORD_LENGTH)
	lex := mapLexicon{
		long:       {ccg.LexicalItem(long, "test", 100, npNc)},
		long + "い": {ccg.LexicalItem(long+"い", "test", 100, npNc)},
	}
	p := NewParser(lex, nil)
	if len(p.Parse(1, long).Lookup(0, DEFAULT_MAX_WORD_LENGTH)) != 1 {
		t.Errorf("Expected a word of %d characters to be looked up", DEFAULT_MAX_WORD_LENGTH)
	}
	if len(p.Parse(1, long+"い").Lookup(0, DEFAULT_MAX_WORD_LENGTH+1)) != 0 {
		t.Errorf("Expected longer words to be skipped")
	}
}

func TestParseNumeration(t *testing.T) {
	lex := &numeratingLexicon{mapLexicon: testLexicon()}
	p := NewParser(lex, nil)
	p.Parse(10, "走る―")
	if lex.seen != "走る。" {
		t.Errorf("Expected numeration over 走る。, got %v", lex.seen)
	}
}

func TestParseParenthesis(t *testing.T) {
	result := ExtractParseResult(10, NewParser(testLexicon(), nil).Parse(10, "（太郎）"))
	if result.Outcome != Full {
		t.Fatalf("Expected full parse, got %v", result.Outcome)
	}
	d := result.Nodes[0].Daughters[0]
	if d.Rule != ccg.PAREN || !ccg.Equivalent(d.Cat, npNc) {
		t.Errorf("Expected PAREN over NP[Nc], got %v", d)
	}
}

func TestParseEmptyCategory(t *testing.T) {
	pro := ccg.EmptyCategory("pro", "test", 95, npGa)
	p := NewParser(testLexicon(), []*ccg.Node{pro})
	result := ExtractParseResult(10, p.Parse(10, "走る"))
	if result.Outcome != Full || len(result.Nodes) != 2 {
		t.Fatalf("Expected two full results, got %v with %d", result.Outcome, len(result.Nodes))
	}
	d := result.Nodes[0].Daughters[0]
	if d.Rule != ccg.BFA || d.Daughters[0].Rule != ccg.EC {
		t.Errorf("Expected the saturated clause first, got %v", d.Debug())
	}
	if d.Daughters[0].Source != "pro:test" {
		t.Errorf("Expected empty category source, got %v", d.Daughters[0].Source)
	}
}

func TestExtractPartial(t *testing.T) {
	a := ccg.LexicalItem("太郎", "test", 100, npNc)
	b := ccg.LexicalItem("走る", "test", 50, hashiru)
	chart := Chart{
		{0, 2}: {a},
		{2, 3}: nil,
		{3, 5}: {b},
	}
	result := ExtractParseResult(10, chart)
	if result.Outcome != Partial || len(result.Nodes) != 1 {
		t.Fatalf("Expected one partial result, got %v with %d", result.Outcome, len(result.Nodes))
	}
	n := result.Nodes[0]
	if n.Rule != ccg.DC || n.PF != "太郎走る" {
		t.Errorf("Expected DC over 太郎走る, got %v", n)
	}
	if n.Daughters[0].Rule != ccg.WRAP || n.Daughters[1].Rule != ccg.WRAP {
		t.Errorf("Expected wrapped conjuncts, got %v", n.Debug())
	}
	if n.Daughters[0].Daughters[0] != a || n.Daughters[1].Daughters[0] != b {
		t.Errorf("Expected left conjunct from the earlier span")
	}
}

func TestExtractPartialBeam(t *testing.T) {
	chart := Chart{
		{0, 1}: {ccg.LexicalItem("あ", "1", 100, npNc), ccg.LexicalItem("あ", "2", 50, npNc)},
		{1, 2}: {ccg.LexicalItem("い", "3", 100, npNc), ccg.LexicalItem("い", "4", 50, npNc)},
	}
	result := ExtractParseResult(3, chart)
	if result.Outcome != Partial || len(result.Nodes) != 3 {
		t.Fatalf("Expected 3 partial results, got %v with %d", result.Outcome, len(result.Nodes))
	}
	first := result.Nodes[0]
	if first.Daughters[0].Daughters[0].Source != "1" || first.Daughters[1].Daughters[0].Source != "3" {
		t.Errorf("Expected the best pair first, got %v", first.Debug())
	}
}

func TestSortByNumberOfArgs(t *testing.T) {
	np := ccg.LexicalItem("x", "np", 100, npNc)
	s := ccg.LexicalItem("x", "s", 10, ccg.NewS())
	s2 := ccg.LexicalItem("x", "s2", 50, ccg.NewS())
	vp := ccg.LexicalItem("x", "vp", 100, hashiru)
	sbar := ccg.LexicalItem("x", "sbar", 1, ccg.NewSbar())
	sorted := sortByNumberOfArgs([]*ccg.Node{np, s, vp, sbar, s2})
	expected := []string{"sbar", "s2", "s", "vp", "np"}
	for k, n := range sorted {
		if n.Source != expected[k] {
			t.Errorf("Expected %v at %d, got %v", expected[k], k, n.Source)
		}
	}
	if numberOfArgs(ccg.CatCONJ) != 100 || numberOfArgs(ccg.CatN) != 2 {
		t.Errorf("Unexpected ranks for CONJ and N")
	}
	if numberOfArgs(ccg.TypeRaised(ccg.Ga)) != 2 {
		t.Errorf("Expected type-raised NP to rank 2, got %v", numberOfArgs(ccg.TypeRaised(ccg.Ga)))
	}
}

func TestPositions(t *testing.T) {
	chart := Chart{{0, 1}: nil, {1, 3}: nil, {0, 3}: nil, {2, 3}: nil}
	expected := []Position{{0, 3}, {1, 3}, {2, 3}, {0, 1}}
	for k, p := range chart.Positions() {
		if p != expected[k] {
			t.Errorf("Expected %v at %d, got %v", expected[k], k, p)
		}
	}
}

func TestPurify(t *testing.T) {
	cases := map[string]string{
		"太郎が 走る！":  "太郎が走る",
		"「太郎」、走る。": "太郎、走る。",
		"a,b／c":    "a、b、c",
		"何？":       "何",
		"※":        "",
	}
	for in, expected := range cases {
		if got := Purify(in); got != expected {
			t.Errorf("Expected %q for %q, got %q", expected, in, got)
		}
	}
}
