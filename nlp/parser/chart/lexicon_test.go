package chart_test

import (
	"testing"

	"lightblue/nlp/ccg"
	"lightblue/nlp/lexicon"
	"lightblue/nlp/parser/chart"
	"lightblue/util/conf"
)

func defaultParser() *chart.Parser {
	return lexicon.NewParser(lexicon.Default(), conf.Default())
}

func hasRule(n *ccg.Node, rule ccg.RuleSymbol) bool {
	if n.Rule == rule {
		return true
	}
	for _, d := range n.Daughters {
		if hasRule(d, rule) {
			return true
		}
	}
	return false
}

func TestDefaultLexiconSentences(t *testing.T) {
	p := defaultParser()
	cases := map[string]string{
		"太郎が走る":   "太郎が走る",
		"象がパンを読む": "象がパンを読む",
		"太郎が来た":   "太郎が来た",
		"美味しいパン":  "美味しいパン",
		"花子が本を読む": "花子が本を読む",
	}
	for sentence, pf := range cases {
		result := chart.ExtractParseResult(10, p.Parse(10, sentence))
		if result.Outcome != chart.Full {
			t.Errorf("Expected full parse of %s, got %v", sentence, result.Outcome)
			continue
		}
		if result.Nodes[0].PF != pf {
			t.Errorf("Expected PF %s, got %s", pf, result.Nodes[0].PF)
		}
	}
}

func TestDefaultLexiconModifier(t *testing.T) {
	result := chart.ExtractParseResult(10, defaultParser().Parse(10, "美味しいパン"))
	if result.Outcome != chart.Full {
		t.Fatalf("Expected full parse, got %v", result.Outcome)
	}
	for _, n := range result.Nodes {
		d := n.Daughters[0]
		if d.Rule == ccg.FFA && d.Cat.Kind == ccg.N && d.Daughters[0].Cat.Kind == ccg.Forward {
			return
		}
	}
	t.Errorf("Expected the adjective to modify パン, got %v", result.Nodes[0].Debug())
}

func TestDefaultEmptyCategories(t *testing.T) {
	result := chart.ExtractParseResult(10, defaultParser().Parse(10, "走る"))
	if result.Outcome != chart.Full {
		t.Fatalf("Expected full parse, got %v", result.Outcome)
	}
	if !hasRule(result.Nodes[0], ccg.EC) {
		t.Errorf("Expected the dropped subject to be filled, got %v", result.Nodes[0].Debug())
	}
	result = chart.ExtractParseResult(10, defaultParser().Parse(10, "パンを食べた"))
	if result.Outcome != chart.Full || !hasRule(result.Nodes[0], ccg.EC) {
		t.Errorf("Expected a full parse with a dropped subject, got %v", result.Outcome)
	}
}
