package conf

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadDefaults(t *testing.T) {
	c, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if c.Beam != DEFAULT_BEAM || c.MaxWordLength != DEFAULT_MAX_WORD_LENGTH {
		t.Errorf("Expected defaults, got beam %v max word length %v", c.Beam, c.MaxWordLength)
	}
	if c.Penalty.CrossedComposition2 != 3 {
		t.Errorf("Expected crossed composition 2 penalty 3, got %v", c.Penalty.CrossedComposition2)
	}
	if c.Serve.MaxBeam != DEFAULT_SERVE_MAX_BEAM || c.Serve.MaxSentence != DEFAULT_SERVE_MAX_SENTENCE {
		t.Errorf("Expected default serve limits, got %+v", c.Serve)
	}
	if !c.Lexicon.Static || !c.Lexicon.Sample {
		t.Errorf("Expected static and sample lexicons enabled by default")
	}
}

func TestReadOverrides(t *testing.T) {
	doc := `
beam: 4
penalty:
  crossed_substitution: 1.5
lexicon:
  sample: false
  dictionaries: [juman.tsv]
`
	c, err := Read(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if c.Beam != 4 {
		t.Errorf("Expected beam 4, got %v", c.Beam)
	}
	if c.Penalty.CrossedSubstitution != 1.5 || c.Penalty.CrossedComposition1 != 2 {
		t.Errorf("Expected partial penalty override, got %+v", c.Penalty)
	}
	if c.Lexicon.Sample || !c.Lexicon.Static {
		t.Errorf("Expected sample off and static on, got %+v", c.Lexicon)
	}
	if len(c.Lexicon.Dictionaries) != 1 || c.Lexicon.Dictionaries[0] != "juman.tsv" {
		t.Errorf("Expected one dictionary, got %v", c.Lexicon.Dictionaries)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(strings.NewReader("beam: 0\n")); err == nil {
		t.Errorf("Expected error for zero beam")
	}
	if _, err := Read(strings.NewReader("serve:\n  max_beam: 0\n")); err == nil {
		t.Errorf("Expected error for zero serve beam limit")
	}
	if _, err := Read(strings.NewReader("beam: [\n")); err == nil {
		t.Errorf("Expected error for malformed yaml")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if !strings.Contains(buf.String(), "max_word_length: 23") {
		t.Errorf("Expected max_word_length in output, got %v", buf.String())
	}
}
