package deriv

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lightblue/nlp/ccg"
)

func derivation() *ccg.Node {
	adj := ccg.LexicalItem("美味しい", "test", 100, ccg.Fwd(ccg.NewNP(ccg.F(ccg.Nc)), ccg.NewNP(ccg.F(ccg.Nc))))
	noun := ccg.LexicalItem("パン", "test", 100, ccg.NewNP(ccg.F(ccg.Nc)))
	return ccg.DefaultRules.ForwardApplication(adj, noun)[0]
}

func TestRows(t *testing.T) {
	rows := Rows(derivation())
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].ID != 1 || rows[0].Head != 0 || rows[0].Rule != "FFA" || rows[0].PF != "美味しいパン" {
		t.Errorf("Unexpected root row %v", rows[0])
	}
	if rows[1].Head != 1 || rows[2].Head != 1 || rows[2].PF != "パン" {
		t.Errorf("Expected daughters headed by the root, got %v %v", rows[1], rows[2])
	}
	if rows[2].String() != "3\tパン\tNP{[Nc]}\tLEX\t1.0000\t1\ttest" {
		t.Errorf("Unexpected row text %q", rows[2].String())
	}
	if rows[0].String() != "1\t美味しいパン\tNP{[Nc]}\tFFA\t1.0000\t0\t_" {
		t.Errorf("Unexpected row text %q", rows[0].String())
	}
}

func TestTree(t *testing.T) {
	lines := strings.Split(strings.TrimRight(Tree(derivation()), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "美味しいパン : NP{[Nc]} <FFA") {
		t.Errorf("Unexpected root line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  美味しい : ") {
		t.Errorf("Expected indented daughter, got %q", lines[1])
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	n := derivation()
	if err := Write(&buf, []*ccg.Node{n, n}); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	blocks := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n\n")
	if len(blocks) != 2 {
		t.Errorf("Expected 2 blocks, got %d", len(blocks))
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []*ccg.Node{derivation()}); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	var views []View
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("Unexpected error %v", err)
	}
	if len(views) != 1 || views[0].Rule != "FFA" || len(views[0].Daughters) != 2 {
		t.Errorf("Unexpected views %v", views)
	}
	if views[0].Daughters[1].Source != "test" || views[0].Source != "" {
		t.Errorf("Expected sources on leaves only, got %v", views[0])
	}
}
