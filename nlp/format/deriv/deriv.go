// Package deriv prints derivations. Write emits one row per node in a
// CoNLL-like tab separated layout, with a blank line after each derivation:
//   id pf category rule score head source
package deriv

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"lightblue/nlp/ccg"

	"github.com/pkg/errors"
)

type Row struct {
	ID     int
	PF     string
	Cat    string
	Rule   string
	Score  float64
	Head   int
	Source string
}

func (r Row) String() string {
	source := r.Source
	if source == "" {
		source = "_"
	}
	pf := r.PF
	if pf == "" {
		pf = "_"
	}
	fields := []string{
		fmt.Sprintf("%d", r.ID),
		pf,
		r.Cat,
		r.Rule,
		fmt.Sprintf("%.4f", r.Score),
		fmt.Sprintf("%d", r.Head),
		source,
	}
	return strings.Join(fields, "\t")
}

// Rows numbers the nodes of a derivation in preorder starting at 1; Head is
// the id of the mother node, 0 for the root.
func Rows(n *ccg.Node) []Row {
	var rows []Row
	var walk func(n *ccg.Node, head int)
	walk = func(n *ccg.Node, head int) {
		id := len(rows) + 1
		rows = append(rows, Row{
			ID:     id,
			PF:     n.PF,
			Cat:    n.Cat.String(),
			Rule:   n.Rule.String(),
			Score:  n.Score(),
			Head:   head,
			Source: n.Source,
		})
		for _, d := range n.Daughters {
			walk(d, id)
		}
	}
	walk(n, 0)
	return rows
}

// Tree renders a derivation top down, daughters indented under their mother.
func Tree(n *ccg.Node) string {
	var b strings.Builder
	tree(&b, n, "")
	return b.String()
}

func tree(b *strings.Builder, n *ccg.Node, indent string) {
	fmt.Fprintf(b, "%s%s : %v <%v %.4f>\n", indent, n.PF, n.Cat, n.Rule, n.Score())
	for _, d := range n.Daughters {
		tree(b, d, indent+"  ")
	}
}

type View struct {
	Rule      string  `json:"rule"`
	PF        string  `json:"pf"`
	Cat       string  `json:"cat"`
	Score     float64 `json:"score"`
	Source    string  `json:"source,omitempty"`
	Daughters []View  `json:"daughters,omitempty"`
}

func ToView(n *ccg.Node) View {
	v := View{
		Rule:   n.Rule.String(),
		PF:     n.PF,
		Cat:    n.Cat.String(),
		Score:  n.Score(),
		Source: n.Source,
	}
	for _, d := range n.Daughters {
		v.Daughters = append(v.Daughters, ToView(d))
	}
	return v
}

func Write(writer io.Writer, nodes []*ccg.Node) error {
	for _, n := range nodes {
		for _, row := range Rows(n) {
			if _, err := io.WriteString(writer, row.String()+"\n"); err != nil {
				return errors.Wrap(err, "write derivation")
			}
		}
		if _, err := io.WriteString(writer, "\n"); err != nil {
			return errors.Wrap(err, "write derivation")
		}
	}
	return nil
}

func WriteJSON(writer io.Writer, nodes []*ccg.Node) error {
	views := make([]View, len(nodes))
	for i, n := range nodes {
		views[i] = ToView(n)
	}
	enc := json.NewEncoder(writer)
	enc.SetEscapeHTML(false)
	return errors.Wrap(enc.Encode(views), "encode derivations")
}
