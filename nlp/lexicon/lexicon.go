package lexicon

import (
	"bytes"
	_ "embed"
	"log"
	"strings"
	"sync"

	"lightblue/nlp/format/lex"
	"lightblue/nlp/parser/chart"
	"lightblue/util"
	"lightblue/util/conf"

	. "lightblue/nlp/ccg"

	"github.com/pkg/errors"
)

//go:embed sample.tsv
var sampleDictionary []byte

// Numeration is a lexicon restricted to one sentence, indexed by surface
// form.
type Numeration map[string][]*Node

func (n Numeration) Lookup(word string) []*Node {
	return n[word]
}

func (n Numeration) Len() int {
	var retval int
	for _, nodes := range n {
		retval += len(nodes)
	}
	return retval
}

func (n Numeration) add(nodes ...*Node) {
	for _, node := range nodes {
		n[node.PF] = append(n[node.PF], node)
	}
}

// Lexicon holds hand-written items and dictionary records. Records are
// turned into items per sentence, so the part kept for a sentence has its
// nouns merged over that sentence only.
type Lexicon struct {
	Items   []*Node
	Records []lex.Record

	mu    sync.Mutex
	index Numeration
}

func New(items ...*Node) *Lexicon {
	return &Lexicon{Items: items}
}

func (l *Lexicon) Add(items ...*Node) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Items = append(l.Items, items...)
	l.index = nil
}

func (l *Lexicon) AddRecords(records ...lex.Record) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Records = append(l.Records, records...)
	l.index = nil
}

func (l *Lexicon) Len() int {
	return len(l.Items) + len(l.Records)
}

// Numeration keeps the items and records whose surface form occurs in the
// sentence.
func (l *Lexicon) Numeration(sentence string) chart.Lexicon {
	n := make(Numeration)
	for _, item := range l.Items {
		if strings.Contains(sentence, item.PF) {
			n.add(item)
		}
	}
	n.add(FromRecords(lex.Filter(l.Records, sentence))...)
	return n
}

// Lookup searches every entry. The full index is built on the first call
// and kept until the lexicon changes.
func (l *Lexicon) Lookup(word string) []*Node {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index == nil {
		l.index = make(Numeration)
		l.index.add(l.Items...)
		l.index.add(FromRecords(l.Records)...)
	}
	return l.index.Lookup(word)
}

var (
	defaultLexicon *Lexicon
	defaultOnce    sync.Once
)

// Default is the static lexicon plus the bundled sample dictionary, built
// on first use and shared afterwards.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		records, err := lex.Read(bytes.NewReader(sampleDictionary))
		if err != nil {
			panic(errors.Wrap(err, "bundled dictionary"))
		}
		defaultLexicon = New(Static()...)
		defaultLexicon.AddRecords(records...)
	})
	return defaultLexicon
}

// Load builds a lexicon as configured.
func Load(c conf.Lexicon) (*Lexicon, error) {
	l := New()
	if c.Static {
		l.Add(Static()...)
	}
	if c.Sample {
		l.AddRecords(Default().Records...)
	}
	for _, filename := range c.Dictionaries {
		records, err := lex.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrap(err, "loading lexicon")
		}
		digest, err := util.MD5File(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "hashing %s", filename)
		}
		log.Println("Loaded", len(records), "records from", filename, "md5", digest)
		l.AddRecords(records...)
	}
	return l, nil
}

// NewParser wires a lexicon and the empty categories into a chart parser
// configured by c.
func NewParser(l *Lexicon, c *conf.Conf) *chart.Parser {
	p := chart.NewParser(l, EmptyCategories())
	p.Rules = NewRules(Penalty{
		CrossedComposition1: c.Penalty.CrossedComposition1,
		CrossedComposition2: c.Penalty.CrossedComposition2,
		CrossedSubstitution: c.Penalty.CrossedSubstitution,
	})
	p.MaxWordLength = c.MaxWordLength
	p.Log = c.Log
	return p
}
