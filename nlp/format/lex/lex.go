// Package lex reads Juman-style dictionaries: one entry per line with the
// tab separated fields
//
//	hyoki score pos daihyo yomi source caseframe
//
// Lines starting with # and blank lines are skipped.
package lex

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	APPROX_LEX_SIZE = 10000
	SEPARATOR       = "\t"
	COMMENT         = "#"
	NUM_FIELDS      = 7
)

type Record struct {
	Hyoki     string
	Score     int
	Pos       string
	Daihyo    string
	Yomi      string
	Source    string
	CaseFrame string
}

// DaihyoYomi is the "daihyo/yomi" key entries are reported under.
func (r Record) DaihyoYomi() string {
	return r.Daihyo + "/" + r.Yomi
}

func (r Record) String() string {
	return strings.Join([]string{r.Hyoki, strconv.Itoa(r.Score), r.Pos, r.Daihyo, r.Yomi, r.Source, r.CaseFrame}, SEPARATOR)
}

func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, SEPARATOR)
	if len(fields) < NUM_FIELDS {
		return Record{}, errors.Errorf("wrong number of fields %d (%s)", len(fields), line)
	}
	score, err := strconv.Atoi(fields[1])
	if err != nil {
		return Record{}, errors.Wrapf(err, "bad score (%s)", line)
	}
	return Record{
		Hyoki:     fields[0],
		Score:     score,
		Pos:       fields[2],
		Daihyo:    fields[3],
		Yomi:      fields[4],
		Source:    fields[5],
		CaseFrame: fields[6],
	}, nil
}

func Read(input io.Reader) ([]Record, error) {
	records := make([]Record, 0, APPROX_LEX_SIZE)
	scan := bufio.NewScanner(input)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lineNum int
	for scan.Scan() {
		lineNum++
		line := strings.TrimRight(scan.Text(), "\r")
		if len(strings.TrimSpace(line)) == 0 || strings.HasPrefix(line, COMMENT) {
			continue
		}
		record, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		records = append(records, record)
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrapf(err, "line %d", lineNum)
	}
	return records, nil
}

func ReadFile(filename string) ([]Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open dictionary")
	}
	defer file.Close()

	records, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filename)
	}
	return records, nil
}

// Filter keeps the records whose surface form occurs in sentence.
func Filter(records []Record, sentence string) []Record {
	var retval []Record
	for _, r := range records {
		if strings.Contains(sentence, r.Hyoki) {
			retval = append(retval, r)
		}
	}
	return retval
}
