// Package raw reads raw format files
// raw files contain a sentence per line
// empty lines are skipped
package raw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

func Read(reader io.Reader, limit int) ([]string, error) {
	var sentences []string
	scan := bufio.NewScanner(reader)
	scan.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if len(line) == 0 {
			continue
		}
		sentences = append(sentences, line)
		if limit > 0 && len(sentences) >= limit {
			break
		}
	}
	if err := scan.Err(); err != nil {
		return nil, errors.Wrap(err, "read sentences")
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open raw file")
	}
	defer file.Close()

	return Read(file, limit)
}

func Write(writer io.Writer, sents []string) error {
	for _, sent := range sents {
		if _, err := io.WriteString(writer, sent+"\n"); err != nil {
			return errors.Wrap(err, "write sentence")
		}
	}
	return nil
}
