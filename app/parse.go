package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"lightblue/eval"
	"lightblue/nlp/format/deriv"
	"lightblue/nlp/format/raw"
	"lightblue/nlp/parser/chart"

	"github.com/gonuts/commander"
)

var (
	inRawFile, outFile string
	sentence           string
	outJSON            bool
	maxResults         int
)

func ParseConfigOut() {
	if len(sentence) > 0 {
		log.Printf("Sentence:\t\t%s", sentence)
	} else {
		log.Printf("Raw Input:\t\t%s", inRawFile)
		log.Printf("Limit:\t\t%v", limit)
	}
	log.Printf("Output:\t\t%s", outFile)
	log.Printf("JSON:\t\t\t%v", outJSON)
	log.Println()
}

func writeResult(writer io.Writer, sent string, result chart.ParseResult) error {
	nodes := result.Nodes
	if maxResults > 0 && len(nodes) > maxResults {
		nodes = nodes[:maxResults]
	}
	if outJSON {
		return deriv.WriteJSON(writer, nodes)
	}
	if _, err := fmt.Fprintf(writer, "# %s\t%v\n", sent, result.Outcome); err != nil {
		return err
	}
	return deriv.Write(writer, nodes)
}

func Parse(cmd *commander.Command, args []string) error {
	if len(sentence) == 0 {
		VerifyFlags(cmd, []string{"in"})
		if !VerifyExists(inRawFile) {
			os.Exit(1)
		}
	}
	c, err := LoadConf()
	if err != nil {
		return err
	}
	ConfigOut(c)
	ParseConfigOut()

	parser, err := SetupParser(c)
	if err != nil {
		return err
	}
	var sents []string
	if len(sentence) > 0 {
		sents = []string{sentence}
	} else {
		if sents, err = raw.ReadFile(inRawFile, limit); err != nil {
			panic(fmt.Sprintf("Failed reading raw file - %v", err))
		}
	}
	log.Println("Read", len(sents), "sentences")

	writer := io.Writer(os.Stdout)
	if len(outFile) > 0 {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalln("Failed creating output file", outFile, err)
		}
		defer file.Close()
		writer = file
	}

	stats := new(eval.Result)
	startTime := time.Now()
	for i, sent := range sents {
		if allOut && i%100 == 0 && i > 0 {
			log.Println("Parsing sentence", i)
		}
		result := chart.ExtractParseResult(c.Beam, parser.Parse(c.Beam, sent))
		stats.AddSentence(sent, result.Outcome)
		if err := writeResult(writer, sent, result); err != nil {
			return err
		}
	}
	if allOut {
		log.Println("PARSE Total Time:", time.Since(startTime))
	}
	log.Println(stats)
	for _, failed := range stats.Failures {
		log.Println("Failed:", failed)
	}
	return nil
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Parse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parse raw sentences into CCG derivations",
		Long: `
parse raw sentences into CCG derivations

	$ ./lightblue parse -in <raw file> [-out <output file>] [options]
	$ ./lightblue parse -s <sentence> [options]

`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	addConfFlags(cmd)
	cmd.Flag.StringVar(&inRawFile, "in", "", "Input raw file, one sentence per line")
	cmd.Flag.StringVar(&sentence, "s", "", "Parse a single sentence")
	cmd.Flag.StringVar(&outFile, "out", "", "Output file (default stdout)")
	cmd.Flag.BoolVar(&outJSON, "json", false, "Write derivations as JSON")
	cmd.Flag.IntVar(&maxResults, "n", 0, "Derivations to print per sentence; 0 = all")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit input sentences")
	return cmd
}
