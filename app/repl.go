package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lightblue/nlp/format/deriv"
	"lightblue/nlp/parser/chart"

	"github.com/gonuts/commander"
	gflag "github.com/gonuts/flag"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const (
	REPL_PROMPT   = "lightblue> "
	HISTORY_FILE  = ".lightblue_history"
	REPL_MAX_SHOW = 3
)

type replSession struct {
	parser *chart.Parser
	beam   int
	show   int
	out    io.Writer
}

// set parses session options given as flags, e.g. ":set -beam 5 -show 2".
func (r *replSession) set(args []string) error {
	beam, show := r.beam, r.show
	fs := gflag.NewFlagSet(":set", gflag.ContinueOnError)
	fs.SetOutput(r.out)
	fs.IntVar(&beam, "beam", r.beam, "beam width")
	fs.IntVar(&show, "show", r.show, "number of derivations printed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return errors.Errorf("unexpected arguments %v", fs.Args())
	}
	if beam < 1 || show < 1 {
		return errors.Errorf("beam and show must be positive, got %d and %d", beam, show)
	}
	r.beam, r.show = beam, show
	fmt.Fprintf(r.out, "beam = %d, show = %d\n", r.beam, r.show)
	return nil
}

// command handles :quit, :set, :beam and :show. It reports whether the
// session should end.
func (r *replSession) command(line string) (bool, error) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":q", ":quit":
		return true, nil
	case ":set":
		return false, r.set(fields[1:])
	case ":beam", ":show":
		if len(fields) != 2 {
			return false, errors.Errorf("usage: %s N", fields[0])
		}
		return false, r.set([]string{"-" + fields[0][1:], fields[1]})
	case ":help":
		fmt.Fprintln(r.out, ":set -beam N -show N   set session options")
		fmt.Fprintln(r.out, ":beam N                set the beam width")
		fmt.Fprintln(r.out, ":show N                number of derivations printed")
		fmt.Fprintln(r.out, ":quit                  leave")
		return false, nil
	}
	return false, errors.Errorf("unknown command %s", fields[0])
}

func (r *replSession) parse(sentence string) {
	result := chart.ExtractParseResult(r.beam, r.parser.Parse(r.beam, sentence))
	fmt.Fprintf(r.out, "%v (%d)\n", result.Outcome, len(result.Nodes))
	for k, n := range result.Nodes {
		if k == r.show {
			break
		}
		fmt.Fprintf(r.out, "[%d]\n%s", k+1, deriv.Tree(n))
	}
}

// eval runs one line of input and reports whether the session should end.
func (r *replSession) eval(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case len(line) == 0:
		return false
	case strings.HasPrefix(line, ":"):
		done, err := r.command(line)
		if err != nil {
			fmt.Fprintln(r.out, err)
		}
		return done
	default:
		r.parse(line)
		return false
	}
}

func Repl(cmd *commander.Command, args []string) error {
	c, err := LoadConf()
	if err != nil {
		return err
	}
	allOut = false
	parser, err := SetupParser(c)
	if err != nil {
		return err
	}
	session := &replSession{parser: parser, beam: c.Beam, show: REPL_MAX_SHOW, out: os.Stdout}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, HISTORY_FILE)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	for {
		line, err := ln.Prompt(REPL_PROMPT)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if session.eval(line) {
			break
		}
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
	return nil
}

func ReplCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Repl,
		UsageLine: "repl [options]",
		Short:     "parse sentences interactively",
		Long: `
parse sentences interactively, printing the best derivations as trees

	$ ./lightblue repl [-conf <yaml>] [-beam N]

`,
		Flag: *flag.NewFlagSet("repl", flag.ExitOnError),
	}
	addConfFlags(cmd)
	return cmd
}
