package app

import (
	"flag"
	"log"
	"os"
	"runtime"
	"strings"

	"lightblue/nlp/lexicon"
	"lightblue/nlp/parser/chart"
	"lightblue/util/conf"

	"github.com/gonuts/commander"
)

const (
	NUM_CPUS_FLAG = "cpus"
)

var (
	allOut bool = true

	// processing options
	CPUs     int
	beamSize int
	limit    int

	// file names
	confFile  string
	dictFiles string
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		ParseCmd(),
		ReplCmd(),
		ServeCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0],
		Short:       "CCG parser for Japanese",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("app", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		log.Printf("Warning: Number of CPUs capped to all available (%d)", maxCPUs)
		CPUs = 0
	}
	if CPUs == 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}

	return wrapped
}

// addConfFlags registers the flags shared by every command.
func addConfFlags(cmd *commander.Command) {
	cmd.Flag.StringVar(&confFile, "conf", "", "YAML configuration file")
	cmd.Flag.IntVar(&beamSize, "beam", 0, "Beam width; 0 = as configured")
	cmd.Flag.StringVar(&dictFiles, "dict", "", "Comma separated Juman dictionary files added to the configured ones")
}

// LoadConf reads the configuration file, if any, and applies the command
// line overrides.
func LoadConf() (*conf.Conf, error) {
	c := conf.Default()
	if len(confFile) > 0 {
		var err error
		if c, err = conf.ReadFile(confFile); err != nil {
			return nil, err
		}
	}
	if beamSize > 0 {
		c.Beam = beamSize
	}
	if len(dictFiles) > 0 {
		c.Lexicon.Dictionaries = append(c.Lexicon.Dictionaries, strings.Split(dictFiles, ",")...)
	}
	return c, c.Validate()
}

func ConfigOut(c *conf.Conf) {
	log.Println("Configuration")
	log.Printf("Conf File:\t\t%s", confFile)
	log.Printf("Beam:\t\t\t%d", c.Beam)
	log.Printf("Max Word Length:\t%d", c.MaxWordLength)
	log.Printf("Penalties:\t\t%v / %v / %v", c.Penalty.CrossedComposition1, c.Penalty.CrossedComposition2, c.Penalty.CrossedSubstitution)
	log.Printf("Static Lexicon:\t%v", c.Lexicon.Static)
	log.Printf("Sample Dictionary:\t%v", c.Lexicon.Sample)
	log.Printf("Dictionaries:\t\t%s", strings.Join(c.Lexicon.Dictionaries, ", "))
	log.Println()
}

func SetupParser(c *conf.Conf) (*chart.Parser, error) {
	lex, err := lexicon.Load(c.Lexicon)
	if err != nil {
		return nil, err
	}
	if allOut {
		log.Println("Lexicon has", lex.Len(), "entries")
	}
	return lexicon.NewParser(lex, c), nil
}

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
