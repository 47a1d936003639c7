package conf

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_BEAM            = 10
	DEFAULT_MAX_WORD_LENGTH = 23

	DEFAULT_SERVE_MAX_BEAM     = 64
	DEFAULT_SERVE_MAX_SENTENCE = 200
)

type Penalty struct {
	CrossedComposition1 float64 `yaml:"crossed_composition1"`
	CrossedComposition2 float64 `yaml:"crossed_composition2"`
	CrossedSubstitution float64 `yaml:"crossed_substitution"`
}

type Lexicon struct {
	Static       bool     `yaml:"static"`
	Sample       bool     `yaml:"sample"`
	Dictionaries []string `yaml:"dictionaries"`
}

// Serve bounds the work a single HTTP request may ask for.
type Serve struct {
	MaxBeam     int `yaml:"max_beam"`
	MaxSentence int `yaml:"max_sentence"`
}

type Conf struct {
	Beam          int     `yaml:"beam"`
	MaxWordLength int     `yaml:"max_word_length"`
	Log           bool    `yaml:"log"`
	Penalty       Penalty `yaml:"penalty"`
	Lexicon       Lexicon `yaml:"lexicon"`
	Serve         Serve   `yaml:"serve"`
}

func Default() *Conf {
	return &Conf{
		Beam:          DEFAULT_BEAM,
		MaxWordLength: DEFAULT_MAX_WORD_LENGTH,
		Penalty: Penalty{
			CrossedComposition1: 2,
			CrossedComposition2: 3,
			CrossedSubstitution: 2,
		},
		Lexicon: Lexicon{Static: true, Sample: true},
		Serve: Serve{
			MaxBeam:     DEFAULT_SERVE_MAX_BEAM,
			MaxSentence: DEFAULT_SERVE_MAX_SENTENCE,
		},
	}
}

// Read overlays the YAML document onto the defaults.
func Read(reader io.Reader) (*Conf, error) {
	data, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func ReadFile(filename string) (*Conf, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "opening configuration %s", filename)
	}
	defer file.Close()

	c, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", filename)
	}
	return c, nil
}

func (c *Conf) Validate() error {
	if c.Beam <= 0 {
		return errors.Errorf("beam must be positive, got %d", c.Beam)
	}
	if c.MaxWordLength <= 0 {
		return errors.Errorf("max_word_length must be positive, got %d", c.MaxWordLength)
	}
	if c.Serve.MaxBeam <= 0 || c.Serve.MaxSentence <= 0 {
		return errors.Errorf("serve limits must be positive, got %d and %d", c.Serve.MaxBeam, c.Serve.MaxSentence)
	}
	return nil
}

func (c *Conf) Write(writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	defer enc.Close()
	return enc.Encode(c)
}
