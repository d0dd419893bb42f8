package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bent101/wordle-signal/fingerprint"
	"github.com/bent101/wordle-signal/score"
)

// Config holds everything a session needs. It is passed to the commands
// explicitly rather than kept in globals.
type Config struct {
	Words        WordsConfig        `yaml:"words"`
	Fingerprints FingerprintsConfig `yaml:"fingerprints"`
	Build        BuildConfig        `yaml:"build"`
	Rank         RankConfig         `yaml:"rank"`

	// PuzzleNumber overrides today's puzzle number; 0 means every listed
	// prior solution counts.
	PuzzleNumber int  `yaml:"puzzle_number"`
	Debug        bool `yaml:"debug"`
}

// WordsConfig points at the word lists.
type WordsConfig struct {
	Legal      string   `yaml:"legal"`
	Dracos     string   `yaml:"dracos"`
	Dictionary string   `yaml:"dictionary"`
	Extra      []string `yaml:"extra"`
	Plurals    string   `yaml:"plurals"`
	Solutions  string   `yaml:"solutions"`
}

// FingerprintsConfig points at the saved fingerprint stores.
type FingerprintsConfig struct {
	NYT    string `yaml:"nyt"`
	Dracos string `yaml:"dracos"`
}

type BuildConfig struct {
	BatchSize int           `yaml:"batch_size"`
	Pause     time.Duration `yaml:"pause"`
	Compress  bool          `yaml:"compress"`
}

type RankConfig struct {
	DuplicateDiscount  bool `yaml:"duplicate_discount"`
	PluralDiscount     bool `yaml:"plural_discount"`
	DropPriorSolutions bool `yaml:"drop_prior_solutions"`
	ScrabbleTiebreak   bool `yaml:"scrabble_tiebreak"`
}

func Default() *Config {
	return &Config{
		Words: WordsConfig{
			Legal:      "io/guesses.txt",
			Dracos:     "io/dracos.txt",
			Dictionary: "io/answers.txt",
			Plurals:    "io/plurals.txt",
			Solutions:  "io/solutions.txt",
		},
		Fingerprints: FingerprintsConfig{
			NYT:    "io/fingerprints_nyt.json",
			Dracos: "io/fingerprints_dracos.json",
		},
		Build: BuildConfig{
			BatchSize: fingerprint.DefaultBatchSize,
			Pause:     time.Second,
			Compress:  true,
		},
		Rank: RankConfig{
			DuplicateDiscount:  true,
			PluralDiscount:     true,
			DropPriorSolutions: true,
			ScrabbleTiebreak:   true,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// FingerprintPaths maps each reference list to its file.
func (c *Config) FingerprintPaths() map[fingerprint.Reference]string {
	return map[fingerprint.Reference]string{
		fingerprint.NYT:    c.Fingerprints.NYT,
		fingerprint.Dracos: c.Fingerprints.Dracos,
	}
}

// GuessList is the word list a reference's fingerprints are computed over.
func (c *Config) GuessList(ref fingerprint.Reference) (string, bool) {
	switch ref {
	case fingerprint.NYT:
		return c.Words.Legal, true
	case fingerprint.Dracos:
		return c.Words.Dracos, true
	}
	return "", false
}

// RankOptions turns the rank switches into score options. The word sets are
// filled in by the caller.
func (c *Config) RankOptions() score.Options {
	return score.Options{
		DuplicateDiscount:  c.Rank.DuplicateDiscount,
		PluralDiscount:     c.Rank.PluralDiscount,
		DropPriorSolutions: c.Rank.DropPriorSolutions,
		ScrabbleTiebreak:   c.Rank.ScrabbleTiebreak,
		PuzzleNumber:       c.PuzzleNumber,
	}
}
