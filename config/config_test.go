package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bent101/wordle-signal/fingerprint"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
words:
  legal: lists/legal.txt
  extra: [zoned, plonk]
fingerprints:
  dracos: fp/dracos.json
build:
  batch_size: 50
  pause: 250ms
rank:
  plural_discount: false
puzzle_number: 1200
debug: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lists/legal.txt", cfg.Words.Legal)
	assert.Equal(t, "io/answers.txt", cfg.Words.Dictionary)
	assert.Equal(t, []string{"zoned", "plonk"}, cfg.Words.Extra)
	assert.Equal(t, 50, cfg.Build.BatchSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Build.Pause)
	assert.True(t, cfg.Debug)

	opts := cfg.RankOptions()
	assert.False(t, opts.PluralDiscount)
	assert.True(t, opts.DuplicateDiscount)
	assert.Equal(t, 1200, opts.PuzzleNumber)

	assert.Equal(t, "fp/dracos.json", cfg.FingerprintPaths()[fingerprint.Dracos])

	list, ok := cfg.GuessList(fingerprint.Dracos)
	assert.True(t, ok)
	assert.Equal(t, "io/dracos.txt", list)
	_, ok = cfg.GuessList("Webster")
	assert.False(t, ok)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("build: [oops"), 0644))
	_, err := Load(path)
	assert.Error(t, err)
}
