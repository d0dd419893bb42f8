package fingerprint

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var guesses = []string{"baker", "maker", "taker", "bakes", "brake", "break", "kebar", "raise", "arise"}

func TestOf(t *testing.T) {
	fp := Of("baker", guesses)
	assert.Equal(t, Fingerprint{
		"4g.1":        2,
		"4g.5":        1,
		"1g4y.green1": 2,
		"1g4y.green5": 1,
	}, fp)
	assert.Equal(t, 2, fp.FourGreen(1))
	assert.Equal(t, 0, fp.FourGreen(3))
	assert.True(t, fp.Has("1g4y.green5"))
	assert.False(t, fp.Has("0g5y."))
}

func TestCodecBijection(t *testing.T) {
	c := NewCodec()
	require.Equal(t, 51, c.Len())

	seen := map[string]bool{}
	for i := 0; i < c.Len(); i++ {
		k, ok := c.Decode(i)
		require.True(t, ok, i)
		assert.False(t, seen[k], "key %s decoded twice", k)
		seen[k] = true

		n, ok := c.Encode(k)
		require.True(t, ok, k)
		assert.Equal(t, i, n)
	}

	_, ok := c.Decode(51)
	assert.False(t, ok)
	_, ok = c.Decode(-1)
	assert.False(t, ok)
	_, ok = c.Encode("4g.1.1")
	assert.False(t, ok)
	assert.Equal(t, c.Hash(), DefaultCodec().Hash())
}

func TestCompressRoundTrip(t *testing.T) {
	c := DefaultCodec()
	for _, answer := range guesses {
		fp := Of(answer, guesses)
		cf, err := c.Compress(fp)
		require.NoError(t, err)
		back, err := c.Decompress(cf)
		require.NoError(t, err)
		assert.Equal(t, fp, back, answer)
	}

	_, err := c.Compress(Fingerprint{"4g.1.2": 1})
	assert.ErrorIs(t, err, ErrUnknownKey)
	_, err = c.Decompress(Compressed{99: 1})
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestBuildResumes(t *testing.T) {
	store := NewStore(Dracos)
	store.Fingerprints["baker"] = Fingerprint{"sentinel": 1}

	checkpoints := 0
	b := &Builder{
		BatchSize: 2,
		Checkpoint: func(s *Store) error {
			checkpoints++
			return nil
		},
	}
	require.NoError(t, b.Build(context.Background(), store, guesses[:5], guesses))

	assert.Len(t, store.Fingerprints, 5)
	assert.Equal(t, Fingerprint{"sentinel": 1}, store.Fingerprints["baker"])
	assert.Equal(t, Of("maker", guesses), store.Fingerprints["maker"])
	assert.Equal(t, 2, checkpoints)
}

func TestBuildStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (&Builder{}).Build(ctx, NewStore(NYT), guesses, guesses)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPausesBetweenBatches(t *testing.T) {
	const pause = 100 * time.Millisecond
	var entered, exited []time.Time
	b := &Builder{
		BatchSize: 1,
		Pause:     pause,
		Checkpoint: func(*Store) error {
			entered = append(entered, time.Now())
			time.Sleep(2 * pause)
			exited = append(exited, time.Now())
			return nil
		},
	}
	require.NoError(t, b.Build(context.Background(), NewStore(NYT), guesses[:3], guesses))

	require.Len(t, entered, 3)
	for i := 1; i < len(entered); i++ {
		assert.GreaterOrEqual(t, entered[i].Sub(exited[i-1]), pause, "gap before batch %d", i+1)
	}
}

func TestBuildStopsDuringPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := &Builder{
		BatchSize: 1,
		Pause:     time.Hour,
		Checkpoint: func(*Store) error {
			cancel()
			return nil
		},
	}
	store := NewStore(NYT)
	err := b.Build(ctx, store, guesses[:3], guesses)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, store.Fingerprints, 1)
}

func TestSaveRead(t *testing.T) {
	store := NewStore(NYT)
	for _, w := range guesses {
		store.Fingerprints[w] = Of(w, guesses)
	}

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, Save(&buf, store, compress))
		back, err := Read(&buf)
		require.NoError(t, err)
		assert.Equal(t, store, back)
	}
}

func TestReadRejectsOtherCodec(t *testing.T) {
	doc := `{"metadata":{"reference":"NYT","words":1,"compressed":true,"codec":"feedbeef"},"compressed":{"baker":{"0":1}}}`
	_, err := Read(bytes.NewBufferString(doc))
	assert.ErrorIs(t, err, ErrCodecMismatch)
}

func TestLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nyt.json")
	store := NewStore(NYT)
	store.Fingerprints["baker"] = Of("baker", guesses)
	require.NoError(t, SaveFile(path, store, true))

	l := NewLoader(map[Reference]string{NYT: path}, nil)
	got, err := l.Load("NYT")
	require.NoError(t, err)
	assert.Equal(t, store, got)

	again, err := l.Load("NYT")
	require.NoError(t, err)
	assert.Same(t, got, again)

	_, err = l.Load("Webster")
	assert.ErrorIs(t, err, ErrUnknownReference)
	_, err = l.Load("Dracos")
	assert.ErrorIs(t, err, ErrUnknownReference)
}
