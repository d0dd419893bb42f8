package fingerprint

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Builder computes fingerprints for a whole reference list. This is the full
// cross product of two word lists, so it runs in batches: after each batch
// the checkpoint hook is called and the next batch waits out Pause.
type Builder struct {
	BatchSize int
	Pause     time.Duration
	Progress  bool
	Logger    *zap.Logger

	// Checkpoint, when set, is called after every batch with the store so
	// far. An error stops the build.
	Checkpoint func(*Store) error
}

const DefaultBatchSize = 500

// Build fills store with a fingerprint for every word of answers that it does
// not have yet, so a store read back from a checkpoint resumes where it left
// off.
func (b *Builder) Build(ctx context.Context, store *Store, answers, guesses []string) error {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	batchSize := b.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	var todo []string
	for _, w := range answers {
		if _, ok := store.Fingerprints[w]; !ok {
			todo = append(todo, w)
		}
	}
	logger.Info("building fingerprints",
		zap.String("reference", string(store.Reference)),
		zap.Int("words", len(answers)),
		zap.Int("remaining", len(todo)),
		zap.Int("guesses", len(guesses)))

	var bar *progressbar.ProgressBar
	if b.Progress {
		bar = progressbar.Default(int64(len(todo)), "fingerprints")
	} else {
		bar = progressbar.DefaultSilent(int64(len(todo)))
	}

	start := time.Now()

	for lo := 0; lo < len(todo); lo += batchSize {
		if lo > 0 {
			if err := pause(ctx, b.Pause); err != nil {
				return fmt.Errorf("waiting for next batch: %w", err)
			}
		} else if err := ctx.Err(); err != nil {
			return fmt.Errorf("waiting for next batch: %w", err)
		}

		hi := min(lo+batchSize, len(todo))
		for _, answer := range todo[lo:hi] {
			store.Fingerprints[answer] = Of(answer, guesses)
			bar.Add(1)
		}

		if b.Checkpoint != nil {
			if err := b.Checkpoint(store); err != nil {
				return fmt.Errorf("checkpoint after %d words: %w", hi, err)
			}
		}
		logger.Debug("batch done", zap.Int("done", hi), zap.Int("of", len(todo)))
	}

	bar.Finish()
	logger.Info("built fingerprints", zap.Int("words", len(store.Fingerprints)), zap.Duration("took", time.Since(start)))
	return nil
}

// pause waits a full d after the batch that just finished. The limiter
// starts with its token spent, so Wait cannot return early.
func pause(ctx context.Context, d time.Duration) error {
	limiter := rate.NewLimiter(rate.Every(d), 1)
	limiter.Allow()
	return limiter.Wait(ctx)
}
