package extractor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Watch re-extracts ids every WatchInterval until ctx is cancelled, so the
// output follows new versions of the objects. Resume only applies to the
// first round.
func (e *Extractor) Watch(ctx context.Context, ids []string) error {
	ticker := time.NewTicker(e.cfg.WatchInterval)
	defer ticker.Stop()

	for round := 1; ; round++ {
		stats, err := e.extract(ctx, ids, e.cfg.Resume && round == 1)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to extract objects: %w", err)
		}
		e.logger.Debug("Watch round finished",
			zap.Int("round", round),
			zap.Int("written", stats.Written),
			zap.Int("failed", stats.Failed))

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
