package scoring

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AssessAll scores profiles in parallel using at most workers goroutines
// (GOMAXPROCS when workers <= 0). Results are returned in input order. The
// first failing profile cancels the rest and its error is returned.
func (e *Engine) AssessAll(ctx context.Context, profiles []Profile, workers int) ([]*Assessment, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Assessment, len(profiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, p := range profiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, err := e.AssessProfile(p)
			if err != nil {
				return fmt.Errorf("profile %d (%s): %w", i, p.Name, err)
			}
			results[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Debug("batch assessed", zap.Int("profiles", len(profiles)), zap.Int("workers", workers))
	return results, nil
}
