package session

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// IngestAll ingests each of paths as an independent database, one Session
// per path, and returns every session alongside the first error any of
// them hit. Each session owns its own frame stack and label table — this
// is a host driving several unrelated single-threaded sessions
// concurrently, not parallelism within one session's internal state,
// which stays off-limits per spec.md's Non-goals.
func IngestAll(ctx context.Context, paths []string, verify bool, verbosity int) ([]*Session, error) {
	sessions := make([]*Session, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		sessions[i] = New(verbosity)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return sessions[i].IngestFile(path, verify)
		})
	}
	if err := g.Wait(); err != nil {
		return sessions, err
	}
	return sessions, nil
}
