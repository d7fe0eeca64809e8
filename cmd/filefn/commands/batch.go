package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"

	"github.com/filefn/filefn/pkg/log"
	"github.com/filefn/filefn/pkg/status"
)

// maxInFlight bounds concurrent transfers in a batch; each call still owns
// its own connector callback, so calls stay isolated from each other.
const maxInFlight = 4

// 🔍 expandSources expands a glob pattern into concrete source paths. A
// pattern without glob metacharacters is returned as-is, so single-file
// invocations never touch the filesystem here.
func expandSources(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[{") {
		return []string{pattern}, nil
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("expanding glob %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, errors.Errorf("no files match %q", pattern)
	}
	return matches, nil
}

// 🏃 runBatch fans one function call out per matched source
func runBatch(ctx context.Context, o *Opts, operation, pattern string, call func(ctx context.Context, source string) error) error {
	sources, err := expandSources(pattern)
	if err != nil {
		return err
	}

	o.Logger.Header(fmt.Sprintf("%s %s", operation, pattern))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInFlight)
	for _, source := range sources {
		source := source
		g.Go(func() error {
			start := time.Now()
			err := call(gctx, source)
			o.Logger.LogTransfer(gctx, log.TransferOperation{
				Operation: operation,
				Source:    source,
				Succeeded: err == nil,
				TimedOut:  status.IsTimeout(err),
				Elapsed:   time.Since(start),
			})
			if err != nil {
				o.UserLogger.LogResult(operation, source, err)
			}
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	o.Logger.Summary()
	return nil
}
