package compliance

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/structcalc/isbeam/internal/section"
)

// JobResult is the outcome of one batch job. A job that fails its input
// contract carries the error here; it never aborts the rest of the batch.
type JobResult struct {
	Name   string  `json:"name"`
	Report *Report `json:"report,omitempty"`
	Err    string  `json:"err,omitempty"`
}

// RunBatch evaluates independent jobs concurrently. The engine is pure, so
// jobs need no coordination; results land in input order.
func RunBatch(ctx context.Context, jobs []section.Job, opts Options) []JobResult {
	results := make([]JobResult, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		i, job := i, job // per-iteration copies; go directive predates Go 1.22 loopvar semantics
		g.Go(func() error {
			results[i].Name = job.Name
			if err := ctx.Err(); err != nil {
				results[i].Err = err.Error()
				return nil
			}
			if err := job.Validate(); err != nil {
				results[i].Err = err.Error()
				return nil
			}
			report, err := Check(job.Section, job.Materials, job.Cases, opts)
			if err != nil {
				results[i].Err = err.Error()
				return nil
			}
			results[i].Report = report
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors; failures are per-job results
	return results
}
