package runner

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/skeldoc/pkg/fsutil"
	"github.com/yaklabco/skeldoc/pkg/langdetect"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// Runner orchestrates multi-file skeleton extraction.
type Runner struct {
	// Extractor handles per-file extraction.
	Extractor *skeleton.Extractor
}

// New creates a new Runner with the given extractor.
func New(extractor *skeleton.Extractor) *Runner {
	return &Runner{Extractor: extractor}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Confirms each file's language before extracting
//   - Processes files concurrently using a worker pool
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; collect into a map and rebuild
	// in discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// ProcessFile extracts the skeleton of a single file.
func (r *Runner) ProcessFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	lang := langdetect.Detect(path, content)
	if lang == langdetect.LangUnknown {
		outcome.Skipped = true
		return outcome
	}
	outcome.Language = lang

	root, err := r.Extractor.Extract(string(content))
	if err != nil {
		outcome.Error = fmt.Errorf("extract %s: %w", path, err)
		return outcome
	}
	outcome.Root = root

	return outcome
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.ProcessFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}
