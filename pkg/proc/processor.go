package proc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/trigrep/trigrep/pkg/ngram"
)

// StdinSource labels the result produced from standard input
const StdinSource = "stdin"

// Processor coordinates file processing across worker units
type Processor struct {
	workers    int
	extensions []string
}

// Params holds processor configuration
type Params struct {
	Workers    int
	Extensions []string
}

// New creates a processor, applying defaults for unset params
func New(params Params) *Processor {
	if params.Workers < 1 {
		params.Workers = 1
	}
	if len(params.Extensions) == 0 {
		params.Extensions = []string{".txt"}
	}
	return &Processor{workers: params.Workers, extensions: params.Extensions}
}

// ProcessCombined treats all accepted files as one logical unit: each file is
// normalized, the normalized texts are joined with single spaces, and one
// ranked list is produced tagged with the accepted file list. Skipped files
// are returned for aggregate reporting; a read failure is fatal.
func (p *Processor) ProcessCombined(files []string) (Result, []string, error) {
	var parts, accepted, skipped []string
	for _, path := range files {
		if !p.accepted(path) {
			skipped = append(skipped, path)
			continue
		}
		data, err := os.ReadFile(path) //nolint:gosec // paths come from CLI flags
		if err != nil {
			return Result{}, nil, fmt.Errorf("read %s: %w", path, err)
		}
		accepted = append(accepted, path)
		if normalized := ngram.Normalize(string(data)); normalized != "" {
			parts = append(parts, normalized)
		}
	}
	combined := strings.Join(parts, " ")
	res := Result{
		Source: strings.Join(accepted, ", "),
		Ranked: ngram.Rank(ngram.Count(combined)),
	}
	return res, skipped, nil
}

// ProcessParallel splits files into one chunk per worker and runs the chunks
// concurrently. Results are reassembled in chunk dispatch order, file order
// preserved within each chunk, so output is deterministic regardless of
// which worker finishes first. The first unit error aborts the whole run.
func (p *Processor) ProcessParallel(ctx context.Context, files []string) ([]Result, []string, error) {
	chunks := Split(files, p.workers)
	lgr.Printf("[DEBUG] dispatching %d files across %d workers", len(files), len(chunks))

	outputs := make([]unitOutput, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			out, err := p.processChunk(gctx, chunk)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var results []Result
	var skipped []string
	for _, out := range outputs {
		results = append(results, out.results...)
		skipped = append(skipped, out.skipped...)
	}
	return results, skipped, nil
}

// ProcessStream reads all lines from r, normalizes each line independently,
// joins the non-empty normalized lines with single spaces and produces one
// ranked list tagged as stdin.
func (p *Processor) ProcessStream(r io.Reader) (Result, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var parts []string
	for scanner.Scan() {
		if normalized := ngram.Normalize(scanner.Text()); normalized != "" {
			parts = append(parts, normalized)
		}
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read input stream: %w", err)
	}
	combined := strings.Join(parts, " ")
	return Result{Source: StdinSource, Ranked: ngram.Rank(ngram.Count(combined))}, nil
}

// ResolveWorkers parses the raw worker count from the command line.
// Non-numeric or non-positive values fall back to 1, counts above the host's
// CPU count are clamped, both with a warning.
func ResolveWorkers(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		lgr.Printf("[WARN] invalid worker count %q, using 1", raw)
		return 1
	}
	if n < 1 {
		lgr.Printf("[WARN] worker count %d out of range, using 1", n)
		return 1
	}
	if maxWorkers := runtime.NumCPU(); n > maxWorkers {
		lgr.Printf("[WARN] worker count %d exceeds %d available CPUs, reduced", n, maxWorkers)
		return maxWorkers
	}
	return n
}
