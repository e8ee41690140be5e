package proc

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/trigrep/trigrep/pkg/ngram"
)

// Result is the ranked outcome for one processed unit of text, a single
// file, a combined set of files, or stdin.
type Result struct {
	Source string
	Ranked []ngram.Entry
}

// unitOutput is the self-contained product of one worker unit: ranked
// results for the valid files of its chunk plus the files it skipped.
type unitOutput struct {
	results []Result
	skipped []string
}

// processChunk handles one chunk sequentially, in file order. Files failing
// the extension filter are skipped and reported; a read failure on an
// accepted file is fatal for the whole run. The context is checked between
// files so a sibling unit's failure stops remaining work early.
func (p *Processor) processChunk(ctx context.Context, chunk []string) (unitOutput, error) {
	var out unitOutput
	for _, path := range chunk {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if !p.accepted(path) {
			lgr.Printf("[DEBUG] skipping %s, extension not accepted", path)
			out.skipped = append(out.skipped, path)
			continue
		}
		data, err := os.ReadFile(path) //nolint:gosec // paths come from CLI flags
		if err != nil {
			return out, fmt.Errorf("read %s: %w", path, err)
		}
		ranked := ngram.Rank(ngram.Count(ngram.Normalize(string(data))))
		out.results = append(out.results, Result{Source: path, Ranked: ranked})
	}
	return out, nil
}

// accepted reports whether the file name ends with one of the accepted
// extensions.
func (p *Processor) accepted(path string) bool {
	for _, ext := range p.extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
