// Package report renders ranked sequence results for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/trigrep/trigrep/pkg/proc"
)

// Reporter writes ranked results and skipped-input reports to w, printing at
// most top ranked lines per unit.
type Reporter struct {
	w      io.Writer
	top    int
	header *color.Color
	warn   *color.Color
}

// New creates a reporter writing to w with the given per-unit line limit
func New(w io.Writer, top int) *Reporter {
	return &Reporter{
		w:      w,
		top:    top,
		header: color.New(color.FgCyan, color.Bold),
		warn:   color.New(color.FgYellow),
	}
}

// Print writes one unit: a header naming the unit followed by up to top
// ranked lines "<rank>. <trigram> - <count>". A unit without any sequences
// gets a "no sequences found" header instead.
func (r *Reporter) Print(res proc.Result) {
	source := res.Source
	if source == "" {
		source = "(no input)"
	}
	if len(res.Ranked) == 0 {
		r.header.Fprintf(r.w, "%s: no sequences found\n", source)
		return
	}
	r.header.Fprintf(r.w, "%s:\n", source)
	for i, entry := range res.Ranked {
		if i >= r.top {
			break
		}
		fmt.Fprintf(r.w, "%d. %s - %d\n", i+1, entry.Trigram, entry.Count)
	}
}

// PrintAll writes units in order
func (r *Reporter) PrintAll(results []proc.Result) {
	for _, res := range results {
		r.Print(res)
	}
}

// PrintSkipped writes the aggregate report of inputs rejected by the
// extension filter. Nothing is written when the list is empty.
func (r *Reporter) PrintSkipped(skipped []string) {
	if len(skipped) == 0 {
		return
	}
	r.warn.Fprintf(r.w, "skipped %d invalid input(s): %s\n", len(skipped), strings.Join(skipped, ", "))
}
