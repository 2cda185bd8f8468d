// Package ui renders user-facing summaries of generation runs.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.trai.ch/pynix/internal/core/domain"
)

var (
	envStyle    = color.New(color.FgCyan, color.Bold)
	cachedStyle = color.New(color.FgYellow)
	freshStyle  = color.New(color.FgGreen)
)

// PrintReport writes a one-line summary of a completed generation run.
func PrintReport(w io.Writer, r domain.Report) {
	_, _ = envStyle.Fprint(w, r.Environment)
	_, _ = fmt.Fprintf(w, "  %s (%d packages, %d roots)", r.Output, r.Packages, r.Roots)
	if r.CacheHit {
		_, _ = cachedStyle.Fprint(w, "  [cached]")
	} else {
		_, _ = freshStyle.Fprint(w, "  [generated]")
	}
	_, _ = fmt.Fprintln(w)
}

// PrintReports writes one summary line per run.
func PrintReports(w io.Writer, reports []domain.Report) {
	for _, r := range reports {
		PrintReport(w, r)
	}
}
