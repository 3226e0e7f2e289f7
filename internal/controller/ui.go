// Package controller provides output adapters for displaying almanac results.
package controller

import (
	m "github.com/mouse-blink/almanac/internal/model"
)

// UI defines how commands present their results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayAlmanac shows the seeds and stages of a parsed almanac.
	DisplayAlmanac(doc m.AlmanacDocument) error
	// DisplaySolutions shows the minimum location for each seed reading.
	DisplaySolutions(file m.Path, solutions []m.Solution) error
	// DisplayTraces shows each seed's value after every stage.
	DisplayTraces(traces []m.Trace) error
	// DisplayValidation shows validation findings, or that there are none.
	DisplayValidation(file m.Path, issues []m.Issue) error
	// DisplayHistory lists recorded solves.
	DisplayHistory(entries []m.HistoryEntry) error
	// DisplayWatching announces that file is being watched.
	DisplayWatching(file m.Path)
	// DisplayError reports an error that does not end the run.
	DisplayError(err error)
}
