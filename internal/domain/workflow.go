package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mouse-blink/almanac/internal/adapter"
	"github.com/mouse-blink/almanac/internal/controller"
	m "github.com/mouse-blink/almanac/internal/model"
)

// ErrHistoryDisabled is returned by History when no history store is configured.
var ErrHistoryDisabled = errors.New("solve history is disabled")

// LoadArgs selects an almanac file and how strictly to read it.
type LoadArgs struct {
	Path        m.Path
	Sections    []string
	AnySections bool
	Strict      bool
}

// SolveArgs configures Solve.
type SolveArgs struct {
	LoadArgs
	Mode    m.SeedMode
	Workers int
	Report  m.Path
	Watch   bool
}

// InspectArgs configures Inspect. An empty Format or "table" uses the UI;
// json, yaml and toml are written to Out.
type InspectArgs struct {
	LoadArgs
	Format string
	Out    io.Writer
}

// TraceArgs configures Trace. With no Seeds the seed line is traced.
type TraceArgs struct {
	LoadArgs
	Seeds []uint64
}

// HistoryArgs configures History. Limit <= 0 lists everything.
type HistoryArgs struct {
	Limit int
}

// Workflow defines the use cases behind the CLI commands.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	Inspect(ctx context.Context, args InspectArgs) error
	Trace(ctx context.Context, args TraceArgs) error
	Validate(ctx context.Context, args LoadArgs) error
	History(ctx context.Context, args HistoryArgs) error
}

type workflow struct {
	fs      adapter.AlmanacFSAdapter
	reports adapter.ReportStore
	history adapter.HistoryStore
	watcher adapter.FileWatcher
	ui      controller.UI
	logger  *slog.Logger
	now     func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
// history and watcher may be nil, which disables recording and --watch.
func NewWorkflow(
	fs adapter.AlmanacFSAdapter,
	reports adapter.ReportStore,
	history adapter.HistoryStore,
	watcher adapter.FileWatcher,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	return &workflow{
		fs:      fs,
		reports: reports,
		history: history,
		watcher: watcher,
		ui:      ui,
		logger:  logger,
		now:     time.Now,
	}
}

// Solve prints the lowest location for each requested seed reading, then
// optionally keeps solving whenever the file changes.
func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	err := w.solveOnce(ctx, args)
	if !args.Watch {
		return err
	}

	if w.watcher == nil {
		return errors.New("watch mode is not available")
	}

	if err != nil {
		w.ui.DisplayError(err)
	}

	changes, err := w.watcher.Watch(ctx, args.Path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	w.ui.DisplayWatching(args.Path)

	for range changes {
		w.logger.Debug("almanac changed", "file", args.Path)

		if err := w.solveOnce(ctx, args); err != nil {
			if ctx.Err() != nil {
				break
			}

			w.logger.Warn("solve failed", "file", args.Path, "error", err)
			w.ui.DisplayError(err)
		}
	}

	return nil
}

func (w *workflow) solveOnce(ctx context.Context, args SolveArgs) error {
	almanac, err := w.load(args.LoadArgs)
	if err != nil {
		return err
	}

	mode := args.Mode
	if mode == "" {
		mode = m.SeedRanges
	}

	solver := NewSolver(almanac.Pipeline, args.Workers)
	solvedAt := w.now()

	solutions := make([]m.Solution, 0, 2)
	records := make([]m.SolutionRecord, 0, 2)
	durations := make([]time.Duration, 0, 2)

	for _, reading := range mode.Modes() {
		start := time.Now()

		solution, err := solveReading(ctx, solver, almanac, reading)
		if err != nil {
			return err
		}

		elapsed := time.Since(start)

		w.logger.Info("solved",
			"file", args.Path,
			"mode", reading,
			"minimum", solution.Minimum,
			"workers", solver.Workers(),
			"duration", elapsed,
		)

		solutions = append(solutions, solution)
		durations = append(durations, elapsed)
		records = append(records, m.SolutionRecord{
			Mode:     solution.Mode,
			Minimum:  solution.Minimum,
			Seeds:    solution.Seeds,
			Inputs:   solution.Inputs,
			Outputs:  solution.Outputs,
			Duration: elapsed.String(),
		})
	}

	if err := w.ui.DisplaySolutions(args.Path, solutions); err != nil {
		return err
	}

	if args.Report == "" && w.history == nil {
		return nil
	}

	file, hash, err := w.fingerprint(args.Path)
	if err != nil {
		return err
	}

	if args.Report != "" {
		report := m.Report{
			File:      file,
			Hash:      hash,
			Stages:    almanac.Pipeline.Len(),
			Workers:   solver.Workers(),
			Solutions: records,
			SolvedAt:  solvedAt,
		}

		if err := w.reports.SaveReport(args.Report, report); err != nil {
			return err
		}

		w.logger.Debug("report saved", "path", args.Report)
	}

	w.record(ctx, file, hash, solvedAt, solutions, durations)

	return nil
}

func solveReading(ctx context.Context, solver *Solver, almanac *Almanac, mode m.SeedMode) (m.Solution, error) {
	if mode == m.SeedValues {
		values := almanac.SeedValues()

		low, err := solver.MinimumOverValues(ctx, values)
		if err != nil {
			return m.Solution{}, err
		}

		return m.Solution{
			Mode:    mode,
			Minimum: low,
			Seeds:   uint64(len(values)),
			Inputs:  len(values),
			Outputs: len(values),
		}, nil
	}

	ranges, err := almanac.SeedRanges()
	if err != nil {
		return m.Solution{}, err
	}

	out, err := solver.ApplyRanges(ctx, ranges)
	if err != nil {
		return m.Solution{}, err
	}

	if len(out) == 0 {
		return m.Solution{}, ErrNoSeeds
	}

	return m.Solution{
		Mode:    mode,
		Minimum: out[0].Start,
		Seeds:   m.TotalLength(ranges),
		Inputs:  len(ranges),
		Outputs: len(out),
	}, nil
}

// record stores each solution in the history. Failures are logged and
// otherwise ignored.
func (w *workflow) record(ctx context.Context, file m.Path, hash string, at time.Time, solutions []m.Solution, durations []time.Duration) {
	if w.history == nil {
		return
	}

	for i, solution := range solutions {
		id, err := w.history.Record(ctx, m.HistoryEntry{
			File:     file,
			Hash:     hash,
			Mode:     solution.Mode,
			Minimum:  solution.Minimum,
			Duration: durations[i],
			SolvedAt: at,
		})
		if err != nil {
			w.logger.Warn("failed to record solve", "file", file, "error", err)
			continue
		}

		w.logger.Debug("recorded solve", "id", id, "mode", solution.Mode)
	}
}

// Inspect shows the parsed almanac or exports it in a serialisation format.
func (w *workflow) Inspect(_ context.Context, args InspectArgs) error {
	almanac, err := w.load(args.LoadArgs)
	if err != nil {
		return err
	}

	doc := almanac.Document(args.Path)

	if args.Format == "" || args.Format == "table" {
		return w.ui.DisplayAlmanac(doc)
	}

	format, err := adapter.ParseFormat(args.Format)
	if err != nil {
		return err
	}

	if args.Out == nil {
		return errors.New("inspect: no output writer")
	}

	return adapter.Encode(args.Out, format, doc)
}

// Trace follows seeds through every stage.
func (w *workflow) Trace(ctx context.Context, args TraceArgs) error {
	almanac, err := w.load(args.LoadArgs)
	if err != nil {
		return err
	}

	seeds := args.Seeds
	if len(seeds) == 0 {
		seeds = almanac.SeedValues()
	}

	traces := make([]m.Trace, 0, len(seeds))

	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return err
		}

		trace, err := almanac.Pipeline.Trace(seed)
		if err != nil {
			return err
		}

		traces = append(traces, trace)
	}

	return w.ui.DisplayTraces(traces)
}

// Validate reports overlapping rules and broken stage chains. It returns
// ErrInvalidAlmanac when anything was found.
func (w *workflow) Validate(_ context.Context, args LoadArgs) error {
	// Strict loading would stop at the first finding.
	args.Strict = false

	almanac, err := w.load(args)
	if err != nil {
		return err
	}

	issues := collectIssues(almanac.Pipeline)

	if err := w.ui.DisplayValidation(args.Path, issues); err != nil {
		return err
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d issue(s)", ErrInvalidAlmanac, len(issues))
	}

	return nil
}

// History lists recorded solves, newest first.
func (w *workflow) History(ctx context.Context, args HistoryArgs) error {
	if w.history == nil {
		return ErrHistoryDisabled
	}

	entries, err := w.history.List(ctx, args.Limit)
	if err != nil {
		return err
	}

	return w.ui.DisplayHistory(entries)
}

func (w *workflow) load(args LoadArgs) (*Almanac, error) {
	f, err := w.fs.Open(args.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	defer func() {
		_ = f.Close()
	}()

	almanac, err := Parse(f, args.options()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", args.Path, err)
	}

	w.logger.Debug("loaded almanac",
		"file", args.Path,
		"seeds", almanac.Seeds.Len(),
		"stages", almanac.Pipeline.Len(),
	)

	return almanac, nil
}

func (w *workflow) fingerprint(path m.Path) (m.Path, string, error) {
	abs, err := w.fs.Abs(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	hash, err := w.fs.HashFile(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	return abs, hash, nil
}

func (a LoadArgs) options() []LoaderOption {
	var opts []LoaderOption

	if len(a.Sections) > 0 {
		opts = append(opts, WithSections(a.Sections...))
	}

	if a.AnySections {
		opts = append(opts, WithAnySections())
	}

	if a.Strict {
		opts = append(opts, WithStrict())
	}

	return opts
}

func collectIssues(p *Pipeline) []m.Issue {
	var issues []m.Issue

	for _, stage := range p.Stages() {
		for _, c := range stage.Conflicts() {
			issues = append(issues, m.Issue{
				Kind:    m.IssueOverlap,
				Stage:   c.Stage,
				Message: fmt.Sprintf("value %d matched %d rules", c.Value, c.Matches),
			})
		}
	}

	for _, c := range p.ChainErrors() {
		issues = append(issues, m.Issue{
			Kind:    m.IssueChain,
			Stage:   c.Previous,
			Message: fmt.Sprintf("produces %q but %q consumes %q", c.Produces, c.Next, c.Consumes),
		})
	}

	return issues
}
