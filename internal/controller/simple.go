package controller

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	m "github.com/mouse-blink/almanac/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAlmanac prints the seed line and one row per stage.
func (s *SimpleUI) DisplayAlmanac(doc m.AlmanacDocument) error {
	s.printf("File: %s\n", doc.File)
	s.printf("Seeds (%d): %s\n", len(doc.Seeds), joinNumbers(doc.Seeds))

	table, buf := newTable([]string{"#", "Stage", "From", "To", "Rules", "Coverage"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	rules := 0

	for i, stage := range doc.Stages {
		table.Append([]string{
			strconv.Itoa(i + 1),
			stage.Name,
			stage.From,
			stage.To,
			strconv.Itoa(len(stage.Rules)),
			strconv.FormatUint(stage.Coverage, 10),
		})

		rules += len(stage.Rules)
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Stages %d", len(doc.Stages)), "", "", strconv.Itoa(rules), ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplaySolutions prints one row per seed reading.
func (s *SimpleUI) DisplaySolutions(file m.Path, solutions []m.Solution) error {
	s.printf("File: %s\n", file)

	table, buf := newTable([]string{"Mode", "Minimum", "Seeds", "Inputs", "Outputs"})

	for _, sol := range solutions {
		table.Append([]string{
			string(sol.Mode),
			strconv.FormatUint(sol.Minimum, 10),
			strconv.FormatUint(sol.Seeds, 10),
			strconv.Itoa(sol.Inputs),
			strconv.Itoa(sol.Outputs),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayTraces prints each seed followed by its value after every stage.
func (s *SimpleUI) DisplayTraces(traces []m.Trace) error {
	table, buf := newTable([]string{"Seed", "Stage", "Value"})

	for _, trace := range traces {
		seed := strconv.FormatUint(trace.Seed, 10)

		for i, step := range trace.Steps {
			label := ""
			if i == 0 {
				label = seed
			}

			table.Append([]string{label, step.Stage, strconv.FormatUint(step.Value, 10)})
		}

		if len(trace.Steps) == 0 {
			table.Append([]string{seed, "", seed})
		}
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayValidation prints the findings, or OK when there are none.
func (s *SimpleUI) DisplayValidation(file m.Path, issues []m.Issue) error {
	if len(issues) == 0 {
		s.printf("%s: OK\n", file)
		return nil
	}

	table, buf := newTable([]string{"Kind", "Stage", "Message"})

	for _, issue := range issues {
		table.Append([]string{string(issue.Kind), issue.Stage, issue.Message})
	}

	table.SetFooter([]string{fmt.Sprintf("Issues %d", len(issues)), "", ""})
	table.Render()
	s.printf("%s:\n\n%s", file, buf.String())

	return nil
}

// DisplayHistory prints recorded solves, newest first.
func (s *SimpleUI) DisplayHistory(entries []m.HistoryEntry) error {
	if len(entries) == 0 {
		s.printf("no recorded solves\n")
		return nil
	}

	table, buf := newTable([]string{"ID", "Solved At", "File", "Mode", "Minimum", "Duration"})

	for _, entry := range entries {
		table.Append([]string{
			strconv.FormatInt(entry.ID, 10),
			entry.SolvedAt.Local().Format(time.DateTime),
			string(entry.File),
			string(entry.Mode),
			strconv.FormatUint(entry.Minimum, 10),
			entry.Duration.Round(time.Microsecond).String(),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayWatching announces watch mode.
func (s *SimpleUI) DisplayWatching(file m.Path) {
	s.printf("watching %s for changes (ctrl+c to stop)\n", file)
}

// DisplayError prints err to the command's error stream.
func (s *SimpleUI) DisplayError(err error) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func joinNumbers(numbers []uint64) string {
	var buf bytes.Buffer

	for i, n := range numbers {
		if i > 0 {
			buf.WriteByte(' ')
		}

		buf.WriteString(strconv.FormatUint(n, 10))
	}

	return buf.String()
}
