package controller

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"

	m "github.com/mouse-blink/almanac/internal/model"
)

// TUI implements UI with styled terminal output and an interactive stage
// browser for almanacs that do not fit on one screen.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayAlmanac prints the almanac, or opens the stage browser when it is
// taller than the terminal.
func (t *TUI) DisplayAlmanac(doc m.AlmanacDocument) error {
	model := newInspectModel(doc)

	if width, height, ok := t.size(); ok {
		model.width = width
		model.height = height
	}

	// If the almanac is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprintln(t.output, renderDocument(doc))
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySolutions prints a solutions table.
func (t *TUI) DisplaySolutions(file m.Path, solutions []m.Solution) error {
	rows := make([][]string, 0, len(solutions))
	for _, sol := range solutions {
		rows = append(rows, []string{
			string(sol.Mode),
			strconv.FormatUint(sol.Minimum, 10),
			strconv.FormatUint(sol.Seeds, 10),
			fmt.Sprintf("%d → %d", sol.Inputs, sol.Outputs),
		})
	}

	tbl := newStyledTable([]string{"Mode", "Lowest Location", "Seeds", "Ranges"}, rows, 1)

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌱 Almanac Solve"),
		subtleStyle.Render(string(file)),
		tbl,
	))

	return err
}

// DisplayTraces prints one line per seed with every intermediate value.
func (t *TUI) DisplayTraces(traces []m.Trace) error {
	lines := []string{titleStyle.Render("🌱 Almanac Trace")}

	for _, trace := range traces {
		parts := []string{accentStyle.Render(strconv.FormatUint(trace.Seed, 10))}

		for _, step := range trace.Steps {
			parts = append(parts, fmt.Sprintf("%s %s",
				subtleStyle.Render(stepLabel(step.Stage)),
				strconv.FormatUint(step.Value, 10),
			))
		}

		lines = append(lines, strings.Join(parts, subtleStyle.Render(" → ")))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayValidation prints a check mark or the list of findings.
func (t *TUI) DisplayValidation(file m.Path, issues []m.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(t.output, okStyle.Render("✓ "+string(file)+": no issues"))
		return err
	}

	lines := []string{errorStyle.Render(fmt.Sprintf("✗ %s: %d issue(s)", file, len(issues)))}
	for _, issue := range issues {
		lines = append(lines, fmt.Sprintf("  %s %s %s",
			warnStyle.Render(string(issue.Kind)),
			accentStyle.Render(issue.Stage),
			issue.Message,
		))
	}

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left, lines...))

	return err
}

// DisplayHistory prints recorded solves as a table.
func (t *TUI) DisplayHistory(entries []m.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(t.output, subtleStyle.Render("no recorded solves"))
		return err
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(entry.ID, 10),
			entry.SolvedAt.Local().Format(time.DateTime),
			string(entry.File),
			string(entry.Mode),
			strconv.FormatUint(entry.Minimum, 10),
			entry.Duration.Round(time.Microsecond).String(),
		})
	}

	tbl := newStyledTable([]string{"ID", "Solved At", "File", "Mode", "Minimum", "Duration"}, rows, 4)

	_, err := fmt.Fprintln(t.output, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌱 Almanac History"),
		tbl,
	))

	return err
}

// DisplayWatching announces watch mode.
func (t *TUI) DisplayWatching(file m.Path) {
	_, _ = fmt.Fprintln(t.output, subtleStyle.Render(fmt.Sprintf("👀 watching %s (ctrl+c to stop)", file)))
}

// DisplayError prints err in the error style.
func (t *TUI) DisplayError(err error) {
	_, _ = fmt.Fprintln(t.output, errorStyle.Render("✗ "+err.Error()))
}

func (t *TUI) size() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(f.Fd())
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func newStyledTable(headers []string, rows [][]string, highlight int) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == highlight:
				return accentStyle.Padding(0, 1)
			default:
				return cellStyle
			}
		}).
		String()
}

// stepLabel shortens "soil-to-fertilizer" to "fertilizer".
func stepLabel(stage string) string {
	if _, to, ok := strings.Cut(stage, "-to-"); ok && to != "" {
		return to
	}

	return stage
}
