package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/almanac/internal/model"
)

// stageItem is one row of the stage browser.
type stageItem struct {
	stage m.StageDocument
}

func (s stageItem) FilterValue() string {
	return s.stage.Name
}

type stageDelegate struct{}

func (d stageDelegate) Height() int  { return 1 }
func (d stageDelegate) Spacing() int { return 0 }
func (d stageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d stageDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	si, ok := item.(stageItem)
	if !ok {
		return
	}

	var nameStyle, countStyle lipgloss.Style

	if index == lm.Index() {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = nameStyle.Width(4).Align(lipgloss.Right)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(4).
			Align(lipgloss.Right)
	}

	width := lm.Width() - 6 // count (4) + spacing (2)

	_, _ = fmt.Fprintf(w, "%s  %s",
		countStyle.Render(strconv.Itoa(len(si.stage.Rules))),
		nameStyle.Render(truncateToWidth(si.stage.Name, width)),
	)
}

// inspectModel browses the stages of an almanac with the rules of the
// selected stage shown alongside.
type inspectModel struct {
	width  int
	height int
	doc    m.AlmanacDocument
	stages list.Model
}

func newInspectModel(doc m.AlmanacDocument) inspectModel {
	items := make([]list.Item, 0, len(doc.Stages))
	for _, stage := range doc.Stages {
		items = append(items, stageItem{stage: stage})
	}

	stages := list.New(items, stageDelegate{}, 32, 20)
	stages.SetShowPagination(false)
	stages.SetShowFilter(true)
	stages.SetShowHelp(false)
	stages.SetShowTitle(false)
	stages.SetShowStatusBar(false)
	stages.FilterInput.Placeholder = "Filter by stage…"

	return inspectModel{doc: doc, stages: stages}
}

// needsPagination reports whether the full document is taller than the
// terminal. An unknown height never paginates.
func (im inspectModel) needsPagination() bool {
	if im.height <= 0 {
		return false
	}

	return lipgloss.Height(renderDocument(im.doc)) > im.height
}

func (im inspectModel) Init() tea.Cmd {
	return nil
}

func (im inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.width = msg.Width
		im.height = msg.Height

	case tea.KeyMsg:
		if im.stages.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "ctrl+c", "esc":
				return im, tea.Quit
			}
		}

		im.stages, cmd = im.stages.Update(msg)
	}

	return im, cmd
}

func (im inspectModel) selected() (m.StageDocument, bool) {
	item, ok := im.stages.SelectedItem().(stageItem)
	if !ok {
		return m.StageDocument{}, false
	}

	return item.stage, true
}

func (im inspectModel) View() string {
	title := titleStyle.Render("🌱 Almanac " + string(im.doc.File))
	summary := lipgloss.NewStyle().Padding(0, 0, 1, 1).Render(fmt.Sprintf(
		"Seeds: %s   Stages: %s",
		accentStyle.Render(strconv.Itoa(len(im.doc.Seeds))),
		accentStyle.Render(strconv.Itoa(len(im.doc.Stages))),
	))

	// title (2) + summary (2) + footer (1) + borders (2)
	bodyHeight := im.height - 7
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	im.stages.SetHeight(bodyHeight)

	left := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Render(im.stages.View())

	rules := "no stage selected"
	if stage, ok := im.selected(); ok {
		rules = renderRules(stage, bodyHeight)
	}

	right := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(rules)

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(im.width).
		Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		footer,
	)
}

// renderRules lists up to limit rules of stage, noting how many were left out.
func renderRules(stage m.StageDocument, limit int) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s (%d rules, %d values)", stage.Name, len(stage.Rules), stage.Coverage)),
		headerStyle.Render(fmt.Sprintf("%20s %20s %20s", "destination", "source", "length")),
	}

	shown := stage.Rules
	if limit > 2 && len(shown) > limit-2 {
		shown = shown[:limit-3]
	}

	for _, rule := range shown {
		lines = append(lines, fmt.Sprintf("%20d %20d %20d", rule.Destination, rule.Source, rule.Length))
	}

	if hidden := len(stage.Rules) - len(shown); hidden > 0 {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("… %d more", hidden)))
	}

	return strings.Join(lines, "\n")
}

// renderDocument is the non-interactive rendering of the whole almanac.
func renderDocument(doc m.AlmanacDocument) string {
	blocks := []string{
		titleStyle.Render("🌱 Almanac " + string(doc.File)),
		fmt.Sprintf("Seeds: %s", accentStyle.Render(joinNumbers(doc.Seeds))),
	}

	for _, stage := range doc.Stages {
		blocks = append(blocks, "", renderRules(stage, 0))
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
