package domain

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	m "github.com/mouse-blink/almanac/internal/model"
)

const (
	seedPrefix    = "seeds:"
	headerSuffix  = " map:"
	endOfInput    = "end of input"
	maxLineLength = 1 << 20
)

// DefaultSections lists the stages of a standard almanac, in order.
var DefaultSections = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

// Almanac is a parsed input: the seed line and the pipeline built from its sections.
type Almanac struct {
	Seeds    m.Seeds
	Pipeline *Pipeline
}

// SeedValues reads the seed line as individual seeds.
func (a *Almanac) SeedValues() []uint64 {
	return a.Seeds.Values()
}

// SeedRanges reads the seed line as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]m.Range, error) {
	ranges, err := a.Seeds.Ranges()
	if err != nil {
		return nil, &ParseError{Kind: KindMalformedSeedLine, Line: 1, Err: err}
	}

	return ranges, nil
}

// Document describes the almanac for display and export.
func (a *Almanac) Document(file m.Path) m.AlmanacDocument {
	doc := m.AlmanacDocument{
		File:   file,
		Seeds:  a.Seeds.Values(),
		Stages: make([]m.StageDocument, 0, a.Pipeline.Len()),
	}

	for _, stage := range a.Pipeline.Stages() {
		rules := stage.Rules()

		sd := m.StageDocument{
			Name:     stage.Name(),
			From:     stage.Source(),
			To:       stage.Destination(),
			Rules:    make([]m.RuleDocument, 0, len(rules)),
			Coverage: stage.Coverage(),
		}

		for _, rule := range rules {
			sd.Rules = append(sd.Rules, m.RuleDocument{
				Destination: rule.Destination,
				Source:      rule.Source,
				Length:      rule.Length,
			})
		}

		doc.Stages = append(doc.Stages, sd)
	}

	return doc
}

// LoaderOption customises Parse.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	sections []string
	anyNames bool
	strict   bool
}

// WithSections replaces the expected section names and their order.
func WithSections(names ...string) LoaderOption {
	return func(c *loaderConfig) {
		c.sections = append([]string(nil), names...)
		c.anyNames = false
	}
}

// WithAnySections accepts any section names, kept in the order they appear.
func WithAnySections() LoaderOption {
	return func(c *loaderConfig) {
		c.anyNames = true
	}
}

// WithStrict rejects pipelines with overlapping rules or a broken stage chain.
func WithStrict() LoaderOption {
	return func(c *loaderConfig) {
		c.strict = true
	}
}

// ParseString parses an almanac held in memory.
func ParseString(text string, opts ...LoaderOption) (*Almanac, error) {
	return Parse(strings.NewReader(text), opts...)
}

// Parse reads the seed line followed by blank-line separated "<name> map:"
// sections of "<destination> <source> <length>" lines. The first malformed
// construct aborts parsing.
func Parse(r io.Reader, opts ...LoaderOption) (*Almanac, error) {
	cfg := &loaderConfig{sections: DefaultSections}
	for _, opt := range opts {
		opt(cfg)
	}

	lr := newLineReader(r)

	seeds, err := parseSeedLine(lr)
	if err != nil {
		return nil, err
	}

	var stages []*Stage

	for {
		header, ok := lr.nextNonBlank()
		if !ok {
			break
		}

		name, err := cfg.checkHeader(len(stages), header, lr.line)
		if err != nil {
			return nil, err
		}

		rules, err := parseRules(lr, name)
		if err != nil {
			return nil, err
		}

		stages = append(stages, NewStage(name, rules...))
	}

	if err := lr.err(); err != nil {
		return nil, err
	}

	if !cfg.anyNames && len(stages) < len(cfg.sections) {
		return nil, &ParseError{Kind: KindMissingSectionHeader, Expected: cfg.sections[len(stages)]}
	}

	almanac := &Almanac{Seeds: seeds, Pipeline: NewPipeline(stages...)}

	if cfg.strict {
		if err := almanac.Pipeline.Validate(); err != nil {
			return nil, err
		}
	}

	return almanac, nil
}

func parseSeedLine(lr *lineReader) (m.Seeds, error) {
	text, ok := lr.next()
	if !ok {
		if err := lr.err(); err != nil {
			return m.Seeds{}, err
		}

		return m.Seeds{}, &ParseError{Kind: KindMissingSeedLine}
	}

	rest, ok := strings.CutPrefix(text, seedPrefix)
	if !ok {
		return m.Seeds{}, &ParseError{Kind: KindMissingSeedLine, Line: lr.line, Found: text}
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return m.Seeds{}, &ParseError{Kind: KindMalformedSeedLine, Line: lr.line, Found: text}
	}

	numbers := make([]uint64, 0, len(fields))

	for _, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return m.Seeds{}, &ParseError{Kind: KindMalformedSeedLine, Line: lr.line, Found: field, Err: err}
		}

		numbers = append(numbers, n)
	}

	return m.NewSeeds(numbers...), nil
}

// checkHeader validates the header of the index-th section and returns its name.
func (c *loaderConfig) checkHeader(index int, header string, line int) (string, error) {
	name, isHeader := strings.CutSuffix(header, headerSuffix)
	isHeader = isHeader && name != "" && !strings.ContainsAny(name, " \t")

	if c.anyNames {
		if !isHeader {
			return "", &ParseError{Kind: KindMissingSectionHeader, Line: line, Found: header}
		}

		return name, nil
	}

	if index >= len(c.sections) {
		return "", &ParseError{Kind: KindUnexpectedSectionOrder, Line: line, Expected: endOfInput, Found: header}
	}

	expected := c.sections[index]

	switch {
	case !isHeader:
		return "", &ParseError{Kind: KindMissingSectionHeader, Line: line, Expected: expected, Found: header}
	case name == expected:
		return name, nil
	case slices.Contains(c.sections, name):
		return "", &ParseError{Kind: KindUnexpectedSectionOrder, Line: line, Expected: expected, Found: name}
	default:
		return "", &ParseError{Kind: KindMissingSectionHeader, Line: line, Expected: expected, Found: header}
	}
}

// parseRules reads rule lines up to a blank line or the end of input.
func parseRules(lr *lineReader, section string) ([]m.Rule, error) {
	var rules []m.Rule

	for {
		text, ok := lr.next()
		if !ok || text == "" {
			return rules, nil
		}

		rule, err := parseRule(text)
		if err != nil {
			return nil, &ParseError{Kind: KindMalformedNumberLine, Line: lr.line, Section: section, Found: text, Err: err}
		}

		rules = append(rules, rule)
	}
}

func parseRule(text string) (m.Rule, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return m.Rule{}, fmt.Errorf("want 3 numbers, got %d", len(fields))
	}

	var triple [3]uint64

	for i, field := range fields {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return m.Rule{}, err
		}

		triple[i] = n
	}

	return m.NewRule(triple[0], triple[1], triple[2])
}

// lineReader yields trimmed lines and counts them.
type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func newLineReader(r io.Reader) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	return &lineReader{scanner: scanner}
}

func (lr *lineReader) next() (string, bool) {
	if !lr.scanner.Scan() {
		return "", false
	}

	lr.line++

	return strings.TrimSpace(lr.scanner.Text()), true
}

func (lr *lineReader) nextNonBlank() (string, bool) {
	for {
		text, ok := lr.next()
		if !ok || text != "" {
			return text, ok
		}
	}
}

func (lr *lineReader) err() error {
	if err := lr.scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
