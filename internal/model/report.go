package model

import "time"

// Solution is the minimum final value for one seed reading.
type Solution struct {
	Mode    SeedMode
	Minimum uint64
	Seeds   uint64 // count of seed values covered
	Inputs  int    // individual values or ranges fed to the pipeline
	Outputs int    // final values or ranges after the last stage
}

// TraceStep records a value after one stage.
type TraceStep struct {
	Stage string
	Value uint64
}

// Trace follows one seed through every stage.
type Trace struct {
	Seed  uint64
	Steps []TraceStep
}

// Final is the value after the last stage.
func (t Trace) Final() uint64 {
	if len(t.Steps) == 0 {
		return t.Seed
	}

	return t.Steps[len(t.Steps)-1].Value
}

// IssueKind classifies a validation finding.
type IssueKind string

const (
	// IssueOverlap marks two rules of one stage sharing inputs.
	IssueOverlap IssueKind = "overlap"
	// IssueChain marks consecutive stages whose categories do not line up.
	IssueChain IssueKind = "chain"
)

// Issue is one validation finding.
type Issue struct {
	Kind    IssueKind
	Stage   string
	Message string
}

// Report is the persisted outcome of a solve run.
type Report struct {
	File      Path             `json:"file" yaml:"file" toml:"file"`
	Hash      string           `json:"hash" yaml:"hash" toml:"hash"`
	Stages    int              `json:"stages" yaml:"stages" toml:"stages"`
	Workers   int              `json:"workers" yaml:"workers" toml:"workers"`
	Solutions []SolutionRecord `json:"solutions" yaml:"solutions" toml:"solutions"`
	SolvedAt  time.Time        `json:"solved_at" yaml:"solved_at" toml:"solved_at"`
}

// SolutionRecord is the serialisable form of a Solution.
type SolutionRecord struct {
	Mode     SeedMode `json:"mode" yaml:"mode" toml:"mode"`
	Minimum  uint64   `json:"minimum" yaml:"minimum" toml:"minimum"`
	Seeds    uint64   `json:"seeds" yaml:"seeds" toml:"seeds"`
	Inputs   int      `json:"inputs" yaml:"inputs" toml:"inputs"`
	Outputs  int      `json:"outputs" yaml:"outputs" toml:"outputs"`
	Duration string   `json:"duration" yaml:"duration" toml:"duration"`
}

// HistoryEntry is one row of the solve history.
type HistoryEntry struct {
	ID       int64
	File     Path
	Hash     string
	Mode     SeedMode
	Minimum  uint64
	Duration time.Duration
	SolvedAt time.Time
}
