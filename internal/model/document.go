package model

// RuleDocument is the serialisable form of a Rule.
type RuleDocument struct {
	Destination uint64 `json:"destination" yaml:"destination" toml:"destination"`
	Source      uint64 `json:"source" yaml:"source" toml:"source"`
	Length      uint64 `json:"length" yaml:"length" toml:"length"`
}

// StageDocument is the serialisable form of a stage.
type StageDocument struct {
	Name     string         `json:"name" yaml:"name" toml:"name"`
	From     string         `json:"from,omitempty" yaml:"from,omitempty" toml:"from,omitempty"`
	To       string         `json:"to,omitempty" yaml:"to,omitempty" toml:"to,omitempty"`
	Rules    []RuleDocument `json:"rules" yaml:"rules" toml:"rules"`
	Coverage uint64         `json:"coverage" yaml:"coverage" toml:"coverage"`
}

// AlmanacDocument describes a parsed almanac for inspection and export.
type AlmanacDocument struct {
	File   Path            `json:"file" yaml:"file" toml:"file"`
	Seeds  []uint64        `json:"seeds" yaml:"seeds" toml:"seeds"`
	Stages []StageDocument `json:"stages" yaml:"stages" toml:"stages"`
}
