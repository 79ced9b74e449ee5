package netio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boolnet/attractor"
)

// Experiment describes one end-to-end benchmark run: network generation,
// state-space analysis, and dataset sampling. Zero fields take defaults
// from DefaultExperiment at load time.
type Experiment struct {
	// Nodes is the network size (required, ≥1).
	Nodes int `yaml:"nodes"`
	// Mode is the update discipline: "synchronous" or "asynchronous".
	Mode string `yaml:"mode"`
	// Seed drives network generation and sampling (0 → library default).
	Seed int64 `yaml:"seed"`
	// MaxParents caps parents per generated node.
	MaxParents int `yaml:"max_parents"`
	// Trajectories is the number of sampled dataset trajectories.
	Trajectories int `yaml:"trajectories"`
	// Length is the number of states per sampled trajectory.
	Length int `yaml:"length"`
	// SamplingFrequency keeps every k-th simulated state.
	SamplingFrequency int `yaml:"sampling_frequency"`
	// TransientFraction is the desired transient share per trajectory.
	TransientFraction float64 `yaml:"transient_fraction"`
	// MaxLength is the long-trajectory length backing the sampler.
	MaxLength int `yaml:"max_length"`
}

// DefaultExperiment returns the reference defaults; Nodes stays zero and
// must be provided by the file.
func DefaultExperiment() Experiment {
	return Experiment{
		Mode:              attractor.Synchronous.String(),
		MaxParents:        3,
		Trajectories:      1,
		Length:            10,
		SamplingFrequency: 1,
		TransientFraction: 0.5,
		MaxLength:         100,
	}
}

// LoadExperiment reads a YAML experiment file, applies defaults for omitted
// fields, and validates the result.
func LoadExperiment(path string) (*Experiment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	exp := DefaultExperiment()
	if err := yaml.Unmarshal(raw, &exp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExperiment, err)
	}
	if err := exp.Validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

// Validate checks every knob's range and the mode name.
func (e *Experiment) Validate() error {
	if e.Nodes < 1 {
		return fmt.Errorf("%w: nodes must be at least 1", ErrExperiment)
	}
	if _, err := ParseMode(e.Mode); err != nil {
		return err
	}
	if e.MaxParents < 0 {
		return fmt.Errorf("%w: max_parents must be non-negative", ErrExperiment)
	}
	if e.Trajectories < 1 {
		return fmt.Errorf("%w: trajectories must be at least 1", ErrExperiment)
	}
	if e.Length < 1 {
		return fmt.Errorf("%w: length must be at least 1", ErrExperiment)
	}
	if e.SamplingFrequency < 1 {
		return fmt.Errorf("%w: sampling_frequency must be at least 1", ErrExperiment)
	}
	if e.TransientFraction < 0 || e.TransientFraction > 1 {
		return fmt.Errorf("%w: transient_fraction must lie in [0,1]", ErrExperiment)
	}
	if e.MaxLength < e.Length {
		return fmt.Errorf("%w: max_length must be at least length", ErrExperiment)
	}
	return nil
}

// AnalysisMode resolves the configured mode name.
func (e *Experiment) AnalysisMode() (attractor.Mode, error) {
	return ParseMode(e.Mode)
}

// ParseMode maps an update-mode name onto the attractor enum.
func ParseMode(name string) (attractor.Mode, error) {
	switch name {
	case attractor.Synchronous.String():
		return attractor.Synchronous, nil
	case attractor.Asynchronous.String():
		return attractor.Asynchronous, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
