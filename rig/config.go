package rig

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sweep"
)

// ErrInvalidScene is returned for scene files that cannot be built.
var ErrInvalidScene = errors.New("rig: invalid scene")

// Preset names accepted in scene files.
const (
	PresetRobot1 = "robot1"
	PresetRobot2 = "robot2"
	PresetGantry = "gantry"
	PresetBar    = "bar"
)

// Scene describes mechanisms to sweep and the times to sample them at.
//
//	samples: {from: 0, to: 1, count: 8}
//	robots:
//	  - name: left
//	    preset: robot1
//	  - name: custom
//	    arm:
//	      position: [4, 0, 0]
//	      hips: [{t: 0, v: 0.6}, {t: 1, v: -0.8}]
type Scene struct {
	Times   []float64    `yaml:"times"`
	Samples *SampleRange `yaml:"samples"`
	Robots  []Robot      `yaml:"robots"`
}

// SampleRange is count evenly spaced times from From to To.
type SampleRange struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Count int     `yaml:"count"`
}

// Robot names one mechanism of a scene. Exactly one of Preset, Arm and
// Gantry is set.
type Robot struct {
	Name   string        `yaml:"name"`
	Preset string        `yaml:"preset"`
	Arm    *ArmMotion    `yaml:"arm"`
	Gantry *GantryMotion `yaml:"gantry"`
}

// Mechanism resolves the entry into a buildable mechanism.
func (r Robot) Mechanism() (Mechanism, error) {
	set := 0
	if r.Preset != "" {
		set++
	}
	if r.Arm != nil {
		set++
	}
	if r.Gantry != nil {
		set++
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: robot %q needs exactly one of preset, arm, gantry", ErrInvalidScene, r.Name)
	}

	switch {
	case r.Arm != nil:
		if err := r.Arm.Validate(); err != nil {
			return nil, fmt.Errorf("robot %q: %w", r.Name, err)
		}
		return *r.Arm, nil
	case r.Gantry != nil:
		if err := r.Gantry.Validate(); err != nil {
			return nil, fmt.Errorf("robot %q: %w", r.Name, err)
		}
		return *r.Gantry, nil
	}

	switch r.Preset {
	case PresetRobot1:
		return Robot1Motion(), nil
	case PresetRobot2:
		return Robot2Motion(), nil
	case PresetGantry:
		return GantryDemoMotion(), nil
	case PresetBar:
		return Bar{}, nil
	default:
		return nil, fmt.Errorf("%w: robot %q: unknown preset %q", ErrInvalidScene, r.Name, r.Preset)
	}
}

// SampleTimes returns the explicit times, or the expanded sample range.
func (s *Scene) SampleTimes() ([]float64, error) {
	switch {
	case len(s.Times) > 0 && s.Samples != nil:
		return nil, fmt.Errorf("%w: times and samples are exclusive", ErrInvalidScene)
	case len(s.Times) > 0:
		return s.Times, nil
	case s.Samples != nil:
		if s.Samples.Count < 2 {
			return nil, fmt.Errorf("%w: samples.count must be at least 2, got %d", ErrInvalidScene, s.Samples.Count)
		}
		return sweep.Samples(s.Samples.From, s.Samples.To, s.Samples.Count), nil
	default:
		return nil, fmt.Errorf("%w: no times or samples", ErrInvalidScene)
	}
}

// Validate resolves every robot and the sample times.
func (s *Scene) Validate() error {
	if len(s.Robots) == 0 {
		return fmt.Errorf("%w: no robots", ErrInvalidScene)
	}
	for _, r := range s.Robots {
		if _, err := r.Mechanism(); err != nil {
			return err
		}
	}
	_, err := s.SampleTimes()
	return err
}

// ParseScene decodes and validates a YAML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScene reads a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	return ParseScene(data)
}
