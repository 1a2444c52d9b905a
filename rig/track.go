package rig

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTrack is returned for tracks whose keyframe times do not
// strictly increase.
var ErrInvalidTrack = errors.New("rig: invalid track")

// Key is one keyframe: the joint value V at time T.
type Key struct {
	T float64 `yaml:"t"`
	V float64 `yaml:"v"`
}

// Track is a joint value as a piecewise-linear function of time.
// Before the first and after the last keyframe the nearest segment is
// extended. An empty track is constantly zero.
//
// In YAML a track is either a number (a constant) or a list of keys:
//
//	hips: [{t: 0, v: 0.628}, {t: 1, v: -0.785}]
//	elbow: 1.5708
type Track []Key

// Const returns a track that holds v forever.
func Const(v float64) Track {
	return Track{{T: 0, V: v}}
}

// Linear returns a track moving from v0 at t0 to v1 at t1.
func Linear(t0, v0, t1, v1 float64) Track {
	return Track{{T: t0, V: v0}, {T: t1, V: v1}}
}

// At returns the value and its rate of change at time t.
// At a keyframe the rate is that of the segment starting there.
func (tr Track) At(t float64) (value, rate float64) {
	switch len(tr) {
	case 0:
		return 0, 0
	case 1:
		return tr[0].V, 0
	}
	i := 0
	for i < len(tr)-2 && t >= tr[i+1].T {
		i++
	}
	a, b := tr[i], tr[i+1]
	rate = (b.V - a.V) / (b.T - a.T)
	return a.V + (t-a.T)*rate, rate
}

// Validate checks that keyframe times strictly increase.
func (tr Track) Validate() error {
	for i := 1; i < len(tr); i++ {
		if tr[i].T <= tr[i-1].T {
			return fmt.Errorf("%w: key %d at t=%g does not follow t=%g", ErrInvalidTrack, i, tr[i].T, tr[i-1].T)
		}
	}
	return nil
}

// UnmarshalYAML accepts a scalar constant or a sequence of keys.
func (tr *Track) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return err
		}
		*tr = Const(v)
		return nil
	case yaml.SequenceNode:
		var keys []Key
		if err := node.Decode(&keys); err != nil {
			return err
		}
		*tr = Track(keys)
		return tr.Validate()
	default:
		return fmt.Errorf("%w: line %d: expected a number or a list of keys", ErrInvalidTrack, node.Line)
	}
}

// at3 evaluates three tracks as a vector and its rate.
func at3(tracks []Track, t float64) (value, rate [3]float64) {
	for i := 0; i < 3 && i < len(tracks); i++ {
		value[i], rate[i] = tracks[i].At(t)
	}
	return value, rate
}
