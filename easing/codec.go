package easing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v2"
)

// Wire type tags for the structured descriptors.
const (
	TypeStep        = "step"
	TypeCubicBezier = "cubic-bezier"
)

// Value wraps a Descriptor so it can be embedded in YAML and JSON documents.
// A name encodes as a plain string; Steps and CubicBezier encode as mappings
// tagged with a "type" key:
//
//	easing: easeInOutSine
//	easing: {type: step, steps: 4, forEachStep: easeOutQuad}
//	easing: {type: cubic-bezier, cp1: {x: 0.25, y: 0.1}, cp2: {x: 0.25, y: 1}}
type Value struct {
	Descriptor
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (interface{}, error) {
	return ToPlain(v.Descriptor)
}

// UnmarshalYAML implements yaml.Unmarshaler. Mappings are decoded through
// yamlDescriptor so keys match by their text; YAML 1.1 would otherwise read a
// bare y key as the boolean true.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch r := raw.(type) {
	case nil:
		v.Descriptor = nil
		return nil
	case string:
		d, err := FromPlain(r)
		if err != nil {
			return err
		}
		v.Descriptor = d
		return nil
	}

	var w yamlDescriptor
	if err := unmarshal(&w); err != nil {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return fmt.Errorf("%v: %w", err, ErrMalformed)
		}
		return err
	}
	d, err := w.descriptor()
	if err != nil {
		return err
	}
	if err := Validate(d); err != nil {
		return err
	}
	v.Descriptor = d
	return nil
}

// yamlDescriptor is the mapping form of a Steps or CubicBezier.
type yamlDescriptor struct {
	Type        string            `yaml:"type"`
	Steps       *float64          `yaml:"steps"`
	ForEachStep *Value            `yaml:"forEachStep"`
	CP1         *yamlControlPoint `yaml:"cp1"`
	CP2         *yamlControlPoint `yaml:"cp2"`
}

type yamlControlPoint struct {
	X *float64 `yaml:"x"`
	Y *float64 `yaml:"y"`
}

func (w yamlDescriptor) descriptor() (Descriptor, error) {
	switch w.Type {
	case TypeStep:
		if w.Steps == nil {
			return nil, fmt.Errorf("steps: missing: %w", ErrMalformed)
		}
		n, err := toInt(*w.Steps)
		if err != nil {
			return nil, fmt.Errorf("steps: %w", err)
		}
		s := Steps{Count: n}
		if w.ForEachStep != nil && w.ForEachStep.Descriptor != nil {
			s.ForEachStep = w.ForEachStep.Descriptor
		}
		return s, nil
	case TypeCubicBezier:
		p1, err := w.CP1.point()
		if err != nil {
			return nil, fmt.Errorf("cp1: %w", err)
		}
		p2, err := w.CP2.point()
		if err != nil {
			return nil, fmt.Errorf("cp2: %w", err)
		}
		return CubicBezier{P1: p1, P2: p2}, nil
	default:
		return nil, fmt.Errorf("type %q: %w", w.Type, ErrUnknownEasing)
	}
}

func (cp *yamlControlPoint) point() (ControlPoint, error) {
	if cp == nil || cp.X == nil || cp.Y == nil {
		return ControlPoint{}, fmt.Errorf("x and y required: %w", ErrMalformed)
	}
	return ControlPoint{X: *cp.X, Y: *cp.Y}, nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	p, err := ToPlain(v.Descriptor)
	if err != nil {
		return nil, err
	}
	return json.Marshal(p)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := FromPlain(raw)
	if err != nil {
		return err
	}
	v.Descriptor = d
	return nil
}

// ToPlain converts d into strings, float64s, ints and string-keyed maps.
func ToPlain(d Descriptor) (interface{}, error) {
	switch v := d.(type) {
	case Named:
		return string(v), nil
	case CubicBezier:
		return bezierToPlain(v), nil
	case *CubicBezier:
		if v == nil {
			break
		}
		return bezierToPlain(*v), nil
	case Steps:
		return stepsToPlain(v)
	case *Steps:
		if v == nil {
			break
		}
		return stepsToPlain(*v)
	}
	return nil, fmt.Errorf("encode %T: %w", d, ErrMalformed)
}

func bezierToPlain(b CubicBezier) map[string]interface{} {
	return map[string]interface{}{
		"type": TypeCubicBezier,
		"cp1":  map[string]interface{}{"x": b.P1.X, "y": b.P1.Y},
		"cp2":  map[string]interface{}{"x": b.P2.X, "y": b.P2.Y},
	}
}

func stepsToPlain(s Steps) (interface{}, error) {
	m := map[string]interface{}{
		"type":  TypeStep,
		"steps": s.Count,
	}
	if s.ForEachStep != nil {
		child, err := Describe(s.ForEachStep)
		if err != nil {
			return nil, err
		}
		p, err := ToPlain(child)
		if err != nil {
			return nil, err
		}
		m["forEachStep"] = p
	}
	return m, nil
}

// FromPlain parses the output of ToPlain, or the equivalent decoded by
// encoding/json. A nil input yields a nil Descriptor.
// The result is validated.
func FromPlain(raw interface{}) (Descriptor, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := fromPlain(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func fromPlain(raw interface{}) (Descriptor, error) {
	if name, ok := raw.(string); ok {
		return Named(name), nil
	}

	m, err := stringMap(raw)
	if err != nil {
		return nil, err
	}
	kind, _ := m["type"].(string)
	switch kind {
	case TypeStep:
		n, err := toInt(m["steps"])
		if err != nil {
			return nil, fmt.Errorf("steps: %w", err)
		}
		s := Steps{Count: n}
		if child, ok := m["forEachStep"]; ok && child != nil {
			d, err := fromPlain(child)
			if err != nil {
				return nil, fmt.Errorf("forEachStep: %w", err)
			}
			s.ForEachStep = d
		}
		return s, nil
	case TypeCubicBezier:
		p1, err := controlPoint(m["cp1"])
		if err != nil {
			return nil, fmt.Errorf("cp1: %w", err)
		}
		p2, err := controlPoint(m["cp2"])
		if err != nil {
			return nil, fmt.Errorf("cp2: %w", err)
		}
		return CubicBezier{P1: p1, P2: p2}, nil
	default:
		return nil, fmt.Errorf("type %q: %w", kind, ErrUnknownEasing)
	}
}

func controlPoint(raw interface{}) (ControlPoint, error) {
	m, err := stringMap(raw)
	if err != nil {
		return ControlPoint{}, err
	}
	x, err := toFloat(m["x"])
	if err != nil {
		return ControlPoint{}, fmt.Errorf("x: %w", err)
	}
	y, err := toFloat(m["y"])
	if err != nil {
		return ControlPoint{}, fmt.Errorf("y: %w", err)
	}
	return ControlPoint{X: x, Y: y}, nil
}

// stringMap accepts both map[string]interface{} (encoding/json) and
// map[interface{}]interface{} (yaml.v2).
func stringMap(raw interface{}) (map[string]interface{}, error) {
	switch m := raw.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("key %v: %w", k, ErrMalformed)
			}
			out[ks] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("descriptor of type %T: %w", raw, ErrMalformed)
	}
}

func toFloat(raw interface{}) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("number expected, got %T: %w", raw, ErrMalformed)
	}
}

func toInt(raw interface{}) (int, error) {
	f, err := toFloat(raw)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("integer expected, got %v: %w", f, ErrMalformed)
	}
	return int(f), nil
}
