package easing

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v2"
)

type doc struct {
	Easing Value `yaml:"easing" json:"easing"`
}

func TestValueYAML(t *testing.T) {
	tests := []struct {
		name string
		in   Descriptor
	}{
		{"named", Named("easeInOutCirc")},
		{"steps", Steps{Count: 3}},
		{"nested steps", Steps{Count: 2, ForEachStep: Steps{Count: 4, ForEachStep: Named("easeOutQuad")}}},
		{"bezier", CubicBezier{P1: ControlPoint{0.42, 0}, P2: ControlPoint{0.58, 1.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := yaml.Marshal(doc{Value{tt.in}})
			if err != nil {
				t.Fatalf("yaml.Marshal: %v", err)
			}
			var got doc
			if err := yaml.Unmarshal(out, &got); err != nil {
				t.Fatalf("yaml.Unmarshal(%s): %v", out, err)
			}
			if !reflect.DeepEqual(got.Easing.Descriptor, tt.in) {
				t.Errorf("round trip = %#v, want %#v", got.Easing.Descriptor, tt.in)
			}
		})
	}
}

func TestValueJSON(t *testing.T) {
	in := Steps{Count: 2, ForEachStep: CubicBezier{P1: ControlPoint{0.1, -0.5}, P2: ControlPoint{0.9, 1}}}
	out, err := json.Marshal(doc{Value{in}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `"type":"step"`) {
		t.Errorf("json = %s, want step type tag", out)
	}

	var got doc
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got.Easing.Descriptor, in) {
		t.Errorf("round trip = %#v, want %#v", got.Easing.Descriptor, in)
	}
}

func TestValueWireForm(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want Descriptor
	}{
		{"name", `easing: easeOutBack`, Named("easeOutBack")},
		{
			"bezier block",
			"easing:\n  type: cubic-bezier\n  cp1: {x: 0.25, y: 0.1}\n  cp2: {x: 0.25, y: 1}\n",
			CubicBezier{P1: ControlPoint{0.25, 0.1}, P2: ControlPoint{0.25, 1}},
		},
		{
			"bezier flow",
			`easing: {type: cubic-bezier, cp1: {x: 0.42, y: 0}, cp2: {x: 0.58, y: 1}}`,
			CubicBezier{P1: ControlPoint{0.42, 0}, P2: ControlPoint{0.58, 1}},
		},
		{"steps", `easing: {type: step, steps: 4, forEachStep: easeOutQuad}`, Steps{Count: 4, ForEachStep: Named("easeOutQuad")}},
		{
			"steps of bezier",
			`easing: {type: step, steps: 2, forEachStep: {type: cubic-bezier, cp1: {x: 0.1, y: -0.5}, cp2: {x: 0.9, y: 1.5}}}`,
			Steps{Count: 2, ForEachStep: CubicBezier{P1: ControlPoint{0.1, -0.5}, P2: ControlPoint{0.9, 1.5}}},
		},
		{
			"nested steps",
			`easing: {type: step, steps: 2, forEachStep: {type: step, steps: 3}}`,
			Steps{Count: 2, ForEachStep: Steps{Count: 3}},
		},
		{"null", `easing: null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			if err := yaml.Unmarshal([]byte(tt.src), &d); err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(d.Easing.Descriptor, tt.want) {
				t.Errorf("decoded %#v, want %#v", d.Easing.Descriptor, tt.want)
			}
		})
	}
}

func TestValueDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown name", `easing: sproing`, ErrUnknownEasing},
		{"unknown type", `easing: {type: spline}`, ErrUnknownEasing},
		{"zero steps", `easing: {type: step, steps: 0}`, ErrMalformed},
		{"fractional steps", `easing: {type: step, steps: 1.5}`, ErrMalformed},
		{"bad x", `easing: {type: cubic-bezier, cp1: {x: 1.5, y: 0}, cp2: {x: 0, y: 1}}`, ErrControlPoint},
		{"missing cp", `easing: {type: cubic-bezier, cp1: {x: 0.5, y: 0}}`, ErrMalformed},
		{"missing y", `easing: {type: cubic-bezier, cp1: {x: 0.5}, cp2: {x: 0.5, y: 1}}`, ErrMalformed},
		{"missing steps", `easing: {type: step}`, ErrMalformed},
		{"bad child", `easing: {type: step, steps: 2, forEachStep: sproing}`, ErrUnknownEasing},
		{"bad child x", `easing: {type: step, steps: 2, forEachStep: {type: cubic-bezier, cp1: {x: -1, y: 0}, cp2: {x: 1, y: 1}}}`, ErrControlPoint},
		{"number", `easing: 3`, ErrMalformed},
		{"list", `easing: [1, 2]`, ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d doc
			err := yaml.Unmarshal([]byte(tt.src), &d)
			if !errors.Is(err, tt.want) {
				t.Errorf("yaml.Unmarshal error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValueEncodeFunc(t *testing.T) {
	if _, err := ToPlain(nil); !errors.Is(err, ErrMalformed) {
		t.Errorf("ToPlain(nil) error = %v, want ErrMalformed", err)
	}
}
