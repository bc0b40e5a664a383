package interp

import (
	"math"
	"reflect"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScalar(t *testing.T) {
	tests := []struct {
		name        string
		from, to, p float64
		want        float64
	}{
		{"start", 1, 3, 0, 1},
		{"middle", 1, 3, 0.5, 2},
		{"end", 1, 3, 1, 3},
		{"overshoot", 0, 10, 1.2, 12},
		{"undershoot", 0, 10, -0.1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64(tt.from, tt.to, tt.p); !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("Float64() = %v, want %v", got, tt.want)
			}
			if got := Lerp(float32(tt.from), float32(tt.to), tt.p); !almostEqual(float64(got), tt.want, 1e-5) {
				t.Errorf("Lerp[float32]() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := Int(0, 3, 0.5); got != 2 {
		t.Errorf("Int(0, 3, 0.5) = %d, want 2", got)
	}
}

func TestVector(t *testing.T) {
	from := []float64{0, 10, -4}
	to := []float64{2, 20, 4}
	got := Vector(from, to, 0.25)
	want := []float64{0.5, 12.5, -2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Vector() = %v, want %v", got, want)
	}
	if from[0] != 0 || to[0] != 2 {
		t.Error("Vector() modified its arguments")
	}
}

func TestVectorMismatch(t *testing.T) {
	from := []float64{1, 2}
	got := Vector(from, []float64{1, 2, 3}, 0.5)
	if !reflect.DeepEqual(got, from) {
		t.Errorf("Vector() with mismatched lengths = %v, want from %v", got, from)
	}
}

func TestCopyVector(t *testing.T) {
	v := []float64{1, 2}
	c := CopyVector(v)
	c[0] = 9
	if v[0] != 1 {
		t.Error("CopyVector() aliases its input")
	}
	if CopyVector(nil) != nil {
		t.Error("CopyVector(nil) != nil")
	}
}

func TestFields(t *testing.T) {
	from := map[string]float64{"x": 0, "y": 10, "only-from": 5}
	to := map[string]float64{"x": 4, "y": 0, "only-to": 7}
	got := Fields(from, to, 0.5)
	want := map[string]float64{"x": 2, "y": 5, "only-from": 5, "only-to": 7}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	c := CopyFields(from)
	c["x"] = 100
	if from["x"] != 0 {
		t.Error("CopyFields() aliases its input")
	}
}

type pose struct {
	X, Y  float64
	Frame int
	Label string
	Inner struct {
		Scale float32
	}
	hidden float64
}

func TestStruct(t *testing.T) {
	blend := Struct[pose]()
	a := pose{X: 0, Y: 10, Frame: 0, Label: "a", hidden: 1}
	a.Inner.Scale = 1
	b := pose{X: 10, Y: 20, Frame: 3, Label: "b", hidden: 2}
	b.Inner.Scale = 3

	got := blend(a, b, 0.5)
	if got.X != 5 || got.Y != 15 {
		t.Errorf("X, Y = %v, %v, want 5, 15", got.X, got.Y)
	}
	if got.Frame != 2 {
		t.Errorf("Frame = %d, want 2", got.Frame)
	}
	if got.Label != "a" {
		t.Errorf("Label = %q, want pass-through %q", got.Label, "a")
	}
	if got.hidden != 1 {
		t.Errorf("hidden = %v, want pass-through 1", got.hidden)
	}
	if got.Inner.Scale != 2 {
		t.Errorf("Inner.Scale = %v, want 2", got.Inner.Scale)
	}
	if a.X != 0 || b.X != 10 {
		t.Error("Struct() modified its arguments")
	}
}

type counters struct {
	Hits  uint
	Level uint8
}

func TestStructUnsigned(t *testing.T) {
	blend := Struct[counters]()
	a := counters{Hits: 10, Level: 0}
	b := counters{Hits: 20, Level: 255}

	tests := []struct {
		name string
		p    float64
		want counters
	}{
		{"middle", 0.5, counters{Hits: 15, Level: 128}},
		{"end", 1, b},
		{"undershoot", -2, counters{Hits: 0, Level: 0}},
		{"overshoot", 2, counters{Hits: 30, Level: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blend(a, b, tt.p); got != tt.want {
				t.Errorf("Struct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStructNonStruct(t *testing.T) {
	blend := Struct[string]()
	if got := blend("from", "to", 0.5); got != "from" {
		t.Errorf("Struct[string]() = %q, want %q", got, "from")
	}
}

func TestColour(t *testing.T) {
	red, _ := colorful.Hex("#ff0000")
	blue, _ := colorful.Hex("#0000ff")

	blends := map[string]func(from, to colorful.Color, p float64) colorful.Color{
		"lab": Lab,
		"hcl": Hcl,
		"luv": Luv,
		"rgb": RGB,
	}
	for name, blend := range blends {
		t.Run(name, func(t *testing.T) {
			if got := blend(red, blue, 0); got.DistanceRgb(red) > 1e-6 {
				t.Errorf("blend(0) = %v, want %v", got.Hex(), red.Hex())
			}
			if got := blend(red, blue, 1); got.DistanceRgb(blue) > 1e-6 {
				t.Errorf("blend(1) = %v, want %v", got.Hex(), blue.Hex())
			}
		})
	}

	if got := RGB(red, blue, 0.5); !almostEqual(got.R, 0.5, 1e-9) || !almostEqual(got.B, 0.5, 1e-9) {
		t.Errorf("RGB(0.5) = %+v, want R=B=0.5", got)
	}
}
