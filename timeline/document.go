package timeline

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/keyframe/easing"
)

// Document is the plain form of a timeline. It shares no state with the
// timeline it was taken from or loaded into.
type Document[T any] struct {
	InitialValue T                     `yaml:"initialValue" json:"initialValue"`
	Keyframes    []KeyframeDocument[T] `yaml:"keyframes" json:"keyframes"`
}

// KeyframeDocument is the plain form of a keyframe.
type KeyframeDocument[T any] struct {
	Time   float64      `yaml:"time" json:"time"`
	Value  T            `yaml:"value" json:"value"`
	Easing easing.Value `yaml:"easing" json:"easing"`
	Flags  []string     `yaml:"flags" json:"flags"`
}

// Snapshot returns a deep copy of the timeline in plain form, keyframes in
// time order. It fails with easing.ErrNotSerializable if any keyframe uses a
// custom easing.Func.
func (tl *Timeline[T]) Snapshot() (*Document[T], error) {
	doc := &Document[T]{
		InitialValue: tl.copy(tl.initial),
		Keyframes:    make([]KeyframeDocument[T], 0, len(tl.keyframes)),
	}
	for _, k := range tl.keyframes {
		d, err := easing.Describe(k.easing)
		if err != nil {
			return nil, fmt.Errorf("keyframe at %v: %w", k.time, err)
		}
		flags := make([]string, 0, len(k.flags))
		for _, f := range k.Flags() {
			flags = append(flags, string(f))
		}
		doc.Keyframes = append(doc.Keyframes, KeyframeDocument[T]{
			Time:   k.time,
			Value:  tl.copy(k.value),
			Easing: easing.Value{Descriptor: d},
			Flags:  flags,
		})
	}
	return doc, nil
}

// Load replaces the initial value and keyframes with deep copies of those in
// doc. Keyframes may appear in any order. A keyframe without an easing gets
// the timeline default. Nothing is changed if doc is invalid. Keyframes
// held from before the load are detached.
func (tl *Timeline[T]) Load(doc *Document[T]) error {
	if doc == nil {
		return ErrNilDocument
	}
	entries := slices.Clone(doc.Keyframes)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})

	keyframes := make([]*Keyframe[T], 0, len(entries))
	for i, kd := range entries {
		if err := validTime(kd.Time); err != nil {
			return fmt.Errorf("load: %w", err)
		}
		if i > 0 && entries[i-1].Time == kd.Time {
			return fmt.Errorf("load at %v: %w", kd.Time, ErrDuplicateTime)
		}

		k := &Keyframe[T]{time: kd.Time, value: tl.copy(kd.Value), easing: tl.defaultEasing}
		if kd.Easing.Descriptor != nil {
			if err := easing.Validate(kd.Easing.Descriptor); err != nil {
				return fmt.Errorf("load keyframe at %v: %w", kd.Time, err)
			}
			k.easing = easing.Clone(kd.Easing.Descriptor)
		}
		for _, f := range kd.Flags {
			k.SetFlag(Flag(f))
		}
		keyframes = append(keyframes, k)
	}

	tl.initial = tl.copy(doc.InitialValue)
	tl.keyframes = keyframes
	Logger().Debug("timeline loaded", "keyframes", len(keyframes))
	return nil
}

// MarshalYAML implements yaml.Marshaler by encoding a Snapshot.
func (tl *Timeline[T]) MarshalYAML() (interface{}, error) {
	return tl.Snapshot()
}

// UnmarshalYAML implements yaml.Unmarshaler by decoding a Document and
// loading it. The timeline must have been created with New.
func (tl *Timeline[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var doc Document[T]
	if err := unmarshal(&doc); err != nil {
		return err
	}
	return tl.Load(&doc)
}

// MarshalJSON implements json.Marshaler by encoding a Snapshot.
func (tl *Timeline[T]) MarshalJSON() ([]byte, error) {
	doc, err := tl.Snapshot()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// UnmarshalJSON implements json.Unmarshaler by decoding a Document and
// loading it. The timeline must have been created with New.
func (tl *Timeline[T]) UnmarshalJSON(data []byte) error {
	var doc Document[T]
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return tl.Load(&doc)
}

// EncodeYAML encodes tl as a YAML document.
func EncodeYAML[T any](tl *Timeline[T]) ([]byte, error) {
	return yaml.Marshal(tl)
}

// DecodeYAML replaces the contents of tl with the YAML document in data.
// tl is unchanged if data does not parse or fails to load.
func DecodeYAML[T any](tl *Timeline[T], data []byte) error {
	var doc Document[T]
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode timeline: %w", err)
	}
	return tl.Load(&doc)
}
