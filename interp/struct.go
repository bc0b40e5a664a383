package interp

import (
	"math"
	"reflect"
)

// Struct returns an interpolator that blends the exported numeric fields of
// a struct type, recursing into nested structs. Integer fields are rounded;
// unsigned fields saturate at 0 and at their maximum.
// Every other field, exported or not, is copied from from. If T is not a
// struct the interpolator returns from.
func Struct[T any]() func(from, to T, progress float64) T {
	return func(from, to T, progress float64) T {
		a := reflect.ValueOf(&from).Elem()
		if a.Kind() != reflect.Struct {
			return from
		}
		out := reflect.New(a.Type()).Elem()
		out.Set(a)
		blendStruct(out, a, reflect.ValueOf(&to).Elem(), progress)
		return out.Interface().(T)
	}
}

func blendStruct(out, a, b reflect.Value, progress float64) {
	for i := 0; i < out.NumField(); i++ {
		f := out.Field(i)
		if !f.CanSet() {
			continue
		}
		fa, fb := a.Field(i), b.Field(i)
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			f.SetFloat(Float64(fa.Float(), fb.Float(), progress))
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			v := Float64(float64(fa.Int()), float64(fb.Int()), progress)
			f.SetInt(int64(math.Round(v)))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			v := Float64(float64(fa.Uint()), float64(fb.Uint()), progress)
			limit := math.Ldexp(1, f.Type().Bits()) - 1
			f.SetUint(uint64(math.Min(limit, math.Max(0, math.Round(v)))))
		case reflect.Struct:
			blendStruct(f, fa, fb, progress)
		}
	}
}
