package interp

// Vector blends two vectors component-wise into a new slice. Vectors of
// different lengths are not blended; from is returned as is.
func Vector(from, to []float64, progress float64) []float64 {
	if len(from) != len(to) {
		return from
	}
	out := make([]float64, len(from))
	for i := range from {
		out[i] = Float64(from[i], to[i], progress)
	}
	return out
}

// CopyVector returns a copy of v that does not alias it.
func CopyVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// Fields blends the keys present in both maps. Keys present in only one map
// are copied through unblended. The result is always a new map.
func Fields(from, to map[string]float64, progress float64) map[string]float64 {
	out := make(map[string]float64, len(from))
	for k, a := range from {
		if b, ok := to[k]; ok {
			out[k] = Float64(a, b, progress)
		} else {
			out[k] = a
		}
	}
	for k, b := range to {
		if _, ok := from[k]; !ok {
			out[k] = b
		}
	}
	return out
}

// CopyFields returns a copy of m that does not alias it.
func CopyFields(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
