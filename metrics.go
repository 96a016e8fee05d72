package vec

// Utilization returns the ratio of live elements to capacity (0.0 to
// 1.0). Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.buf.Cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Reallocs returns the number of times the vector has replaced its
// buffer, whether through doubling growth or an explicit Reserve.
func (v *Vector[T]) Reallocs() int {
	return v.reallocs
}

// Relocated returns the total number of elements moved or cloned across
// buffers over the vector's lifetime.
func (v *Vector[T]) Relocated() int {
	return v.relocated
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.buf.Cap(),
		Utilization: v.Utilization(),
		Reallocs:    v.reallocs,
		Relocated:   v.relocated,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Slots allocated
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Reallocs    int     // Buffer replacements (growth and Reserve)
	Relocated   int     // Elements moved or cloned across buffers
}
