package vec

import "testing"

func TestMetricsEmpty(t *testing.T) {
	v := New[int]()
	m := v.Metrics()
	if m != (VectorMetrics{}) {
		t.Errorf("empty vector metrics = %+v, want zero value", m)
	}
}

func TestMetricsAfterGrowth(t *testing.T) {
	v := New[int]()
	for i := 1; i <= 3; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatalf("PushBack error: %v", err)
		}
	}

	m := v.Metrics()
	if m.Len != 3 || m.Cap != 4 {
		t.Errorf("Len, Cap = %d, %d; want 3, 4", m.Len, m.Cap)
	}
	// Three appends from empty reallocate at caps 1, 2, and 4, moving
	// 0, 1, and 2 elements respectively.
	if m.Reallocs != 3 {
		t.Errorf("Reallocs = %d, want 3", m.Reallocs)
	}
	if m.Relocated != 3 {
		t.Errorf("Relocated = %d, want 3", m.Relocated)
	}
	if m.Utilization != 0.75 {
		t.Errorf("Utilization = %f, want 0.75", m.Utilization)
	}
}

func TestMetricsReserve(t *testing.T) {
	v := New[int]()
	if err := v.Reserve(64); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}
	if got := v.Reallocs(); got != 1 {
		t.Errorf("Reallocs after Reserve = %d, want 1", got)
	}
	for i := 0; i < 64; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatalf("PushBack error: %v", err)
		}
	}
	// Everything fit in the reserved buffer.
	if got := v.Reallocs(); got != 1 {
		t.Errorf("Reallocs after filling reserved capacity = %d, want 1", got)
	}
	if got := v.Relocated(); got != 0 {
		t.Errorf("Relocated = %d, want 0", got)
	}
	if got := v.Utilization(); got != 1.0 {
		t.Errorf("Utilization = %f, want 1.0", got)
	}
}

func TestUtilizationNoCapacity(t *testing.T) {
	if got := New[int]().Utilization(); got != 0 {
		t.Errorf("Utilization of empty vector = %f, want 0", got)
	}
}
