package arena

import "testing"

func TestMetricsSnapshot(t *testing.T) {
	a := NewFixed(make([]byte, 100))
	if _, err := a.Alloc(25, 1); err != nil {
		t.Fatalf("Alloc(25, 1) error: %v", err)
	}

	m := a.Metrics()
	if m.SizeInUse != 25 || m.Remaining != 75 || m.Capacity != 100 {
		t.Errorf("Metrics = %+v, want {25 75 100 ...}", m)
	}
	if m.Utilization != 0.25 {
		t.Errorf("Utilization = %v, want 0.25", m.Utilization)
	}
}

func TestUtilizationEmptyArena(t *testing.T) {
	a := NewFixed(nil)
	if u := a.Utilization(); u != 0 {
		t.Errorf("Utilization of zero-capacity arena = %v, want 0", u)
	}
}
