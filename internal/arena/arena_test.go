package arena

import (
	"errors"
	"testing"
)

func TestNewFixed(t *testing.T) {
	buf := make([]byte, 128)
	a := NewFixed(buf)

	if a.Capacity() != 128 {
		t.Errorf("Capacity() = %d, want 128", a.Capacity())
	}
	if a.Remaining() != 128 {
		t.Errorf("Remaining() = %d, want 128", a.Remaining())
	}
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse() = %d, want 0", a.SizeInUse())
	}
}

func TestFixedAlloc(t *testing.T) {
	a := NewFixed(make([]byte, 64))

	b1, err := a.Alloc(16, 1)
	if err != nil {
		t.Fatalf("Alloc(16, 1) error: %v", err)
	}
	if len(b1) != 16 {
		t.Errorf("Alloc(16, 1) length = %d, want 16", len(b1))
	}
	if a.Remaining() != 48 {
		t.Errorf("Remaining after Alloc(16) = %d, want 48", a.Remaining())
	}

	// Successive allocations must not alias.
	b2, err := a.Alloc(16, 1)
	if err != nil {
		t.Fatalf("second Alloc(16, 1) error: %v", err)
	}
	b1[0] = 0xAA
	b2[0] = 0xBB
	if b1[0] != 0xAA {
		t.Error("allocations alias: write to second region clobbered first")
	}
	if &b1[0] == &b2[0] {
		t.Error("successive allocations returned the same base address")
	}
}

func TestFixedAllocZeroAndNegative(t *testing.T) {
	a := NewFixed(make([]byte, 32))

	for _, size := range []int{0, -1} {
		b, err := a.Alloc(size, 1)
		if err != nil {
			t.Errorf("Alloc(%d, 1) error: %v", size, err)
		}
		if b != nil {
			t.Errorf("Alloc(%d, 1) = %v, want nil", size, b)
		}
	}
	if a.Remaining() != 32 {
		t.Errorf("Remaining changed by empty allocations: %d", a.Remaining())
	}
}

func TestFixedAllocAlignment(t *testing.T) {
	a := NewFixed(make([]byte, 64))

	if _, err := a.Alloc(1, 1); err != nil {
		t.Fatalf("Alloc(1, 1) error: %v", err)
	}
	// Offset is 1; an 8-byte-aligned request must round up to 8 first.
	if _, err := a.Alloc(8, 8); err != nil {
		t.Fatalf("Alloc(8, 8) error: %v", err)
	}
	if a.SizeInUse() != 16 {
		t.Errorf("SizeInUse after aligned alloc = %d, want 16", a.SizeInUse())
	}

	if _, err := a.Alloc(8, 3); err == nil {
		t.Error("Alloc with non-power-of-two alignment did not fail")
	}
}

func TestFixedAllocOutOfCapacity(t *testing.T) {
	a := NewFixed(make([]byte, 32))

	if _, err := a.Alloc(24, 1); err != nil {
		t.Fatalf("Alloc(24, 1) error: %v", err)
	}

	_, err := a.Alloc(16, 1)
	if err == nil {
		t.Fatal("over-capacity Alloc did not fail")
	}
	var oom *OutOfCapacityError
	if !errors.As(err, &oom) {
		t.Fatalf("error type = %T, want *OutOfCapacityError", err)
	}
	if oom.Requested != 16 || oom.Remaining != 8 {
		t.Errorf("OutOfCapacityError = {%d, %d}, want {16, 8}", oom.Requested, oom.Remaining)
	}

	// A failed request leaves the arena untouched.
	if a.Remaining() != 8 {
		t.Errorf("Remaining after failed Alloc = %d, want 8", a.Remaining())
	}
	if b, err := a.Alloc(8, 1); err != nil || len(b) != 8 {
		t.Errorf("Alloc(8, 1) after failure = (%d, %v), want (8, nil)", len(b), err)
	}
}

func TestFixedDeallocNoOp(t *testing.T) {
	a := NewFixed(make([]byte, 32))

	b, err := a.Alloc(16, 1)
	if err != nil {
		t.Fatalf("Alloc(16, 1) error: %v", err)
	}
	a.Dealloc(b)
	if a.Remaining() != 16 {
		t.Errorf("Remaining after Dealloc = %d, want 16", a.Remaining())
	}
}

func TestFixedEqual(t *testing.T) {
	buf := make([]byte, 16)
	a := NewFixed(buf)
	b := NewFixed(buf)

	if a.Equal(b) || a.Equal(a) {
		t.Error("Equal() = true, arenas must never compare equal")
	}
}

func BenchmarkFixedAlloc(b *testing.B) {
	buf := make([]byte, 1<<20)
	a := NewFixed(buf)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if a.Remaining() < 64 {
			a = NewFixed(buf)
		}
		_, _ = a.Alloc(64, 8)
	}
}
