package arena

import (
	"fmt"
	"unsafe"
)

// ptrAlign is the natural alignment used when a caller passes align <= 0.
const ptrAlign = int(unsafe.Alignof(uintptr(0)))

// OutOfCapacityError is returned when a requested allocation does not fit
// the arena's remaining capacity. The request leaves the arena unchanged.
type OutOfCapacityError struct {
	Requested int // bytes asked for
	Remaining int // bytes that were left
}

func (e *OutOfCapacityError) Error() string {
	return fmt.Sprintf("requested bytes: %d, remaining bytes capacity: %d",
		e.Requested, e.Remaining)
}

// Fixed is a bump allocator over a borrowed, fixed-capacity buffer.
// Not goroutine-safe.
type Fixed struct {
	buf      []byte
	off      int
	capacity int
}

// NewFixed creates an arena over buf. The arena borrows buf; the caller
// keeps ownership and must keep it alive while any allocation is in use.
func NewFixed(buf []byte) *Fixed {
	return &Fixed{buf: buf, capacity: len(buf)}
}

// Alloc returns a slice of exactly size bytes from the arena, aligned to
// align (a power of two; align <= 0 selects natural pointer alignment).
// A size <= 0 returns nil with no state change. On success the bump offset
// advances past the returned region, so successive allocations never alias.
// If the aligned request does not fit, Alloc returns *OutOfCapacityError
// and the offset is left untouched.
func (a *Fixed) Alloc(size, align int) ([]byte, error) {
	if size <= 0 {
		return nil, nil
	}
	if align <= 0 {
		align = ptrAlign
	}
	if align&(align-1) != 0 {
		return nil, fmt.Errorf("arena: alignment %d is not a power of two", align)
	}

	off := (a.off + align - 1) &^ (align - 1)
	if off+size > a.capacity {
		return nil, &OutOfCapacityError{Requested: size, Remaining: a.capacity - a.off}
	}
	a.off = off + size
	return a.buf[off : off+size : off+size], nil
}

// Dealloc is a no-op. Individual frees are not supported; the arena's whole
// region is reclaimed at once when the caller's scope ends.
func (a *Fixed) Dealloc(_ []byte) {}

// Equal reports whether two arenas are interchangeable. They never are,
// even when constructed over identical contents.
func (a *Fixed) Equal(_ *Fixed) bool { return false }
