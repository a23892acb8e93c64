// Package arena implements a fixed-capacity bump allocator over a
// caller-supplied buffer.
//
// # Overview
//
// A Fixed arena borrows a byte region from its caller and hands out
// monotonically advancing sub-regions of it. It never grows, never falls
// back to the heap, and never reclaims individual allocations: the whole
// region is given back at once when the caller's scope ends. This makes it
// suitable for one-shot workloads whose total footprint is known up front,
// such as materializing a view of the process argument vector.
//
// # Basic Usage
//
//	buf := make([]byte, 256)
//	a := arena.NewFixed(buf)
//
//	// Allocate raw bytes
//	b, err := a.Alloc(64, 0)
//
//	// Allocate typed values
//	p, err := arena.Alloc[MyStruct](a)
//	s, err := arena.AllocSlice[int](a, 10)
//
// When a request does not fit the remaining capacity, Alloc returns an
// *OutOfCapacityError carrying the requested size and the capacity that was
// left. The arena state is unchanged by a failed request.
//
// # Important Notes
//
//   - The arena borrows the buffer; the caller retains ownership and must
//     keep it alive for as long as any allocation is in use.
//   - Not goroutine-safe. Callers sharing an arena across goroutines must
//     serialize access externally.
//   - There is no Reset: remaining capacity only ever decreases.
package arena
