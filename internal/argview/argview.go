// Package argview materializes the process argument vector as a read-only
// sequence of non-owning string views backed by an arena.
package argview

import (
	"errors"
	"unsafe"

	"github.com/roger-dv/better-main/internal/arena"
)

// RecordSize is the size in bytes of one view record in a Sequence.
const RecordSize = int(unsafe.Sizeof(""))

// ErrEmptyArgv is returned when Build is given an empty argument vector.
// A process invocation always carries at least the program path.
var ErrEmptyArgv = errors.New("argview: argv must contain at least the program path")

// Sequence is an ordered, fixed-length, read-only list of argument views.
// Its record storage lives in a borrowed arena; the Sequence must not
// outlive the arena, and the views must not outlive the argv strings they
// point into. Note the arena stores the records as raw bytes, so the
// referenced string data is kept alive by argv, not by the arena.
type Sequence struct {
	args []string
}

// Build reserves exactly len(argv) view records from a and fills them in
// invocation order. The argument text is never copied: element i carries
// the same pointer+length header as argv[i].
func Build(a *arena.Fixed, argv []string) (*Sequence, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyArgv
	}
	views, err := arena.AllocSlice[string](a, len(argv))
	if err != nil {
		return nil, err
	}
	copy(views, argv)
	return &Sequence{args: views}, nil
}

// Len returns the number of arguments in the sequence.
func (s *Sequence) Len() int {
	return len(s.args)
}

// Arg returns argument i. Index 0 is the invoked program's path.
func (s *Sequence) Arg(i int) string {
	return s.args[i]
}

// Each calls fn for every argument in invocation order.
func (s *Sequence) Each(fn func(i int, arg string)) {
	for i, arg := range s.args {
		fn(i, arg)
	}
}
