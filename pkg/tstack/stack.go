package tstack

import (
	log "github.com/sirupsen/logrus"

	"github.com/smtcore/tstack/pkg/tnames"
	"github.com/smtcore/tstack/pkg/terms"
)

// Stack is the operator-evaluation stack. It owns its value array, arena,
// buffer pool and auxiliary scratch vector for its entire lifetime; the
// operator table, term/type table and name registry are shared
// collaborators supplied at construction.
type Stack struct {
	elems []Cell
	frame uint32 // current_frame_index
	topOp int32  // current_opcode

	ops    *OpTable
	table  *terms.Table
	names  *tnames.Registry

	arena *Arena
	pool  bufferPool
	aux   []int32

	tvarID uint32

	hasTermResult bool
	hasTypeResult bool
	termResult    terms.Term
	typeResult    terms.Type
}

// New constructs a stack over the given operator table, term/type table
// and name registry, with the sentinel frame installed at index 0. The
// term/type table is passed in explicitly rather than built internally,
// since the bridge functions in bridge.go have nowhere else to get one.
func New(ops *OpTable, table *terms.Table, names *tnames.Registry) *Stack {
	s := &Stack{
		ops:   ops,
		table: table,
		names: names,
		arena: NewArena(),
	}
	s.resetState()
	return s
}

func (s *Stack) resetState() {
	s.elems = s.elems[:0]
	s.elems = append(s.elems, opCell(NO_OP, 0, Location{}))
	s.frame = 0
	s.topOp = NO_OP
	s.arena.Reset()
	s.aux = s.aux[:0]
	s.hasTermResult = false
	s.hasTypeResult = false
	s.termResult = terms.NullTerm
	s.typeResult = terms.NullType
}

// top returns the index of the topmost cell.
func (s *Stack) top() uint32 {
	return uint32(len(s.elems)) - 1
}

// IsEmpty reports whether the stack holds only the sentinel frame.
func (s *Stack) IsEmpty() bool {
	return s.top() == 0
}

// ResultTerm returns the term produced by the most recent BUILD_TERM
// evaluation. Valid only after such an evaluation.
func (s *Stack) ResultTerm() terms.Term {
	return s.termResult
}

// ResultType returns the type produced by the most recent BUILD_TYPE
// evaluation. Valid only after such an evaluation.
func (s *Stack) ResultType() terms.Type {
	return s.typeResult
}

// Reset walks the array top-down freeing or recycling owned resources and
// truncates back to the sentinel frame. Mandatory after any push/evaluate
// call returns a non-nil error: the stack's state after an error is left
// unspecified and not otherwise enforced by the type system, so a caller
// must call Reset before reusing the stack (see DESIGN.md).
func (s *Stack) Reset() {
	log.Debug("tstack: reset")
	for i := len(s.elems) - 1; i >= 1; i-- {
		s.releaseCell(&s.elems[i])
	}
	s.resetState()
}

// releaseCell removes a binding cell's entry from the name registry, the
// one piece of cleanup a cell can still own now that every arith/bvlogic
// op recycles its pool buffer itself before returning (see pool.go) rather
// than leaving it parked in a stack cell. Called both by Reset
// (unconditionally, top-down) and by the post-evaluation frame-collapse
// helper (for argument cells only).
func (s *Stack) releaseCell(c *Cell) {
	if c.Tag == TagTermBinding {
		s.names.UnbindTerm(c.termBind.Symbol, c.termBind.Prior, c.termBind.HadPrior)
	}
}

func (s *Stack) push(c Cell) {
	s.elems = append(s.elems, c)
}

func (s *Stack) cellAt(i uint32) *Cell {
	return &s.elems[i]
}
