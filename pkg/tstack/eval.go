package tstack

import (
	log "github.com/sirupsen/logrus"

	"github.com/smtcore/tstack/pkg/terms"
)

// Evaluate collapses the current frame: locate the frame's opcode and
// argument range, run its CheckFunc, then its EvalFunc. The EvalFunc is
// responsible for calling one of the finish* helpers below exactly once,
// which performs the actual frame collapse.
func (s *Stack) Evaluate() error {
	return s.runProtected(func() { s.evaluate() })
}

func (s *Stack) evaluate() {
	if s.topOp == NO_OP {
		s.fail(KindInvalidFrame, s.elems[s.frame].Loc, "", "no open frame to evaluate")
	}
	if op := &s.cellAt(s.frame).op; op.Multiplicity > 0 {
		op.Multiplicity--
		log.Debugf("tstack: fold close, multiplicity now %d", op.Multiplicity)
		return
	}
	opcode := s.topOp
	f := s.frame + 1
	n := s.top() - s.frame
	entry := s.ops.entry(opcode)
	if !entry.valid {
		s.fail(KindInternal, s.elems[s.frame].Loc, "", "opcode %d has no registered handler", opcode)
	}
	log.Debugf("tstack: evaluate opcode %d, %d argument(s)", opcode, n)
	entry.check(s, f, n)
	entry.eval(s, f, n)
}

// finishWith collapses the current frame, replacing it with result. Every
// argument cell is released (recycling buffers, restoring any bindings it
// carries) before the replacement is installed. The arena scope opened by
// PushOp is popped symmetrically, unless the collapsing opcode is BIND,
// which never owned one.
func (s *Stack) finishWith(result Cell) {
	opIdx := s.frame
	prev := s.elems[opIdx].op.Prev
	opcode := s.elems[opIdx].op.Opcode
	for i := uint32(len(s.elems)) - 1; i > opIdx; i-- {
		s.releaseCell(&s.elems[i])
	}
	s.elems = s.elems[:opIdx+1]
	if opcode != BIND {
		s.arena.PopScope()
	}
	s.elems[opIdx] = result
	s.frame = prev
	s.topOp = s.elems[prev].op.Opcode
}

// finishEmpty collapses the current frame without leaving a replacement
// cell behind. BUILD_TERM and BUILD_TYPE use this: they move their single
// argument into the stack's pending result fields and leave the stack
// empty, leaving nothing on the stack once the final BUILD_TERM or
// BUILD_TYPE of a command runs.
func (s *Stack) finishEmpty() {
	opIdx := s.frame
	prev := s.elems[opIdx].op.Prev
	opcode := s.elems[opIdx].op.Opcode
	for i := uint32(len(s.elems)) - 1; i >= opIdx; i-- {
		s.releaseCell(&s.elems[i])
	}
	s.elems = s.elems[:opIdx]
	if opcode != BIND {
		s.arena.PopScope()
	}
	s.frame = prev
	s.topOp = s.elems[prev].op.Opcode
}

// finishTerm collapses the frame into a single term-valued cell.
func (s *Stack) finishTerm(t terms.Term) {
	loc := s.elems[s.frame].Loc
	s.finishWith(termCell(t, loc))
}

// finishType collapses the frame into a single type-valued cell.
func (s *Stack) finishType(tau terms.Type) {
	loc := s.elems[s.frame].Loc
	s.finishWith(typeCell(tau, loc))
}

// finishTermBinding collapses a BIND frame into a term-binding cell that
// remains on the stack for the enclosing LET frame to later release (and
// thereby restore whatever name it shadowed).
func (s *Stack) finishTermBinding(symbol string, t terms.Term, prior terms.Term, hadPrior bool) {
	loc := s.elems[s.frame].Loc
	s.finishWith(termBindingCell(symbol, t, prior, hadPrior, loc))
}

// setTermResult records t as the pending BUILD_TERM result.
func (s *Stack) setTermResult(t terms.Term) {
	s.termResult = t
	s.hasTermResult = true
}

// setTypeResult records tau as the pending BUILD_TYPE result.
func (s *Stack) setTypeResult(tau terms.Type) {
	s.typeResult = tau
	s.hasTypeResult = true
}
