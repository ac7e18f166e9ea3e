package tstack

import (
	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/poly"
)

// termRefTable maps terms.Term handles to the lightweight poly.TermRef
// handles an accumulator buffer stores its non-constant monomials under,
// and back again. One is created per associative fold (see ops_arith.go,
// ops_bvarith.go, ops_bvlogic.go) and discarded once the buffer has been
// turned back into a term.
type termRefTable struct {
	terms []terms.Term
	index map[terms.Term]poly.TermRef
}

func newTermRefTable() *termRefTable {
	return &termRefTable{index: make(map[terms.Term]poly.TermRef)}
}

// ref returns t's TermRef, assigning it a fresh one the first time t is
// seen so that two additions of the same term merge into one monomial.
func (r *termRefTable) ref(t terms.Term) poly.TermRef {
	if idx, ok := r.index[t]; ok {
		return idx
	}
	idx := poly.TermRef(len(r.terms))
	r.terms = append(r.terms, t)
	r.index[t] = idx
	return idx
}

// resolve is the toTerm callback the poly buffer-to-term constructors in
// pkg/terms expect.
func (r *termRefTable) resolve(ref poly.TermRef) terms.Term {
	return r.terms[ref]
}

// termFromRatBuffer materializes a rational accumulator buffer into a
// term, canonicalizing to a constant when every monomial has cancelled.
func (s *Stack) termFromRatBuffer(buf *poly.RatBuffer, refs *termRefTable) terms.Term {
	return s.table.RatFromPoly(buf, refs.resolve)
}

// termFromBVSmallBuffer is termFromRatBuffer's <=64-bit bit-vector
// counterpart.
func (s *Stack) termFromBVSmallBuffer(buf *poly.BVSmallBuffer, refs *termRefTable) terms.Term {
	return s.table.BVFromSmallPoly(buf, refs.resolve)
}

// termFromBVWideBuffer is termFromRatBuffer's >64-bit bit-vector
// counterpart.
func (s *Stack) termFromBVWideBuffer(buf *poly.BVWideBuffer, refs *termRefTable) terms.Term {
	return s.table.BVFromWidePoly(buf, refs.resolve)
}

// termFromLogicBuffer materializes a bit-vector logic buffer into a term,
// failing BV_LOGIC_ERROR if the underlying term construction rejects it
// (a width mismatch between bits coming from different source terms).
func (s *Stack) termFromLogicBuffer(loc Location, buf *poly.LogicBuffer, refs *termRefTable) terms.Term {
	t, err := s.table.BVFromLogicBuffer(buf, refs.resolve)
	if err != nil {
		s.fail(KindBVLogicError, loc, "", "%v", err)
	}
	return t
}

// mustTerm wraps any pkg/terms constructor call that returns (Term,
// error), translating a non-nil error into EXTERNAL_ERROR: every error
// the term builder itself raises is mapped to this one generic kind.
// Preconditions checked before ever calling into pkg/terms (a literal
// zero divisor, a negative exponent, an out-of-range bit-vector extract)
// get their own specific error kind at the call site instead; only the
// term table's own refusal is generic.
func (s *Stack) mustTerm(loc Location, t terms.Term, err error) terms.Term {
	if err != nil {
		s.fail(KindExternalError, loc, "", "%v", err)
	}
	return t
}
