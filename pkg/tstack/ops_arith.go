package tstack

import (
	"math/big"

	"github.com/smtcore/tstack/pkg/terms/poly"
)

func registerArithOps(t *OpTable) {
	t.Register(MK_ADD, true, checkAtLeast1, evalMkAdd)
	t.Register(MK_SUB, false, checkAtLeast2, evalMkSub)
	t.Register(MK_NEG, false, checkArity1, evalMkNeg)
	t.Register(MK_MUL, true, checkAtLeast1, evalMkMul)
	t.Register(MK_DIVISION, false, checkArity2, evalMkDivision)
	t.Register(MK_POW, false, checkArity2, evalMkPow)
	t.Register(MK_GE, false, checkArity2, evalMkGe)
	t.Register(MK_GT, false, checkArity2, evalMkGt)
	t.Register(MK_LE, false, checkArity2, evalMkLe)
	t.Register(MK_LT, false, checkArity2, evalMkLt)
}

// accumulateRat folds one MK_ADD/MK_SUB argument cell into buf: a bare
// rational cell folds straight into the constant part, anything else is
// coerced into a term and added with coefficient +-1.
func (s *Stack) accumulateRat(buf *poly.RatBuffer, refs *termRefTable, c *Cell, negate bool) {
	if c.Tag == TagRational {
		v := c.rational
		if negate {
			v = new(big.Rat).Neg(v)
		}
		buf.AddConstant(v)
		return
	}
	coeff := big.NewRat(1, 1)
	if negate {
		coeff = big.NewRat(-1, 1)
	}
	buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
}

// evalMkAdd folds every argument into a rational accumulator buffer and
// materializes it, collapsing to a single RATIONAL cell when every
// monomial cancels out.
func evalMkAdd(s *Stack, f, n uint32) {
	buf := s.pool.acquireRat()
	refs := newTermRefTable()
	for i := uint32(0); i < n; i++ {
		s.accumulateRat(buf, refs, s.argCell(f, i), false)
	}
	result := s.termFromRatBuffer(buf, refs)
	s.pool.recycleRat(buf)
	s.finishTerm(result)
}

// evalMkSub is MK_ADD's non-associative left fold: args[0] - args[1] - ...
// - args[n-1]. Unlike MK_ADD, MK_SUB never folds via the multiplicity
// counter on re-push.
func evalMkSub(s *Stack, f, n uint32) {
	buf := s.pool.acquireRat()
	refs := newTermRefTable()
	s.accumulateRat(buf, refs, s.argCell(f, 0), false)
	for i := uint32(1); i < n; i++ {
		s.accumulateRat(buf, refs, s.argCell(f, i), true)
	}
	result := s.termFromRatBuffer(buf, refs)
	s.pool.recycleRat(buf)
	s.finishTerm(result)
}

func evalMkNeg(s *Stack, f, n uint32) {
	buf := s.pool.acquireRat()
	refs := newTermRefTable()
	s.accumulateRat(buf, refs, s.argCell(f, 0), true)
	result := s.termFromRatBuffer(buf, refs)
	s.pool.recycleRat(buf)
	s.finishTerm(result)
}

// evalMkMul folds constant factors into a running scalar and at most one
// symbolic factor into a single coeff*term monomial; a second symbolic
// factor makes the product non-linear, which a RatBuffer cannot express
// (see poly.RatBuffer.ScaleBy), so that raises ARITH_ERROR rather than
// silently building a KindMul node behind the buffer's back.
func evalMkMul(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	buf := s.pool.acquireRat()
	refs := newTermRefTable()
	buf.AddConstant(big.NewRat(1, 1))
	for i := uint32(0); i < n; i++ {
		c := s.argCell(f, i)
		if c.Tag == TagRational {
			buf.ScaleBy(c.rational)
			continue
		}
		if !buf.IsConstant() {
			s.fail(KindArithError, loc, "", "MK_MUL of two non-constant arguments is not linear")
		}
		coeff := new(big.Rat).Set(buf.ConstantValue())
		buf.AddConstant(new(big.Rat).Neg(coeff))
		buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
	}
	result := s.termFromRatBuffer(buf, refs)
	s.pool.recycleRat(buf)
	s.finishTerm(result)
}

// evalMkDivision requires a structurally constant, non-zero divisor,
// rejecting a symbolic or literal-zero divisor before ever reaching the
// term table.
func evalMkDivision(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	bCell := s.argCell(f, 1)
	if bCell.Tag != TagRational {
		s.fail(KindNonConstantDivisor, bCell.Loc, "", "MK_DIVISION divisor must be a constant")
	}
	if bCell.rational.Sign() == 0 {
		s.fail(KindDivideByZero, bCell.Loc, "", "MK_DIVISION by zero")
	}
	b := s.coerceTerm(bCell)
	t, err := s.table.Division(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// evalMkPow requires a non-negative integer exponent.
func evalMkPow(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	kCell := s.argCell(f, 1)
	k := s.coerceInt32(kCell)
	if k < 0 {
		s.fail(KindNegativeExponent, kCell.Loc, "", "MK_POW exponent must be non-negative")
	}
	t, err := s.table.Pow(a, k)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkGe(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Ge(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkGt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Gt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkLe(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Le(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkLt(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.Lt(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}
