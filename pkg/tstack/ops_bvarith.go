package tstack

import (
	"math/big"

	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/smtcore/tstack/pkg/terms/poly"
)

func registerBVArithOps(t *OpTable) {
	t.Register(MK_BV_CONST, false, checkArity2, evalMkBVConst)
	t.Register(MK_BV_ADD, true, checkAtLeast1, evalMkBVAdd)
	t.Register(MK_BV_SUB, false, checkAtLeast2, evalMkBVSub)
	t.Register(MK_BV_NEG, false, checkArity1, evalMkBVNeg)
	t.Register(MK_BV_MUL, true, checkAtLeast1, evalMkBVMul)
	t.Register(MK_BV_POW, false, checkArity2, evalMkBVPow)
	t.Register(MK_BV_DIV, false, checkArity2, evalMkBVDiv)
	t.Register(MK_BV_REM, false, checkArity2, evalMkBVRem)
	t.Register(MK_BV_SDIV, false, checkArity2, evalMkBVSDiv)
	t.Register(MK_BV_SREM, false, checkArity2, evalMkBVSRem)
	t.Register(MK_BV_SMOD, false, checkArity2, evalMkBVSMod)
}

// evalMkBVConst builds a fixed-width bit-vector constant from an explicit
// (size, value) pair: the literal form, as opposed to PushBVBin/PushBVHex
// parsing one straight off the wire.
func evalMkBVConst(s *Stack, f, n uint32) {
	bitsize := s.coercePositiveBitsize(s.argCell(f, 0))
	value := s.coerceRational(s.argCell(f, 1))
	if !value.IsInt() {
		s.fail(KindNotAnInteger, s.argCell(f, 1).Loc, "", "MK_BV_CONST value must be an integer")
	}
	s.finishTerm(s.table.BVConst(bvconst.NewFromBigInt(bitsize, value.Num())))
}

// bvBitsizeOfCell returns the width an argument cell carries, consulting
// the term table for a TagTerm cell whose width isn't inlined.
func (s *Stack) bvBitsizeOfCell(c *Cell) uint32 {
	if bits, ok := c.bitsizeOf(); ok {
		return bits
	}
	if c.Tag == TagTerm {
		if bits, ok := s.table.IsBitVector(s.table.TypeOf(c.term)); ok {
			return bits
		}
	}
	s.fail(KindInvalidFrame, c.Loc, "", "expected a bit-vector argument")
	return 0
}

func (s *Stack) checkBVWidth(c *Cell, want uint32) {
	if got := s.bvBitsizeOfCell(c); got != want {
		s.fail(KindIncompatibleBVSizes, c.Loc, "", "bit-vector width mismatch: expected %d, got %d", want, got)
	}
}

// accumulateBVSmall folds one MK_BV_ADD/MK_BV_SUB argument cell (width <=
// 64) into buf, negating it two's-complement-wise when negate holds.
func (s *Stack) accumulateBVSmall(buf *poly.BVSmallBuffer, refs *termRefTable, c *Cell, negate bool) {
	if c.Tag == TagBVSmall {
		v := c.bvSmall.Value
		if negate {
			v = -v
		}
		buf.AddConstant(v)
		return
	}
	coeff := uint64(1)
	if negate {
		coeff = ^uint64(0)
	}
	buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
}

// accumulateBVWide is accumulateBVSmall's >64-bit counterpart.
func (s *Stack) accumulateBVWide(buf *poly.BVWideBuffer, refs *termRefTable, c *Cell, negate bool) {
	if c.Tag == TagBVWide {
		v := c.bvWide.BigInt()
		if negate {
			v = new(big.Int).Neg(v)
		}
		buf.AddConstant(v)
		return
	}
	coeff := big.NewInt(1)
	if negate {
		coeff = big.NewInt(-1)
	}
	buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
}

func evalMkBVAdd(s *Stack, f, n uint32) {
	bitsize := s.bvBitsizeOfCell(s.argCell(f, 0))
	for i := uint32(1); i < n; i++ {
		s.checkBVWidth(s.argCell(f, i), bitsize)
	}
	if bitsize <= 64 {
		buf := s.pool.acquireBVSmall(bitsize)
		refs := newTermRefTable()
		for i := uint32(0); i < n; i++ {
			s.accumulateBVSmall(buf, refs, s.argCell(f, i), false)
		}
		result := s.termFromBVSmallBuffer(buf, refs)
		s.pool.recycleBVSmall(buf)
		s.finishTerm(result)
		return
	}
	buf := s.pool.acquireBVWide(bitsize)
	refs := newTermRefTable()
	for i := uint32(0); i < n; i++ {
		s.accumulateBVWide(buf, refs, s.argCell(f, i), false)
	}
	result := s.termFromBVWideBuffer(buf, refs)
	s.pool.recycleBVWide(buf)
	s.finishTerm(result)
}

// evalMkBVSub is MK_BV_ADD's non-associative left fold: a - b - c = (a -
// b) - c.
func evalMkBVSub(s *Stack, f, n uint32) {
	bitsize := s.bvBitsizeOfCell(s.argCell(f, 0))
	for i := uint32(1); i < n; i++ {
		s.checkBVWidth(s.argCell(f, i), bitsize)
	}
	if bitsize <= 64 {
		buf := s.pool.acquireBVSmall(bitsize)
		refs := newTermRefTable()
		s.accumulateBVSmall(buf, refs, s.argCell(f, 0), false)
		for i := uint32(1); i < n; i++ {
			s.accumulateBVSmall(buf, refs, s.argCell(f, i), true)
		}
		result := s.termFromBVSmallBuffer(buf, refs)
		s.pool.recycleBVSmall(buf)
		s.finishTerm(result)
		return
	}
	buf := s.pool.acquireBVWide(bitsize)
	refs := newTermRefTable()
	s.accumulateBVWide(buf, refs, s.argCell(f, 0), false)
	for i := uint32(1); i < n; i++ {
		s.accumulateBVWide(buf, refs, s.argCell(f, i), true)
	}
	result := s.termFromBVWideBuffer(buf, refs)
	s.pool.recycleBVWide(buf)
	s.finishTerm(result)
}

func evalMkBVNeg(s *Stack, f, n uint32) {
	c := s.argCell(f, 0)
	bitsize := s.bvBitsizeOfCell(c)
	if bitsize <= 64 {
		buf := s.pool.acquireBVSmall(bitsize)
		refs := newTermRefTable()
		s.accumulateBVSmall(buf, refs, c, true)
		result := s.termFromBVSmallBuffer(buf, refs)
		s.pool.recycleBVSmall(buf)
		s.finishTerm(result)
		return
	}
	buf := s.pool.acquireBVWide(bitsize)
	refs := newTermRefTable()
	s.accumulateBVWide(buf, refs, c, true)
	result := s.termFromBVWideBuffer(buf, refs)
	s.pool.recycleBVWide(buf)
	s.finishTerm(result)
}

// evalMkBVMul mirrors evalMkMul: at most one factor may be symbolic,
// otherwise the product is non-linear and ARITH_ERROR, reused here since
// there is no dedicated BV-specific kind for this case.
func evalMkBVMul(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	bitsize := s.bvBitsizeOfCell(s.argCell(f, 0))
	for i := uint32(1); i < n; i++ {
		s.checkBVWidth(s.argCell(f, i), bitsize)
	}
	if bitsize <= 64 {
		buf := s.pool.acquireBVSmall(bitsize)
		refs := newTermRefTable()
		buf.AddConstant(1)
		for i := uint32(0); i < n; i++ {
			c := s.argCell(f, i)
			if c.Tag == TagBVSmall {
				buf.ScaleBy(c.bvSmall.Value)
				continue
			}
			if !buf.IsConstant() {
				s.fail(KindArithError, loc, "", "MK_BV_MUL of two non-constant arguments is not linear")
			}
			coeff := buf.ConstantValue()
			buf.AddConstant(-coeff)
			buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
		}
		result := s.termFromBVSmallBuffer(buf, refs)
		s.pool.recycleBVSmall(buf)
		s.finishTerm(result)
		return
	}
	buf := s.pool.acquireBVWide(bitsize)
	refs := newTermRefTable()
	buf.AddConstant(big.NewInt(1))
	for i := uint32(0); i < n; i++ {
		c := s.argCell(f, i)
		if c.Tag == TagBVWide {
			buf.ScaleBy(c.bvWide.BigInt())
			continue
		}
		if !buf.IsConstant() {
			s.fail(KindArithError, loc, "", "MK_BV_MUL of two non-constant arguments is not linear")
		}
		coeff := new(big.Int).Set(buf.ConstantValue())
		buf.AddConstant(new(big.Int).Neg(coeff))
		buf.AddTerm(coeff, refs.ref(s.coerceTerm(c)))
	}
	result := s.termFromBVWideBuffer(buf, refs)
	s.pool.recycleBVWide(buf)
	s.finishTerm(result)
}

func evalMkBVPow(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	kCell := s.argCell(f, 1)
	k := s.coerceInt32(kCell)
	if k < 0 {
		s.fail(KindNegativeExponent, kCell.Loc, "", "MK_BV_POW exponent must be non-negative")
	}
	t, err := s.table.BVPow(a, uint64(k))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVDiv(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVDiv(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRem(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVRem(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSDiv(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSDiv(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSRem(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSRem(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSMod(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVSMod(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}
