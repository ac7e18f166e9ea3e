package tstack

import (
	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/smtcore/tstack/pkg/terms/poly"
)

func registerBVLogicOps(t *OpTable) {
	t.Register(MK_BV_NOT, false, checkArity1, evalMkBVNot)
	t.Register(MK_BV_AND, true, checkAtLeast1, evalMkBVAnd)
	t.Register(MK_BV_OR, true, checkAtLeast1, evalMkBVOr)
	t.Register(MK_BV_XOR, true, checkAtLeast1, evalMkBVXor)
	t.Register(MK_BV_NAND, true, checkAtLeast1, evalMkBVNand)
	t.Register(MK_BV_NOR, true, checkAtLeast1, evalMkBVNor)
	t.Register(MK_BV_XNOR, true, checkAtLeast1, evalMkBVXnor)
	t.Register(MK_BV_SHIFT_LEFT0, false, checkArity2, evalMkBVShiftLeft0)
	t.Register(MK_BV_SHIFT_LEFT1, false, checkArity2, evalMkBVShiftLeft1)
	t.Register(MK_BV_SHIFT_RIGHT0, false, checkArity2, evalMkBVShiftRight0)
	t.Register(MK_BV_SHIFT_RIGHT1, false, checkArity2, evalMkBVShiftRight1)
	t.Register(MK_BV_ASHIFT_RIGHT, false, checkArity2, evalMkBVAShiftRight)
	t.Register(MK_BV_ROTATE_LEFT, false, checkArity2, evalMkBVRotateLeft)
	t.Register(MK_BV_ROTATE_RIGHT, false, checkArity2, evalMkBVRotateRight)
	t.Register(MK_BV_SHL, false, checkArity2, evalMkBVShl)
	t.Register(MK_BV_LSHR, false, checkArity2, evalMkBVLshr)
	t.Register(MK_BV_ASHR, false, checkArity2, evalMkBVAshr)
	t.Register(MK_BV_EXTRACT, false, checkArity3, evalMkBVExtract)
	t.Register(MK_BV_CONCAT, true, checkAtLeast1, evalMkBVConcat)
	t.Register(MK_BV_REPEAT, false, checkArity2, evalMkBVRepeat)
	t.Register(MK_BV_SIGN_EXTEND, false, checkArity2, evalMkBVSignExtend)
	t.Register(MK_BV_ZERO_EXTEND, false, checkArity2, evalMkBVZeroExtend)
	t.Register(MK_BV_REDAND, false, checkArity1, evalMkBVRedAnd)
	t.Register(MK_BV_REDOR, false, checkArity1, evalMkBVRedOr)
	t.Register(MK_BV_COMP, false, checkArity2, evalMkBVComp)
}

func evalMkBVNot(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	t, err := s.table.BVNot(a)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// bitTerm returns the 1-bit term named by bit i of buf, materializing a
// fresh constant for a non-symbolic bit.
func (s *Stack) bitTerm(buf *poly.LogicBuffer, refs *termRefTable, i uint32) terms.Term {
	if buf.IsSymbolic(i) {
		return refs.resolve(buf.TermBit(i))
	}
	v := uint64(0)
	if buf.ConstBit(i) {
		v = 1
	}
	return s.table.BVConst(bvconst.NewFromUint64(1, v))
}

// loadLogicBuffer decomposes an argument cell into buf's per-bit
// representation: a constant cell fills every bit as a Boolean constant,
// a term cell is split one bit at a time via BVExtract.
func (s *Stack) loadLogicBuffer(buf *poly.LogicBuffer, refs *termRefTable, c *Cell) {
	switch c.Tag {
	case TagBVSmall:
		for i := uint32(0); i < buf.Bitsize; i++ {
			buf.SetConstBit(i, (c.bvSmall.Value>>i)&1 != 0)
		}
	case TagBVWide:
		bi := c.bvWide.BigInt()
		for i := uint32(0); i < buf.Bitsize; i++ {
			buf.SetConstBit(i, bi.Bit(int(i)) != 0)
		}
	default:
		term := s.coerceTerm(c)
		for i := uint32(0); i < buf.Bitsize; i++ {
			bit, err := s.table.BVExtract(term, i, i)
			bit = s.mustTerm(c.Loc, bit, err)
			buf.SetTermBit(i, refs.ref(bit))
		}
	}
}

// combineLogicBit folds src's bit i into dst's bit i with foldConst when
// both sides are already known constants, falling back to foldTerm (a
// single-bit Table constructor) otherwise.
func (s *Stack) combineLogicBit(dst, src *poly.LogicBuffer, refs *termRefTable, i uint32, loc Location,
	foldConst func(a, b bool) bool, foldTerm func(a, b terms.Term) (terms.Term, error)) {
	if !dst.IsSymbolic(i) && !src.IsSymbolic(i) {
		dst.SetConstBit(i, foldConst(dst.ConstBit(i), src.ConstBit(i)))
		return
	}
	a, b := s.bitTerm(dst, refs, i), s.bitTerm(src, refs, i)
	rt, err := foldTerm(a, b)
	dst.SetTermBit(i, refs.ref(s.mustTerm(loc, rt, err)))
}

// evalBVBitwiseAssoc implements the shared shape of MK_BV_AND/OR/XOR: fold
// every argument into an accumulator buffer bit by bit, combining constant
// bits with foldConst directly and falling back to the matching Table
// constructor only for bits that stay symbolic.
func evalBVBitwiseAssoc(s *Stack, f, n uint32, foldConst func(a, b bool) bool, foldTerm func(a, b terms.Term) (terms.Term, error)) {
	loc := s.elems[s.frame].Loc
	bitsize := s.bvBitsizeOfCell(s.argCell(f, 0))
	for i := uint32(1); i < n; i++ {
		s.checkBVWidth(s.argCell(f, i), bitsize)
	}
	buf := s.pool.acquireLogic(bitsize)
	refs := newTermRefTable()
	s.loadLogicBuffer(buf, refs, s.argCell(f, 0))
	scratch := poly.NewLogicBuffer(bitsize)
	for i := uint32(1); i < n; i++ {
		s.loadLogicBuffer(scratch, refs, s.argCell(f, i))
		for bit := uint32(0); bit < bitsize; bit++ {
			s.combineLogicBit(buf, scratch, refs, bit, loc, foldConst, foldTerm)
		}
	}
	result := s.termFromLogicBuffer(loc, buf, refs)
	s.pool.recycleLogic(buf)
	s.finishTerm(result)
}

func evalMkBVAnd(s *Stack, f, n uint32) {
	evalBVBitwiseAssoc(s, f, n,
		func(a, b bool) bool { return a && b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVAnd([]terms.Term{a, b}) })
}

func evalMkBVOr(s *Stack, f, n uint32) {
	evalBVBitwiseAssoc(s, f, n,
		func(a, b bool) bool { return a || b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVOr([]terms.Term{a, b}) })
}

func evalMkBVXor(s *Stack, f, n uint32) {
	evalBVBitwiseAssoc(s, f, n,
		func(a, b bool) bool { return a != b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVXor([]terms.Term{a, b}) })
}

// evalBVBitwiseAssocNot is MK_BV_NAND/NOR/XNOR's shape: fold with the
// matching non-negated combinator, then complement every bit once,
// mirroring bvconst.Nand/Nor/Xnor's "not(and/or/xor)" definition extended
// to n arguments.
func evalBVBitwiseAssocNot(s *Stack, f, n uint32, foldConst func(a, b bool) bool, foldTerm func(a, b terms.Term) (terms.Term, error)) {
	loc := s.elems[s.frame].Loc
	bitsize := s.bvBitsizeOfCell(s.argCell(f, 0))
	for i := uint32(1); i < n; i++ {
		s.checkBVWidth(s.argCell(f, i), bitsize)
	}
	buf := s.pool.acquireLogic(bitsize)
	refs := newTermRefTable()
	s.loadLogicBuffer(buf, refs, s.argCell(f, 0))
	scratch := poly.NewLogicBuffer(bitsize)
	for i := uint32(1); i < n; i++ {
		s.loadLogicBuffer(scratch, refs, s.argCell(f, i))
		for bit := uint32(0); bit < bitsize; bit++ {
			s.combineLogicBit(buf, scratch, refs, bit, loc, foldConst, foldTerm)
		}
	}
	buf.Not(func(ref poly.TermRef) poly.TermRef {
		t, err := s.table.BVNot(refs.resolve(ref))
		return refs.ref(s.mustTerm(loc, t, err))
	})
	result := s.termFromLogicBuffer(loc, buf, refs)
	s.pool.recycleLogic(buf)
	s.finishTerm(result)
}

func evalMkBVNand(s *Stack, f, n uint32) {
	evalBVBitwiseAssocNot(s, f, n,
		func(a, b bool) bool { return a && b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVAnd([]terms.Term{a, b}) })
}

func evalMkBVNor(s *Stack, f, n uint32) {
	evalBVBitwiseAssocNot(s, f, n,
		func(a, b bool) bool { return a || b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVOr([]terms.Term{a, b}) })
}

func evalMkBVXnor(s *Stack, f, n uint32) {
	evalBVBitwiseAssocNot(s, f, n,
		func(a, b bool) bool { return a != b },
		func(a, b terms.Term) (terms.Term, error) { return s.table.BVXor([]terms.Term{a, b}) })
}

func evalMkBVShiftLeft0(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVShiftLeft0(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVShiftLeft1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVShiftLeft1(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVShiftRight0(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVShiftRight0(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVShiftRight1(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVShiftRight1(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVAShiftRight(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVAShiftRight(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRotateLeft(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVRotateLeft(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRotateRight(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	amt := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVRotateRight(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// evalMkBVShl and its siblings take a bit-vector-valued shift amount, not
// a constant, unlike MK_BV_SHIFT_LEFT0/1 and friends above.
func evalMkBVShl(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, amt := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVShl(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVLshr(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, amt := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVLshr(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVAshr(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, amt := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVAshr(a, amt)
	s.finishTerm(s.mustTerm(loc, t, err))
}

// evalMkBVExtract reads MK_BV_EXTRACT(high, low, bv).
func evalMkBVExtract(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	high := s.coerceUint32(s.argCell(f, 0))
	low := s.coerceUint32(s.argCell(f, 1))
	a := s.coerceTerm(s.argCell(f, 2))
	t, err := s.table.BVExtract(a, high, low)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVConcat(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	t, err := s.table.BVConcat(s.argTerms(f, n))
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRepeat(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	count := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVRepeat(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVSignExtend(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	count := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVSignExtend(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVZeroExtend(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	count := s.coerceUint32(s.argCell(f, 1))
	t, err := s.table.BVZeroExtend(a, count)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRedAnd(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	t, err := s.table.BVRedAnd(a)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVRedOr(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a := s.coerceTerm(s.argCell(f, 0))
	t, err := s.table.BVRedOr(a)
	s.finishTerm(s.mustTerm(loc, t, err))
}

func evalMkBVComp(s *Stack, f, n uint32) {
	loc := s.elems[s.frame].Loc
	a, b := s.coerceTerm(s.argCell(f, 0)), s.coerceTerm(s.argCell(f, 1))
	t, err := s.table.BVComp(a, b)
	s.finishTerm(s.mustTerm(loc, t, err))
}
