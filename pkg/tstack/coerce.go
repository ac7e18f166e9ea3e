package tstack

import (
	"math/big"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/smtcore/tstack/pkg/terms/bvconst"
)

// coerceTerm reads cell c as a term, materializing a rational or
// bit-vector constant into the term table on the fly: numeric literals
// are terms too, so e.g. MK_ADD can take a bare RATIONAL cell next to a
// TERM cell. Anything else in argument position is a shape error, not a
// coercion error, since there is no well-defined conversion for it.
func (s *Stack) coerceTerm(c *Cell) terms.Term {
	switch c.Tag {
	case TagTerm:
		return c.term
	case TagRational:
		return s.table.RationalConst(c.rational)
	case TagBVSmall:
		return s.table.BVConst(bvconst.NewFromUint64(c.bvSmall.Bitsize, c.bvSmall.Value))
	case TagBVWide:
		return s.table.BVConst(c.bvWide)
	default:
		s.fail(KindInvalidFrame, c.Loc, "", "expected a term-valued argument")
		return terms.NullTerm
	}
}

// coerceType reads cell c as a type, failing NOT_A_TYPE otherwise.
func (s *Stack) coerceType(c *Cell) terms.Type {
	if c.Tag != TagType {
		s.fail(KindNotAType, c.Loc, "", "expected a type argument")
	}
	return c.typ
}

// coerceSymbol reads the cell as a bare symbol, failing NOT_A_SYMBOL
// otherwise.
func (s *Stack) coerceSymbol(c *Cell) string {
	if c.Tag != TagSymbol {
		s.fail(KindNotASymbol, c.Loc, "", "expected a symbol argument")
	}
	return c.symbol
}

// coerceString reads the cell as a string literal, failing NOT_A_STRING
// otherwise.
func (s *Stack) coerceString(c *Cell) string {
	if c.Tag != TagString {
		s.fail(KindNotAString, c.Loc, "", "expected a string argument")
	}
	return c.symbol
}

// coerceRational reads the cell as a rational constant, failing
// NOT_A_RATIONAL otherwise.
func (s *Stack) coerceRational(c *Cell) *big.Rat {
	if c.Tag != TagRational {
		s.fail(KindNotARational, c.Loc, "", "expected a rational argument")
	}
	return c.rational
}

// coerceInt32 reads the cell as a rational with denominator 1 that fits in
// an int32, failing NOT_AN_INTEGER otherwise. Used for array indices,
// extract bounds, extend/repeat counts and the like.
func (s *Stack) coerceInt32(c *Cell) int32 {
	r := s.coerceRational(c)
	if !r.IsInt() {
		s.fail(KindNotAnInteger, c.Loc, "", "expected an integer, got a non-integral rational")
	}
	bi := r.Num()
	if !bi.IsInt64() {
		s.fail(KindIntegerOverflow, c.Loc, "", "integer literal does not fit in 32 bits")
	}
	v := bi.Int64()
	if v < -(1<<31) || v >= (1<<31) {
		s.fail(KindIntegerOverflow, c.Loc, "", "integer literal does not fit in 32 bits")
	}
	return int32(v)
}

// coerceUint32 is coerceInt32 plus a non-negativity check, used for
// bit-widths, shift amounts and other quantities that can never be
// negative.
func (s *Stack) coerceUint32(c *Cell) uint32 {
	v := s.coerceInt32(c)
	if v < 0 {
		s.fail(KindNotAnInteger, c.Loc, "", "expected a non-negative integer")
	}
	return uint32(v)
}

// coercePositiveBitsize is coerceUint32 plus a strictly-positive check,
// used for MK_BV_TYPE and MK_BV_CONST's declared width.
func (s *Stack) coercePositiveBitsize(c *Cell) uint32 {
	v := s.coerceUint32(c)
	if v == 0 {
		s.fail(KindNonpositiveBVSize, c.Loc, "", "bit-vector size must be positive")
	}
	return v
}

// coerceBVConst reads the cell as a bit-vector constant, failing
// INVALID_BV_CONSTANT if the cell does not carry one.
func (s *Stack) coerceBVConst(c *Cell) *bvconst.Value {
	switch c.Tag {
	case TagBVSmall:
		return bvconst.NewFromUint64(c.bvSmall.Bitsize, c.bvSmall.Value)
	case TagBVWide:
		return c.bvWide
	default:
		s.fail(KindInvalidBVConstant, c.Loc, "", "expected a bit-vector constant argument")
		return nil
	}
}

// coerceMacro reads the cell as a macro identity, failing INVALID_FRAME
// otherwise. There is no dedicated "not a macro" error kind, since a
// macro only ever appears in a handful of fixed argument positions where
// a shape mismatch is as much a frame-shape error as a tag error.
func (s *Stack) coerceMacro(c *Cell) int32 {
	if c.Tag != TagMacro {
		s.fail(KindInvalidFrame, c.Loc, "", "expected a macro argument")
	}
	return c.macro
}

// argCell is a convenience wrapper used throughout the ops_*.go files:
// cellAt(f+i) for the i'th argument of a frame whose first argument sits
// at index f.
func (s *Stack) argCell(f, i uint32) *Cell {
	return s.cellAt(f + i)
}
