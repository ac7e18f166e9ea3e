package terms

import (
	"fmt"
	"math/big"

	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/smtcore/tstack/pkg/terms/poly"
)

// BVConst returns the term denoting a fixed-width bit-vector constant.
func (t *Table) BVConst(v *bvconst.Value) Term {
	return t.internTerm(node{kind: KindBVConst, bv: v, typ: t.BVType(v.Bitsize)})
}

func (t *Table) expectBV(a Term) (uint32, error) {
	bitsize, ok := t.IsBitVector(t.TypeOf(a))
	if !ok {
		return 0, fmt.Errorf("terms: expected a bit-vector term, got type %v", t.TypeOf(a))
	}
	return bitsize, nil
}

func (t *Table) expectSameBV(a, b Term) (uint32, error) {
	wa, err := t.expectBV(a)
	if err != nil {
		return 0, err
	}
	wb, err := t.expectBV(b)
	if err != nil {
		return 0, err
	}
	if wa != wb {
		return 0, fmt.Errorf("terms: bit-vector width mismatch %d vs %d", wa, wb)
	}
	return wa, nil
}

func (t *Table) bvConstOf(a Term) *bvconst.Value {
	return t.termNodes[a].bv
}

// bvAssocFold is the shared shape of the BV additive/multiplicative
// families: fold constants pairwise with foldConst, otherwise cons a
// variadic node of kind.
func (t *Table) bvAssocFold(kind Kind, args []Term, foldConst func(a, b *bvconst.Value) (*bvconst.Value, error)) (Term, error) {
	bitsize, err := t.expectBV(args[0])
	if err != nil {
		return NullTerm, err
	}
	for _, a := range args[1:] {
		w, err := t.expectBV(a)
		if err != nil {
			return NullTerm, err
		}
		if w != bitsize {
			return NullTerm, fmt.Errorf("terms: bit-vector width mismatch %d vs %d", bitsize, w)
		}
	}
	var acc *bvconst.Value
	var symbolic []Term
	for _, a := range args {
		if t.IsConstant(a) {
			v := t.bvConstOf(a)
			if acc == nil {
				acc = v
			} else {
				acc, err = foldConst(acc, v)
				if err != nil {
					return NullTerm, err
				}
			}
			continue
		}
		symbolic = append(symbolic, a)
	}
	if len(symbolic) == 0 {
		return t.BVConst(acc), nil
	}
	if acc != nil && !acc.IsZero() {
		symbolic = append([]Term{t.BVConst(acc)}, symbolic...)
	}
	if len(symbolic) == 1 {
		return symbolic[0], nil
	}
	return t.internTerm(node{kind: kind, children: symbolic, typ: t.BVType(bitsize)}), nil
}

// BVAdd returns the sum of args (n >= 1), all sharing a width.
func (t *Table) BVAdd(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: bvadd requires at least one argument")
	}
	if len(args) == 1 {
		if _, err := t.expectBV(args[0]); err != nil {
			return NullTerm, err
		}
		return args[0], nil
	}
	return t.bvAssocFold(KindBVAdd, args, bvconst.Add)
}

// BVMul returns the product of args (n >= 1), all sharing a width.
func (t *Table) BVMul(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: bvmul requires at least one argument")
	}
	if len(args) == 1 {
		if _, err := t.expectBV(args[0]); err != nil {
			return NullTerm, err
		}
		return args[0], nil
	}
	bitsize, err := t.expectBV(args[0])
	if err != nil {
		return NullTerm, err
	}
	acc := bvconst.NewFromUint64(bitsize, 1)
	var symbolic []Term
	for _, a := range args {
		w, err := t.expectBV(a)
		if err != nil {
			return NullTerm, err
		}
		if w != bitsize {
			return NullTerm, fmt.Errorf("terms: bit-vector width mismatch %d vs %d", bitsize, w)
		}
		if t.IsConstant(a) {
			acc, err = bvconst.Mul(acc, t.bvConstOf(a))
			if err != nil {
				return NullTerm, err
			}
			continue
		}
		symbolic = append(symbolic, a)
	}
	if len(symbolic) == 0 {
		return t.BVConst(acc), nil
	}
	one := bvconst.NewFromUint64(bitsize, 1)
	if !bvconst.Equal(acc, one) {
		symbolic = append([]Term{t.BVConst(acc)}, symbolic...)
	}
	if len(symbolic) == 1 {
		return symbolic[0], nil
	}
	return t.internTerm(node{kind: KindBVMul, children: symbolic, typ: t.BVType(bitsize)}), nil
}

// BVSub returns a - b.
func (t *Table) BVSub(a, b Term) (Term, error) {
	bitsize, err := t.expectSameBV(a, b)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(b) {
		v, err := bvconst.Sub(t.bvConstOf(a), t.bvConstOf(b))
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: KindBVSub, children: []Term{a, b}, typ: t.BVType(bitsize)}), nil
}

// BVNeg returns the two's-complement negation of a.
func (t *Table) BVNeg(a Term) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) {
		return t.BVConst(bvconst.Neg(t.bvConstOf(a))), nil
	}
	return t.internTerm(node{kind: KindBVNeg, children: []Term{a}, typ: t.BVType(bitsize)}), nil
}

// BVPow returns a raised to the non-negative integer power k.
func (t *Table) BVPow(a Term, k uint64) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) {
		return t.BVConst(bvconst.Pow(t.bvConstOf(a), k)), nil
	}
	return t.internTerm(node{kind: KindBVPow, children: []Term{a}, aux: int32(k), typ: t.BVType(bitsize)}), nil
}

func (t *Table) bvBinaryDivLike(kind Kind, a, b Term, foldConst func(a, b *bvconst.Value) (*bvconst.Value, error)) (Term, error) {
	bitsize, err := t.expectSameBV(a, b)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(b) {
		v, err := foldConst(t.bvConstOf(a), t.bvConstOf(b))
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a, b}, typ: t.BVType(bitsize)}), nil
}

// BVDiv returns the unsigned quotient of a / b.
func (t *Table) BVDiv(a, b Term) (Term, error) { return t.bvBinaryDivLike(KindBVDiv, a, b, bvconst.Div) }

// BVRem returns the unsigned remainder of a / b.
func (t *Table) BVRem(a, b Term) (Term, error) { return t.bvBinaryDivLike(KindBVRem, a, b, bvconst.Rem) }

// BVSDiv returns the signed (truncating) quotient of a / b.
func (t *Table) BVSDiv(a, b Term) (Term, error) {
	return t.bvBinaryDivLike(KindBVSDiv, a, b, bvconst.SDiv)
}

// BVSRem returns the signed remainder of a / b.
func (t *Table) BVSRem(a, b Term) (Term, error) {
	return t.bvBinaryDivLike(KindBVSRem, a, b, bvconst.SRem)
}

// BVSMod returns the signed modulus of a / b.
func (t *Table) BVSMod(a, b Term) (Term, error) {
	return t.bvBinaryDivLike(KindBVSMod, a, b, bvconst.SMod)
}

func (t *Table) bvBitwiseBinary(kind Kind, a, b Term, foldConst func(a, b *bvconst.Value) (*bvconst.Value, error)) (Term, error) {
	bitsize, err := t.expectSameBV(a, b)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(b) {
		v, err := foldConst(t.bvConstOf(a), t.bvConstOf(b))
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a, b}, typ: t.BVType(bitsize)}), nil
}

// BVAnd returns the bitwise AND of args (n >= 1).
func (t *Table) BVAnd(args []Term) (Term, error) { return t.bvLogicAssoc(KindBVAnd, args, bvconst.And) }

// BVOr returns the bitwise OR of args (n >= 1).
func (t *Table) BVOr(args []Term) (Term, error) { return t.bvLogicAssoc(KindBVOr, args, bvconst.Or) }

// BVXor returns the bitwise XOR of args (n >= 1).
func (t *Table) BVXor(args []Term) (Term, error) { return t.bvLogicAssoc(KindBVXor, args, bvconst.Xor) }

func (t *Table) bvLogicAssoc(kind Kind, args []Term, foldConst func(a, b *bvconst.Value) (*bvconst.Value, error)) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: bitwise op requires at least one argument")
	}
	if len(args) == 1 {
		if _, err := t.expectBV(args[0]); err != nil {
			return NullTerm, err
		}
		return args[0], nil
	}
	result := args[0]
	var err error
	for _, a := range args[1:] {
		result, err = t.bvBitwiseBinary(kind, result, a, foldConst)
		if err != nil {
			return NullTerm, err
		}
	}
	return result, nil
}

// BVNot returns the bitwise complement of a.
func (t *Table) BVNot(a Term) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) {
		return t.BVConst(bvconst.Not(t.bvConstOf(a))), nil
	}
	if n := t.termNodes[a]; n.kind == KindBVNot {
		return n.children[0], nil
	}
	return t.internTerm(node{kind: KindBVNot, children: []Term{a}, typ: t.BVType(bitsize)}), nil
}

// BVNand returns the bitwise NAND of a and b.
func (t *Table) BVNand(a, b Term) (Term, error) { return t.bvBitwiseBinary(KindBVNand, a, b, bvconst.Nand) }

// BVNor returns the bitwise NOR of a and b.
func (t *Table) BVNor(a, b Term) (Term, error) { return t.bvBitwiseBinary(KindBVNor, a, b, bvconst.Nor) }

// BVXnor returns the bitwise XNOR of a and b.
func (t *Table) BVXnor(a, b Term) (Term, error) { return t.bvBitwiseBinary(KindBVXnor, a, b, bvconst.Xnor) }

func (t *Table) bvShiftByConstantAmount(kind Kind, a Term, amt uint32, foldConst func(v *bvconst.Value, amt uint32) *bvconst.Value) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) {
		return t.BVConst(foldConst(t.bvConstOf(a), amt)), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a}, aux: int32(amt), typ: t.BVType(bitsize)}), nil
}

// BVShiftLeft0 shifts a left by the constant amt, padding with zeros.
func (t *Table) BVShiftLeft0(a Term, amt uint32) (Term, error) {
	return t.bvShiftByConstantAmount(KindBVShiftLeft0, a, amt, bvconst.ShiftLeft0)
}

// BVShiftLeft1 shifts a left by the constant amt, padding with ones.
func (t *Table) BVShiftLeft1(a Term, amt uint32) (Term, error) {
	return t.bvShiftByConstantAmount(KindBVShiftLeft1, a, amt, bvconst.ShiftLeft1)
}

// BVShiftRight0 shifts a right (logically) by the constant amt, padding
// with zeros.
func (t *Table) BVShiftRight0(a Term, amt uint32) (Term, error) {
	return t.bvShiftByConstantAmount(KindBVShiftRight0, a, amt, bvconst.ShiftRight0)
}

// BVShiftRight1 shifts a right (logically) by the constant amt, padding
// with ones.
func (t *Table) BVShiftRight1(a Term, amt uint32) (Term, error) {
	return t.bvShiftByConstantAmount(KindBVShiftRight1, a, amt, bvconst.ShiftRight1)
}

// BVAShiftRight shifts a right arithmetically by the constant amt.
func (t *Table) BVAShiftRight(a Term, amt uint32) (Term, error) {
	return t.bvShiftByConstantAmount(KindBVAShiftRight, a, amt, bvconst.AShiftRight)
}

func (t *Table) bvRotateByConstantAmount(kind Kind, a Term, amt uint32, foldConst func(v *bvconst.Value, amt uint32) (*bvconst.Value, error)) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if amt > bitsize {
		return NullTerm, fmt.Errorf("terms: rotate amount %d exceeds width %d", amt, bitsize)
	}
	if t.IsConstant(a) {
		v, err := foldConst(t.bvConstOf(a), amt)
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a}, aux: int32(amt), typ: t.BVType(bitsize)}), nil
}

// BVRotateLeft rotates a left by the constant amt.
func (t *Table) BVRotateLeft(a Term, amt uint32) (Term, error) {
	return t.bvRotateByConstantAmount(KindBVRotateLeft, a, amt, bvconst.RotateLeft)
}

// BVRotateRight rotates a right by the constant amt.
func (t *Table) BVRotateRight(a Term, amt uint32) (Term, error) {
	return t.bvRotateByConstantAmount(KindBVRotateRight, a, amt, bvconst.RotateRight)
}

// BVShl, BVLshr and BVAshr are the SMT-LIB-style shift-by-term-argument
// operators: the shift amount is itself a bit-vector term, not a constant
// the core already parsed out of the argument list, and so these always
// build an opaque node rather than folding at this layer (constant folding
// for these happens only when both operands are constant, via the same
// bvconst functions the constant-amount family uses).
func (t *Table) bvShiftByTermAmount(kind Kind, a, shamt Term, foldConst func(v *bvconst.Value, amt uint32) *bvconst.Value) (Term, error) {
	bitsize, err := t.expectSameBV(a, shamt)
	if err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(shamt) {
		amtVal := t.bvConstOf(shamt)
		if amt, lossless := amtVal.Uint64(); lossless {
			return t.BVConst(foldConst(t.bvConstOf(a), uint32(amt))), nil
		}
	}
	return t.internTerm(node{kind: kind, children: []Term{a, shamt}, typ: t.BVType(bitsize)}), nil
}

// BVShl is logical shift-left by a bit-vector-valued amount.
func (t *Table) BVShl(a, shamt Term) (Term, error) {
	return t.bvShiftByTermAmount(KindBVShl, a, shamt, bvconst.ShiftLeft0)
}

// BVLshr is logical shift-right by a bit-vector-valued amount.
func (t *Table) BVLshr(a, shamt Term) (Term, error) {
	return t.bvShiftByTermAmount(KindBVLshr, a, shamt, bvconst.ShiftRight0)
}

// BVAshr is arithmetic shift-right by a bit-vector-valued amount.
func (t *Table) BVAshr(a, shamt Term) (Term, error) {
	return t.bvShiftByTermAmount(KindBVAshr, a, shamt, bvconst.AShiftRight)
}

// BVExtract returns bits [low, high] of a.
func (t *Table) BVExtract(a Term, high, low uint32) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if low > high || high >= bitsize {
		return NullTerm, fmt.Errorf("terms: invalid extract [%d:%d] of width %d", high, low, bitsize)
	}
	if low == 0 && high == bitsize-1 {
		return a, nil
	}
	if t.IsConstant(a) {
		v, err := bvconst.Extract(t.bvConstOf(a), high, low)
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: KindBVExtract, children: []Term{a}, aux: int32(high), aux2: int32(low), typ: t.BVType(high - low + 1)}), nil
}

// BVConcat concatenates args high-to-low: args[0] becomes the
// most-significant bits of the result.
func (t *Table) BVConcat(args []Term) (Term, error) {
	if len(args) == 0 {
		return NullTerm, fmt.Errorf("terms: concat requires at least one argument")
	}
	total := uint32(0)
	allConst := true
	consts := make([]*bvconst.Value, len(args))
	for i, a := range args {
		w, err := t.expectBV(a)
		if err != nil {
			return NullTerm, err
		}
		total += w
		if t.IsConstant(a) {
			consts[i] = t.bvConstOf(a)
		} else {
			allConst = false
		}
	}
	if len(args) == 1 {
		return args[0], nil
	}
	if allConst {
		return t.BVConst(bvconst.Concat(consts...)), nil
	}
	return t.internTerm(node{kind: KindBVConcat, children: append([]Term(nil), args...), typ: t.BVType(total)}), nil
}

// BVRepeat concatenates n copies of a.
func (t *Table) BVRepeat(a Term, n uint32) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if n == 0 {
		return NullTerm, fmt.Errorf("terms: repeat count must be positive")
	}
	if n == 1 {
		return a, nil
	}
	if t.IsConstant(a) {
		v, err := bvconst.Repeat(t.bvConstOf(a), n)
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: KindBVRepeat, children: []Term{a}, aux: int32(n), typ: t.BVType(bitsize * n)}), nil
}

func (t *Table) bvExtend(kind Kind, a Term, n uint32, foldConst func(v *bvconst.Value, n uint32) *bvconst.Value) (Term, error) {
	bitsize, err := t.expectBV(a)
	if err != nil {
		return NullTerm, err
	}
	if n == 0 {
		return a, nil
	}
	if t.IsConstant(a) {
		return t.BVConst(foldConst(t.bvConstOf(a), n)), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a}, aux: int32(n), typ: t.BVType(bitsize + n)}), nil
}

// BVSignExtend extends a by n bits, replicating its sign bit.
func (t *Table) BVSignExtend(a Term, n uint32) (Term, error) {
	return t.bvExtend(KindBVSignExtend, a, n, bvconst.SignExtend)
}

// BVZeroExtend extends a by n zero bits.
func (t *Table) BVZeroExtend(a Term, n uint32) (Term, error) {
	return t.bvExtend(KindBVZeroExtend, a, n, bvconst.ZeroExtend)
}

func (t *Table) bvReduce(kind Kind, a Term, foldConst func(v *bvconst.Value) *bvconst.Value) (Term, error) {
	if _, err := t.expectBV(a); err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) {
		return t.BVConst(foldConst(t.bvConstOf(a))), nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a}, typ: t.BVType(1)}), nil
}

// BVRedAnd reduces a's bits with AND, returning a 1-bit result.
func (t *Table) BVRedAnd(a Term) (Term, error) { return t.bvReduce(KindBVRedAnd, a, bvconst.RedAnd) }

// BVRedOr reduces a's bits with OR, returning a 1-bit result.
func (t *Table) BVRedOr(a Term) (Term, error) { return t.bvReduce(KindBVRedOr, a, bvconst.RedOr) }

// BVComp returns a 1-bit result: 1 if a == b bitwise, 0 otherwise.
func (t *Table) BVComp(a, b Term) (Term, error) {
	if _, err := t.expectSameBV(a, b); err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(b) {
		v, err := bvconst.Comp(t.bvConstOf(a), t.bvConstOf(b))
		if err != nil {
			return NullTerm, err
		}
		return t.BVConst(v), nil
	}
	return t.internTerm(node{kind: KindBVComp, children: []Term{a, b}, typ: t.BVType(1)}), nil
}

func (t *Table) bvCompare(kind Kind, a, b Term, foldConst func(a, b *bvconst.Value) (int, error), pred func(cmp int) bool) (Term, error) {
	if _, err := t.expectSameBV(a, b); err != nil {
		return NullTerm, err
	}
	if t.IsConstant(a) && t.IsConstant(b) {
		cmp, err := foldConst(t.bvConstOf(a), t.bvConstOf(b))
		if err != nil {
			return NullTerm, err
		}
		if pred(cmp) {
			return t.trueTerm, nil
		}
		return t.falseTerm, nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a, b}, typ: t.boolTy}), nil
}

// BVGe returns a >= b, unsigned.
func (t *Table) BVGe(a, b Term) (Term, error) {
	return t.bvCompare(KindBVGe, a, b, bvconst.CompareUnsigned, func(c int) bool { return c >= 0 })
}

// BVGt returns a > b, unsigned.
func (t *Table) BVGt(a, b Term) (Term, error) {
	return t.bvCompare(KindBVGt, a, b, bvconst.CompareUnsigned, func(c int) bool { return c > 0 })
}

// BVLe returns a <= b, unsigned.
func (t *Table) BVLe(a, b Term) (Term, error) {
	return t.bvCompare(KindBVLe, a, b, bvconst.CompareUnsigned, func(c int) bool { return c <= 0 })
}

// BVLt returns a < b, unsigned.
func (t *Table) BVLt(a, b Term) (Term, error) {
	return t.bvCompare(KindBVLt, a, b, bvconst.CompareUnsigned, func(c int) bool { return c < 0 })
}

// BVSge returns a >= b, signed.
func (t *Table) BVSge(a, b Term) (Term, error) {
	return t.bvCompare(KindBVSge, a, b, bvconst.CompareSigned, func(c int) bool { return c >= 0 })
}

// BVSgt returns a > b, signed.
func (t *Table) BVSgt(a, b Term) (Term, error) {
	return t.bvCompare(KindBVSgt, a, b, bvconst.CompareSigned, func(c int) bool { return c > 0 })
}

// BVSle returns a <= b, signed.
func (t *Table) BVSle(a, b Term) (Term, error) {
	return t.bvCompare(KindBVSle, a, b, bvconst.CompareSigned, func(c int) bool { return c <= 0 })
}

// BVSlt returns a < b, signed.
func (t *Table) BVSlt(a, b Term) (Term, error) {
	return t.bvCompare(KindBVSlt, a, b, bvconst.CompareSigned, func(c int) bool { return c < 0 })
}

// BVFromSmallPoly materializes a term from a <=64-bit bit-vector polynomial
// accumulator buffer, consing a constant directly when the buffer reduced
// to one.
func (t *Table) BVFromSmallPoly(b *poly.BVSmallBuffer, toTerm func(poly.TermRef) Term) Term {
	bitsize := b.Bitsize
	if b.IsConstant() {
		return t.BVConst(bvconst.NewFromUint64(bitsize, b.ConstantValue()))
	}
	refs, coeffs := b.Terms()
	monomials := make([]Term, 0, len(refs)+1)
	if b.ConstantValue() != 0 {
		monomials = append(monomials, t.BVConst(bvconst.NewFromUint64(bitsize, b.ConstantValue())))
	}
	for i, ref := range refs {
		term := toTerm(ref)
		if coeffs[i] == 1 {
			monomials = append(monomials, term)
			continue
		}
		coeffTerm := t.BVConst(bvconst.NewFromUint64(bitsize, coeffs[i]))
		monomials = append(monomials, t.internTerm(node{kind: KindBVMul, children: []Term{coeffTerm, term}, typ: t.BVType(bitsize)}))
	}
	if len(monomials) == 1 {
		return monomials[0]
	}
	return t.internTerm(node{kind: KindBVAdd, children: monomials, typ: t.BVType(bitsize)})
}

// BVFromWidePoly materializes a term from a >64-bit bit-vector polynomial
// accumulator buffer.
func (t *Table) BVFromWidePoly(b *poly.BVWideBuffer, toTerm func(poly.TermRef) Term) Term {
	bitsize := b.Bitsize
	if b.IsConstant() {
		return t.BVConst(bvconst.NewFromBigInt(bitsize, b.ConstantValue()))
	}
	refs, coeffs := b.Terms()
	monomials := make([]Term, 0, len(refs)+1)
	if b.ConstantValue().Sign() != 0 {
		monomials = append(monomials, t.BVConst(bvconst.NewFromBigInt(bitsize, b.ConstantValue())))
	}
	for i, ref := range refs {
		term := toTerm(ref)
		if coeffs[i].Cmp(big.NewInt(1)) == 0 {
			monomials = append(monomials, term)
			continue
		}
		coeffTerm := t.BVConst(bvconst.NewFromBigInt(bitsize, coeffs[i]))
		monomials = append(monomials, t.internTerm(node{kind: KindBVMul, children: []Term{coeffTerm, term}, typ: t.BVType(bitsize)}))
	}
	if len(monomials) == 1 {
		return monomials[0]
	}
	return t.internTerm(node{kind: KindBVAdd, children: monomials, typ: t.BVType(bitsize)})
}

// BVFromLogicBuffer materializes a term from a bit-vector logic buffer,
// consing a constant directly when every bit is constant and a concat of
// single-bit slices otherwise.
func (t *Table) BVFromLogicBuffer(b *poly.LogicBuffer, toTerm func(poly.TermRef) Term) (Term, error) {
	if b.IsConstant() {
		bits := b.ConstantBits()
		acc := new(big.Int)
		for _, bit := range bits {
			acc.Lsh(acc, 1)
			if bit {
				acc.SetBit(acc, 0, 1)
			}
		}
		return t.BVConst(bvconst.NewFromBigInt(b.Bitsize, acc)), nil
	}
	parts := make([]Term, b.Bitsize)
	for i := uint32(0); i < b.Bitsize; i++ {
		bitIdx := b.Bitsize - 1 - i
		if b.IsSymbolic(bitIdx) {
			parts[i] = toTerm(b.TermBit(bitIdx))
			continue
		}
		v := uint64(0)
		if b.ConstBit(bitIdx) {
			v = 1
		}
		parts[i] = t.BVConst(bvconst.NewFromUint64(1, v))
	}
	return t.BVConcat(parts)
}
