package terms

import (
	"fmt"
	"math/big"

	"github.com/smtcore/tstack/pkg/terms/poly"
)

// RationalConst returns the term denoting the rational v. Integer-valued
// rationals are typed Int, all others Real, matching the numeric-tower
// convention the add/sub/mul family relies on for subtype checks.
func (t *Table) RationalConst(v *big.Rat) Term {
	tau := t.realTy
	if v.IsInt() {
		tau = t.intTy
	}
	return t.internTerm(node{kind: KindRational, rat: new(big.Rat).Set(v), typ: tau})
}

// RatFromPoly materializes a term from a rational polynomial accumulator
// buffer, consing a constant directly when the
// buffer reduced to one, and a sum-of-products node otherwise. toTerm
// converts the buffer's abstract poly.TermRef monomials back into real
// Term handles.
func (t *Table) RatFromPoly(b *poly.RatBuffer, toTerm func(poly.TermRef) Term) Term {
	if b.IsConstant() {
		return t.RationalConst(b.ConstantValue())
	}
	refs, coeffs := b.Terms()
	monomials := make([]Term, 0, len(refs)+1)
	if b.ConstantValue().Sign() != 0 {
		monomials = append(monomials, t.RationalConst(b.ConstantValue()))
	}
	for i, ref := range refs {
		term := toTerm(ref)
		if coeffs[i].Cmp(big.NewRat(1, 1)) == 0 {
			monomials = append(monomials, term)
			continue
		}
		coeffTerm := t.RationalConst(coeffs[i])
		monomials = append(monomials, t.internTerm(node{kind: KindMul, children: []Term{coeffTerm, term}, typ: t.arithResultType(coeffTerm, term)}))
	}
	if len(monomials) == 1 {
		return monomials[0]
	}
	return t.internTerm(node{kind: KindAdd, children: monomials, typ: t.arithJoin(monomials)})
}

func (t *Table) arithResultType(args ...Term) Type {
	return t.arithJoin(args)
}

func (t *Table) arithJoin(args []Term) Type {
	result := t.intTy
	for _, a := range args {
		if t.TypeOf(a) == t.realTy {
			result = t.realTy
		}
	}
	return result
}

func (t *Table) expectArith(a Term) error {
	tau := t.TypeOf(a)
	if tau != t.intTy && tau != t.realTy {
		return fmt.Errorf("terms: expected an arithmetic term, got type %v", tau)
	}
	return nil
}

// Add returns the sum of args (n >= 1).
func (t *Table) Add(args []Term) (Term, error) {
	for _, a := range args {
		if err := t.expectArith(a); err != nil {
			return NullTerm, err
		}
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return t.internTerm(node{kind: KindAdd, children: append([]Term(nil), args...), typ: t.arithJoin(args)}), nil
}

// Sub returns a non-associative left fold: args[0] - args[1] - ... -
// args[n-1], n >= 2. Unlike Add, Sub is not associative.
func (t *Table) Sub(args []Term) (Term, error) {
	if len(args) < 2 {
		return NullTerm, fmt.Errorf("terms: sub requires at least two arguments")
	}
	for _, a := range args {
		if err := t.expectArith(a); err != nil {
			return NullTerm, err
		}
	}
	return t.internTerm(node{kind: KindSub, children: append([]Term(nil), args...), typ: t.arithJoin(args)}), nil
}

// Neg returns -a.
func (t *Table) Neg(a Term) (Term, error) {
	if err := t.expectArith(a); err != nil {
		return NullTerm, err
	}
	if n := t.termNodes[a]; n.kind == KindNeg {
		return n.children[0], nil
	}
	return t.internTerm(node{kind: KindNeg, children: []Term{a}, typ: t.TypeOf(a)}), nil
}

// Mul returns the product of args (n >= 1).
func (t *Table) Mul(args []Term) (Term, error) {
	for _, a := range args {
		if err := t.expectArith(a); err != nil {
			return NullTerm, err
		}
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return t.internTerm(node{kind: KindMul, children: append([]Term(nil), args...), typ: t.arithJoin(args)}), nil
}

// Division returns a / b (real division; b need not be constant at the
// term-building layer, though callers typically reject a non-constant
// divisor before this is ever called).
func (t *Table) Division(a, b Term) (Term, error) {
	if err := t.expectArith(a); err != nil {
		return NullTerm, err
	}
	if err := t.expectArith(b); err != nil {
		return NullTerm, err
	}
	return t.internTerm(node{kind: KindDivision, children: []Term{a, b}, typ: t.realTy}), nil
}

// Pow returns a raised to the non-negative integer power k.
func (t *Table) Pow(a Term, k int32) (Term, error) {
	if err := t.expectArith(a); err != nil {
		return NullTerm, err
	}
	if k < 0 {
		return NullTerm, fmt.Errorf("terms: negative exponent")
	}
	return t.internTerm(node{kind: KindPow, children: []Term{a}, aux: k, typ: t.TypeOf(a)}), nil
}

func (t *Table) arithCompare(kind Kind, a, b Term) (Term, error) {
	if err := t.expectArith(a); err != nil {
		return NullTerm, err
	}
	if err := t.expectArith(b); err != nil {
		return NullTerm, err
	}
	if na, nb := t.termNodes[a], t.termNodes[b]; na.kind == KindRational && nb.kind == KindRational {
		cmp := na.rat.Cmp(nb.rat)
		holds := (kind == KindGe && cmp >= 0) || (kind == KindGt && cmp > 0) ||
			(kind == KindLe && cmp <= 0) || (kind == KindLt && cmp < 0)
		if holds {
			return t.trueTerm, nil
		}
		return t.falseTerm, nil
	}
	return t.internTerm(node{kind: kind, children: []Term{a, b}, typ: t.boolTy}), nil
}

// Ge returns a >= b.
func (t *Table) Ge(a, b Term) (Term, error) { return t.arithCompare(KindGe, a, b) }

// Gt returns a > b.
func (t *Table) Gt(a, b Term) (Term, error) { return t.arithCompare(KindGt, a, b) }

// Le returns a <= b.
func (t *Table) Le(a, b Term) (Term, error) { return t.arithCompare(KindLe, a, b) }

// Lt returns a < b.
func (t *Table) Lt(a, b Term) (Term, error) { return t.arithCompare(KindLt, a, b) }
