// Package poly implements the accumulator buffers used to fold associative
// arithmetic and bit-vector operators without building an intermediate
// applicative term for every partial sum or product: a rational polynomial
// buffer, a small (<=64-bit) and a wide (>64-bit) bit-vector polynomial
// buffer, and a bit-vector logic buffer (an array of symbolic bits). All
// four are the accumulator-buffer arithmetic that sits outside the
// operator-evaluation core proper.
package poly

import (
	"math/big"
)

// TermRef is a lightweight stand-in for a term-table handle. It is defined
// locally (rather than importing the term table package) purely to avoid a
// package cycle: the term table needs to accept buffers as constructor
// arguments, and the buffers need to name the terms they carry as
// non-constant monomials. Callers convert to/from their own term handle
// type with a plain numeric cast.
type TermRef int32

// RatBuffer accumulates a linear combination of terms with rational
// coefficients: constant + sum_i coeff_i * term_i. It backs MK_ADD,
// MK_SUB, MK_NEG and MK_MUL when not all operands reduce to a single
// constant.
type RatBuffer struct {
	constant *big.Rat
	terms    []TermRef
	coeffs   []*big.Rat
}

// NewRatBuffer constructs an empty (zero-valued) buffer.
func NewRatBuffer() *RatBuffer {
	return &RatBuffer{constant: new(big.Rat)}
}

// Reset clears the buffer back to zero so it can be reused from the pool.
func (b *RatBuffer) Reset() {
	b.constant.SetInt64(0)
	b.terms = b.terms[:0]
	b.coeffs = b.coeffs[:0]
}

// AddConstant adds a rational constant into the buffer.
func (b *RatBuffer) AddConstant(v *big.Rat) {
	b.constant.Add(b.constant, v)
}

// AddTerm adds coeff*term into the buffer, merging with any existing
// monomial over the same term.
func (b *RatBuffer) AddTerm(coeff *big.Rat, term TermRef) {
	for i, t := range b.terms {
		if t == term {
			b.coeffs[i].Add(b.coeffs[i], coeff)
			return
		}
	}
	b.terms = append(b.terms, term)
	b.coeffs = append(b.coeffs, new(big.Rat).Set(coeff))
}

// Negate flips the sign of every coefficient and the constant term.
func (b *RatBuffer) Negate() {
	b.constant.Neg(b.constant)
	for _, c := range b.coeffs {
		c.Neg(c)
	}
}

// ScaleBy multiplies every coefficient and the constant by v. Used when
// folding MK_MUL against a buffer that is not fully constant: one operand
// must itself be constant, otherwise the product is non-linear and the
// caller must materialize a term instead (see evalMkMul in
// pkg/tstack/ops_arith.go, which raises ARITH_ERROR).
func (b *RatBuffer) ScaleBy(v *big.Rat) {
	b.constant.Mul(b.constant, v)
	for _, c := range b.coeffs {
		c.Mul(c, v)
	}
}

// IsConstant reports whether every monomial has cancelled out, leaving a
// pure constant.
func (b *RatBuffer) IsConstant() bool {
	for _, c := range b.coeffs {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// ConstantValue returns the constant part. Only meaningful when
// IsConstant() holds.
func (b *RatBuffer) ConstantValue() *big.Rat {
	return b.constant
}

// Terms returns the non-zero monomials as parallel term/coefficient
// slices. The caller must not mutate the returned slices.
func (b *RatBuffer) Terms() ([]TermRef, []*big.Rat) {
	terms := make([]TermRef, 0, len(b.terms))
	coeffs := make([]*big.Rat, 0, len(b.coeffs))
	for i, c := range b.coeffs {
		if c.Sign() != 0 {
			terms = append(terms, b.terms[i])
			coeffs = append(coeffs, c)
		}
	}
	return terms, coeffs
}
