package poly

import "math/big"

// BVWideBuffer accumulates a linear combination of terms with bit-vector
// coefficients modulo 2^bitsize, for bitsize > 64. It is the wide-carrier
// counterpart of BVSmallBuffer (kept as a separate type so that
// the common <=64-bit case never pays for big.Int arithmetic).
type BVWideBuffer struct {
	Bitsize  uint32
	mask     *big.Int
	constant *big.Int
	terms    []TermRef
	coeffs   []*big.Int
}

// NewBVWideBuffer constructs an empty buffer of the given width.
func NewBVWideBuffer(bitsize uint32) *BVWideBuffer {
	b := &BVWideBuffer{constant: new(big.Int), mask: new(big.Int)}
	b.Resize(bitsize)
	return b
}

// Resize clears the buffer to zero and sets its width.
func (b *BVWideBuffer) Resize(bitsize uint32) {
	b.Bitsize = bitsize
	b.mask.Lsh(big.NewInt(1), uint(bitsize))
	b.mask.Sub(b.mask, big.NewInt(1))
	b.constant.SetInt64(0)
	b.terms = b.terms[:0]
	b.coeffs = b.coeffs[:0]
}

func (b *BVWideBuffer) norm(v *big.Int) *big.Int {
	return new(big.Int).And(v, b.mask)
}

// AddConstant adds a constant bit-vector value into the buffer.
func (b *BVWideBuffer) AddConstant(v *big.Int) {
	b.constant = b.norm(new(big.Int).Add(b.constant, v))
}

// AddTerm adds coeff*term into the buffer, merging with any existing
// monomial over the same term.
func (b *BVWideBuffer) AddTerm(coeff *big.Int, term TermRef) {
	coeff = b.norm(coeff)
	for i, t := range b.terms {
		if t == term {
			b.coeffs[i] = b.norm(new(big.Int).Add(b.coeffs[i], coeff))
			return
		}
	}
	b.terms = append(b.terms, term)
	b.coeffs = append(b.coeffs, coeff)
}

// Negate two's-complement negates every coefficient and the constant.
func (b *BVWideBuffer) Negate() {
	b.constant = b.norm(new(big.Int).Neg(b.constant))
	for i, c := range b.coeffs {
		b.coeffs[i] = b.norm(new(big.Int).Neg(c))
	}
}

// ScaleBy multiplies every coefficient and the constant by v.
func (b *BVWideBuffer) ScaleBy(v *big.Int) {
	b.constant = b.norm(new(big.Int).Mul(b.constant, v))
	for i, c := range b.coeffs {
		b.coeffs[i] = b.norm(new(big.Int).Mul(c, v))
	}
}

// IsConstant reports whether every monomial coefficient is zero.
func (b *BVWideBuffer) IsConstant() bool {
	for _, c := range b.coeffs {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}

// ConstantValue returns the constant part. Only meaningful when
// IsConstant() holds.
func (b *BVWideBuffer) ConstantValue() *big.Int {
	return b.constant
}

// Terms returns the non-zero monomials as parallel term/coefficient
// slices. The caller must not mutate the returned slices.
func (b *BVWideBuffer) Terms() ([]TermRef, []*big.Int) {
	terms := make([]TermRef, 0, len(b.terms))
	coeffs := make([]*big.Int, 0, len(b.coeffs))
	for i, c := range b.coeffs {
		if c.Sign() != 0 {
			terms = append(terms, b.terms[i])
			coeffs = append(coeffs, c)
		}
	}
	return terms, coeffs
}
