package poly

// BVSmallBuffer accumulates a linear combination of terms with bit-vector
// coefficients modulo 2^bitsize, for bitsize in 1..64. It backs MK_BV_ADD,
// MK_BV_SUB, MK_BV_NEG and MK_BV_MUL when not all operands are constant.
type BVSmallBuffer struct {
	Bitsize  uint32
	mask     uint64
	constant uint64
	terms    []TermRef
	coeffs   []uint64
}

// NewBVSmallBuffer constructs an empty buffer of the given width.
func NewBVSmallBuffer(bitsize uint32) *BVSmallBuffer {
	b := &BVSmallBuffer{}
	b.Resize(bitsize)
	return b
}

// Resize clears the buffer to zero and sets its width, so it can be reused
// from the pool for a different bitsize.
func (b *BVSmallBuffer) Resize(bitsize uint32) {
	b.Bitsize = bitsize
	if bitsize == 64 {
		b.mask = ^uint64(0)
	} else {
		b.mask = (uint64(1) << bitsize) - 1
	}
	b.constant = 0
	b.terms = b.terms[:0]
	b.coeffs = b.coeffs[:0]
}

func (b *BVSmallBuffer) norm(v uint64) uint64 {
	return v & b.mask
}

// AddConstant adds a constant bit-vector value into the buffer.
func (b *BVSmallBuffer) AddConstant(v uint64) {
	b.constant = b.norm(b.constant + v)
}

// AddTerm adds coeff*term into the buffer, merging with any existing
// monomial over the same term.
func (b *BVSmallBuffer) AddTerm(coeff uint64, term TermRef) {
	coeff = b.norm(coeff)
	for i, t := range b.terms {
		if t == term {
			b.coeffs[i] = b.norm(b.coeffs[i] + coeff)
			return
		}
	}
	b.terms = append(b.terms, term)
	b.coeffs = append(b.coeffs, coeff)
}

// Negate two's-complement negates every coefficient and the constant.
func (b *BVSmallBuffer) Negate() {
	b.constant = b.norm(-b.constant)
	for i := range b.coeffs {
		b.coeffs[i] = b.norm(-b.coeffs[i])
	}
}

// ScaleBy multiplies every coefficient and the constant by v.
func (b *BVSmallBuffer) ScaleBy(v uint64) {
	b.constant = b.norm(b.constant * v)
	for i := range b.coeffs {
		b.coeffs[i] = b.norm(b.coeffs[i] * v)
	}
}

// IsConstant reports whether every monomial coefficient is zero.
func (b *BVSmallBuffer) IsConstant() bool {
	for _, c := range b.coeffs {
		if c != 0 {
			return false
		}
	}
	return true
}

// ConstantValue returns the constant part. Only meaningful when
// IsConstant() holds.
func (b *BVSmallBuffer) ConstantValue() uint64 {
	return b.constant
}

// Terms returns the non-zero monomials as parallel term/coefficient
// slices. The caller must not mutate the returned slices.
func (b *BVSmallBuffer) Terms() ([]TermRef, []uint64) {
	terms := make([]TermRef, 0, len(b.terms))
	coeffs := make([]uint64, 0, len(b.coeffs))
	for i, c := range b.coeffs {
		if c != 0 {
			terms = append(terms, b.terms[i])
			coeffs = append(coeffs, c)
		}
	}
	return terms, coeffs
}
