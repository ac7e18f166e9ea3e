package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatBufferConstantFold(t *testing.T) {
	b := NewRatBuffer()
	b.AddConstant(big.NewRat(3, 1))
	b.AddConstant(big.NewRat(-1, 2))
	assert.True(t, b.IsConstant())
	assert.Equal(t, big.NewRat(5, 2), b.ConstantValue())
}

func TestRatBufferMergesTerms(t *testing.T) {
	b := NewRatBuffer()
	b.AddTerm(big.NewRat(1, 1), TermRef(7))
	b.AddTerm(big.NewRat(2, 1), TermRef(7))
	terms, coeffs := b.Terms()
	assert.Len(t, terms, 1)
	assert.Equal(t, big.NewRat(3, 1), coeffs[0])
	assert.False(t, b.IsConstant())
}

func TestRatBufferNegate(t *testing.T) {
	b := NewRatBuffer()
	b.AddConstant(big.NewRat(5, 1))
	b.AddTerm(big.NewRat(2, 1), TermRef(1))
	b.Negate()
	assert.Equal(t, big.NewRat(-5, 1), b.ConstantValue())
	_, coeffs := b.Terms()
	assert.Equal(t, big.NewRat(-2, 1), coeffs[0])
}

func TestBVSmallBufferWraps(t *testing.T) {
	b := NewBVSmallBuffer(4)
	b.AddConstant(15)
	b.AddConstant(2)
	assert.True(t, b.IsConstant())
	assert.Equal(t, uint64(1), b.ConstantValue())
}

func TestBVSmallBufferResizeReuses(t *testing.T) {
	b := NewBVSmallBuffer(4)
	b.AddTerm(1, TermRef(1))
	b.Resize(8)
	assert.Equal(t, uint32(8), b.Bitsize)
	assert.True(t, b.IsConstant())
}

func TestBVWideBufferWraps(t *testing.T) {
	b := NewBVWideBuffer(70)
	two70 := new(big.Int).Lsh(big.NewInt(1), 70)
	b.AddConstant(two70)
	b.AddConstant(big.NewInt(5))
	assert.True(t, b.IsConstant())
	assert.Equal(t, big.NewInt(5), b.ConstantValue())
}

func TestLogicBufferConstantRoundTrip(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, false, true, false})
	assert.True(t, b.IsConstant())
	assert.Equal(t, []bool{true, false, true, false}, b.ConstantBits())
}

func TestLogicBufferShiftLeft(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{false, false, false, true}) // 0001
	b.ShiftLeft(1, false)
	assert.Equal(t, []bool{false, false, true, false}, b.ConstantBits()) // 0010
}

func TestLogicBufferShiftRight(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, false, false, false}) // 1000
	b.ShiftRight(1, false)
	assert.Equal(t, []bool{false, true, false, false}, b.ConstantBits()) // 0100
}

func TestLogicBufferShiftOverWidth(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, true, true, true})
	b.ShiftLeft(10, false)
	assert.True(t, b.IsConstant())
	for _, bit := range b.ConstantBits() {
		assert.False(t, bit)
	}
}

func TestLogicBufferRotateLeftIdentityAtWidth(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, false, true, true})
	before := b.ConstantBits()
	b.RotateLeft(4)
	assert.Equal(t, before, b.ConstantBits())
}

func TestLogicBufferRotateLeft(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, false, false, false}) // 1000
	b.RotateLeft(1)
	assert.Equal(t, []bool{false, false, false, true}, b.ConstantBits()) // 0001
}

func TestLogicBufferExtractIdentity(t *testing.T) {
	b := NewLogicBuffer(4)
	b.FromConstantBits([]bool{true, false, true, false})
	e := b.Extract(3, 0)
	assert.Equal(t, b.ConstantBits(), e.ConstantBits())
}

func TestLogicBufferConcat(t *testing.T) {
	a := NewLogicBuffer(2)
	a.FromConstantBits([]bool{true, true})
	c := NewLogicBuffer(2)
	c.FromConstantBits([]bool{false, false})
	r := Concat(a, c)
	assert.Equal(t, []bool{true, true, false, false}, r.ConstantBits())
}

func TestLogicBufferSymbolicBitPreserved(t *testing.T) {
	b := NewLogicBuffer(4)
	b.SetTermBit(0, TermRef(42))
	assert.True(t, b.IsSymbolic(0))
	assert.False(t, b.IsConstant())
	assert.Equal(t, TermRef(42), b.TermBit(0))
}
