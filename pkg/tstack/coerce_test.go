package tstack

import (
	"math/big"
	"testing"

	"github.com/smtcore/tstack/pkg/terms/bvconst"
	"github.com/stretchr/testify/assert"
)

func TestCoerceTermFromRationalCell(t *testing.T) {
	s := newTestStack(t)
	c := rationalCell(big.NewRat(3, 1), here)
	term := s.coerceTerm(&c)
	assert.Equal(t, s.table.IntType(), s.table.TypeOf(term))
}

func TestCoerceTermFromBVSmallCell(t *testing.T) {
	s := newTestStack(t)
	c := bvSmallCell(4, 0b1010, here)
	term := s.coerceTerm(&c)
	_, isBV := s.table.IsBitVector(s.table.TypeOf(term))
	assert.True(t, isBV)
}

func TestCoerceTermWrongTagFails(t *testing.T) {
	s := newTestStack(t)
	c := symbolCell("x", here)
	err := s.runProtected(func() {
		s.coerceTerm(&c)
	})
	assert.Error(t, err)
}

func TestCoerceTypeWrongTagFails(t *testing.T) {
	s := newTestStack(t)
	c := symbolCell("x", here)
	err := s.runProtected(func() {
		s.coerceType(&c)
	})
	assert.Error(t, err)
}

func TestCoerceInt32RejectsNonIntegerRational(t *testing.T) {
	s := newTestStack(t)
	c := rationalCell(big.NewRat(1, 2), here)
	err := s.runProtected(func() {
		s.coerceInt32(&c)
	})
	assert.Error(t, err)
}

func TestCoerceInt32RejectsOverflow(t *testing.T) {
	s := newTestStack(t)
	huge := new(big.Int).Lsh(big.NewInt(1), 40)
	c := rationalCell(new(big.Rat).SetInt(huge), here)
	err := s.runProtected(func() {
		s.coerceInt32(&c)
	})
	assert.Error(t, err)
}

func TestCoerceUint32RejectsNegative(t *testing.T) {
	s := newTestStack(t)
	c := rationalCell(big.NewRat(-1, 1), here)
	err := s.runProtected(func() {
		s.coerceUint32(&c)
	})
	assert.Error(t, err)
}

func TestCoercePositiveBitsizeRejectsZero(t *testing.T) {
	s := newTestStack(t)
	c := rationalCell(big.NewRat(0, 1), here)
	err := s.runProtected(func() {
		s.coercePositiveBitsize(&c)
	})
	assert.Error(t, err)
}

func TestCoerceBVConstFromBVWideCell(t *testing.T) {
	s := newTestStack(t)
	v := bvconst.NewFromUint64(128, 7)
	c := bvWideCell(v, here)
	got := s.coerceBVConst(&c)
	assert.Equal(t, v, got)
}

func TestCoerceMacroWrongTagFails(t *testing.T) {
	s := newTestStack(t)
	c := symbolCell("x", here)
	err := s.runProtected(func() {
		s.coerceMacro(&c)
	})
	assert.Error(t, err)
}
