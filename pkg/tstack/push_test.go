package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPushRationalInteger(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushRational("42", here))
	c := s.cellAt(s.top())
	require.Equal(TagRational, c.Tag)
	require.True(c.rational.IsInt())
}

func TestPushRationalFraction(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushRational("3/4", here))
	c := s.cellAt(s.top())
	require.Equal(int64(3), c.rational.Num().Int64())
	require.Equal(int64(4), c.rational.Denom().Int64())
}

func TestPushRationalRejectsDecimalPoint(t *testing.T) {
	s := newTestStack(t)
	err := s.PushRational("1.5", here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindRationalFormat, target.Kind)
}

func TestPushRationalZeroDenominator(t *testing.T) {
	s := newTestStack(t)
	err := s.PushRational("1/0", here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindDivideByZero, target.Kind)
}

func TestPushRationalMalformed(t *testing.T) {
	s := newTestStack(t)
	err := s.PushRational("abc", here)
	assert.Error(t, err)
}

func TestPushFloatParsesDecimal(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushFloat("12.375", here))
	c := s.cellAt(s.top())
	require.Equal(int64(99), c.rational.Num().Int64())
	require.Equal(int64(8), c.rational.Denom().Int64())
}

func TestPushFloatRejectsFractionSlash(t *testing.T) {
	s := newTestStack(t)
	err := s.PushFloat("1/2", here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindFloatFormat, target.Kind)
}

func TestPushBVBinRoundTrips(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushBVBin("1010", here))
	c := s.cellAt(s.top())
	require.Equal(TagBVSmall, c.Tag)
	require.Equal(uint32(4), c.bvSmall.Bitsize)
	require.Equal(uint64(0b1010), c.bvSmall.Value)
}

func TestPushBVBinMalformed(t *testing.T) {
	s := newTestStack(t)
	err := s.PushBVBin("102", here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindBVBinFormat, target.Kind)
}

func TestPushBVHexWide(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushBVHex("ff00ff00ff00ff00ff", here))
	c := s.cellAt(s.top())
	require.Equal(TagBVWide, c.Tag)
	require.Equal(uint32(4*19), c.bvWide.Bitsize)
}

func TestPushOpOpensFrame(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(MK_NOT, here))
	require.Equal(int32(MK_NOT), s.topOp)
}

func TestPushOpAssociativeRepushFolds(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(MK_ADD, here))
	s.PushInteger(1, here)
	top := s.top()
	require.NoError(s.PushOp(MK_ADD, here))
	// A re-push of the same associative opcode folds into the current
	// frame: no new OP cell appears, so the top of stack is unchanged.
	require.Equal(top, s.top())
	require.Equal(uint32(1), s.cellAt(s.frame).op.Multiplicity)
}

func TestPushOpInvalidOpcode(t *testing.T) {
	s := newTestStack(t)
	err := s.PushOp(999999, here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindInvalidOp, target.Kind)
}

func TestPushTermByNameUndefined(t *testing.T) {
	s := newTestStack(t)
	err := s.PushTermByName("nope", here)
	assert.Error(t, err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindUndefTerm, target.Kind)
}

func TestPushFreeTermNameRejectsRedefinition(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(DECLARE_VAR, here))
	require.NoError(s.PushFreeTermName("x", here))
	s.PushType(s.table.IntType(), here)
	require.NoError(s.Evaluate())

	err := s.PushFreeTermName("x", here)
	require.Error(err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindTermNameRedef, target.Kind)
}

func TestPushTrueAndFalse(t *testing.T) {
	s := newTestStack(t)
	s.PushTrue(here)
	c := s.cellAt(s.top())
	assert.Equal(t, s.table.True(), c.term)
}
