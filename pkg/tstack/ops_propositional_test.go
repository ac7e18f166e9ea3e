package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smtcore/tstack/pkg/terms"
)

func TestEvalMkNotDoubleNegationFolds(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_NOT, here))
	require.NoError(s.PushOp(MK_NOT, here))
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, x, s.ResultTerm())
}

func TestEvalMkOrDropsFalseAndDedupes(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_OR, here))
	s.PushFalse(here)
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, x, s.ResultTerm())
}

func TestEvalMkAndShortCircuitsOnFalse(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_AND, here))
	s.PushTerm(x, here)
	s.PushFalse(here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.False(), s.ResultTerm())
}

func TestEvalMkXorTwoTrueCancels(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_XOR, here))
	s.PushTrue(here)
	s.PushTrue(here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.False(), s.ResultTerm())
}

func TestEvalMkIffSameTermIsTrue(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_IFF, here))
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.True(), s.ResultTerm())
}

func TestEvalMkImpliesFalseAntecedentIsTrue(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_IMPLIES, here))
	s.PushFalse(here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.True(), s.ResultTerm())
}

func TestEvalMkIteConstantConditionSelectsBranch(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	y := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_ITE, here))
	s.PushTrue(here)
	s.PushTerm(x, here)
	s.PushTerm(y, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, x, s.ResultTerm())
}

func TestEvalMkEqSameTermIsTrue(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_EQ, here))
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.True(), s.ResultTerm())
}

func TestEvalMkDiseqSameTermIsFalse(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_DISEQ, here))
	s.PushTerm(x, here)
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.False(), s.ResultTerm())
}

func TestEvalMkAndReentryFoldsIntoSingleNaryFrame(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.BoolType())
	y := s.table.FreshUninterpreted(s.table.BoolType())
	z := s.table.FreshUninterpreted(s.table.BoolType())
	want, err := s.table.And([]terms.Term{x, y, z})
	require.NoError(err)

	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_AND, here))
	require.NoError(s.PushOp(MK_AND, here)) // re-entry while MK_AND is open folds, opens no new frame
	s.PushTerm(x, here)
	s.PushTerm(y, here)
	require.NoError(s.Evaluate()) // closes the fold: decrements multiplicity, no collapse yet
	assert.Equal(t, int32(MK_AND), s.topOp)
	s.PushTerm(z, here)
	require.NoError(s.Evaluate()) // multiplicity exhausted: collapses over x, y and z together
	require.NoError(s.Evaluate()) // BUILD_TERM
	assert.Equal(t, want, s.ResultTerm())
}

func TestEvalMkDistinctSingleArgumentIsTrivial(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	require.NoError(s.PushOp(MK_DISTINCT, here))
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	require.NoError(s.Evaluate())
	assert.Equal(t, s.table.True(), s.ResultTerm())
}
