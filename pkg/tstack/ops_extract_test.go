package tstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalBuildTermOnBareTermEmptiesStack(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	x := s.table.FreshUninterpreted(s.table.IntType())
	require.NoError(s.PushOp(BUILD_TERM, here))
	s.PushTerm(x, here)
	require.NoError(s.Evaluate())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, x, s.ResultTerm())
}

func TestEvalBuildTypeOnBareTypeEmptiesStack(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TYPE, here))
	s.PushType(s.table.RealType(), here)
	require.NoError(s.Evaluate())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, s.table.RealType(), s.ResultType())
}

func TestEvalBuildTermOnTypeCellFailsCoercion(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	s.PushType(s.table.BoolType(), here)
	err := s.Evaluate()
	require.Error(err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindInvalidFrame, target.Kind)
}

func TestEvalBuildTermWrongArityFails(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)
	require.NoError(s.PushOp(BUILD_TERM, here))
	s.PushTrue(here)
	s.PushFalse(here)
	err := s.Evaluate()
	require.Error(err)
	var target *Error
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, KindInvalidFrame, target.Kind)
}
