package tstack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStackIsEmpty(t *testing.T) {
	s := newTestStack(t)
	assert.True(t, s.IsEmpty())
}

func TestPushMakesStackNonEmpty(t *testing.T) {
	s := newTestStack(t)
	s.PushInteger(1, here)
	assert.False(t, s.IsEmpty())
}

func TestResetReturnsToEmpty(t *testing.T) {
	s := newTestStack(t)
	s.PushInteger(1, here)
	s.PushInteger(2, here)
	s.Reset()
	assert.True(t, s.IsEmpty())
}

func TestResetRestoresBindingsShadowedByAnOpenBind(t *testing.T) {
	s := newTestStack(t)
	require := assert.New(t)

	require.NoError(s.PushOp(DECLARE_VAR, here))
	err := s.PushFreeTermName("x", here)
	require.NoError(err)
	s.PushType(s.table.IntType(), here)
	require.NoError(s.Evaluate())
	original, ok := s.names.Term("x")
	require.True(ok)

	// Shadow x with a BIND, then reset mid-frame instead of letting the
	// enclosing LET ever close: Reset's top-down release still has to
	// unwind the shadow.
	err = s.PushFreeTermName("x", here)
	require.Error(err) // x is already defined by DECLARE_VAR
	require.NoError(s.PushOp(BIND, here))
	s.PushSymbol("x", here)
	s.PushTerm(s.table.RationalConst(big.NewRat(1, 1)), here)
	require.NoError(s.Evaluate())

	s.Reset()
	require.True(s.IsEmpty())
	restored, ok := s.names.Term("x")
	require.True(ok)
	require.Equal(original, restored)
}
