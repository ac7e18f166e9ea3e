package tnames

import (
	"testing"

	"github.com/smtcore/tstack/pkg/terms"
	"github.com/stretchr/testify/assert"
)

func TestDefineTermThenLookup(t *testing.T) {
	r := NewRegistry()
	err := r.DefineTerm("x", terms.Term(5))
	assert.NoError(t, err)
	v, ok := r.Term("x")
	assert.True(t, ok)
	assert.Equal(t, terms.Term(5), v)
}

func TestDefineTermRedefinitionIsError(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.DefineTerm("x", terms.Term(1)))
	err := r.DefineTerm("x", terms.Term(2))
	assert.Error(t, err)
}

func TestDefineTypeRedefinitionIsError(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.DefineType("t", terms.Type(1)))
	err := r.DefineType("t", terms.Type(2))
	assert.Error(t, err)
}

func TestDefineMacroRedefinitionIsError(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.DefineMacro("m", 1))
	err := r.DefineMacro("m", 2)
	assert.Error(t, err)
}

func TestBindTermShadowsAndRestores(t *testing.T) {
	r := NewRegistry()
	assert.NoError(t, r.DefineTerm("x", terms.Term(1)))

	prior, hadPrior := r.BindTerm("x", terms.Term(2))
	assert.True(t, hadPrior)
	assert.Equal(t, terms.Term(1), prior)

	v, _ := r.Term("x")
	assert.Equal(t, terms.Term(2), v)

	r.UnbindTerm("x", prior, hadPrior)
	v, _ = r.Term("x")
	assert.Equal(t, terms.Term(1), v)
}

func TestBindTermNestedLIFOOrder(t *testing.T) {
	r := NewRegistry()

	p1, had1 := r.BindTerm("y", terms.Term(10))
	assert.False(t, had1)

	p2, had2 := r.BindTerm("y", terms.Term(20))
	assert.True(t, had2)
	assert.Equal(t, terms.Term(10), p2)

	v, _ := r.Term("y")
	assert.Equal(t, terms.Term(20), v)

	r.UnbindTerm("y", p2, had2)
	v, _ = r.Term("y")
	assert.Equal(t, terms.Term(10), v)

	r.UnbindTerm("y", p1, had1)
	_, ok := r.Term("y")
	assert.False(t, ok)
}

func TestMacroLookupMissing(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Macro("nope")
	assert.False(t, ok)
}
