// Package tnames implements the global name registry that sits outside
// the term-stack core: a process-wide map from symbol name to term, type
// and macro handles. The core never owns this state itself, it is handed
// a *Registry at construction and only ever looks up or shadows bindings
// through its exported methods.
package tnames

import (
	"fmt"

	"github.com/smtcore/tstack/pkg/terms"
)

// Registry is a flat, single-threaded name table. It is not safe for
// concurrent use: like pkg/terms.Table, exactly one writer is assumed.
type Registry struct {
	terms  map[string]terms.Term
	types  map[string]terms.Type
	macros map[string]int32
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		terms:  make(map[string]terms.Term),
		types:  make(map[string]terms.Type),
		macros: make(map[string]int32),
	}
}

// Term looks up a bound or defined term by name.
func (r *Registry) Term(name string) (terms.Term, bool) {
	t, ok := r.terms[name]
	return t, ok
}

// Type looks up a bound or defined type by name.
func (r *Registry) Type(name string) (terms.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Macro looks up a defined macro by name, returning its identity.
func (r *Registry) Macro(name string) (int32, bool) {
	id, ok := r.macros[name]
	return id, ok
}

// BindTerm shadows name with t, returning whatever was bound to name
// beforehand so the caller (a BIND-opcode binding cell) can restore it on
// pop. This implements LIFO shadow/restore: nested BIND frames over the
// same name always unwind in the reverse order they were pushed, mirroring
// LocalScope.NestedScope's copy-and-shadow discipline.
func (r *Registry) BindTerm(name string, t terms.Term) (prior terms.Term, hadPrior bool) {
	prior, hadPrior = r.terms[name]
	r.terms[name] = t
	return prior, hadPrior
}

// UnbindTerm restores whatever BindTerm displaced, or removes the binding
// entirely if there was nothing there before.
func (r *Registry) UnbindTerm(name string, prior terms.Term, hadPrior bool) {
	if hadPrior {
		r.terms[name] = prior
		return
	}
	delete(r.terms, name)
}

// DefineTerm permanently binds name to t. Unlike BindTerm, a name already
// defined or bound is an error: top-level definitions (DECLARE_VAR,
// DEFINE_TERM) never shadow, they only ever introduce a name once.
func (r *Registry) DefineTerm(name string, t terms.Term) error {
	if _, ok := r.terms[name]; ok {
		return fmt.Errorf("tnames: term name %q is already defined", name)
	}
	r.terms[name] = t
	return nil
}

// DefineType permanently binds name to tau.
func (r *Registry) DefineType(name string, tau terms.Type) error {
	if _, ok := r.types[name]; ok {
		return fmt.Errorf("tnames: type name %q is already defined", name)
	}
	r.types[name] = tau
	return nil
}

// DefineMacro permanently binds name to the macro identity id.
func (r *Registry) DefineMacro(name string, id int32) error {
	if _, ok := r.macros[name]; ok {
		return fmt.Errorf("tnames: macro name %q is already defined", name)
	}
	r.macros[name] = id
	return nil
}
