package tstack

func registerBindingOps(t *OpTable) {
	t.Register(BIND, false, checkBind, evalBind)
	t.Register(LET, false, checkLet, evalLet)
	t.Register(DECLARE_VAR, false, checkDeclareVar, evalDeclareVar)
	t.Register(DECLARE_TYPE_VAR, false, checkDeclareTypeVar, evalDeclareTypeVar)
}

// checkBind verifies BIND(name, term).
func checkBind(s *Stack, f, n uint32) {
	checkArgCount(s, n, 2)
}

// evalBind shadows name with term in the registry and collapses into a
// term-binding cell that stays on the stack until the enclosing LET
// releases it, restoring whatever BindTerm displaced.
func evalBind(s *Stack, f, n uint32) {
	symbol := s.coerceSymbol(s.argCell(f, 0))
	term := s.coerceTerm(s.argCell(f, 1))
	prior, hadPrior := s.names.BindTerm(symbol, term)
	s.finishTermBinding(symbol, term, prior, hadPrior)
}

// checkLet verifies LET(binding..., body): at least the body must be
// present.
func checkLet(s *Stack, f, n uint32) {
	checkArgCountAtLeast(s, n, 1)
}

// evalLet reads the body cell, then collapses the whole frame (bindings
// included) into the body's term. Releasing the binding cells as part of
// that collapse is what restores every name BIND shadowed, in LIFO order.
func evalLet(s *Stack, f, n uint32) {
	seen := make(map[string]bool, n-1)
	for i := uint32(0); i+1 < n; i++ {
		c := s.argCell(f, i)
		if c.Tag != TagTermBinding {
			s.fail(KindInvalidFrame, c.Loc, "", "LET binding argument is not a BIND result")
		}
		if seen[c.termBind.Symbol] {
			s.fail(KindDuplicateVarName, c.Loc, c.termBind.Symbol, "duplicate bound name in LET")
		}
		seen[c.termBind.Symbol] = true
	}
	body := s.coerceTerm(s.argCell(f, n-1))
	s.finishTerm(body)
}

// checkDeclareVar verifies DECLARE_VAR(name, type).
func checkDeclareVar(s *Stack, f, n uint32) {
	checkArgCount(s, n, 2)
}

// evalDeclareVar defines name as a fresh uninterpreted constant of type.
// Unlike BIND this is a permanent definition, not a shadow: it leaves no
// result cell and there is no later un-define.
func evalDeclareVar(s *Stack, f, n uint32) {
	name := s.coerceSymbol(s.argCell(f, 0))
	tau := s.coerceType(s.argCell(f, 1))
	term := s.table.FreshUninterpreted(tau)
	_ = s.names.DefineTerm(name, term)
	s.finishEmpty()
}

// checkDeclareTypeVar verifies DECLARE_TYPE_VAR(name).
func checkDeclareTypeVar(s *Stack, f, n uint32) {
	checkArgCount(s, n, 1)
}

// evalDeclareTypeVar defines name as a fresh type variable, the type-level
// counterpart of evalDeclareVar.
func evalDeclareTypeVar(s *Stack, f, n uint32) {
	name := s.coerceSymbol(s.argCell(f, 0))
	tau := s.table.FreshTypeVariable(name)
	_ = s.names.DefineType(name, tau)
	s.finishEmpty()
}
