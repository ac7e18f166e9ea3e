package tstack

func registerDefinitionOps(t *OpTable) {
	t.Register(DEFINE_TYPE, false, checkDefineType, evalDefineType)
	t.Register(DEFINE_TERM, false, checkDefineTerm, evalDefineTerm)
}

// checkDefineType verifies DEFINE_TYPE(name [, type]).
func checkDefineType(s *Stack, f, n uint32) {
	checkArgCountRange(s, n, 1, 2)
}

// evalDefineType binds name to a fresh type variable, or to an explicitly
// given type, and leaves no result cell. The name's freedom was already
// verified at push time by PushFreeTypeName.
func evalDefineType(s *Stack, f, n uint32) {
	name := s.coerceSymbol(s.argCell(f, 0))
	var tau = s.table.FreshTypeVariable(name)
	if n == 2 {
		tau = s.coerceType(s.argCell(f, 1))
	}
	_ = s.names.DefineType(name, tau)
	s.finishEmpty()
}

// checkDefineTerm verifies DEFINE_TERM(name, type [, term]).
func checkDefineTerm(s *Stack, f, n uint32) {
	checkArgCountRange(s, n, 2, 3)
}

// evalDefineTerm binds name to a fresh uninterpreted constant of the
// declared type, or to an explicitly given term after checking it is a
// subtype of the declared type (TYPE_ERROR_IN_DEFINITION otherwise).
func evalDefineTerm(s *Stack, f, n uint32) {
	name := s.coerceSymbol(s.argCell(f, 0))
	tau := s.coerceType(s.argCell(f, 1))
	term := s.table.FreshUninterpreted(tau)
	if n == 3 {
		bodyCell := s.argCell(f, 2)
		term = s.coerceTerm(bodyCell)
		if !s.table.IsSubtype(s.table.TypeOf(term), tau) {
			s.fail(KindTypeErrorInDefinition, bodyCell.Loc, name, "term's type is not a subtype of the declared type")
		}
	}
	_ = s.names.DefineTerm(name, term)
	s.finishEmpty()
}
