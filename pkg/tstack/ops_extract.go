package tstack

func registerExtractOps(t *OpTable) {
	t.Register(BUILD_TERM, false, checkArity1, evalBuildTerm)
	t.Register(BUILD_TYPE, false, checkArity1, evalBuildType)
}

// evalBuildTerm moves its single argument into the pending term-result
// slot and leaves the stack empty, per the command-boundary convention:
// nothing replaces this frame.
func evalBuildTerm(s *Stack, f, n uint32) {
	t := s.coerceTerm(s.argCell(f, 0))
	s.setTermResult(t)
	s.finishEmpty()
}

// evalBuildType is evalBuildTerm's type-level counterpart.
func evalBuildType(s *Stack, f, n uint32) {
	tau := s.coerceType(s.argCell(f, 0))
	s.setTypeResult(tau)
	s.finishEmpty()
}
