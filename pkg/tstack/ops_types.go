package tstack

import "github.com/smtcore/tstack/pkg/terms"

func registerTypeOps(t *OpTable) {
	t.Register(MK_BV_TYPE, false, checkArity1, evalMkBVType)
	t.Register(MK_SCALAR_TYPE, false, checkAtLeast1, evalMkScalarType)
	t.Register(MK_TUPLE_TYPE, false, checkAtLeast1, evalMkTupleType)
	t.Register(MK_FUN_TYPE, false, checkAtLeast2, evalMkFunType)
	t.Register(MK_APP_TYPE, false, checkAtLeast1, evalMkAppType)
}

func checkArity1(s *Stack, f, n uint32)  { checkArgCount(s, n, 1) }
func checkAtLeast1(s *Stack, f, n uint32) { checkArgCountAtLeast(s, n, 1) }
func checkAtLeast2(s *Stack, f, n uint32) { checkArgCountAtLeast(s, n, 2) }

// evalMkBVType builds the bit-vector type of the given (positive) width.
func evalMkBVType(s *Stack, f, n uint32) {
	bitsize := s.coercePositiveBitsize(s.argCell(f, 0))
	s.finishType(s.table.BVType(bitsize))
}

// evalMkScalarType builds an enumeration type from its element names,
// failing DUPLICATE_SCALAR_NAME if any two elements share a name.
func evalMkScalarType(s *Stack, f, n uint32) {
	names := make([]string, n)
	seen := make(map[string]bool, n)
	for i := uint32(0); i < n; i++ {
		c := s.argCell(f, i)
		name := s.coerceSymbol(c)
		if seen[name] {
			s.fail(KindDuplicateScalarName, c.Loc, name, "duplicate element name in MK_SCALAR_TYPE")
		}
		seen[name] = true
		names[i] = name
	}
	s.finishType(s.table.ScalarType(names))
}

// evalMkTupleType builds a tuple type from its component types.
func evalMkTupleType(s *Stack, f, n uint32) {
	components := make([]terms.Type, n)
	for i := uint32(0); i < n; i++ {
		components[i] = s.coerceType(s.argCell(f, i))
	}
	s.finishType(s.table.TupleType(components))
}

// evalMkFunType builds a function type from its domain types and trailing
// codomain type.
func evalMkFunType(s *Stack, f, n uint32) {
	domain := make([]terms.Type, n-1)
	for i := uint32(0); i < n-1; i++ {
		domain[i] = s.coerceType(s.argCell(f, i))
	}
	codomain := s.coerceType(s.argCell(f, n-1))
	s.finishType(s.table.FunType(domain, codomain))
}

// evalMkAppType builds an applied-macro type from a macro identity and its
// type arguments.
func evalMkAppType(s *Stack, f, n uint32) {
	macro := s.coerceMacro(s.argCell(f, 0))
	args := make([]terms.Type, n-1)
	for i := uint32(0); i < n-1; i++ {
		args[i] = s.coerceType(s.argCell(f, i+1))
	}
	s.finishType(s.table.AppType(macro, args))
}
