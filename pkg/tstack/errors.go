package tstack

import "fmt"

// Kind identifies the category of a stack failure.
type Kind uint8

const (
	KindInternal Kind = iota
	KindOpNotImplemented
	KindInvalidOp
	KindInvalidFrame
	KindUndefTerm
	KindUndefType
	KindUndefMacro
	KindRationalFormat
	KindFloatFormat
	KindBVBinFormat
	KindBVHexFormat
	KindTypeNameRedef
	KindTermNameRedef
	KindMacroRedef
	KindDuplicateScalarName
	KindDuplicateVarName
	KindIntegerOverflow
	KindNegativeExponent
	KindNotAnInteger
	KindNotAString
	KindNotASymbol
	KindNotARational
	KindNotAType
	KindArithError
	KindDivideByZero
	KindNonConstantDivisor
	KindNonpositiveBVSize
	KindIncompatibleBVSizes
	KindInvalidBVConstant
	KindBVArithError
	KindBVLogicError
	KindTypeErrorInDefinition
	KindExternalError
)

func (k Kind) String() string {
	switch k {
	case KindInternal:
		return "INTERNAL"
	case KindOpNotImplemented:
		return "OP_NOT_IMPLEMENTED"
	case KindInvalidOp:
		return "INVALID_OP"
	case KindInvalidFrame:
		return "INVALID_FRAME"
	case KindUndefTerm:
		return "UNDEF_TERM"
	case KindUndefType:
		return "UNDEF_TYPE"
	case KindUndefMacro:
		return "UNDEF_MACRO"
	case KindRationalFormat:
		return "RATIONAL_FORMAT"
	case KindFloatFormat:
		return "FLOAT_FORMAT"
	case KindBVBinFormat:
		return "BVBIN_FORMAT"
	case KindBVHexFormat:
		return "BVHEX_FORMAT"
	case KindTypeNameRedef:
		return "TYPENAME_REDEF"
	case KindTermNameRedef:
		return "TERMNAME_REDEF"
	case KindMacroRedef:
		return "MACRO_REDEF"
	case KindDuplicateScalarName:
		return "DUPLICATE_SCALAR_NAME"
	case KindDuplicateVarName:
		return "DUPLICATE_VAR_NAME"
	case KindIntegerOverflow:
		return "INTEGER_OVERFLOW"
	case KindNegativeExponent:
		return "NEGATIVE_EXPONENT"
	case KindNotAnInteger:
		return "NOT_AN_INTEGER"
	case KindNotAString:
		return "NOT_A_STRING"
	case KindNotASymbol:
		return "NOT_A_SYMBOL"
	case KindNotARational:
		return "NOT_A_RATIONAL"
	case KindNotAType:
		return "NOT_A_TYPE"
	case KindArithError:
		return "ARITH_ERROR"
	case KindDivideByZero:
		return "DIVIDE_BY_ZERO"
	case KindNonConstantDivisor:
		return "NON_CONSTANT_DIVISOR"
	case KindNonpositiveBVSize:
		return "NONPOSITIVE_BVSIZE"
	case KindIncompatibleBVSizes:
		return "INCOMPATIBLE_BVSIZES"
	case KindInvalidBVConstant:
		return "INVALID_BVCONSTANT"
	case KindBVArithError:
		return "BVARITH_ERROR"
	case KindBVLogicError:
		return "BVLOGIC_ERROR"
	case KindTypeErrorInDefinition:
		return "TYPE_ERROR_IN_DEFINITION"
	case KindExternalError:
		return "EXTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

// Error is the structured failure value every push/evaluate entry point
// returns. It carries enough context to report a precise diagnostic
// without a stack trace: the error kind, the offending cell's location,
// the opcode under evaluation (0 if none), and an optional symbol name.
type Error struct {
	Kind   Kind
	Loc    Location
	Opcode int32
	Symbol string
	detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%d:%d: %s", e.Loc.Line, e.Loc.Column, e.Kind)
	if e.Symbol != "" {
		msg += fmt.Sprintf(" (symbol %q)", e.Symbol)
	}
	if e.detail != "" {
		msg += ": " + e.detail
	}
	return msg
}

// newError constructs a *Error. detail is an optional human-readable
// elaboration; symbol is the offending name, or "" if none is relevant.
func newError(kind Kind, loc Location, opcode int32, symbol string, detail string) *Error {
	return &Error{Kind: kind, Loc: loc, Opcode: opcode, Symbol: symbol, detail: detail}
}

// fail raises kind at loc as the current evaluator's failure, unwinding
// to the nearest runProtected via panic. This and runProtected are the
// only two functions in this package that call panic/recover; every
// check and coercion helper calls fail instead of returning an error so
// that third-party-registered eval functions never need to thread an
// error return through every call site themselves.
func (s *Stack) fail(kind Kind, loc Location, symbol string, detailf string, args ...any) {
	detail := detailf
	if len(args) > 0 {
		detail = fmt.Sprintf(detailf, args...)
	}
	panic(newError(kind, loc, s.topOp, symbol, detail))
}

// runProtected invokes f, recovering a *Error panic raised by fail and
// returning it as a normal error. Any other panic (a genuine bug, not a
// modeled failure) propagates unchanged.
func (s *Stack) runProtected(f func()) error {
	var result error
	func() {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(*Error); ok {
					result = e
					return
				}
				panic(r)
			}
		}()
		f()
	}()
	return result
}
