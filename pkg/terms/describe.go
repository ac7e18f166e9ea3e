package terms

import (
	"fmt"
	"strings"
)

// kindNames gives each Kind the symbol it renders as in Describe's
// parenthesized output. Kinds with no useful symbolic form (constants,
// uninterpreted terms) are handled separately in Describe.
var kindNames = map[Kind]string{
	KindNot: "not", KindOr: "or", KindAnd: "and", KindXor: "xor",
	KindIff: "iff", KindImplies: "implies", KindIte: "ite", KindEq: "=",
	KindDistinct: "distinct", KindApply: "apply", KindTuple: "tuple",
	KindSelect: "select", KindTupleUpdate: "tuple-update", KindUpdate: "update",
	KindForall: "forall", KindExists: "exists", KindLambda: "lambda",
	KindAdd: "+", KindSub: "-", KindNeg: "neg", KindMul: "*",
	KindDivision: "/", KindPow: "^", KindGe: ">=", KindGt: ">", KindLe: "<=", KindLt: "<",
	KindBVAdd: "bvadd", KindBVSub: "bvsub", KindBVNeg: "bvneg", KindBVMul: "bvmul",
	KindBVPow: "bvpow", KindBVDiv: "bvdiv", KindBVRem: "bvrem", KindBVSDiv: "bvsdiv",
	KindBVSRem: "bvsrem", KindBVSMod: "bvsmod", KindBVNot: "bvnot", KindBVAnd: "bvand",
	KindBVOr: "bvor", KindBVXor: "bvxor", KindBVNand: "bvnand", KindBVNor: "bvnor",
	KindBVXnor: "bvxnor", KindBVShiftLeft0: "bvshl0", KindBVShiftLeft1: "bvshl1",
	KindBVShiftRight0: "bvshr0", KindBVShiftRight1: "bvshr1", KindBVAShiftRight: "bvashr",
	KindBVRotateLeft: "bvrotl", KindBVRotateRight: "bvrotr", KindBVShl: "bvshl",
	KindBVLshr: "bvlshr", KindBVAshr: "bvashr", KindBVExtract: "extract",
	KindBVConcat: "concat", KindBVRepeat: "repeat", KindBVSignExtend: "sign-extend",
	KindBVZeroExtend: "zero-extend", KindBVRedAnd: "bvredand", KindBVRedOr: "bvredor",
	KindBVComp: "bvcomp", KindBVGe: "bvge", KindBVGt: "bvgt", KindBVLe: "bvle", KindBVLt: "bvlt",
	KindBVSge: "bvsge", KindBVSgt: "bvsgt", KindBVSle: "bvsle", KindBVSlt: "bvslt",
}

// Describe renders t as a parenthesized prefix-notation string, the way
// the teacher's debug printers render a constraint AST: leaves first,
// then a recursive descent over children. Used only for diagnostic
// output; never consulted by the hash-consing logic itself.
func (t *Table) Describe(a Term) string {
	if a == NullTerm {
		return "<null>"
	}
	n := t.termNodes[a]
	switch n.kind {
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindUninterpreted:
		return n.name
	case KindRational:
		return n.rat.RatString()
	case KindBVConst:
		bits := n.bv.BigInt().Text(2)
		if pad := int(n.bv.Bitsize) - len(bits); pad > 0 {
			bits = strings.Repeat("0", pad) + bits
		}
		return "#b" + bits
	}
	sym, ok := kindNames[n.kind]
	if !ok {
		return fmt.Sprintf("<kind %d>", n.kind)
	}
	if len(n.children) == 0 {
		return fmt.Sprintf("(%s)", sym)
	}
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = t.Describe(c)
	}
	return fmt.Sprintf("(%s %s)", sym, strings.Join(parts, " "))
}

// DescribeType renders tau the same way Describe renders a term.
func (t *Table) DescribeType(tau Type) string {
	if tau == NullType {
		return "<null>"
	}
	n := t.typeNodes[tau]
	switch n.kind {
	case TypeKindBool:
		return "Bool"
	case TypeKindInt:
		return "Int"
	case TypeKindReal:
		return "Real"
	case TypeKindBV:
		return fmt.Sprintf("(BitVec %d)", n.bitsize)
	case TypeKindScalar:
		return fmt.Sprintf("(Scalar %s)", strings.Join(n.names, " "))
	case TypeKindTuple:
		parts := make([]string, len(n.children))
		for i, c := range n.children {
			parts[i] = t.DescribeType(c)
		}
		return fmt.Sprintf("(Tuple %s)", strings.Join(parts, " "))
	case TypeKindFun:
		parts := make([]string, len(n.children))
		for i, c := range n.children {
			parts[i] = t.DescribeType(c)
		}
		return fmt.Sprintf("(-> %s %s)", strings.Join(parts, " "), t.DescribeType(n.codomain))
	case TypeKindUninterpreted:
		if len(n.names) > 0 {
			return n.names[0]
		}
		return fmt.Sprintf("<uninterpreted %d>", tau)
	default:
		return fmt.Sprintf("<type kind %d>", n.kind)
	}
}
