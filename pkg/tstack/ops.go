package tstack

// registerPredefinedOps wires every predefined opcode into a fresh
// OpTable, grouped by opcode family: definitions, bindings, types,
// propositional connectives, polymorphic constructors, arithmetic,
// bit-vector arithmetic, bit-vector logic, bit-vector atoms, then the
// two terminal extraction opcodes.
func registerPredefinedOps(t *OpTable) {
	registerDefinitionOps(t)
	registerBindingOps(t)
	registerTypeOps(t)
	registerPropositionalOps(t)
	registerPolymorphicOps(t)
	registerArithOps(t)
	registerBVArithOps(t)
	registerBVLogicOps(t)
	registerBVAtomOps(t)
	registerExtractOps(t)
}
