package tstack

// Arena is a nested-scope allocator for symbol and string text whose
// lifetime matches the innermost operator frame's enclosing scope. Popping
// a scope discards every string allocated since the matching push, so a
// cell's text never outlives the frame that produced it, except a BIND
// cell's symbol, which the stack engine deliberately allocates in the
// enclosing LET's scope rather than opening one of its own (see
// Stack.PushOp).
type Arena struct {
	scopes []int
	bytes  []byte
}

// NewArena constructs an empty arena with no scopes open.
func NewArena() *Arena {
	return &Arena{}
}

// PushScope opens a new scope at the arena's current length.
func (a *Arena) PushScope() {
	a.scopes = append(a.scopes, len(a.bytes))
}

// PopScope discards every allocation made since the matching PushScope.
func (a *Arena) PopScope() {
	n := len(a.scopes) - 1
	mark := a.scopes[n]
	a.scopes = a.scopes[:n]
	a.bytes = a.bytes[:mark]
}

// Depth returns the number of scopes currently open.
func (a *Arena) Depth() int {
	return len(a.scopes)
}

// Allocate copies s into the arena's slab and returns a string backed by
// that copy, valid until the enclosing scope is popped.
func (a *Arena) Allocate(s string) string {
	start := len(a.bytes)
	a.bytes = append(a.bytes, s...)
	return string(a.bytes[start : start+len(s)])
}

// Reset discards every scope and every allocation, returning the arena to
// its just-constructed state.
func (a *Arena) Reset() {
	a.scopes = a.scopes[:0]
	a.bytes = a.bytes[:0]
}
