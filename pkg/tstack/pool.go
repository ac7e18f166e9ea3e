package tstack

import (
	"github.com/smtcore/tstack/pkg/terms/poly"
	"github.com/smtcore/tstack/pkg/util"
)

// bufferPool holds at most one instance of each accumulator-buffer kind.
// acquire* takes the singleton out (resizing it for immediate reuse, or
// allocating it the first time) and leaves the pool slot empty; recycle*
// returns it, unless the slot is already occupied, in which case the
// buffer is simply dropped for the garbage collector. This keeps the
// invariant that a given buffer is either sitting in its pool slot or
// held by the one evaluator that acquired it, never both, without
// reference counting; no stack cell ever holds a buffer.
type bufferPool struct {
	rat     util.Option[*poly.RatBuffer]
	bvSmall util.Option[*poly.BVSmallBuffer]
	bvWide  util.Option[*poly.BVWideBuffer]
	logic   util.Option[*poly.LogicBuffer]
}

func (p *bufferPool) acquireRat() *poly.RatBuffer {
	if p.rat.HasValue() {
		b := p.rat.Unwrap()
		p.rat = util.None[*poly.RatBuffer]()
		b.Reset()
		return b
	}
	return poly.NewRatBuffer()
}

func (p *bufferPool) acquireBVSmall(bitsize uint32) *poly.BVSmallBuffer {
	if p.bvSmall.HasValue() {
		b := p.bvSmall.Unwrap()
		p.bvSmall = util.None[*poly.BVSmallBuffer]()
		b.Resize(bitsize)
		return b
	}
	return poly.NewBVSmallBuffer(bitsize)
}

func (p *bufferPool) acquireBVWide(bitsize uint32) *poly.BVWideBuffer {
	if p.bvWide.HasValue() {
		b := p.bvWide.Unwrap()
		p.bvWide = util.None[*poly.BVWideBuffer]()
		b.Resize(bitsize)
		return b
	}
	return poly.NewBVWideBuffer(bitsize)
}

func (p *bufferPool) acquireLogic(bitsize uint32) *poly.LogicBuffer {
	if p.logic.HasValue() {
		b := p.logic.Unwrap()
		p.logic = util.None[*poly.LogicBuffer]()
		b.Resize(bitsize)
		return b
	}
	return poly.NewLogicBuffer(bitsize)
}

func (p *bufferPool) recycleRat(b *poly.RatBuffer) {
	if b == nil || p.rat.HasValue() {
		return
	}
	p.rat = util.Some(b)
}

func (p *bufferPool) recycleBVSmall(b *poly.BVSmallBuffer) {
	if b == nil || p.bvSmall.HasValue() {
		return
	}
	p.bvSmall = util.Some(b)
}

func (p *bufferPool) recycleBVWide(b *poly.BVWideBuffer) {
	if b == nil || p.bvWide.HasValue() {
		return
	}
	p.bvWide = util.Some(b)
}

func (p *bufferPool) recycleLogic(b *poly.LogicBuffer) {
	if b == nil || p.logic.HasValue() {
		return
	}
	p.logic = util.Some(b)
}
