package ribbon

import "golang.org/x/exp/slices"

// Buffer is a generic output accumulator with a two-slot branching
// discipline: a committed side holding the definitive output so far, and an
// optional speculative side forked when a flex-group speculation begins.
// Writes go to the speculative slot while one exists, otherwise to
// committed. Buffer itself never rolls back; on abort the interpreter
// replaces the live Buffer wholesale with the value it saved before
// branching, which drops the speculative slot (see flexGroupState).
type Buffer[B any] struct {
	committed    B
	speculative  *B
	hasSpeculate bool
}

// newBuffer constructs a Buffer seeded with the printer's initial value.
func newBuffer[B any](empty B) Buffer[B] {
	return Buffer[B]{committed: empty}
}

// modify applies f to the active slot (speculative if branched, else
// committed) and stores the result back into that same slot.
func (b *Buffer[B]) modify(f func(B) B) {
	if b.hasSpeculate {
		*b.speculative = f(*b.speculative)
		return
	}
	b.committed = f(b.committed)
}

// branch begins speculation: the current active value is cloned into a new
// speculative slot, and subsequent writes diverge from there.
func (b *Buffer[B]) branch() {
	cur := b.get()
	b.speculative = &cur
	b.hasSpeculate = true
}

// commit accepts the speculative slot as committed and drops the fork.
func (b *Buffer[B]) commit() {
	if !b.hasSpeculate {
		return
	}
	b.committed = *b.speculative
	b.speculative = nil
	b.hasSpeculate = false
}

// get returns a snapshot of the active slot's value.
func (b *Buffer[B]) get() B {
	if b.hasSpeculate {
		return *b.speculative
	}
	return b.committed
}

// clone returns a Buffer equal in value to b, suitable for stashing inside a
// flexGroupState snapshot before speculation begins.
func (b Buffer[B]) clone() Buffer[B] {
	return b
}

// cloneSlice returns a copy of s, used to snapshot the annotation stack and
// pending command stack captured at flex-group entry.
func cloneSlice[T any](s []T) []T {
	return slices.Clone(s)
}
