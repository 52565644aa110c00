package ribbon

// cmdKind identifies the variant of a docCmd frame on the interpreter's
// explicit work stack.
type cmdKind int

const (
	cmdDoc cmdKind = iota
	cmdDedent
	cmdLeaveAnnotation
	cmdLeaveFlexGroup
)

// docCmd is one frame of the interpreter's explicit command stack, used in
// place of native recursion so arbitrarily deep Doc trees do not overflow
// the call stack.
type docCmd[A any] struct {
	kind cmdKind

	// cmdDoc
	doc Doc[A]

	// cmdDedent
	spaces string
	indent int

	// cmdLeaveAnnotation
	ann   A
	outer []A
}

// flexGroupState is the speculation snapshot saved when the interpreter
// enters a [FlexGroup]: everything needed to resume from that point with
// the flex group's flex alternatives replaced by their defaults, should the
// speculative attempt abort.
type flexGroupState[B, A any] struct {
	position      Position
	buffer        Buffer[B]
	annotations   []A
	indent        int
	indentSpaces  string
	pendingIndent bool
	continuation  []docCmd[A]
}

// docState is the layout interpreter's mutable state for a single [Print]
// invocation.
type docState[B, A, R any] struct {
	position     Position
	buffer       Buffer[B]
	annotations  []A // innermost first
	indent       int
	indentSpaces string
	// pendingIndent is set by a break and marks that the next Text frame
	// owes the current indent before its content, rather than indent
	// being owed simply because the column happens to be 0 (true at the
	// very start of the document too, where no indent is owed).
	pendingIndent bool
	flexGroup     *flexGroupState[B, A]

	printer Printer[B, A, R]
	opts    PrintOptions
}

// Print walks d with the layout interpreter, driving p's callbacks, and
// returns p's final result. Print is deterministic for given inputs and has
// no side effects beyond whatever p's callbacks perform.
func Print[B, A, R any](p Printer[B, A, R], opts PrintOptions, d Doc[A]) R {
	st := &docState[B, A, R]{
		position: Position{
			PageWidth:   opts.PageWidth,
			RibbonWidth: ribbonWidth(opts.PageWidth, 0, opts.RibbonRatio),
		},
		buffer:  newBuffer(p.EmptyBuffer),
		printer: p,
		opts:    opts,
	}

	stack := []docCmd[A]{{kind: cmdDoc, doc: d}}
	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = st.step(cmd, stack)
	}

	return p.FlushBuffer(st.buffer.get())
}

// step processes one frame, returning the (possibly entirely replaced, on
// flex-group abort) remaining stack.
func (st *docState[B, A, R]) step(cmd docCmd[A], stack []docCmd[A]) []docCmd[A] {
	switch cmd.kind {
	case cmdDedent:
		st.indentSpaces = cmd.spaces
		st.indent = cmd.indent
		return stack
	case cmdLeaveAnnotation:
		st.annotations = cmd.outer
		st.buffer.modify(func(b B) B {
			return st.printer.LeaveAnnotation(cmd.ann, cmd.outer, b)
		})
		return stack
	case cmdLeaveFlexGroup:
		st.flexGroup = nil
		st.buffer.commit()
		return stack
	case cmdDoc:
		return st.stepDoc(cmd.doc, stack)
	}
	return stack
}

func (st *docState[B, A, R]) stepDoc(d Doc[A], stack []docCmd[A]) []docCmd[A] {
	switch d.kind {
	case kindEmpty:
		return stack

	case kindText:
		return st.stepText(d, stack)

	case kindBreak:
		if st.flexGroup != nil {
			return st.abortFlexGroup()
		}
		st.buffer.modify(st.printer.WriteBreak)
		st.position.Line++
		st.position.Column = 0
		st.position.Indent = st.indent
		st.position.RibbonWidth = ribbonWidth(st.position.PageWidth, st.indent, st.opts.RibbonRatio)
		st.pendingIndent = true
		return stack

	case kindAppend:
		stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.right})
		stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.left})
		return stack

	case kindIndent:
		if st.flexGroup != nil {
			return append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
		}
		stack = append(stack, docCmd[A]{kind: cmdDedent, spaces: st.indentSpaces, indent: st.indent})
		stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
		st.indent += st.opts.IndentWidth
		st.indentSpaces += st.opts.IndentUnit
		return stack

	case kindAlign:
		if st.flexGroup != nil {
			return append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
		}
		stack = append(stack, docCmd[A]{kind: cmdDedent, spaces: st.indentSpaces, indent: st.indent})
		stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
		st.indent += d.width
		st.indentSpaces += spaces(d.width)
		return stack

	case kindFlexGroup:
		return st.enterFlexGroup(d, stack)

	case kindFlexAlt:
		if st.flexGroup != nil {
			return append(stack, docCmd[A]{kind: cmdDoc, doc: *d.flex})
		}
		return append(stack, docCmd[A]{kind: cmdDoc, doc: *d.dflt})

	case kindAnnotate:
		outer := st.annotations
		st.annotations = prependAnnotation(d.ann, outer)
		st.buffer.modify(func(b B) B {
			return st.printer.EnterAnnotation(d.ann, outer, b)
		})
		stack = append(stack, docCmd[A]{kind: cmdLeaveAnnotation, ann: d.ann, outer: outer})
		stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
		return stack

	case kindWithPosition:
		pos := st.position
		if pos.Column == 0 && st.indent > pos.Indent {
			pos.Indent = st.indent
			pos.Column = st.indent
			pos.RibbonWidth = ribbonWidth(pos.PageWidth, st.indent, st.opts.RibbonRatio)
		}
		return append(stack, docCmd[A]{kind: cmdDoc, doc: d.k(pos)})
	}
	return stack
}

func (st *docState[B, A, R]) stepText(d Doc[A], stack []docCmd[A]) []docCmd[A] {
	if st.position.Column == 0 && st.pendingIndent && st.indent > 0 {
		st.pendingIndent = false
		st.buffer.modify(func(b B) B {
			return st.printer.WriteIndent(st.indent, st.indentSpaces, b)
		})
		st.position.Column = st.indent
		st.position.Indent = st.indent
		st.position.RibbonWidth = ribbonWidth(st.position.PageWidth, st.indent, st.opts.RibbonRatio)
		return append(stack, docCmd[A]{kind: cmdDoc, doc: d})
	}
	st.pendingIndent = false

	nextColumn := st.position.Column + d.length
	if st.flexGroup != nil && nextColumn > st.position.Indent+st.position.RibbonWidth {
		return st.abortFlexGroup()
	}

	st.buffer.modify(func(b B) B {
		return st.printer.WriteText(d.length, d.text, b)
	})
	st.position.Column = nextColumn
	return stack
}

// enterFlexGroup implements the §4.4 entry rules: speculation is skipped
// (processing inner directly) if another flex group is already active or
// the ribbon has zero width; otherwise a snapshot is saved and the buffer
// forks.
func (st *docState[B, A, R]) enterFlexGroup(d Doc[A], stack []docCmd[A]) []docCmd[A] {
	if st.flexGroup != nil || st.position.RibbonWidth == 0 {
		return append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
	}

	continuation := append(cloneSlice(stack), docCmd[A]{kind: cmdDoc, doc: *d.inner})
	snapshot := &flexGroupState[B, A]{
		position:      st.position,
		buffer:        st.buffer.clone(),
		annotations:   cloneSlice(st.annotations),
		indent:        st.indent,
		indentSpaces:  st.indentSpaces,
		pendingIndent: st.pendingIndent,
		continuation:  continuation,
	}

	st.buffer.branch()
	st.flexGroup = snapshot

	stack = append(stack, docCmd[A]{kind: cmdLeaveFlexGroup})
	stack = append(stack, docCmd[A]{kind: cmdDoc, doc: *d.inner})
	return stack
}

// abortFlexGroup rewinds to the saved snapshot and replaces the live stack
// with the saved continuation, so the speculative attempt's writes vanish
// and FlexAlt now resolves to its default alternatives.
func (st *docState[B, A, R]) abortFlexGroup() []docCmd[A] {
	snap := st.flexGroup
	st.position = snap.position
	st.buffer = snap.buffer
	st.annotations = snap.annotations
	st.indent = snap.indent
	st.indentSpaces = snap.indentSpaces
	st.pendingIndent = snap.pendingIndent
	st.flexGroup = nil
	return snap.continuation
}

// prependAnnotation returns a new annotation stack with ann as the new
// innermost entry; outer is left untouched since a saved cmdLeaveAnnotation
// frame (or a flex-group snapshot) may still hold a reference to it.
func prependAnnotation[A any](ann A, outer []A) []A {
	next := make([]A, 0, len(outer)+1)
	next = append(next, ann)
	next = append(next, outer...)
	return next
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
