// Package ribbon implements a pretty-printer engine: documents are built as
// an immutable algebra of layout primitives (text, breaks, groups,
// indentation, annotations) and rendered by a single-pass layout interpreter
// with bounded lookahead, choosing between compact and expanded alternatives
// based on whether content fits a target page width.
//
// Build a [Doc] with the constructors and combinators in this package, then
// render it with [Print] against a [Printer] sink and [PrintOptions]. The
// built-in plain-text printer in plaintext.go covers the common case.
package ribbon

import "github.com/inkwell/ribbon/internal/assert"

// kind identifies which variant of the Doc algebra a node represents.
type kind int

const (
	kindEmpty kind = iota
	kindText
	kindBreak
	kindAppend
	kindIndent
	kindAlign
	kindFlexGroup
	kindFlexAlt
	kindAnnotate
	kindWithPosition
)

// Doc is an immutable document tree describing intended layout, parameterized
// over an annotation type A (e.g. a color or style tag). The zero value is
// equivalent to [Empty], but prefer the constructors below for clarity.
type Doc[A any] struct {
	kind kind

	// kindText
	text   string
	length int

	// kindAppend
	left, right *Doc[A]

	// kindIndent, kindAlign, kindFlexGroup, kindAnnotate: inner
	inner *Doc[A]

	// kindAlign
	width int

	// kindFlexAlt
	flex, dflt *Doc[A]

	// kindAnnotate
	ann A

	// kindWithPosition
	k func(Position) Doc[A]
}

// Empty is the identity element under [Append].
func Empty[A any]() Doc[A] {
	return Doc[A]{kind: kindEmpty}
}

func (d Doc[A]) isEmpty() bool {
	return d.kind == kindEmpty
}

// Text creates a leaf holding literal text. s must not contain line breaks;
// embedding one produces unspecified output (see spec's Open question).
// text("") collapses to [Empty].
func Text[A any](s string) Doc[A] {
	if s == "" {
		return Empty[A]()
	}
	return Doc[A]{kind: kindText, text: s, length: countChars(s)}
}

// countChars returns the length of s in characters (runes), not bytes.
func countChars(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Break is an unconditional line break.
func Break[A any]() Doc[A] {
	return Doc[A]{kind: kindBreak}
}

// Space is a single literal space character.
func Space[A any]() Doc[A] {
	return Text[A](" ")
}

// Append concatenates a then b, forming a monoid with [Empty] as identity:
// Append(Empty, x) = Append(x, Empty) = x.
func Append[A any](a, b Doc[A]) Doc[A] {
	if a.isEmpty() {
		return b
	}
	if b.isEmpty() {
		return a
	}
	return Doc[A]{kind: kindAppend, left: &a, right: &b}
}

// Indent increases the indentation level within inner by one indent unit, as
// configured by [PrintOptions]. Indent(Empty) = Empty.
func Indent[A any](inner Doc[A]) Doc[A] {
	if inner.isEmpty() {
		return Empty[A]()
	}
	return Doc[A]{kind: kindIndent, inner: &inner}
}

// Align increases the indentation level within inner by exactly width
// spaces. A non-positive width is ignored (inner is returned unchanged).
// Align(_, Empty) = Empty.
func Align[A any](width int, inner Doc[A]) Doc[A] {
	if inner.isEmpty() {
		return Empty[A]()
	}
	if width <= 0 {
		return inner
	}
	return Doc[A]{kind: kindAlign, width: width, inner: &inner}
}

// FlexGroup marks inner as a candidate for compact layout: the interpreter
// speculatively renders it taking the flex side of every [FlexAlt] within,
// collapsing to the default (expanded) alternatives if the compact attempt
// does not fit the ribbon or contains a hard [Break]. FlexGroup is
// idempotent: FlexGroup(FlexGroup(x)) = FlexGroup(x). FlexGroup(Empty) =
// Empty.
func FlexGroup[A any](inner Doc[A]) Doc[A] {
	if inner.isEmpty() {
		return Empty[A]()
	}
	if inner.kind == kindFlexGroup {
		return inner
	}
	return Doc[A]{kind: kindFlexGroup, inner: &inner}
}

// FlexAlt chooses between two alternative documents: flex is rendered while
// inside a committed flex group, default otherwise.
func FlexAlt[A any](flex, dflt Doc[A]) Doc[A] {
	return Doc[A]{kind: kindFlexAlt, flex: &flex, dflt: &dflt}
}

// Annotate wraps inner with an annotation value, e.g. a color, passed to the
// printer's EnterAnnotation/LeaveAnnotation callbacks as inner renders.
// Annotate(_, Empty) = Empty.
func Annotate[A any](ann A, inner Doc[A]) Doc[A] {
	if inner.isEmpty() {
		return Empty[A]()
	}
	return Doc[A]{kind: kindAnnotate, ann: ann, inner: &inner}
}

// WithPosition defers document construction until the interpreter reaches
// this point in the stream, handing k the current render [Position]. The
// document k returns must itself terminate; WithPosition offers no guard
// against a k that returns another non-terminating WithPosition chain.
func WithPosition[A any](k func(Position) Doc[A]) Doc[A] {
	assert.That(k != nil, "WithPosition: k must not be nil")
	return Doc[A]{kind: kindWithPosition, k: k}
}

// AlignCurrentColumn pins d's indentation to the current render column, so
// that any lines within d that break line up under the column at which
// AlignCurrentColumn was reached.
func AlignCurrentColumn[A any](d Doc[A]) Doc[A] {
	return WithPosition(func(p Position) Doc[A] {
		return Align(p.Column-p.Indent, d)
	})
}
