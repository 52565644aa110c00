package ribbon

import "strings"

// SpaceBreak renders as a space while inside a committed flex group, or a
// hard break otherwise.
func SpaceBreak[A any]() Doc[A] {
	return FlexAlt(Space[A](), Break[A]())
}

// SoftBreak renders as nothing while inside a committed flex group, or a
// hard break otherwise.
func SoftBreak[A any]() Doc[A] {
	return FlexAlt(Empty[A](), Break[A]())
}

// AppendBreak concatenates a and b with a hard [Break] between them,
// skipped entirely if either side is empty.
func AppendBreak[A any](a, b Doc[A]) Doc[A] {
	if a.isEmpty() {
		return b
	}
	if b.isEmpty() {
		return a
	}
	return Append(a, Append(Break[A](), b))
}

// AppendSpace concatenates a and b with a single [Space] between them,
// skipped entirely if either side is empty.
func AppendSpace[A any](a, b Doc[A]) Doc[A] {
	if a.isEmpty() {
		return b
	}
	if b.isEmpty() {
		return a
	}
	return Append(a, Append(Space[A](), b))
}

// AppendFlex concatenates a and b with a [FlexGroup] wrapping a [SpaceBreak]
// between them, skipped entirely if either side is empty.
func AppendFlex[A any](a, b Doc[A]) Doc[A] {
	if a.isEmpty() {
		return b
	}
	if b.isEmpty() {
		return a
	}
	return Append(a, FlexGroup(Append(SpaceBreak[A](), b)))
}

// FoldWith right-folds xs with f, applying f only between pairs of
// non-empty documents; empty documents in xs are dropped from the fold
// entirely rather than being passed to f.
func FoldWith[A any](f func(a, b Doc[A]) Doc[A], xs []Doc[A]) Doc[A] {
	nonEmpty := make([]Doc[A], 0, len(xs))
	for _, x := range xs {
		if !x.isEmpty() {
			nonEmpty = append(nonEmpty, x)
		}
	}
	if len(nonEmpty) == 0 {
		return Empty[A]()
	}

	result := nonEmpty[len(nonEmpty)-1]
	for i := len(nonEmpty) - 2; i >= 0; i-- {
		result = f(nonEmpty[i], result)
	}
	return result
}

// Lines joins xs with hard breaks between each element.
func Lines[A any](xs []Doc[A]) Doc[A] {
	return FoldWith(AppendBreak[A], xs)
}

// Words joins xs with single spaces between each element.
func Words[A any](xs []Doc[A]) Doc[A] {
	return FoldWith(AppendSpace[A], xs)
}

// Paragraph joins xs with flex-grouped space-or-break separators, reflowing
// to fit the page width.
func Paragraph[A any](xs []Doc[A]) Doc[A] {
	return FoldWith(AppendFlex[A], xs)
}

// TextParagraph splits s on runs of whitespace (including newlines) and
// rejoins the resulting words as a [Paragraph], so the caller's own
// line breaks are discarded in favor of the layout interpreter's reflow.
func TextParagraph[A any](s string) Doc[A] {
	words := strings.Fields(s)
	docs := make([]Doc[A], len(words))
	for i, w := range words {
		docs[i] = Text[A](w)
	}
	return Paragraph(docs)
}

// Enclose wraps x with o on the left and c on the right unconditionally.
func Enclose[A any](o, c, x Doc[A]) Doc[A] {
	return Append(Append(o, x), c)
}

// EncloseEmptyAlt is like [Enclose], but yields dflt instead when x is
// empty rather than producing a bare o++c.
func EncloseEmptyAlt[A any](o, c, dflt, x Doc[A]) Doc[A] {
	if x.isEmpty() {
		return dflt
	}
	return Enclose(o, c, x)
}
