package ribbon_test

import (
	"testing"

	"github.com/teleivo/assertive/assert"

	"github.com/inkwell/ribbon"
)

func TestAppendBreak(t *testing.T) {
	t.Run("JoinsWithHardBreak", func(t *testing.T) {
		d := ribbon.AppendBreak(ribbon.Text[color]("a"), ribbon.Text[color]("b"))
		assert.EqualValues(t, render(d), "a\nb")
	})

	t.Run("EmptyLeftIsSkipped", func(t *testing.T) {
		b := ribbon.Text[color]("b")
		d := ribbon.AppendBreak(ribbon.Empty[color](), b)
		assert.EqualValues(t, render(d), render(b))
	})

	t.Run("EmptyRightIsSkipped", func(t *testing.T) {
		a := ribbon.Text[color]("a")
		d := ribbon.AppendBreak(a, ribbon.Empty[color]())
		assert.EqualValues(t, render(d), render(a))
	})
}

func TestAppendSpaceCombinator(t *testing.T) {
	t.Run("JoinsWithSingleSpace", func(t *testing.T) {
		d := ribbon.AppendSpace(ribbon.Text[color]("a"), ribbon.Text[color]("b"))
		assert.EqualValues(t, render(d), "a b")
	})

	t.Run("EmptyLeftIsSkipped", func(t *testing.T) {
		b := ribbon.Text[color]("b")
		d := ribbon.AppendSpace(ribbon.Empty[color](), b)
		assert.EqualValues(t, render(d), render(b))
	})

	t.Run("EmptyRightIsSkipped", func(t *testing.T) {
		a := ribbon.Text[color]("a")
		d := ribbon.AppendSpace(a, ribbon.Empty[color]())
		assert.EqualValues(t, render(d), render(a))
	})
}

func TestAppendFlex(t *testing.T) {
	t.Run("FitsOnOneLine", func(t *testing.T) {
		d := ribbon.AppendFlex(ribbon.Text[color]("a"), ribbon.Text[color]("b"))
		got := ribbon.Print(ribbon.PlainText[color](), ribbon.TwoSpaces(), d)
		assert.EqualValues(t, got, "a b")
	})

	t.Run("SpillsToBreakWhenTooNarrow", func(t *testing.T) {
		d := ribbon.AppendFlex(ribbon.Text[color]("a"), ribbon.Text[color]("b"))
		opts := ribbon.TwoSpaces()
		opts.PageWidth = 1
		got := ribbon.Print(ribbon.PlainText[color](), opts, d)
		assert.EqualValues(t, got, "a\nb")
	})

	t.Run("EmptyLeftIsSkipped", func(t *testing.T) {
		b := ribbon.Text[color]("b")
		d := ribbon.AppendFlex(ribbon.Empty[color](), b)
		assert.EqualValues(t, render(d), render(b))
	})

	t.Run("EmptyRightIsSkipped", func(t *testing.T) {
		a := ribbon.Text[color]("a")
		d := ribbon.AppendFlex(a, ribbon.Empty[color]())
		assert.EqualValues(t, render(d), render(a))
	})
}

func TestFoldWithDropsEmptyElements(t *testing.T) {
	xs := []ribbon.Doc[color]{
		ribbon.Text[color]("a"),
		ribbon.Empty[color](),
		ribbon.Text[color]("b"),
		ribbon.Empty[color](),
	}
	d := ribbon.Lines(xs)
	assert.EqualValues(t, render(d), "a\nb")
}

func TestFoldWithAllEmptyYieldsEmpty(t *testing.T) {
	xs := []ribbon.Doc[color]{ribbon.Empty[color](), ribbon.Empty[color]()}
	d := ribbon.Lines(xs)
	assert.EqualValues(t, render(d), "")
}

func TestLines(t *testing.T) {
	xs := []ribbon.Doc[color]{
		ribbon.Text[color]("a"),
		ribbon.Text[color]("b"),
		ribbon.Text[color]("c"),
	}
	d := ribbon.Lines(xs)
	assert.EqualValues(t, render(d), "a\nb\nc")
}

func TestWords(t *testing.T) {
	xs := []ribbon.Doc[color]{
		ribbon.Text[color]("a"),
		ribbon.Text[color]("b"),
		ribbon.Text[color]("c"),
	}
	d := ribbon.Words(xs)
	assert.EqualValues(t, render(d), "a b c")
}

// Paragraph chains AppendFlex pairs right-nested, so each separator's flex
// group holds every word after it. A flex group reached while another one is
// speculating gets no speculation frame of its own, so a separator renders
// as a space only when all the remaining words fit on the current line.
// Here neither " two three" after "one" nor " three" after "two" fits in 7
// columns, so both separators break, even though "one two" alone would fit.
func TestParagraphCascadesToHardBreaksWhenAnyWordOverflows(t *testing.T) {
	xs := []ribbon.Doc[color]{
		ribbon.Text[color]("one"),
		ribbon.Text[color]("two"),
		ribbon.Text[color]("three"),
	}
	d := ribbon.Paragraph(xs)

	opts := ribbon.TwoSpaces()
	opts.PageWidth = 7
	got := ribbon.Print(ribbon.PlainText[color](), opts, d)
	assert.EqualValues(t, got, "one\ntwo\nthree")
}

func TestParagraphFitsOnOneLineWhenWideEnough(t *testing.T) {
	xs := []ribbon.Doc[color]{
		ribbon.Text[color]("one"),
		ribbon.Text[color]("two"),
		ribbon.Text[color]("three"),
	}
	d := ribbon.Paragraph(xs)

	opts := ribbon.TwoSpaces()
	opts.PageWidth = 80
	got := ribbon.Print(ribbon.PlainText[color](), opts, d)
	assert.EqualValues(t, got, "one two three")
}

func TestTextParagraphCollapsesWhitespace(t *testing.T) {
	d := ribbon.TextParagraph[color]("  foo   bar\nbaz  ")
	assert.EqualValues(t, render(d), "foo bar baz")
}

func TestTextParagraphEmptyInputYieldsEmpty(t *testing.T) {
	d := ribbon.TextParagraph[color]("   \n  ")
	assert.EqualValues(t, render(d), "")
}

func TestEnclose(t *testing.T) {
	d := ribbon.Enclose(ribbon.Text[color]("("), ribbon.Text[color](")"), ribbon.Text[color]("x"))
	assert.EqualValues(t, render(d), "(x)")
}

func TestEncloseEmptyAlt(t *testing.T) {
	o, c := ribbon.Text[color]("("), ribbon.Text[color](")")

	t.Run("NonEmptyIsEnclosed", func(t *testing.T) {
		d := ribbon.EncloseEmptyAlt(o, c, ribbon.Text[color]("none"), ribbon.Text[color]("x"))
		assert.EqualValues(t, render(d), "(x)")
	})

	t.Run("EmptyUsesDefault", func(t *testing.T) {
		d := ribbon.EncloseEmptyAlt(o, c, ribbon.Text[color]("none"), ribbon.Empty[color]())
		assert.EqualValues(t, render(d), "none")
	})
}

func TestSpaceBreak(t *testing.T) {
	t.Run("RendersAsHardBreakOutsideFlexGroup", func(t *testing.T) {
		d := ribbon.SpaceBreak[color]()
		assert.EqualValues(t, render(d), "\n")
	})

	t.Run("RendersAsSpaceInsideCommittedFlexGroup", func(t *testing.T) {
		d := ribbon.FlexGroup(ribbon.Append(ribbon.Text[color]("a"), ribbon.Append(ribbon.SpaceBreak[color](), ribbon.Text[color]("b"))))
		assert.EqualValues(t, render(d), "a b")
	})
}

func TestSoftBreak(t *testing.T) {
	t.Run("RendersAsHardBreakOutsideFlexGroup", func(t *testing.T) {
		d := ribbon.SoftBreak[color]()
		assert.EqualValues(t, render(d), "\n")
	})

	t.Run("RendersAsNothingInsideCommittedFlexGroup", func(t *testing.T) {
		d := ribbon.FlexGroup(ribbon.Append(ribbon.Text[color]("a"), ribbon.Append(ribbon.SoftBreak[color](), ribbon.Text[color]("b"))))
		assert.EqualValues(t, render(d), "ab")
	})
}
