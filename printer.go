package ribbon

// Printer is a pluggable output sink: a record of callbacks that the layout
// interpreter drives while walking a [Doc]. B is the buffer/accumulator
// type, A the annotation type, R the final result type.
//
// Callbacks must be pure with respect to the buffer value they are given:
// they may be invoked on a buffer that is later discarded wholesale when a
// flex-group speculation aborts (see the package's FlexGroup semantics), so
// any external side effect a callback performs would be incorrectly
// duplicated or left dangling. Equivalent buffer values in must produce
// equivalent buffer values out.
//
// B should be cheap and safe to copy by value (e.g. a string or a slice used
// append-only), since [Buffer] branches by copying the active buffer value.
type Printer[B, A, R any] struct {
	// EmptyBuffer seeds a fresh Buffer at the start of Print.
	EmptyBuffer B

	// WriteText appends literal text of the given character length.
	WriteText func(length int, s string, b B) B

	// WriteIndent appends the indentation prefix for a newly started line.
	WriteIndent func(width int, s string, b B) B

	// WriteBreak appends a line terminator.
	WriteBreak func(b B) B

	// EnterAnnotation is called as an annotated region opens. outer is the
	// stack of annotations surrounding this one, outermost last.
	EnterAnnotation func(ann A, outer []A, b B) B

	// LeaveAnnotation is called as an annotated region closes. remaining is
	// the stack of annotations that stay open around this one, outermost
	// last.
	LeaveAnnotation func(ann A, remaining []A, b B) B

	// FlushBuffer converts the final buffer value into the caller's result
	// type.
	FlushBuffer func(b B) R
}

// PrintOptions configures [Print].
type PrintOptions struct {
	// PageWidth is the target maximum number of columns per line.
	PageWidth int

	// RibbonRatio is clamped to [0, 1]; it is the fraction of
	// (PageWidth - indent) usable before a flex-group attempt overflows.
	RibbonRatio float64

	// IndentUnit is the string prepended per indentation level.
	IndentUnit string

	// IndentWidth is the assumed column width of one IndentUnit.
	IndentWidth int
}
