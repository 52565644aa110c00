package ribbon

// PlainText returns the built-in plain-text printer: a buffer that is a
// growable string, with no-op annotation handling (annotations never affect
// layout, and carry no visual representation here). A is the
// annotation type the caller's Doc trees use; PlainText ignores its value
// entirely, so it works for any A.
func PlainText[A any]() Printer[string, A, string] {
	return Printer[string, A, string]{
		EmptyBuffer: "",
		WriteText: func(_ int, s string, b string) string {
			return b + s
		},
		WriteIndent: func(_ int, s string, b string) string {
			return b + s
		},
		WriteBreak: func(b string) string {
			return b + "\n"
		},
		EnterAnnotation: func(_ A, _ []A, b string) string {
			return b
		},
		LeaveAnnotation: func(_ A, _ []A, b string) string {
			return b
		},
		FlushBuffer: func(b string) string {
			return b
		},
	}
}

// TwoSpaces is a PrintOptions preset: two-space indentation, 80-column
// page width, full ribbon.
func TwoSpaces() PrintOptions {
	return PrintOptions{
		PageWidth:   80,
		RibbonRatio: 1.0,
		IndentUnit:  "  ",
		IndentWidth: 2,
	}
}

// FourSpaces is a PrintOptions preset: four-space indentation, 120-column
// page width, full ribbon.
func FourSpaces() PrintOptions {
	return PrintOptions{
		PageWidth:   120,
		RibbonRatio: 1.0,
		IndentUnit:  "    ",
		IndentWidth: 4,
	}
}

// Tabs is a PrintOptions preset: tab indentation assumed 4 columns wide,
// 120-column page width, full ribbon.
func Tabs() PrintOptions {
	return PrintOptions{
		PageWidth:   120,
		RibbonRatio: 1.0,
		IndentUnit:  "\t",
		IndentWidth: 4,
	}
}
