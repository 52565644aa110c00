// Package ansi provides a [ribbon.Printer] that renders [ribbon.Annotate]
// regions as raw ANSI SGR escape sequences, for terminal output.
package ansi

import (
	"strings"

	"github.com/inkwell/ribbon"
)

// Style is the annotation type this printer understands. Doc trees printed
// with [New] must use Style as their annotation type parameter.
type Style int

const (
	Bold Style = iota
	Dim
	Italic
	Underline
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
)

const reset = "\033[0m"

var codes = map[Style]string{
	Bold:      "\033[1m",
	Dim:       "\033[2m",
	Italic:    "\033[3m",
	Underline: "\033[4m",
	Red:       "\033[31m",
	Green:     "\033[32m",
	Yellow:    "\033[33m",
	Blue:      "\033[34m",
	Magenta:   "\033[35m",
	Cyan:      "\033[36m",
}

func code(s Style) string {
	if c, ok := codes[s]; ok {
		return c
	}
	return ""
}

// New returns a printer that wraps annotated regions in ANSI escapes. Since
// terminals have no notion of a style stack, closing an annotation resets
// and replays every style still open around it, outermost first.
func New() ribbon.Printer[string, Style, string] {
	return ribbon.Printer[string, Style, string]{
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
		EnterAnnotation: func(ann Style, _ []Style, b string) string {
			return b + code(ann)
		},
		LeaveAnnotation: func(_ Style, remaining []Style, b string) string {
			b += reset
			for i := len(remaining) - 1; i >= 0; i-- {
				b += code(remaining[i])
			}
			return b
		},
		FlushBuffer: func(b string) string {
			return b
		},
	}
}

// Strip removes any ANSI SGR escape sequences from s, used by tests and by
// callers rendering to a non-color sink after deciding against color.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			i = j
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
