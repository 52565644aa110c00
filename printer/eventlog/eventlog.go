// Package eventlog provides a [ribbon.Printer] that records every layout
// callback as a JSON event instead of flattening it into text, useful for
// driving a separate renderer (a terminal UI, a diffing test harness) off
// the same layout decisions the text printers make.
package eventlog

import (
	"encoding/json"
	"fmt"

	"github.com/inkwell/ribbon"
)

// Kind identifies the callback that produced an [Event].
type Kind string

const (
	KindText            Kind = "text"
	KindIndent          Kind = "indent"
	KindBreak           Kind = "break"
	KindEnterAnnotation Kind = "enter_annotation"
	KindLeaveAnnotation Kind = "leave_annotation"
)

// Event is one recorded layout callback. The buffer type New works with is
// []Event[A]; it grows append-only, so branching a [ribbon.Buffer] by
// copying the slice header is safe even though flex-group speculation may
// discard the branch wholesale.
type Event[A any] struct {
	Kind       Kind   `json:"kind"`
	Length     int    `json:"length,omitempty"`
	Text       string `json:"text,omitempty"`
	Annotation A      `json:"annotation,omitempty"`
}

// New returns a printer whose buffer is an []Event[A] and whose result is
// that log marshaled to JSON.
func New[A any]() ribbon.Printer[[]Event[A], A, string] {
	return ribbon.Printer[[]Event[A], A, string]{
		EmptyBuffer: nil,
		WriteText: func(length int, s string, b []Event[A]) []Event[A] {
			return append(b, Event[A]{Kind: KindText, Length: length, Text: s})
		},
		WriteIndent: func(width int, s string, b []Event[A]) []Event[A] {
			return append(b, Event[A]{Kind: KindIndent, Length: width, Text: s})
		},
		WriteBreak: func(b []Event[A]) []Event[A] {
			return append(b, Event[A]{Kind: KindBreak})
		},
		EnterAnnotation: func(ann A, _ []A, b []Event[A]) []Event[A] {
			return append(b, Event[A]{Kind: KindEnterAnnotation, Annotation: ann})
		},
		LeaveAnnotation: func(ann A, _ []A, b []Event[A]) []Event[A] {
			return append(b, Event[A]{Kind: KindLeaveAnnotation, Annotation: ann})
		},
		FlushBuffer: func(b []Event[A]) string {
			out, err := json.Marshal(b)
			if err != nil {
				return fmt.Sprintf(`{"error":%q}`, err.Error())
			}
			return string(out)
		},
	}
}
