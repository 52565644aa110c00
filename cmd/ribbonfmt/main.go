// Command ribbonfmt reflows plain-text paragraphs through the ribbon layout
// engine.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/inkwell/ribbon"
	"github.com/inkwell/ribbon/format"
	"github.com/inkwell/ribbon/internal/version"
	"github.com/inkwell/ribbon/watch"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: ribbonfmt <command> [args]\ncommands: render, watch, version")
	}

	if args[1] == "-h" || args[1] == "--help" || args[1] == "help" {
		usage(wErr)
		return nil
	}

	switch args[1] {
	case "render":
		return runRender(args[2:], r, w, wErr)
	case "watch":
		return runWatch(args[2:], w, wErr)
	case "version":
		_, _ = fmt.Fprintln(w, version.Version())
		return nil
	case "":
		return errors.New("no command specified")
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "ribbonfmt reflows plain-text paragraphs through the ribbon layout engine")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "usage: ribbonfmt <command> [args]")
	_, _ = fmt.Fprintln(w, "commands: render, watch, version")
}

// presetFlag binds -indent to one of ribbon's preset [ribbon.PrintOptions].
type presetFlag struct {
	name string
}

func (p *presetFlag) String() string { return p.name }

func (p *presetFlag) Set(s string) error {
	switch s {
	case "two-spaces", "four-spaces", "tabs":
		p.name = s
		return nil
	default:
		return fmt.Errorf("unknown indent style %q, want one of two-spaces, four-spaces, tabs", s)
	}
}

func (p *presetFlag) options() ribbon.PrintOptions {
	switch p.name {
	case "four-spaces":
		return ribbon.FourSpaces()
	case "tabs":
		return ribbon.Tabs()
	default:
		return ribbon.TwoSpaces()
	}
}

func runRender(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet("render", flag.ExitOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: ribbonfmt render [flags] [file]")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	indent := &presetFlag{name: "two-spaces"}
	flags.Var(indent, "indent", "indentation style: two-spaces, four-spaces, or tabs")
	width := flags.Int("width", 0, "override the preset's page width (0 keeps the preset default)")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() > 0 {
		f, err := os.Open(flags.Arg(0))
		if err != nil {
			return fmt.Errorf("error opening file: %v", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	opts := indent.options()
	if *width > 0 {
		opts.PageWidth = *width
	}

	return format.Reader(r, w, ribbon.PlainText[struct{}](), opts, parseParagraphs)
}

func parseParagraphs(src []byte) (ribbon.Doc[struct{}], error) {
	paragraphs := strings.Split(string(src), "\n\n")
	docs := make([]ribbon.Doc[struct{}], len(paragraphs))
	for i, p := range paragraphs {
		docs[i] = ribbon.TextParagraph[struct{}](p)
	}
	sep := ribbon.Append(ribbon.Break[struct{}](), ribbon.Break[struct{}]())
	return ribbon.FoldWith(func(a, b ribbon.Doc[struct{}]) ribbon.Doc[struct{}] {
		return ribbon.Append(a, ribbon.Append(sep, b))
	}, docs), nil
}

func runWatch(args []string, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet("watch", flag.ExitOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: ribbonfmt watch [flags] <file>")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	port := flags.String("port", "8080", "HTTP server port")
	debug := flags.Bool("debug", false, "enable debug logging")
	indent := &presetFlag{name: "two-spaces"}
	flags.Var(indent, "indent", "indentation style: two-spaces, four-spaces, or tabs")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errors.New("usage: ribbonfmt watch [flags] <file>")
	}

	opts := indent.options()
	wa, err := watch.New(watch.Config{
		File:   flags.Arg(0),
		Port:   *port,
		Debug:  *debug,
		Stdout: w,
		Stderr: wErr,
		Render: func(src []byte) (string, error) {
			d, err := parseParagraphs(src)
			if err != nil {
				return "", err
			}
			return ribbon.Print(ribbon.PlainText[struct{}](), opts, d), nil
		},
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return wa.Watch(ctx)
}
