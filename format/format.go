// Package format provides file and directory helpers for writing a
// [ribbon.Printer]'s output back to disk atomically.
package format

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio"

	"github.com/inkwell/ribbon"
)

// Reader renders src through p with opts and writes the result to w.
func Reader[B, A any](r io.Reader, w io.Writer, p ribbon.Printer[B, A, string], opts ribbon.PrintOptions, parse func([]byte) (ribbon.Doc[A], error)) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading input: %v", err)
	}
	d, err := parse(src)
	if err != nil {
		return fmt.Errorf("error parsing input: %v", err)
	}
	_, err = io.WriteString(w, ribbon.Print(p, opts, d))
	return err
}

// File renders src through p with opts and writes the result to path
// atomically, preserving path's existing file mode. The write goes through
// a temporary file on the same file system, renamed into place on success, so
// a crash or interrupted write never leaves path truncated or partially
// written.
func File[B, A any](path string, src []byte, p ribbon.Printer[B, A, string], opts ribbon.PrintOptions, parse func([]byte) (ribbon.Doc[A], error)) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %v", err)
	}

	d, err := parse(src)
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	out := ribbon.Print(p, opts, d)

	t, err := renameio.TempFile("", path)
	if err != nil {
		return fmt.Errorf("failed to create temp file for atomic rename: %v", err)
	}
	defer func() { _ = t.Cleanup() }()

	if err := t.Chmod(fi.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set file mode: %v", err)
	}
	if _, err := io.WriteString(t, out); err != nil {
		return fmt.Errorf("failed to write temp file: %v", err)
	}
	if err := t.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to rename temp file: %v", err)
	}
	return nil
}

// Dir formats every file under root matching one of exts in place, in
// directory order, joining every individual file error rather than
// stopping at the first.
func Dir[B, A any](root string, exts []string, p ribbon.Printer[B, A, string], opts ribbon.PrintOptions, parse func([]byte) (ribbon.Doc[A], error)) error {
	matches := func(name string) bool {
		ext := filepath.Ext(name)
		for _, e := range exts {
			if ext == e {
				return true
			}
		}
		return false
	}

	var errs []error
	err := fs.WalkDir(os.DirFS(root), ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !matches(d.Name()) {
			return nil
		}

		file := filepath.Join(root, path)
		src, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("error reading file: %v", err))
			return nil
		}
		if err := File(file, src, p, opts, parse); err != nil {
			errs = append(errs, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}
