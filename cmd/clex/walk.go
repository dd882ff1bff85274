package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// entry is one step of a traversal: a directory to announce or a source to lex
type entry struct {
	path string
	dir  bool
}

// stats counts what a run processed
type stats struct {
	dirs  int
	files int
}

// hasSourceExt reports whether path carries one of the configured extensions
func (a *app) hasSourceExt(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	for _, e := range a.cfg.Ext {
		if ext == e {
			return true
		}
	}
	return false
}

// plan lists the directories and sources under root in lexical order,
// each directory before its contents
func (a *app) plan(root string) ([]entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &CLIError{
				Type:    errInput,
				Message: fmt.Sprintf("no such file or directory: %s", root),
				Hint:    "Pass a C source file or a directory containing C sources",
			}
		}
		return nil, fmt.Errorf("cannot stat %s: %w", root, err)
	}

	if !info.IsDir() {
		if !a.hasSourceExt(root) {
			_, _ = fmt.Fprintf(a.stderr, "Not a C source: %s\n", root)
			return nil, nil
		}
		return []entry{{path: root}}, nil
	}

	var entries []entry
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		switch {
		case d.IsDir():
			entries = append(entries, entry{path: path, dir: true})
		case d.Type().IsRegular() && a.hasSourceExt(path):
			entries = append(entries, entry{path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", root, err)
	}
	return entries, nil
}

// runLex lexes everything under root, files in parallel, and prints the
// reports in traversal order
func (a *app) runLex(ctx context.Context, root string) error {
	entries, err := a.plan(root)
	if err != nil {
		return err
	}

	reports := make([]*fileReport, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Jobs)
	for i, e := range entries {
		if e.dir {
			continue
		}
		g.Go(func() error {
			r, err := a.lexFile(gctx, e.path)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var st stats
	for i, e := range entries {
		if e.dir {
			if a.cfg.PrintDirs {
				_, _ = fmt.Fprintf(a.stdout, "%s %s\n", Colorize("**", ColorBlue, a.useColor), e.path)
			}
			st.dirs++
			continue
		}
		a.flush(reports[i])
		st.files++
	}

	_, _ = fmt.Fprintf(a.stdout, "** processed %d dirs and %d files\n", st.dirs, st.files)

	if a.cfg.Watch {
		return a.watch(ctx, root)
	}
	return nil
}

// lexFile reads and reports one source
func (a *app) lexFile(ctx context.Context, path string) (*fileReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	r := a.report(path, string(data))
	a.log.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Int("lexemes", r.lexemes).
		Int("unknown", r.unknown).
		Int("failed", r.failed).
		Msg("lexed")
	return r, nil
}

// flush copies a buffered report to the real streams
func (a *app) flush(r *fileReport) {
	_, _ = a.stdout.Write(r.out.Bytes())
	_, _ = a.stderr.Write(r.err.Bytes())
}

// fileReport buffers the output of one source so parallel lexing keeps a
// deterministic order
type fileReport struct {
	out     bytes.Buffer
	err     bytes.Buffer
	lexemes int
	unknown int
	failed  int
}
