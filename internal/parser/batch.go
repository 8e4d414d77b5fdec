package parser

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
)

var log = commonlog.GetLogger("cidl.parser")

// Source is a header read from disk together with its parse result
type Source struct {
	Path   string
	Text   string
	Result *ParseResult
}

// ErrNoSources is returned by Discover when root holds no matching file.
var ErrNoSources = errors.New("no source files found")

// Discover lists the files under root whose extension is in exts, sorted
// lexically. Assembly depends on this order.
func Discover(root string, exts []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && slices.Contains(exts, filepath.Ext(path)) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSources, root)
	}
	slices.Sort(paths)
	return paths, nil
}

// ParseFiles reads and parses paths with at most jobs files in flight.
// Results keep the order of paths. Skipped declarations are logged, only
// unreadable files fail the batch.
func ParseFiles(ctx context.Context, paths []string, jobs int) ([]*Source, error) {
	sources := make([]*Source, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			sources[i] = &Source{
				Path:   path,
				Text:   string(text),
				Result: ParseSource(path, string(text)),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, src := range sources {
		for _, e := range src.Result.ScanErrors {
			log.Warning(e.Error())
		}
		for _, e := range src.Result.ParseErrors {
			log.Warning(e.Error())
		}
	}
	return sources, nil
}
