// Package output writes generated artifacts to disk.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/barisgit/compgen/internal/component"
)

// Options controls how artifacts are written
type Options struct {
	Force  bool // overwrite existing files
	DryRun bool // resolve paths without touching the filesystem
}

// ExistsError reports files that would be overwritten
type ExistsError struct {
	Paths []string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("%d file(s) already exist, use --force to overwrite: %v", len(e.Paths), e.Paths)
}

// Write stores every artifact under dir and returns the paths in canonical
// artifact order. Existing files are detected before anything is written, so
// a refused write leaves the directory untouched. Artifacts are written to
// temporary files first and renamed into place once all of them succeeded; a
// failed write removes the files this call created.
func Write(ctx context.Context, dir string, artifacts component.Artifacts, opts Options) ([]string, error) {
	ordered := artifacts.Ordered()
	paths := make([]string, len(ordered))
	for i, artifact := range ordered {
		paths[i] = filepath.Join(dir, artifact.Filename)
	}

	if opts.DryRun {
		return paths, nil
	}

	existed := make([]bool, len(paths))
	var existing []string
	for i, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existed[i] = true
			existing = append(existing, path)
		}
	}
	if !opts.Force && len(existing) > 0 {
		return nil, &ExistsError{Paths: existing}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	temps := make([]string, len(ordered))
	removeTemps := func() {
		for _, tmp := range temps {
			if tmp != "" {
				os.Remove(tmp)
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, artifact := range ordered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tmp, err := writeTemp(dir, artifact.Filename, artifact.Content)
			temps[i] = tmp
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", paths[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		removeTemps()
		return nil, err
	}

	for i, path := range paths {
		if err := os.Rename(temps[i], path); err != nil {
			removeTemps()
			for j := 0; j < i; j++ {
				if !existed[j] {
					os.Remove(paths[j])
				}
			}
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		temps[i] = ""
	}

	return paths, nil
}

// writeTemp writes content to a hidden temporary file next to its destination
// and returns its path, also on failure once the file exists
func writeTemp(dir, filename, content string) (string, error) {
	f, err := os.CreateTemp(dir, "."+filename+".*.tmp")
	if err != nil {
		return "", err
	}
	name := f.Name()
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return name, err
	}
	if err := f.Close(); err != nil {
		return name, err
	}
	return name, os.Chmod(name, 0644)
}
