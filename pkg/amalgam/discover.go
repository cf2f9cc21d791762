// File: pkg/amalgam/discover.go
package amalgam

import (
	"errors"
	"io/fs"
	"iter"
	"strings"
)

// Discover lazily walks root inside fsys and yields the slash-separated path
// of every regular file whose name ends with suffix. A missing root yields
// nothing. Any other walk error is yielded once and ends the sequence.
func Discover(fsys fs.FS, root, suffix string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipAll
				}
				return err
			}
			if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
				return nil
			}
			if !yield(path, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var paths []string
	for path, err := range seq {
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
