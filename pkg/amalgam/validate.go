// File: pkg/amalgam/validate.go
package amalgam

import (
	"path"
	"path/filepath"
	"slices"
)

// Validate checks that the declared include order names exactly the
// discovered headers. Entries of order are relative to includeDir. Both
// sides are cleaned, slash-normalised and sorted before a pairwise
// comparison; the first differing pair is reported as a *MismatchError.
func Validate(discovered, order []string, includeDir string) error {
	got := make([]string, 0, len(discovered))
	for _, p := range discovered {
		got = append(got, normalizePath(p))
	}
	expected := make([]string, 0, len(order))
	for _, p := range order {
		expected = append(expected, normalizePath(path.Join(filepath.ToSlash(includeDir), filepath.ToSlash(p))))
	}
	slices.Sort(got)
	slices.Sort(expected)

	for i := 0; i < max(len(got), len(expected)); i++ {
		e, g := missingPath, missingPath
		if i < len(expected) {
			e = expected[i]
		}
		if i < len(got) {
			g = got[i]
		}
		if e != g {
			return &MismatchError{Expected: e, Got: g}
		}
	}
	return nil
}

// normalizePath returns p in clean, slash-separated form.
func normalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
