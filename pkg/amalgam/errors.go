package amalgam

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage reports that the tool was invoked outside the library root.
	ErrUsage = errors.New("usage error")

	// ErrConfigurationMismatch reports that the declared include order no
	// longer matches the headers on disk.
	ErrConfigurationMismatch = errors.New("include order mismatch")
)

// missingPath stands in for the absent side of a length mismatch.
const missingPath = "<none>"

// UsageError is returned when the marker file is not found in the work dir.
type UsageError struct {
	WorkDir string
	Marker  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s not found in %s: please launch amalgam in the library root", e.Marker, e.WorkDir)
}

func (e *UsageError) Is(target error) bool { return target == ErrUsage }

// MismatchError names the first pair that differs between the declared
// include order and the discovered headers, both sorted.
type MismatchError struct {
	Expected string // From the declared order.
	Got      string // From the filesystem.
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mismatch with include order: %s != %s", e.Expected, e.Got)
}

func (e *MismatchError) Is(target error) bool { return target == ErrConfigurationMismatch }
