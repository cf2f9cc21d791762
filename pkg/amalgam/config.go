// File: pkg/amalgam/config.go
package amalgam

// Defaults for the cpputils library layout.
const (
	DefaultMarker       = ".amalgam-root"   // Marker file expected in the library root
	DefaultIncludeDir   = "include"         // Header tree, relative to the work dir
	DefaultSourceDir    = "src"             // Source tree, relative to the work dir
	DefaultHeaderSuffix = ".hh"             // Header file suffix
	DefaultSourceSuffix = ".cc"             // Source file suffix
	DefaultOutput       = "cpputils.gen.hh" // Amalgamated output, relative to the work dir
)

// defaultIncludeOrder is the hand-maintained topological order of the
// cpputils headers. It cannot be derived from file names; Validate only
// guards it against going stale.
var defaultIncludeOrder = []string{
	"cpputils/common.hh",
	"cpputils/meta.hh",
	"cpputils/itertools.hh",
	"cpputils/string.hh",
	"cpputils/debug.hh",
	"cpputils/linalg.hh",
	"cpputils/reflect.hh",
}

// DefaultIncludeOrder returns a copy of the built-in header order.
func DefaultIncludeOrder() []string {
	return append([]string(nil), defaultIncludeOrder...)
}

// DefaultSelfIncludePrefixes returns the path prefixes that mark an include
// directive as referring to the library itself.
func DefaultSelfIncludePrefixes() []string {
	return []string{"cpputils/"}
}

// Config holds the options for one amalgamation run.
type Config struct {
	WorkDir             string   // Library root; all other paths are relative to it.
	Marker              string   // File that must exist in WorkDir before anything runs.
	IncludeDir          string   // Directory scanned for headers.
	SourceDir           string   // Directory scanned for sources.
	HeaderSuffix        string   // Suffix identifying header files.
	SourceSuffix        string   // Suffix identifying source files.
	Output              string   // Output file name.
	IncludeOrder        []string // Declared header order, relative to IncludeDir.
	SelfIncludePrefixes []string // Prefixes that make an #include line a self-include.
}

// DefaultConfig returns the built-in configuration rooted at workDir.
func DefaultConfig(workDir string) Config {
	return Config{
		WorkDir:             workDir,
		Marker:              DefaultMarker,
		IncludeDir:          DefaultIncludeDir,
		SourceDir:           DefaultSourceDir,
		HeaderSuffix:        DefaultHeaderSuffix,
		SourceSuffix:        DefaultSourceSuffix,
		Output:              DefaultOutput,
		IncludeOrder:        DefaultIncludeOrder(),
		SelfIncludePrefixes: DefaultSelfIncludePrefixes(),
	}
}

// Block is one processed input file.
type Block struct {
	Path    string // Slash-separated path relative to the work dir.
	Content string // Stripped content wrapped in file markers.
}
