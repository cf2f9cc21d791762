package amalgam

import (
	"runtime"
	"strings"
)

// File boundary markers written around every block.
const (
	StartOfFile = "// START OF FILE"
	EndOfFile   = "// END OF FILE"
)

const (
	includeDirective = "#include"
	pragmaOnce       = "#pragma once"
)

// LineSeparator is the platform line separator used in the output.
var LineSeparator = lineSeparatorFor(runtime.GOOS)

func lineSeparatorFor(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// LineMatcher reports whether a line should be treated as a self-include.
type LineMatcher func(line string) bool

// PrefixMatcher returns a LineMatcher that accepts include lines mentioning
// any of the given prefixes. This is a textual check, not include resolution.
func PrefixMatcher(prefixes ...string) LineMatcher {
	prefixes = append([]string(nil), prefixes...)
	return func(line string) bool {
		if !strings.Contains(line, includeDirective) {
			return false
		}
		for _, prefix := range prefixes {
			if prefix != "" && strings.Contains(line, prefix) {
				return true
			}
		}
		return false
	}
}

// StripDirectives drops self-include and pragma-once lines from text and
// wraps the remainder in StartOfFile/EndOfFile markers joined with
// LineSeparator. A nil isSelfInclude keeps every include.
func StripDirectives(text string, isSelfInclude LineMatcher) string {
	lines := []string{StartOfFile}
	for _, line := range splitLines(text) {
		if strings.Contains(line, pragmaOnce) {
			continue
		}
		if isSelfInclude != nil && isSelfInclude(line) {
			continue
		}
		lines = append(lines, line)
	}
	lines = append(lines, EndOfFile)
	return strings.Join(lines, LineSeparator)
}

// splitLines splits on \n, \r\n and \r. A trailing terminator does not
// produce an empty last line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
