package amalgam

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// lines splits StripDirectives output back into lines.
func lines(s string) []string {
	return strings.Split(s, LineSeparator)
}

func TestStripDirectives(t *testing.T) {
	selfInclude := PrefixMatcher("cpputils/")

	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  []string{StartOfFile, EndOfFile},
		},
		{
			name:  "single newline keeps one empty line",
			input: "\n",
			want:  []string{StartOfFile, "", EndOfFile},
		},
		{
			name:  "drops pragma once and self includes",
			input: "#pragma once\n\n#include <cpputils/common.hh>\n#include <vector>\nint x;\n",
			want:  []string{StartOfFile, "", "#include <vector>", "int x;", EndOfFile},
		},
		{
			name:  "quoted self include",
			input: "#include \"cpputils/meta.hh\"\nint y;",
			want:  []string{StartOfFile, "int y;", EndOfFile},
		},
		{
			name:  "prefix without include directive is kept",
			input: "// see cpputils/debug.hh\n",
			want:  []string{StartOfFile, "// see cpputils/debug.hh", EndOfFile},
		},
		{
			name:  "crlf and cr line endings",
			input: "int a;\r\n#pragma once\rint b;\r\n",
			want:  []string{StartOfFile, "int a;", "int b;", EndOfFile},
		},
		{
			name:  "indented pragma is still dropped",
			input: "  #pragma once\nint c;",
			want:  []string{StartOfFile, "int c;", EndOfFile},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := lines(StripDirectives(tc.input, selfInclude))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("StripDirectives() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStripDirectivesSentinels(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"#pragma once",
		"#include <cpputils/common.hh>",
		"int main() { return 0; }\n",
		StartOfFile + "\n" + EndOfFile,
	}
	for _, input := range inputs {
		out := StripDirectives(input, PrefixMatcher("cpputils/"))
		assert.True(t, strings.HasPrefix(out, StartOfFile+LineSeparator), "input %q", input)
		assert.True(t, strings.HasSuffix(out, LineSeparator+EndOfFile), "input %q", input)
	}
}

func TestStripDirectivesNilMatcherKeepsIncludes(t *testing.T) {
	got := lines(StripDirectives("#pragma once\n#include <cpputils/common.hh>", nil))
	assert.Equal(t, []string{StartOfFile, "#include <cpputils/common.hh>", EndOfFile}, got)
}

func TestPrefixMatcher(t *testing.T) {
	match := PrefixMatcher("lib/", "include/")

	assert.True(t, match(`#include "lib/a.hh"`))
	assert.True(t, match(`#include "include/a.hh"`))
	assert.False(t, match(`#  include <lib/b.hh>`), "directive must be spelled #include")
	assert.False(t, match(`#include <vector>`))
	assert.False(t, match(`// lib/a.hh`))
	assert.False(t, PrefixMatcher()(`#include "lib/a.hh"`))
	assert.False(t, PrefixMatcher("")(`#include <vector>`))
}

func TestLineSeparatorFor(t *testing.T) {
	assert.Equal(t, "\r\n", lineSeparatorFor("windows"))
	assert.Equal(t, "\n", lineSeparatorFor("linux"))
	assert.Equal(t, "\n", lineSeparatorFor("darwin"))
}
