// Package testhelper holds helpers shared by package tests.
package testhelper

import (
	"regexp"
	"strings"
	"testing"
)

var (
	leadingIndent = regexp.MustCompile(`^[ \t]*`)
	ansiSequence  = regexp.MustCompile(`\x1b\[[0-9;]*m`)
)

// TrimIndent turns an indented raw string literal into golden output. The first
// line must be empty; the indentation of the second line is removed from every
// line, and a final whitespace-only line becomes the trailing newline.
func TrimIndent(t *testing.T, src string) string {
	t.Helper()

	lines := strings.Split(src, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "" {
		t.Fatalf("TrimIndent: source must start with a newline")
	}

	lines = lines[1:]
	indent := leadingIndent.FindString(lines[0])

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}

	if last := len(lines) - 1; strings.TrimSpace(lines[last]) == "" {
		lines[last] = ""
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes SGR color sequences.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}
