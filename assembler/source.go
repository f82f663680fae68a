package assembler

import (
	"strings"
	"unicode/utf8"
)

// LineKind classifies a source line.
type LineKind int

const (
	// LineComment covers comments, blank lines and lines too short to mean anything.
	LineComment LineKind = iota
	// LineLabel is a ":name" label definition.
	LineLabel
	// LineInstruction is a real instruction; it produces exactly one word.
	LineInstruction
)

// SourceLine is one line of the source snapshot.
type SourceLine struct {
	Text   string // trimmed text
	Number int    // 1-based
	Kind   LineKind
}

// Label returns the label name of a label line.
func (l SourceLine) Label() string {
	return strings.TrimPrefix(l.Text, ":")
}

// Classify returns the kind of a raw source line.
func Classify(raw string) LineKind {
	line := strings.TrimSpace(raw)
	switch {
	case utf8.RuneCountInString(line) < 2, strings.HasPrefix(line, "#"):
		return LineComment
	case strings.HasPrefix(line, ":"):
		return LineLabel
	}
	return LineInstruction
}

// Split breaks source text into classified lines. Both passes run over
// the returned slice, so the source is only read once.
func Split(src string) []SourceLine {
	raw := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")
	// A trailing newline does not start another line.
	if len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	lines := make([]SourceLine, len(raw))
	for i, s := range raw {
		lines[i] = SourceLine{
			Text:   strings.TrimSpace(s),
			Number: i + 1,
			Kind:   Classify(s),
		}
	}
	return lines
}
