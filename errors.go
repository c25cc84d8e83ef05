package spellcheck

import "fmt"

// ParseError reports a structurally unusable line encountered while parsing
// an affix-spec or word-list blob. A ParseError aborts construction; it is
// distinct from a tolerated anomaly, which is merely traced and skipped,
// and from an ordinary query miss, which just means the word isn't known.
type ParseError struct {
	Source string // "affix" or "dictionary"
	Line   int    // 1-based line number, 0 if not line-specific
	Text   string // the offending raw line, if any
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("spellcheck: %s parse error at line %d (%q): %s", e.Source, e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("spellcheck: %s parse error: %s", e.Source, e.Reason)
}

func parseErrf(source string, line int, text string, format string, args ...any) *ParseError {
	return &ParseError{
		Source: source,
		Line:   line,
		Text:   text,
		Reason: fmt.Sprintf(format, args...),
	}
}
