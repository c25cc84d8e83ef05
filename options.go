package spellcheck

import "strings"

const (
	defaultAlphabet         = "abcdefghijklmnopqrstuvwxyz"
	defaultMaxRecursion     = 8
	defaultSuggestionsLimit = 5
)

// config collects construction-time overrides applied through Option
// values. It is read-only once New returns.
type config struct {
	overrides map[string]string
	alphabet  string
	maxDepth  int
	toLower   func(string) string
	toUpper   func(string) string
}

// Option configures a Checker at construction time.
type Option func(*config)

// WithSetting supplies a named-flag override. Overrides are merged into
// settings parsed from the affix blob; values found in the affix blob
// itself always win.
func WithSetting(name, value string) Option {
	return func(c *config) {
		c.overrides[name] = value
	}
}

// WithAlphabet overrides the suggestion engine's fixed alphabet, which
// otherwise defaults to lowercase a-z.
func WithAlphabet(letters string) Option {
	return func(c *config) {
		if letters != "" {
			c.alphabet = letters
		}
	}
}

// WithMaxRecursionDepth overrides the continuation-class recursion depth
// cap used by the rule applier, which otherwise defaults to 8 — a guard
// against malformed or cyclical continuation classes.
func WithMaxRecursionDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithCaseFolder overrides the locale-insensitive upper/lower folding used
// by capitalization policy, letting a caller plug in a locale-aware folder
// without the core importing one directly.
func WithCaseFolder(toLower, toUpper func(string) string) Option {
	return func(c *config) {
		if toLower != nil {
			c.toLower = toLower
		}
		if toUpper != nil {
			c.toUpper = toUpper
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		overrides: make(map[string]string),
		alphabet:  defaultAlphabet,
		maxDepth:  defaultMaxRecursion,
		toLower:   strings.ToLower,
		toUpper:   strings.ToUpper,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
