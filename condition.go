package spellcheck

import (
	"regexp"
)

// compileCondition anchors a hunspell-style condition pattern to the
// correct end of the word — start for prefixes, end for suffixes — and
// compiles it. A condition of "." means unconditional and compiles to nil.
func compileCondition(kind AffixKind, cond string) (*regexp.Regexp, error) {
	if cond == "" || cond == "." {
		return nil, nil
	}
	var anchored string
	if kind == KindPrefix {
		anchored = "^(?:" + cond + ")"
	} else {
		anchored = "(?:" + cond + ")$"
	}
	re, err := regexp.Compile(anchored)
	if err != nil {
		return nil, parseErrf("affix", 0, cond, "invalid condition pattern: %v", err)
	}
	return re, nil
}

// conditionMatches reports whether w satisfies cond (nil means
// unconditional, always true).
func conditionMatches(cond *regexp.Regexp, w string) bool {
	if cond == nil {
		return true
	}
	return cond.MatchString(w)
}

// stripLiteral removes the literal strip string from the correct end of w,
// if w actually ends/begins with it. affix entries are only applied once
// their match condition already guarantees the strip is present, but this
// guards a malformed dictionary from panicking on a short word.
func stripLiteral(kind AffixKind, w, strip string) string {
	if strip == "" {
		return w
	}
	if kind == KindPrefix {
		if len(w) >= len(strip) && w[:len(strip)] == strip {
			return w[len(strip):]
		}
		return w
	}
	if len(w) >= len(strip) && w[len(w)-len(strip):] == strip {
		return w[:len(w)-len(strip)]
	}
	return w
}
