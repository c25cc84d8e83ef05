package spellcheck

import (
	"regexp"
	"strings"
)

// compoundMetaChars are regex metacharacters that must be preserved
// verbatim in a compound-rule string while its flag-letter characters
// are substituted with word alternations.
const compoundMetaChars = "*+?()|[]{}^$."

// compoundRuleBucketKeys collects every flag token that appears as a
// literal (non-metacharacter) character across all raw compound-rule
// strings, plus ONLYINCOMPOUND when configured. These are the keys that
// need a word bucket built during dictionary expansion.
func compoundRuleBucketKeys(ruleStrings []string, settings map[string]string) map[Flag]bool {
	keys := make(map[Flag]bool)
	for _, rs := range ruleStrings {
		for _, r := range rs {
			if strings.ContainsRune(compoundMetaChars, r) {
				continue
			}
			keys[Flag(string(r))] = true
		}
	}
	if f, ok := settingFlag(settings, "ONLYINCOMPOUND"); ok {
		keys[f] = true
	}
	return keys
}

// compileCompoundRules substitutes each flag-letter character in each raw
// rule string with an alternation over its bucket's words, preserving
// regex metacharacters, and compiles the result case-insensitively.
// A rule whose substitution would need an empty bucket is dropped: with
// no candidate words for one of its letters, it can never match anything.
func compileCompoundRules(ruleStrings []string, buckets map[Flag][]string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, rs := range ruleStrings {
		pattern, ok := substituteCompoundRule(rs, buckets)
		if !ok {
			continue
		}
		re, err := regexp.Compile("(?i)^(?:" + pattern + ")$")
		if err != nil {
			return nil, parseErrf("affix", 0, rs, "invalid compound rule pattern: %v", err)
		}
		out = append(out, re)
	}
	return out, nil
}

func substituteCompoundRule(rs string, buckets map[Flag][]string) (string, bool) {
	var b strings.Builder
	for _, r := range rs {
		if strings.ContainsRune(compoundMetaChars, r) {
			b.WriteRune(r)
			continue
		}
		words := buckets[Flag(string(r))]
		if len(words) == 0 {
			return "", false
		}
		b.WriteByte('(')
		for i, w := range words {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(regexp.QuoteMeta(w))
		}
		b.WriteByte(')')
	}
	return b.String(), true
}

// compoundMatches reports whether w satisfies any of the compiled
// compound patterns, matched against the entire input string.
func compoundMatches(patterns []*regexp.Regexp, w string) bool {
	for _, p := range patterns {
		if p.MatchString(w) {
			return true
		}
	}
	return false
}
