package spellcheck

import (
	"bufio"
	"strconv"
	"strings"
)

// stripDictComment drops a line that is a de-facto TAB-prefixed comment.
func stripDictComment(line string) (string, bool) {
	if strings.HasPrefix(line, "\t") {
		return "", true
	}
	return line, false
}

// expandDictionary parses the word-list blob and populates table and
// compound buckets: one pass tokenizes and classifies each line, deriving
// surface forms immediately via applyRule as each line's flag codes are
// resolved against the rule tables.
func expandDictionary(blob string, scheme FlagScheme, settings map[string]string, rules *ruleSet, maxDepth int, table *lookupTable, bucketKeys map[Flag]bool, buckets map[Flag][]string) error {
	needAffix, hasNeedAffix := settingFlag(settings, "NEEDAFFIX")

	sc := bufio.NewScanner(strings.NewReader(blob))
	lineNo := 0
	sawCount := false
	for sc.Scan() {
		lineNo++
		raw := sc.Text()
		if _, isComment := stripDictComment(raw); isComment {
			continue
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !sawCount {
			// an optional leading word-count line; advisory only, never enforced
			if _, err := strconv.Atoi(line); err == nil {
				sawCount = true
				continue
			}
			sawCount = true
		}

		word, codeString, hasCodes := cutFirstSlash(line)
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		if !hasCodes {
			table.insert(word, nil)
			continue
		}

		codes, err := tokenizeFlags(codeString, scheme)
		if err != nil {
			return parseErrf("dictionary", lineNo, raw, "malformed flag codes %q: %v", codeString, err)
		}

		if !hasNeedAffix || !FlagSet(codes).Has(needAffix) {
			table.insert(word, FlagSet(codes))
		}

		for idx, c := range codes {
			if rule, ok := rules.lookup(c); ok {
				derived := applyRule(word, rule, rules, maxDepth)
				for _, d := range derived {
					table.insert(d, nil)
				}
				if rule.Combineable {
					for _, c2 := range codes[idx+1:] {
						if rule2, ok2 := rules.lookup(c2); ok2 && rule2.Combineable && rule2.Kind != rule.Kind {
							for _, combined := range combine(word, rule, rule2, rules, maxDepth) {
								table.insert(combined, nil)
							}
						}
					}
				}
			}
			if bucketKeys[c] {
				buckets[c] = append(buckets[c], word)
			}
		}
	}
	return sc.Err()
}

// cutFirstSlash splits line into word and code-string at the first '/'.
func cutFirstSlash(line string) (word, codes string, hasCodes bool) {
	idx := strings.IndexByte(line, '/')
	if idx < 0 {
		return line, "", false
	}
	return line[:idx], line[idx+1:], true
}

// settingFlag resolves a named setting to a Flag token, reporting whether
// it was configured at all. An unconfigured name fails open wherever it
// gates a policy — the caller never treats absence as a wildcard match.
func settingFlag(settings map[string]string, name string) (Flag, bool) {
	v, ok := settings[name]
	if !ok || v == "" {
		return "", false
	}
	return Flag(v), true
}
