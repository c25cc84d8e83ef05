package spellcheck

import "strings"

// CheckExact answers dictionary membership without any capitalization
// fallback, with compound fallback when the word is not itself a key.
func (c *Checker) CheckExact(w string) bool {
	sets := c.table.get(w)
	if sets == nil {
		if c.compoundMinSet && len(w) >= c.compoundMin {
			return compoundMatches(c.compoundPatterns, w)
		}
		return false
	}
	for _, fs := range sets {
		if !c.hasOnlyInCompound || !fs.Has(c.onlyInCompound) {
			return true
		}
	}
	return false
}

// Check answers whether w is a valid word, trying capitalization variants
// when the exact form is not accepted.
func (c *Checker) Check(w string) bool {
	w = strings.TrimSpace(w)
	if w == "" {
		return false
	}
	if c.CheckExact(w) {
		return true
	}

	if w == c.toUpper(w) {
		cap := capitalize(w, c.toLower, c.toUpper)
		if c.hasFlagOn(cap, c.keepCase, c.hasKeepCase) {
			return false
		}
		if c.CheckExact(cap) {
			return true
		}
		// All-caps input also falls back to the fully lower-cased form —
		// real-world dictionaries store common words lowercase, and an
		// all-caps rendering of one should still be recognized; see
		// DESIGN.md for the full rationale.
		low := c.toLower(w)
		if c.hasFlagOn(low, c.keepCase, c.hasKeepCase) {
			return false
		}
		return c.CheckExact(low)
	}

	low := c.toLower(w)
	if low != w {
		if c.hasFlagOn(low, c.keepCase, c.hasKeepCase) {
			return false
		}
		return c.CheckExact(low)
	}

	return false
}

// capitalize returns w with its first character upper-cased and the rest
// lower-cased, using the configured case folder.
func capitalize(w string, toLower, toUpper func(string) string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	first := toUpper(string(runes[0]))
	rest := toLower(string(runes[1:]))
	return first + rest
}

// HasFlag reports whether w carries the configured token for flagName.
// If explicitFlagSet is non-nil it is consulted instead of looking w up;
// otherwise all of w's flag sets are unioned. An unconfigured flagName
// always answers false — it fails open rather than matching everything.
func (c *Checker) HasFlag(w, flagName string, explicitFlagSet FlagSet) bool {
	token, ok := c.flagToken(flagName)
	if !ok {
		return false
	}
	if explicitFlagSet != nil {
		return explicitFlagSet.Has(token)
	}
	return unionAll(c.table.get(w)).Has(token)
}

func (c *Checker) flagToken(flagName string) (Flag, bool) {
	switch flagName {
	case "ONLYINCOMPOUND":
		return c.onlyInCompound, c.hasOnlyInCompound
	case "KEEPCASE":
		return c.keepCase, c.hasKeepCase
	case "NEEDAFFIX":
		return c.needAffix, c.hasNeedAffix
	case "NOSUGGEST":
		return c.noSuggest, c.hasNoSuggest
	default:
		v, ok := settingFlag(c.settings, flagName)
		return v, ok
	}
}

// hasFlagOn is an internal helper used by Check for the capitalization
// branches, where the flag set must come from the candidate word itself.
func (c *Checker) hasFlagOn(w string, token Flag, configured bool) bool {
	if !configured {
		return false
	}
	return unionAll(c.table.get(w)).Has(token)
}
