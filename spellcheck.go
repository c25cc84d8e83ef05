// Package spellcheck implements a hunspell-compatible spellchecking core:
// it parses an affix specification and a flag-annotated word list into an
// expanded lookup table, and answers whether an arbitrary input word is
// valid and, if not, what corrections are plausible.
//
// The package consumes two already-decoded text blobs — it does not read
// files, decode character sets, or expose a CLI or IPC surface. A Checker
// is immutable after construction and safe for concurrent read-only use.
package spellcheck

import (
	"regexp"
	"strconv"
)

// Checker holds an expanded dictionary and answers membership and
// suggestion queries against it. It is built once by New and is
// immutable and safe for concurrent read-only use afterward.
type Checker struct {
	settings map[string]string

	table *lookupTable

	compoundPatterns []*regexp.Regexp
	compoundMinSet   bool
	compoundMin      int

	onlyInCompound    Flag
	hasOnlyInCompound bool
	keepCase          Flag
	hasKeepCase       bool
	needAffix         Flag
	hasNeedAffix      bool
	noSuggest         Flag
	hasNoSuggest      bool

	replacements []ReplacementPair
	alphabet     []rune

	toLower func(string) string
	toUpper func(string) string

	stats Stats
}

// New parses affixBlob and dictBlob and builds a ready-to-query Checker.
// The affix blob populates settings, rule tables, compound rule strings,
// and replacement pairs; the dictionary blob is then expanded against
// those rules into the lookup table and compound rule-code buckets;
// compound patterns are compiled last, once the buckets are complete.
func New(affixBlob, dictBlob string, opts ...Option) (*Checker, error) {
	cfg := newConfig(opts)

	affixParsed, err := parseAffixBlob(affixBlob)
	if err != nil {
		return nil, err
	}

	settings := mergeSettings(affixParsed.settings, cfg.overrides)
	scheme := flagScheme(settings)

	rules := &ruleSet{prefixes: affixParsed.prefixes, suffixes: affixParsed.suffixes}
	bucketKeys := compoundRuleBucketKeys(affixParsed.compounds, settings)
	buckets := make(map[Flag][]string)
	table := newLookupTable()

	if err := expandDictionary(dictBlob, scheme, settings, rules, cfg.maxDepth, table, bucketKeys, buckets); err != nil {
		return nil, err
	}

	compoundPatterns, err := compileCompoundRules(affixParsed.compounds, buckets)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		settings:         settings,
		table:            table,
		compoundPatterns: compoundPatterns,
		replacements:     affixParsed.replacements,
		alphabet:         []rune(cfg.alphabet),
		toLower:          cfg.toLower,
		toUpper:          cfg.toUpper,
	}

	if v, ok := settings["COMPOUNDMIN"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.compoundMinSet = true
			c.compoundMin = n
		} else {
			tracer().Infof("spellcheck: ignoring malformed COMPOUNDMIN %q", v)
		}
	}
	c.onlyInCompound, c.hasOnlyInCompound = settingFlag(settings, "ONLYINCOMPOUND")
	c.keepCase, c.hasKeepCase = settingFlag(settings, "KEEPCASE")
	c.needAffix, c.hasNeedAffix = settingFlag(settings, "NEEDAFFIX")
	c.noSuggest, c.hasNoSuggest = settingFlag(settings, "NOSUGGEST")

	c.stats = Stats{
		SurfaceForms:     table.count,
		PrefixRules:      len(affixParsed.prefixes),
		SuffixRules:      len(affixParsed.suffixes),
		CompoundRules:    len(compoundPatterns),
		ReplacementPairs: len(affixParsed.replacements),
	}

	return c, nil
}

// Stats reports counts gathered during construction.
func (c *Checker) Stats() Stats {
	return c.stats
}

// mergeSettings combines affix-spec settings with caller overrides,
// preferring affix-spec values whenever a name is set in both.
func mergeSettings(parsed, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(parsed)+len(overrides))
	for k, v := range overrides {
		out[k] = v
	}
	for k, v := range parsed {
		out[k] = v
	}
	return out
}
