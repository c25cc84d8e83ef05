package spellcheck

import "regexp"

// AffixEntry is one alternative of an AffixRule: a strip/add pair guarded
// by a match condition, with an optional set of continuation classes.
type AffixEntry struct {
	Add                 string
	Remove              string
	match               *regexp.Regexp // nil means unconditional
	ContinuationClasses []Flag
}

// AffixRule is a named (by flag token) collection of AffixEntry
// alternatives, keyed in the rule tables built by the affix parser.
type AffixRule struct {
	Flag        Flag
	Kind        AffixKind
	Combineable bool
	Entries     []AffixEntry
}

// ruleSet is the pair of rule tables a rule applier needs to resolve
// continuation classes, regardless of whether they name a prefix or a
// suffix rule.
type ruleSet struct {
	prefixes map[Flag]*AffixRule
	suffixes map[Flag]*AffixRule
}

func (rs *ruleSet) lookup(f Flag) (*AffixRule, bool) {
	if r, ok := rs.prefixes[f]; ok {
		return r, true
	}
	if r, ok := rs.suffixes[f]; ok {
		return r, true
	}
	return nil, false
}

// applyRule derives all surface forms of word under rule, recursing into
// continuation classes up to maxDepth. Direct derivations are emitted in
// entry order, each immediately followed by its own continuations'
// derivations; duplicates are not removed here.
func applyRule(word string, rule *AffixRule, rules *ruleSet, maxDepth int) []string {
	return applyRuleDepth(word, rule, rules, maxDepth, 0)
}

func applyRuleDepth(word string, rule *AffixRule, rules *ruleSet, maxDepth, depth int) []string {
	if rule == nil || depth >= maxDepth {
		return nil
	}
	var out []string
	for _, e := range rule.Entries {
		if !conditionMatches(e.match, word) {
			continue
		}
		stripped := stripLiteral(rule.Kind, word, e.Remove)
		var derived string
		if rule.Kind == KindSuffix {
			derived = stripped + e.Add
		} else {
			derived = e.Add + stripped
		}
		out = append(out, derived)
		for _, cc := range e.ContinuationClasses {
			contRule, ok := rules.lookup(cc)
			if !ok {
				// unresolvable continuation class: tolerated, not fatal
				tracer().Infof("affix: entry for %q references unknown continuation class %q", rule.Flag, cc)
				continue
			}
			out = append(out, applyRuleDepth(derived, contRule, rules, maxDepth, depth+1)...)
		}
	}
	return out
}

// combine applies r2 (of the opposite kind and combineable) to every result
// of applying r1 to word, producing the combineable closure of the two
// rules over word.
func combine(word string, r1, r2 *AffixRule, rules *ruleSet, maxDepth int) []string {
	first := applyRule(word, r1, rules, maxDepth)
	var out []string
	for _, f := range first {
		out = append(out, applyRule(f, r2, rules, maxDepth)...)
	}
	return out
}
