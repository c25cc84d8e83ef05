package spellcheck

import "strings"

// Suggest returns up to limit plausible corrections for w, or an empty
// slice if w is already accepted or no candidate qualifies. limit <= 0
// uses the package default of 5.
func (c *Checker) Suggest(w string, limit int) []string {
	if limit <= 0 {
		limit = defaultSuggestionsLimit
	}
	if c.Check(w) {
		return nil
	}

	if fix, ok := c.replacementFix(w); ok {
		return []string{fix}
	}

	e1 := c.editDistance1(w)
	e2 := make([]string, 0, len(e1)*2)
	for _, cand := range e1 {
		e2 = append(e2, c.editDistance1(cand)...)
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(e1)+len(e2))
	tally := func(cand string) {
		if !c.Check(cand) {
			return
		}
		if c.HasFlag(cand, "NOSUGGEST", nil) {
			return
		}
		if counts[cand] == 0 {
			order = append(order, cand)
		}
		counts[cand]++
	}
	for _, cand := range e1 {
		tally(cand)
	}
	for _, cand := range e2 {
		tally(cand)
	}

	rankByMultiplicity(order, counts)

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// replacementFix tries each replacement pair in order, replacing only the
// first occurrence of From in w; the first pair whose result Check accepts
// wins. See DESIGN.md for why only the first occurrence is replaced.
func (c *Checker) replacementFix(w string) (string, bool) {
	for _, rp := range c.replacements {
		idx := strings.Index(w, rp.From)
		if idx < 0 {
			continue
		}
		candidate := w[:idx] + rp.To + w[idx+len(rp.From):]
		if c.Check(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// editDistance1 generates every delete/transpose/replace/insert neighbor
// of w over the configured alphabet. Duplicates are retained; they are
// what gives rankByMultiplicity its signal.
func (c *Checker) editDistance1(w string) []string {
	runes := []rune(w)
	n := len(runes)
	var out []string

	// delete
	for i := 0; i < n; i++ {
		out = append(out, string(runes[:i])+string(runes[i+1:]))
	}

	// transpose adjacent characters
	for i := 0; i+1 < n; i++ {
		swapped := append([]rune{}, runes...)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		out = append(out, string(swapped))
	}

	// replace each position with each other letter of the alphabet
	for i := 0; i < n; i++ {
		for _, l := range c.alphabet {
			if l == runes[i] {
				continue
			}
			replaced := append([]rune{}, runes...)
			replaced[i] = l
			out = append(out, string(replaced))
		}
	}

	// insert each letter at every split point, including both ends
	for i := 0; i <= n; i++ {
		for _, l := range c.alphabet {
			inserted := make([]rune, 0, n+1)
			inserted = append(inserted, runes[:i]...)
			inserted = append(inserted, l)
			inserted = append(inserted, runes[i:]...)
			out = append(out, string(inserted))
		}
	}

	return out
}

// rankByMultiplicity sorts order by descending occurrence count in counts.
// Ties are left in whatever order they arrive in; tie-breaking among
// equally-ranked candidates is deliberately left unspecified.
func rankByMultiplicity(order []string, counts map[string]int) {
	// simple insertion sort: candidate lists are small (edit-distance-2
	// neighborhoods filtered down to dictionary hits), so O(n^2) is fine
	// and keeps the implementation easy to follow.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && counts[order[j]] > counts[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}
