package spellcheck

// FlagScheme selects how flag-code strings attached to dictionary entries
// and affix rules are decoded.
type FlagScheme int

const (
	// SchemeChar is the default: each flag is one character of the string.
	SchemeChar FlagScheme = iota
	// SchemeLong encodes each flag as two consecutive characters.
	SchemeLong
	// SchemeNumeric encodes flags as decimal integers separated by commas.
	SchemeNumeric
)

// Flag is a short opaque token under the instance's flag scheme. Flags are
// compared by equality and never interpreted structurally outside the
// tokenizer that produced them.
type Flag string

// AffixKind distinguishes prefix rules from suffix rules.
type AffixKind int

const (
	KindPrefix AffixKind = iota
	KindSuffix
)

func (k AffixKind) String() string {
	if k == KindPrefix {
		return "prefix"
	}
	return "suffix"
}

// FlagSet is a small, order-preserving collection of flags attached to one
// dictionary entry. Membership checks are linear, which is appropriate for
// the handful of flags a real-world entry carries.
type FlagSet []Flag

// Has reports whether f appears in the set.
func (fs FlagSet) Has(f Flag) bool {
	for _, c := range fs {
		if c == f {
			return true
		}
	}
	return false
}

// union merges other into a copy of fs, preserving first-appearance order
// and dropping duplicates.
func (fs FlagSet) union(other FlagSet) FlagSet {
	out := make(FlagSet, 0, len(fs)+len(other))
	seen := make(map[Flag]bool, len(fs)+len(other))
	for _, f := range fs {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	for _, f := range other {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// unionAll flattens a sequence of flag sets into one set, used when a
// lookup hit has several flag sets (one per base dictionary entry that
// derived the surface form) and a caller wants the combined policy view.
func unionAll(sets []FlagSet) FlagSet {
	var out FlagSet
	for _, s := range sets {
		out = out.union(s)
	}
	return out
}

// ReplacementPair is an ordered (from, to) literal substring pair consulted
// early during suggestion generation.
type ReplacementPair struct {
	From string
	To   string
}

// Stats reports counts gathered during construction.
type Stats struct {
	SurfaceForms     int
	PrefixRules      int
	SuffixRules      int
	CompoundRules    int
	ReplacementPairs int
}
