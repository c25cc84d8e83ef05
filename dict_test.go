package spellcheck

import "testing"

func TestCutFirstSlash(t *testing.T) {
	tests := []struct {
		in        string
		wantWord  string
		wantCodes string
		wantHas   bool
	}{
		{"walk/D", "walk", "D", true},
		{"plain", "plain", "", false},
		{"a/b/c", "a", "b/c", true},
	}
	for _, tt := range tests {
		word, codes, has := cutFirstSlash(tt.in)
		if word != tt.wantWord || codes != tt.wantCodes || has != tt.wantHas {
			t.Errorf("cutFirstSlash(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.in, word, codes, has, tt.wantWord, tt.wantCodes, tt.wantHas)
		}
	}
}

func TestExpandDictionaryBasic(t *testing.T) {
	affix := "SFX D Y 1\nSFX D 0 ed [^y]\n"
	data, err := parseAffixBlob(affix)
	if err != nil {
		t.Fatalf("parseAffixBlob: %v", err)
	}
	rules := &ruleSet{prefixes: data.prefixes, suffixes: data.suffixes}
	table := newLookupTable()
	buckets := make(map[Flag][]string)

	err = expandDictionary("1\nwalk/D\n", SchemeChar, data.settings, rules, defaultMaxRecursion, table, nil, buckets)
	if err != nil {
		t.Fatalf("expandDictionary: %v", err)
	}
	if table.get("walk") == nil {
		t.Fatal("expected 'walk' in table")
	}
	if table.get("walked") == nil {
		t.Error("expected derived form 'walked' in table")
	}
	if table.get("walks") != nil {
		t.Error("did not expect 'walks' in table")
	}
}

func TestExpandDictionaryNeedAffix(t *testing.T) {
	settings := map[string]string{"NEEDAFFIX": "N"}
	rules := &ruleSet{prefixes: map[Flag]*AffixRule{}, suffixes: map[Flag]*AffixRule{}}
	table := newLookupTable()
	buckets := make(map[Flag][]string)

	err := expandDictionary("stem/N\n", SchemeChar, settings, rules, defaultMaxRecursion, table, nil, buckets)
	if err != nil {
		t.Fatalf("expandDictionary: %v", err)
	}
	if table.get("stem") != nil {
		t.Error("NEEDAFFIX-flagged base entry should not be inserted bare")
	}
}

func TestExpandDictionaryBuckets(t *testing.T) {
	rules := &ruleSet{prefixes: map[Flag]*AffixRule{}, suffixes: map[Flag]*AffixRule{}}
	table := newLookupTable()
	buckets := make(map[Flag][]string)
	bucketKeys := map[Flag]bool{"A": true, "B": true}

	err := expandDictionary("foo/A\nbar/B\n", SchemeChar, nil, rules, defaultMaxRecursion, table, bucketKeys, buckets)
	if err != nil {
		t.Fatalf("expandDictionary: %v", err)
	}
	if len(buckets["A"]) != 1 || buckets["A"][0] != "foo" {
		t.Errorf("buckets[A] = %v, want [foo]", buckets["A"])
	}
	if len(buckets["B"]) != 1 || buckets["B"][0] != "bar" {
		t.Errorf("buckets[B] = %v, want [bar]", buckets["B"])
	}
}
