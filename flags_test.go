package spellcheck

import "testing"

func TestTokenizeFlags(t *testing.T) {
	tests := []struct {
		code   string
		scheme FlagScheme
		want   []Flag
	}{
		{"", SchemeChar, nil},
		{"ABC", SchemeChar, []Flag{"A", "B", "C"}},
		{"AaBb", SchemeLong, []Flag{"Aa", "Bb"}},
		{"1,2,30", SchemeNumeric, []Flag{"1", "2", "30"}},
	}
	for _, tt := range tests {
		got, err := tokenizeFlags(tt.code, tt.scheme)
		if err != nil {
			t.Errorf("tokenizeFlags(%q, %v): %v", tt.code, tt.scheme, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("tokenizeFlags(%q, %v) = %v, want %v", tt.code, tt.scheme, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("tokenizeFlags(%q, %v)[%d] = %q, want %q", tt.code, tt.scheme, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeFlagsErrors(t *testing.T) {
	if _, err := tokenizeFlags("Aab", SchemeLong); err == nil {
		t.Error("tokenizeFlags with odd-length long code should error")
	}
	if _, err := tokenizeFlags("1,,2", SchemeNumeric); err == nil {
		t.Error("tokenizeFlags with empty numeric segment should error")
	}
}

func TestFlagScheme(t *testing.T) {
	tests := []struct {
		settings map[string]string
		want     FlagScheme
	}{
		{nil, SchemeChar},
		{map[string]string{"FLAG": "long"}, SchemeLong},
		{map[string]string{"FLAG": "num"}, SchemeNumeric},
		{map[string]string{"FLAG": "numeric"}, SchemeNumeric},
		{map[string]string{"FLAG": "bogus"}, SchemeChar},
	}
	for _, tt := range tests {
		if got := flagScheme(tt.settings); got != tt.want {
			t.Errorf("flagScheme(%v) = %v, want %v", tt.settings, got, tt.want)
		}
	}
}

func TestFlagSetHasAndUnion(t *testing.T) {
	a := FlagSet{"A", "B"}
	b := FlagSet{"B", "C"}
	if !a.Has("A") || a.Has("Z") {
		t.Error("FlagSet.Has behaved incorrectly")
	}
	u := a.union(b)
	want := []Flag{"A", "B", "C"}
	if len(u) != len(want) {
		t.Fatalf("union = %v, want %v", u, want)
	}
	for i := range want {
		if u[i] != want[i] {
			t.Errorf("union[%d] = %q, want %q", i, u[i], want[i])
		}
	}
}
