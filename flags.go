package spellcheck

import "strings"

// tokenizeFlags decodes a flag-code string under scheme, preserving the
// order of first appearance. An empty or absent code string yields the
// empty sequence.
func tokenizeFlags(code string, scheme FlagScheme) ([]Flag, error) {
	if code == "" {
		return nil, nil
	}
	switch scheme {
	case SchemeLong:
		return tokenizeLongFlags(code)
	case SchemeNumeric:
		return tokenizeNumericFlags(code)
	default:
		return tokenizeCharFlags(code), nil
	}
}

func tokenizeCharFlags(code string) []Flag {
	runes := []rune(code)
	out := make([]Flag, 0, len(runes))
	for _, r := range runes {
		out = append(out, Flag(string(r)))
	}
	return out
}

func tokenizeLongFlags(code string) ([]Flag, error) {
	runes := []rune(code)
	if len(runes)%2 != 0 {
		return nil, parseErrf("affix", 0, code, "long flag scheme requires an even number of characters")
	}
	out := make([]Flag, 0, len(runes)/2)
	for i := 0; i < len(runes); i += 2 {
		out = append(out, Flag(string(runes[i:i+2])))
	}
	return out, nil
}

func tokenizeNumericFlags(code string) ([]Flag, error) {
	parts := strings.Split(code, ",")
	out := make([]Flag, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, parseErrf("affix", 0, code, "numeric flag scheme does not allow empty segments")
		}
		out = append(out, Flag(p))
	}
	return out, nil
}

// flagScheme resolves the FLAG setting into a FlagScheme, defaulting to
// the single-character scheme when unset or unrecognized.
func flagScheme(settings map[string]string) FlagScheme {
	switch settings["FLAG"] {
	case "long":
		return SchemeLong
	case "num", "numeric":
		return SchemeNumeric
	default:
		return SchemeChar
	}
}
