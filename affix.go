package spellcheck

import (
	"bufio"
	"strconv"
	"strings"
)

// affixData is everything the affix-spec blob contributes to a Checker.
type affixData struct {
	settings    map[string]string
	prefixes    map[Flag]*AffixRule
	suffixes    map[Flag]*AffixRule
	compounds   []string // raw compound-rule flag-token strings, in order
	replacements []ReplacementPair
}

// stripAffixComment removes a '#'-to-end-of-line comment, if any.
func stripAffixComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		line = line[:idx]
	}
	return line
}

// parseAffixBlob parses the raw affix-spec blob into settings, rule
// tables, compound-rule strings, and replacement pairs. Each directive
// that introduces a block (PFX, SFX, COMPOUNDRULE) declares its own
// sub-entry count up front, so the scanner knows exactly how many
// following lines belong to it and never over- or under-reads.
func parseAffixBlob(blob string) (*affixData, error) {
	data := &affixData{
		settings: make(map[string]string),
		prefixes: make(map[Flag]*AffixRule),
		suffixes: make(map[Flag]*AffixRule),
	}

	lines := splitAffixLines(blob)
	i := 0
	for i < len(lines) {
		raw := lines[i].text
		lineNo := lines[i].no
		i++

		fields := strings.Fields(raw)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "PFX", "SFX":
			kind := KindPrefix
			if fields[0] == "SFX" {
				kind = KindSuffix
			}
			if len(fields) < 4 {
				return nil, parseErrf("affix", lineNo, raw, "%s header needs flag, combineable, and count fields", fields[0])
			}
			flag := Flag(fields[1])
			combineable := fields[2] == "Y"
			count, err := strconv.Atoi(fields[3])
			if err != nil || count < 0 {
				return nil, parseErrf("affix", lineNo, raw, "malformed %s count %q", fields[0], fields[3])
			}
			rule := &AffixRule{Flag: flag, Kind: kind, Combineable: combineable}
			for n := 0; n < count; n++ {
				if i >= len(lines) {
					return nil, parseErrf("affix", lineNo, raw, "%s declared %d entries but only %d remain", fields[0], count, n)
				}
				entryLine := lines[i]
				i++
				entry, err := parseAffixEntry(kind, fields[0], entryLine.text, entryLine.no, flagScheme(data.settings))
				if err != nil {
					return nil, err
				}
				rule.Entries = append(rule.Entries, entry)
			}
			if kind == KindPrefix {
				data.prefixes[flag] = rule
			} else {
				data.suffixes[flag] = rule
			}

		case "COMPOUNDRULE":
			if len(fields) < 2 {
				return nil, parseErrf("affix", lineNo, raw, "COMPOUNDRULE needs a count field")
			}
			count, err := strconv.Atoi(fields[1])
			if err != nil || count < 0 {
				return nil, parseErrf("affix", lineNo, raw, "malformed COMPOUNDRULE count %q", fields[1])
			}
			for n := 0; n < count; n++ {
				if i >= len(lines) {
					return nil, parseErrf("affix", lineNo, raw, "COMPOUNDRULE declared %d entries but only %d remain", count, n)
				}
				ruleLine := lines[i]
				i++
				rf := strings.Fields(ruleLine.text)
				if len(rf) < 2 {
					return nil, parseErrf("affix", ruleLine.no, ruleLine.text, "COMPOUNDRULE entry needs a pattern field")
				}
				data.compounds = append(data.compounds, rf[1])
			}

		case "REP":
			if len(fields) < 3 {
				tracer().Infof("affix: ignoring malformed REP line %q", raw)
				continue
			}
			data.replacements = append(data.replacements, ReplacementPair{From: fields[1], To: fields[2]})

		default:
			if len(fields) >= 2 {
				data.settings[fields[0]] = fields[1]
			} else {
				tracer().Infof("affix: ignoring directive with no value %q", raw)
			}
		}
	}

	return data, nil
}

func parseAffixEntry(kind AffixKind, directive, line string, lineNo int, scheme FlagScheme) (AffixEntry, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[0] != directive {
		return AffixEntry{}, parseErrf("affix", lineNo, line, "malformed %s entry", directive)
	}
	strip := fields[2]
	if strip == "0" {
		strip = ""
	}

	addSpec := fields[3]
	add := addSpec
	var continuations []Flag
	if idx := strings.IndexByte(addSpec, '/'); idx >= 0 {
		add = addSpec[:idx]
		contCode := addSpec[idx+1:]
		cont, err := tokenizeFlags(contCode, scheme)
		if err != nil {
			return AffixEntry{}, parseErrf("affix", lineNo, line, "malformed continuation classes %q: %v", contCode, err)
		}
		continuations = cont
	}
	if add == "0" {
		add = ""
	}

	cond, err := compileCondition(kind, fields[4])
	if err != nil {
		return AffixEntry{}, err
	}

	return AffixEntry{
		Add:                 add,
		Remove:              strip,
		match:               cond,
		ContinuationClasses: continuations,
	}, nil
}

type affixLine struct {
	no   int
	text string
}

// splitAffixLines strips comments and blank lines, preserving 1-based
// line numbers for error reporting.
func splitAffixLines(blob string) []affixLine {
	var out []affixLine
	sc := bufio.NewScanner(strings.NewReader(blob))
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(stripAffixComment(sc.Text()))
		if line == "" {
			continue
		}
		out = append(out, affixLine{no: n, text: line})
	}
	return out
}
