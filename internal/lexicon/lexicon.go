// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon supplies the abbreviation tables used during field
// extraction: etymology markers (source-language labels preceding the
// gloss) and register markers (domain labels following it). Keys are short
// strings ending in a period; lookups always prefer the longest matching
// key so that a compound marker wins over its prefix.
//
// The tables are externally supplied data, treated as opaque key-expansion
// mappings. Built-in defaults cover the Nazarzoda dictionary; a YAML file
// can replace either table.
package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"
)

// Table maps a marker abbreviation to its expanded form.
type Table map[string]string

// Tables groups the two marker tables handed to the field extractor.
type Tables struct {
	Etymology Table `yaml:"etymology"`
	Register  Table `yaml:"register"`
}

// Expand returns the expansion for abbrev, or abbrev itself when the table
// has no entry. A lookup miss is not an error; the literal abbreviation
// degrades gracefully into the output.
func (t Table) Expand(abbrev string) string {
	if expansion, ok := t[abbrev]; ok {
		return expansion
	}
	return abbrev
}

// MatchPrefix tests every key, longest first, for a prefix match against
// text followed by whitespace or end of text. It returns the matched key
// and its expansion.
func (t Table) MatchPrefix(text string) (key, expansion string, ok bool) {
	for _, k := range t.keysByLength() {
		if !strings.HasPrefix(text, k) {
			continue
		}
		rest := text[len(k):]
		if rest == "" {
			return k, t[k], true
		}
		if r, _ := utf8.DecodeRuneInString(rest); unicode.IsSpace(r) {
			return k, t[k], true
		}
	}
	return "", "", false
}

// keysByLength returns the table's keys sorted by descending length.
// Equal-length ties break lexically so match order is deterministic.
func (t Table) keysByLength() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Load reads marker tables from a YAML file with `etymology:` and
// `register:` mappings. A missing section falls back to the built-in table.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading tables file %s: %w", path, err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tables{}, fmt.Errorf("parsing tables file %s: %w", path, err)
	}

	if len(t.Etymology) == 0 {
		t.Etymology = DefaultEtymology()
	}
	if len(t.Register) == 0 {
		t.Register = DefaultRegister()
	}
	return t, nil
}

// Defaults returns the built-in marker tables.
func Defaults() Tables {
	return Tables{
		Etymology: DefaultEtymology(),
		Register:  DefaultRegister(),
	}
}
