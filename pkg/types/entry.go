// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Row is one denormalized output record of the parsing pipeline: one row
// per sense, with every row of an entry repeating the entry-level fields.
// Rows preserve source order.
type Row struct {
	// Headword is the entry's lead term in uppercase Tajik Cyrillic,
	// possibly carrying a roman-numeral homonym suffix ("СЕВ I") or a
	// //-delimited cross-reference component.
	Headword string `json:"headword" yaml:"headword"`

	// Gloss is the Perso-Arabic attestation attached to the headword,
	// word order already corrected. Empty when the entry has none.
	Gloss string `json:"gloss,omitempty" yaml:"gloss,omitempty"`

	// EtymologyMarker is the expanded source-language label (e.g. "арабӣ").
	// Unknown abbreviations are retained literally.
	EtymologyMarker string `json:"etymology_marker,omitempty" yaml:"etymology_marker,omitempty"`

	// RegisterMarker is the expanded domain/usage label (e.g. "ботаника").
	// Unknown abbreviations are retained literally.
	RegisterMarker string `json:"register_marker,omitempty" yaml:"register_marker,omitempty"`

	// SenseNumber is the 1-based sense number. Zero means the entry has a
	// single undifferentiated sense.
	SenseNumber int `json:"sense_number,omitempty" yaml:"sense_number,omitempty"`

	// SenseText is the definition text, whitespace-collapsed and possibly
	// empty after contamination truncation.
	SenseText string `json:"sense_text" yaml:"sense_text"`
}

// Numbered reports whether the row carries an explicit sense number.
func (r Row) Numbered() bool {
	return r.SenseNumber > 0
}

// RowSet is the on-disk hand-off between the parse and store stages.
type RowSet struct {
	// Source names the cleaned text file the rows were parsed from.
	Source string `json:"source" yaml:"source"`

	// Rows holds the parsed records in source order.
	Rows []Row `json:"rows" yaml:"rows"`
}
