// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diagnose produces a data-quality report over parsed dictionary
// rows. It flags suspicious rows — residual contamination, duplicate or
// gapped sense numbers, foreign script in expanded marker fields,
// unexpanded abbreviations, suspiciously long senses — without ever
// correcting them; repair decisions stay with a human reviewer.
package diagnose

import (
	"fmt"
	"io"
	"regexp"
	"unicode/utf8"

	"github.com/tajiklex/farhang/internal/lexicon"
	"github.com/tajiklex/farhang/internal/normalize"
	"github.com/tajiklex/farhang/pkg/types"
)

// longSenseThreshold flags definitions long enough to suggest a
// segmentation miss swallowed following entries.
const longSenseThreshold = 500

// contamination matches an uppercase run followed by foreign script inside
// sense text, the signature of a leaked entry header that survived repair.
var contamination = regexp.MustCompile(`[А-ЯЁӢҚҒҲЎҶ]{2,}\s+[\x{0600}-\x{06FF}]+`)

// Finding is one flagged row.
type Finding struct {
	// Index is the zero-based position of the row in the input.
	Index int

	// Headword identifies the entry.
	Headword string

	// Detail describes what was flagged.
	Detail string
}

// Report groups findings by issue class.
type Report struct {
	Contaminated     []Finding
	DuplicateNumbers []Finding
	NumberGaps       []Finding
	MisplacedScript  []Finding
	Unexpanded       []Finding
	LongSenses       []Finding
}

// Total returns the number of findings across all classes.
func (r Report) Total() int {
	return len(r.Contaminated) + len(r.DuplicateNumbers) + len(r.NumberGaps) +
		len(r.MisplacedScript) + len(r.Unexpanded) + len(r.LongSenses)
}

// Run scans rows in order and collects findings. Sense-number checks group
// consecutive rows sharing a headword, matching how the parser denormalizes
// one entry into adjacent rows.
func Run(rows []types.Row, tables lexicon.Tables) Report {
	var report Report

	prevHeadword := ""
	prevNumber := 0
	seen := map[int]bool{}

	for i, row := range rows {
		if loc := contamination.FindStringIndex(row.SenseText); loc != nil {
			report.Contaminated = append(report.Contaminated, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("sense text contains header signature %q", row.SenseText[loc[0]:loc[1]]),
			})
		}

		if row.Headword != prevHeadword {
			prevHeadword = row.Headword
			prevNumber = 0
			seen = map[int]bool{}
		}
		if row.Numbered() {
			switch {
			case seen[row.SenseNumber]:
				report.DuplicateNumbers = append(report.DuplicateNumbers, Finding{
					Index: i, Headword: row.Headword,
					Detail: fmt.Sprintf("sense number %d repeats", row.SenseNumber),
				})
			case prevNumber > 0 && row.SenseNumber != prevNumber+1:
				report.NumberGaps = append(report.NumberGaps, Finding{
					Index: i, Headword: row.Headword,
					Detail: fmt.Sprintf("sense number jumps from %d to %d", prevNumber, row.SenseNumber),
				})
			}
			seen[row.SenseNumber] = true
			prevNumber = row.SenseNumber
		}

		if normalize.ContainsRTL(row.EtymologyMarker) {
			report.MisplacedScript = append(report.MisplacedScript, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("etymology_marker contains foreign script: %q", row.EtymologyMarker),
			})
		}
		if normalize.ContainsRTL(row.RegisterMarker) {
			report.MisplacedScript = append(report.MisplacedScript, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("register_marker contains foreign script: %q", row.RegisterMarker),
			})
		}

		if _, known := tables.Etymology[row.EtymologyMarker]; known {
			report.Unexpanded = append(report.Unexpanded, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("etymology marker %q was not expanded", row.EtymologyMarker),
			})
		}
		if _, known := tables.Register[row.RegisterMarker]; known {
			report.Unexpanded = append(report.Unexpanded, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("register marker %q was not expanded", row.RegisterMarker),
			})
		}

		if utf8.RuneCountInString(row.SenseText) > longSenseThreshold {
			report.LongSenses = append(report.LongSenses, Finding{
				Index: i, Headword: row.Headword,
				Detail: fmt.Sprintf("sense text is %d characters", utf8.RuneCountInString(row.SenseText)),
			})
		}
	}

	return report
}

// Write prints the report: per-class counts plus up to sampleLimit example
// findings for each class.
func Write(w io.Writer, report Report, totalRows, sampleLimit int) {
	classes := []struct {
		name     string
		findings []Finding
	}{
		{"contamination", report.Contaminated},
		{"duplicate sense numbers", report.DuplicateNumbers},
		{"sense number gaps", report.NumberGaps},
		{"foreign script in marker fields", report.MisplacedScript},
		{"unexpanded abbreviations", report.Unexpanded},
		{"suspiciously long senses", report.LongSenses},
	}

	for _, c := range classes {
		fmt.Fprintf(w, "%s: %d\n", c.name, len(c.findings))
		for i, f := range c.findings {
			if i >= sampleLimit {
				fmt.Fprintf(w, "  ... %d more\n", len(c.findings)-sampleLimit)
				break
			}
			fmt.Fprintf(w, "  row %d %s: %s\n", f.Index, f.Headword, f.Detail)
		}
	}

	fmt.Fprintf(w, "\nrows: %d, findings: %d\n", totalRows, report.Total())
}
