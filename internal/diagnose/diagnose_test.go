// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package diagnose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tajiklex/farhang/internal/lexicon"
	"github.com/tajiklex/farhang/pkg/types"
)

func TestRunCleanRows(t *testing.T) {
	rows := []types.Row{
		{Headword: "СЕВ", Gloss: "سیب", EtymologyMarker: "арабӣ", SenseNumber: 1, SenseText: "дарахти мевадор"},
		{Headword: "СЕВ", Gloss: "سیب", EtymologyMarker: "арабӣ", SenseNumber: 2, SenseText: "меваи ин дарахт"},
		{Headword: "ОБ", SenseText: "моеъи зиндагибахш"},
	}

	report := Run(rows, lexicon.Defaults())
	if report.Total() != 0 {
		t.Errorf("clean rows produced %d findings: %+v", report.Total(), report)
	}
}

func TestRunContamination(t *testing.T) {
	rows := []types.Row{
		{Headword: "ОБ", SenseText: "моеъ САНГ سنگ ҷинси сахт"},
	}

	report := Run(rows, lexicon.Defaults())
	if len(report.Contaminated) != 1 {
		t.Fatalf("Contaminated = %+v, want one finding", report.Contaminated)
	}
	if report.Contaminated[0].Headword != "ОБ" {
		t.Errorf("finding = %+v", report.Contaminated[0])
	}
}

func TestRunSenseNumberChecks(t *testing.T) {
	rows := []types.Row{
		{Headword: "СЕВ", SenseNumber: 1, SenseText: "якум"},
		{Headword: "СЕВ", SenseNumber: 1, SenseText: "такрор"},
		{Headword: "СЕВ", SenseNumber: 4, SenseText: "ҷаҳиш"},
		// A new headword resets the sequence; starting at 1 again is fine.
		{Headword: "ОБ", SenseNumber: 1, SenseText: "якум"},
		{Headword: "ОБ", SenseNumber: 2, SenseText: "дуюм"},
	}

	report := Run(rows, lexicon.Defaults())
	if len(report.DuplicateNumbers) != 1 {
		t.Errorf("DuplicateNumbers = %+v, want one finding", report.DuplicateNumbers)
	}
	if len(report.NumberGaps) != 1 {
		t.Errorf("NumberGaps = %+v, want one finding", report.NumberGaps)
	}
}

func TestRunMisplacedScript(t *testing.T) {
	rows := []types.Row{
		{Headword: "ОБ", EtymologyMarker: "آب", SenseText: "моеъ"},
	}

	report := Run(rows, lexicon.Defaults())
	if len(report.MisplacedScript) != 1 {
		t.Errorf("MisplacedScript = %+v, want one finding", report.MisplacedScript)
	}
}

func TestRunUnexpanded(t *testing.T) {
	rows := []types.Row{
		// The raw abbreviation leaked through instead of its expansion.
		{Headword: "ОБ", EtymologyMarker: "а.", SenseText: "моеъ"},
		{Headword: "САНГ", RegisterMarker: "геол.", SenseText: "ҷинс"},
	}

	report := Run(rows, lexicon.Defaults())
	if len(report.Unexpanded) != 2 {
		t.Errorf("Unexpanded = %+v, want two findings", report.Unexpanded)
	}
}

func TestRunLongSenses(t *testing.T) {
	rows := []types.Row{
		{Headword: "ОБ", SenseText: strings.Repeat("о", longSenseThreshold+1)},
	}

	report := Run(rows, lexicon.Defaults())
	if len(report.LongSenses) != 1 {
		t.Errorf("LongSenses = %+v, want one finding", report.LongSenses)
	}
}

func TestWrite(t *testing.T) {
	rows := []types.Row{
		{Headword: "ОБ", SenseText: "моеъ САНГ سنگ ҷинс"},
	}
	report := Run(rows, lexicon.Defaults())

	var buf bytes.Buffer
	Write(&buf, report, len(rows), 5)

	out := buf.String()
	if !strings.Contains(out, "contamination: 1") {
		t.Errorf("output missing contamination count:\n%s", out)
	}
	if !strings.Contains(out, "rows: 1, findings: 1") {
		t.Errorf("output missing totals:\n%s", out)
	}
}
