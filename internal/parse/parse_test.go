// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"testing"

	"github.com/tajiklex/farhang/internal/lexicon"
	"github.com/tajiklex/farhang/internal/segment"
	"github.com/tajiklex/farhang/pkg/types"
)

func TestDocument(t *testing.T) {
	text := strings.Join([]string{
		"--- PAGE 1 ---",
		"СЕВ I а. سیب мева: 1. дарахти мевадор; 2. меваи ин дарахт",
		"ки дар боғ мерӯяд",
	}, "\n")

	rows, report := Document(text, lexicon.Defaults(), 0)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	for i, r := range rows {
		if r.Headword != "СЕВ I" {
			t.Errorf("row %d headword = %q, want %q", i, r.Headword, "СЕВ I")
		}
		if r.Gloss != "سیب" {
			t.Errorf("row %d gloss = %q, want %q", i, r.Gloss, "سیب")
		}
		if r.EtymologyMarker != "арабӣ" {
			t.Errorf("row %d etymology = %q, want %q", i, r.EtymologyMarker, "арабӣ")
		}
	}

	if rows[0].SenseNumber != 1 || rows[0].SenseText != "дарахти мевадор;" {
		t.Errorf("sense 1 = %d %q", rows[0].SenseNumber, rows[0].SenseText)
	}
	// The second sense absorbs the continuation line with whitespace collapsed.
	if rows[1].SenseNumber != 2 || rows[1].SenseText != "меваи ин дарахт ки дар боғ мерӯяд" {
		t.Errorf("sense 2 = %d %q", rows[1].SenseNumber, rows[1].SenseText)
	}

	if report.Segmentation.Entries != 1 {
		t.Errorf("segmentation entries = %d, want 1", report.Segmentation.Entries)
	}
	if report.Extraction.Rows != 2 {
		t.Errorf("extraction rows = %d, want 2", report.Extraction.Rows)
	}
}

func TestBlockMultiWordGlossReversed(t *testing.T) {
	b := segment.Block{Header: "ОБ а. روان آب моеъи зиндагибахш"}

	rows, _, ok := Block(b, lexicon.Defaults())
	if !ok {
		t.Fatal("block rejected")
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if want := "آب روان"; rows[0].Gloss != want {
		t.Errorf("gloss = %q, want %q", rows[0].Gloss, want)
	}
	if rows[0].SenseText != "моеъи зиндагибахш" {
		t.Errorf("sense = %q", rows[0].SenseText)
	}
}

func TestBlockEtymologyRequiresForeignScript(t *testing.T) {
	// "кит." here is a register marker, not an etymology marker: no
	// Perso-Arabic script follows it.
	b := segment.Block{Header: "САНГ кит. ҷинси сахт"}

	rows, _, ok := Block(b, lexicon.Defaults())
	if !ok {
		t.Fatal("block rejected")
	}
	if rows[0].EtymologyMarker != "" {
		t.Errorf("etymology = %q, want empty", rows[0].EtymologyMarker)
	}
	if rows[0].RegisterMarker != "китобӣ" {
		t.Errorf("register = %q, want %q", rows[0].RegisterMarker, "китобӣ")
	}
	if rows[0].SenseText != "ҷинси сахт" {
		t.Errorf("sense = %q", rows[0].SenseText)
	}
}

func TestBlockUnknownMarkerKeptLiteral(t *testing.T) {
	tables := lexicon.Tables{Etymology: lexicon.Table{}, Register: lexicon.Table{}}
	b := segment.Block{Header: "ОБ ҳавз. آب чуқурӣ"}

	rows, _, ok := Block(b, tables)
	if !ok {
		t.Fatal("block rejected")
	}
	if rows[0].EtymologyMarker != "ҳавз." {
		t.Errorf("etymology = %q, want the literal abbreviation", rows[0].EtymologyMarker)
	}
}

func TestBlockContaminationRepair(t *testing.T) {
	// A leaked next-entry header inside the sense text truncates it.
	b := segment.Block{Header: "ОБ а. آب моеъи ок САНГ سنگ ҷинси сахт"}

	rows, repairs, ok := Block(b, lexicon.Defaults())
	if !ok {
		t.Fatal("block rejected")
	}
	if repairs != 1 {
		t.Errorf("repairs = %d, want 1", repairs)
	}
	if rows[0].SenseText != "моеъи ок" {
		t.Errorf("sense = %q, want %q", rows[0].SenseText, "моеъи ок")
	}
}

func TestBlockHeaderOnly(t *testing.T) {
	b := segment.Block{Header: "ОБ а. آب"}

	rows, _, ok := Block(b, lexicon.Defaults())
	if !ok {
		t.Fatal("block rejected")
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Numbered() || rows[0].SenseText != "" {
		t.Errorf("row = %+v, want a single empty unnumbered sense", rows[0])
	}
}

func TestBlocksSkipsUnmatchableHeader(t *testing.T) {
	blocks := []segment.Block{
		{Header: "123 сатри вайрон"},
		{Header: "ОБ а. آب моеъ"},
	}

	rows, summary := Blocks(blocks, lexicon.Defaults())

	if summary.SkippedBlocks != 1 {
		t.Errorf("SkippedBlocks = %d, want 1", summary.SkippedBlocks)
	}
	if summary.Entries != 1 || len(rows) != 1 {
		t.Errorf("entries = %d, rows = %d; want 1 and 1", summary.Entries, len(rows))
	}
}

func TestSplitSensesNumberInsideWordIgnored(t *testing.T) {
	// "с.1985" style fragments must not open a sense; only numbers at start
	// of text or after whitespace do.
	senses, _ := splitSenses("таъсис дар с.1985. шарҳи умумӣ", nil)

	if len(senses) != 1 {
		t.Fatalf("got %d senses, want 1", len(senses))
	}
	if senses[0].number != 0 {
		t.Errorf("number = %d, want 0", senses[0].number)
	}
}

func TestSplitSensesPreambleDropped(t *testing.T) {
	senses, _ := splitSenses("муқаддима 1. якум 2. дуюм", nil)

	if len(senses) != 2 {
		t.Fatalf("got %d senses, want 2", len(senses))
	}
	if senses[0].number != 1 || senses[0].text != "якум" {
		t.Errorf("sense 1 = %d %q", senses[0].number, senses[0].text)
	}
	if senses[1].number != 2 || senses[1].text != "дуюм" {
		t.Errorf("sense 2 = %d %q", senses[1].number, senses[1].text)
	}
}

func TestSplitSensesFallsBackToBody(t *testing.T) {
	body := []string{"САРВАТ сатри печида"}
	senses, _ := splitSenses("", body)

	if len(senses) != 1 {
		t.Fatalf("got %d senses, want 1", len(senses))
	}
	if senses[0].text != "САРВАТ сатри печида" {
		t.Errorf("text = %q", senses[0].text)
	}
}

func TestRowsFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/rows.yaml"

	set := types.RowSet{
		Source: "cleaned.txt",
		Rows: []types.Row{
			{Headword: "СЕВ I", Gloss: "سیب", EtymologyMarker: "арабӣ", SenseNumber: 1, SenseText: "дарахти мевадор"},
			{Headword: "ОБ", SenseText: "моеъ"},
		},
	}

	if err := WriteRows(path, set); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRows(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Source != set.Source || len(got.Rows) != len(set.Rows) {
		t.Fatalf("got %+v", got)
	}
	if got.Rows[0] != set.Rows[0] || got.Rows[1] != set.Rows[1] {
		t.Errorf("rows changed in round trip: %+v", got.Rows)
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	rows := []types.Row{
		{Headword: "СЕВ", Gloss: "سیب", SenseNumber: 1, SenseText: "мева"},
		{Headword: "ОБ", SenseText: "моеъ"},
	}

	if err := WriteCSV(&sb, rows); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows", len(lines))
	}
	if lines[0] != "headword,gloss,etymology_marker,register_marker,sense_number,sense_text" {
		t.Errorf("header = %q", lines[0])
	}
	// The unnumbered row leaves the sense_number column empty.
	if lines[2] != "ОБ,,,,,моеъ" {
		t.Errorf("unnumbered row = %q", lines[2])
	}
}
