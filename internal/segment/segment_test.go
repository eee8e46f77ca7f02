// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"
	"testing"
)

func TestMatchHeadword(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
		ok   bool
	}{
		{"plain headword", "САНГ ҷинси сахт", "САНГ", true},
		{"homonym numeral", "СЕВ I а. мева", "СЕВ I", true},
		{"cross reference", "ГУЛ//ГУЛЧА нозук", "ГУЛ//ГУЛЧА", true},
		{"leading whitespace", "  ОБ моеъ", "ОБ", true},
		{"single capital", "Дар боғ", "", false},
		{"lowercase line", "дарахти мевадор", "", false},
		{"no trailing text", "САНГ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := MatchHeadword(tt.line)
			if ok != tt.ok || got != tt.want {
				t.Errorf("MatchHeadword(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	lines := []string{
		"сархати аввал",
		"--- PAGE 12 ---",
		"СЕВ а. سیب мева",
		"дарахти мевадор",
		"КВТ маркази барқ",
		"САНГ кит. ҷинси сахт",
	}

	blocks, summary := Split(lines, 0)

	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Header != "СЕВ а. سیب мева" {
		t.Errorf("first header = %q", blocks[0].Header)
	}
	// The rejected uppercase line stays in the first block's body.
	if want := []string{"дарахти мевадор", "КВТ маркази барқ"}; !equalLines(blocks[0].Body, want) {
		t.Errorf("first body = %q, want %q", blocks[0].Body, want)
	}
	if blocks[1].Header != "САНГ кит. ҷинси сахт" {
		t.Errorf("second header = %q", blocks[1].Header)
	}
	if len(blocks[1].Body) != 0 {
		t.Errorf("second body = %q, want empty", blocks[1].Body)
	}

	if summary.Entries != 2 {
		t.Errorf("Entries = %d, want 2", summary.Entries)
	}
	if summary.FalsePositives != 1 {
		t.Errorf("FalsePositives = %d, want 1", summary.FalsePositives)
	}
	if summary.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", summary.Discarded)
	}
	if summary.PageMarkers != 1 {
		t.Errorf("PageMarkers = %d, want 1", summary.PageMarkers)
	}
}

func TestSplitFlushesLastEntryAtEOF(t *testing.T) {
	blocks, summary := Split([]string{"ОБ а. آب моеъ", "идомаи шарҳ"}, 0)

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if summary.Entries != 1 {
		t.Errorf("Entries = %d, want 1", summary.Entries)
	}
	if len(blocks[0].Body) != 1 || blocks[0].Body[0] != "идомаи шарҳ" {
		t.Errorf("body = %q", blocks[0].Body)
	}
}

func TestSplitNoEntries(t *testing.T) {
	blocks, summary := Split([]string{"матни бе сарлавҳа", "сатри дуюм"}, 0)

	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
	if summary.Discarded != 2 {
		t.Errorf("Discarded = %d, want 2", summary.Discarded)
	}
}

func TestValidBoundaryWindow(t *testing.T) {
	// Arabic script beyond the lookahead window must not validate the line.
	rest := strings.Repeat("о", 50) + " سیب"

	if !validBoundary(rest, 100) {
		t.Error("window 100 should reach the Arabic run")
	}
	if validBoundary(rest, 10) {
		t.Error("window 10 should not reach the Arabic run")
	}
}

func equalLines(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
