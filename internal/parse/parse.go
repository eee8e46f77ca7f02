// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns raw entry blocks into structured dictionary rows.
//
// Header fields are extracted left to right, each successful extraction
// consuming its matched text: headword, optional etymology marker,
// optional Perso-Arabic gloss (word order corrected), optional register
// marker. Whatever remains, together with the block's body lines, is
// segmented into numbered or unnumbered senses and scrubbed of
// contamination left by segmentation misses. The package is pure: no I/O,
// no shared state between calls.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tajiklex/farhang/internal/lexicon"
	"github.com/tajiklex/farhang/internal/normalize"
	"github.com/tajiklex/farhang/internal/segment"
	"github.com/tajiklex/farhang/pkg/types"
)

var (
	// etymMarker captures an etymology abbreviation at the start of the
	// post-headword text: a lowercase token ending in a period, then
	// whitespace. The caller must additionally verify that foreign script
	// follows before consuming it.
	etymMarker = regexp.MustCompile(`^([а-яёӣқғҳўҷ][а-яёӣқғҳўҷ.\-]{0,6}\.)\s+`)

	// glossRun captures a maximal run of Arabic-script tokens at the start
	// of the text, separated by single spaces.
	glossRun = regexp.MustCompile(`^[\x{0600}-\x{06FF}]+(?: +[\x{0600}-\x{06FF}]+)*`)

	// senseNumber marks the start of a numbered sense.
	senseNumber = regexp.MustCompile(`(\d+)\.\s+`)

	// contamination is the signature of a subsequent entry's header leaked
	// into sense text: an uppercase run immediately followed by foreign
	// script.
	contamination = regexp.MustCompile(`[А-ЯЁӢҚҒҲЎҶ]{2,}\s+[\x{0600}-\x{06FF}]+`)

	whitespace = regexp.MustCompile(`\s+`)
)

// Summary holds counts from one extraction pass over a block sequence.
type Summary struct {
	// Entries is the number of blocks successfully parsed.
	Entries int

	// Rows is the number of denormalized sense rows produced.
	Rows int

	// SkippedBlocks counts blocks whose header failed the headword
	// re-match. Segmentation only emits validated headers, so this should
	// stay zero; a violation is skipped, never fatal.
	SkippedBlocks int

	// Repairs counts sense texts truncated at a contamination signature.
	Repairs int
}

// Report combines segmentation and extraction counts for one document.
type Report struct {
	Segmentation segment.Summary
	Extraction   Summary
}

// Document runs the segmenter and the field extractor over cleaned text
// and returns the denormalized rows in source order.
func Document(text string, tables lexicon.Tables, lookaheadWindow int) ([]types.Row, Report) {
	blocks, segSummary := segment.Split(strings.Split(text, "\n"), lookaheadWindow)
	rows, summary := Blocks(blocks, tables)
	return rows, Report{Segmentation: segSummary, Extraction: summary}
}

// Blocks extracts structured rows from each block in order.
func Blocks(blocks []segment.Block, tables lexicon.Tables) ([]types.Row, Summary) {
	var (
		rows    []types.Row
		summary Summary
	)

	for _, b := range blocks {
		blockRows, repairs, ok := Block(b, tables)
		if !ok {
			summary.SkippedBlocks++
			continue
		}
		rows = append(rows, blockRows...)
		summary.Entries++
		summary.Rows += len(blockRows)
		summary.Repairs += repairs
	}

	return rows, summary
}

// Block parses one raw entry block into one row per sense, all rows
// sharing the entry-level fields. It reports the number of contamination
// repairs applied. ok is false when the header does not re-match the
// headword pattern; such a block is skipped by the caller.
func Block(b segment.Block, tables lexicon.Tables) (rows []types.Row, repairs int, ok bool) {
	headword, end, ok := segment.MatchHeadword(b.Header)
	if !ok {
		return nil, 0, false
	}
	remainder := strings.TrimSpace(b.Header[end:])

	var etymology string
	if loc := etymMarker.FindStringSubmatchIndex(remainder); loc != nil {
		rest := remainder[loc[1]:]
		if r, _ := utf8.DecodeRuneInString(rest); normalize.IsRTL(r) {
			etymology = tables.Etymology.Expand(remainder[loc[2]:loc[3]])
			remainder = strings.TrimSpace(rest)
		}
	}

	var gloss string
	if loc := glossRun.FindStringIndex(remainder); loc != nil {
		gloss = normalize.ReverseWordOrder(remainder[:loc[1]])
		remainder = strings.TrimSpace(remainder[loc[1]:])
	}

	var register string
	if key, expansion, matched := tables.Register.MatchPrefix(remainder); matched {
		register = expansion
		remainder = strings.TrimSpace(remainder[len(key):])
	}

	candidate := remainder
	if len(b.Body) > 0 {
		candidate += "\n" + strings.Join(b.Body, "\n")
	}

	senses, repairs := splitSenses(candidate, b.Body)

	rows = make([]types.Row, 0, len(senses))
	for _, s := range senses {
		rows = append(rows, types.Row{
			Headword:        headword,
			Gloss:           gloss,
			EtymologyMarker: etymology,
			RegisterMarker:  register,
			SenseNumber:     s.number,
			SenseText:       s.text,
		})
	}
	return rows, repairs, true
}

// sense is one numbered or unnumbered definition before denormalization.
type sense struct {
	number int
	text   string
}

// splitSenses segments candidate text into senses. Numbered senses are
// delimited by a decimal integer, period, and whitespace, with the number
// at start of text or preceded by whitespace; each sense runs to the next
// delimiter or end of text. Without delimiters the whole candidate
// collapses into a single unnumbered sense, falling back to the verbatim
// body text when that collapse is empty. Every produced sense is scrubbed
// of contamination.
func splitSenses(candidate string, body []string) ([]sense, int) {
	repairs := 0

	scrub := func(text string) string {
		if loc := contamination.FindStringIndex(text); loc != nil {
			text = strings.TrimSpace(text[:loc[0]])
			repairs++
		}
		return text
	}

	var marks [][]int
	for _, loc := range senseNumber.FindAllStringSubmatchIndex(candidate, -1) {
		if loc[0] == 0 || isSpaceByte(candidate[loc[0]-1]) {
			marks = append(marks, loc)
		}
	}

	if len(marks) == 0 {
		text := collapse(candidate)
		if text == "" {
			text = strings.TrimSpace(strings.Join(body, "\n"))
		}
		return []sense{{text: scrub(text)}}, repairs
	}

	senses := make([]sense, 0, len(marks))
	for i, loc := range marks {
		number, _ := strconv.Atoi(candidate[loc[2]:loc[3]])
		stop := len(candidate)
		if i+1 < len(marks) {
			stop = marks[i+1][0]
		}
		senses = append(senses, sense{
			number: number,
			text:   scrub(collapse(candidate[loc[1]:stop])),
		})
	}
	return senses, repairs
}

// collapse trims text and folds internal whitespace runs to single spaces.
func collapse(text string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(text), " ")
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
