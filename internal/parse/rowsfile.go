// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.yaml.in/yaml/v3"

	"github.com/tajiklex/farhang/pkg/types"
)

// WriteRows marshals a row set to a YAML file, the hand-off format between
// the parse and store stages.
func WriteRows(path string, set types.RowSet) error {
	data, err := yaml.Marshal(&set)
	if err != nil {
		return fmt.Errorf("marshaling rows: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRows reads a row set from a YAML file written by WriteRows.
func ReadRows(path string) (types.RowSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RowSet{}, fmt.Errorf("reading rows file %s: %w", path, err)
	}
	var set types.RowSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return types.RowSet{}, fmt.Errorf("parsing rows file %s: %w", path, err)
	}
	return set, nil
}

// csvHeader lists the CSV columns in output-schema order.
var csvHeader = []string{
	"headword", "gloss", "etymology_marker", "register_marker",
	"sense_number", "sense_text",
}

// WriteCSV writes rows as UTF-8 CSV with a header line. Unnumbered senses
// leave the sense_number column empty.
func WriteCSV(w io.Writer, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, r := range rows {
		number := ""
		if r.Numbered() {
			number = strconv.Itoa(r.SenseNumber)
		}
		record := []string{
			r.Headword, r.Gloss, r.EtymologyMarker, r.RegisterMarker,
			number, r.SenseText,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
