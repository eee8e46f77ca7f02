// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tajiklex/farhang/pkg/types"
)

// QueryOptions holds parameters for dictionary queries.
type QueryOptions struct {
	// Headword filters by headword, exact unless Prefix is set.
	Headword string

	// Prefix makes the headword filter a prefix match.
	Prefix bool

	// Search is an FTS5 full-text query over headwords and sense texts.
	Search string

	// Etymology filters by expanded etymology marker.
	Etymology string

	// Register filters by expanded register marker.
	Register string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Headword == "" && q.Search == "" && q.Etymology == "" && q.Register == ""
}

// Retrieve queries the dictionary with optional full-text search and
// structured filters. Full-text results rank by relevance; structured-only
// results keep source order.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Row, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Search != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT r.headword, r.gloss, r.etymology_marker, r.register_marker,
				r.sense_number, r.sense_text
			FROM rows_fts
			JOIN rows r ON r.rowid = rows_fts.rowid
			WHERE rows_fts MATCH ?`)
		args = append(args, opts.Search)
	} else {
		qb.WriteString(
			`SELECT r.headword, r.gloss, r.etymology_marker, r.register_marker,
				r.sense_number, r.sense_text
			FROM rows r
			WHERE 1=1`)
	}

	if opts.Headword != "" {
		if opts.Prefix {
			qb.WriteString(` AND r.headword LIKE ? ESCAPE '\'`)
			args = append(args, escapeLike(opts.Headword)+"%")
		} else {
			qb.WriteString(` AND r.headword = ?`)
			args = append(args, opts.Headword)
		}
	}

	if opts.Etymology != "" {
		qb.WriteString(` AND r.etymology_marker = ?`)
		args = append(args, opts.Etymology)
	}

	if opts.Register != "" {
		qb.WriteString(` AND r.register_marker = ?`)
		args = append(args, opts.Register)
	}

	if useFTS {
		qb.WriteString(` ORDER BY rows_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY r.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	return s.queryRows(ctx, qb.String(), args...)
}

// All returns every stored row in source order, for exports and the
// quality report.
func (s *Store) All(ctx context.Context) ([]types.Row, error) {
	return s.queryRows(ctx,
		`SELECT headword, gloss, etymology_marker, register_marker, sense_number, sense_text
		 FROM rows ORDER BY rowid`)
}

func (s *Store) queryRows(ctx context.Context, query string, args ...any) ([]types.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying dictionary: %w", err)
	}
	defer rows.Close()

	var results []types.Row
	for rows.Next() {
		var (
			r         types.Row
			gloss     sql.NullString
			etymology sql.NullString
			register  sql.NullString
			number    sql.NullInt64
		)
		if err := rows.Scan(&r.Headword, &gloss, &etymology, &register, &number, &r.SenseText); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		r.Gloss = gloss.String
		r.EtymologyMarker = etymology.String
		r.RegisterMarker = register.String
		r.SenseNumber = int(number.Int64)
		results = append(results, r)
	}
	return results, rows.Err()
}

// escapeLike escapes LIKE wildcards in a user-supplied prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// MarkerCount is one marker with its row count, for the stats report.
type MarkerCount struct {
	Marker string
	Count  int
}

// Stats summarizes coverage of the stored dictionary.
type Stats struct {
	TotalRows     int
	Headwords     int
	WithGloss     int
	WithEtymology int
	WithRegister  int
	Numbered      int
	TopEtymology  []MarkerCount
	TopRegister   []MarkerCount
}

// CollectStats computes row totals, field coverage, and the most frequent
// markers.
func (s *Store) CollectStats(ctx context.Context) (Stats, error) {
	var st Stats

	err := s.db.QueryRowContext(ctx,
		`SELECT count(*),
			count(DISTINCT headword),
			count(gloss),
			count(etymology_marker),
			count(register_marker),
			count(sense_number)
		 FROM rows`,
	).Scan(&st.TotalRows, &st.Headwords, &st.WithGloss, &st.WithEtymology, &st.WithRegister, &st.Numbered)
	if err != nil {
		return Stats{}, fmt.Errorf("collecting totals: %w", err)
	}

	st.TopEtymology, err = s.topMarkers(ctx, "etymology_marker")
	if err != nil {
		return Stats{}, err
	}
	st.TopRegister, err = s.topMarkers(ctx, "register_marker")
	if err != nil {
		return Stats{}, err
	}
	return st, nil
}

func (s *Store) topMarkers(ctx context.Context, column string) ([]MarkerCount, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT %s, count(*) FROM rows WHERE %s IS NOT NULL
		 GROUP BY %s ORDER BY count(*) DESC LIMIT 15`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("counting %s: %w", column, err)
	}
	defer rows.Close()

	var counts []MarkerCount
	for rows.Next() {
		var mc MarkerCount
		if err := rows.Scan(&mc.Marker, &mc.Count); err != nil {
			return nil, fmt.Errorf("scanning marker count: %w", err)
		}
		counts = append(counts, mc)
	}
	return counts, rows.Err()
}
