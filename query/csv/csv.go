// Package csv sources query sequences from CSV data and writes them
// back out. Records are fully materialized into the returned query.
package csv

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/awalsh128/fluentgo/query/core"
)

// ReaderOption configures a CSV reader.
type ReaderOption func(*csv.Reader)

// WithComma reads fields separated by the given rune instead of ','.
func WithComma(comma rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comma = comma
	}
}

// WithComment skips any line whose first rune is the given character.
func WithComment(comment rune) ReaderOption {
	return func(r *csv.Reader) {
		r.Comment = comment
	}
}

// WithFieldsPerRecord enforces a fixed field count per record when n is
// positive. Zero locks the count to whatever the first record has, and
// a negative n disables the check entirely.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *csv.Reader) {
		r.FieldsPerRecord = n
	}
}

// WithLazyQuotes accepts bare quotes inside unquoted fields and
// non-doubled quotes inside quoted ones.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *csv.Reader) {
		r.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace strips whitespace at the start of each field.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *csv.Reader) {
		r.TrimLeadingSpace = trim
	}
}

// ReadRecords reads every row of the CSV file at path into a query
// sequence of string records.
func ReadRecords(path string, opts ...ReaderOption) (*core.Query[[]string], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadRecordsFrom(file, opts...)
}

// ReadRecordsFrom reads every CSV record from r into a query sequence.
func ReadRecordsFrom(r io.Reader, opts ...ReaderOption) (*core.Query[[]string], error) {
	reader := csv.NewReader(r)
	for _, opt := range opts {
		opt(reader)
	}
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return core.New(records), nil
}

// WriteRecords consumes the query and writes its records to w as CSV.
func WriteRecords(w io.Writer, q *core.Query[[]string]) error {
	writer := csv.NewWriter(w)
	if err := writer.WriteAll(q.ToVector()); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
