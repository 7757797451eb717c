// Package csvsource reads DNS record requests from a CSV file with the
// header set {env, zone, type, name, value, ttl}.
package csvsource

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awstools/awstools/internal/records"
)

var (
	ErrHeaderMismatch = errors.New("csv file must have these headers: env,zone,type,name,value,ttl")
	ErrTTLInvalid     = errors.New("ttl is not a non-negative integer")
)

var expectedColumns = []string{"env", "zone", "type", "name", "value", "ttl"}

type File struct {
	reader  *csv.Reader
	columns map[string]int // column name to index
	line    int
}

// New reads and validates the header row. The header must contain exactly
// the six expected column names, in any order; anything else aborts the
// whole run before any row is processed.
func New(r io.Reader) (file *File, err error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	if len(columns) != len(expectedColumns) {
		return nil, fmt.Errorf("%w: got %s", ErrHeaderMismatch, strings.Join(header, ","))
	}
	for _, name := range expectedColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: got %s", ErrHeaderMismatch, strings.Join(header, ","))
		}
	}

	return &File{
		reader:  reader,
		columns: columns,
		line:    1, // header line
	}, nil
}

// Next returns the next record request together with its file line number,
// starting at 2 for the first data row. It returns io.EOF once the file is
// exhausted. A malformed row returns a non-nil error for that row only and
// does not prevent further calls; an unsupported record type is reported
// with an error wrapping records.ErrTypeUnsupported so the caller can count
// it as skipped instead of failed.
func (f *File) Next() (line int, record records.Record, err error) {
	fields, err := f.reader.Read()
	f.line++
	if errors.Is(err, io.EOF) {
		return f.line, record, io.EOF
	} else if err != nil {
		return f.line, record, fmt.Errorf("reading row: %w", err)
	}

	record.Env = f.field(fields, "env")
	record.Zone = f.field(fields, "zone")
	record.Name = f.field(fields, "name")
	record.Value = f.field(fields, "value")

	record.Type, err = records.ParseType(f.field(fields, "type"))
	if err != nil {
		return f.line, record, err
	}

	ttlString := f.field(fields, "ttl")
	record.TTL, err = strconv.ParseInt(ttlString, 10, 64)
	if err != nil || record.TTL < 0 {
		return f.line, record, fmt.Errorf("%w: %q", ErrTTLInvalid, ttlString)
	}

	return f.line, record, nil
}

func (f *File) field(fields []string, column string) string {
	index := f.columns[column]
	if index >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[index])
}
