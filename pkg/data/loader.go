package data

import (
	"bufio"
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ReadCSV reads comma separated rows. The last field of each row is the label; the
// remaining fields are kept as raw strings. Every malformed row is reported in the
// returned error, and no records are returned if any row is malformed.
func ReadCSV(r io.Reader) ([]RawRecord, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var (
		rows []RawRecord
		errs error
	)
	for line := 1; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(ErrMalformedInput, "line %d: %v", line, err))
			continue
		}
		if len(rec) < 2 {
			errs = multierr.Append(errs, errors.Wrapf(ErrMalformedInput, "line %d: %d fields, need features and a label", line, len(rec)))
			continue
		}
		class, err := ParseLabel(strings.TrimSpace(rec[len(rec)-1]))
		if err != nil {
			errs = multierr.Append(errs, errors.WithMessagef(err, "line %d", line))
			continue
		}
		fields := make([]string, len(rec)-1)
		copy(fields, rec[:len(rec)-1])
		rows = append(rows, RawRecord{Fields: fields, Class: class})
	}
	if errs != nil {
		return nil, errs
	}
	return rows, nil
}

// LoadCSV reads the rows of the file at path.
func LoadCSV(path string) ([]RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := ReadCSV(file)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return rows, nil
}

// ParseFloats parses every field as a finite number.
func ParseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "field %d: %q is not a number", i, s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrMalformedInput, "field %d: %q is not a finite number", i, s)
		}
		out[i] = v
	}
	return out, nil
}

// NumericRecords converts rows whose fields are all numbers.
func NumericRecords(rows []RawRecord) ([]Record, error) {
	out := make([]Record, len(rows))
	for i, row := range rows {
		x, err := ParseFloats(row.Fields)
		if err != nil {
			return nil, errors.WithMessagef(err, "row %d", i)
		}
		out[i] = Record{Data: x, Class: row.Class}
	}
	return out, nil
}
