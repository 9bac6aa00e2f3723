package data

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/NeilNjae/pci/pkg/core"
)

// Label is the class of a record.
type Label int

const (
	// Unlabeled marks a query point with no known class.
	Unlabeled Label = -1
	NoMatch   Label = 0
	Match     Label = 1
)

var (
	// ErrMalformedInput is returned for rows with the wrong field count or unparsable fields.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnlabeled is returned when training data holds a record that is neither a match nor a non-match.
	ErrUnlabeled = errors.New("record has no trainable class")
)

func (l Label) String() string {
	switch l {
	case Unlabeled:
		return "unlabeled"
	case NoMatch:
		return "no-match"
	case Match:
		return "match"
	}
	return "label(" + strconv.Itoa(int(l)) + ")"
}

// Valid reports whether l is one of the two trainable classes.
func (l Label) Valid() bool {
	return l == NoMatch || l == Match
}

// ParseLabel parses the trailing label field of a row.
func ParseLabel(s string) (Label, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return Unlabeled, errors.Wrapf(ErrMalformedInput, "label %q is not an integer", s)
	}
	l := Label(n)
	if !l.Valid() {
		return Unlabeled, errors.Wrapf(ErrMalformedInput, "label %d is not 0 or 1", n)
	}
	return l, nil
}

// RawRecord is one ingested row before encoding.
type RawRecord struct {
	Fields []string
	Class  Label
}

// Record is a numeric observation with an optional class.
// Stages never modify a Record in place; they build new ones.
type Record struct {
	Data  []float64
	Class Label
}

// NewRecord copies data into a new Record.
func NewRecord(data []float64, class Label) Record {
	return Record{Data: core.Clone(data), Class: class}
}

// Clone deep copies the record.
func (r Record) Clone() Record {
	return NewRecord(r.Data, r.Class)
}

// Features returns the feature vectors of records, sharing their backing arrays.
func Features(records []Record) [][]float64 {
	return lo.Map(records, func(r Record, _ int) []float64 { return r.Data })
}

// Labels returns the classes of records in order.
func Labels(records []Record) []Label {
	return lo.Map(records, func(r Record, _ int) Label { return r.Class })
}

// Dim returns the feature dimension shared by all records.
func Dim(records []Record) (int, error) {
	return core.Dimension(Features(records))
}

// Partition splits records into matches and non-matches.
// Unlabeled records are in neither set.
func Partition(records []Record) (matches, nonMatches []Record) {
	matches = lo.Filter(records, func(r Record, _ int) bool { return r.Class == Match })
	nonMatches = lo.Filter(records, func(r Record, _ int) bool { return r.Class == NoMatch })
	return matches, nonMatches
}

// CheckLabels returns an error naming the first record without a trainable class.
func CheckLabels(records []Record) error {
	for i, r := range records {
		if !r.Class.Valid() {
			return errors.Wrapf(ErrUnlabeled, "record %d has class %s", i, r.Class)
		}
	}
	return nil
}
