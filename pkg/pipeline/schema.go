package pipeline

import (
	"strconv"

	"github.com/NeilNjae/pci/pkg/dataprep"
)

// Schema describes the columns of an encoded dataset.
type Schema struct {
	FeatureNames []string
	Types        []string // "float", "category" or "count"
}

// MatchSchema describes the output of dataprep.EncodeMatch.
func MatchSchema() Schema {
	return Schema{
		FeatureNames: dataprep.FeatureNames,
		Types:        []string{"float", "category", "category", "float", "category", "category", "count"},
	}
}

// NumericSchema names dim plain numeric columns.
func NumericSchema(dim int) Schema {
	s := Schema{FeatureNames: make([]string, dim), Types: make([]string, dim)}
	for i := 0; i < dim; i++ {
		s.FeatureNames[i] = "x" + strconv.Itoa(i)
		s.Types[i] = "float"
	}
	return s
}

// SchemaFor returns the schema of an encoding name for data of width dim.
func SchemaFor(encoding string, dim int) Schema {
	if encoding == "numeric" {
		return NumericSchema(dim)
	}
	return MatchSchema()
}

// Name returns the name of column i, or its index when the schema is shorter.
func (s Schema) Name(i int) string {
	if i < len(s.FeatureNames) {
		return s.FeatureNames[i]
	}
	return strconv.Itoa(i)
}
