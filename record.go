package codata

import "gopkg.in/yaml.v3"

var (
	_ yaml.Marshaler = Constant{}
	_ yaml.Marshaler = (*Table)(nil)
)

// Record is a plain snapshot of a Constant for serialisers.
// Numbers are float64; Precision is the derived relative uncertainty.
type Record struct {
	Name        string  `yaml:"name" json:"name"`
	Key         string  `yaml:"key" json:"key"`
	Value       float64 `yaml:"value" json:"value"`
	Uncertainty float64 `yaml:"uncertainty" json:"uncertainty"`
	Precision   float64 `yaml:"precision" json:"precision"`
	Unit        string  `yaml:"unit,omitempty" json:"unit,omitempty"`
}

// Record returns the snapshot of c.
func (c Constant) Record() Record {
	return Record{
		Name:        c.name,
		Key:         c.key,
		Value:       c.value,
		Uncertainty: c.uncertainty,
		Precision:   c.Precision(),
		Unit:        c.unit,
	}
}

// MarshalYAML encodes c as its Record.
func (c Constant) MarshalYAML() (interface{}, error) {
	return c.Record(), nil
}

// tableDoc is the serialised layout of a Table.
type tableDoc struct {
	Revision  int      `yaml:"revision" json:"revision"`
	Constants []Record `yaml:"constants" json:"constants"`
}

// Records returns the snapshot of every constant in table order.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.constants))
	for i, c := range t.constants {
		out[i] = c.Record()
	}

	return out
}

// MarshalYAML encodes t as its revision followed by the records of its constants.
func (t *Table) MarshalYAML() (interface{}, error) {
	return tableDoc{Revision: t.revision, Constants: t.Records()}, nil
}
