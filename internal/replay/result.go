package replay

import (
	"gopkg.in/yaml.v3"
)

// Outcome reports one argument of an application.
type Outcome struct {
	Category  string `yaml:"category"`
	Parameter string `yaml:"parameter"`
	Binding   string `yaml:"binding,omitempty"`
	Syntax    string `yaml:"syntax,omitempty"`
	Recorded  bool   `yaml:"recorded"`
	Error     string `yaml:"error,omitempty"`
}

func (o Outcome) failed(err error) Outcome {
	o.Error = err.Error()
	return o
}

// Result reports one replayed application.
type Result struct {
	Application string    `yaml:"application"`
	Recorder    string    `yaml:"recorder"`
	Arguments   []Outcome `yaml:"arguments,omitempty"`
	Record      *Record   `yaml:"record,omitempty"`
	Error       string    `yaml:"error,omitempty"`
}

// OK reports whether the record was built.
func (r Result) OK() bool {
	return r.Record != nil
}

// Recorded returns how many arguments were recorded.
func (r Result) Recorded() int {
	n := 0
	for _, o := range r.Arguments {
		if o.Recorded {
			n++
		}
	}

	return n
}

// MarshalResults serializes results to YAML.
func MarshalResults(results []Result) ([]byte, error) {
	return yaml.Marshal(results)
}
