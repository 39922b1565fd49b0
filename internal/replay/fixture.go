package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"attribute-mapper/pattern"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture is one attribute declaration with the applications to replay.
type Fixture struct {
	Attribute      string          `yaml:"attribute"`
	Package        string          `yaml:"package,omitempty"`
	TypeParameters []TypeParameter `yaml:"type_parameters,omitempty"`
	Constructor    []Parameter     `yaml:"constructor,omitempty"`
	Named          []Parameter     `yaml:"named,omitempty"`
	Applications   []Application   `yaml:"applications"`

	// Dir is the directory Package is resolved from.
	Dir string `yaml:"-"`
}

// TypeParameter declares a type parameter. Its ordinal is its position.
type TypeParameter struct {
	Name string `yaml:"name"`
}

// Parameter declares a constructor or named parameter.
type Parameter struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type,omitempty"`    // Go type expression
	Pattern  string `yaml:"pattern,omitempty"` // pattern expression, see pattern.Parse
	Optional bool   `yaml:"optional,omitempty"`
	Params   bool   `yaml:"params,omitempty"`
	Default  string `yaml:"default,omitempty"` // Go expression
}

// Application is one use of the attribute.
type Application struct {
	Name          string            `yaml:"name"`
	TypeArguments []string          `yaml:"type_arguments,omitempty"`
	Arguments     []string          `yaml:"arguments,omitempty"`
	Named         map[string]string `yaml:"named,omitempty"`
}

// LoadFile loads and parses a YAML fixture from the given path.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a Fixture.
func Parse(data []byte) (*Fixture, error) {
	var f Fixture

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture YAML: %w", err)
	}

	applyDefaults(&f)

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Marshal serializes a Fixture to YAML.
func Marshal(f *Fixture) ([]byte, error) {
	return yaml.Marshal(f)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *Fixture) {
	if f.Attribute == "" {
		f.Attribute = "Attribute"
	}

	for i := range f.Constructor {
		if f.Constructor[i].Pattern == "" {
			f.Constructor[i].Pattern = "?object"
		}
	}

	for i := range f.Named {
		if f.Named[i].Pattern == "" {
			f.Named[i].Pattern = "?object"
		}
	}

	for i := range f.Applications {
		if f.Applications[i].Name == "" {
			f.Applications[i].Name = fmt.Sprintf("application %d", i+1)
		}
	}
}

// Validate reports every declaration error of the fixture.
func (f *Fixture) Validate() error {
	var errs []error

	for i, p := range f.Constructor {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("constructor parameter %d has no name", i))
		}

		if _, err := pattern.ParseExpression(p.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("constructor parameter %q: %w", p.Name, err))
		}

		if p.Params && i != len(f.Constructor)-1 {
			errs = append(errs, fmt.Errorf("constructor parameter %q: only the last parameter can collect params", p.Name))
		}

		if p.Params && p.Optional {
			errs = append(errs, fmt.Errorf("constructor parameter %q: params parameters cannot be optional", p.Name))
		}

		if p.Default != "" && !p.Optional {
			errs = append(errs, fmt.Errorf("constructor parameter %q: only optional parameters have a default", p.Name))
		}
	}

	for i, p := range f.Named {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("named parameter %d has no name", i))
		}

		if _, err := pattern.ParseExpression(p.Pattern); err != nil {
			errs = append(errs, fmt.Errorf("named parameter %q: %w", p.Name, err))
		}

		if p.Optional || p.Params || p.Default != "" {
			errs = append(errs, fmt.Errorf("named parameter %q: parameter modifiers apply to constructor parameters only", p.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFixture, errors.Join(errs...))
	}

	return nil
}
