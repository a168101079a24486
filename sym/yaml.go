package sym

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlValue[T Scalar] struct {
	Concrete *T               `yaml:"concrete,omitempty"`
	Variable *Variable[T]     `yaml:"variable,omitempty"`
	Equation *yamlEquation[T] `yaml:"equation,omitempty"`
}

type yamlEquation[T Scalar] struct {
	Op       string         `yaml:"op"`
	Operands []yamlValue[T] `yaml:"operands"`
}

func toYamlValue[T Scalar](v Value[T]) yamlValue[T] {
	switch v := v.(type) {
	case Concrete[T]:
		return yamlValue[T]{Concrete: &v.Value}
	case Variable[T]:
		return yamlValue[T]{Variable: &v}
	case Equation[T]:
		return yamlValue[T]{Equation: &yamlEquation[T]{
			Op:       v.Op.String(),
			Operands: []yamlValue[T]{toYamlValue(v.Operands[0]), toYamlValue(v.Operands[1])},
		}}
	}
	return yamlValue[T]{}
}

// ToYAML dumps the tree of v as nested YAML mappings.
func ToYAML[T Scalar](v Value[T]) (string, error) {
	d, err := yaml.Marshal(toYamlValue(v))
	if err != nil {
		return "", errors.Wrap(err, "marshalling value to yaml")
	}
	return string(d), nil
}
