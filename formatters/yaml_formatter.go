package formatters

import (
	"gopkg.in/yaml.v3"

	"github.com/flanksource/pstoedit"
)

// YAMLFormatter handles YAML formatting
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format formats the driver list as YAML
func (f *YAMLFormatter) Format(drivers []pstoedit.DriverRecord) (string, error) {
	if b, err := yaml.Marshal(drivers); err != nil {
		return "", err
	} else {
		return string(b), nil
	}
}
