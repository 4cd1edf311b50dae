package formatters

import (
	"encoding/json"

	"github.com/flanksource/pstoedit"
)

// JSONFormatter handles JSON formatting
type JSONFormatter struct {
	Indent string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		Indent: "  ",
	}
}

// Format formats the driver list as indented JSON
func (f *JSONFormatter) Format(drivers []pstoedit.DriverRecord) (string, error) {
	if b, err := json.MarshalIndent(drivers, "", f.Indent); err != nil {
		return "", err
	} else {
		return string(b), nil
	}
}
