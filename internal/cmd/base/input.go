package base

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"go.wusul.io/sdk/types"
)

// ParseDate accepts a date in any common format, such as "2025-01-31",
// "01/31/2025" or "Jan 31 2025", and returns it in the layout the API uses.
// An empty string is returned as is.
func ParseDate(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t.Format(types.DateLayout), nil
}

// DecodeFile reads a YAML or JSON document from path into v, matching the
// document keys against the json tags of v.
func (c *Command) DecodeFile(path string, v any) error {
	data, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      v,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}
