package editor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// WriteRecord writes values as a YAML mapping, keys in the given order, to a
// new file in dir (the system temp dir when empty). The caller removes it.
func WriteRecord(dir, title string, keys []string, values map[string]string) (string, error) {
	doc := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, yaml.MapItem{Key: k, Value: values[k]})
	}
	body, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	f, err := os.CreateTemp(dir, "kennel-*.yaml")
	if err != nil {
		return "", fmt.Errorf("failed to create record file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "# %s\n# Save and quit to apply. Empty the file to cancel.\n%s", title, body); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write record file: %w", err)
	}
	return f.Name(), nil
}

// ReadRecord reads a file written by WriteRecord back into field values.
// An empty document yields nil values and no error.
func ReadRecord(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid record file: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	values := make(map[string]string, len(raw))
	for k, v := range raw {
		values[k] = scalar(v)
	}
	return values, nil
}

func scalar(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case time.Time:
		if v.Equal(v.Truncate(24 * time.Hour)) {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}
