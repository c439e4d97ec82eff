package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for output formatting.
type Formatter interface {
	Format(data any) string
}

// NewFormatter returns a Formatter for the given format string.
// Supported formats: "table" (default), "json", "yaml".
func NewFormatter(format string) Formatter {
	switch strings.ToLower(format) {
	case "json":
		return &JSONFormatter{}
	case "yaml":
		return &YAMLFormatter{}
	default:
		return &TableFormatter{}
	}
}

// TableFormatter renders appliance response envelopes as aligned text
// tables using tabwriter. A single-key envelope wrapping a list becomes a
// table with one row per object; everything else is printed as key/value
// lines.
type TableFormatter struct{}

func (f *TableFormatter) Format(data any) string {
	envelope, ok := data.(map[string]any)
	if !ok {
		return fmt.Sprintf("%v\n", data)
	}
	if len(envelope) == 0 {
		return "No objects found.\n"
	}

	if len(envelope) == 1 {
		for _, v := range envelope {
			switch val := v.(type) {
			case []any:
				return formatList(val)
			case map[string]any:
				return formatKeyValues(unwrapVariant(val))
			}
		}
	}

	return formatKeyValues(envelope)
}

// formatList renders a list of objects as a table, one row each.
func formatList(items []any) string {
	if len(items) == 0 {
		return "No objects found.\n"
	}

	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			rows = append(rows, map[string]any{"value": item})
			continue
		}
		rows = append(rows, unwrapVariant(obj))
	}

	cols := columnOrder(rows)

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = strings.ToUpper(col)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for _, row := range rows {
		vals := make([]string, len(cols))
		for i, col := range cols {
			vals[i] = cellValue(row[col])
		}
		fmt.Fprintln(w, strings.Join(vals, "\t"))
	}

	w.Flush()
	return buf.String()
}

// formatKeyValues renders a map as sorted key/value lines.
func formatKeyValues(m map[string]any) string {
	if len(m) == 0 {
		return "No objects found.\n"
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	for _, k := range keys {
		fmt.Fprintf(w, "%s:\t%s\n", k, cellValue(m[k]))
	}
	w.Flush()
	return buf.String()
}

// unwrapVariant flattens the single-key IP version wrapper the appliance
// puts around object bodies, e.g. {"ipv4": {...}}.
func unwrapVariant(obj map[string]any) map[string]any {
	if len(obj) != 1 {
		return obj
	}
	for _, v := range obj {
		if inner, ok := v.(map[string]any); ok {
			return inner
		}
	}
	return obj
}

// columnOrder returns the union of row keys with name and uuid first and
// the rest sorted.
func columnOrder(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var rest []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				if k != "name" && k != "uuid" {
					rest = append(rest, k)
				}
			}
		}
	}
	sort.Strings(rest)

	var cols []string
	if seen["name"] {
		cols = append(cols, "name")
	}
	if seen["uuid"] {
		cols = append(cols, "uuid")
	}
	return append(cols, rest...)
}

// cellValue renders a single table cell. Nested structures become compact
// JSON so rows stay on one line.
func cellValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case map[string]any, []any:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// JSONFormatter formats data as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(data any) string {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("error formatting JSON: %v\n", err)
	}
	return string(b) + "\n"
}

// YAMLFormatter formats data as YAML.
type YAMLFormatter struct{}

func (f *YAMLFormatter) Format(data any) string {
	b, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Sprintf("error formatting YAML: %v\n", err)
	}
	return string(b)
}
