package output

import (
	"fmt"
	"strconv"
	"strings"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

// Keys returns the selected field keys in order.
func (s FieldSelection) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

var fieldRegistry = map[string]string{
	"file":    "FILE",
	"line":    "LINE",
	"col":     "COL",
	"kind":    "KIND",
	"depth":   "DEPTH",
	"before":  "BEFORE",
	"after":   "AFTER",
	"snippet": "SNIPPET",
}

var fieldAliases = map[string]string{
	"path":   "file",
	"type":   "kind",
	"column": "col",
	"text":   "snippet",
}

// DefaultRowFields is used by tsv, csv and markdown when --fields is empty.
var DefaultRowFields = []string{"file", "line", "kind", "depth", "snippet"}

// DefaultTableFields is used by the table output, which already groups rows by file.
var DefaultTableFields = []string{"line", "kind", "depth", "snippet"}

// ResolveFields parses a comma separated --fields value. An empty value selects defaults.
func ResolveFields(raw string, defaults []string) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	var keys []string
	if raw == "" {
		keys = defaults
	} else {
		for _, part := range strings.Split(raw, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
			}
			keys = append(keys, name)
		}
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, name := range keys {
		key := strings.ToLower(name)
		if canon, ok := fieldAliases[key]; ok {
			key = canon
		}
		header, ok := fieldRegistry[key]
		if !ok {
			return FieldSelection{}, fmt.Errorf("unknown field: %s", name)
		}
		sel.Fields = append(sel.Fields, Field{Key: key, Header: header})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(row Row, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = formatFieldValue(row, f.Key)
	}
	return out
}

func formatFieldValue(row Row, key string) string {
	switch key {
	case "file":
		return row.File
	case "line":
		return strconv.Itoa(row.Line)
	case "col":
		return strconv.Itoa(row.Col)
	case "kind":
		return row.Kind.String()
	case "depth":
		return formatDepth(row.DepthBefore, row.DepthAfter)
	case "before":
		return strconv.Itoa(row.DepthBefore)
	case "after":
		return strconv.Itoa(row.DepthAfter)
	case "snippet":
		return row.Snippet
	default:
		return ""
	}
}

func formatDepth(before, after int) string {
	return strconv.Itoa(before) + " -> " + strconv.Itoa(after)
}
