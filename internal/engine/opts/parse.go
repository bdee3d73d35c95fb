package opts

import (
	"fmt"
	"strconv"
	"strings"
)

var boolLiterals = map[string]bool{
	"1": true, "true": true, "yes": true, "on": true,
	"0": false, "false": false, "no": false, "off": false,
}

// ParseBool accepts 1/0, true/false, yes/no and on/off in any case.
func ParseBool(raw, key string) (bool, error) {
	v, ok := boolLiterals[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return false, fmt.Errorf("invalid value for %s: %q (want true or false)", key, raw)
	}
	return v, nil
}

// ParseIntInRange parses raw and checks lo <= n <= hi. hi < lo means no upper bound.
func ParseIntInRange(raw, key string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	bounded := hi >= lo
	switch {
	case bounded && (n < lo || n > hi):
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, lo, hi, n)
	case n < lo:
		return 0, fmt.Errorf("%s must be >= %d, got %d", key, lo, n)
	}
	return n, nil
}

// Outputs lists the accepted --output values in help order.
var Outputs = []string{"table", "tsv", "csv", "markdown", "json", "ndjson", "sarif", "html"}

var outputAliases = map[string]string{
	"":      "table",
	"text":  "table",
	"md":    "markdown",
	"jsonl": "ndjson",
}

// NormalizeOutput lower-cases and resolves aliases of an --output value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if canon, ok := outputAliases[v]; ok {
		return canon, nil
	}
	for _, known := range Outputs {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("invalid --output: %s (allowed: %s)", value, strings.Join(Outputs, "|"))
}

// SplitMulti flattens repeated and comma separated values, dropping empty items.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			if part := strings.TrimSpace(piece); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
