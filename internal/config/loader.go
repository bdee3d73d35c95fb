package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/tagaudit/internal/engine/opts"
)

var decoders = map[string]func([]byte, any) error{
	".yaml": yaml.Unmarshal,
	".yml":  yaml.Unmarshal,
	".toml": toml.Unmarshal,
	".json": json.Unmarshal,
}

// Load reads a YAML, TOML or JSON config file. Keys may be flat or grouped
// under "engine" and "ui"; unknown keys and mistyped values are errors.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Config{}, nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return Config{}, fmt.Errorf("unsupported config extension: %s", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var raw map[string]any
	if err := decode(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg, err := fromMap(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// fromMap applies the engine and ui blocks first so flat keys win over them.
// Keys are visited in sorted order; setting one key twice through aliases
// within the same block is an error.
func fromMap(raw map[string]any) (Config, error) {
	var cfg Config
	flat := make(map[string]any, len(raw))
	blocks := make(map[string]any, 2)
	for _, key := range sortedKeys(raw) {
		norm := normalizeKey(key)
		if norm != sectionEngine && norm != sectionUI {
			flat[key] = raw[key]
			continue
		}
		if _, dup := blocks[norm]; dup {
			return cfg, fmt.Errorf("section %s is set more than once", norm)
		}
		blocks[norm] = raw[key]
	}
	for _, section := range []string{sectionEngine, sectionUI} {
		value, ok := blocks[section]
		if !ok {
			continue
		}
		block, err := toStringKeyMap(value)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", section, err)
		}
		if err := applyBlock(&cfg, block, section); err != nil {
			return cfg, fmt.Errorf("%s: %w", section, err)
		}
	}
	if err := applyBlock(&cfg, flat, ""); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyBlock(cfg *Config, block map[string]any, section string) error {
	seen := make(map[string]string, len(block))
	for _, key := range sortedKeys(block) {
		s, ok := lookup(key, section)
		if !ok {
			return fmt.Errorf("unknown config key: %s", key)
		}
		if prev, dup := seen[s.key]; dup {
			return fmt.Errorf("%s and %s both set %s", prev, key, s.key)
		}
		seen[s.key] = key
		if err := applyFileValue(cfg, s, block[key]); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func applyFileValue(cfg *Config, s setting, value any) error {
	var (
		v   any
		err error
	)
	switch s.kind {
	case stringValue:
		v, err = fileString(value, s.key)
	case boolValue:
		v, err = fileBool(value, s.key)
	case intValue:
		v, err = fileInt(value, s.key)
	case listValue:
		v, err = fileList(value, s.key)
	}
	if err != nil {
		return err
	}
	s.apply(cfg, v)
	return nil
}

func fileString(value any, key string) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", fmt.Errorf("%s cannot be null", key)
	case string:
		return strings.TrimSpace(v), nil
	default:
		return "", fmt.Errorf("expected string for %s, got %T", key, value)
	}
}

func fileBool(value any, key string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, key)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", key, value)
	}
}

// fileInt accepts the integer shapes produced by the three decoders: int (yaml),
// int64 (toml) and whole float64 (json).
func fileInt(value any, key string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, fmt.Errorf("%s is out of range: %d", key, v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > 1<<53 {
			return 0, fmt.Errorf("expected integer for %s, got %v", key, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", key, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", key, value)
	}
}

func fileList(value any, key string) ([]string, error) {
	var items []string
	switch v := value.(type) {
	case string:
		items = []string{v}
	case []string:
		items = v
	case []any:
		items = make([]string, 0, len(v))
		for _, item := range v {
			s, err := fileString(item, key)
			if err != nil {
				return nil, err
			}
			items = append(items, s)
		}
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", key, value)
	}
	out := engineopts.SplitMulti(items)
	if out == nil {
		out = []string{}
	}
	return out, nil
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}
