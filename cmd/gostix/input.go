package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Sqooba/gostix/internal/jsonval"
)

// readDocument loads one document and returns its value tree in wire shape.
// Supported inputs: .json, .jsonc, .yaml/.yml, and any of those compressed
// as .gz.
func readDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return decodeDocument(path, data)
}

func decodeDocument(name string, data []byte) (any, error) {
	if strings.HasSuffix(name, ".gz") {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if err := zr.Close(); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		name = strings.TrimSuffix(name, ".gz")
	}
	switch {
	case strings.HasSuffix(name, ".jsonc"):
		data = jsonc.ToJSON(data)
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		v, err := normalizeYAML(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return v, nil
	}
	v, err := jsonval.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// normalizeYAML rewrites a yaml.v3 tree into the wire value shape:
// map[string]any, []any, string, jsonval.Number, bool, nil. YAML-resolved
// timestamps become millisecond UTC strings.
func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ne, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[k] = ne
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported YAML key %v (%T)", k, k)
			}
			ne, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[ks] = ne
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			ne, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[i] = ne
		}
		return out, nil
	case int:
		return jsonval.Number(strconv.Itoa(t)), nil
	case int64:
		return jsonval.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return jsonval.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		return jsonval.Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case time.Time:
		return t.UTC().Format("2006-01-02T15:04:05.000Z"), nil
	case string, bool, nil:
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported YAML value %v (%T)", t, t)
	}
}

// writeDocument writes data to path, gzip-compressed when path ends in .gz.
// An empty path means stdout.
func writeDocument(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if strings.HasSuffix(path, ".gz") {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, 0o644)
}
