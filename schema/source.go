package schema

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source produces a JSON-like value tree: map[string]any, []any, string,
// bool, json.Number, and nil.
type Source interface {
	Decode() (any, error)
	Name() string
}

// JSONBytes returns a Source over an in-memory JSON document.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader returns a Source that decodes a single JSON document from r.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// YAMLBytes returns a Source over a YAML document. Numbers are normalized to
// json.Number so schemas see the same shapes as for JSON input.
func YAMLBytes(b []byte) Source { return yamlSource{b: b} }

type jsonSource struct{ r io.Reader }

func (jsonSource) Name() string { return "json" }

func (s jsonSource) Decode() (any, error) {
	dec := json.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input")
		}
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

type yamlSource struct{ b []byte }

func (yamlSource) Name() string { return "yaml" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.Unmarshal(s.b, &v); err != nil {
		return nil, err
	}
	return normalizeYAML(v)
}

func normalizeYAML(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string mapping key %v", k)
			}
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			out[ks] = n
		}
		return out, nil
	case []any:
		for i, e := range t {
			n, err := normalizeYAML(e)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	case int:
		return json.Number(strconv.Itoa(t)), nil
	case int64:
		return json.Number(strconv.FormatInt(t, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(t, 10)), nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, errors.New("NaN and Inf are not representable in JSON")
		}
		return json.Number(strconv.FormatFloat(t, 'f', -1, 64)), nil
	case time.Time:
		return t.Format(time.RFC3339), nil
	default:
		return t, nil
	}
}
