// Package specfile loads TOML specification documents for the CLI.
// Documents describe specifications over the JSON value domain: the
// types a decoded JSON document can contain (string, float64, bool,
// []any, map[string]any).
package specfile

import (
	"crypto/sha256"
	"fmt"
	"os"
	"reflect"

	"github.com/BurntSushi/toml"

	"attest/internal/spec"
)

// Digest identifies file content by SHA-256.
type Digest [sha256.Size]byte

// Document is a loaded specification document.
type Document struct {
	Path   string
	Digest Digest
	Root   spec.Raw
}

type fileDoc struct {
	Version int     `toml:"version"`
	Spec    nodeDoc `toml:"spec"`
}

type nodeDoc struct {
	Kind     string    `toml:"kind"`
	Type     string    `toml:"type"`
	Types    []string  `toml:"types"`
	Members  []nodeDoc `toml:"members"`
	Elem     *nodeDoc  `toml:"elem"`
	Slots    []nodeDoc `toml:"slots"`
	Key      *nodeDoc  `toml:"key"`
	Value    *nodeDoc  `toml:"value"`
	Literals []any     `toml:"literals"`
}

// Load reads and builds a specification document. Unknown kind strings
// become unsupported nodes carrying the raw identifier, so checking
// against them fails loudly with the identifier embedded instead of
// failing here.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read specification document: %w", err)
	}
	var doc fileDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	root, err := buildNode(doc.Spec, path)
	if err != nil {
		return nil, err
	}
	return &Document{
		Path:   path,
		Digest: sha256.Sum256(data),
		Root:   root,
	}, nil
}

func buildNode(d nodeDoc, path string) (spec.Raw, error) {
	switch d.Kind {
	case "any":
		return spec.Any(), nil
	case "type":
		t, err := typeByName(d.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return t, nil
	case "types":
		ts := make([]reflect.Type, len(d.Types))
		for i, name := range d.Types {
			t, err := typeByName(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			ts[i] = t
		}
		return ts, nil
	case "union":
		members, err := buildNodes(d.Members, path)
		if err != nil {
			return nil, err
		}
		return spec.Union(members...), nil
	case "sequence":
		if d.Elem == nil {
			return spec.Sequence(), nil
		}
		elem, err := buildNode(*d.Elem, path)
		if err != nil {
			return nil, err
		}
		return spec.SeqOf(elem), nil
	case "tuple":
		slots, err := buildNodes(d.Slots, path)
		if err != nil {
			return nil, err
		}
		return spec.TupleOf(slots...), nil
	case "mapping":
		if d.Key == nil && d.Value == nil {
			return spec.Mapping(), nil
		}
		if d.Key == nil || d.Value == nil {
			return nil, fmt.Errorf("%s: %w: mapping needs both key and value", path, spec.ErrMalformed)
		}
		key, err := buildNode(*d.Key, path)
		if err != nil {
			return nil, err
		}
		value, err := buildNode(*d.Value, path)
		if err != nil {
			return nil, err
		}
		return spec.MapOf(key, value), nil
	case "literal":
		return spec.OneOf(normalizeLiterals(d.Literals)...), nil
	case "":
		return nil, fmt.Errorf("%s: %w: node without a kind", path, spec.ErrMalformed)
	default:
		// Recognized later, loudly, with the raw identifier preserved.
		return spec.Unsupported(d.Kind), nil
	}
}

func buildNodes(docs []nodeDoc, path string) ([]spec.Raw, error) {
	out := make([]spec.Raw, len(docs))
	for i, d := range docs {
		n, err := buildNode(d, path)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// typeByName maps a document type name onto the JSON value domain.
func typeByName(name string) (reflect.Type, error) {
	switch name {
	case "string":
		return spec.Of[string](), nil
	case "number", "float":
		return spec.Of[float64](), nil
	case "bool":
		return spec.Of[bool](), nil
	case "array":
		return spec.Of[[]any](), nil
	case "object":
		return spec.Of[map[string]any](), nil
	case "any":
		return spec.Of[any](), nil
	default:
		return nil, fmt.Errorf("%w: unknown type name %q", spec.ErrNotASpec, name)
	}
}

// normalizeLiterals folds TOML integer literals to float64 so they
// compare equal to numbers decoded from JSON.
func normalizeLiterals(in []any) []any {
	out := make([]any, len(in))
	for i, v := range in {
		if n, ok := v.(int64); ok {
			out[i] = float64(n)
			continue
		}
		out[i] = v
	}
	return out
}
