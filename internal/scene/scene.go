// Package scene decodes icon scene documents: JSON on the wire, YAML for
// fixtures, and the generic map payloads arriving over MCP tool calls.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/iconlint/iconlint/pkg/domain"
)

// Document is the top-level scene payload: one icon tree plus the
// category it should be validated against.
type Document struct {
	Category domain.Category `json:"category" yaml:"category"`
	Icon     *domain.Node    `json:"icon" yaml:"icon"`
}

// validate rejects documents the engine cannot work with.
func (d *Document) validate() error {
	if d.Icon == nil {
		return fmt.Errorf("scene document has no icon")
	}
	if _, err := domain.ParseCategory(string(d.Category)); err != nil {
		return err
	}
	return nil
}

// DecodeJSON reads a scene document from JSON. Unknown fields are
// rejected so typos in hand-written payloads fail loudly.
func DecodeJSON(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene document: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeYAML reads a scene document from YAML, used for test fixtures.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene document: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DecodeFile picks the decoder by extension (.yaml/.yml vs JSON).
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return DecodeJSON(f)
	}
}

// NodeFromMap decodes an already-parsed generic payload (a JSON object
// that arrived as map[string]any, as MCP tool arguments do) into a node
// tree, honoring the "mixed" paints sentinel.
func NodeFromMap(raw map[string]any) (*domain.Node, error) {
	var node domain.Node
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &node,
		TagName:    "json",
		DecodeHook: paintsHook,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode icon payload: %w", err)
	}
	return &node, nil
}

// paintsHook routes paint values through the JSON codec so the sentinel
// handling lives in exactly one place.
func paintsHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.Paints{}) {
		return data, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var p domain.Paints
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}
