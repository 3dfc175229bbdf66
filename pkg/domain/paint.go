package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PaintType distinguishes paints the classifier can inspect from the rest.
type PaintType string

const (
	// PaintSolid is a single flat color. Only solid paints classify.
	PaintSolid PaintType = "solid"
	// PaintOther covers gradients, images and anything else. Such paints
	// are ignored by color classification but still count as "painted".
	PaintOther PaintType = "other"
)

// RGB is a color with channels in [0,1], matching the host's paint model.
type RGB struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
}

// Paint is one entry of a node's fill or stroke list.
type Paint struct {
	Type    PaintType `json:"type" yaml:"type"`
	Color   RGB       `json:"color" yaml:"color"`
	Visible bool      `json:"visible" yaml:"visible"`
}

// Paints is an ordered paint list that may instead be the host's "mixed"
// sentinel: heterogeneous sub-region colors that cannot be inspected
// without a finer per-region API.
type Paints struct {
	Mixed bool
	Items []Paint
}

var mixedSentinel = []byte(`"mixed"`)

// MarshalJSON emits the "mixed" sentinel or the plain list.
func (p Paints) MarshalJSON() ([]byte, error) {
	if p.Mixed {
		return mixedSentinel, nil
	}
	return json.Marshal(p.Items)
}

// UnmarshalJSON accepts either a paint array or the string "mixed".
func (p *Paints) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, mixedSentinel) {
		p.Mixed = true
		p.Items = nil
		return nil
	}
	if bytes.Equal(trimmed, []byte("null")) {
		*p = Paints{}
		return nil
	}
	p.Mixed = false
	if err := json.Unmarshal(data, &p.Items); err != nil {
		return fmt.Errorf("paints must be a list or \"mixed\": %w", err)
	}
	return nil
}

// UnmarshalYAML mirrors the JSON behavior for YAML fixtures.
func (p *Paints) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		if s == "mixed" {
			p.Mixed = true
			p.Items = nil
			return nil
		}
		return fmt.Errorf("paints must be a list or \"mixed\", got %q", s)
	}
	p.Mixed = false
	return unmarshal(&p.Items)
}

// VisibleSolids returns the visible solid paints. Empty when the list is mixed.
func (p Paints) VisibleSolids() []Paint {
	var out []Paint
	for _, item := range p.Items {
		if item.Visible && item.Type == PaintSolid {
			out = append(out, item)
		}
	}
	return out
}
