// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preset is a saved query on disk, so a recurring search (for example the
// morning digest filter) need not be retyped.
//
//	query:
//	  keywords: ["diffusion model", "gaussian splatting"]
//	  authors: ["Hinton"]
//	  categories: ["cs.CV", "cs.LG"]
//	  limit: 25
type Preset struct {
	Query Params `yaml:"query"`
}

// LoadPreset reads a preset file.
func LoadPreset(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("reading query file: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parsing query file %s: %w", path, err)
	}
	return p.Query, nil
}

// Merge returns p with every field that is set in override replaced.
func (p Params) Merge(override Params) Params {
	out := p
	if len(override.Keywords) > 0 {
		out.Keywords = override.Keywords
	}
	if len(override.Authors) > 0 {
		out.Authors = override.Authors
	}
	if len(override.Categories) > 0 {
		out.Categories = override.Categories
	}
	if override.From != "" {
		out.From = override.From
	}
	if override.To != "" {
		out.To = override.To
	}
	if override.Limit != 0 {
		out.Limit = override.Limit
	}
	if override.All {
		out.All = true
	}
	return out
}
