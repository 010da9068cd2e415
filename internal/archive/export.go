// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes one run with its results to w in the given format.
func (s *Store) Export(ctx context.Context, runID int64, format string, w io.Writer) error {
	r, err := s.Get(ctx, runID)
	if err != nil {
		return err
	}
	return Encode(w, format, r)
}

// Encode writes v as YAML or JSON.
func Encode(w io.Writer, format string, v any) error {
	switch format {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q (use %s or %s)", format, FormatYAML, FormatJSON)
	}
}
