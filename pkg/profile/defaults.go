package profile

import (
	_ "embed"
	"fmt"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
)

//go:embed defaults/dataset.yaml
var defaultDataset []byte

// DefaultDataset returns the built-in demo dataset. Each call decodes a
// fresh copy, so callers may modify the result.
func DefaultDataset() (*dashboard.Dataset, error) {
	var ds dashboard.Dataset
	if err := Decode(FormatYAML, defaultDataset, &ds); err != nil {
		return nil, fmt.Errorf("decoding built-in dataset: %w", err)
	}
	return &ds, nil
}
