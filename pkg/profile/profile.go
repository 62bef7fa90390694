// Package profile reads farm profiles and dashboard datasets from disk.
// The format is chosen by file extension: .yaml/.yml, .json or .toml.
package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/farmsecure/farmsecure/pkg/dashboard"
	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Format is a supported file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFor returns the format implied by path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported file extension %q (want .yaml, .yml, .json or .toml)", filepath.Ext(path))
	}
}

// Decode strictly decodes data in format f into v. Unknown fields are errors.
func Decode(f Format, data []byte, v any) error {
	switch f {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return errors.New("document is empty")
			}
			return err
		}
		return nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

func decodeFile(path string, v any) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if err := Decode(format, data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// LoadProfile reads a single farm profile. When the file does not set a
// name, the file's base name without extension is used.
func LoadProfile(path string) (scoring.Profile, error) {
	var p scoring.Profile
	if err := decodeFile(path, &p); err != nil {
		return scoring.Profile{}, err
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// LoadProfiles reads each path in order and stops at the first error.
func LoadProfiles(paths []string) ([]scoring.Profile, error) {
	profiles := make([]scoring.Profile, 0, len(paths))
	for _, path := range paths {
		p, err := LoadProfile(path)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// LoadDataset reads a dashboard dataset.
func LoadDataset(path string) (*dashboard.Dataset, error) {
	var ds dashboard.Dataset
	if err := decodeFile(path, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}
