// Package config loads and validates the small JSON-backed geometry
// description a spharm-based tool needs to build a sphere.SpectralSphere,
// in the same shape the teacher's preset package loads piano parameters.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/algo-spharm/sphere"
)

// GeometryConfig is the JSON schema for a spectral-sphere geometry.
type GeometryConfig struct {
	Nlon   int     `json:"nlon"`
	Nlat   int     `json:"nlat"`
	Ntrunc int     `json:"ntrunc"`
	Radius float64 `json:"radius"`
}

// DefaultGeometryConfig returns a modest geometry suitable for development
// and tests: T21 triangular truncation on a 64x32 Gaussian grid of a
// unit sphere.
func DefaultGeometryConfig() *GeometryConfig {
	return &GeometryConfig{
		Nlon:   64,
		Nlat:   32,
		Ntrunc: 21,
		Radius: 1.0,
	}
}

// Load reads a GeometryConfig from a JSON file and validates it.
func Load(path string) (*GeometryConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c GeometryConfig
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes c to path as indented JSON.
func (c *GeometryConfig) Save(path string) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate surfaces sphere.ErrInvalidGeometry for a bad config by running
// sphere.New on it and discarding the result.
func (c *GeometryConfig) Validate() error {
	s, err := c.NewSphere()
	if err != nil {
		return err
	}
	s.Release()
	return nil
}

// NewSphere builds a sphere.SpectralSphere from this configuration.
func (c *GeometryConfig) NewSphere() (*sphere.SpectralSphere, error) {
	return sphere.New(c.Nlon, c.Nlat, c.Ntrunc, c.Radius)
}
