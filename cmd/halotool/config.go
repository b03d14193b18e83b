package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nehapjoshi/halotools/cosmo"
)

// cosmoConfig mirrors the YAML cosmology file:
//
//	h100: 0.6774
//	omega_m: 0.3089
//	omega_l: 0.6911
type cosmoConfig struct {
	H100   float64 `yaml:"h100"`
	OmegaM float64 `yaml:"omega_m"`
	OmegaL float64 `yaml:"omega_l"`
}

// loadCosmology reads a cosmology from path, or returns Planck15 if path is
// empty.
func loadCosmology(path string) (cosmo.Cosmology, error) {
	if path == "" {
		return cosmo.Planck15, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return cosmo.Cosmology{}, err
	}
	cfg := cosmoConfig{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cosmo.Cosmology{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.H100 <= 0 || cfg.OmegaM <= 0 || cfg.OmegaL < 0 {
		return cosmo.Cosmology{}, fmt.Errorf(
			"%s: h100 and omega_m must be positive, omega_l non-negative", path,
		)
	}
	return cosmo.Cosmology{
		H100: cfg.H100, OmegaM: cfg.OmegaM, OmegaL: cfg.OmegaL,
	}, nil
}
