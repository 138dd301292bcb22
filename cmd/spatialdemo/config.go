// config.go - optional YAML overrides for the process-wide mixer tunables

/*
spatialmixer - a spatial audio mixing engine core

(c) 2026 The spatialmixer authors
https://github.com/soundstage/spatialmixer

License: GPLv3 or later
*/

package main

import (
	"os"

	"github.com/soundstage/spatialmixer"
	"gopkg.in/yaml.v3"
)

// tunables mirrors the process-wide knobs that are safe to override
// from a config file rather than a compile-time constant.
type tunables struct {
	ConeScale *float64 `yaml:"coneScale"`
	ZScale    *float64 `yaml:"zScale"`
}

// loadTunables reads path (if non-empty) and applies any overrides it
// contains to the package-level ConeScale/ZScale knobs.
func loadTunables(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var t tunables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return err
	}
	if t.ConeScale != nil {
		spatialmixer.ConeScale = *t.ConeScale
	}
	if t.ZScale != nil {
		spatialmixer.ZScale = *t.ZScale
	}
	return nil
}
