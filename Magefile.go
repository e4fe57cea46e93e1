//go:build mage
// +build mage

package main

import (
	// mage:import
	build "github.com/grafana/grafana-plugin-sdk-go/build"

	"github.com/magefile/mage/sh"
)

const internalPkg = "github.com/grafana/surrealdb-datasource/pkg/internal"

// BuildRelease builds every target with the version and commit stamped in.
func BuildRelease() {
	build.SetBeforeBuildCallback(func(cfg build.Config) (build.Config, error) {
		cfg.CustomVars = map[string]string{
			internalPkg + ".Version":   version(),
			internalPkg + ".BuildHash": hash(),
		}

		return cfg, nil
	})

	build.BuildAll()
}

// Default configures the default target.
var Default = build.BuildAll

func hash() string {
	hash, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	return hash
}

func version() string {
	tag, err := sh.Output("git", "describe", "--tags", "--abbrev=0")
	if err != nil || tag == "" {
		return "dev"
	}
	return tag
}
