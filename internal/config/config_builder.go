// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	layers []map[string]string
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]map[string]string, 0, 4),
	}
}

// build merges all layers, later layers overriding earlier ones, and hands
// the result to ParseConfig.
func (b *configBuilder) build() (*EnvConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := make(map[string]string)
	for _, layer := range b.layers {
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	delete(merged, KeyConfigFile)

	return ParseConfig(merged)
}

func (b *configBuilder) withLayer(layer map[string]string) *configBuilder {
	if len(layer) > 0 {
		b.layers = append(b.layers, layer)
	}
	return b
}

func (b *configBuilder) withDotEnv(path string) *configBuilder {
	layer, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.withLayer(layer)
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	return b.withLayer(parseEnv(environ))
}

func (b *configBuilder) withFlags(flags map[string]string) *configBuilder {
	return b.withLayer(flags)
}

// withJSON loads the JSON file named by the CONFIG key of the layers added so
// far. It is a no-op when no layer names one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if p := layer[KeyConfigFile]; p != "" {
			jsonPath = p
		}
	}

	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.withLayer(layer)
}

// GetClientConfig loads, merges, and validates the client configuration from
// all available sources in the following priority order (last source wins):
//  1. .env file (path from -env-file, default ".env"; missing file is fine)
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 1-3)
//
// Returns the immutable *EnvConfig or an error if any source fails to load or
// the merged values fail validation.
func GetClientConfig(args []string) (*EnvConfig, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return newConfigBuilder().
		withDotEnv(flags.EnvFile).
		withEnv(os.Environ()).
		withFlags(flags.Values).
		withJSON().
		build()
}
