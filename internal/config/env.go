// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv converts an os.Environ-style list into a config layer, keeping
// only the keys this package understands.
func parseEnv(environ []string) map[string]string {
	return filterKnown(env.ToMap(environ))
}

func filterKnown(values map[string]string) map[string]string {
	layer := make(map[string]string, len(knownKeys))
	for _, key := range knownKeys {
		if v, ok := values[key]; ok {
			layer[key] = v
		}
	}
	return layer
}
