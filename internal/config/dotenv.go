// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is read when no -env-file flag is given.
const DefaultDotEnvPath = ".env"

// parseDotEnv reads a .env file without touching the process environment.
// A missing file yields an empty layer.
func parseDotEnv(path string) (map[string]string, error) {
	if path == "" {
		path = DefaultDotEnvPath
	}

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	return filterKnown(values), nil
}
