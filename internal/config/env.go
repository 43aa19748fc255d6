// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is loaded from the working directory when present.
const DefaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads the given dotenv files into the process environment.
// Missing files are skipped. Variables that are already set are not
// overridden.
func loadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("error loading %s: %w", p, err)
		}
	}

	return nil
}

// GetAppConfig returns only the [App] group read from the environment
// (after loading dotenvFiles). It performs no validation so that callers
// such as the operator CLI can overlay their own flags first.
func GetAppConfig(dotenvFiles ...string) (App, error) {
	if err := loadDotEnv(dotenvFiles...); err != nil {
		return App{}, err
	}

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg); err != nil {
		return App{}, err
	}

	return cfg.App, nil
}
