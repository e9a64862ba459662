// pdf-unlock - remove password protection from PDF files
// Copyright (C) 2026  The pdf-unlock authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings of the pdf-unlock command from the
// environment and from an optional dotenv file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables understood by pdf-unlock.
const (
	EnvPassword = "PDF_UNLOCK_PASSWORD"
	EnvDebug    = "PDF_UNLOCK_DEBUG"
)

// Config holds the settings which are not given on the command line.
type Config struct {
	// Password is used if no password is given as an argument.
	Password string

	// Debug enables verbose logging.
	Debug bool
}

// Load reads the configuration.
//
// If envFile is not empty, the named dotenv file is read first.  Variables
// set in the process environment take precedence over the file.  The process
// environment itself is not modified.
func Load(envFile string) (*Config, error) {
	var fromFile map[string]string
	if envFile != "" {
		var err error
		fromFile, err = godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	lookup := func(key string) string {
		if val := os.Getenv(key); val != "" {
			return val
		}
		return fromFile[key]
	}

	cfg := &Config{
		Password: lookup(EnvPassword),
	}
	if val := lookup(EnvDebug); val != "" {
		debug, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvDebug, val)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
