// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const defaultEnvFile = ".env"

// config holds the convert defaults. Flags override it.
type config struct {
	ByteDepth    int
	Float        bool
	BufferFrames int
}

func defaultConfig() config {
	return config{ByteDepth: 2, BufferFrames: 4096}
}

// loadConfig reads WAVCONV_* settings from the process environment, falling
// back to envFile. A missing default .env file is not an error.
func loadConfig(envFile string, getenv func(string) string) (config, error) {
	fileEnv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileEnv = m
		case os.IsNotExist(errors.Cause(err)) && envFile == defaultEnvFile:
		default:
			return config{}, errors.Wrapf(err, "reading %s", envFile)
		}
	}

	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fileEnv[key]
	}

	cfg := defaultConfig()

	if v := lookup("WAVCONV_BYTE_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, errors.Wrap(err, "parsing WAVCONV_BYTE_DEPTH")
		}
		cfg.ByteDepth = n
	}

	if v := lookup("WAVCONV_FLOAT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return config{}, errors.Wrap(err, "parsing WAVCONV_FLOAT")
		}
		cfg.Float = b
	}

	if v := lookup("WAVCONV_BUFFER_FRAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, errors.Wrap(err, "parsing WAVCONV_BUFFER_FRAMES")
		}
		if n <= 0 {
			return config{}, errors.Errorf("WAVCONV_BUFFER_FRAMES must be positive, got %d", n)
		}
		cfg.BufferFrames = n
	}

	return cfg, nil
}
