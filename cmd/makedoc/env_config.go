package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/bpftrace/makedoc/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // MAKEDOC_CONFIG: config file name or path
	OutputDir      string // MAKEDOC_OUTPUT_DIR: output directory
	Template       string // MAKEDOC_TEMPLATE: template name or path
	AssetPath      string // MAKEDOC_ASSET_PATH: custom asset directory
	Extension      string // MAKEDOC_EXT: output file extension
	DefaultVersion string // MAKEDOC_DEFAULT_VERSION: label when no version is given
	Strict         *bool  // MAKEDOC_STRICT: strict placeholder checks
}

// knownEnvVars lists valid MAKEDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MAKEDOC_CONFIG":          true,
	"MAKEDOC_OUTPUT_DIR":      true,
	"MAKEDOC_TEMPLATE":        true,
	"MAKEDOC_ASSET_PATH":      true,
	"MAKEDOC_EXT":             true,
	"MAKEDOC_DEFAULT_VERSION": true,
	"MAKEDOC_STRICT":          true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable MAKEDOC_STRICT is ignored with a warning.
func loadEnvConfig(logger *zap.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("MAKEDOC_CONFIG"),
		OutputDir:      os.Getenv("MAKEDOC_OUTPUT_DIR"),
		Template:       os.Getenv("MAKEDOC_TEMPLATE"),
		AssetPath:      os.Getenv("MAKEDOC_ASSET_PATH"),
		Extension:      os.Getenv("MAKEDOC_EXT"),
		DefaultVersion: os.Getenv("MAKEDOC_DEFAULT_VERSION"),
	}

	if raw := os.Getenv("MAKEDOC_STRICT"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Strict = &v
		} else {
			logger.Warn("ignoring invalid boolean", zap.String("name", "MAKEDOC_STRICT"), zap.String("value", raw))
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MAKEDOC_* variables.
// Helps catch typos like MAKEDOC_OUTPUTDIR instead of MAKEDOC_OUTPUT_DIR.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MAKEDOC_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the loaded config.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Extension != "" {
		cfg.Output.Extension = env.Extension
	}
	if env.Template != "" {
		cfg.Template = env.Template
	}
	if env.AssetPath != "" {
		cfg.AssetPath = env.AssetPath
	}
	if env.DefaultVersion != "" {
		cfg.Version.Default = env.DefaultVersion
	}
	if env.Strict != nil {
		cfg.Strict = *env.Strict
	}
}
