package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bpftrace/makedoc/internal/assets"
	"github.com/bpftrace/makedoc/internal/fileutil"
	"github.com/bpftrace/makedoc/internal/pipeline"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxPathLength      = 4096 // PATH_MAX on Linux
	MaxVersionLength   = 50   // "pre-release", "0.22", "v1.2.3-rc1"
	MaxExtensionLength = 10   // "js", "jsx", "mdx"
	MaxMarkerLength    = 200  // single HTML line fragment
)

// Config holds all configuration for page generation.
type Config struct {
	Template     string             `yaml:"template"`  // Asset name or path to the page template
	AssetPath    string             `yaml:"assetPath"` // Directory holding templates/{name}.js (empty = embedded)
	Strict       bool               `yaml:"strict"`    // Require each placeholder exactly once
	Output       OutputConfig       `yaml:"output"`
	Version      VersionConfig      `yaml:"version"`
	Markers      MarkersConfig      `yaml:"markers"`
	Placeholders PlaceholdersConfig `yaml:"placeholders"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Directory receiving {version}.{extension}
	Extension string `yaml:"extension"` // Without leading dot
}

// VersionConfig defines version labelling options.
type VersionConfig struct {
	Default string `yaml:"default"` // Used when no version argument is given
}

// MarkersConfig defines the line fragments delimiting the TOC and body.
type MarkersConfig struct {
	TOCStart            string `yaml:"tocStart"`
	TOCStartReplacement string `yaml:"tocStartReplacement"`
	TOCEnd              string `yaml:"tocEnd"`
	BodyStart           string `yaml:"bodyStart"`
	BodyEnd             string `yaml:"bodyEnd"`
}

// PlaceholdersConfig defines the template placeholders.
type PlaceholdersConfig struct {
	Version string `yaml:"version"`
	Body    string `yaml:"body"`
	TOC     string `yaml:"toc"`
}

// ToMarkers converts the config section to scanner markers.
func (m MarkersConfig) ToMarkers() pipeline.Markers {
	return pipeline.Markers{
		TOCStart:            m.TOCStart,
		TOCStartReplacement: m.TOCStartReplacement,
		TOCEnd:              m.TOCEnd,
		BodyStart:           m.BodyStart,
		BodyEnd:             m.BodyEnd,
	}
}

// ToPlaceholders converts the config section to assembler placeholders.
func (p PlaceholdersConfig) ToPlaceholders() pipeline.Placeholders {
	return pipeline.Placeholders{
		Version: p.Version,
		Body:    p.Body,
		TOC:     p.TOC,
	}
}

// Validate checks field lengths and rejects values the pipeline cannot use.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("template", c.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assetPath", c.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.extension", c.Output.Extension, MaxExtensionLength); err != nil {
		return err
	}
	if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
		return fmt.Errorf("%w: output.extension: %v", ErrInvalidConfig, err)
	}
	if err := validateFieldLength("version.default", c.Version.Default, MaxVersionLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Version.Default, "/\\\x00") {
		return fmt.Errorf("%w: version.default: must not contain path separators", ErrInvalidConfig)
	}

	markers := []struct{ name, value string }{
		{"markers.tocStart", c.Markers.TOCStart},
		{"markers.tocStartReplacement", c.Markers.TOCStartReplacement},
		{"markers.tocEnd", c.Markers.TOCEnd},
		{"markers.bodyStart", c.Markers.BodyStart},
		{"markers.bodyEnd", c.Markers.BodyEnd},
		{"placeholders.version", c.Placeholders.Version},
		{"placeholders.body", c.Placeholders.Body},
		{"placeholders.toc", c.Placeholders.TOC},
	}
	for _, m := range markers {
		if err := validateFieldLength(m.name, m.value, MaxMarkerLength); err != nil {
			return err
		}
	}

	if err := c.Markers.ToMarkers().Validate(); err != nil {
		return fmt.Errorf("%w: markers: %v", ErrInvalidConfig, err)
	}
	if err := c.Placeholders.ToPlaceholders().Validate(); err != nil {
		return fmt.Errorf("%w: placeholders: %v", ErrInvalidConfig, err)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration matching the site layout:
// template at src/pages/docs/__template.js, pages written next to it.
func DefaultConfig() *Config {
	markers := pipeline.DefaultMarkers()
	placeholders := pipeline.DefaultPlaceholders()

	return &Config{
		Template: assets.DefaultTemplatePath,
		Output: OutputConfig{
			Dir:       fileutil.DefaultOutputDir,
			Extension: fileutil.DefaultExtension,
		},
		Version: VersionConfig{Default: pipeline.DefaultVersion},
		Markers: MarkersConfig{
			TOCStart:            markers.TOCStart,
			TOCStartReplacement: markers.TOCStartReplacement,
			TOCEnd:              markers.TOCEnd,
			BodyStart:           markers.BodyStart,
			BodyEnd:             markers.BodyEnd,
		},
		Placeholders: PlaceholdersConfig{
			Version: placeholders.Version,
			Body:    placeholders.Body,
			TOC:     placeholders.TOC,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields left empty in the file keep their DefaultConfig value.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := unmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.fillDefaults(DefaultConfig())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fillDefaults replaces empty string fields with values from def.
func (c *Config) fillDefaults(def *Config) {
	fields := []struct {
		dst *string
		src string
	}{
		{&c.Template, def.Template},
		{&c.Output.Dir, def.Output.Dir},
		{&c.Output.Extension, def.Output.Extension},
		{&c.Version.Default, def.Version.Default},
		{&c.Markers.TOCStart, def.Markers.TOCStart},
		{&c.Markers.TOCStartReplacement, def.Markers.TOCStartReplacement},
		{&c.Markers.TOCEnd, def.Markers.TOCEnd},
		{&c.Markers.BodyStart, def.Markers.BodyStart},
		{&c.Markers.BodyEnd, def.Markers.BodyEnd},
		{&c.Placeholders.Version, def.Placeholders.Version},
		{&c.Placeholders.Body, def.Placeholders.Body},
		{&c.Placeholders.TOC, def.Placeholders.TOC},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/makedoc/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "makedoc", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}

// NotFoundError lists the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Unwrap makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
