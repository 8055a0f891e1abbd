package makedoc

import "go.uber.org/zap"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	template     string
	assetPath    string
	markers      Markers
	placeholders Placeholders
	strict       bool
}

// WithTemplate sets the page template. A value containing a path separator
// or an extension is read from disk; anything else is looked up by name
// through the asset loader. Defaults to DefaultTemplate.
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.template = nameOrPath
	}
}

// WithAssetPath sets a directory holding templates/{name}.js files.
// Custom templates take precedence over the built-in ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.assetLoader = loader
	}
}

// WithMarkers sets the substrings delimiting the TOC and body regions.
func WithMarkers(m Markers) Option {
	return func(c *Converter) {
		c.cfg.markers = m
	}
}

// WithPlaceholders sets the strings replaced in the template.
func WithPlaceholders(p Placeholders) Option {
	return func(c *Converter) {
		c.cfg.placeholders = p
	}
}

// WithStrictPlaceholders makes Convert fail unless every placeholder appears
// exactly once in the template. By default a missing placeholder is skipped
// and only the first occurrence of each is replaced.
func WithStrictPlaceholders(strict bool) Option {
	return func(c *Converter) {
		c.cfg.strict = strict
	}
}

// WithLogger sets the logger used for progress and diagnostics.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}
