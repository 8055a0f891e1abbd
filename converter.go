package makedoc

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/bpftrace/makedoc/internal/assets"
	"github.com/bpftrace/makedoc/internal/fileutil"
	"github.com/bpftrace/makedoc/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Scanner   = (*pipeline.RegionScanner)(nil)
	_ pipeline.Rewriter  = (*pipeline.JSXRewriter)(nil)
	_ pipeline.Assembler = (*pipeline.TemplateAssembly)(nil)
	_ AssetLoader        = (*assets.AssetResolver)(nil)
)

// Converter orchestrates the HTML-to-page conversion pipeline.
// A Converter holds no per-page state and may be reused.
type Converter struct {
	cfg         converterConfig
	assetLoader AssetLoader
	logger      *zap.Logger
	scanner     pipeline.Scanner
	assembler   pipeline.Assembler
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTemplate, WithMarkers, WithLogger).
// Returns error if the options are invalid or the asset path is unusable.
// The template itself is read on each Convert call.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			template:     DefaultTemplate,
			markers:      DefaultMarkers(),
			placeholders: DefaultPlaceholders(),
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.template == "" {
		return nil, ErrEmptyTemplate
	}
	if err := c.cfg.markers.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarkers, err)
	}
	if err := c.cfg.placeholders.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPlaceholders, err)
	}

	// WithAssetLoader wins over WithAssetPath
	if c.assetLoader == nil {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}
	if r, ok := c.assetLoader.(*assets.AssetResolver); ok {
		c.logger.Debug("asset loader ready", zap.Bool("customAssets", r.HasCustomLoader()))
	}

	c.scanner = pipeline.NewRegionScanner(pipeline.Markers(c.cfg.markers), &pipeline.JSXRewriter{})
	c.assembler = pipeline.NewTemplateAssembly(pipeline.Placeholders(c.cfg.placeholders), c.cfg.strict)

	return c, nil
}

// Convert scans input.HTML, loads the template and returns the assembled page.
// The context is checked between source lines and before assembly.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.HTML == nil {
		return nil, ErrNilInput
	}

	version := input.Version

	frags, err := c.scanner.Scan(ctx, input.HTML)
	if err != nil {
		return nil, fmt.Errorf("scanning source: %w", err)
	}

	tocEntries := pipeline.CountTOCEntries(frags.TOC)
	c.logger.Debug("scanned source",
		zap.Int("tocLines", len(frags.TOC)),
		zap.Int("tocEntries", tocEntries),
		zap.Int("bodyLines", len(frags.Body)),
	)

	tmpl, err := c.loadTemplate()
	if err != nil {
		return nil, err
	}

	page, err := c.assembler.Assemble(ctx, tmpl, &pipeline.PageData{
		Version: version,
		Body:    frags.Body,
		TOC:     frags.TOC,
	})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	return &Result{
		Version:    version,
		TOC:        frags.TOC,
		Body:       frags.Body,
		Page:       page,
		TOCEntries: tocEntries,
	}, nil
}

// loadTemplate reads the configured template by path or by asset name.
func (c *Converter) loadTemplate() (string, error) {
	input := c.cfg.template

	// File path? (contains a separator or an extension)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrTemplateRead, input, err)
		}
		c.logger.Debug("loaded template", zap.String("path", input), zap.Int("bytes", len(content)))
		return string(content), nil
	}

	// Template name -> use asset loader
	content, err := c.assetLoader.LoadTemplate(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrTemplateRead, input, err)
	}
	c.logger.Debug("loaded template", zap.String("name", input), zap.Int("bytes", len(content)))
	return content, nil
}
