package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bpftrace/makedoc"
	"github.com/bpftrace/makedoc/internal/assets"
	"github.com/bpftrace/makedoc/internal/config"
	"github.com/bpftrace/makedoc/internal/fileutil"
	"github.com/bpftrace/makedoc/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input file specified")
	ErrTooManyArgs = errors.New("too many arguments")
	ErrEnvFile     = errors.New("failed to load env file")
	ErrReadInput   = errors.New("failed to open source HTML")
	ErrWriteOutput = errors.New("failed to write page")
)

// missingInputMessage is printed when no input file is given.
const missingInputMessage = "Need a adoc html file path e.g. adoc.html"

// reportedError marks an error already logged with its context.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// fail logs err with the path it concerns and marks it as reported.
func fail(logger *zap.Logger, msg, path string, err error, hint string) error {
	logger.Error(msg+hint, zap.String("path", path), zap.Error(err))
	return &reportedError{err: err}
}

// usageMessage returns the text printed for an unreported error.
func usageMessage(err error) string {
	if errors.Is(err, ErrNoInput) {
		return missingInputMessage
	}
	return err.Error()
}

// runGenerate converts one source page and writes it to
// {output.dir}/{version}.{output.extension}.
func runGenerate(ctx context.Context, positional []string, flags *generateFlags, env *Environment, logger *zap.Logger) error {
	if len(positional) == 0 {
		return ErrNoInput
	}
	if len(positional) > 2 {
		return fmt.Errorf("%w: got %d, want <input.html> [version]", ErrTooManyArgs, len(positional))
	}
	inputPath := positional[0]

	cfg, err := resolveConfig(flags, logger)
	if err != nil {
		return err
	}

	version := cfg.Version.Default
	if len(positional) == 2 {
		version = positional[1]
	}

	src, err := os.Open(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fail(logger, "cannot open source HTML", inputPath, fmt.Errorf("%w: %w", ErrReadInput, err), hints.ForInputOpen())
	}
	defer func() { _ = src.Close() }()

	conv, err := makedoc.NewConverter(
		makedoc.WithTemplate(cfg.Template),
		makedoc.WithAssetPath(cfg.AssetPath),
		makedoc.WithMarkers(makedoc.Markers(cfg.Markers.ToMarkers())),
		makedoc.WithPlaceholders(makedoc.Placeholders(cfg.Placeholders.ToPlaceholders())),
		makedoc.WithStrictPlaceholders(cfg.Strict),
		makedoc.WithLogger(logger),
	)
	if err != nil {
		return fail(logger, "invalid converter settings", cfg.AssetPath, err, "")
	}

	logger.Debug("converting page",
		zap.String("input", inputPath),
		zap.String("version", version),
		zap.String("template", cfg.Template),
	)

	result, err := conv.Convert(ctx, makedoc.Input{HTML: src, Version: version})
	if err != nil {
		return reportConvertError(logger, err, inputPath, cfg.Template)
	}

	if len(result.TOC) == 0 && len(result.Body) == 0 {
		logger.Warn("no TOC or body found in source"+hints.ForEmptyFragments(), zap.String("path", inputPath))
	}

	outPath := fileutil.OutputPath(cfg.Output.Dir, result.Version, cfg.Output.Extension)
	if err := fileutil.WriteFile(outPath, result.Page); err != nil {
		return fail(logger, "cannot write page", outPath, fmt.Errorf("%w: %w", ErrWriteOutput, err), hints.ForOutputDirectory())
	}

	logger.Debug("wrote page",
		zap.String("path", outPath),
		zap.Int("bytes", len(result.Page)),
		zap.Int("tocEntries", result.TOCEntries),
	)

	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "Success.")
		fmt.Fprintf(env.Stdout, "Wrote: %s\n", outPath)
	}
	return nil
}

// reportConvertError logs a conversion failure against the path it concerns.
func reportConvertError(logger *zap.Logger, err error, inputPath, template string) error {
	switch {
	case errors.Is(err, makedoc.ErrTemplateRead):
		return fail(logger, "cannot read template", template, err, hints.ForTemplateRead(assets.NewEmbeddedLoader().Names()))
	case errors.Is(err, makedoc.ErrPlaceholderMissing), errors.Is(err, makedoc.ErrPlaceholderDuplicated):
		return fail(logger, "template placeholders do not match", template, err, hints.ForPlaceholder())
	default:
		return fail(logger, "cannot convert source HTML", inputPath, err, "")
	}
}

// resolveConfig layers defaults, config file, environment and flags.
func resolveConfig(flags *generateFlags, logger *zap.Logger) (*config.Config, error) {
	// .env values never override variables already set in the process
	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return nil, fail(logger, "cannot load env file", flags.envFile, fmt.Errorf("%w: %w", ErrEnvFile, err), "")
		}
	}

	warnUnknownEnvVars(logger)
	envCfg := loadEnvConfig(logger)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			hint := ""
			var notFound *config.NotFoundError
			if errors.As(err, &notFound) {
				hint = hints.ForConfigNotFound(notFound.Tried)
			}
			return nil, fail(logger, "cannot load config", configName, err, hint)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fail(logger, "invalid configuration", configName, err, "")
	}
	return cfg, nil
}

// mergeFlags applies explicitly set CLI flags over cfg (CLI wins).
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.template.template != "" {
		cfg.Template = flags.template.template
	}
	if flags.template.assetPath != "" {
		cfg.AssetPath = flags.template.assetPath
	}
	if flags.template.strictSet {
		cfg.Strict = flags.template.strict
	}
	if flags.output.dir != "" {
		cfg.Output.Dir = flags.output.dir
	}
	if flags.output.extension != "" {
		cfg.Output.Extension = flags.output.extension
	}
}
