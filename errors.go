package makedoc

import (
	"errors"

	"github.com/bpftrace/makedoc/internal/assets"
	"github.com/bpftrace/makedoc/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrNilInput     = errors.New("input HTML reader cannot be nil")
	ErrTemplateRead = errors.New("failed to read template")

	// Option validation errors.
	ErrInvalidMarkers      = errors.New("invalid markers")
	ErrInvalidPlaceholders = errors.New("invalid placeholders")
	ErrEmptyTemplate       = errors.New("template name or path cannot be empty")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateNotFound = assets.ErrTemplateNotFound

	// Pipeline errors.
	ErrScan                  = pipeline.ErrScan
	ErrPlaceholderMissing    = pipeline.ErrPlaceholderMissing
	ErrPlaceholderDuplicated = pipeline.ErrPlaceholderDuplicated
)
