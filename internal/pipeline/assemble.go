package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Default placeholders expected in the page template.
const (
	DefaultVersionPlaceholder = `<div id="version-content" />`
	DefaultBodyPlaceholder    = `<div id="body-content" />`
	DefaultTOCPlaceholder     = `<div id="toc-content" />`
)

// DefaultVersion labels pages built from unreleased sources.
const DefaultVersion = "pre-release"

// Sentinel errors for template assembly.
var (
	ErrPlaceholderMissing    = errors.New("template placeholder not found")
	ErrPlaceholderDuplicated = errors.New("template placeholder appears more than once")
	ErrEmptyPlaceholder      = errors.New("placeholder cannot be empty")
	ErrPlaceholderConflict   = errors.New("placeholders must be distinct")
)

// Placeholders holds the literal markers replaced in the template.
type Placeholders struct {
	Version string
	Body    string
	TOC     string
}

// DefaultPlaceholders returns the placeholders used by the site template.
func DefaultPlaceholders() Placeholders {
	return Placeholders{
		Version: DefaultVersionPlaceholder,
		Body:    DefaultBodyPlaceholder,
		TOC:     DefaultTOCPlaceholder,
	}
}

// Validate rejects empty or identical placeholders.
func (p Placeholders) Validate() error {
	for _, f := range p.fields() {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrEmptyPlaceholder, f.name)
		}
	}
	if p.Version == p.Body || p.Version == p.TOC || p.Body == p.TOC {
		return ErrPlaceholderConflict
	}
	return nil
}

type placeholderField struct {
	name  string
	value string
}

// fields lists the placeholders in replacement order.
func (p Placeholders) fields() []placeholderField {
	return []placeholderField{
		{"version", p.Version},
		{"body", p.Body},
		{"toc", p.TOC},
	}
}

// PageData holds the content injected into the template.
type PageData struct {
	Version string
	Body    []string
	TOC     []string
}

// Assembler defines the contract for filling the page template.
type Assembler interface {
	Assemble(ctx context.Context, tmpl string, data *PageData) (string, error)
}

// TemplateAssembly replaces placeholders in a template with page content.
type TemplateAssembly struct {
	placeholders Placeholders
	strict       bool
}

// NewTemplateAssembly creates a TemplateAssembly. In strict mode every
// placeholder must appear exactly once in the template.
func NewTemplateAssembly(placeholders Placeholders, strict bool) *TemplateAssembly {
	return &TemplateAssembly{placeholders: placeholders, strict: strict}
}

// VersionHeading returns the heading injected at the version placeholder.
func VersionHeading(version string) string {
	return "<h1> Version: " + version + "</h1>"
}

// Assemble replaces the version, body and TOC placeholders, in that order,
// each at its first occurrence. Body and TOC lines are joined with "\n".
// Without strict mode a missing placeholder is skipped and duplicates past
// the first are left in place.
func (a *TemplateAssembly) Assemble(ctx context.Context, tmpl string, data *PageData) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if data == nil {
		data = &PageData{}
	}

	if a.strict {
		if err := a.checkPlaceholders(tmpl); err != nil {
			return "", err
		}
	}

	// Each replacement runs on the previous result, like a chained replace.
	page := strings.Replace(tmpl, a.placeholders.Version, VersionHeading(data.Version), 1)
	page = strings.Replace(page, a.placeholders.Body, strings.Join(data.Body, "\n"), 1)
	page = strings.Replace(page, a.placeholders.TOC, strings.Join(data.TOC, "\n"), 1)

	return page, nil
}

// checkPlaceholders verifies each placeholder occurs exactly once.
func (a *TemplateAssembly) checkPlaceholders(tmpl string) error {
	for _, f := range a.placeholders.fields() {
		switch n := strings.Count(tmpl, f.value); {
		case n == 0:
			return fmt.Errorf("%w: %s %s", ErrPlaceholderMissing, f.name, f.value)
		case n > 1:
			return fmt.Errorf("%w: %s %s (%d times)", ErrPlaceholderDuplicated, f.name, f.value, n)
		}
	}
	return nil
}
