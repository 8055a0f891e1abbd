package assets

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/bpftrace/makedoc/internal/pipeline"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default template has every placeholder once", func(t *testing.T) {
		t.Parallel()

		got, err := loader.LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
		}

		for _, placeholder := range []string{
			pipeline.DefaultVersionPlaceholder,
			pipeline.DefaultBodyPlaceholder,
			pipeline.DefaultTOCPlaceholder,
		} {
			if n := strings.Count(got, placeholder); n != 1 {
				t.Errorf("placeholder %q appears %d times, want 1", placeholder, n)
			}
		}
	})

	t.Run("nonexistent template", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("nonexistent-xyz")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadTemplate("../default")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestEmbeddedLoader_Names(t *testing.T) {
	t.Parallel()

	names := NewEmbeddedLoader().Names()
	if !slices.Contains(names, DefaultTemplateName) {
		t.Errorf("Names() = %v, want to contain %q", names, DefaultTemplateName)
	}
}

func TestLoadTemplate_PackageLevel(t *testing.T) {
	t.Parallel()

	got, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	if got == "" {
		t.Error("LoadTemplate() returned empty content")
	}
}
