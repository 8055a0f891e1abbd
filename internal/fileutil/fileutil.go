// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Output defaults for generated pages.
const (
	DefaultOutputDir = "src/pages/docs"
	DefaultExtension = "js"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrEmptyPath              = errors.New("path cannot be empty")
)

// OutputPath returns "{dir}/{version}.{ext}". Neither version nor ext is
// sanitized beyond what the filesystem enforces.
func OutputPath(dir, version, ext string) string {
	return filepath.Join(dir, version+"."+ext)
}

// WriteFile writes content to path, creating missing parent directories.
// An existing file is truncated.
func WriteFile(path, content string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 -- generated pages are served as-is
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// ValidateExtension checks that the extension is safe for use in file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) or a file extension is treated as a path.
//
// Examples:
//   - "default" -> false (name)
//   - "__template.js" -> true (extension)
//   - "./custom.js" -> true (relative path)
//   - "src/pages/docs/__template.js" -> true (contains separator)
//   - "C:\site\template.js" -> true (Windows)
//   - "docs-page" -> false (hyphenated name)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\") || filepath.Ext(s) != ""
}
