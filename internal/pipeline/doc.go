// Package pipeline implements the HTML-to-page conversion pipeline.
//
// The pipeline runs in three stages:
//   - Region scanning: one sequential pass over the source lines that collects
//     the table of contents and the body content between fixed markers
//   - Body rewriting: line-level substitutions turning HTML into JSX markup
//   - Template assembly: placeholder replacement in the page template
//
// The source HTML is never parsed into a tree. Markers are plain substrings,
// and broken or nested markup passes through unchanged. Reading the source and
// the template, and writing the page, are left to the callers so that every
// stage here works on in-memory strings and readers.
package pipeline
