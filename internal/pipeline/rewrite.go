package pipeline

import (
	"regexp"
	"strings"
)

// Replacement text for body lines.
const (
	selfClosingBR    = "<br />"
	selfClosingCol   = "<col />"
	openBraceEntity  = "&#123;"
	closeBraceEntity = "&#125;"
	jsxClassAttr     = `className="`
)

// Tag and attribute matching is case-insensitive.
var (
	brPattern        = regexp.MustCompile(`(?i)<br>`)
	classAttrPattern = regexp.MustCompile(`(?i)class="`)
)

// Rewriter defines the contract for body line rewriting.
type Rewriter interface {
	RewriteLine(line string) string
}

// JSXRewriter turns an HTML body line into markup the JSX compiler accepts.
type JSXRewriter struct{}

// RewriteLine applies, in order: <br> to <br />, { and } to numeric entities,
// class=" to className=". A bare <col> line becomes <col /> with nothing else
// applied. Everything else on the line is left byte-for-byte.
func (r *JSXRewriter) RewriteLine(line string) string {
	if isBareColTag(line) {
		return selfClosingCol
	}

	line = brPattern.ReplaceAllLiteralString(line, selfClosingBR)
	line = strings.ReplaceAll(line, "{", openBraceEntity)
	line = strings.ReplaceAll(line, "}", closeBraceEntity)
	return classAttrPattern.ReplaceAllLiteralString(line, jsxClassAttr)
}

// isBareColTag reports whether the line is an unclosed <col> element,
// with or without attributes.
func isBareColTag(line string) bool {
	return line == "<col>" || strings.HasPrefix(line, "<col ")
}
