package makedoc

import (
	"io"

	"github.com/bpftrace/makedoc/internal/pipeline"
)

// DefaultVersion is the label callers use when no version is given.
const DefaultVersion = pipeline.DefaultVersion

// Input holds one page conversion request.
type Input struct {
	HTML    io.Reader // asciidoctor HTML, read line by line (required)
	Version string    // Label for the heading and output name (used verbatim, may be empty)
}

// Result holds the fragments and the assembled page.
type Result struct {
	Version    string   // Version used for the heading
	TOC        []string // TOC lines, starting with the replacement line
	Body       []string // Rewritten body lines
	Page       string   // Template with placeholders replaced
	TOCEntries int      // Number of links in the TOC
}

// Markers holds the substrings delimiting the TOC and body in the source.
// A line matches a marker when it contains it anywhere.
type Markers struct {
	TOCStart            string // Opens the TOC
	TOCStartReplacement string // Emitted instead of the line opening the TOC
	TOCEnd              string // Closes the TOC (line kept)
	BodyStart           string // Opens the body (line dropped)
	BodyEnd             string // Ends the conversion (line dropped)
}

// DefaultMarkers returns the markers matching asciidoctor html5 output.
func DefaultMarkers() Markers {
	return Markers(pipeline.DefaultMarkers())
}

// Validate rejects empty markers other than TOCStartReplacement.
func (m Markers) Validate() error {
	return pipeline.Markers(m).Validate()
}

// Placeholders holds the literal strings replaced in the template.
type Placeholders struct {
	Version string // Replaced by "<h1> Version: {version}</h1>"
	Body    string // Replaced by the body lines joined with "\n"
	TOC     string // Replaced by the TOC lines joined with "\n"
}

// DefaultPlaceholders returns the placeholders of the site template.
func DefaultPlaceholders() Placeholders {
	return Placeholders(pipeline.DefaultPlaceholders())
}

// Validate rejects empty or identical placeholders.
func (p Placeholders) Validate() error {
	return pipeline.Placeholders(p).Validate()
}
