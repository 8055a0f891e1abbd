package pipeline

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Default markers for asciidoctor html5 output.
const (
	DefaultTOCStart            = `<ul class="sectlevel1">`
	DefaultTOCStartReplacement = `<ul className="sectlevel1">`
	DefaultTOCEnd              = `</ul>`
	DefaultBodyStart           = `<div id="content">`
	DefaultBodyEnd             = `<div id="footer">`
)

// Sentinel errors for region scanning.
var (
	ErrScan        = errors.New("failed to read source HTML")
	ErrNilReader   = errors.New("source reader cannot be nil")
	ErrEmptyMarker = errors.New("marker cannot be empty")
)

// Markers holds the substrings that open and close the scanned regions.
type Markers struct {
	TOCStart            string // Opens the TOC region
	TOCStartReplacement string // Appended to the TOC in place of the opening line
	TOCEnd              string // Closes the TOC region (line kept)
	BodyStart           string // Opens the body region (line dropped)
	BodyEnd             string // Stops the scan (line dropped)
}

// DefaultMarkers returns the markers matching asciidoctor html5 output.
func DefaultMarkers() Markers {
	return Markers{
		TOCStart:            DefaultTOCStart,
		TOCStartReplacement: DefaultTOCStartReplacement,
		TOCEnd:              DefaultTOCEnd,
		BodyStart:           DefaultBodyStart,
		BodyEnd:             DefaultBodyEnd,
	}
}

// Validate rejects empty markers. An empty substring matches every line.
// The replacement line may be empty.
func (m Markers) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"tocStart", m.TOCStart},
		{"tocEnd", m.TOCEnd},
		{"bodyStart", m.BodyStart},
		{"bodyEnd", m.BodyEnd},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrEmptyMarker, f.name)
		}
	}
	return nil
}

// Fragments holds the lines collected by a scan, in source order.
type Fragments struct {
	TOC  []string
	Body []string
}

// Scanner defines the contract for splitting source HTML into fragments.
type Scanner interface {
	Scan(ctx context.Context, r io.Reader) (*Fragments, error)
}

// RegionScanner collects the TOC and body regions in a single pass.
type RegionScanner struct {
	markers  Markers
	rewriter Rewriter
}

// NewRegionScanner creates a RegionScanner. Body lines go through rewriter;
// a nil rewriter uses JSXRewriter.
func NewRegionScanner(markers Markers, rewriter Rewriter) *RegionScanner {
	if rewriter == nil {
		rewriter = &JSXRewriter{}
	}
	return &RegionScanner{markers: markers, rewriter: rewriter}
}

// scanState tracks the two regions. The body stays active while the TOC is
// open so a TOC embedded in the content does not end the body.
type scanState struct {
	tocActive  bool
	bodyActive bool
}

// Scan reads r line by line and returns the collected fragments.
// Lines end at LF, CRLF or a lone CR and have no length limit.
// Reading stops at the first body end marker; the rest of r is never read.
// A source without markers yields empty fragments, not an error.
func (s *RegionScanner) Scan(ctx context.Context, r io.Reader) (*Fragments, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	lr := newLineReader(r)
	frags := &Fragments{}
	var state scanState

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := lr.next()
		if errors.Is(err, io.EOF) {
			return frags, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScan, err)
		}
		if s.step(&state, line, frags) {
			return frags, nil
		}
	}
}

// step classifies one line and reports whether the scan must stop.
// Checks run in a fixed order: TOC start, body start, TOC append, body append.
// The line that switches the body on is not collected.
func (s *RegionScanner) step(state *scanState, line string, frags *Fragments) (stop bool) {
	if !state.tocActive && strings.Contains(line, s.markers.TOCStart) {
		state.tocActive = true
		frags.TOC = append(frags.TOC, s.markers.TOCStartReplacement)
		return false
	}

	bodyOpened := false
	if !state.bodyActive && strings.Contains(line, s.markers.BodyStart) {
		state.bodyActive = true
		bodyOpened = true
	}

	if state.tocActive {
		frags.TOC = append(frags.TOC, line)
		if strings.Contains(line, s.markers.TOCEnd) {
			state.tocActive = false
		}
		return false
	}

	if !state.bodyActive {
		return false
	}
	if strings.Contains(line, s.markers.BodyEnd) {
		return true
	}
	if !bodyOpened {
		frags.Body = append(frags.Body, s.rewriter.RewriteLine(line))
	}
	return false
}

// lineReader splits a source into lines on LF, CRLF or a lone CR.
type lineReader struct {
	r   *bufio.Reader
	buf []byte
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReaderSize(r, 64*1024)}
}

// next returns the following line without its terminator.
// It returns io.EOF once the input is exhausted.
func (lr *lineReader) next() (string, error) {
	lr.buf = lr.buf[:0]
	for {
		b, err := lr.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(lr.buf) > 0 {
				return string(lr.buf), nil
			}
			return "", err
		}
		switch b {
		case '\n':
			return string(lr.buf), nil
		case '\r':
			peek, err := lr.r.Peek(1)
			if err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			if len(peek) == 1 && peek[0] == '\n' {
				_, _ = lr.r.Discard(1)
			}
			return string(lr.buf), nil
		}
		lr.buf = append(lr.buf, b)
	}
}
