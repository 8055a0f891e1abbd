package pipeline

// Notes:
// - Scan: we test region boundaries, trigger priority, early termination and
//   error propagation from the underlying reader.
// - Long lines are exercised with a single 2 MiB inline image rather than a
//   realistic document.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

// asciidoctorPage is a trimmed asciidoctor html5 page.
const asciidoctorPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>bpftrace(8)</title>
</head>
<body class="manpage toc2 toc-left">
<div id="header">
<h1>bpftrace(8) Manual Page</h1>
<div id="toc" class="toc2">
<div id="toctitle">Table of Contents</div>
<ul class="sectlevel1">
<li><a href="#_name">NAME</a></li>
<li><a href="#_synopsis">SYNOPSIS</a></li>
</ul>
</div>
</div>
<div id="content">
<div class="sect1">
<h2 id="_name">NAME</h2>
<p>bpftrace - a high-level tracing language<br>
for Linux</p>
<pre>kprobe:do_nanosleep { printf("sleep\n"); }</pre>
<colgroup>
<col style="width: 50%;">
<col>
</colgroup>
</div>
</div>
<div id="footer">
<div id="footer-text">
Last updated 2024-01-01
</div>
</div>
</body>
</html>
`

// ---------------------------------------------------------------------------
// TestRegionScanner_Scan - Region boundaries on a realistic page
// ---------------------------------------------------------------------------

func TestRegionScanner_Scan(t *testing.T) {
	t.Parallel()

	scanner := NewRegionScanner(DefaultMarkers(), nil)

	frags, err := scanner.Scan(context.Background(), strings.NewReader(asciidoctorPage))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	wantTOC := []string{
		`<ul className="sectlevel1">`,
		`<li><a href="#_name">NAME</a></li>`,
		`<li><a href="#_synopsis">SYNOPSIS</a></li>`,
		`</ul>`,
	}
	if !reflect.DeepEqual(frags.TOC, wantTOC) {
		t.Errorf("TOC = %q, want %q", frags.TOC, wantTOC)
	}

	wantBody := []string{
		`<div className="sect1">`,
		`<h2 id="_name">NAME</h2>`,
		`<p>bpftrace - a high-level tracing language<br />`,
		`for Linux</p>`,
		`<pre>kprobe:do_nanosleep &#123; printf("sleep\n"); &#125;</pre>`,
		`<colgroup>`,
		`<col />`,
		`<col />`,
		`</colgroup>`,
		`</div>`,
		`</div>`,
	}
	if !reflect.DeepEqual(frags.Body, wantBody) {
		t.Errorf("Body = %q, want %q", frags.Body, wantBody)
	}
}

// ---------------------------------------------------------------------------
// TestRegionScanner_Boundaries - Trigger lines and region exclusivity
// ---------------------------------------------------------------------------

func TestRegionScanner_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantTOC  []string
		wantBody []string
	}{
		{
			name:  "no markers yields empty fragments",
			input: "<html>\n<body>\n<p>hello</p>\n</body>\n</html>\n",
		},
		{
			name:  "empty input",
			input: "",
		},
		{
			name:     "body start line is excluded",
			input:    "<div id=\"content\"><p>inline</p>\n<p>kept</p>\n<div id=\"footer\">\n",
			wantBody: []string{"<p>kept</p>"},
		},
		{
			name:     "footer line and everything after are excluded",
			input:    "<div id=\"content\">\na\n<div id=\"footer\">\nb\n<ul class=\"sectlevel1\">\nc\n</ul>\n",
			wantBody: []string{"a"},
		},
		{
			name:    "toc opening line is replaced",
			input:   "  <ul class=\"sectlevel1\"><!-- toc -->\n<li>x</li>\n</ul>\n",
			wantTOC: []string{`<ul className="sectlevel1">`, "<li>x</li>", "</ul>"},
		},
		{
			name:    "nested list closes toc at first closing tag",
			input:   "<ul class=\"sectlevel1\">\n<li><ul class=\"sectlevel2\">\n<li>y</li>\n</ul>\n</li>\n</ul>\n",
			wantTOC: []string{`<ul className="sectlevel1">`, `<li><ul class="sectlevel2">`, "<li>y</li>", "</ul>"},
		},
		{
			name:    "toc lines are not rewritten",
			input:   "<ul class=\"sectlevel1\">\n<li class=\"a\">{x}<br></li>\n</ul>\n",
			wantTOC: []string{`<ul className="sectlevel1">`, `<li class="a">{x}<br></li>`, "</ul>"},
		},
		{
			name:     "body start inside active toc opens body after toc closes",
			input:    "<ul class=\"sectlevel1\">\n<div id=\"content\">\n</ul>\n<p>kept</p>\n",
			wantTOC:  []string{`<ul className="sectlevel1">`, `<div id="content">`, "</ul>"},
			wantBody: []string{"<p>kept</p>"},
		},
		{
			name:     "toc inside active body goes to toc",
			input:    "<div id=\"content\">\n<p>intro</p>\n<ul class=\"sectlevel1\">\n<li>x</li>\n</ul>\n<p>after</p>\n<div id=\"footer\">\n",
			wantTOC:  []string{`<ul className="sectlevel1">`, "<li>x</li>", "</ul>"},
			wantBody: []string{"<p>intro</p>", "<p>after</p>"},
		},
		{
			name:     "footer inside active toc does not stop the scan",
			input:    "<div id=\"content\">\n<ul class=\"sectlevel1\">\n<div id=\"footer\">\n</ul>\n<p>b</p>\n",
			wantTOC:  []string{`<ul className="sectlevel1">`, `<div id="footer">`, "</ul>"},
			wantBody: []string{"<p>b</p>"},
		},
		{
			name:     "repeated body start inside body is kept",
			input:    "<div id=\"content\">\n<div id=\"content\">\n<div id=\"footer\">\n",
			wantBody: []string{`<div id="content">`},
		},
		{
			name:     "toc start wins over body start on the same line",
			input:    "<div id=\"content\"><ul class=\"sectlevel1\">\n</ul>\n<p>dropped</p>\n",
			wantTOC:  []string{`<ul className="sectlevel1">`, "</ul>"},
			wantBody: nil,
		},
		{
			name:    "toc can reopen after closing",
			input:   "<ul class=\"sectlevel1\">\n</ul>\n<ul class=\"sectlevel1\">\n</ul>\n",
			wantTOC: []string{`<ul className="sectlevel1">`, "</ul>", `<ul className="sectlevel1">`, "</ul>"},
		},
		{
			name:     "crlf line endings are stripped",
			input:    "<div id=\"content\">\r\n<p>a</p>\r\n<div id=\"footer\">\r\n",
			wantBody: []string{"<p>a</p>"},
		},
		{
			name:     "lone cr line endings split lines",
			input:    "<div id=\"content\">\r<p>a</p>\r\r<p>b</p>\r<div id=\"footer\">\r",
			wantBody: []string{"<p>a</p>", "", "<p>b</p>"},
		},
		{
			name:     "trailing cr at end of input",
			input:    "<div id=\"content\">\na\r",
			wantBody: []string{"a"},
		},
		{
			name:     "body without footer runs to end of input",
			input:    "<div id=\"content\">\na\nb",
			wantBody: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scanner := NewRegionScanner(DefaultMarkers(), nil)
			frags, err := scanner.Scan(context.Background(), strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if !reflect.DeepEqual(frags.TOC, tt.wantTOC) {
				t.Errorf("TOC = %q, want %q", frags.TOC, tt.wantTOC)
			}
			if !reflect.DeepEqual(frags.Body, tt.wantBody) {
				t.Errorf("Body = %q, want %q", frags.Body, tt.wantBody)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRegionScanner_StopsReading - Footer marker ends the read
// ---------------------------------------------------------------------------

// failAfterReader returns data, then fails on any further Read.
type failAfterReader struct {
	data []byte
	done bool
}

func (r *failAfterReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, errors.New("read past footer")
	}
	r.done = true
	return copy(p, r.data), nil
}

func TestRegionScanner_StopsReading(t *testing.T) {
	t.Parallel()

	r := &failAfterReader{data: []byte("<div id=\"content\">\n<p>a</p>\n<div id=\"footer\">\n")}
	scanner := NewRegionScanner(DefaultMarkers(), nil)

	frags, err := scanner.Scan(context.Background(), r)
	if err != nil {
		t.Fatalf("Scan() error = %v, want nil (no read after footer)", err)
	}
	if len(frags.Body) != 1 || frags.Body[0] != "<p>a</p>" {
		t.Errorf("Body = %q, want [<p>a</p>]", frags.Body)
	}
}

// ---------------------------------------------------------------------------
// TestRegionScanner_Errors - Error paths
// ---------------------------------------------------------------------------

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestRegionScanner_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil reader", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegionScanner(DefaultMarkers(), nil).Scan(context.Background(), nil)
		if !errors.Is(err, ErrNilReader) {
			t.Errorf("Scan(nil) error = %v, want ErrNilReader", err)
		}
	})

	t.Run("reader error wraps ErrScan", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegionScanner(DefaultMarkers(), nil).Scan(context.Background(), errReader{err: io.ErrUnexpectedEOF})
		if !errors.Is(err, ErrScan) {
			t.Errorf("Scan() error = %v, want ErrScan", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewRegionScanner(DefaultMarkers(), nil).Scan(ctx, strings.NewReader("a\nb\n"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Scan() error = %v, want context.Canceled", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRegionScanner_LongLine - Lines have no length limit
// ---------------------------------------------------------------------------

func TestRegionScanner_LongLine(t *testing.T) {
	t.Parallel()

	img := `<img src="data:image/png;base64,` + strings.Repeat("A", 2<<20) + `">`
	input := "<div id=\"content\">\n" + img + "\n<p>after</p>\n<div id=\"footer\">\n"

	frags, err := NewRegionScanner(DefaultMarkers(), nil).Scan(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(frags.Body) != 2 {
		t.Fatalf("len(Body) = %d, want 2", len(frags.Body))
	}
	if frags.Body[0] != img {
		t.Errorf("Body[0] has length %d, want the %d-byte image line unchanged", len(frags.Body[0]), len(img))
	}
	if frags.Body[1] != "<p>after</p>" {
		t.Errorf("Body[1] = %q, want <p>after</p>", frags.Body[1])
	}
}

// ---------------------------------------------------------------------------
// TestRegionScanner_CustomRewriter - Body lines go through the rewriter
// ---------------------------------------------------------------------------

type upperRewriter struct{}

func (upperRewriter) RewriteLine(line string) string { return strings.ToUpper(line) }

func TestRegionScanner_CustomRewriter(t *testing.T) {
	t.Parallel()

	scanner := NewRegionScanner(DefaultMarkers(), upperRewriter{})
	frags, err := scanner.Scan(context.Background(), strings.NewReader("<div id=\"content\">\nabc\n"))
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(frags.Body) != 1 || frags.Body[0] != "ABC" {
		t.Errorf("Body = %q, want [ABC]", frags.Body)
	}
}

// ---------------------------------------------------------------------------
// TestMarkers_Validate - Empty marker detection
// ---------------------------------------------------------------------------

func TestMarkers_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultMarkers().Validate(); err != nil {
		t.Fatalf("DefaultMarkers().Validate() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(m *Markers)
		field  string
	}{
		{"empty toc start", func(m *Markers) { m.TOCStart = "" }, "tocStart"},
		{"empty toc end", func(m *Markers) { m.TOCEnd = "" }, "tocEnd"},
		{"empty body start", func(m *Markers) { m.BodyStart = "" }, "bodyStart"},
		{"empty body end", func(m *Markers) { m.BodyEnd = "" }, "bodyEnd"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := DefaultMarkers()
			tt.mutate(&m)
			err := m.Validate()
			if !errors.Is(err, ErrEmptyMarker) {
				t.Fatalf("Validate() error = %v, want ErrEmptyMarker", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q should name field %q", err, tt.field)
			}
		})
	}

	t.Run("empty replacement is allowed", func(t *testing.T) {
		t.Parallel()

		m := DefaultMarkers()
		m.TOCStartReplacement = ""
		if err := m.Validate(); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})
}
