// Package makedoc converts asciidoctor HTML pages into JavaScript page modules
// for the documentation viewer of a website.
//
// # Quick Start
//
// Create a converter and convert one page:
//
//	conv, err := makedoc.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := os.Open("build/adoc.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	result, err := conv.Convert(ctx, makedoc.Input{HTML: f, Version: "0.22"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("src/pages/docs/0.22.js", []byte(result.Page), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Region scanning: one pass over the source lines collects the table of
//     contents (from <ul class="sectlevel1"> to </ul>) and the body (from
//     <div id="content"> up to <div id="footer">)
//  2. Body rewriting: <br> becomes <br />, braces become &#123; and &#125;,
//     class=" becomes className=", and a bare <col> line becomes <col />
//  3. Template loading: by file path, or by name from the asset loader
//  4. Template assembly: the version heading, body and TOC replace their
//     placeholders, first occurrence only
//
// The source is never parsed into a tree. Markers are plain substrings, so the
// converter only understands the layout asciidoctor produces.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := makedoc.NewConverter(
//	    makedoc.WithTemplate("site/__template.js"),
//	    makedoc.WithStrictPlaceholders(true),
//	    makedoc.WithLogger(logger),
//	)
//
// # Custom Assets
//
// Templates given by name are resolved through an AssetLoader. Custom
// directories take precedence over the built-in templates:
//
//	loader, err := makedoc.NewAssetLoader("/path/to/assets")
//	conv, err := makedoc.NewConverter(
//	    makedoc.WithAssetLoader(loader),
//	    makedoc.WithTemplate("docs"),
//	)
//
// Asset directory structure:
//
//	assets/
//	└── templates/
//	    └── docs.js
package makedoc
