// Package assets provides the JavaScript page templates filled by the pipeline.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in template)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// Templates are looked up by name. A name never contains a path separator or
// a dot; callers that hold a file path read the file directly instead.
//
// # Directory Structure
//
//	{basePath}/
//	└── templates/
//	    └── {name}.js
//
// # Security
//
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
