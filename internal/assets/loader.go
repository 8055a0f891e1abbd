package assets

// AssetLoader defines the contract for loading page templates.
type AssetLoader interface {
	// LoadTemplate loads a template by name (without the .js extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
