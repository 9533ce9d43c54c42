package transform

// MissingCatalogueRootError reports a source document with no recognizable
// catalogue or game-system root. It is fatal for the document being
// transformed.
type MissingCatalogueRootError struct{}

func (e *MissingCatalogueRootError) Error() string {
	return "no catalogue or game system root found in source document"
}
