package importer

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.json
var defaultCatalogJSON []byte

// DefaultCatalog returns the built-in seed catalog used by the seed command
// when no catalog file is supplied.
func DefaultCatalog() (*Catalog, error) {
	catalog, err := ParseCatalog(defaultCatalogJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in catalog: %w", err)
	}
	return catalog, nil
}
