package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// Catalog is the top-level JSON structure for a historical catalog import.
type Catalog struct {
	Locations   []LocationImport   `json:"locations"`
	Categories  []CategoryImport   `json:"categories"`
	Competitors []CompetitorImport `json:"competitors,omitempty"`
	Sales       []SalesImport      `json:"sales,omitempty"`
}

// LocationImport defines one shelf location in the catalog file.
type LocationImport struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Zone         string   `json:"zone"`
	TrafficIndex float64  `json:"traffic_index"`
	Visibility   float64  `json:"visibility,omitempty"`
	MonthlyCost  float64  `json:"monthly_cost"`
	Affinities   []string `json:"affinities,omitempty"`
}

// CategoryImport defines category-level conversion aggregates.
type CategoryImport struct {
	Category       string  `json:"category"`
	ConversionRate float64 `json:"conversion_rate"`
	AvgBasketValue float64 `json:"avg_basket_value"`
}

// CompetitorImport defines one observed competitor product at a location.
type CompetitorImport struct {
	Category    string  `json:"category"`
	LocationID  string  `json:"location_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	ObservedROI float64 `json:"observed_roi"`
}

// SalesImport defines one historical transaction aggregate.
type SalesImport struct {
	LocationID string `json:"location_id"`
	Category   string `json:"category"`
	Zone       string `json:"zone"`
	UnitsSold  int    `json:"units_sold"`
	SoldOn     string `json:"sold_on"`
}

// LoadCatalog reads and parses a catalog JSON file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog JSON bytes.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	return &catalog, nil
}
