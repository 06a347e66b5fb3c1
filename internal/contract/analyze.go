package contract

import (
	"strings"
	"time"

	"github.com/shelfwise/shelfwise/internal/domain"
)

// AnalyzeRequest carries raw placement request fields before validation.
type AnalyzeRequest struct {
	ProductName        string
	Category           string
	UnitPrice          float64
	Budget             float64
	TargetMonthlySales int
	TargetCustomers    string
	ExpectedROI        float64
	TopN               int // 0 uses the default
}

// DefaultTopN is how many predictions an analyze response presents when
// the caller does not ask for a specific count. The session always keeps
// the full ranked list.
const DefaultTopN = 5

// Validate checks all fields and converts the request into an immutable
// domain.ProductRequest. Returns *ValidationError naming the offending
// field, or *UnknownCategoryError for a category outside the taxonomy.
func (r AnalyzeRequest) Validate() (*domain.ProductRequest, error) {
	if strings.TrimSpace(r.ProductName) == "" {
		return nil, &ValidationError{Field: "product_name", Message: "must not be empty"}
	}
	if r.UnitPrice <= 0 {
		return nil, &ValidationError{Field: "unit_price", Message: "must be > 0"}
	}
	if r.Budget < 0 {
		return nil, &ValidationError{Field: "budget", Message: "must be >= 0"}
	}
	if r.TargetMonthlySales < 0 {
		return nil, &ValidationError{Field: "target_monthly_sales", Message: "must be >= 0"}
	}
	if r.ExpectedROI <= 0 {
		return nil, &ValidationError{Field: "expected_roi", Message: "must be > 0"}
	}

	category, ok := domain.ParseCategory(r.Category)
	if !ok {
		return nil, &UnknownCategoryError{Category: r.Category}
	}

	return &domain.ProductRequest{
		Name:               strings.TrimSpace(r.ProductName),
		Category:           category,
		UnitPrice:          r.UnitPrice,
		Budget:             r.Budget,
		TargetMonthlySales: r.TargetMonthlySales,
		TargetCustomers:    strings.TrimSpace(r.TargetCustomers),
		ExpectedROI:        r.ExpectedROI,
	}, nil
}

// AnalyzeResponse is the caller-facing outcome of one analysis.
type AnalyzeResponse struct {
	SessionID   string
	GeneratedAt time.Time
	Predictions []domain.ROIPrediction // top-N slice of the ranked list
	Excluded    []domain.BudgetExclusion
	Empty       bool // no affordable placement; a normal outcome, not an error
	Warnings    []string
}
