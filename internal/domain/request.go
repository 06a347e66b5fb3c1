package domain

import "fmt"

// ProductRequest is an accepted, validated placement request. Immutable
// once built; construct through contract validation rather than directly.
type ProductRequest struct {
	Name               string
	Category           Category
	UnitPrice          float64 // dollars, > 0
	Budget             float64 // dollars available for placement, >= 0
	TargetMonthlySales int     // units per month, >= 0
	TargetCustomers    string
	ExpectedROI        float64 // investor hurdle rate, > 0
}

// AdvisoryWarnings returns business-rule warnings for a valid request.
// These never block analysis; they ride along on the response.
func (r ProductRequest) AdvisoryWarnings() []string {
	var warnings []string

	if r.ExpectedROI > 3.0 {
		warnings = append(warnings, fmt.Sprintf(
			"Expected ROI of %.2f is very ambitious; most retail placements achieve 1.0-2.5.", r.ExpectedROI))
	}

	expectedRevenue := r.UnitPrice * float64(r.TargetMonthlySales)
	if r.TargetMonthlySales > 0 && r.Budget > expectedRevenue {
		warnings = append(warnings, fmt.Sprintf(
			"Placement budget ($%.2f) exceeds expected monthly revenue ($%.2f); this implies a negative ROI.",
			r.Budget, expectedRevenue))
	}

	if r.UnitPrice < 0.50 {
		warnings = append(warnings, "Unit price seems unusually low (<$0.50).")
	} else if r.UnitPrice > 50.0 {
		warnings = append(warnings, "Unit price seems unusually high (>$50).")
	}

	if len(r.TargetCustomers) > 0 && len(r.TargetCustomers) < 5 {
		warnings = append(warnings, "Target customer description is very brief; more detail improves category matching.")
	}

	return warnings
}
