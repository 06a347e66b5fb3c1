package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/shelfwise/shelfwise/internal/contract"
	"github.com/shelfwise/shelfwise/internal/domain"
)

// buildAnalyzeForm returns a themed huh form collecting a placement
// request. Numeric fields are bound to string pointers owned by the caller.
func buildAnalyzeForm(req *contract.AnalyzeRequest, price, budget, targetSales, expectedROI *string) *huh.Form {
	categories := domain.Categories()
	options := make([]huh.Option[string], 0, len(categories))
	for _, c := range categories {
		options = append(options, huh.NewOption(c.Display(), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Product Name").
				Placeholder("Sparkling Cola 330ml").
				Value(&req.ProductName).
				Validate(validateRequired),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&req.Category),
			huh.NewInput().
				Title("Unit Price ($)").
				Placeholder("2.50").
				Value(price).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Monthly Budget ($)").
				Placeholder("2000").
				Value(budget).
				Validate(validateNonNegativeFloat),
			huh.NewInput().
				Title("Target Monthly Sales (units, blank to skip)").
				Placeholder("600").
				Value(targetSales).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Expected ROI Multiple").
				Placeholder("1.5").
				Value(expectedROI).
				Validate(validatePositiveFloat),
		),
	).WithTheme(shelfwiseHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

// validatePositiveFloat accepts empty (caught later by request validation)
// or a positive number.
func validatePositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative whole number")
	}
	return nil
}
