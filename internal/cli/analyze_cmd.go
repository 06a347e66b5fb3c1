package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shelfwise/shelfwise/internal/cli/formatter"
	"github.com/shelfwise/shelfwise/internal/contract"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var req contract.AnalyzeRequest
	var chat bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score the placement catalog for a product and open a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare "shelfwise analyze" on a terminal opens the form
			// instead of failing validation on the empty product name.
			if req.ProductName == "" && app.interactive() {
				if err := runAnalyzeForm(&req); err != nil {
					return err
				}
			}

			resp, err := app.Analyze.Analyze(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAnalyze(resp))

			if chat && app.interactive() {
				return runDefendChat(app, resp.SessionID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProductName, "product", "", "Product name")
	cmd.Flags().StringVar(&req.Category, "category", "", "Product category (beverages, snacks, dairy, bakery, personal_care, household, frozen)")
	cmd.Flags().Float64Var(&req.UnitPrice, "price", 0, "Unit sale price in dollars")
	cmd.Flags().Float64Var(&req.Budget, "budget", 0, "Monthly placement budget in dollars")
	cmd.Flags().IntVar(&req.TargetMonthlySales, "target-sales", 0, "Target units sold per month")
	cmd.Flags().StringVar(&req.TargetCustomers, "customers", "", "Target customer description")
	cmd.Flags().Float64Var(&req.ExpectedROI, "expected-roi", 1.5, "Expected ROI multiple")
	cmd.Flags().IntVar(&req.TopN, "top", 0, "How many predictions to show")
	cmd.Flags().BoolVar(&chat, "chat", false, "Open the defend chat on the new session after analyzing")

	return cmd
}

// runAnalyzeForm collects the analyze request interactively. Numeric
// fields are gathered as text and parsed after the form submits; request
// validation still runs in the service.
func runAnalyzeForm(req *contract.AnalyzeRequest) error {
	price := floatField(req.UnitPrice)
	budget := floatField(req.Budget)
	targetSales := intField(req.TargetMonthlySales)
	expectedROI := floatField(req.ExpectedROI)

	form := buildAnalyzeForm(req, &price, &budget, &targetSales, &expectedROI)
	if err := form.Run(); err != nil {
		return err
	}

	var err error
	if req.UnitPrice, err = parseFloatField(price); err != nil {
		return fmt.Errorf("unit price: %w", err)
	}
	if req.Budget, err = parseFloatField(budget); err != nil {
		return fmt.Errorf("budget: %w", err)
	}
	if req.TargetMonthlySales, err = parseIntField(targetSales); err != nil {
		return fmt.Errorf("target sales: %w", err)
	}
	if req.ExpectedROI, err = parseFloatField(expectedROI); err != nil {
		return fmt.Errorf("expected ROI: %w", err)
	}
	return nil
}

func floatField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func parseFloatField(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseIntField(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
