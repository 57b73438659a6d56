// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/eoselia/mortgage-engine/internal/engine"
	"github.com/eoselia/mortgage-engine/pkg/constants"
)

// PrettyFormat writes a human-readable rendering of the result.
func PrettyFormat(w io.Writer, result engine.Result) {
	p := message.NewPrinter(language.English)

	diag := result.Diagnostics
	if !result.Success {
		fmt.Fprintf(w, "--- Application rejected: %s ---\n", result.Error)
		fmt.Fprintf(w, "Normative area      | %.1f m²\n", diag.NormativeArea)
		fmt.Fprintf(w, "Declared area       | %.1f m²\n", diag.ActualArea)
		if diag.ExcessArea > 0 {
			fmt.Fprintf(w, "Excess area         | %.1f m² (%.1f%%)\n", diag.ExcessArea, diag.ExcessAreaPercent)
		}
		if diag.LimitPrice > 0 {
			_, _ = p.Fprintf(w, "Limit price         | %.0f/m²\n", diag.LimitPrice)
			_, _ = p.Fprintf(w, "Declared price      | %.0f/m²\n", diag.ActualPricePerSqM)
		}
		if diag.ExcessPrice > 0 {
			_, _ = p.Fprintf(w, "Excess price        | %.0f/m² (%.1f%%)\n", diag.ExcessPrice, diag.ExcessPricePercent)
		}
		fmt.Fprintf(w, "Building age        | %d (max %d)\n", diag.BuildingAge, diag.MaxBuildingAge)
		if diag.LoanAmount > 0 {
			_, _ = p.Fprintf(w, "Down payment        | %.2f\n", diag.DownPayment)
			_, _ = p.Fprintf(w, "Loan amount         | %.2f\n", diag.LoanAmount)
		}
		return
	}

	fin := result.Financials
	fmt.Fprintf(w, "--- Application approved ---\n")
	fmt.Fprintf(w, "Normative area      | %.1f m²\n", diag.NormativeArea)
	_, _ = p.Fprintf(w, "Limit price         | %.0f/m²\n", diag.LimitPrice)
	_, _ = p.Fprintf(w, "Down payment        | %.2f\n", fin.DownPayment)
	for _, surcharge := range fin.Surcharges {
		_, _ = p.Fprintf(w, "  surcharge (%s) | %.2f (%s)\n", surcharge.Type, surcharge.Amount, surcharge.Details)
	}
	_, _ = p.Fprintf(w, "Loan amount         | %.2f\n", fin.LoanAmount)
	fmt.Fprintf(w, "Rates               | %.2f%% / %.2f%%\n",
		fin.RatePeriod1*constants.PercentageMultiplier, fin.RatePeriod2*constants.PercentageMultiplier)
	_, _ = p.Fprintf(w, "Monthly payment 1   | %.2f\n", fin.MonthlyPayment1)
	if fin.MonthlyPayment2 > 0 {
		_, _ = p.Fprintf(w, "Monthly payment 2   | %.2f\n", fin.MonthlyPayment2)
	}
	_, _ = p.Fprintf(w, "Total interest      | %.2f\n", fin.TotalInterest)
	_, _ = p.Fprintf(w, "Total payment       | %.2f\n", fin.TotalPayment)

	if len(fin.Scenarios) > 0 {
		fmt.Fprintf(w, "\nComparison scenarios\n")
		fmt.Fprintf(w, "Scenario      | Down payment  | Loan amount   | Payment 1  | Payment 2  | Total payment\n")
		fmt.Fprintf(w, "________      | ____________  | ___________   | _________  | _________  | _____________\n")
		for _, scenario := range fin.Scenarios {
			_, _ = p.Fprintf(w, "%-13s | %13.2f | %13.2f | %10.2f | %10.2f | %13.2f\n",
				scenario.Label, scenario.DownPayment, scenario.LoanAmount,
				scenario.MonthlyPayment1, scenario.MonthlyPayment2, scenario.TotalPayment)
		}
	}
}

// CsvFormat writes the result in comma-separated value format: one header
// and row for the primary result, then one per scenario.
func CsvFormat(w io.Writer, result engine.Result) {
	fmt.Fprintf(w, `"scenario","success","error","downPayment","loanAmount","rate1","rate2","payment1","payment2","totalInterest","totalPayment"`)
	fmt.Fprintf(w, "\n")

	if !result.Success {
		fmt.Fprintf(w, `"primary","false","%s","%.2f","%.2f","","","","","",""`,
			result.Error, result.Diagnostics.DownPayment, result.Diagnostics.LoanAmount)
		fmt.Fprintf(w, "\n")
		return
	}

	fin := result.Financials
	fmt.Fprintf(w, `"primary","true","","%.2f","%.2f","%.4f","%.4f","%.2f","%.2f","%.2f","%.2f"`,
		fin.DownPayment, fin.LoanAmount, fin.RatePeriod1, fin.RatePeriod2,
		fin.MonthlyPayment1, fin.MonthlyPayment2, fin.TotalInterest, fin.TotalPayment)
	fmt.Fprintf(w, "\n")
	for _, scenario := range fin.Scenarios {
		fmt.Fprintf(w, `"%s","true","","%.2f","%.2f","%.4f","%.4f","%.2f","%.2f","%.2f","%.2f"`,
			scenario.Label, scenario.DownPayment, scenario.LoanAmount,
			scenario.RatePeriod1, scenario.RatePeriod2,
			scenario.MonthlyPayment1, scenario.MonthlyPayment2,
			scenario.TotalInterest, scenario.TotalPayment)
		fmt.Fprintf(w, "\n")
	}
}
