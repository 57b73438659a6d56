package engine

import (
	"fmt"

	"github.com/eoselia/mortgage-engine/pkg/constants"
	"github.com/eoselia/mortgage-engine/pkg/mathutil"
)

// scenarioParams is one row of the comparison policy table.
type scenarioParams struct {
	DownPaymentPercent float64
	RatePeriod1        float64
	RatePeriod2        float64
}

// comparisonMatrix is the fixed set of what-if combinations evaluated for
// every successful calculation. The slice order is part of the contract:
// scenarios are emitted percent-major, rate-minor, exactly as listed here.
var comparisonMatrix = []scenarioParams{
	{DownPaymentPercent: 20, RatePeriod1: 0.03, RatePeriod2: 0.06},
	{DownPaymentPercent: 20, RatePeriod1: 0.07, RatePeriod2: 0.10},
	{DownPaymentPercent: 10, RatePeriod1: 0.03, RatePeriod2: 0.06},
	{DownPaymentPercent: 10, RatePeriod1: 0.07, RatePeriod2: 0.10},
}

// GenerateScenarios evaluates the comparison matrix for one property.
// surchargeTotal is the sum of the surcharges computed for the primary case;
// surcharges depend on the property, not on the down-payment percent, so the
// same total is reused in every combination. Combinations whose resulting
// loan amount would be non-positive are skipped.
func GenerateScenarios(totalPrice, surchargeTotal float64, termMonths int) []Scenario {
	scenarios := make([]Scenario, 0, len(comparisonMatrix))

	for _, params := range comparisonMatrix {
		downPayment := mathutil.ApplyPercentage(totalPrice, params.DownPaymentPercent) + surchargeTotal
		loanAmount := totalPrice - downPayment
		if loanAmount <= 0 {
			continue
		}

		schedule := PaymentSchedule(loanAmount, params.RatePeriod1, params.RatePeriod2, termMonths)

		scenarios = append(scenarios, Scenario{
			Label: fmt.Sprintf("%.0f%% + %.0f%%/%.0f%%",
				params.DownPaymentPercent,
				params.RatePeriod1*constants.PercentageMultiplier,
				params.RatePeriod2*constants.PercentageMultiplier),
			DownPaymentPercent: params.DownPaymentPercent,
			RatePeriod1:        params.RatePeriod1,
			RatePeriod2:        params.RatePeriod2,
			DownPayment:        downPayment,
			LoanAmount:         loanAmount,
			MonthlyPayment1:    schedule.MonthlyPayment1,
			MonthlyPayment2:    schedule.MonthlyPayment2,
			TotalInterest:      schedule.TotalInterest,
			TotalPayment:       schedule.TotalPayment,
		})
	}

	return scenarios
}
