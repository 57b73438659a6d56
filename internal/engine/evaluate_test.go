package engine

import (
	"testing"

	"go.uber.org/zap"

	"github.com/eoselia/mortgage-engine/pkg/mathutil"
)

func testProgramConfig() ProgramConfig {
	return ProgramConfig{
		PricePerSqM:               25000,
		DownPaymentPercent:        20,
		DownPaymentPercentUnder26: 10,
		MinLoanAmount:             200000,
		MaxLoanAmount:             5000000,
		MaxAreaExcessPercent:      10,
		MaxPriceExcessPercent:     10,
		MaxBuildingAge:            3,
		RatePeriod1:               0.03,
		RatePeriod2:               0.06,
	}
}

func testInput() Input {
	return Input{
		Category:      "military",
		Age:           30,
		HouseholdSize: 3,
		PropertyKind:  PropertyApartment,
		Region:        "Cherkasy",
		Settlement:    SettlementMajor,
		Area:          65,
		TotalPrice:    2000000,
		BuildingAge:   2,
		TermYears:     20,
	}
}

func TestEvaluateSuccess(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	evaluator := NewEvaluator(logger)

	result := evaluator.Evaluate(testInput(), testProgramConfig())

	if !result.Success {
		t.Fatalf("Evaluate() failed with %q, expected success", result.Error)
	}
	if result.Financials == nil {
		t.Fatal("Financials is nil on a successful result")
	}

	diag := result.Diagnostics
	if diag.NormativeArea != 73.5 {
		t.Errorf("NormativeArea = %v, expected 73.5 for a household of 3 in an apartment", diag.NormativeArea)
	}
	if diag.LimitPrice != 50000 {
		t.Errorf("LimitPrice = %v, expected 50000 for a major settlement at base 25000", diag.LimitPrice)
	}
	if diag.ExcessArea != 0 || diag.ExcessPrice != 0 {
		t.Errorf("expected zero excesses, got area %v and price %v", diag.ExcessArea, diag.ExcessPrice)
	}

	fin := result.Financials
	if !mathutil.WithinTolerance(fin.DownPayment, 400000, 0.01) {
		t.Errorf("DownPayment = %v, expected 400000 at the standard 20%% rate", fin.DownPayment)
	}
	if !mathutil.WithinTolerance(fin.LoanAmount, 1600000, 0.01) {
		t.Errorf("LoanAmount = %v, expected 1600000", fin.LoanAmount)
	}
	if !mathutil.WithinTolerance(fin.LoanAmount, testInput().TotalPrice-fin.DownPayment, 0.01) {
		t.Errorf("loanAmount invariant violated: %v != %v - %v",
			fin.LoanAmount, testInput().TotalPrice, fin.DownPayment)
	}
	if !mathutil.WithinTolerance(fin.TotalPayment, fin.LoanAmount+fin.TotalInterest, 0.01) {
		t.Errorf("totalPayment invariant violated: %v != %v + %v",
			fin.TotalPayment, fin.LoanAmount, fin.TotalInterest)
	}
	if len(fin.Surcharges) != 0 {
		t.Errorf("expected no surcharges, got %v", fin.Surcharges)
	}
	if len(fin.Scenarios) != 4 {
		t.Errorf("expected 4 comparison scenarios, got %d", len(fin.Scenarios))
	}
	for _, scenario := range fin.Scenarios {
		if !mathutil.WithinTolerance(scenario.TotalPayment, scenario.LoanAmount+scenario.TotalInterest, 0.01) {
			t.Errorf("scenario %s: totalPayment invariant violated", scenario.Label)
		}
	}
}

func TestEvaluateBuildingAgeExceeded(t *testing.T) {
	evaluator := NewEvaluator(nil)

	input := testInput()
	input.Area = 80 // above the 73.5 norm so the age rule is reached
	input.BuildingAge = 25

	result := evaluator.Evaluate(input, testProgramConfig())

	if result.Success {
		t.Fatal("expected failure for a 25-year-old building against a max of 3")
	}
	if result.Error != FailureBuildingAgeExceeded {
		t.Errorf("Error = %q, expected %q", result.Error, FailureBuildingAgeExceeded)
	}
	if result.Financials != nil {
		t.Error("Financials must be nil on failure")
	}
	if result.Diagnostics.BuildingAge != 25 {
		t.Errorf("Diagnostics.BuildingAge = %d, expected 25", result.Diagnostics.BuildingAge)
	}
	if result.Diagnostics.MaxBuildingAge != 3 {
		t.Errorf("Diagnostics.MaxBuildingAge = %d, expected 3", result.Diagnostics.MaxBuildingAge)
	}
	if result.Diagnostics.NormativeArea != 73.5 {
		t.Errorf("Diagnostics.NormativeArea = %v, expected 73.5 populated on failure", result.Diagnostics.NormativeArea)
	}
}

func TestEvaluateOldBuildingWithinNormPasses(t *testing.T) {
	evaluator := NewEvaluator(nil)

	// The area check short-circuits to pass before the age rules when the
	// declared area is within the norm, so even a 25-year-old building passes
	// when nothing else is wrong.
	input := testInput()
	input.BuildingAge = 25

	result := evaluator.Evaluate(input, testProgramConfig())
	if !result.Success {
		t.Fatalf("Evaluate() failed with %q, expected success for area within norm", result.Error)
	}
}

func TestEvaluatePriceExceeded(t *testing.T) {
	evaluator := NewEvaluator(nil)

	input := testInput()
	input.TotalPrice = 4000000 // 61538/m² against a 50000 limit, 23% over

	result := evaluator.Evaluate(input, testProgramConfig())

	if result.Success {
		t.Fatal("expected priceExceeded failure")
	}
	if result.Error != FailurePriceExceeded {
		t.Errorf("Error = %q, expected %q", result.Error, FailurePriceExceeded)
	}
	if result.Diagnostics.LimitPrice != 50000 {
		t.Errorf("Diagnostics.LimitPrice = %v, expected 50000 populated on failure", result.Diagnostics.LimitPrice)
	}
	if result.Diagnostics.ExcessPrice <= 0 {
		t.Errorf("Diagnostics.ExcessPrice = %v, expected positive", result.Diagnostics.ExcessPrice)
	}
}

func TestEvaluateSurchargesAreAdditive(t *testing.T) {
	evaluator := NewEvaluator(nil)

	// 77 m² against the 73.5 norm: 3.5 m² excess at 4.76%, payable for a
	// 2-year-old building.
	input := testInput()
	input.Area = 77
	input.TotalPrice = 2300000

	result := evaluator.Evaluate(input, testProgramConfig())
	if !result.Success {
		t.Fatalf("Evaluate() failed with %q, expected success", result.Error)
	}

	fin := result.Financials
	if len(fin.Surcharges) != 1 {
		t.Fatalf("expected 1 surcharge, got %d", len(fin.Surcharges))
	}
	surcharge := fin.Surcharges[0]
	if surcharge.Type != SurchargeAreaExcess {
		t.Errorf("surcharge type = %q, expected %q", surcharge.Type, SurchargeAreaExcess)
	}

	pricePerSqM := input.TotalPrice / input.Area
	expectedSurcharge := 3.5 * pricePerSqM
	if !mathutil.WithinTolerance(surcharge.Amount, expectedSurcharge, 0.01) {
		t.Errorf("surcharge amount = %v, expected %v", surcharge.Amount, expectedSurcharge)
	}

	expectedDown := mathutil.ApplyPercentage(input.TotalPrice, 20) + expectedSurcharge
	if !mathutil.WithinTolerance(fin.DownPayment, expectedDown, 0.01) {
		t.Errorf("DownPayment = %v, expected base + surcharge = %v", fin.DownPayment, expectedDown)
	}
	if !mathutil.WithinTolerance(fin.LoanAmount, input.TotalPrice-fin.DownPayment, 0.01) {
		t.Errorf("loanAmount invariant violated with surcharges")
	}
}

func TestEvaluateLoanBounds(t *testing.T) {
	evaluator := NewEvaluator(nil)

	tests := []struct {
		name      string
		configure func(*Input, *ProgramConfig)
		wantError FailureCode
	}{
		{
			name: "Loan below minimum",
			configure: func(in *Input, cfg *ProgramConfig) {
				cfg.MinLoanAmount = 1700000
			},
			wantError: FailureLoanTooSmall,
		},
		{
			name: "Loan above maximum",
			configure: func(in *Input, cfg *ProgramConfig) {
				cfg.MaxLoanAmount = 1500000
			},
			wantError: FailureLoanTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := testInput()
			cfg := testProgramConfig()
			tt.configure(&input, &cfg)

			result := evaluator.Evaluate(input, cfg)
			if result.Success {
				t.Fatal("expected loan-bound failure")
			}
			if result.Error != tt.wantError {
				t.Errorf("Error = %q, expected %q", result.Error, tt.wantError)
			}
			// Bound failures still report the computed figures.
			if !mathutil.WithinTolerance(result.Diagnostics.DownPayment, 400000, 0.01) {
				t.Errorf("Diagnostics.DownPayment = %v, expected 400000", result.Diagnostics.DownPayment)
			}
			if !mathutil.WithinTolerance(result.Diagnostics.LoanAmount, 1600000, 0.01) {
				t.Errorf("Diagnostics.LoanAmount = %v, expected 1600000", result.Diagnostics.LoanAmount)
			}
		})
	}
}

func TestEvaluateYoungApplicantRate(t *testing.T) {
	evaluator := NewEvaluator(nil)

	input := testInput()
	input.Age = 24

	result := evaluator.Evaluate(input, testProgramConfig())
	if !result.Success {
		t.Fatalf("Evaluate() failed with %q, expected success", result.Error)
	}
	if !mathutil.WithinTolerance(result.Financials.DownPayment, 200000, 0.01) {
		t.Errorf("DownPayment = %v, expected 200000 at the reduced 10%% rate", result.Financials.DownPayment)
	}
}
