package engine

import (
	"fmt"

	"go.uber.org/zap"
)

// Evaluator runs the full eligibility and repayment calculation.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator creates an Evaluator. A nil logger is replaced with a no-op
// logger.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate determines whether the property qualifies under program rules and,
// if so, computes the down payment, amortization figures, and comparison
// scenarios. The checks run in a fixed order (area compliance, price
// compliance, down payment and surcharges, loan bounds, amortization,
// scenarios) and any failing check terminates the evaluation with a Result
// carrying the diagnostics computed so far.
func (e *Evaluator) Evaluate(in Input, cfg ProgramConfig) Result {
	diag := Diagnostics{
		ActualArea:           in.Area,
		BuildingAge:          in.BuildingAge,
		MaxBuildingAge:       cfg.MaxBuildingAge,
		MaxAreaExcessPercent: cfg.MaxAreaExcessPercent,
	}

	diag.NormativeArea = NormativeArea(in.HouseholdSize, in.PropertyKind)
	diag.ActualPricePerSqM = in.TotalPrice / in.Area

	areaCheck := CheckArea(in.Area, diag.NormativeArea, in.BuildingAge, cfg.MaxBuildingAge,
		cfg.MaxAreaExcessPercent, diag.ActualPricePerSqM)
	diag.ExcessArea = areaCheck.Excess
	diag.ExcessAreaPercent = areaCheck.ExcessPercent
	if !areaCheck.Allowed {
		e.logger.Debug(fmt.Sprintf("area compliance check rejected property in %s", in.Region),
			zap.String("op", "engine.Evaluate"),
			zap.String("reason", string(areaCheck.Error)),
		)
		return Result{Error: areaCheck.Error, Diagnostics: diag}
	}

	diag.LimitPrice = LimitPrice(cfg.PricePerSqM, in.Settlement)

	priceCheck := CheckPrice(diag.ActualPricePerSqM, diag.LimitPrice, in.Area, cfg.MaxPriceExcessPercent)
	diag.ExcessPrice = priceCheck.Excess
	diag.ExcessPricePercent = priceCheck.ExcessPercent
	if !priceCheck.Allowed {
		e.logger.Debug(fmt.Sprintf("price compliance check rejected property in %s", in.Region),
			zap.String("op", "engine.Evaluate"),
			zap.String("reason", string(priceCheck.Error)),
		)
		return Result{Error: priceCheck.Error, Diagnostics: diag}
	}

	downPayment := BaseDownPayment(in.TotalPrice, in.Age,
		cfg.DownPaymentPercent, cfg.DownPaymentPercentUnder26)

	var surcharges []Surcharge
	if areaCheck.Excess > 0 {
		downPayment += areaCheck.Surcharge
		surcharges = append(surcharges, Surcharge{
			Type:    SurchargeAreaExcess,
			Amount:  areaCheck.Surcharge,
			Details: fmt.Sprintf("%.1f m² × %.0f/m²", areaCheck.Excess, diag.ActualPricePerSqM),
		})
	}
	if priceCheck.Excess > 0 {
		downPayment += priceCheck.Surcharge
		surcharges = append(surcharges, Surcharge{
			Type:    SurchargePriceExcess,
			Amount:  priceCheck.Surcharge,
			Details: fmt.Sprintf("%.0f/m² × %.1f m²", priceCheck.Excess, in.Area),
		})
	}
	diag.DownPayment = downPayment

	loanAmount := in.TotalPrice - downPayment
	diag.LoanAmount = loanAmount
	if loanAmount < cfg.MinLoanAmount {
		return Result{Error: FailureLoanTooSmall, Diagnostics: diag}
	}
	if loanAmount > cfg.MaxLoanAmount {
		return Result{Error: FailureLoanTooLarge, Diagnostics: diag}
	}

	termMonths := in.TermMonths()
	schedule := PaymentSchedule(loanAmount, cfg.RatePeriod1, cfg.RatePeriod2, termMonths)

	surchargeTotal := 0.0
	for _, surcharge := range surcharges {
		surchargeTotal += surcharge.Amount
	}
	scenarios := GenerateScenarios(in.TotalPrice, surchargeTotal, termMonths)

	e.logger.Debug(fmt.Sprintf("evaluated loan of %.2f over %d months", loanAmount, termMonths),
		zap.String("op", "engine.Evaluate"),
		zap.Float64("downPayment", downPayment),
		zap.Int("scenarios", len(scenarios)),
	)

	return Result{
		Success:     true,
		Diagnostics: diag,
		Financials: &Financials{
			DownPayment:     downPayment,
			LoanAmount:      loanAmount,
			RatePeriod1:     cfg.RatePeriod1,
			RatePeriod2:     cfg.RatePeriod2,
			MonthlyPayment1: schedule.MonthlyPayment1,
			MonthlyPayment2: schedule.MonthlyPayment2,
			TotalInterest:   schedule.TotalInterest,
			TotalPayment:    schedule.TotalPayment,
			Surcharges:      surcharges,
			Scenarios:       scenarios,
		},
	}
}
