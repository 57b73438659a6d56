package config

import (
	"fmt"

	"github.com/eoselia/mortgage-engine/internal/engine"
)

// Resolve produces the fully-typed program-rule snapshot for one evaluation:
// the regional price per m², the category's rate pair, and the effective max
// building age, which is the category's frontline override when the region
// is in the frontline set. The snapshot is what the engine consumes; the
// engine itself never looks at raw configuration.
func (conf *Configuration) Resolve(categoryCode, regionCode string) (engine.ProgramConfig, error) {
	category, ok := conf.Category(categoryCode)
	if !ok {
		return engine.ProgramConfig{}, fmt.Errorf("unknown applicant category %q", categoryCode)
	}

	region, ok := conf.Region(regionCode)
	if !ok {
		return engine.ProgramConfig{}, fmt.Errorf("unknown region %q", regionCode)
	}

	maxBuildingAge := category.MaxBuildingAge
	if conf.IsFrontlineRegion(regionCode) {
		maxBuildingAge = category.FrontlineMaxBuildingAge
	}

	loan := conf.Program.Loan
	return engine.ProgramConfig{
		PricePerSqM:               region.PricePerSqM,
		DownPaymentPercent:        loan.DownPaymentPercent,
		DownPaymentPercentUnder26: loan.DownPaymentPercentUnder26,
		MinLoanAmount:             loan.MinLoanAmount,
		MaxLoanAmount:             loan.MaxLoanAmount,
		MaxAreaExcessPercent:      loan.MaxAreaExcessPercent,
		MaxPriceExcessPercent:     loan.MaxPriceExcessPercent,
		MaxBuildingAge:            maxBuildingAge,
		RatePeriod1:               category.RatePeriod1,
		RatePeriod2:               category.RatePeriod2,
	}, nil
}
