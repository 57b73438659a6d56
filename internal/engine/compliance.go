package engine

import (
	"github.com/eoselia/mortgage-engine/pkg/mathutil"
)

// maxNewBuildingAge is the age, in years, above which a building no longer
// counts as new. Buildings older than this may not purchase any excess area
// regardless of the category's building-age ceiling.
const maxNewBuildingAge = 3

// ComplianceOutcome is the decision of one compliance check. Excess and
// ExcessPercent are populated whenever the actual value exceeds the norm,
// including on failure; Surcharge is non-zero only when the excess is
// allowed and payable.
type ComplianceOutcome struct {
	Allowed       bool
	Error         FailureCode
	Excess        float64
	ExcessPercent float64
	Surcharge     float64
}

// CheckArea compares the declared living area against the normative area.
// The rule order is load-bearing: an area within the norm passes before any
// building-age consideration, a building-age violation is reported ahead of
// any area-excess classification, and buildings older than maxNewBuildingAge
// may not buy excess area even when the excess percent would otherwise be
// tolerated.
func CheckArea(actualArea, normativeArea float64, buildingAge, maxBuildingAge int, maxExcessPercent, pricePerSqM float64) ComplianceOutcome {
	if actualArea <= normativeArea {
		return ComplianceOutcome{Allowed: true}
	}

	excessArea := actualArea - normativeArea
	excessPercent := mathutil.CalculatePercentage(excessArea, normativeArea)

	if buildingAge > maxBuildingAge {
		return ComplianceOutcome{
			Error:         FailureBuildingAgeExceeded,
			Excess:        excessArea,
			ExcessPercent: excessPercent,
		}
	}

	if buildingAge > maxNewBuildingAge && excessArea > 0 {
		return ComplianceOutcome{
			Error:         FailureAreaExceededOldBuilding,
			Excess:        excessArea,
			ExcessPercent: excessPercent,
		}
	}

	if excessPercent > maxExcessPercent {
		return ComplianceOutcome{
			Error:         FailureAreaExceeded,
			Excess:        excessArea,
			ExcessPercent: excessPercent,
		}
	}

	return ComplianceOutcome{
		Allowed:       true,
		Excess:        excessArea,
		ExcessPercent: excessPercent,
		Surcharge:     excessArea * pricePerSqM,
	}
}

// CheckPrice compares the actual price per m² against the limit price. An
// excess within the tolerated percent is payable as a surcharge costed over
// the full declared area.
func CheckPrice(actualPrice, limitPrice, area, maxExcessPercent float64) ComplianceOutcome {
	if actualPrice <= limitPrice {
		return ComplianceOutcome{Allowed: true}
	}

	excessPrice := actualPrice - limitPrice
	excessPercent := mathutil.CalculatePercentage(excessPrice, limitPrice)

	if excessPercent > maxExcessPercent {
		return ComplianceOutcome{
			Error:         FailurePriceExceeded,
			Excess:        excessPrice,
			ExcessPercent: excessPercent,
		}
	}

	return ComplianceOutcome{
		Allowed:       true,
		Excess:        excessPrice,
		ExcessPercent: excessPercent,
		Surcharge:     excessPrice * area,
	}
}
