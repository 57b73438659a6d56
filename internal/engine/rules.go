package engine

import (
	"github.com/eoselia/mortgage-engine/pkg/mathutil"
)

// Program norms for the maximum subsidized living area by property kind.
const (
	apartmentBaseArea = 52.5
	apartmentMaxArea  = 115.5
	houseBaseArea     = 62.5
	houseMaxArea      = 125.5

	// perMemberArea is added for each household member beyond the base
	// household of two.
	perMemberArea     = 21.0
	baseHouseholdSize = 2
)

// Limit-price coefficients by settlement classification.
const (
	majorSettlementCoefficient = 2.0
	otherSettlementCoefficient = 1.75
)

// NormativeArea returns the maximum living area, in m², eligible for
// subsidized treatment without surcharge for the given household size and
// property kind. Households of two or fewer get the base area; each further
// member adds a fixed increment up to the per-kind cap.
func NormativeArea(householdSize int, kind PropertyKind) float64 {
	baseArea := apartmentBaseArea
	maxArea := apartmentMaxArea
	if kind == PropertyHouse {
		baseArea = houseBaseArea
		maxArea = houseMaxArea
	}

	if householdSize <= baseHouseholdSize {
		return baseArea
	}

	area := baseArea + float64(householdSize-baseHouseholdSize)*perMemberArea
	if area > maxArea {
		return maxArea
	}
	return area
}

// LimitPrice returns the maximum price per m² eligible for subsidized
// treatment, derived from the regional base price and the settlement
// classification.
func LimitPrice(basePrice float64, settlement SettlementType) float64 {
	if settlement == SettlementOther {
		return basePrice * otherSettlementCoefficient
	}
	return basePrice * majorSettlementCoefficient
}

// youngApplicantAge is the exclusive upper bound for the reduced down-payment
// rate; an applicant aged exactly 26 pays the standard rate.
const youngApplicantAge = 26

// BaseDownPayment returns the percentage-derived down payment before any
// surcharges. Applicants younger than 26 qualify for the reduced percent.
func BaseDownPayment(totalPrice float64, age int, standardPercent, reducedPercent float64) float64 {
	percent := standardPercent
	if age < youngApplicantAge {
		percent = reducedPercent
	}
	return mathutil.ApplyPercentage(totalPrice, percent)
}
