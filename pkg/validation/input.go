// Package validation provides raw-input validation for calculation requests.
// Range checks live here at the boundary; the engine assumes numerically
// valid input and only applies program rules.
package validation

import (
	"fmt"

	"github.com/eoselia/mortgage-engine/internal/engine"
	"github.com/eoselia/mortgage-engine/pkg/constants"
)

// Accepted ranges for raw calculation input.
const (
	MinArea          = 10.0
	MinTotalPrice    = 100000.0
	MinTermYears     = 1
	MaxTermYears     = 20
	MinAge           = 18
	MaxAge           = 100
	MinHouseholdSize = 1
	MaxHouseholdSize = 20
)

// ValidateInput checks one calculation request against the accepted ranges
// and enum values. It returns the first violation found; a nil error means
// the input is safe to hand to the engine.
func ValidateInput(in engine.Input) error {
	if in.PropertyKind != engine.PropertyApartment && in.PropertyKind != engine.PropertyHouse {
		return fmt.Errorf("property kind must be %q or %q, got %q",
			engine.PropertyApartment, engine.PropertyHouse, in.PropertyKind)
	}
	if in.Settlement != engine.SettlementMajor && in.Settlement != engine.SettlementOther {
		return fmt.Errorf("settlement type must be %q or %q, got %q",
			engine.SettlementMajor, engine.SettlementOther, in.Settlement)
	}
	if in.Area < MinArea {
		return fmt.Errorf("area must be at least %.0f m², got %.1f", MinArea, in.Area)
	}
	if in.TotalPrice < MinTotalPrice {
		return fmt.Errorf("total price must be at least %.0f, got %.0f", MinTotalPrice, in.TotalPrice)
	}
	if in.BuildingAge < 0 {
		return fmt.Errorf("building age must not be negative, got %d", in.BuildingAge)
	}
	if in.TermYears < MinTermYears || in.TermYears > MaxTermYears {
		return fmt.Errorf("loan term must be between %d and %d years, got %d",
			MinTermYears, MaxTermYears, in.TermYears)
	}
	if in.Age < MinAge || in.Age > MaxAge {
		return fmt.Errorf("applicant age must be between %d and %d, got %d", MinAge, MaxAge, in.Age)
	}
	if in.HouseholdSize < MinHouseholdSize || in.HouseholdSize > MaxHouseholdSize {
		return fmt.Errorf("household size must be between %d and %d, got %d",
			MinHouseholdSize, MaxHouseholdSize, in.HouseholdSize)
	}
	return nil
}

// ValidateOutputFormat checks that the requested CLI output format is one of
// the supported values.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format %q; expected %q or %q",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}
