// Package engine implements the eligibility and repayment calculation core of
// the subsidized home-loan program: compliance checks against program norms,
// down-payment and surcharge arithmetic, and two-period loan amortization.
//
// The engine is a pure function of its inputs and a resolved configuration
// snapshot; it performs no I/O and holds no state between invocations.
package engine

// PropertyKind identifies the kind of property being purchased.
type PropertyKind string

const (
	PropertyApartment PropertyKind = "apartment"
	PropertyHouse     PropertyKind = "house"
)

// SettlementType classifies the settlement where the property is located.
type SettlementType string

const (
	SettlementMajor SettlementType = "major"
	SettlementOther SettlementType = "other"
)

// FailureCode classifies why an evaluation was rejected. Codes are values
// surfaced verbatim to the caller for translation; they are never raised as
// Go errors.
type FailureCode string

const (
	FailureBuildingAgeExceeded     FailureCode = "buildingAgeExceeded"
	FailureAreaExceededOldBuilding FailureCode = "areaExceededOldBuilding"
	FailureAreaExceeded            FailureCode = "areaExceeded"
	FailurePriceExceeded           FailureCode = "priceExceeded"
	FailureLoanTooSmall            FailureCode = "loanTooSmall"
	FailureLoanTooLarge            FailureCode = "loanTooLarge"
)

// Input is the flattened applicant, property, and loan-terms record for one
// evaluation. The caller is responsible for range validation of the raw
// values (see pkg/validation); the engine only applies program rules.
type Input struct {
	Category      string         `json:"category"`
	Age           int            `json:"age"`
	HouseholdSize int            `json:"householdSize"`
	PropertyKind  PropertyKind   `json:"propertyKind"`
	Region        string         `json:"region"`
	Settlement    SettlementType `json:"settlement"`
	Area          float64        `json:"area"`
	TotalPrice    float64        `json:"totalPrice"`
	BuildingAge   int            `json:"buildingAge"`
	TermYears     int            `json:"termYears"`
}

// TermMonths returns the requested term expressed in months.
func (in Input) TermMonths() int {
	return in.TermYears * 12
}

// ProgramConfig is the resolved program-rule snapshot for one evaluation.
// The caller resolves the regional price, the category rate pair, and the
// effective max building age (frontline override applied) before invoking
// the engine; the engine treats the snapshot as immutable.
type ProgramConfig struct {
	PricePerSqM               float64 `json:"pricePerSqM"`
	DownPaymentPercent        float64 `json:"downPaymentPercent"`
	DownPaymentPercentUnder26 float64 `json:"downPaymentPercentUnder26"`
	MinLoanAmount             float64 `json:"minLoanAmount"`
	MaxLoanAmount             float64 `json:"maxLoanAmount"`
	MaxAreaExcessPercent      float64 `json:"maxAreaExcessPercent"`
	MaxPriceExcessPercent     float64 `json:"maxPriceExcessPercent"`
	MaxBuildingAge            int     `json:"maxBuildingAge"`
	// RatePeriod1 and RatePeriod2 are annual rates expressed as fractions
	// (0.03 means 3%).
	RatePeriod1 float64 `json:"ratePeriod1"`
	RatePeriod2 float64 `json:"ratePeriod2"`
}

// SurchargeType names a down-payment surcharge line item.
type SurchargeType string

const (
	SurchargeAreaExcess  SurchargeType = "areaExcessPayment"
	SurchargePriceExcess SurchargeType = "priceExcessPayment"
)

// Surcharge is one named add-on to the base down payment. Details is a
// display-only breakdown of how the amount was derived.
type Surcharge struct {
	Type    SurchargeType `json:"type"`
	Amount  float64       `json:"amount"`
	Details string        `json:"details"`
}

// Diagnostics carries the figures computed up to the point an evaluation
// stopped. It is fully populated on success and partially populated on
// failure, so callers can render a specific explanation either way.
type Diagnostics struct {
	NormativeArea        float64 `json:"normativeArea"`
	ActualArea           float64 `json:"actualArea"`
	LimitPrice           float64 `json:"limitPrice"`
	ActualPricePerSqM    float64 `json:"actualPricePerSqM"`
	ExcessArea           float64 `json:"excessArea"`
	ExcessAreaPercent    float64 `json:"excessAreaPercent"`
	ExcessPrice          float64 `json:"excessPrice"`
	ExcessPricePercent   float64 `json:"excessPricePercent"`
	BuildingAge          int     `json:"buildingAge"`
	MaxBuildingAge       int     `json:"maxBuildingAge"`
	MaxAreaExcessPercent float64 `json:"maxAreaExcessPercent"`
	DownPayment          float64 `json:"downPayment"`
	LoanAmount           float64 `json:"loanAmount"`
}

// Financials is the payload of a successful evaluation.
type Financials struct {
	DownPayment     float64     `json:"downPayment"`
	LoanAmount      float64     `json:"loanAmount"`
	RatePeriod1     float64     `json:"ratePeriod1"`
	RatePeriod2     float64     `json:"ratePeriod2"`
	MonthlyPayment1 float64     `json:"monthlyPayment1"`
	MonthlyPayment2 float64     `json:"monthlyPayment2"`
	TotalInterest   float64     `json:"totalInterest"`
	TotalPayment    float64     `json:"totalPayment"`
	Surcharges      []Surcharge `json:"surcharges"`
	Scenarios       []Scenario  `json:"scenarios"`
}

// Scenario is one what-if combination of down-payment percent and rate pair
// computed for the same property.
type Scenario struct {
	Label              string  `json:"label"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	RatePeriod1        float64 `json:"ratePeriod1"`
	RatePeriod2        float64 `json:"ratePeriod2"`
	DownPayment        float64 `json:"downPayment"`
	LoanAmount         float64 `json:"loanAmount"`
	MonthlyPayment1    float64 `json:"monthlyPayment1"`
	MonthlyPayment2    float64 `json:"monthlyPayment2"`
	TotalInterest      float64 `json:"totalInterest"`
	TotalPayment       float64 `json:"totalPayment"`
}

// Result is the sole output of an evaluation. Exactly one of the two shapes
// holds: Success is true and Financials is non-nil, or Success is false and
// Error carries the failure classification. Diagnostics is populated up to
// the point the evaluation stopped in both shapes.
type Result struct {
	Success     bool        `json:"success"`
	Error       FailureCode `json:"error,omitempty"`
	Diagnostics Diagnostics `json:"diagnostics"`
	Financials  *Financials `json:"financials,omitempty"`
}
