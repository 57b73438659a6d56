package engine

import (
	"math"
	"testing"
)

func TestNormativeArea(t *testing.T) {
	tests := []struct {
		name          string
		householdSize int
		kind          PropertyKind
		expected      float64
	}{
		{"Single applicant apartment", 1, PropertyApartment, 52.5},
		{"Couple apartment", 2, PropertyApartment, 52.5},
		{"Family of three apartment", 3, PropertyApartment, 73.5},
		{"Family of four apartment", 4, PropertyApartment, 94.5},
		{"Family of five apartment", 5, PropertyApartment, 115.5},
		{"Large family hits apartment cap", 6, PropertyApartment, 115.5},
		{"Very large family stays at apartment cap", 12, PropertyApartment, 115.5},
		{"Single applicant house", 1, PropertyHouse, 62.5},
		{"Couple house", 2, PropertyHouse, 62.5},
		{"Family of three house", 3, PropertyHouse, 83.5},
		{"Family of five house", 5, PropertyHouse, 125.5},
		{"Large family hits house cap", 6, PropertyHouse, 125.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormativeArea(tt.householdSize, tt.kind)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("NormativeArea(%d, %s) = %v, expected %v",
					tt.householdSize, tt.kind, result, tt.expected)
			}
		})
	}
}

func TestNormativeAreaGrowsLinearlyThenPlateaus(t *testing.T) {
	previous := NormativeArea(2, PropertyApartment)
	for size := 3; size <= 10; size++ {
		current := NormativeArea(size, PropertyApartment)
		if current < previous {
			t.Fatalf("normative area decreased from %v to %v at household size %d", previous, current, size)
		}
		step := current - previous
		if step != 0 && math.Abs(step-21.0) > 0.001 {
			t.Errorf("normative area step at household size %d = %v, expected 21 or 0", size, step)
		}
		previous = current
	}
	if previous != 115.5 {
		t.Errorf("normative area plateau = %v, expected 115.5", previous)
	}
}

func TestLimitPrice(t *testing.T) {
	tests := []struct {
		name       string
		basePrice  float64
		settlement SettlementType
		expected   float64
	}{
		{"Major settlement doubles base", 25000, SettlementMajor, 50000},
		{"Other settlement uses 1.75", 25000, SettlementOther, 43750},
		{"Major settlement large base", 29665, SettlementMajor, 59330},
		{"Other settlement small base", 10000, SettlementOther, 17500},
		{"Zero base yields zero", 0, SettlementMajor, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := LimitPrice(tt.basePrice, tt.settlement)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("LimitPrice(%v, %s) = %v, expected %v",
					tt.basePrice, tt.settlement, result, tt.expected)
			}
		})
	}
}

func TestBaseDownPayment(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		expected float64
	}{
		{"Young applicant gets reduced rate", 22, 200000},
		{"Age 25 still reduced", 25, 200000},
		{"Age 26 uses standard rate", 26, 400000},
		{"Older applicant uses standard rate", 45, 400000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BaseDownPayment(2000000, tt.age, 20, 10)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("BaseDownPayment(2000000, %d, 20, 10) = %v, expected %v",
					tt.age, result, tt.expected)
			}
		})
	}
}
