package engine

import (
	"math"
	"testing"
)

func TestCheckArea(t *testing.T) {
	tests := []struct {
		name             string
		actualArea       float64
		normativeArea    float64
		buildingAge      int
		maxBuildingAge   int
		maxExcessPercent float64
		pricePerSqM      float64
		wantAllowed      bool
		wantError        FailureCode
		wantExcess       float64
		wantSurcharge    float64
	}{
		{
			name:       "Within norm passes with zero excess",
			actualArea: 65, normativeArea: 73.5,
			buildingAge: 2, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: true,
		},
		{
			name:       "Exactly at norm passes even when building too old",
			actualArea: 73.5, normativeArea: 73.5,
			buildingAge: 25, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: true,
		},
		{
			name:       "Building age violation reported ahead of excess classification",
			actualArea: 80, normativeArea: 73.5,
			buildingAge: 25, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: false, wantError: FailureBuildingAgeExceeded, wantExcess: 6.5,
		},
		{
			name:       "Building age violation fires even when excess within tolerance",
			actualArea: 75, normativeArea: 73.5,
			buildingAge: 4, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: false, wantError: FailureBuildingAgeExceeded, wantExcess: 1.5,
		},
		{
			name:       "Old building may not buy excess area despite high category ceiling",
			actualArea: 75, normativeArea: 73.5,
			buildingAge: 4, maxBuildingAge: 20, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: false, wantError: FailureAreaExceededOldBuilding, wantExcess: 1.5,
		},
		{
			name:       "New building excess above percent ceiling fails",
			actualArea: 90, normativeArea: 73.5,
			buildingAge: 2, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: false, wantError: FailureAreaExceeded, wantExcess: 16.5,
		},
		{
			name:       "New building excess within tolerance is payable",
			actualArea: 77, normativeArea: 73.5,
			buildingAge: 2, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: true, wantExcess: 3.5, wantSurcharge: 105000,
		},
		{
			name:       "Building exactly at new-building threshold may buy excess",
			actualArea: 77, normativeArea: 73.5,
			buildingAge: 3, maxBuildingAge: 3, maxExcessPercent: 10, pricePerSqM: 30000,
			wantAllowed: true, wantExcess: 3.5, wantSurcharge: 105000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := CheckArea(tt.actualArea, tt.normativeArea, tt.buildingAge,
				tt.maxBuildingAge, tt.maxExcessPercent, tt.pricePerSqM)

			if outcome.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, expected %v", outcome.Allowed, tt.wantAllowed)
			}
			if outcome.Error != tt.wantError {
				t.Errorf("Error = %q, expected %q", outcome.Error, tt.wantError)
			}
			if math.Abs(outcome.Excess-tt.wantExcess) > 0.001 {
				t.Errorf("Excess = %v, expected %v", outcome.Excess, tt.wantExcess)
			}
			if math.Abs(outcome.Surcharge-tt.wantSurcharge) > 0.001 {
				t.Errorf("Surcharge = %v, expected %v", outcome.Surcharge, tt.wantSurcharge)
			}
		})
	}
}

func TestCheckAreaExcessPercent(t *testing.T) {
	outcome := CheckArea(80, 73.5, 2, 3, 10, 30000)
	expectedPercent := (80.0 - 73.5) / 73.5 * 100
	if math.Abs(outcome.ExcessPercent-expectedPercent) > 0.001 {
		t.Errorf("ExcessPercent = %v, expected %v", outcome.ExcessPercent, expectedPercent)
	}
	if outcome.Allowed {
		t.Errorf("excess of %.2f%% should exceed the 10%% ceiling", expectedPercent)
	}
}

func TestCheckPrice(t *testing.T) {
	tests := []struct {
		name             string
		actualPrice      float64
		limitPrice       float64
		area             float64
		maxExcessPercent float64
		wantAllowed      bool
		wantError        FailureCode
		wantExcess       float64
		wantSurcharge    float64
	}{
		{
			name:        "Below limit passes with zero excess",
			actualPrice: 30769, limitPrice: 50000, area: 65, maxExcessPercent: 10,
			wantAllowed: true,
		},
		{
			name:        "Exactly at limit passes",
			actualPrice: 50000, limitPrice: 50000, area: 65, maxExcessPercent: 10,
			wantAllowed: true,
		},
		{
			name:        "Excess within tolerance is payable over full area",
			actualPrice: 52000, limitPrice: 50000, area: 65, maxExcessPercent: 10,
			wantAllowed: true, wantExcess: 2000, wantSurcharge: 130000,
		},
		{
			name:        "Excess above tolerance fails",
			actualPrice: 60000, limitPrice: 50000, area: 65, maxExcessPercent: 10,
			wantAllowed: false, wantError: FailurePriceExceeded, wantExcess: 10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := CheckPrice(tt.actualPrice, tt.limitPrice, tt.area, tt.maxExcessPercent)

			if outcome.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, expected %v", outcome.Allowed, tt.wantAllowed)
			}
			if outcome.Error != tt.wantError {
				t.Errorf("Error = %q, expected %q", outcome.Error, tt.wantError)
			}
			if math.Abs(outcome.Excess-tt.wantExcess) > 0.001 {
				t.Errorf("Excess = %v, expected %v", outcome.Excess, tt.wantExcess)
			}
			if math.Abs(outcome.Surcharge-tt.wantSurcharge) > 0.001 {
				t.Errorf("Surcharge = %v, expected %v", outcome.Surcharge, tt.wantSurcharge)
			}
		})
	}
}
