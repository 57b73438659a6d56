// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/eoselia/mortgage-engine/internal/engine"
)

// FindScenario finds a comparison scenario by label in the results slice.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(scenarios []engine.Scenario, label string) *engine.Scenario {
	for i := range scenarios {
		if scenarios[i].Label == label {
			return &scenarios[i]
		}
	}
	return nil
}
