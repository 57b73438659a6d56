package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/eoselia/mortgage-engine/internal/engine"
)

// Key derives the cache key for one evaluation from the canonical JSON
// encoding of the input and the resolved configuration snapshot. Two
// requests share a key only when both the input and the program rules in
// effect are identical.
func Key(in engine.Input, cfg engine.ProgramConfig) (string, error) {
	encoded, err := json.Marshal(struct {
		Input  engine.Input         `json:"input"`
		Config engine.ProgramConfig `json:"config"`
	}{Input: in, Config: cfg})
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key material: %w", err)
	}

	sum := sha256.Sum256(encoded)
	return "calc:" + hex.EncodeToString(sum[:]), nil
}
