package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/eoselia/mortgage-engine/internal/engine"
)

// LoadApplicant loads one applicant/property input record from a YAML file.
// Used by the CLI; the HTTP API receives the same record as JSON.
func LoadApplicant(path string) (engine.Input, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return engine.Input{}, fmt.Errorf("error reading applicant file, %s", err)
	}

	var input engine.Input
	if err := v.Unmarshal(&input); err != nil {
		return engine.Input{}, fmt.Errorf("unable to decode applicant file into struct, %s", err)
	}

	return input, nil
}
