// Package config defines the data structures related to program configuration
// and includes functions for loading, validating, and resolving the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgage-engine.
type Configuration struct {
	Program ProgramSettings
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// ProgramSettings holds the subsidized-loan program rules: loan bounds and
// percentages, the regional price list, the applicant categories, and the
// frontline-region set.
type ProgramSettings struct {
	Loan             LoanSettings
	FrontlineRegions []string
	Regions          []Region
	Categories       []Category
}

// LoanSettings holds the program-wide loan parameters.
type LoanSettings struct {
	MinLoanAmount             float64
	MaxLoanAmount             float64
	MinTermYears              int
	MaxTermYears              int
	DownPaymentPercent        float64
	DownPaymentPercentUnder26 float64
	MaxAreaExcessPercent      float64
	MaxPriceExcessPercent     float64
}

// Region holds the officially published price per m² for one region.
type Region struct {
	Code        string
	Name        string
	PricePerSqM float64
}

// Category holds the program terms for one applicant eligibility class.
// Rates are annual fractions (0.03 means 3%). FrontlineMaxBuildingAge
// replaces MaxBuildingAge when the property is in a frontline region.
type Category struct {
	Code                    string
	Name                    string
	RatePeriod1             float64
	RatePeriod2             float64
	MaxBuildingAge          int
	FrontlineMaxBuildingAge int
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Region looks up a region by code.
func (conf *Configuration) Region(code string) (Region, bool) {
	for _, region := range conf.Program.Regions {
		if region.Code == code {
			return region, true
		}
	}
	return Region{}, false
}

// Category looks up an applicant category by code.
func (conf *Configuration) Category(code string) (Category, bool) {
	for _, category := range conf.Program.Categories {
		if category.Code == code {
			return category, true
		}
	}
	return Category{}, false
}

// IsFrontlineRegion reports whether the region code is in the frontline set
// that grants the relaxed building-age ceiling.
func (conf *Configuration) IsFrontlineRegion(code string) bool {
	for _, region := range conf.Program.FrontlineRegions {
		if region == code {
			return true
		}
	}
	return false
}

// ValidateConfiguration checks the loaded program data for problems that do
// not prevent startup and returns them as warning strings.
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(conf.Program.Regions) == 0 {
		warnings = append(warnings, "no regions configured; every calculation will fail resolution")
	}
	if len(conf.Program.Categories) == 0 {
		warnings = append(warnings, "no applicant categories configured; every calculation will fail resolution")
	}

	loan := conf.Program.Loan
	if loan.MinLoanAmount >= loan.MaxLoanAmount {
		warnings = append(warnings, fmt.Sprintf("minLoanAmount %.0f is not below maxLoanAmount %.0f",
			loan.MinLoanAmount, loan.MaxLoanAmount))
	}
	if loan.DownPaymentPercentUnder26 > loan.DownPaymentPercent {
		warnings = append(warnings, fmt.Sprintf("reduced down-payment percent %.0f exceeds the standard percent %.0f",
			loan.DownPaymentPercentUnder26, loan.DownPaymentPercent))
	}

	for _, region := range conf.Program.Regions {
		if region.PricePerSqM <= 0 {
			warnings = append(warnings, fmt.Sprintf("region '%s' has non-positive price per m²", region.Code))
		}
	}
	for _, category := range conf.Program.Categories {
		if category.RatePeriod1 <= 0 || category.RatePeriod2 <= 0 {
			warnings = append(warnings, fmt.Sprintf("category '%s' has a non-positive interest rate", category.Code))
		}
		if category.RatePeriod1 > 1 || category.RatePeriod2 > 1 {
			warnings = append(warnings, fmt.Sprintf("category '%s' rates look like percents; expected fractions (0.03 = 3%%)", category.Code))
		}
	}
	for _, code := range conf.Program.FrontlineRegions {
		if _, ok := conf.Region(code); !ok {
			warnings = append(warnings, fmt.Sprintf("frontline region '%s' is not in the region list", code))
		}
	}

	return warnings
}
