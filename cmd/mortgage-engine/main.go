package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/eoselia/mortgage-engine/internal/config"
	"github.com/eoselia/mortgage-engine/internal/engine"
	"github.com/eoselia/mortgage-engine/internal/logging"
	"github.com/eoselia/mortgage-engine/pkg/constants"
	"github.com/eoselia/mortgage-engine/pkg/output"
	"github.com/eoselia/mortgage-engine/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to program configuration file")
	applicantLocation := flag.String("applicant", constants.DefaultApplicantFile, "path to applicant input file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	input, err := config.LoadApplicant(*applicantLocation)
	if err != nil {
		logger.Fatal("failed to load applicant input",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := validation.ValidateInput(input); err != nil {
		logger.Fatal("invalid applicant input",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	programConfig, err := conf.Resolve(input.Category, input.Region)
	if err != nil {
		logger.Fatal("failed to resolve program configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	result := engine.NewEvaluator(logger).Evaluate(input, programConfig)

	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(os.Stdout, result)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, result)
	}
}
