package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-config-parser/internal/config"
	"github.com/MKhiriev/go-config-parser/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// main is the only place the process terminates on failure: the config core
// propagates typed errors and the decision to exit is made here.
func main() {
	printBuildInfo()

	log := logger.NewLogger("confparse")

	settings, err := config.GetSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting settings")
	}

	if !settings.Debug {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Debug().Any("settings", settings).Msg("received settings")

	parser := config.NewParser(log)

	cfg, err := parser.Deserialize(settings.InputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error deserializing config")
	}

	if err := parser.Serialize(cfg, settings.OutputDir, settings.OutputFile); err != nil {
		log.Fatal().Err(err).Msg("error serializing config")
	}

	log.Debug().Msg("program terminated")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
