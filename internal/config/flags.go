package config

import (
	"flag"
)

// ParseFlags parses all runtime-settings flags.
//
// Flags:
//
//	-c/-config json config file to deserialize
//	-o/-output-dir directory the serialized config is written into
//	-output-file filename of the serialized config
//	-debug enable debug-level console logging
func ParseFlags() *Settings {
	var inputPath string
	var outputDir string
	var outputFile string
	var debug bool

	flag.StringVar(&inputPath, "c", "", "JSON config file path")
	flag.StringVar(&inputPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&outputDir, "o", "", "Output directory")
	flag.StringVar(&outputDir, "output-dir", "", "Output directory (alias)")
	flag.StringVar(&outputFile, "output-file", "", "Output filename")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")

	flag.Parse()

	return &Settings{
		InputPath:  inputPath,
		OutputDir:  outputDir,
		OutputFile: outputFile,
		Debug:      debug,
	}
}
