// Package main provides the CLI entrypoint for sprite-generator.
//
// sprite-generator builds a single SVG sprite from a YAML manifest:
//   - Loads icon definitions from one or more YAML icon libraries
//   - Parses and validates the manifest
//   - Renders every icon as a <symbol> and assembles the sprite
//   - Writes the sprite and, optionally, the symbol attributes as JSON
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"svg-sprite-generator/icon"
	"svg-sprite-generator/internal/config"
	"svg-sprite-generator/internal/manifest"
	"svg-sprite-generator/internal/output"
	"svg-sprite-generator/sprite"
)

func main() {
	cfg, code := parseArgs(os.Args[1:], os.Stderr)
	if code != 0 {
		os.Exit(code)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if !cfg.Verbose {
		logger.SetOutput(io.Discard)
	}

	if err := run(cfg, logger); err != nil {
		config.Exitf("Error: %v", err)
	}
}

// parseArgs reads the configuration from the environment and args.
// A non-zero code is the exit status for a usage error.
func parseArgs(args []string, stderr io.Writer) (config.Config, int) {
	fs := flag.NewFlagSet("sprite-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg, err := config.ParseConfig(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return config.Config{}, 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return config.Config{}, 2
	}

	return cfg, 0
}

func run(cfg config.Config, logger *log.Logger) error {
	lib := icon.NewLibrary()
	for _, path := range cfg.Libraries {
		if err := lib.LoadFile(path); err != nil {
			return err
		}
	}

	logger.Printf("loaded %d icons from %d libraries", lib.Len(), len(cfg.Libraries))

	mf, err := manifest.LoadFile(cfg.Manifest)
	if err != nil {
		return err
	}

	diags := manifest.Validate(mf)
	for _, w := range diags.Warnings {
		logger.Printf("warning: %s", w)
	}

	if err := diags.Err(); err != nil {
		return fmt.Errorf("invalid manifest %s:\n%w", cfg.Manifest, err)
	}

	icons, err := mf.SpriteIcons()
	if err != nil {
		return err
	}

	opts := cfg.ApplyOptions(mf.SpriteOptions(sprite.DefaultOptions()))

	s, err := sprite.New(lib).Generate(icons, opts)
	if err != nil {
		return err
	}

	if err := output.WriteSprite(s, cfg.Output, cfg.Attributes); err != nil {
		return err
	}

	logger.Printf("wrote %d symbols to %s", len(s.Symbols), cfg.Output)

	if cfg.Debug != "" {
		if err := output.WriteDump(s, cfg.Debug); err != nil {
			return err
		}

		logger.Printf("wrote sprite dump to %s", cfg.Debug)
	}

	return nil
}
