// Package config holds the sprite-generator command configuration.
//
// Values are read from the environment first and can be overridden by
// command-line flags. Sprite options are layered: defaults, then the
// manifest options, then the environment and flags.
package config

import (
	"errors"
	"flag"
	"strings"

	"svg-sprite-generator/sprite"
)

// Config is the sprite-generator configuration.
type Config struct {
	// Manifest is the path of the YAML sprite manifest.
	Manifest string `env:"SPRITE_MANIFEST"`
	// Libraries are the paths of the YAML icon libraries.
	Libraries []string `env:"SPRITE_LIBRARY" envSeparator:","`
	// Output is the path of the generated SVG sprite.
	Output string `env:"SPRITE_OUTPUT" envDefault:"sprite.svg"`
	// Attributes is the path of the symbol attributes JSON file; empty skips it.
	Attributes string `env:"SPRITE_ATTRIBUTES"`
	// Debug is the path of a dump of the sprite tree; empty skips it.
	Debug string `env:"SPRITE_DEBUG"`

	// NoXMLDeclaration omits the XML declaration.
	NoXMLDeclaration bool `env:"SPRITE_NO_XML_DECLARATION"`
	// License replaces the license notice when set.
	License string `env:"SPRITE_LICENSE"`
	// NoLicense omits the license comment.
	NoLicense bool `env:"SPRITE_NO_LICENSE"`

	// Verbose enables progress logging.
	Verbose bool `env:"SPRITE_VERBOSE"`
}

// ParseConfig parses environment variables and then flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	libraries := stringList{values: cfg.Libraries}

	fs.StringVar(&cfg.Manifest, "manifest", cfg.Manifest, "sprite manifest (YAML)")
	fs.Var(&libraries, "library", "icon library (YAML); may be repeated")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output SVG sprite path")
	fs.StringVar(&cfg.Attributes, "attributes", cfg.Attributes, "output path of the symbol attributes JSON")
	fs.StringVar(&cfg.Debug, "debug", cfg.Debug, "output path of a dump of the sprite tree")
	fs.BoolVar(&cfg.NoXMLDeclaration, "no-xml-declaration", cfg.NoXMLDeclaration, "omit the XML declaration")
	fs.StringVar(&cfg.License, "license", cfg.License, "license notice to include instead of the default")
	fs.BoolVar(&cfg.NoLicense, "no-license", cfg.NoLicense, "omit the license comment")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Libraries = libraries.values

	if strings.TrimSpace(cfg.Manifest) == "" {
		return Config{}, errors.New("manifest is required")
	}

	if len(cfg.Libraries) == 0 {
		return Config{}, errors.New("at least one library is required")
	}

	if strings.TrimSpace(cfg.Output) == "" {
		return Config{}, errors.New("output is required")
	}

	if cfg.NoLicense && cfg.License != "" {
		return Config{}, errors.New("license and no-license are mutually exclusive")
	}

	return cfg, nil
}

// ApplyOptions overrides sprite options with the configured values.
func (c Config) ApplyOptions(opts sprite.Options) sprite.Options {
	if c.NoXMLDeclaration {
		opts.XMLDeclaration = false
	}

	if c.License != "" {
		opts.License = c.License
	}

	if c.NoLicense {
		opts.License = ""
	}

	return opts
}

// stringList is a repeatable string flag. Values taken from the environment
// are replaced by the first flag occurrence.
type stringList struct {
	values []string
	set    bool
}

func (s *stringList) String() string {
	if s == nil {
		return ""
	}

	return strings.Join(s.values, ",")
}

func (s *stringList) Set(v string) error {
	if v == "" {
		return errors.New("empty value")
	}

	if !s.set {
		s.values = nil
		s.set = true
	}

	s.values = append(s.values, v)

	return nil
}
