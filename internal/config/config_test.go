package config

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svg-sprite-generator/sprite"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("sprite-generator", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), []string{
		"-manifest", "icons.yaml",
		"-library", "solid.yaml",
		"-library", "regular.yaml",
		"-attributes", "sprite.json",
		"-no-xml-declaration",
		"-v",
	})
	require.NoError(t, err)

	assert.Equal(t, "icons.yaml", cfg.Manifest)
	assert.Equal(t, []string{"solid.yaml", "regular.yaml"}, cfg.Libraries)
	assert.Equal(t, "sprite.svg", cfg.Output) // envDefault
	assert.Equal(t, "sprite.json", cfg.Attributes)
	assert.True(t, cfg.NoXMLDeclaration)
	assert.True(t, cfg.Verbose)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("SPRITE_MANIFEST", "env.yaml")
	t.Setenv("SPRITE_LIBRARY", "a.yaml,b.yaml")
	t.Setenv("SPRITE_OUTPUT", "out/icons.svg")
	t.Setenv("SPRITE_LICENSE", "MIT")

	cfg, err := ParseConfig(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "env.yaml", cfg.Manifest)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, cfg.Libraries)
	assert.Equal(t, "out/icons.svg", cfg.Output)
	assert.Equal(t, "MIT", cfg.License)

	// Flags take precedence over the environment.
	cfg, err = ParseConfig(newFlagSet(), []string{"-manifest", "flag.yaml", "-library", "c.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "flag.yaml", cfg.Manifest)
	assert.Equal(t, []string{"c.yaml"}, cfg.Libraries)
}

func TestParseConfigEnvError(t *testing.T) {
	t.Setenv("SPRITE_VERBOSE", "not-a-bool")

	_, err := ParseConfig(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{name: "missing manifest", args: []string{"-library", "a.yaml"}, msg: "manifest is required"},
		{name: "missing library", args: []string{"-manifest", "m.yaml"}, msg: "at least one library is required"},
		{name: "empty output", args: []string{"-manifest", "m.yaml", "-library", "a.yaml", "-output", " "}, msg: "output is required"},
		{
			name: "conflicting license flags",
			args: []string{"-manifest", "m.yaml", "-library", "a.yaml", "-license", "x", "-no-license"},
			msg:  "mutually exclusive",
		},
		{name: "unknown flag", args: []string{"-nope"}, msg: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig(newFlagSet(), tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, sprite.DefaultOptions(), Config{}.ApplyOptions(sprite.DefaultOptions()))
	assert.Equal(t, sprite.Options{XMLDeclaration: false, License: "MIT"},
		Config{NoXMLDeclaration: true, License: "MIT"}.ApplyOptions(sprite.DefaultOptions()))
	assert.Equal(t, sprite.Options{XMLDeclaration: true},
		Config{NoLicense: true}.ApplyOptions(sprite.DefaultOptions()))
}
