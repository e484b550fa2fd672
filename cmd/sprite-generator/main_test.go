package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svg-sprite-generator/internal/config"
)

const library = `
icons:
  - prefix: fas
    name: dice-one
    width: 448
    height: 512
    path: dice one
  - prefix: far
    name: bookmark
    width: 384
    height: 512
    path: regular bookmark
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Config{
		Manifest: writeFile(t, dir, "icons.yaml", `
options:
  xml_declaration: false
icons:
  dice: fas/dice-one
  bookmark:
    prefix: far
    name: bookmark
    params: {title: Bookmark}
`),
		Libraries:  []string{writeFile(t, dir, "fa.yaml", library)},
		Output:     filepath.Join(dir, "dist", "sprite.svg"),
		Attributes: filepath.Join(dir, "dist", "sprite.json"),
		Debug:      filepath.Join(dir, "dist", "sprite.dump"),
		NoLicense:  true,
	}

	var logs bytes.Buffer
	require.NoError(t, run(cfg, log.New(&logs, "", 0)))

	svg, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg">`+
		`<symbol id="dice" viewBox="0 0 448 512"><path fill="currentColor" d="dice one"></path></symbol>`+
		`<symbol id="bookmark" viewBox="0 0 384 512" aria-labelledby="svg-inline--fa-title-bookmark">`+
		`<title id="svg-inline--fa-title-bookmark">Bookmark</title><path fill="currentColor" d="regular bookmark"></path></symbol>`+
		`</svg>`, string(svg))

	attrs, err := os.ReadFile(cfg.Attributes)
	require.NoError(t, err)
	assert.Contains(t, string(attrs), `"title": "Bookmark"`)

	_, err = os.Stat(cfg.Debug)
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "loaded 2 icons from 1 libraries")
	assert.Contains(t, logs.String(), "wrote 2 symbols to")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	lib := writeFile(t, dir, "fa.yaml", library)

	tests := []struct {
		name     string
		manifest string
		msg      string
	}{
		{name: "invalid manifest", manifest: "icons: [dice-one]", msg: "invalid manifest"},
		{name: "unknown icon", manifest: "icons: [fas/smile]", msg: "Failed to generate symbol for fas/smile"},
		{name: "duplicate id", manifest: "icons: [far/bookmark, far/bookmark]", msg: "Duplicate symbol id 'far-fa-bookmark'"},
		{
			name:     "not a symbol",
			manifest: "icons: [{abstract: [{tag: svg, children: [{tag: path}]}]}]",
			msg:      "Did you set {symbol: true}?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Config{
				Manifest:  writeFile(t, t.TempDir(), "icons.yaml", tt.manifest),
				Libraries: []string{lib},
				Output:    filepath.Join(t.TempDir(), "sprite.svg"),
			}

			err := run(cfg, log.New(io.Discard, "", 0))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)

			_, statErr := os.Stat(cfg.Output)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestRunDebugDumpError(t *testing.T) {
	dir := t.TempDir()
	blocker := writeFile(t, dir, "file", "")

	cfg := config.Config{
		Manifest:  writeFile(t, dir, "icons.yaml", "icons: [fas/dice-one]"),
		Libraries: []string{writeFile(t, dir, "fa.yaml", library)},
		Output:    filepath.Join(dir, "sprite.svg"),
		Debug:     filepath.Join(blocker, "sprite.dump"),
	}

	var logs bytes.Buffer
	err := run(cfg, log.New(&logs, "", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output directory")
	assert.NotContains(t, logs.String(), "wrote sprite dump")
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{name: "valid", args: []string{"-manifest", "icons.yaml", "-library", "fa.yaml"}, code: 0},
		{name: "help", args: []string{"-h"}, code: 2, stderr: "Usage of sprite-generator"},
		{name: "unknown flag", args: []string{"-bogus"}, code: 2, stderr: "flag provided but not defined: -bogus"},
		{name: "missing manifest", args: []string{"-library", "fa.yaml"}, code: 2, stderr: "Error: manifest is required"},
		{name: "missing library", args: []string{"-manifest", "icons.yaml"}, code: 2, stderr: "Error: at least one library is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			cfg, code := parseArgs(tt.args, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.stderr)

			if tt.code == 0 {
				assert.Equal(t, "icons.yaml", cfg.Manifest)
				assert.Equal(t, []string{"fa.yaml"}, cfg.Libraries)
			}
		})
	}
}

func TestRunMissingLibrary(t *testing.T) {
	cfg := config.Config{
		Manifest:  "icons.yaml",
		Libraries: []string{filepath.Join(t.TempDir(), "missing.yaml")},
		Output:    "sprite.svg",
	}

	err := run(cfg, log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read icon library")
}
