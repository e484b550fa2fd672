package icon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLibraryParse(t *testing.T) {
	t.Parallel()

	data := `
icons:
  - prefix: fas
    name: dice-one
    width: 448
    height: 512
    unicode: f525
    path: dice one
  - prefix: far
    name: bookmark
    width: 384
    height: 512
    ligatures: [bm]
    path: regular bookmark
`

	lib := NewLibrary()
	require.NoError(t, lib.Parse([]byte(data)))
	assert.Equal(t, 2, lib.Len())

	def, ok := lib.Find(Lookup{Prefix: "far", IconName: "bookmark"})
	require.True(t, ok)
	assert.Equal(t, 384, def.Width)
	assert.Equal(t, []string{"bm"}, def.Ligatures)

	_, ok = lib.Find(Lookup{Prefix: "fas", IconName: "bookmark"})
	assert.False(t, ok)
}

func TestLibraryParseInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		msg  string
	}{
		{name: "syntax", data: "icons: [", msg: "failed to parse icon library YAML"},
		{name: "missing name", data: "icons: [{prefix: fas, width: 1, height: 1}]", msg: "empty prefix or name"},
		{name: "bad size", data: "icons: [{prefix: fas, name: x, width: 0, height: 1}]", msg: "invalid size 0x1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := NewLibrary().Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLibraryLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "icons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("icons: [{prefix: fas, name: x, width: 16, height: 16, path: M0}]"), 0o644))

	lib := NewLibrary()
	require.NoError(t, lib.LoadFile(path))
	assert.Equal(t, 1, lib.Len())

	err := lib.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read icon library")
}

func TestLibraryAddReplaces(t *testing.T) {
	t.Parallel()

	var lib Library
	lib.Add(fasDiceOne)
	lib.Add(Definition{Lookup: fasDiceOne.Lookup, Width: 1, Height: 1})

	def, ok := lib.Find(fasDiceOne.Lookup)
	require.True(t, ok)
	assert.Equal(t, 1, def.Width)
}

func TestParseLookup(t *testing.T) {
	t.Parallel()

	l, err := ParseLookup("fas/dice-one")
	require.NoError(t, err)
	assert.Equal(t, Lookup{Prefix: "fas", IconName: "dice-one"}, l)
	assert.Equal(t, "fas/dice-one", l.String())

	for _, s := range []string{"", "fas", "/x", "fas/", "a/b/c"} {
		_, err := ParseLookup(s)
		assert.Error(t, err, s)
	}
}

func TestParamsYAML(t *testing.T) {
	t.Parallel()

	data := `
symbol: dice
title: Dice
classes: [fa-fw]
transform: {rotate: 90, flip_x: true}
`

	var p Params
	require.NoError(t, yaml.Unmarshal([]byte(data), &p))
	assert.Equal(t, SymbolID("dice"), p.Symbol)
	assert.Equal(t, "Dice", p.Title)
	require.NotNil(t, p.Transform)
	assert.Equal(t, Transform{Rotate: 90, FlipX: true}, *p.Transform)

	require.NoError(t, yaml.Unmarshal([]byte("symbol: true"), &p))
	assert.Equal(t, AutoSymbol(), p.Symbol)

	require.NoError(t, yaml.Unmarshal([]byte("symbol: false"), &p))
	assert.False(t, p.Symbol.IsSet())

	assert.Error(t, yaml.Unmarshal([]byte("symbol: [a]"), &p))
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	p := Params{Classes: []string{"a"}, Transform: &Transform{Rotate: 90}}
	c := p.Clone()
	c.Classes[0] = "b"
	c.Transform.Rotate = 180

	assert.Equal(t, "a", p.Classes[0])
	assert.InDelta(t, 90, p.Transform.Rotate, 0)
}

func TestLibrarySuggest(t *testing.T) {
	t.Parallel()

	lib := NewLibrary(
		fasDiceOne,
		farBookmark,
		Definition{Lookup: Lookup{Prefix: "fas", IconName: "bookmark"}, Width: 384, Height: 512},
		Definition{Lookup: Lookup{Prefix: "fal", IconName: "bookmark"}, Width: 384, Height: 512},
	)

	assert.Equal(t, []Lookup{
		{Prefix: "fal", IconName: "bookmark"},
		{Prefix: "far", IconName: "bookmark"},
	}, lib.Suggest(Lookup{Prefix: "fad", IconName: "bookmark"}, 3))

	assert.Equal(t, []Lookup{{Prefix: "fas", IconName: "bookmark"}},
		lib.Suggest(Lookup{Prefix: "fas", IconName: "bookmarks"}, 3))

	assert.Empty(t, lib.Suggest(Lookup{Prefix: "fas", IconName: "camera"}, 3))

	_, err := lib.Render(Lookup{Prefix: "fas", IconName: "dice-on"}, Params{})
	require.ErrorIs(t, err, ErrIconNotFound)
	assert.Equal(t, "icon not found: fas/dice-on (did you mean fas/dice-one?)", err.Error())
}
