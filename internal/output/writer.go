// Package output writes generated sprites to disk.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"

	"svg-sprite-generator/sprite"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// dumper prints trees without pointer addresses so dumps are reproducible.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// WriteFile writes data to path, creating the parent directory if needed.
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}

// WriteSprite writes the SVG document of s to svgPath and, if attributesPath
// is not empty, the symbol attributes as JSON.
func WriteSprite(s *sprite.Sprite, svgPath, attributesPath string) error {
	if err := WriteFile(svgPath, []byte(s.SVG)); err != nil {
		return err
	}

	if attributesPath == "" {
		return nil
	}

	data, err := s.MarshalAttributes()
	if err != nil {
		return fmt.Errorf("marshaling symbol attributes: %w", err)
	}

	return WriteFile(attributesPath, append(data, '\n'))
}

// Dump writes a readable dump of the sprite tree and its attributes to w.
func Dump(w io.Writer, s *sprite.Sprite) error {
	if _, err := io.WriteString(w, dumper.Sdump(s.Abstract, s.Attributes)); err != nil {
		return fmt.Errorf("writing sprite dump: %w", err)
	}

	return nil
}

// WriteDump writes the dump of s to path, creating the parent directory if needed.
func WriteDump(s *sprite.Sprite, path string) error {
	return WriteFile(path, []byte(dumper.Sdump(s.Abstract, s.Attributes)))
}
