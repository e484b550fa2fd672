package sprite

import (
	"errors"
	"fmt"

	"svg-sprite-generator/internal/common"
)

// Sentinel errors matched with errors.Is.
var (
	ErrRender      = errors.New("render failed")
	ErrStructure   = errors.New("unexpected icon structure")
	ErrDuplicateID = errors.New("duplicate symbol id")
)

// RenderError is returned when the renderer yields no icon for a descriptor.
type RenderError struct {
	Descriptor Descriptor
	// Err is the renderer error, if any.
	Err error
}

func (e *RenderError) Error() string {
	msg := fmt.Sprintf("Failed to generate symbol for %s", describe(e.Descriptor))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }

// StructureKind identifies which structural check a rendered icon failed.
type StructureKind int

const (
	_ StructureKind = iota

	// StructureRootCount: the icon does not have exactly one root element.
	StructureRootCount
	// StructureRootTag: the root element is not <svg>.
	StructureRootTag
	// StructureNoChildren: the root <svg> has no children.
	StructureNoChildren
	// StructureChildCount: the root <svg> has more than one child.
	StructureChildCount
	// StructureChildTag: the only child of the root is not <symbol>.
	StructureChildTag
)

// String returns a short name for the kind.
func (k StructureKind) String() string {
	switch k {
	case StructureRootCount:
		return "root-count"
	case StructureRootTag:
		return "root-tag"
	case StructureNoChildren:
		return "no-children"
	case StructureChildCount:
		return "child-count"
	case StructureChildTag:
		return "child-tag"
	default:
		return common.UnknownStr
	}
}

// StructureError is returned when a rendered icon does not have the shape
// <svg><symbol>...</symbol></svg>.
type StructureError struct {
	Kind StructureKind
	Msg  string
}

func structureError(kind StructureKind, format string, args ...any) *StructureError {
	return &StructureError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *StructureError) Error() string { return e.Msg }

func (e *StructureError) Is(target error) bool { return target == ErrStructure }

// DuplicateIDError is returned when two symbols resolve to the same id.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("Duplicate symbol id '%s'", e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

func describe(d Descriptor) string {
	switch p := d.(type) {
	case nil:
		return "<nil>"
	case *PreRenderedIcon:
		if p == nil {
			return "<nil>"
		}
	case *Query:
		if p == nil {
			return "<nil>"
		}
	}

	return d.String()
}
