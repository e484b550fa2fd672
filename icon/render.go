package icon

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"svg-sprite-generator/markup"
)

const (
	// FamilyPrefix is the prefix of icon CSS classes.
	FamilyPrefix = "fa"
	// ReplacementClass is the base CSS class of every rendered icon.
	ReplacementClass = "svg-inline--fa"
	// SVGNamespace is the SVG XML namespace.
	SVGNamespace = "http://www.w3.org/2000/svg"

	maxSuggestions = 3
)

// Render renders the icon registered for lookup.
// It returns ErrIconNotFound if the lookup is not registered.
func (l *Library) Render(lookup Lookup, params Params) (*Icon, error) {
	def, ok := l.Find(lookup)
	if !ok {
		return nil, notFound(lookup, l.Suggest(lookup, maxSuggestions))
	}

	return RenderDefinition(def, params), nil
}

// RenderDefinition renders a definition without going through a library.
func RenderDefinition(def *Definition, params Params) *Icon {
	symbolID := ""
	if params.Symbol.IsSet() {
		symbolID = params.Symbol.ID
		if symbolID == "" {
			symbolID = AutoSymbolID(def.Lookup)
		}
	}

	var attrs markup.Attributes

	var children []markup.Node

	if params.Title != "" {
		titleID := ReplacementClass + "-title-" + titleSuffix(def.Lookup, params, symbolID)
		attrs.Set("aria-labelledby", titleID)
		children = append(children, &markup.Element{
			Tag:        "title",
			Attributes: markup.Attrs("id", titleID),
			Children:   []markup.Node{markup.Text(params.Title)},
		})
	} else {
		attrs.Set("aria-hidden", "true")
		attrs.Set("focusable", "false")
	}

	attrs.Set("data-prefix", def.Prefix)
	attrs.Set("data-icon", def.IconName)
	attrs.Set("class", classList(def, params.Classes))
	attrs.Set("role", "img")
	attrs.Set("xmlns", SVGNamespace)
	attrs.Set("viewBox", ViewBox(def))

	children = append(children, iconPath(def, params.Transform))

	if symbolID == "" {
		return &Icon{
			Lookup: def.Lookup,
			Abstract: []*markup.Element{{
				Tag:        "svg",
				Attributes: attrs,
				Children:   children,
			}},
		}
	}

	attrs.Set("id", symbolID)

	return &Icon{
		Lookup: def.Lookup,
		Abstract: []*markup.Element{{
			Tag:        "svg",
			Attributes: markup.Attrs("style", "display: none;"),
			Children: []markup.Node{&markup.Element{
				Tag:        "symbol",
				Attributes: attrs,
				Children:   children,
			}},
		}},
	}
}

// AutoSymbolID returns the symbol id generated for a lookup.
func AutoSymbolID(lookup Lookup) string {
	return lookup.Prefix + "-" + FamilyPrefix + "-" + lookup.IconName
}

// ViewBox returns the view box of a definition.
func ViewBox(def *Definition) string {
	return fmt.Sprintf("0 0 %d %d", def.Width, def.Height)
}

// WidthClass returns the fixed width class (fa-w-N) of a definition.
func WidthClass(def *Definition) string {
	w := math.Ceil(float64(def.Width) / float64(def.Height) * DefaultSize)
	return FamilyPrefix + "-w-" + formatNumber(w)
}

func classList(def *Definition, extra []string) string {
	classes := []string{ReplacementClass, FamilyPrefix + "-" + def.IconName, WidthClass(def)}
	for _, c := range extra {
		if c != "" {
			classes = append(classes, c)
		}
	}

	return strings.Join(classes, " ")
}

func titleSuffix(lookup Lookup, params Params, symbolID string) string {
	switch {
	case params.TitleID != "":
		return params.TitleID
	case symbolID != "":
		return symbolID
	default:
		return AutoSymbolID(lookup)
	}
}

func iconPath(def *Definition, transform *Transform) *markup.Element {
	path := &markup.Element{
		Tag:        "path",
		Attributes: markup.Attrs("fill", "currentColor", "d", def.Path),
	}

	if transform == nil || !transform.IsMeaningful() {
		return path
	}

	scale := transform.EffectiveSize() / DefaultSize
	scaleX, scaleY := scale, scale

	if transform.FlipX {
		scaleX = -scaleX
	}

	if transform.FlipY {
		scaleY = -scaleY
	}

	half := float64(def.Height) / 2
	path.Attributes.Set("transform",
		"translate("+formatNumber(-float64(def.Width)/2)+" "+formatNumber(-half)+")")

	inner := "translate(" + formatNumber(transform.X*32) + ", " + formatNumber(transform.Y*32) + ")  " +
		"scale(" + formatNumber(scaleX) + ", " + formatNumber(scaleY) + ")  " +
		"rotate(" + formatNumber(transform.Rotate) + " 0 0)"

	return &markup.Element{
		Tag: "g",
		Attributes: markup.Attrs("transform",
			"translate("+formatNumber(float64(def.Width)/2)+" "+formatNumber(half)+")"),
		Children: []markup.Node{&markup.Element{
			Tag:        "g",
			Attributes: markup.Attrs("transform", inner),
			Children:   []markup.Node{path},
		}},
	}
}

// formatNumber formats f like a JavaScript number, so -0 is "0".
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
