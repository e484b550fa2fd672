// Package markup provides the abstract markup tree used to describe SVG
// documents before they are serialized to text.
//
// A tree is made of *Element nodes (tag, ordered attributes, optional
// children) and Text leaves. Attribute order is preserved so that rendering
// is deterministic:
//
//	el := &markup.Element{Tag: "svg"}
//	el.Attributes.Set("xmlns", "http://www.w3.org/2000/svg")
//	markup.ToHTML(el) // <svg xmlns="http://www.w3.org/2000/svg"></svg>
//
// Trees can also be decoded from YAML:
//
//	tag: svg
//	attributes:
//	  viewBox: 0 0 448 512
//	children:
//	  - tag: title
//	    children: [Dice]
package markup
