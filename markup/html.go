package markup

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape escapes text for use in element content and attribute values.
func Escape(s string) string {
	return escaper.Replace(s)
}

// ToHTML renders a node to its textual markup representation.
// Elements always get an explicit closing tag.
func ToHTML(n Node) string {
	var b strings.Builder
	write(&b, n)

	return b.String()
}

// ToHTMLAll renders each node and returns the results in order.
func ToHTMLAll[N Node](nodes []N) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = ToHTML(n)
	}

	return res
}

func write(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Text:
		b.WriteString(Escape(string(v)))
	case *Element:
		if v == nil {
			return
		}

		b.WriteByte('<')
		b.WriteString(v.Tag)

		for _, attr := range v.Attributes {
			b.WriteByte(' ')
			b.WriteString(attr.Name)
			b.WriteString(`="`)
			b.WriteString(Escape(attr.Value))
			b.WriteByte('"')
		}

		b.WriteByte('>')

		for _, child := range v.Children {
			write(b, child)
		}

		b.WriteString("</")
		b.WriteString(v.Tag)
		b.WriteByte('>')
	}
}
