package markup

// Node is a single node of an abstract markup tree.
// It is implemented by *Element and Text.
type Node interface {
	node()
}

// Element is a markup element with ordered attributes and optional children.
// A nil Children slice means the element has no children at all.
type Element struct {
	Tag        string
	Attributes Attributes
	Children   []Node
}

// Text is a text leaf. It is escaped when rendered.
type Text string

func (*Element) node() {}
func (Text) node()     {}

// TagOf returns the tag of n, or an empty string for text nodes.
func TagOf(n Node) string {
	if el, ok := n.(*Element); ok && el != nil {
		return el.Tag
	}

	return ""
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}

	c := &Element{
		Tag:        e.Tag,
		Attributes: e.Attributes.Clone(),
	}

	if e.Children != nil {
		c.Children = make([]Node, len(e.Children))
		for i, child := range e.Children {
			c.Children[i] = cloneNode(child)
		}
	}

	return c
}

func cloneNode(n Node) Node {
	if el, ok := n.(*Element); ok {
		return el.Clone()
	}

	return n
}

// Find returns the first direct child element with the given tag.
func (e *Element) Find(tag string) (*Element, bool) {
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok && el != nil && el.Tag == tag {
			return el, true
		}
	}

	return nil, false
}

// TextContent concatenates the direct text children of the element.
func (e *Element) TextContent() string {
	var s string

	for _, child := range e.Children {
		if t, ok := child.(Text); ok {
			s += string(t)
		}
	}

	return s
}

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Attributes is an insertion-ordered attribute list.
type Attributes []Attr

// Get returns the value of the named attribute.
func (a Attributes) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}

	return "", false
}

// Has returns true if the named attribute is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Set replaces the value of an existing attribute in place or appends a new one.
func (a *Attributes) Set(name, value string) {
	for i := range *a {
		if (*a)[i].Name == name {
			(*a)[i].Value = value
			return
		}
	}

	*a = append(*a, Attr{Name: name, Value: value})
}

// Clone returns a copy of the attribute list.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}

	return append(Attributes(nil), a...)
}

// Attrs builds an attribute list from alternating name/value pairs.
// A trailing name without a value is ignored.
func Attrs(pairs ...string) Attributes {
	attrs := make(Attributes, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs.Set(pairs[i], pairs[i+1])
	}

	return attrs
}
