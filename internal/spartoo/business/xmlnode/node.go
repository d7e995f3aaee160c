// Package xmlnode holds the ordered element tree every Spartoo entity is
// converted into, and the rules deciding which attributes reach the wire.
package xmlnode

import (
	"strconv"
)

// Node is one element of the wire document. A node carries either text or
// children; CDATA marks text that must be written as a character-data section.
type Node struct {
	Name     string
	Text     string
	CDATA    bool
	Attrs    []Attr
	Children []*Node
}

type Attr struct {
	Name  string
	Value string
}

// Transformer is implemented by every entity that can be sent to Spartoo.
type Transformer interface {
	Node() *Node
}

// Element builds a container in declaration order. Nil children are the
// attributes that were skipped as empty and are dropped here.
func Element(name string, children ...*Node) *Node {
	n := &Node{Name: name}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Leaf always emits, whatever the value.
func Leaf(name, value string) *Node {
	return &Node{Name: name, Text: value}
}

func Text(name, value string) *Node {
	if value == "" {
		return nil
	}
	return Leaf(name, value)
}

func Int(name string, value int) *Node {
	if value == 0 {
		return nil
	}
	return Leaf(name, strconv.Itoa(value))
}

func Float(name string, value float64) *Node {
	if value == 0 {
		return nil
	}
	return Leaf(name, FormatFloat(value))
}

func Bool(name string, value bool) *Node {
	if !value {
		return nil
	}
	return Leaf(name, "1")
}

// CData wraps free text that may contain markup characters.
func CData(name, value string) *Node {
	if value == "" {
		return nil
	}
	return &Node{Name: name, Text: value, CDATA: true}
}

// Collection wraps the subtrees of items under name, or skips it when empty.
func Collection[T Transformer](name string, items []T) *Node {
	if len(items) == 0 {
		return nil
	}
	n := &Node{Name: name, Children: make([]*Node, 0, len(items))}
	for _, item := range items {
		n.Children = append(n.Children, item.Node())
	}
	return n
}

// Indexed emits one leaf per value named prefix1, prefix2... and stops after
// limit entries.
func Indexed(name, prefix string, values []string, limit int) *Node {
	if len(values) == 0 {
		return nil
	}
	n := &Node{Name: name}
	for i, v := range values {
		if i >= limit {
			break
		}
		n.Children = append(n.Children, Leaf(prefix+strconv.Itoa(i+1), v))
	}
	return n
}

// Repeated emits one leaf per value, all sharing itemName.
func Repeated(name, itemName string, values []string) *Node {
	if len(values) == 0 {
		return nil
	}
	n := &Node{Name: name, Children: make([]*Node, 0, len(values))}
	for _, v := range values {
		n.Children = append(n.Children, Leaf(itemName, v))
	}
	return n
}

// FormatFloat renders a float the shortest way that round-trips: 59.9, 60, 0.5.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Child returns the first direct child called name.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every direct child called name, in document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Find walks the path of child names from n.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, p := range path {
		cur = cur.Child(p)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// ChildNames lists the names of the direct children in order.
func (n *Node) ChildNames() []string {
	if n == nil {
		return nil
	}
	names := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	return names
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
