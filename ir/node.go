package ir

import (
	"fmt"
)

// Document is a decoded save/resource document: a format version and an
// ordered sequence of named regions.
type Document struct {
	Version Version
	Regions []Region
}

// Region is a named top-level subtree of a Document.
type Region struct {
	ID   string
	Root *Node
}

// AddRegion appends a region. Region ids are unique within a document.
func (d *Document) AddRegion(id string, root *Node) error {
	for i := range d.Regions {
		if d.Regions[i].ID == id {
			return fmt.Errorf("%w: duplicate region %q", ErrStructure, id)
		}
	}
	d.Regions = append(d.Regions, Region{ID: id, Root: root})
	return nil
}

// Region returns the root node of the region with the given id, or nil.
func (d *Document) Region(id string) *Node {
	for i := range d.Regions {
		if d.Regions[i].ID == id {
			return d.Regions[i].Root
		}
	}
	return nil
}

func (d *Document) Clone() *Document {
	res := &Document{Version: d.Version}
	res.Regions = make([]Region, len(d.Regions))
	for i := range d.Regions {
		res.Regions[i] = Region{
			ID:   d.Regions[i].ID,
			Root: d.Regions[i].Root.Clone(),
		}
	}
	return res
}

// Node is one element of the document tree. Its members are an ordered
// sequence of attributes and child groups sharing one id namespace.
type Node struct {
	ID      string
	Members []Member
}

// Member is the two-case sum over what a node id can denote: exactly
// one of Attr and Group is set.
type Member struct {
	ID    string
	Attr  *Attribute
	Group []*Node
}

func (m *Member) IsAttr() bool { return m.Attr != nil }

// Attribute is a typed leaf value. Value holds the raw wire string of
// the LSX encoding; coercion to a native scalar happens only at the LSJ
// boundary. Value and Handle distinguish absent (nil) from empty.
// Version is kept only when non-zero: the wire formats treat zero as
// not present.
type Attribute struct {
	Type    string
	Value   *string
	Handle  *string
	Version uint32
}

// NewAttr returns an attribute carrying a value.
func NewAttr(typ, value string) *Attribute {
	return &Attribute{Type: typ, Value: &value}
}

// DeclAttr returns an attribute declared without a value.
func DeclAttr(typ string) *Attribute {
	return &Attribute{Type: typ}
}

func (a *Attribute) WithHandle(h string) *Attribute {
	a.Handle = &h
	return a
}

func (a *Attribute) WithVersion(v uint32) *Attribute {
	a.Version = v
	return a
}

func (a *Attribute) Clone() *Attribute {
	res := &Attribute{Type: a.Type, Version: a.Version}
	if a.Value != nil {
		v := *a.Value
		res.Value = &v
	}
	if a.Handle != nil {
		h := *a.Handle
		res.Handle = &h
	}
	return res
}

func (n *Node) member(id string) *Member {
	for i := range n.Members {
		if n.Members[i].ID == id {
			return &n.Members[i]
		}
	}
	return nil
}

// AddAttr appends an attribute member. A duplicate attribute id, or an
// id already denoting a child group, is a structural error.
func (n *Node) AddAttr(id string, a *Attribute) error {
	if m := n.member(id); m != nil {
		if m.IsAttr() {
			return fmt.Errorf("%w: duplicate attribute %q on node %q", ErrStructure, id, n.ID)
		}
		return fmt.Errorf("%w: id %q on node %q denotes both an attribute and a child group", ErrStructure, id, n.ID)
	}
	n.Members = append(n.Members, Member{ID: id, Attr: a})
	return nil
}

// AddChild appends a child node under the given group id, creating the
// group on first use and preserving group and within-group order. An id
// already denoting an attribute is a structural error.
func (n *Node) AddChild(id string, child *Node) error {
	m := n.member(id)
	if m == nil {
		n.Members = append(n.Members, Member{ID: id, Group: []*Node{child}})
		return nil
	}
	if m.IsAttr() {
		return fmt.Errorf("%w: id %q on node %q denotes both an attribute and a child group", ErrStructure, id, n.ID)
	}
	m.Group = append(m.Group, child)
	return nil
}

// Attr returns the attribute with the given id, or nil.
func (n *Node) Attr(id string) *Attribute {
	if m := n.member(id); m != nil && m.IsAttr() {
		return m.Attr
	}
	return nil
}

// Group returns the child group with the given id, or nil.
func (n *Node) Group(id string) []*Node {
	if m := n.member(id); m != nil && !m.IsAttr() {
		return m.Group
	}
	return nil
}

func (n *Node) Clone() *Node {
	res := &Node{ID: n.ID}
	res.Members = make([]Member, len(n.Members))
	for i := range n.Members {
		m := &n.Members[i]
		dst := &res.Members[i]
		dst.ID = m.ID
		if m.IsAttr() {
			dst.Attr = m.Attr.Clone()
			continue
		}
		dst.Group = make([]*Node, len(m.Group))
		for j, child := range m.Group {
			dst.Group[j] = child.Clone()
		}
	}
	return res
}

// Visit walks the subtree rooted at n in preorder, descending into
// child groups in member order.
func (n *Node) Visit(f func(n *Node) error) error {
	if err := f(n); err != nil {
		return err
	}
	for i := range n.Members {
		for _, child := range n.Members[i].Group {
			if err := child.Visit(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Visit walks every node of every region in document order.
func (d *Document) Visit(f func(region string, n *Node) error) error {
	for i := range d.Regions {
		region := d.Regions[i]
		err := region.Root.Visit(func(n *Node) error {
			return f(region.ID, n)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
