package ir

import "fmt"

// TypeField is the reserved child carrying a record's discriminator.
const TypeField = "_type"

type Node struct {
	Type        Type
	Name        string
	Parent      *Node
	ParentIndex int
	Children    []*Node

	Text string
}

func FromText(name, text string) *Node {
	return &Node{
		Type: TextType,
		Name: name,
		Text: text,
	}
}

func FromList(name string, items []*Node) *Node {
	res := &Node{Type: ListType, Name: name}
	res.adopt(items)
	return res
}

// FromRecord builds a record node. Field names must be unique.
func FromRecord(name string, fields []*Node) (*Node, error) {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w in record %q", ErrEmptyName, name)
		}
		if seen[f.Name] {
			return nil, fmt.Errorf("%w %q in record %q", ErrDuplicateField, f.Name, name)
		}
		seen[f.Name] = true
	}
	res := &Node{Type: RecordType, Name: name}
	res.adopt(fields)
	return res, nil
}

// FromElement builds a node whose children have not been classified as
// list items or record fields.
func FromElement(name string, children []*Node) *Node {
	res := &Node{Type: ElementType, Name: name}
	res.adopt(children)
	return res
}

func (y *Node) adopt(children []*Node) {
	y.Children = make([]*Node, len(children))
	for i, c := range children {
		c.Parent = y
		c.ParentIndex = i
		y.Children[i] = c
	}
}

// Append adds a child at the end.
func (y *Node) Append(c *Node) {
	c.Parent = y
	c.ParentIndex = len(y.Children)
	y.Children = append(y.Children, c)
}

// Get returns the first child named name, or nil.
func (y *Node) Get(name string) *Node {
	for _, c := range y.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsEmpty reports whether the node has neither children nor text.
func (y *Node) IsEmpty() bool {
	return len(y.Children) == 0 && y.Text == ""
}

// Descendants returns all nodes below y named name, in document order.
func (y *Node) Descendants(name string) []*Node {
	var res []*Node
	_ = y.Visit(func(n *Node, isPost bool) (bool, error) {
		if !isPost && n != y && n.Name == name {
			res = append(res, n)
		}
		return true, nil
	})
	return res
}

// Ancestor returns the nearest ancestor named name, or nil.
func (y *Node) Ancestor(name string) *Node {
	for p := y.Parent; p != nil; p = p.Parent {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type: y.Type,
		Name: y.Name,
		Text: y.Text,
	}
	if y.Children != nil {
		children := make([]*Node, len(y.Children))
		for i, c := range y.Children {
			children[i] = c.Clone()
		}
		res.adopt(children)
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Children {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) String() string {
	switch y.Type {
	case TextType:
		return fmt.Sprintf("%s=%q", y.Name, y.Text)
	default:
		return fmt.Sprintf("%s<%s/%d>", y.Name, y.Type, len(y.Children))
	}
}
