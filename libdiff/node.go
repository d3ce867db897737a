package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/troupe/ir"
)

// Change is one difference between two trees. From is nil for an
// insertion and To is nil for a deletion.
type Change struct {
	Op   Op
	Path string
	From *ir.Node
	To   *ir.Node
}

func (c Change) String() string {
	switch c.Op {
	case Insert:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, summary(c.To))
	case Delete:
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, summary(c.From))
	}
	if c.From.Type == ir.TextType && c.To.Type == ir.TextType {
		return fmt.Sprintf("%s %s: %s", c.Op, c.Path, Chars(c.From.Text, c.To.Text))
	}
	return fmt.Sprintf("%s %s: %s -> %s", c.Op, c.Path, summary(c.From), summary(c.To))
}

func summary(n *ir.Node) string {
	if n.Type == ir.TextType {
		return fmt.Sprintf("%q", n.Text)
	}
	return fmt.Sprintf("<%s %s, %d children>", n.Type, n.Name, len(n.Children))
}

// Diff returns the changes turning from into to, in document order. It
// returns nil when the trees are equal.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(from, to, &res)
	return res
}

// DiffFunc compares two nodes at the same position.
type DiffFunc func(from, to *ir.Node, res *[]Change)

func diff(from, to *ir.Node, res *[]Change) {
	switch {
	case from == nil && to == nil:
		return
	case from == nil:
		*res = append(*res, MakeChange(nil, to))
		return
	case to == nil:
		*res = append(*res, MakeChange(from, nil))
		return
	}
	if from.Name != to.Name || !sameShape(from, to) {
		*res = append(*res, MakeChange(from, to))
		return
	}
	switch from.Type {
	case ir.TextType:
		if from.Text != to.Text {
			*res = append(*res, MakeChange(from, to))
		}
	case ir.ListType:
		DiffListByIndex(from, to, diff, res)
	default:
		diffNamed(from, to, res)
	}
}

// records and elements may stand for each other: a parsed document has
// elements where a written one has records.
func sameShape(a, b *ir.Node) bool {
	if a.Type == b.Type {
		return true
	}
	container := func(t ir.Type) bool { return t == ir.RecordType || t == ir.ElementType }
	return container(a.Type) && container(b.Type)
}

// MakeChange builds the change from one node to another, either of which
// may be nil.
func MakeChange(from, to *ir.Node) Change {
	switch {
	case from == nil:
		return Change{Op: Insert, Path: to.Path(), To: to}
	case to == nil:
		return Change{Op: Delete, Path: from.Path(), From: from}
	default:
		return Change{Op: Replace, Path: from.Path(), From: from, To: to}
	}
}

type key struct {
	name string
	n    int
}

// children are matched by name and, for repeated names, by occurrence.
func keyed(n *ir.Node) ([]key, map[key]*ir.Node) {
	seen := map[string]int{}
	keys := make([]key, len(n.Children))
	m := make(map[key]*ir.Node, len(n.Children))
	for i, c := range n.Children {
		k := key{c.Name, seen[c.Name]}
		seen[c.Name]++
		keys[i] = k
		m[k] = c
	}
	return keys, m
}

func diffNamed(from, to *ir.Node, res *[]Change) {
	fromKeys, fromMap := keyed(from)
	toKeys, toMap := keyed(to)
	for _, k := range fromKeys {
		diff(fromMap[k], toMap[k], res)
	}
	for _, k := range toKeys {
		if _, ok := fromMap[k]; !ok {
			*res = append(*res, MakeChange(nil, toMap[k]))
		}
	}
}

// Reverse returns the changes turning to back into from.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		r := Change{Op: c.Op.Reverse(), From: c.To, To: c.From}
		switch r.Op {
		case Insert:
			r.Path = r.To.Path()
		default:
			r.Path = r.From.Path()
		}
		res[len(changes)-1-i] = r
	}
	return res
}

// Format renders changes one per line.
func Format(changes []Change) string {
	buf := &strings.Builder{}
	for _, c := range changes {
		buf.WriteString(c.String())
		buf.WriteByte('\n')
	}
	return buf.String()
}
