package libdiff

import (
	"github.com/signadot/troupe/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffListByIndex aligns the items of two lists and compares them.
//
// Each item is summarised: text items by their text, containers by their
// name. The summaries are diffed as rune sequences; aligned items are
// compared with df, a deletion directly followed by an insertion becomes
// a comparison of the two items and the rest are deletions or insertions.
func DiffListByIndex(from, to *ir.Node, df DiffFunc, res *[]Change) {
	m := map[string]rune{}
	fromRunes := summarize(m, from)
	toRunes := summarize(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	fi, ti := 0, 0
	var pending []*ir.Node
	flush := func() {
		for _, n := range pending {
			*res = append(*res, MakeChange(n, nil))
		}
		pending = nil
	}
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			flush()
			pending = append(pending, from.Children[fi:fi+n]...)
			fi += n
		case diffpatch.DiffInsert:
			for j := 0; j < n; j++ {
				if len(pending) > 0 {
					df(pending[0], to.Children[ti], res)
					pending = pending[1:]
				} else {
					*res = append(*res, MakeChange(nil, to.Children[ti]))
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for j := 0; j < n; j++ {
				df(from.Children[fi], to.Children[ti], res)
				fi++
				ti++
			}
		}
	}
	flush()
}

func summarize(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Children))
	for i, c := range node.Children {
		sum := c.Type.String() + "-" + c.Name
		if c.Type == ir.TextType {
			sum += "-" + c.Text
		}
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}
