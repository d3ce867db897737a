package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path renders the position of y from the document root, e.g.
// $.actor[0].filmography[1].performance.name
func (y *Node) Path() string {
	if y.Parent == nil {
		return "$"
	}
	prefix := y.Parent.Path()
	switch y.Parent.Type {
	case ListType:
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	case ElementType:
		if y.Parent.countNamed(y.Name) > 1 {
			return prefix + "." + quoteName(y.Name) + "[" + strconv.Itoa(y.ParentIndex) + "]"
		}
		return prefix + "." + quoteName(y.Name)
	default:
		return prefix + "." + quoteName(y.Name)
	}
}

func (y *Node) countNamed(name string) int {
	n := 0
	for _, c := range y.Children {
		if c.Name == name {
			n++
		}
	}
	return n
}

func quoteName(f string) string {
	if f != "" && strings.IndexAny(f, "'.*$[]") == -1 {
		return f
	}
	return "'" + strings.Replace(f, "'", "\\'", -1) + "'"
}

type pathSeg struct {
	name  string
	index int
	isIdx bool
}

func parsePath(p string) ([]pathSeg, error) {
	if !strings.HasPrefix(p, "$") {
		return nil, fmt.Errorf("%w: %q does not start with $", ErrBadPath, p)
	}
	var segs []pathSeg
	i := 1
	for i < len(p) {
		switch p[i] {
		case '.':
			i++
			if i < len(p) && p[i] == '\'' {
				name, n, err := unquoteName(p[i:])
				if err != nil {
					return nil, fmt.Errorf("%w: %q: %w", ErrBadPath, p, err)
				}
				segs = append(segs, pathSeg{name: name})
				i += n
				continue
			}
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: %q: empty name at %d", ErrBadPath, p, i)
			}
			segs = append(segs, pathSeg{name: p[i:j]})
			i = j
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: %q: unterminated index", ErrBadPath, p)
			}
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: %q: bad index %q", ErrBadPath, p, p[i+1:i+j])
			}
			segs = append(segs, pathSeg{index: n, isIdx: true})
			i += j + 1
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q at %d", ErrBadPath, p, p[i], i)
		}
	}
	return segs, nil
}

// unquoteName reads a quoted name at the start of s, returning it and the
// number of bytes consumed.
func unquoteName(s string) (string, int, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) && s[i+1] == '\'' {
				b.WriteByte('\'')
				i++
				continue
			}
			b.WriteByte('\\')
		case '\'':
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, fmt.Errorf("unterminated quote")
}

// GetPath returns the node at p, a path as rendered by Path, relative to
// y, or nil if there is none.
func (y *Node) GetPath(p string) (*Node, error) {
	segs, err := parsePath(p)
	if err != nil {
		return nil, err
	}
	cur := y
	for i := 0; i < len(segs) && cur != nil; i++ {
		seg := segs[i]
		if seg.isIdx {
			if cur.Type != ListType || seg.index >= len(cur.Children) {
				return nil, nil
			}
			cur = cur.Children[seg.index]
			continue
		}
		if cur.Type == ElementType && cur.countNamed(seg.name) > 1 {
			if i+1 == len(segs) || !segs[i+1].isIdx {
				return nil, fmt.Errorf("%w: %q: %s repeats and needs an index", ErrBadPath, p, seg.name)
			}
			i++
			idx := segs[i].index
			if idx >= len(cur.Children) || cur.Children[idx].Name != seg.name {
				return nil, nil
			}
			cur = cur.Children[idx]
			continue
		}
		if cur.Type != RecordType && cur.Type != ElementType {
			return nil, nil
		}
		cur = cur.Get(seg.name)
	}
	return cur, nil
}
