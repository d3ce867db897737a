package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/troupe/ir"
)

type xmlFrame struct {
	name     string
	children []*ir.Node
	text     strings.Builder
}

func parseXML(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	dec.Strict = true
	var (
		stack []*xmlFrame
		root  *ir.Node
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, fmt.Errorf("%w: element <%s> after the root element", ErrMalformedDocument, t.Name.Local)
			}
			stack = append(stack, &xmlFrame{name: t.Name.Local})
		case xml.EndElement:
			n := len(stack)
			f := stack[n-1]
			stack = stack[:n-1]
			node, err := f.node()
			if err != nil {
				return nil, err
			}
			if len(stack) == 0 {
				root = node
				continue
			}
			top := stack[len(stack)-1]
			top.children = append(top.children, node)
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) != 0 {
					return nil, fmt.Errorf("%w: text outside the root element", ErrMalformedDocument)
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrMalformedDocument)
	}
	return root, nil
}

func (f *xmlFrame) node() (*ir.Node, error) {
	if len(f.children) == 0 {
		return ir.FromText(f.name, f.text.String()), nil
	}
	if strings.TrimSpace(f.text.String()) != "" {
		return nil, fmt.Errorf("%w: element <%s> mixes text and elements", ErrMalformedDocument, f.name)
	}
	return ir.FromElement(f.name, f.children), nil
}
