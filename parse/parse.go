package parse

import (
	"fmt"
	"io"

	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.XMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.XMLFormat:
		return parseXML(d)
	case format.YAMLFormat, format.JSONFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, pOpts.format)
	}
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}
