package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/troupe/format"
	"github.com/signadot/troupe/ir"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>`

type EncState struct {
	depth, indent int
	header        bool

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	es := &EncState{
		indent: 2,
		header: true,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.XMLFormat:
		return encodeXML(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	default:
		return fmt.Errorf("%w: %w: %s", ErrEncoding, format.ErrBadFormat, es.format)
	}
}

func (es *EncState) nl() string {
	if es.wire {
		return ""
	}
	return "\n"
}

func (es *EncState) pad() string {
	if es.wire {
		return ""
	}
	return strings.Repeat(" ", es.indent*es.depth)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
