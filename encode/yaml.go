package encode

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"
	"github.com/signadot/troupe/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v := yaml.MapSlice{{Key: node.Name, Value: yamlValue(node)}}
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.wire {
		yOpts = append(yOpts, yaml.Flow(true))
	}
	d, err := yaml.MarshalWithOptions(v, yOpts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func yamlValue(node *ir.Node) any {
	switch node.Type {
	case ir.TextType:
		if needsEscapes(node.Text) {
			return quotedText(node.Text)
		}
		return node.Text
	case ir.ListType:
		return yamlItems(node)
	case ir.ElementType:
		if !uniqueNames(node) {
			return yamlItems(node)
		}
	}
	res := make(yaml.MapSlice, 0, len(node.Children))
	for _, c := range node.Children {
		res = append(res, yaml.MapItem{Key: c.Name, Value: yamlValue(c)})
	}
	return res
}

// quotedText is written as a double quoted scalar. Plain and block
// scalars drop tabs and carriage returns on the way back in.
type quotedText string

func (q quotedText) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(q))), nil
}

func needsEscapes(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0
}

func yamlItems(node *ir.Node) []any {
	res := make([]any, 0, len(node.Children))
	for _, c := range node.Children {
		res = append(res, yaml.MapSlice{{Key: c.Name, Value: yamlValue(c)}})
	}
	return res
}

func uniqueNames(node *ir.Node) bool {
	seen := make(map[string]bool, len(node.Children))
	for _, c := range node.Children {
		if seen[c.Name] {
			return false
		}
		seen[c.Name] = true
	}
	return true
}

func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	d, err := node.MarshalJSON()
	if err != nil {
		return err
	}
	if !es.wire {
		buf := &bytes.Buffer{}
		if err := json.Indent(buf, d, "", string(bytes.Repeat([]byte{' '}, es.indent))); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}
