package encode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/signadot/troupe/ir"
)

func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	if es.header {
		if err := writeString(w, es.color(ir.TextType, HeaderColor, xmlHeader)+es.nl()); err != nil {
			return err
		}
	}
	if err := writeElement(w, node, es); err != nil {
		return err
	}
	if es.wire {
		return writeString(w, "\n")
	}
	return nil
}

func writeElement(w io.Writer, n *ir.Node, es *EncState) error {
	name := es.color(n.Type, NameColor, n.Name)
	lt := es.color(n.Type, SepColor, "<")
	gt := es.color(n.Type, SepColor, ">")
	pad := es.pad()
	switch {
	case n.Type == ir.TextType:
		text, err := escapeText(n.Text)
		if err != nil {
			return err
		}
		text = es.color(n.Type, TextColor, text)
		closing := es.color(n.Type, SepColor, "</")
		return writeString(w, pad+lt+name+gt+text+closing+name+gt+es.nl())
	case len(n.Children) == 0:
		return writeString(w, pad+lt+name+es.color(n.Type, SepColor, " />")+es.nl())
	}
	if err := writeString(w, pad+lt+name+gt+es.nl()); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if err := writeElement(w, c, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, pad+es.color(n.Type, SepColor, "</")+name+gt+es.nl())
}

// escapeText fails on text XML 1.0 cannot carry rather than letting
// xml.EscapeText replace it with U+FFFD.
func escapeText(s string) (string, error) {
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && n == 1 {
			return "", fmt.Errorf("%w: invalid UTF-8 at byte %d of %q", ErrEncoding, i, s)
		}
		if !isXMLChar(r) {
			return "", fmt.Errorf("%w: character %U at byte %d has no XML representation", ErrEncoding, r, i)
		}
		i += n
	}
	buf := &strings.Builder{}
	if err := xml.EscapeText(buf, []byte(s)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
