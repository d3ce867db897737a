package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/troupe/ir"
)

// MustString renders node without the XML header, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	opts = append([]EncodeOption{EncodeHeader(false)}, opts...)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
