package gomap

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/troupe/encode"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/parse"
)

// Serialize writes the root collection items to w.
func (m *Mapper) Serialize(w io.Writer, items any, opts ...MapOption) error {
	node, err := m.ToIR(items, opts...)
	if err != nil {
		return err
	}
	return encode.Encode(node, w, ToEncodeOptions(opts...)...)
}

// Marshal returns the document for the root collection items.
func (m *Mapper) Marshal(items any, opts ...MapOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Serialize(&buf, items, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize reads a document from r into dst, a pointer to a slice.
func (m *Mapper) Deserialize(r io.Reader, dst any, opts ...UnmapOption) error {
	node, err := parse.ParseReader(r, ToParseOptions(opts...)...)
	if err != nil {
		return fmt.Errorf("deserialize: %w", err)
	}
	return m.FromIR(node, dst, opts...)
}

// Unmarshal reads the document d into dst, a pointer to a slice.
func (m *Mapper) Unmarshal(d []byte, dst any, opts ...UnmapOption) error {
	return m.Deserialize(bytes.NewReader(d), dst, opts...)
}

// ToIR converts items using the default mapper.
func ToIR(items any, opts ...MapOption) (*ir.Node, error) {
	return DefaultMapper().ToIR(items, opts...)
}

// FromIR reads node into dst using the default mapper.
func FromIR(node *ir.Node, dst any, opts ...UnmapOption) error {
	return DefaultMapper().FromIR(node, dst, opts...)
}

func Serialize(w io.Writer, items any, opts ...MapOption) error {
	return DefaultMapper().Serialize(w, items, opts...)
}

func Marshal(items any, opts ...MapOption) ([]byte, error) {
	return DefaultMapper().Marshal(items, opts...)
}

func Deserialize(r io.Reader, dst any, opts ...UnmapOption) error {
	return DefaultMapper().Deserialize(r, dst, opts...)
}

func Unmarshal(d []byte, dst any, opts ...UnmapOption) error {
	return DefaultMapper().Unmarshal(d, dst, opts...)
}
