package ir

import "fmt"

type Type int

const (
	// TextType holds a leaf value in Text.
	TextType Type = iota
	// ListType holds same-named items in document order.
	ListType
	// RecordType holds uniquely named fields.
	RecordType
	// ElementType holds child elements whose shape is decided by the reader.
	ElementType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		TextType:    "Text",
		ListType:    "List",
		RecordType:  "Record",
		ElementType: "Element",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Text":    TextType,
		"List":    ListType,
		"Record":  RecordType,
		"Element": ElementType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		TextType,
		ListType,
		RecordType,
		ElementType,
	}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
