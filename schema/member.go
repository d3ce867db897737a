package schema

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Mode selects how a member's runtime type is written.
type Mode int

const (
	// Polymorphic members carry a discriminator when the runtime type
	// differs from the declared one.
	Polymorphic Mode = iota
	// DeclaredOnly members are written and read as their declared record
	// type, without a discriminator. Fields of more derived runtime types
	// are dropped.
	DeclaredOnly
)

func (m Mode) String() string {
	switch m {
	case Polymorphic:
		return "polymorphic"
	case DeclaredOnly:
		return "declared"
	default:
		return "<invalid>"
	}
}

type Member struct {
	// Name is the Go field name.
	Name string
	// FieldName is the element name in documents.
	FieldName string
	// Type is the declared Go type.
	Type reflect.Type
	// Index is the field index sequence for reflect.Value.FieldByIndex.
	Index []int

	Excluded bool
	Mode     Mode

	// Declared is the record type forced for DeclaredOnly members whose Go
	// type names a struct. Interface members leave it nil; see
	// Registry.DeclaredType.
	Declared reflect.Type
	// DeclaredName is the discriminator name given with declared=Name.
	DeclaredName string
}

// ItemType strips pointers and, for slices and arrays, returns the item
// type with pointers stripped.
func ItemType(t reflect.Type) reflect.Type {
	t = Deref(t)
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		return Deref(t.Elem())
	}
	return t
}

func Deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// LowerFirst lowers the first rune of s.
func LowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
