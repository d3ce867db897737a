package gomap

import (
	"reflect"
	"strings"

	"github.com/signadot/troupe/schema"
)

// itemName is the element name of a collection item with declared type t.
func itemName(t reflect.Type) string {
	name := schema.Deref(t).Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "item"
	}
	return schema.LowerFirst(name)
}

// slot describes the position a value is written to or read from.
type slot struct {
	// declared is the static Go type of the position.
	declared reflect.Type
	mode     schema.Mode
	// forced is the record type used in DeclaredOnly mode.
	forced reflect.Type
}

func (m *Mapper) memberSlot(mem schema.Member) (slot, error) {
	s := slot{declared: mem.Type, mode: mem.Mode}
	if mem.Mode != schema.DeclaredOnly {
		return s, nil
	}
	forced, err := m.registry.DeclaredType(mem)
	if err != nil {
		return s, err
	}
	s.forced = forced
	return s, nil
}

// upcast returns the part of val of type target, found along exported
// embedded struct fields.
func upcast(val reflect.Value, target reflect.Type) (reflect.Value, bool) {
	t := val.Type()
	if t == target {
		return val, true
	}
	if t.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous || !f.IsExported() || f.Type.Kind() != reflect.Struct {
			continue
		}
		if v, ok := upcast(val.Field(i), target); ok {
			return v, true
		}
	}
	return reflect.Value{}, false
}
