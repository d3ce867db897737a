package gomap

import (
	"fmt"
	"reflect"

	"github.com/signadot/troupe/schema"
)

// NeedsTag reports whether a record of type actual written into a slot of
// type declared must carry a discriminator. Collection items pass the item
// type as declared.
func NeedsTag(declared, actual reflect.Type, mode schema.Mode) bool {
	if mode == schema.DeclaredOnly {
		return false
	}
	if declared == nil {
		return true
	}
	d := schema.Deref(declared)
	if d.Kind() == reflect.Interface {
		return true
	}
	return d != schema.Deref(actual)
}

// ResolveType returns the record type to instantiate for a slot of type
// declared given its discriminator, if present.
//
// An interface slot requires a discriminator naming a registered type that
// implements it. For a concrete slot the discriminator is superfluous: it
// must still name a registered type but the declared type is returned.
func (m *Mapper) ResolveType(declared reflect.Type, tag string, present bool) (reflect.Type, error) {
	d := schema.Deref(declared)
	if !present {
		if d.Kind() == reflect.Interface {
			return nil, fmt.Errorf("%w: %s has no %s", ErrAbstractTypeUnresolved, d, "discriminator")
		}
		return d, nil
	}
	t, ok := m.registry.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
	}
	if d.Kind() != reflect.Interface {
		return d, nil
	}
	if !reflect.PointerTo(t).Implements(d) && !t.Implements(d) {
		return nil, &TypeError{
			Expected: d.String(),
			Actual:   tag,
			Message:  fmt.Sprintf("%s does not implement %s", t, d),
			Err:      ErrUnknownType,
		}
	}
	return t, nil
}
