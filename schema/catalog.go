package schema

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/signadot/troupe/debug"
	"github.com/signadot/troupe/ir"
)

// Catalog describes record types. Descriptions are cached per type; a
// Catalog is safe for concurrent use.
type Catalog struct {
	cache sync.Map
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

// Describe returns the members of the struct type t (or pointer to struct)
// in declaration order, embedded structs flattened in place.
func (c *Catalog) Describe(t reflect.Type) ([]Member, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotRecord)
	}
	t = Deref(t)
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotRecord, t)
	}
	if ms, ok := c.cache.Load(t); ok {
		return ms.([]Member), nil
	}
	var members []Member
	seen := map[string]string{}
	if err := describe(t, nil, &members, seen); err != nil {
		return nil, err
	}
	if debug.Catalog() {
		debug.Logf("catalog %s: %d members\n", t, len(members))
	}
	ms, _ := c.cache.LoadOrStore(t, members)
	return ms.([]Member), nil
}

func describe(t reflect.Type, prefix []int, members *[]Member, seen map[string]string) error {
	for i := range t.NumField() {
		f := t.Field(i)
		tags, err := ParseStructTag(f.Tag.Get(TagKey))
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t, f.Name, err)
		}
		index := append(slices.Clone(prefix), i)
		_, excluded := tags[TagExclude]
		_, renamed := tags[TagField]
		if f.Anonymous && f.Type.Kind() == reflect.Struct && !renamed {
			if !f.IsExported() || excluded {
				continue
			}
			if err := describe(f.Type, index, members, seen); err != nil {
				return err
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		m := Member{
			Name:      f.Name,
			FieldName: LowerFirst(f.Name),
			Type:      f.Type,
			Index:     index,
			Excluded:  excluded,
		}
		if name, ok := tags[TagField]; ok {
			if name == "" {
				return fmt.Errorf("%w: %s.%s: empty field name", ErrBadTag, t, f.Name)
			}
			m.FieldName = name
		}
		if name, ok := tags[TagDeclared]; ok {
			m.Mode = DeclaredOnly
			m.DeclaredName = name
			if it := ItemType(f.Type); it.Kind() == reflect.Struct {
				m.Declared = it
			}
		}
		if !m.Excluded {
			if m.FieldName == ir.TypeField {
				return fmt.Errorf("%w: %s.%s uses the reserved name %q", ErrMemberCollision, t, f.Name, ir.TypeField)
			}
			if prev, ok := seen[m.FieldName]; ok {
				return fmt.Errorf("%w: %s: %s and %s both map to %q", ErrMemberCollision, t, prev, f.Name, m.FieldName)
			}
			seen[m.FieldName] = f.Name
		}
		*members = append(*members, m)
	}
	return nil
}
