package schema

import (
	"fmt"
	"path"
	"reflect"
	"slices"
	"sync"
)

// Registry maps discriminator names to concrete record types.
type Registry struct {
	mu       sync.RWMutex
	catalog  *Catalog
	byName   map[string]reflect.Type
	byType   map[reflect.Type]string
	bindings map[reflect.Type]reflect.Type
}

func NewRegistry() *Registry {
	return &Registry{
		catalog:  NewCatalog(),
		byName:   map[string]reflect.Type{},
		byType:   map[reflect.Type]string{},
		bindings: map[reflect.Type]reflect.Type{},
	}
}

// TypeOf accepts a value, a pointer, a nil pointer to an interface or a
// reflect.Type and returns the type it designates. Pointers to structs are
// dereferenced.
func TypeOf(v any) reflect.Type {
	if t, ok := v.(reflect.Type); ok {
		return derefRecord(t)
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface {
		return t.Elem()
	}
	return derefRecord(t)
}

func derefRecord(t reflect.Type) reflect.Type {
	if d := Deref(t); d.Kind() == reflect.Struct {
		return d
	}
	return t
}

// DefaultName is the discriminator name used by Register: the last element
// of the package path, a dot and the type name.
func DefaultName(t reflect.Type) string {
	t = Deref(t)
	return path.Base(t.PkgPath()) + "." + t.Name()
}

// Register registers the record type of v under DefaultName.
func (r *Registry) Register(v any) error {
	t := TypeOf(v)
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotRecord, t)
	}
	return r.RegisterAs(DefaultName(t), t)
}

// RegisterAs registers the record type of v under name. The type is
// described eagerly so that catalog errors surface here.
func (r *Registry) RegisterAs(name string, v any) error {
	t := TypeOf(v)
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotRecord, t)
	}
	if name == "" {
		return fmt.Errorf("%w: empty name for %s", ErrDuplicateName, t)
	}
	if _, err := r.catalog.Describe(t); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byName[name]; ok {
		if prev == t {
			return nil
		}
		return fmt.Errorf("%w: %q names both %s and %s", ErrDuplicateName, name, prev, t)
	}
	if prev, ok := r.byType[t]; ok {
		return fmt.Errorf("%w: %s already registered as %q", ErrDuplicateName, t, prev)
	}
	r.byName[name] = t
	r.byType[t] = name
	return nil
}

// MustRegister registers each value, panicking on error.
func (r *Registry) MustRegister(vs ...any) {
	for _, v := range vs {
		if err := r.Register(v); err != nil {
			panic(err)
		}
	}
}

// Bind sets the record type used for declared-only members whose Go type
// is the interface iface. iface is given as a nil pointer to the
// interface, e.g. (*Human)(nil).
func (r *Registry) Bind(iface, base any) error {
	it := TypeOf(iface)
	bt := TypeOf(base)
	if it == nil || it.Kind() != reflect.Interface {
		return fmt.Errorf("%w: %v is not an interface", ErrBadBinding, it)
	}
	if bt == nil || bt.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v", ErrNotRecord, bt)
	}
	if !reflect.PointerTo(bt).Implements(it) {
		return fmt.Errorf("%w: %s does not implement %s", ErrBadBinding, bt, it)
	}
	if _, err := r.catalog.Describe(bt); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[it] = bt
	return nil
}

func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byName[name]
	return t, ok
}

func (r *Registry) NameOf(t reflect.Type) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name, ok := r.byType[Deref(t)]
	return name, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]string, 0, len(r.byName))
	for name := range r.byName {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

func (r *Registry) Describe(t reflect.Type) ([]Member, error) {
	return r.catalog.Describe(t)
}

// DeclaredType returns the record type forced on a DeclaredOnly member:
// the type named by declared=Name, the member's own struct type, or the
// record bound to its interface type.
func (r *Registry) DeclaredType(m Member) (reflect.Type, error) {
	if m.DeclaredName != "" {
		t, ok := r.Lookup(m.DeclaredName)
		if !ok {
			return nil, fmt.Errorf("%w: %q declared on %s", ErrUnknownName, m.DeclaredName, m.Name)
		}
		return t, nil
	}
	if m.Declared != nil {
		return m.Declared, nil
	}
	it := ItemType(m.Type)
	if it.Kind() == reflect.Interface {
		r.mu.RLock()
		bt, ok := r.bindings[it]
		r.mu.RUnlock()
		if ok {
			return bt, nil
		}
	}
	return nil, fmt.Errorf("%w: member %s of type %s", ErrNoDeclaredType, m.Name, m.Type)
}
