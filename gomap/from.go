package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/troupe/debug"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/schema"
)

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

type reader struct {
	m     *Mapper
	cfg   *unmapConfig
	depth int
}

// FromIR reads the document tree node into dst, which must be a non-nil
// pointer to a slice or array. The name of the root element is ignored.
// dst is only modified if the whole document reads successfully.
func (m *Mapper) FromIR(node *ir.Node, dst any, opts ...UnmapOption) error {
	cfg := newUnmapConfig(opts...)
	val := reflect.ValueOf(dst)
	if !val.IsValid() || val.Kind() != reflect.Pointer || val.IsNil() {
		return &UnmarshalError{
			Message: fmt.Sprintf("destination must be a non-nil pointer, got %T", dst),
			Err:     ErrUnsupportedType,
		}
	}
	t := val.Elem().Type()
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return &UnmarshalError{
			Message: fmt.Sprintf("destination must point to a slice or array, got %T", dst),
			Err:     ErrUnsupportedType,
		}
	}
	if node == nil {
		return &UnmarshalError{Message: "nil document", Err: ErrMalformedDocument}
	}
	if debug.Read() {
		debug.Logf("read %s from:\n%s\n", t, node)
	}
	r := &reader{m: m, cfg: cfg}
	tmp := reflect.New(t).Elem()
	if err := r.read(node, tmp, slot{declared: t}); err != nil {
		return err
	}
	val.Elem().Set(tmp)
	return nil
}

// read reads node into the settable val, sitting in slot s.
func (r *reader) read(node *ir.Node, val reflect.Value, s slot) error {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.cfg.MaxDepth {
		return &UnmarshalError{
			FieldPath: node.Path(),
			Message:   fmt.Sprintf("depth exceeds %d", r.cfg.MaxDepth),
			Err:       ErrGraphTooDeep,
		}
	}
	t := val.Type()
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		text, err := leafText(node)
		if err != nil {
			return err
		}
		if err := val.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return parseError(node, fmt.Sprintf("cannot read %q as %s", text, t), err)
		}
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		if val.IsNil() {
			val.Set(reflect.New(t.Elem()))
		}
		return r.read(node, val.Elem(), slot{declared: t.Elem(), mode: s.mode, forced: s.forced})
	case reflect.Interface:
		return r.readInterface(node, val, s)
	case reflect.String:
		text, err := leafText(node)
		if err != nil {
			return err
		}
		val.SetString(text)
		return nil
	case reflect.Bool:
		text, err := leafText(node)
		if err != nil {
			return err
		}
		b, err := strconv.ParseBool(text)
		if err != nil {
			return parseError(node, fmt.Sprintf("cannot read %q as bool", text), err)
		}
		val.SetBool(b)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		text, err := leafText(node)
		if err != nil {
			return err
		}
		i, err := strconv.ParseInt(text, 10, t.Bits())
		if err != nil {
			return parseError(node, fmt.Sprintf("cannot read %q as %s", text, t), err)
		}
		val.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		text, err := leafText(node)
		if err != nil {
			return err
		}
		u, err := strconv.ParseUint(text, 10, t.Bits())
		if err != nil {
			return parseError(node, fmt.Sprintf("cannot read %q as %s", text, t), err)
		}
		val.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		text, err := leafText(node)
		if err != nil {
			return err
		}
		f, err := strconv.ParseFloat(text, t.Bits())
		if err != nil {
			return parseError(node, fmt.Sprintf("cannot read %q as %s", text, t), err)
		}
		val.SetFloat(f)
		return nil
	case reflect.Slice, reflect.Array:
		return r.readList(node, val, s)
	case reflect.Struct:
		if s.mode != schema.DeclaredOnly {
			tag, present := typeTag(node)
			if _, err := r.m.ResolveType(t, tag, present); err != nil {
				return &UnmarshalError{FieldPath: node.Path(), Err: err}
			}
		}
		return r.readRecord(node, val)
	default:
		return &UnmarshalError{
			FieldPath: node.Path(),
			Message:   fmt.Sprintf("cannot read into %s", t),
			Err:       ErrUnsupportedType,
		}
	}
}

func parseError(node *ir.Node, msg string, err error) error {
	return &UnmarshalError{
		FieldPath: node.Path(),
		Message:   msg,
		Err:       fmt.Errorf("%w: %w", ErrParse, err),
	}
}

func leafText(node *ir.Node) (string, error) {
	if node.Type == ir.TextType {
		return node.Text, nil
	}
	return "", &UnmarshalError{
		FieldPath: node.Path(),
		Message:   fmt.Sprintf("expected text, got %s", node.Type),
		Err:       ErrParse,
	}
}

// children returns the child nodes of a container. A markup parser
// produces an empty leaf for an empty container.
func children(node *ir.Node) ([]*ir.Node, error) {
	if node.Type != ir.TextType {
		return node.Children, nil
	}
	if node.Text == "" {
		return nil, nil
	}
	return nil, &UnmarshalError{
		FieldPath: node.Path(),
		Message:   fmt.Sprintf("expected elements, got text %q", node.Text),
		Err:       ErrParse,
	}
}

func typeTag(node *ir.Node) (string, bool) {
	if node.Type == ir.TextType {
		return "", false
	}
	tn := node.Get(ir.TypeField)
	if tn == nil {
		return "", false
	}
	return tn.Text, true
}

func (r *reader) readList(node *ir.Node, val reflect.Value, s slot) error {
	items, err := children(node)
	if err != nil {
		return err
	}
	t := val.Type()
	elem := t.Elem()
	itemSlot := slot{declared: elem, mode: s.mode, forced: s.forced}
	if t.Kind() == reflect.Array {
		if len(items) != t.Len() {
			return &UnmarshalError{
				FieldPath: node.Path(),
				Message:   fmt.Sprintf("expected %d items, got %d", t.Len(), len(items)),
				Err:       ErrParse,
			}
		}
		for i, item := range items {
			if err := r.read(item, val.Index(i), itemSlot); err != nil {
				return err
			}
		}
		return nil
	}
	out := reflect.MakeSlice(t, 0, len(items))
	for _, item := range items {
		ev := reflect.New(elem).Elem()
		if err := r.read(item, ev, itemSlot); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}
	val.Set(out)
	return nil
}

func (r *reader) readInterface(node *ir.Node, val reflect.Value, s slot) error {
	iface := val.Type()
	concrete := s.forced
	if s.mode != schema.DeclaredOnly || concrete == nil {
		tag, present := typeTag(node)
		t, err := r.m.ResolveType(iface, tag, present)
		if err != nil {
			var te *TypeError
			if errors.As(err, &te) {
				te.FieldPath = node.Path()
				return te
			}
			return &UnmarshalError{FieldPath: node.Path(), Err: err}
		}
		concrete = t
	}
	if concrete.Kind() != reflect.Struct {
		return &UnmarshalError{
			FieldPath: node.Path(),
			Message:   fmt.Sprintf("%s is not a record type", concrete),
			Err:       ErrUnsupportedType,
		}
	}
	ptr := reflect.New(concrete)
	if err := r.readRecord(node, ptr.Elem()); err != nil {
		return err
	}
	switch {
	case ptr.Type().AssignableTo(iface):
		val.Set(ptr)
	case concrete.AssignableTo(iface):
		val.Set(ptr.Elem())
	default:
		return &TypeError{
			FieldPath: node.Path(),
			Expected:  iface.String(),
			Actual:    concrete.String(),
			Err:       ErrUnknownType,
		}
	}
	return nil
}

// readRecord reads the members of the struct val from the children of
// node. Members without a child are left untouched; unknown children are
// ignored.
func (r *reader) readRecord(node *ir.Node, val reflect.Value) error {
	if _, err := children(node); err != nil {
		return err
	}
	if node.Type == ir.ListType {
		return &UnmarshalError{
			FieldPath: node.Path(),
			Message:   fmt.Sprintf("expected record, got %s", node.Type),
			Err:       ErrParse,
		}
	}
	t := val.Type()
	members, err := r.m.registry.Describe(t)
	if err != nil {
		return &SchemaError{TypeName: t.String(), Err: err}
	}
	for _, mem := range members {
		if mem.Excluded {
			continue
		}
		child := node.Get(mem.FieldName)
		if child == nil {
			continue
		}
		ms, err := r.m.memberSlot(mem)
		if err != nil {
			return &SchemaError{TypeName: t.String(), Err: err}
		}
		if err := r.read(child, val.FieldByIndex(mem.Index), ms); err != nil {
			return err
		}
	}
	return nil
}
