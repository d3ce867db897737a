package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/troupe/debug"
	"github.com/signadot/troupe/ir"
	"github.com/signadot/troupe/schema"
)

var textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

type writer struct {
	m     *Mapper
	cfg   *mapConfig
	depth int
}

// ToIR converts the root collection items (a slice or array, or a pointer
// to one) to a document tree.
func (m *Mapper) ToIR(items any, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	val := reflect.ValueOf(items)
	for val.IsValid() && val.Kind() == reflect.Pointer {
		val = val.Elem()
	}
	if !val.IsValid() || (val.Kind() != reflect.Slice && val.Kind() != reflect.Array) {
		return nil, &MarshalError{
			Message: fmt.Sprintf("root must be a slice or array, got %T", items),
			Err:     ErrUnsupportedType,
		}
	}
	w := &writer{m: m, cfg: cfg}
	node, err := w.write(val, cfg.RootName, slot{declared: val.Type()}, cfg.RootName)
	if err != nil {
		return nil, err
	}
	if node == nil {
		node = ir.FromList(cfg.RootName, nil)
	}
	if debug.Write() {
		debug.Logf("write %s:\n%s\n", val.Type(), node)
	}
	return node, nil
}

// write converts val, sitting in slot s, to a node named name. A nil
// pointer, interface or slice produces no node.
func (w *writer) write(val reflect.Value, name string, s slot, fieldPath string) (*ir.Node, error) {
	w.depth++
	defer func() { w.depth-- }()
	if w.depth > w.cfg.MaxDepth {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("depth exceeds %d", w.cfg.MaxDepth),
			Err:       ErrGraphTooDeep,
		}
	}
	if !val.IsValid() {
		return nil, nil
	}
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil, nil
		}
		if val.Kind() == reflect.Pointer && val.Type().Implements(textMarshalerType) {
			return writeText(val, name, fieldPath)
		}
		val = val.Elem()
	}
	if val.Type().Implements(textMarshalerType) {
		return writeText(val, name, fieldPath)
	}
	if val.CanAddr() && reflect.PointerTo(val.Type()).Implements(textMarshalerType) {
		return writeText(val.Addr(), name, fieldPath)
	}

	switch val.Kind() {
	case reflect.String:
		return ir.FromText(name, val.String()), nil
	case reflect.Bool:
		return ir.FromText(name, strconv.FormatBool(val.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromText(name, strconv.FormatInt(val.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromText(name, strconv.FormatUint(val.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromText(name, strconv.FormatFloat(val.Float(), 'g', -1, val.Type().Bits())), nil
	case reflect.Slice:
		if val.IsNil() {
			return nil, nil
		}
		return w.writeList(val, name, s, fieldPath)
	case reflect.Array:
		return w.writeList(val, name, s, fieldPath)
	case reflect.Struct:
		return w.writeRecord(val, name, s, fieldPath)
	default:
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("cannot write %s", val.Type()),
			Err:       ErrUnsupportedType,
		}
	}
}

func writeText(val reflect.Value, name, fieldPath string) (*ir.Node, error) {
	d, err := val.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("MarshalText on %s", val.Type()),
			Err:       err,
		}
	}
	return ir.FromText(name, string(d)), nil
}

// writeList writes the items of val with the collection's item type as
// their declared type. The slot's mode applies to every item, and items of
// a declared-only collection are named after the forced record type.
func (w *writer) writeList(val reflect.Value, name string, s slot, fieldPath string) (*ir.Node, error) {
	elem := val.Type().Elem()
	itemSlot := slot{declared: elem, mode: s.mode, forced: s.forced}
	iName := itemName(elem)
	if s.mode == schema.DeclaredOnly && s.forced != nil {
		iName = itemName(s.forced)
	}
	items := make([]*ir.Node, 0, val.Len())
	for i := range val.Len() {
		item, err := w.write(val.Index(i), iName, itemSlot, fmt.Sprintf("%s[%d]", fieldPath, i))
		if err != nil {
			return nil, err
		}
		if item == nil {
			continue
		}
		items = append(items, item)
	}
	return ir.FromList(name, items), nil
}

func (w *writer) writeRecord(val reflect.Value, name string, s slot, fieldPath string) (*ir.Node, error) {
	actual := val.Type()
	target := actual
	if s.mode == schema.DeclaredOnly {
		target = s.forced
		up, ok := upcast(val, target)
		if !ok {
			return nil, &TypeError{
				FieldPath: fieldPath,
				Expected:  target.String(),
				Actual:    actual.String(),
				Message:   fmt.Sprintf("%s does not embed declared type %s", actual, target),
			}
		}
		val = up
	}
	var fields []*ir.Node
	if NeedsTag(s.declared, actual, s.mode) {
		tag, ok := w.m.registry.NameOf(actual)
		if !ok {
			return nil, &MarshalError{
				FieldPath: fieldPath,
				Message:   fmt.Sprintf("%s is not registered", actual),
				Err:       ErrUnknownType,
			}
		}
		fields = append(fields, ir.FromText(ir.TypeField, tag))
	}
	members, err := w.m.registry.Describe(target)
	if err != nil {
		return nil, &SchemaError{TypeName: target.String(), Err: err}
	}
	for _, mem := range members {
		if mem.Excluded {
			continue
		}
		ms, err := w.m.memberSlot(mem)
		if err != nil {
			return nil, &SchemaError{TypeName: target.String(), Err: err}
		}
		child, err := w.write(val.FieldByIndex(mem.Index), mem.FieldName, ms, fieldPath+"."+mem.FieldName)
		if err != nil {
			return nil, err
		}
		if child == nil {
			continue
		}
		fields = append(fields, child)
	}
	node, err := ir.FromRecord(name, fields)
	if err != nil {
		return nil, &MarshalError{FieldPath: fieldPath, Err: err}
	}
	return node, nil
}
