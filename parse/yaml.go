package parse

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/troupe/ir"
)

// parseYAML reads the YAML (and JSON) form of a document: a single key
// mapping naming the root, records as mappings, lists as sequences of
// single key mappings and leaves as scalars.
func parseYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	ms, ok := v.(yaml.MapSlice)
	if !ok || len(ms) != 1 {
		return nil, fmt.Errorf("%w: document must be a mapping with a single root key", ErrMalformedDocument)
	}
	return fromYAML(keyString(ms[0].Key), ms[0].Value)
}

func fromYAML(name string, v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.FromText(name, ""), nil
	case yaml.MapSlice:
		fields := make([]*ir.Node, 0, len(x))
		for _, item := range x {
			if item.Value == nil {
				continue
			}
			f, err := fromYAML(keyString(item.Key), item.Value)
			if err != nil {
				return nil, err
			}
			fields = append(fields, f)
		}
		res, err := ir.FromRecord(name, fields)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
		return res, nil
	case map[string]any:
		ms := make(yaml.MapSlice, 0, len(x))
		for _, k := range slices.Sorted(maps.Keys(x)) {
			ms = append(ms, yaml.MapItem{Key: k, Value: x[k]})
		}
		return fromYAML(name, ms)
	case []any:
		items := make([]*ir.Node, 0, len(x))
		for i, elt := range x {
			ms, ok := elt.(yaml.MapSlice)
			if !ok || len(ms) != 1 {
				return nil, fmt.Errorf("%w: item %d of %q must be a single key mapping", ErrMalformedDocument, i, name)
			}
			item, err := fromYAML(keyString(ms[0].Key), ms[0].Value)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return ir.FromList(name, items), nil
	default:
		return ir.FromText(name, scalarString(x)), nil
	}
}

func keyString(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return scalarString(k)
}

func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
