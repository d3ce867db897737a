package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON writes y as a single key object {name: value}. Records are
// objects with fields in order, lists are arrays of single key objects and
// leaves are strings. Element nodes become objects when their child names
// are unique and arrays otherwise.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	if err := writeJSONKey(buf, y.Name); err != nil {
		return nil, err
	}
	if err := y.writeJSONValue(buf); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONKey(buf *bytes.Buffer, k string) error {
	d, err := json.Marshal(k)
	if err != nil {
		return err
	}
	buf.Write(d)
	buf.WriteByte(':')
	return nil
}

func (y *Node) writeJSONValue(buf *bytes.Buffer) error {
	asList := y.Type == ListType
	if y.Type == ElementType {
		asList = !y.uniqueNames()
	}
	switch {
	case y.Type == TextType:
		d, err := json.Marshal(y.Text)
		if err != nil {
			return err
		}
		buf.Write(d)
	case asList:
		buf.WriteByte('[')
		for i, c := range y.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := c.MarshalJSON()
			if err != nil {
				return err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
	default:
		buf.WriteByte('{')
		for i, c := range y.Children {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONKey(buf, c.Name); err != nil {
				return err
			}
			if err := c.writeJSONValue(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func (y *Node) uniqueNames() bool {
	seen := make(map[string]bool, len(y.Children))
	for _, c := range y.Children {
		if seen[c.Name] {
			return false
		}
		seen[c.Name] = true
	}
	return true
}

// UnmarshalJSON is the inverse of MarshalJSON. Numbers and booleans become
// leaves holding their literal text; null fields are dropped.
func (y *Node) UnmarshalJSON(d []byte) error {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	name, err := readSingleKey(dec)
	if err != nil {
		return err
	}
	n, err := readJSONValue(dec, name)
	if err != nil {
		return err
	}
	if n == nil {
		n = FromText(name, "")
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("trailing data after root object")
	}
	*y = *n
	for _, c := range y.Children {
		c.Parent = y
	}
	return nil
}

// readSingleKey consumes '{' and the only key of a single key object.
func readSingleKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	if tok != json.Delim('{') {
		return "", fmt.Errorf("expected single key object, got %v", tok)
	}
	tok, err = dec.Token()
	if err != nil {
		return "", err
	}
	k, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected single key object, got %v", tok)
	}
	return k, nil
}

func readJSONValue(dec *json.Decoder, name string) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case nil:
		return nil, nil
	case string:
		return FromText(name, x), nil
	case json.Number:
		return FromText(name, x.String()), nil
	case bool:
		return FromText(name, strconv.FormatBool(x)), nil
	case json.Delim:
		switch x {
		case '{':
			var fields []*Node
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k := ktok.(string)
				f, err := readJSONValue(dec, k)
				if err != nil {
					return nil, err
				}
				if f == nil {
					continue
				}
				fields = append(fields, f)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromRecord(name, fields)
		case '[':
			var items []*Node
			for dec.More() {
				k, err := readSingleKey(dec)
				if err != nil {
					return nil, err
				}
				item, err := readJSONValue(dec, k)
				if err != nil {
					return nil, err
				}
				if _, err := dec.Token(); err != nil {
					return nil, err
				}
				if item == nil {
					item = FromText(k, "")
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return FromList(name, items), nil
		}
	}
	return nil, fmt.Errorf("unexpected json token %v", tok)
}
