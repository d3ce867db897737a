package schema

import (
	"fmt"
	"strings"
)

// TagKey is the struct tag key read by the catalog.
const TagKey = "troupe"

// Tag keys understood by the catalog.
const (
	TagExclude  = "-"
	TagDeclared = "declared"
	TagField    = "field"
)

var knownTags = map[string]bool{
	TagExclude:  true,
	TagDeclared: true,
	TagField:    true,
}

// ParseStructTag parses a troupe struct tag such as
//
//	`troupe:"declared=model.Person,field='boss man'"`
//
// into its keys. Entries are separated by commas; a bare key is a flag and
// maps to "". Values may be single or double quoted to hold commas or
// spaces. Unknown keys are an error.
func ParseStructTag(tag string) (map[string]string, error) {
	res := map[string]string{}
	entries, err := splitTag(tag)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		key, value, _ := strings.Cut(e, "=")
		key = strings.TrimSpace(key)
		switch {
		case key == "":
			return nil, fmt.Errorf("%w: empty key in %q", ErrBadTag, e)
		case !knownTags[key]:
			return nil, fmt.Errorf("%w: unknown key %q", ErrBadTag, key)
		}
		if _, dup := res[key]; dup {
			return nil, fmt.Errorf("%w: %q given twice", ErrBadTag, key)
		}
		res[key] = unquote(strings.TrimSpace(value))
	}
	return res, nil
}

// splitTag splits tag on commas outside quotes, dropping empty entries.
func splitTag(tag string) ([]string, error) {
	var (
		res   []string
		start int
		quote byte
	)
	add := func(e string) {
		if e = strings.TrimSpace(e); e != "" {
			res = append(res, e)
		}
	}
	for i := 0; i < len(tag); i++ {
		switch c := tag[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			add(tag[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrBadTag, tag)
	}
	add(tag[start:])
	return res, nil
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '\'' || v[0] == '"') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
