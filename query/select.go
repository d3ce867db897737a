package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/troupe/ir"
)

// Env is the evaluation environment of a predicate for one element: its
// children by name, records as nested maps, collections as lists and
// leaves as strings. The functions here() and texts(name) are also
// available.
type Env map[string]any

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
		expr.Function("num", func(params ...any) (any, error) {
			s, ok := params[0].(string)
			if !ok {
				return nil, fmt.Errorf("num: expected text, got %T", params[0])
			}
			return strconv.ParseFloat(strings.TrimSpace(s), 64)
		},
			new(func(string) float64)),
	}
}

// Compile compiles a predicate.
func Compile(predicate string) (*vm.Program, error) {
	prg, err := expr.Compile(predicate, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", predicate, err)
	}
	return prg, nil
}

// Select returns the elements named element below doc, in document order,
// for which predicate holds. An empty predicate selects all of them.
func Select(doc *ir.Node, element, predicate string) ([]*ir.Node, error) {
	candidates := doc.Descendants(element)
	if predicate == "" {
		return candidates, nil
	}
	prg, err := Compile(predicate)
	if err != nil {
		return nil, err
	}
	var res []*ir.Node
	for _, n := range candidates {
		out, err := expr.Run(prg, NodeEnv(n))
		if err != nil {
			return nil, fmt.Errorf("at %s: %w", n.Path(), err)
		}
		if ok, _ := out.(bool); ok {
			res = append(res, n)
		}
	}
	return res, nil
}

// NodeEnv builds the predicate environment of n.
func NodeEnv(n *ir.Node) Env {
	env := Env{}
	if m, ok := value(n).(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["here"] = func() string { return n.Path() }
	env["texts"] = func(name string) []string {
		var res []string
		for _, d := range n.Descendants(name) {
			if d.Type == ir.TextType {
				res = append(res, d.Text)
			}
		}
		return res
	}
	return env
}

func value(n *ir.Node) any {
	switch n.Type {
	case ir.TextType:
		return n.Text
	case ir.ListType:
		return items(n)
	}
	m := make(map[string]any, len(n.Children))
	for _, c := range n.Children {
		if _, dup := m[c.Name]; dup {
			return items(n)
		}
		m[c.Name] = value(c)
	}
	return m
}

func items(n *ir.Node) []any {
	res := make([]any, len(n.Children))
	for i, c := range n.Children {
		res[i] = value(c)
	}
	return res
}
