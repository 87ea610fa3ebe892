package query

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lsforge/go-lskit/debug"
	"github.com/lsforge/go-lskit/ir"
	"github.com/lsforge/go-lskit/typetag"
)

// Query is a compiled node predicate.
type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles a predicate expression. The expression is evaluated
// once per node against an environment of:
//
//	id      - the node id
//	region  - the id of the region containing the node
//	attrs   - map of attribute id to natively-typed value
//	attr(x) - attrs[x], nil when absent
//	has(x)  - whether the node has attribute x
//
// e.g. `id == "Module" && has("Version") && attrs.Version > 3`.
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match is one node selected by a query.
type Match struct {
	Region string
	Node   *ir.Node
}

// Run evaluates the query over every node of every region, in document
// order.
func (q *Query) Run(doc *ir.Document) ([]Match, error) {
	var res []Match
	err := doc.Visit(func(region string, n *ir.Node) error {
		out, err := expr.Run(q.prg, nodeEnv(region, n))
		if err != nil {
			return fmt.Errorf("query %q on node %q: %w", q.src, n.ID, err)
		}
		b, ok := out.(bool)
		if !ok {
			return fmt.Errorf("query %q returned %T, want bool", q.src, out)
		}
		if b {
			res = append(res, Match{Region: region, Node: n})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if debug.Match() {
		debug.Logf("query: %q matched %d nodes\n", q.src, len(res))
	}
	return res, nil
}

func nodeEnv(region string, n *ir.Node) map[string]any {
	attrs := map[string]any{}
	for i := range n.Members {
		m := &n.Members[i]
		if !m.IsAttr() || m.Attr.Value == nil {
			continue
		}
		attrs[m.ID] = native(typetag.Coerce(typetag.Parse(m.Attr.Type), *m.Attr.Value))
	}
	return map[string]any{
		"id":     n.ID,
		"region": region,
		"attrs":  attrs,
		"attr": func(name string) any {
			return attrs[name]
		},
		"has": func(name string) bool {
			return n.Attr(name) != nil
		},
	}
}

// native turns coercion results into types expr compares naturally.
func native(v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if f, err := num.Float64(); err == nil {
		return f
	}
	return num.String()
}
