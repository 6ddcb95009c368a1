// Package invariants provides a CEL-based declarative assertion environment
// for asserting facts about a solved layout tree, so a test can state
// "getWidth('page0.children[0]') == 18.0" as data rather than as a chain of
// Go field accesses. It is a thin, purpose-built re-derivation of a WPT
// conformance harness: the function table below (getX/getY/getWidth/...,
// child/childCount) mirrors that harness's introspection surface, adapted
// from node.Rect/node.Style accessors to InspectedNode's position/dimension
// fields.
package invariants

import (
	"fmt"

	"github.com/arclayout/engine"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
)

// Assertion is one declarative fact to check against a solved tree.
type Assertion struct {
	Expression string
	Message    string
	Tolerance  float64
}

// Result is the outcome of evaluating one Assertion.
type Result struct {
	Assertion Assertion
	Passed    bool
	Error     string
}

// Env binds path-addressed node lookups ("page0", "page0.children[1]") into
// a CEL environment so assertion expressions can introspect a solved tree
// without any Go code per scenario.
type Env struct {
	nodes map[string]*layout.InspectedNode
	env   *cel.Env
}

// NewEnv indexes every page root (and its full subtree) by a dotted child
// path and builds a CEL environment exposing the layout introspection
// functions below over that index.
func NewEnv(pages []*layout.InspectedNode) (*Env, error) {
	nodes := make(map[string]*layout.InspectedNode)
	for i, root := range pages {
		path := fmt.Sprintf("page%d", i)
		nodes[path] = root
		collect(root, path, nodes)
	}

	env, err := cel.NewEnv(
		numberFn("getX", func(n *layout.InspectedNode) float64 { return n.Position.X }, nodes),
		numberFn("getY", func(n *layout.InspectedNode) float64 { return n.Position.Y }, nodes),
		numberFn("getLeft", func(n *layout.InspectedNode) float64 { return n.Position.X }, nodes),
		numberFn("getTop", func(n *layout.InspectedNode) float64 { return n.Position.Y }, nodes),
		numberFn("getWidth", func(n *layout.InspectedNode) float64 { return n.Dimensions.Width }, nodes),
		numberFn("getHeight", func(n *layout.InspectedNode) float64 { return n.Dimensions.Height }, nodes),
		numberFn("getRight", func(n *layout.InspectedNode) float64 { return n.Position.X + n.Dimensions.Width }, nodes),
		numberFn("getBottom", func(n *layout.InspectedNode) float64 { return n.Position.Y + n.Dimensions.Height }, nodes),
		numberFn("getMinWidth", func(n *layout.InspectedNode) float64 { return n.MinDimensions.Width }, nodes),
		numberFn("getMinHeight", func(n *layout.InspectedNode) float64 { return n.MinDimensions.Height }, nodes),
		numberFn("getPaddingTop", func(n *layout.InspectedNode) float64 { return n.Padding.Top }, nodes),
		numberFn("getPaddingLeft", func(n *layout.InspectedNode) float64 { return n.Padding.Left }, nodes),
		numberFn("getPaddingRight", func(n *layout.InspectedNode) float64 { return n.Padding.Right }, nodes),
		numberFn("getPaddingBottom", func(n *layout.InspectedNode) float64 { return n.Padding.Bottom }, nodes),
		numberFn("getChildGap", func(n *layout.InspectedNode) float64 { return n.ChildGap }, nodes),
		boolFn("isOverconstrained", func(n *layout.InspectedNode) bool { return n.Overconstrained }, nodes),
		intFn("childCount", func(n *layout.InspectedNode) int64 { return int64(len(n.Children)) }, nodes),

		cel.Function("child",
			cel.Overload("child_path_int",
				[]*cel.Type{cel.StringType, cel.IntType},
				cel.StringType,
				cel.BinaryBinding(childFunc(nodes)))),
	)
	if err != nil {
		return nil, fmt.Errorf("invariants: building CEL environment: %w", err)
	}
	return &Env{nodes: nodes, env: env}, nil
}

// Evaluate compiles and runs one assertion's expression, which must
// ultimately produce a boolean.
func (e *Env) Evaluate(a Assertion) Result {
	res := Result{Assertion: a}

	ast, issues := e.env.Compile(a.Expression)
	if issues != nil && issues.Err() != nil {
		res.Error = fmt.Sprintf("compile error: %v", issues.Err())
		return res
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		res.Error = fmt.Sprintf("program error: %v", err)
		return res
	}
	val, _, err := prg.Eval(map[string]any{})
	if err != nil {
		res.Error = fmt.Sprintf("eval error: %v", err)
		return res
	}
	b, ok := val.Value().(bool)
	if !ok {
		res.Error = fmt.Sprintf("expression did not evaluate to bool, got %T", val.Value())
		return res
	}
	res.Passed = b
	if !b && a.Message != "" {
		res.Error = a.Message
	}
	return res
}

// EvaluateAll runs every assertion independently, so one failure does not
// short-circuit reporting on the rest.
func (e *Env) EvaluateAll(as []Assertion) []Result {
	out := make([]Result, 0, len(as))
	for _, a := range as {
		out = append(out, e.Evaluate(a))
	}
	return out
}

func collect(n *layout.InspectedNode, path string, nodes map[string]*layout.InspectedNode) {
	for i, c := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		nodes[childPath] = c
		collect(c, childPath, nodes)
	}
}

func find(path string, nodes map[string]*layout.InspectedNode) (*layout.InspectedNode, error) {
	n, ok := nodes[path]
	if !ok {
		return nil, fmt.Errorf("no node at path %q", path)
	}
	return n, nil
}

func numberFn(name string, get func(*layout.InspectedNode) float64, nodes map[string]*layout.InspectedNode) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_path",
			[]*cel.Type{cel.StringType},
			cel.DoubleType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("%s: path must be a string", name)
				}
				n, err := find(path, nodes)
				if err != nil {
					return types.NewErr("%s: %v", name, err)
				}
				return types.Double(get(n))
			})))
}

func boolFn(name string, get func(*layout.InspectedNode) bool, nodes map[string]*layout.InspectedNode) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_path",
			[]*cel.Type{cel.StringType},
			cel.BoolType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("%s: path must be a string", name)
				}
				n, err := find(path, nodes)
				if err != nil {
					return types.NewErr("%s: %v", name, err)
				}
				return types.Bool(get(n))
			})))
}

func intFn(name string, get func(*layout.InspectedNode) int64, nodes map[string]*layout.InspectedNode) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_path",
			[]*cel.Type{cel.StringType},
			cel.IntType,
			cel.UnaryBinding(func(pathVal ref.Val) ref.Val {
				path, ok := pathVal.Value().(string)
				if !ok {
					return types.NewErr("%s: path must be a string", name)
				}
				n, err := find(path, nodes)
				if err != nil {
					return types.NewErr("%s: %v", name, err)
				}
				return types.Int(get(n))
			})))
}

func childFunc(nodes map[string]*layout.InspectedNode) func(ref.Val, ref.Val) ref.Val {
	return func(pathVal, indexVal ref.Val) ref.Val {
		path, ok := pathVal.Value().(string)
		if !ok {
			return types.NewErr("child: path must be a string")
		}
		idx, ok := indexVal.Value().(int64)
		if !ok {
			return types.NewErr("child: index must be an int")
		}
		childPath := fmt.Sprintf("%s.children[%d]", path, idx)
		if _, err := find(childPath, nodes); err != nil {
			return types.NewErr("child: %v", err)
		}
		return types.String(childPath)
	}
}
