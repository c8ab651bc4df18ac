package query

import (
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/jot-format/go-jot/convert"
	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/cpath"
)

// Eval evaluates an expression against a document and returns the
// result as a node. Members of a root object are in scope by name;
// the whole document is reachable through get.
func Eval(root *ir.Node, src string) (*ir.Node, error) {
	prg, err := expr.Compile(src, exprOpts(root)...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prg, env(root))
	if err != nil {
		return nil, err
	}
	return convert.FromAny(res)
}

// EvalString is Eval for callers that want text: string results come
// back as written, everything else encodes to jot.
func EvalString(root *ir.Node, src string) (string, error) {
	y, err := Eval(root, src)
	if err != nil {
		return "", err
	}
	if y.Type == ir.StringType {
		return y.String, nil
	}
	s, _, err := encode.String(y)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			p, err := cpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			target := ir.Resolve(root, p)
			if debug.Resolve() {
				debug.Logf("query: get(%s) -> %v\n", p, target)
			}
			return convert.ToAny(target), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			p, err := cpath.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.Resolve(root, p) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// env exposes root object members as expression identifiers.
func env(root *ir.Node) map[string]any {
	if root == nil || root.Type != ir.ObjectType {
		return map[string]any{}
	}
	m, ok := convert.ToAny(root).(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}
