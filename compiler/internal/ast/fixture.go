package ast

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gdml-lang/gdml/compiler/internal/diag"
)

/*
Program trees can be written as YAML fixtures. Every statement and
expression is a mapping with exactly one key naming its kind; spans come
from the position of that mapping in the YAML document.

	file: main.gdml
	decls:
	  - type: Point
	  - const: {name: limit, type: Int, value: {int: 10}}
	  - fn:
	      name: add
	      params: [{name: a, type: Int}, {name: b, type: Int}]
	      ret: Int
	      body:
	        - return: {bin: [{ident: a}, "+", {ident: b}]}
*/

// LoadFixture reads and decodes a YAML program tree from path.
func LoadFixture(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open fixture")
	}
	defer fh.Close()
	f, err := DecodeFixture(fh, path)
	if err != nil {
		return nil, errors.Wrapf(err, "decode fixture %s", path)
	}
	return f, nil
}

// DecodeFixture decodes a YAML program tree. name is used as the span file
// when the document has no `file:` key.
func DecodeFixture(r io.Reader, name string) (*File, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "yaml")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty fixture")
	}
	d := &decoder{file: name}
	return d.decodeFile(doc.Content[0])
}

type decoder struct {
	file string
}

func (d *decoder) span(n *yaml.Node) diag.Span {
	return diag.Span{
		File:  d.file,
		Start: diag.Pos{Line: n.Line, Col: n.Column},
		End:   diag.Pos{Line: n.Line, Col: n.Column + len(n.Value)},
	}
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) error {
	return errors.Errorf("%d:%d: "+format, append([]any{n.Line, n.Column}, args...)...)
}

// fields returns the key/value pairs of a mapping node.
func (d *decoder) fields(n *yaml.Node) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected mapping")
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		out[n.Content[i].Value] = n.Content[i+1]
	}
	return out, nil
}

// single returns the only key of a one-key mapping and its value.
func (d *decoder) single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, d.errorf(n, "expected a mapping with exactly one key")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func (d *decoder) decodeFile(n *yaml.Node) (*File, error) {
	fs, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	if name, ok := fs["file"]; ok {
		d.file = name.Value
	}
	f := &File{Name: d.file}
	if decls, ok := fs["decls"]; ok {
		if f.Decls, err = d.stmts(decls); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (d *decoder) stmts(n *yaml.Node) ([]Stmt, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a list of statements")
	}
	out := make([]Stmt, 0, len(n.Content))
	for _, c := range n.Content {
		s, err := d.stmt(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) block(n *yaml.Node) (*Block, error) {
	stmts, err := d.stmts(n)
	if err != nil {
		return nil, err
	}
	return &Block{Stmts: stmts, At: d.span(n)}, nil
}

func (d *decoder) stmt(n *yaml.Node) (Stmt, error) {
	kind, v, err := d.single(n)
	if err != nil {
		return nil, err
	}
	at := d.span(n.Content[0])
	switch kind {
	case "fn":
		return d.fn(v, at)
	case "type":
		return &TypeDecl{Name: v.Value, At: at}, nil
	case "const":
		name, ty, value, err := d.binding(v)
		if err != nil {
			return nil, err
		}
		return &ConstDecl{Name: name, Type: ty, Value: value, At: at}, nil
	case "let", "let mut":
		name, ty, value, err := d.binding(v)
		if err != nil {
			return nil, err
		}
		return &LetStmt{Mutable: kind == "let mut", Name: name, Type: ty, Value: value, At: at}, nil
	case "assign":
		fs, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		target, ok := fs["to"]
		if !ok {
			return nil, d.errorf(v, "assign needs `to`")
		}
		value, err := d.requiredExpr(v, fs, "value")
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Target: d.ident(target), Value: value, At: at}, nil
	case "return":
		rs := &ReturnStmt{At: at}
		if v.Kind == yaml.ScalarNode && (v.Value == "" || v.Tag == "!!null") {
			return rs, nil
		}
		if rs.Value, err = d.expr(v); err != nil {
			return nil, err
		}
		return rs, nil
	case "expr":
		x, err := d.expr(v)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{X: x}, nil
	case "if":
		fs, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		cond, err := d.requiredExpr(v, fs, "cond")
		if err != nil {
			return nil, err
		}
		is := &IfStmt{Cond: cond, At: at}
		if is.Then, err = d.optionalBlock(v, fs, "then"); err != nil {
			return nil, err
		}
		if els, ok := fs["else"]; ok {
			if is.Else, err = d.block(els); err != nil {
				return nil, err
			}
		}
		return is, nil
	case "while":
		fs, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		cond, err := d.requiredExpr(v, fs, "cond")
		if err != nil {
			return nil, err
		}
		body, err := d.optionalBlock(v, fs, "body")
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Cond: cond, Body: body, At: at}, nil
	case "block":
		return d.block(v)
	default:
		return nil, d.errorf(n, "unknown statement kind %q", kind)
	}
}

func (d *decoder) fn(v *yaml.Node, at diag.Span) (*FuncDecl, error) {
	fs, err := d.fields(v)
	if err != nil {
		return nil, err
	}
	fn := &FuncDecl{At: at}
	if name, ok := fs["name"]; ok {
		fn.Name = name.Value
	}
	if ps, ok := fs["params"]; ok {
		if ps.Kind != yaml.SequenceNode {
			return nil, d.errorf(ps, "params must be a list")
		}
		for _, pn := range ps.Content {
			pf, err := d.fields(pn)
			if err != nil {
				return nil, err
			}
			p := &Param{At: d.span(pn)}
			if name, ok := pf["name"]; ok {
				p.Name = name.Value
			}
			if ty, ok := pf["type"]; ok {
				p.Type = d.typeRef(ty)
			}
			fn.Params = append(fn.Params, p)
		}
	}
	if ret, ok := fs["ret"]; ok {
		fn.Ret = d.typeRef(ret)
	}
	if fn.Body, err = d.optionalBlock(v, fs, "body"); err != nil {
		return nil, err
	}
	return fn, nil
}

func (d *decoder) binding(v *yaml.Node) (string, *TypeRef, Expr, error) {
	fs, err := d.fields(v)
	if err != nil {
		return "", nil, nil, err
	}
	var name string
	if n, ok := fs["name"]; ok {
		name = n.Value
	}
	var ty *TypeRef
	if t, ok := fs["type"]; ok {
		ty = d.typeRef(t)
	}
	value, err := d.requiredExpr(v, fs, "value")
	if err != nil {
		return "", nil, nil, err
	}
	return name, ty, value, nil
}

func (d *decoder) optionalBlock(parent *yaml.Node, fs map[string]*yaml.Node, key string) (*Block, error) {
	n, ok := fs[key]
	if !ok {
		return &Block{At: d.span(parent)}, nil
	}
	return d.block(n)
}

func (d *decoder) requiredExpr(parent *yaml.Node, fs map[string]*yaml.Node, key string) (Expr, error) {
	n, ok := fs[key]
	if !ok {
		return nil, d.errorf(parent, "missing `%s`", key)
	}
	return d.expr(n)
}

func (d *decoder) typeRef(n *yaml.Node) *TypeRef {
	return &TypeRef{Path: strings.Split(n.Value, "::"), At: d.span(n)}
}

func (d *decoder) ident(n *yaml.Node) *Ident {
	return &Ident{Path: strings.Split(n.Value, "::"), At: d.span(n)}
}

func (d *decoder) expr(n *yaml.Node) (Expr, error) {
	kind, v, err := d.single(n)
	if err != nil {
		return nil, err
	}
	at := d.span(n.Content[0])
	switch kind {
	case "int":
		var x int64
		if err := v.Decode(&x); err != nil {
			return nil, d.errorf(v, "bad int: %v", err)
		}
		return &IntLit{Value: x, At: at}, nil
	case "float":
		var x float64
		if err := v.Decode(&x); err != nil {
			return nil, d.errorf(v, "bad float: %v", err)
		}
		return &FloatLit{Value: x, At: at}, nil
	case "str":
		return &StrLit{Value: v.Value, At: at}, nil
	case "bool":
		var x bool
		if err := v.Decode(&x); err != nil {
			return nil, d.errorf(v, "bad bool: %v", err)
		}
		return &BoolLit{Value: x, At: at}, nil
	case "ident":
		id := d.ident(v)
		id.At = at
		return id, nil
	case "bin":
		if v.Kind != yaml.SequenceNode || len(v.Content) != 3 {
			return nil, d.errorf(v, "bin expects [left, op, right]")
		}
		left, err := d.expr(v.Content[0])
		if err != nil {
			return nil, err
		}
		right, err := d.expr(v.Content[2])
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: v.Content[1].Value, Left: left, Right: right, At: at}, nil
	case "call":
		fs, err := d.fields(v)
		if err != nil {
			return nil, err
		}
		callee, ok := fs["fn"]
		if !ok {
			return nil, d.errorf(v, "call needs `fn`")
		}
		ce := &CallExpr{Callee: d.ident(callee), At: at}
		if args, ok := fs["args"]; ok {
			if args.Kind != yaml.SequenceNode {
				return nil, d.errorf(args, "args must be a list")
			}
			for _, a := range args.Content {
				x, err := d.expr(a)
				if err != nil {
					return nil, err
				}
				ce.Args = append(ce.Args, x)
			}
		}
		return ce, nil
	default:
		return nil, d.errorf(n, "unknown expression kind %q", kind)
	}
}
