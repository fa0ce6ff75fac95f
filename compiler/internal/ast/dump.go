package ast

import (
	"fmt"
	"strconv"
	"strings"
)

/*** DUMP (pretty outline for CLI) ***/

func DumpFile(f *File) string {
	var b strings.Builder
	if f.Name != "" {
		fmt.Fprintf(&b, "// %s\n", f.Name)
	}
	for _, d := range f.Decls {
		dumpStmt(&b, d, 0)
	}
	return b.String()
}

func dumpStmt(b *strings.Builder, s Stmt, depth int) {
	ind := strings.Repeat("  ", depth)
	switch st := s.(type) {
	case *FuncDecl:
		fmt.Fprintf(b, "%sfn %s(", ind, st.Name)
		for i, p := range st.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s: %s", p.Name, typeString(p.Type))
		}
		b.WriteString(")")
		if st.Ret != nil {
			fmt.Fprintf(b, " -> %s", st.Ret)
		}
		b.WriteString(" ")
		dumpBlock(b, st.Body, depth)
	case *ConstDecl:
		fmt.Fprintf(b, "%sconst %s%s = %s\n", ind, st.Name, annot(st.Type), exprString(st.Value))
	case *TypeDecl:
		fmt.Fprintf(b, "%stype %s\n", ind, st.Name)
	case *LetStmt:
		kw := "let"
		if st.Mutable {
			kw = "let mut"
		}
		fmt.Fprintf(b, "%s%s %s%s = %s\n", ind, kw, st.Name, annot(st.Type), exprString(st.Value))
	case *AssignStmt:
		fmt.Fprintf(b, "%s%s = %s\n", ind, st.Target, exprString(st.Value))
	case *ReturnStmt:
		if st.Value == nil {
			fmt.Fprintf(b, "%sreturn\n", ind)
		} else {
			fmt.Fprintf(b, "%sreturn %s\n", ind, exprString(st.Value))
		}
	case *ExprStmt:
		fmt.Fprintf(b, "%s%s\n", ind, exprString(st.X))
	case *IfStmt:
		fmt.Fprintf(b, "%sif %s ", ind, exprString(st.Cond))
		dumpBlock(b, st.Then, depth)
		if st.Else != nil {
			fmt.Fprintf(b, "%selse ", ind)
			dumpBlock(b, st.Else, depth)
		}
	case *WhileStmt:
		fmt.Fprintf(b, "%swhile %s ", ind, exprString(st.Cond))
		dumpBlock(b, st.Body, depth)
	case *Block:
		b.WriteString(ind)
		dumpBlock(b, st, depth)
	default:
		fmt.Fprintf(b, "%s<stmt>\n", ind)
	}
}

func dumpBlock(b *strings.Builder, blk *Block, depth int) {
	b.WriteString("{\n")
	if blk != nil {
		for _, s := range blk.Stmts {
			dumpStmt(b, s, depth+1)
		}
	}
	fmt.Fprintf(b, "%s}\n", strings.Repeat("  ", depth))
}

func typeString(t *TypeRef) string {
	if t == nil {
		return "_"
	}
	return t.String()
}

func annot(t *TypeRef) string {
	if t == nil {
		return ""
	}
	return ": " + t.String()
}

func exprString(e Expr) string {
	switch v := e.(type) {
	case nil:
		return "<nil>"
	case *Ident:
		return v.String()
	case *IntLit:
		return strconv.FormatInt(v.Value, 10)
	case *FloatLit:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *StrLit:
		return strconv.Quote(v.Value)
	case *BoolLit:
		return strconv.FormatBool(v.Value)
	case *CallExpr:
		var parts []string
		for _, a := range v.Args {
			parts = append(parts, exprString(a))
		}
		return exprString(v.Callee) + "(" + strings.Join(parts, ", ") + ")"
	case *BinaryExpr:
		return "(" + exprString(v.Left) + " " + v.Op + " " + exprString(v.Right) + ")"
	default:
		return "<expr>"
	}
}
