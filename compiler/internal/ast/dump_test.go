package ast

import "testing"

func TestDumpFile(t *testing.T) {
	f := NewFile("main.gdml",
		TypeDef("Point"),
		Const("limit", T("Int"), Int(3)),
		Fn("main", Params(P("n", T("Int"))), T("Bool"),
			LetMut("s", nil, Str("a")),
			Assign("s", Bin(Id("s"), "+", Str("b"))),
			If(Bin(Id("n"), "<", Id("limit")), Blk(Ret(Bool(true))), Blk(Do(Call("main", Int(1))))),
			While(Bool(false)),
			Ret(nil),
		),
	)
	want := "" +
		"// main.gdml\n" +
		"type Point\n" +
		"const limit: Int = 3\n" +
		"fn main(n: Int) -> Bool {\n" +
		"  let mut s = \"a\"\n" +
		"  s = (s + \"b\")\n" +
		"  if (n < limit) {\n" +
		"    return true\n" +
		"  }\n" +
		"  else {\n" +
		"    main(1)\n" +
		"  }\n" +
		"  while false {\n" +
		"  }\n" +
		"  return\n" +
		"}\n"
	if got := DumpFile(f); got != want {
		t.Fatalf("dump mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}
