package tuple

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
)

var shapeTests = []struct {
	tags []string
	max  int
}{{
	max: 16,
}, {
	tags: []string{"tuple20"},
	max:  20,
}, {
	tags: []string{"tuple24"},
	max:  24,
}, {
	tags: []string{"tuple28"},
	max:  28,
}, {
	tags: []string{"tuple32"},
	max:  32,
}, {
	tags: []string{"tuple20", "tuple28"},
	max:  28,
}, {
	tags: []string{"tuple32", "tuple24"},
	max:  32,
}}

// TestShapes checks that exactly the operations within Max are
// declared for each combination of build tags, so that anything
// outside that range fails to compile.
func TestShapes(t *testing.T) {
	for _, test := range shapeTests {
		t.Run(fmt.Sprint(test.tags), func(t *testing.T) {
			decls, gotMax := declared(t, test.tags...)
			qt.Assert(t, qt.Equals(gotMax, test.max))

			joins := 0
			for n := 0; n <= test.max+1; n++ {
				want := n <= test.max
				qt.Check(t, qt.Equals(decls[fmt.Sprintf("T%d", n)], want), qt.Commentf("T%d", n))
				qt.Check(t, qt.Equals(decls[fmt.Sprintf("MkT%d", n)], want), qt.Commentf("MkT%d", n))
				qt.Check(t, qt.Equals(decls[fmt.Sprintf("Ptrs%d", n)], want), qt.Commentf("Ptrs%d", n))
				qt.Check(t, qt.IsFalse(decls[fmt.Sprintf("T%d.Ptrs", n)]), qt.Commentf("T%d.Ptrs", n))
				for i := 0; i <= n; i++ {
					join := fmt.Sprintf("Join_%d_%d", i, n-i)
					qt.Check(t, qt.Equals(decls[join], want), qt.Commentf("%s", join))
					if decls[join] {
						joins++
					}
					split := fmt.Sprintf("Split_%d_%d", i, n-i)
					qt.Check(t, qt.Equals(decls[split], want), qt.Commentf("%s", split))

					at := fmt.Sprintf("T%d.At%d", n, i)
					qt.Check(t, qt.Equals(decls[at], want && i < n), qt.Commentf("%s", at))
				}
			}
			qt.Check(t, qt.Equals(joins, (test.max+1)*(test.max+2)/2))
		})
	}
}

func TestShapesUpperBound(t *testing.T) {
	decls, _ := declared(t)
	qt.Check(t, qt.IsTrue(decls["Join_8_8"]))
	qt.Check(t, qt.IsFalse(decls["Join_16_1"]))
	qt.Check(t, qt.IsFalse(decls["T0.At0"]))

	decls, _ = declared(t, "tuple32")
	qt.Check(t, qt.IsTrue(decls["Join_16_1"]))
	qt.Check(t, qt.IsTrue(decls["Join_16_16"]))
	qt.Check(t, qt.IsFalse(decls["Join_16_17"]))
}

// declared returns the top level names declared by the non-test
// files of the package when built with the given tags, with methods
// named as Type.Method, and the value of the Max constant.
func declared(t *testing.T, tags ...string) (map[string]bool, int) {
	ctxt := build.Default
	ctxt.BuildTags = tags
	pkg, err := ctxt.ImportDir(".", 0)
	qt.Assert(t, qt.IsNil(err))

	fset := token.NewFileSet()
	decls := make(map[string]bool)
	var maxes []int
	for _, name := range pkg.GoFiles {
		f, err := parser.ParseFile(fset, name, nil, 0)
		qt.Assert(t, qt.IsNil(err))
		for _, d := range f.Decls {
			switch d := d.(type) {
			case *ast.FuncDecl:
				name := d.Name.Name
				if d.Recv != nil {
					name = recvName(d.Recv.List[0].Type) + "." + name
				}
				decls[name] = true
			case *ast.GenDecl:
				for _, spec := range d.Specs {
					switch spec := spec.(type) {
					case *ast.TypeSpec:
						decls[spec.Name.Name] = true
					case *ast.ValueSpec:
						if d.Tok != token.CONST || spec.Names[0].Name != "Max" {
							continue
						}
						n, err := strconv.Atoi(spec.Values[0].(*ast.BasicLit).Value)
						qt.Assert(t, qt.IsNil(err))
						maxes = append(maxes, n)
					}
				}
			}
		}
	}
	qt.Assert(t, qt.HasLen(maxes, 1), qt.Commentf("Max must be declared exactly once"))
	return decls, maxes[0]
}

func recvName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.StarExpr:
		return recvName(x.X)
	case *ast.IndexExpr:
		return recvName(x.X)
	case *ast.IndexListExpr:
		return recvName(x.X)
	}
	panic(fmt.Sprintf("unexpected receiver type %T", x))
}
