// Package tuplegen generates the tuple types and the structural
// operations over them (join, split and index) for every tuple
// length up to a configured maximum.
//
// Go has no variadic type parameters, so each combination of
// operand lengths needs its own declaration: there are O(N²)
// join and split functions for a maximum length N. Lengths are
// grouped into tiers; each tier beyond the first is guarded by a
// build tag so that the larger tuple sizes cost nothing unless
// asked for.
package tuplegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

// File holds the contents of a generated source file.
type File struct {
	Name string
	Data []byte
}

// Generate returns the source files for all the tiers in cfg,
// in tier order.
func Generate(cfg Config) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	srcs := []struct {
		name string
		gen  func(g *generator, lo, hi int)
	}{
		{"tuple%d.go", genTypes},
		{"join%d.go", genJoin},
		{"split%d.go", genSplit},
		{"tuple%d_test.go", genTests},
	}
	var files []File
	lo := 0
	for i, tier := range cfg.Tiers {
		for _, src := range srcs {
			g := newGenerator(cfg.Package, cfg.tierConstraint(i))
			src.gen(g, lo, tier.Max)
			f, err := g.file(fmt.Sprintf(src.name, tier.Max))
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		}
		g := newGenerator(cfg.Package, cfg.maxConstraint(i))
		genMax(g, tier.Max)
		f, err := g.file(fmt.Sprintf("max%d.go", tier.Max))
		if err != nil {
			return nil, err
		}
		files = append(files, f)
		lo = tier.Max + 1
	}
	return files, nil
}

type generator struct {
	buf bytes.Buffer
}

func newGenerator(pkg, constraint string) *generator {
	g := &generator{}
	g.printf("// Code generated by tuplegen. DO NOT EDIT.\n\n")
	if constraint != "" {
		g.printf("//go:build %s\n\n", constraint)
	}
	g.printf("package %s\n", pkg)
	return g
}

func (g *generator) printf(f string, a ...any) {
	fmt.Fprintf(&g.buf, f, a...)
}

func (g *generator) file(name string) (File, error) {
	data, err := format.Source(g.buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("cannot format %s: %v", name, err)
	}
	return File{
		Name: name,
		Data: data,
	}, nil
}

// genTypes generates the tuple types of length lo through hi
// along with their methods.
func genTypes(g *generator, lo, hi int) {
	for n := lo; n <= hi; n++ {
		if n == 0 {
			genT0(g)
			continue
		}
		args := names("A", 0, n)
		typ := tupleType(args)
		vals := mapf("t.%s", args)

		g.printf("\n// T%d holds %s.\n", n, plural(n, "value"))
		g.printf("type T%d%s struct {\n", n, typeParams(args))
		width := len(args[n-1])
		for _, a := range args {
			g.printf("\t%-*s %s\n", width, a, a)
		}
		g.printf("}\n")

		var params []string
		for i := range n {
			params = append(params, fmt.Sprintf("a%d A%d", i, i))
		}
		g.printf("\n// MkT%d returns a T%d holding the given values.\n", n, n)
		g.printf("func MkT%d%s(%s) %s {\n", n, typeParams(args), strings.Join(params, ", "), typ)
		g.printf("\treturn %s{%s}\n}\n", typ, strings.Join(names("a", 0, n), ", "))

		results := strings.Join(args, ", ")
		if n > 1 {
			results = "(" + results + ")"
		}
		g.printf("\n// T returns the values held in t.\n")
		g.printf("func (t %s) T() %s {\n\treturn %s\n}\n", typ, results, strings.Join(vals, ", "))

		g.printf("\n// Len returns %d.\n", n)
		g.printf("func (t %s) Len() int {\n\treturn %d\n}\n", typ, n)

		g.printf("\n// Values returns the values held in t as a slice.\n")
		g.printf("func (t %s) Values() []any {\n\treturn []any{%s}\n}\n", typ, strings.Join(vals, ", "))

		for i, a := range args {
			g.printf("\n// At%d returns the value at index %d of t.\n", i, i)
			g.printf("func (t %s) At%d() %s {\n\treturn t.%s\n}\n", typ, i, a, a)
		}

		g.printf("\nfunc (t %s) isTuple() {\n}\n", typ)

		// Ptrs cannot be a method: a method of TN returning
		// TN[*A0, ...] would be an instantiation cycle.
		ptrs := tupleType(mapf("*%s", args))
		g.printf("\n// Ptrs%d returns a tuple holding pointers to each of the values in t.\n", n)
		g.printf("func Ptrs%d%s(t *%s) %s {\n\treturn %s{%s}\n}\n", n, typeParams(args), typ, ptrs, ptrs, strings.Join(mapf("&t.%s", args), ", "))
	}
}

func genT0(g *generator) {
	g.printf("\n// T0 holds no values.\ntype T0 struct{}\n")
	g.printf("\n// MkT0 returns a T0.\nfunc MkT0() T0 {\n\treturn T0{}\n}\n")
	g.printf("\n// Len returns 0.\nfunc (t T0) Len() int {\n\treturn 0\n}\n")
	g.printf("\n// Values returns an empty slice.\nfunc (t T0) Values() []any {\n\treturn []any{}\n}\n")
	g.printf("\nfunc (t T0) isTuple() {\n}\n")
	g.printf("\n// Ptrs0 returns T0{}.\nfunc Ptrs0(t *T0) T0 {\n\treturn T0{}\n}\n")
}

// genJoin generates Join_m_n for all m+n from lo to hi.
func genJoin(g *generator, lo, hi int) {
	for n := lo; n <= hi; n++ {
		for i := 0; i <= n; i++ {
			as, bs := names("A", 0, i), names("B", 0, n-i)
			all := concat(as, bs)
			vals := concat(mapf("a.%s", names("A", 0, i)), mapf("b.%s", names("A", 0, n-i)))
			g.printf("\n// Join_%d_%d returns a tuple holding the values of a followed by the values of b.\n", i, n-i)
			g.printf("func Join_%d_%d%s(a %s, b %s) %s {\n", i, n-i, typeParams(all), tupleType(as), tupleType(bs), tupleType(all))
			g.printf("\treturn %s{%s}\n}\n", tupleType(all), strings.Join(vals, ", "))
		}
	}
}

// genSplit generates Split_k_r for all k+r from lo to hi.
func genSplit(g *generator, lo, hi int) {
	for n := lo; n <= hi; n++ {
		for i := 0; i <= n; i++ {
			as, bs := names("A", 0, i), names("B", 0, n-i)
			all := concat(as, bs)
			fields := names("t.A", 0, n)
			g.printf("\n// Split_%d_%d returns a tuple holding the first %d values of t and a tuple holding the remaining %d.\n", i, n-i, i, n-i)
			g.printf("func Split_%d_%d%s(t %s) (%s, %s) {\n", i, n-i, typeParams(all), tupleType(all), tupleType(as), tupleType(bs))
			g.printf("\treturn %s{%s}, %s{%s}\n}\n", tupleType(as), strings.Join(fields[:i], ", "), tupleType(bs), strings.Join(fields[i:], ", "))
		}
	}
}

// genTests generates tests that exercise every operation
// generated for lengths lo through hi. They rely on the
// seq and checkSplit helpers defined in the package's own tests.
func genTests(g *generator, lo, hi int) {
	g.printf("\nimport (\n\t\"testing\"\n\n\t\"github.com/go-quicktest/qt\"\n)\n")

	g.printf("\nfunc TestJoin%d(t *testing.T) {\n", hi)
	for n := lo; n <= hi; n++ {
		for i := 0; i <= n; i++ {
			g.printf("\tqt.Check(t, qt.DeepEquals(Join_%d_%d(%s, %s).Values(), seq(0, %d)))\n", i, n-i, mkT(0, i), mkT(i, n), n)
		}
	}
	g.printf("}\n")

	g.printf("\nfunc TestSplit%d(t *testing.T) {\n", hi)
	for n := lo; n <= hi; n++ {
		for i := 0; i <= n; i++ {
			g.printf("\tcheckSplit(t, %d, %d)(Split_%d_%d(%s))\n", i, n, i, n-i, mkT(0, n))
		}
	}
	g.printf("}\n")

	g.printf("\nfunc TestIndex%d(t *testing.T) {\n", hi)
	for n := max(lo, 1); n <= hi; n++ {
		for i := range n {
			g.printf("\tqt.Check(t, qt.Equals(%s.At%d(), %d))\n", mkT(0, n), i, i)
		}
	}
	g.printf("}\n")
}

func genMax(g *generator, n int) {
	g.printf("\n// Max holds the largest tuple length supported by this build.\nconst Max = %d\n", n)
}

// mkT returns a call to MkTn holding the integers from lo to hi-1.
func mkT(lo, hi int) string {
	var vals []string
	for i := lo; i < hi; i++ {
		vals = append(vals, fmt.Sprint(i))
	}
	return fmt.Sprintf("MkT%d(%s)", hi-lo, strings.Join(vals, ", "))
}

// names returns the identifiers prefix+lo through prefix+(hi-1).
func names(prefix string, lo, hi int) []string {
	var ns []string
	for i := lo; i < hi; i++ {
		ns = append(ns, fmt.Sprintf("%s%d", prefix, i))
	}
	return ns
}

func tupleType(args []string) string {
	if len(args) == 0 {
		return "T0"
	}
	return fmt.Sprintf("T%d[%s]", len(args), strings.Join(args, ", "))
}

func typeParams(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return "[" + strings.Join(args, ", ") + " any]"
}

func mapf(pattern string, ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf(pattern, s)
	}
	return out
}

func concat(a, b []string) []string {
	return append(a[:len(a):len(a)], b...)
}

func plural(n int, word string) string {
	if n == 1 {
		return "a single " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
