package fol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boundVars returns every bound-variable name in the tree, in encounter order.
func boundVars(f Formula) []string {
	switch f := f.(type) {
	case not:
		return boundVars(f[0])
	case binop:
		return append(boundVars(f.left), boundVars(f.right)...)
	case quantifier:
		return append([]string{f.v}, boundVars(f.body)...)
	}
	return nil
}

func TestStandardize(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected string
	}{
		{name: "no clash", expr: "(Ax (Ey (x v y)))", expected: "(Ax (Ey (x v y)))"},
		{name: "nested clash", expr: "(Ax (Ex x))", expected: "(Ax (Ex0 x0))"},
		{name: "sibling clash", expr: "((Ax (x v p)) & (Ex (x & q)))", expected: "((Ax (x v p)) & (Ex0 (x0 & q)))"},
		{name: "triple clash", expr: "((Ax x) v ((Ex x) v (Ax x)))", expected: "((Ax x) v ((Ex0 x0) v (Ax1 x1)))"},
		{name: "shadowed occurrence stays", expr: "(Ax (x & (Ax x)))", expected: "(Ax (x & (Ax0 x0)))"},
		{name: "free occurrence untouched", expr: "((Ax x) & x)", expected: "((Ax x) & x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, Standardize(f).String())
		})
	}
}

func TestStandardizeUnique(t *testing.T) {
	exprs := []string{
		"((Ax x) & ((Ex x) v (Ax (x v (Ex x)))))",
		"(Ax (Ax (Ax x)))",
		"((Ay y) <-> (Ey y))",
	}
	for _, expr := range exprs {
		f, err := Parse(expr)
		require.NoError(t, err)
		vars := boundVars(Standardize(f))
		seen := make(map[string]bool)
		for _, v := range vars {
			assert.Falsef(t, seen[v], "bound variable %q appears twice in %q", v, expr)
			seen[v] = true
		}
	}
}

func TestRenameShadowing(t *testing.T) {
	// The inner Ex rebinds x: its subtree must keep its occurrences.
	f, err := Parse("(x v (Ex x))")
	require.NoError(t, err)
	renamed := rename(f, "x", "z")
	assert.Equal(t, "(z v (Ex x))", renamed.String())
}

func TestFreeVars(t *testing.T) {
	tests := []struct {
		expr string
		free []string
	}{
		{expr: "p", free: []string{"p"}},
		{expr: "(Ax x)", free: nil},
		{expr: "(Ax (x v y))", free: []string{"y"}},
		{expr: "((Ax x) & x)", free: []string{"x"}},
		{expr: "(Ax (Ey ((x & y) -> z)))", free: []string{"z"}},
		{expr: "(- (p <-> q))", free: []string{"p", "q"}},
	}
	for _, tt := range tests {
		f, err := Parse(tt.expr)
		require.NoError(t, err)
		free := FreeVars(f)
		assert.Lenf(t, free, len(tt.free), "wrong free variables for %q: %v", tt.expr, free)
		for _, v := range tt.free {
			assert.Truef(t, free[v], "%q should be free in %q", v, tt.expr)
		}
	}
}

func TestExtractQuantifiers(t *testing.T) {
	tests := []struct {
		expr   string
		quants []Quant
		matrix string
	}{
		{
			expr:   "(Ax (Ey (x & y)))",
			quants: []Quant{{Universal, "x"}, {Existential, "y"}},
			matrix: "(x & y)",
		},
		{
			expr:   "((Az p) v (Ew q))",
			quants: []Quant{{Universal, "z"}, {Existential, "w"}},
			matrix: "(p v q)",
		},
		{
			expr:   "((Ex p) & ((Ay q) v r))",
			quants: []Quant{{Existential, "x"}, {Universal, "y"}},
			matrix: "(p & (q v r))",
		},
		{
			expr:   "(- (p v q))",
			quants: nil,
			matrix: "(- (p v q))",
		},
	}
	for _, tt := range tests {
		f, err := Parse(tt.expr)
		require.NoError(t, err)
		quants, matrix := ExtractQuantifiers(f)
		assert.Equalf(t, tt.quants, quants, "wrong prefix for %q", tt.expr)
		assert.Equalf(t, tt.matrix, matrix.String(), "wrong matrix for %q", tt.expr)
		assert.Truef(t, quantifierFree(matrix), "matrix of %q still holds a quantifier", tt.expr)
	}
}

func TestBuildPrenex(t *testing.T) {
	matrix, err := Parse("(p v q)")
	require.NoError(t, err)
	f := BuildPrenex([]Quant{{Universal, "z"}, {Existential, "w"}}, matrix)
	assert.Equal(t, "(Az (Ew (p v q)))", f.String())
	assert.True(t, IsPrenex(f))

	assert.True(t, Equal(matrix, BuildPrenex(nil, matrix)))
}

func TestIsPrenex(t *testing.T) {
	tests := []struct {
		expr   string
		prenex bool
	}{
		{expr: "p", prenex: true},
		{expr: "(Ax (Ey (x v y)))", prenex: true},
		{expr: "((Ax x) v p)", prenex: false},
		{expr: "(Ax ((Ey y) & x))", prenex: false},
		{expr: "(- (Ax x))", prenex: false},
	}
	for _, tt := range tests {
		f, err := Parse(tt.expr)
		require.NoError(t, err)
		assert.Equalf(t, tt.prenex, IsPrenex(f), "wrong prenex verdict for %q", tt.expr)
	}
}
