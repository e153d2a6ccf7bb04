package fol

// A Formula is any first-order logic formula, not necessarily in a normal form.
type Formula interface {
	// String renders the formula in its canonical fully-parenthesized form.
	String() string
	// clone returns a deep copy of the formula. Rewrites that duplicate a
	// subtree under two parents copy it first, so no node is ever shared
	// between two trees.
	clone() Formula
}

// A connective is one of the four binary operators, identified by its
// concrete syntax.
type connective string

const (
	opAnd     connective = "&"
	opOr      connective = "v"
	opImplies connective = "->"
	opIff     connective = "<->"
)

// A QuantKind identifies a kind of quantifier by its concrete syntax.
type QuantKind byte

const (
	// Universal is the "A" (for all) quantifier.
	Universal QuantKind = 'A'
	// Existential is the "E" (there exists) quantifier.
	Existential QuantKind = 'E'
)

// Atom generates an atomic formula with the given symbol.
// Symbols produced by parsing are single lowercase letters; standardization
// may suffix an integer to a letter when renaming apart.
func Atom(sym string) Formula {
	return atom(sym)
}

type atom string

func (a atom) String() string { return string(a) }
func (a atom) clone() Formula { return a }

// Not generates the negation of the given formula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string { return "(- " + n[0].String() + ")" }
func (n not) clone() Formula { return not{n[0].clone()} }

// And generates the conjunction of the two given formulas.
func And(f1, f2 Formula) Formula {
	return binop{op: opAnd, left: f1, right: f2}
}

// Or generates the disjunction of the two given formulas.
func Or(f1, f2 Formula) Formula {
	return binop{op: opOr, left: f1, right: f2}
}

// Implies indicates the first formula implies the second one.
func Implies(f1, f2 Formula) Formula {
	return binop{op: opImplies, left: f1, right: f2}
}

// Iff indicates the two given formulas are equivalent.
func Iff(f1, f2 Formula) Formula {
	return binop{op: opIff, left: f1, right: f2}
}

type binop struct {
	op          connective
	left, right Formula
}

func (b binop) String() string {
	return "(" + b.left.String() + " " + string(b.op) + " " + b.right.String() + ")"
}

func (b binop) clone() Formula {
	return binop{op: b.op, left: b.left.clone(), right: b.right.clone()}
}

// ForAll generates the universal quantification of body over the variable v.
func ForAll(v string, body Formula) Formula {
	return quantifier{kind: Universal, v: v, body: body}
}

// Exists generates the existential quantification of body over the variable v.
func Exists(v string, body Formula) Formula {
	return quantifier{kind: Existential, v: v, body: body}
}

type quantifier struct {
	kind QuantKind
	v    string
	body Formula
}

func (q quantifier) String() string {
	return "(" + string(byte(q.kind)) + q.v + " " + q.body.String() + ")"
}

func (q quantifier) clone() Formula {
	return quantifier{kind: q.kind, v: q.v, body: q.body.clone()}
}

// Equal reports whether the two formulas are structurally equal: same shape,
// same operators, same symbols and same bound variables.
func Equal(f1, f2 Formula) bool {
	switch f1 := f1.(type) {
	case atom:
		f2, ok := f2.(atom)
		return ok && f1 == f2
	case not:
		f2, ok := f2.(not)
		return ok && Equal(f1[0], f2[0])
	case binop:
		f2, ok := f2.(binop)
		return ok && f1.op == f2.op && Equal(f1.left, f2.left) && Equal(f1.right, f2.right)
	case quantifier:
		f2, ok := f2.(quantifier)
		return ok && f1.kind == f2.kind && f1.v == f2.v && Equal(f1.body, f2.body)
	}
	return false
}
