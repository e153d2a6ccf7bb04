package fol

import "github.com/pkg/errors"

// maxDistribute bounds the distribution fixpoint loop. Distribution strictly
// reduces the nesting of disjunctions over conjunctions, so any formula of
// reasonable size converges long before the bound; hitting it means a rewrite
// rule is broken.
const maxDistribute = 100

// ErrNormalization is returned when CNF distribution fails to reach a
// fixpoint within its iteration bound. It signals an internal invariant
// violation, not a property of the input.
var ErrNormalization = errors.New("CNF distribution did not converge")

// Distribute applies one bottom-up pass of the distribution of disjunctions
// over conjunctions: (P v (Q & R)) becomes ((P v Q) & (P v R)) and
// ((Q & R) v P) becomes ((Q v P) & (R v P)). The shared operand is copied
// into the two new disjunctions. One pass is not always enough to reach CNF;
// use MatrixCNF to iterate to a fixpoint.
func Distribute(f Formula) Formula {
	switch f := f.(type) {
	case not:
		return not{Distribute(f[0])}
	case quantifier:
		return quantifier{kind: f.kind, v: f.v, body: Distribute(f.body)}
	case binop:
		left := Distribute(f.left)
		right := Distribute(f.right)
		if f.op == opOr {
			if r, ok := right.(binop); ok && r.op == opAnd {
				return And(Distribute(Or(left, r.left)), Distribute(Or(left.clone(), r.right)))
			}
			if l, ok := left.(binop); ok && l.op == opAnd {
				return And(Distribute(Or(l.left, right)), Distribute(Or(l.right, right.clone())))
			}
		}
		return binop{op: f.op, left: left, right: right}
	}
	return f
}

// MatrixCNF converts a quantifier-free matrix to Conjunctive Normal Form by
// repeating Distribute until the formula no longer changes. It returns
// ErrNormalization if no fixpoint is reached within maxDistribute iterations.
func MatrixCNF(m Formula) (Formula, error) {
	for i := 0; i < maxDistribute; i++ {
		next := Distribute(m)
		if Equal(m, next) {
			return next, nil
		}
		m = next
	}
	return nil, ErrNormalization
}

// IsCNF reports whether the formula is in Conjunctive Normal Form: no
// disjunction has a conjunction as an immediate operand, anywhere in the
// tree.
func IsCNF(f Formula) bool {
	switch f := f.(type) {
	case not:
		return IsCNF(f[0])
	case quantifier:
		return IsCNF(f.body)
	case binop:
		if f.op == opOr {
			if l, ok := f.left.(binop); ok && l.op == opAnd {
				return false
			}
			if r, ok := f.right.(binop); ok && r.op == opAnd {
				return false
			}
		}
		return IsCNF(f.left) && IsCNF(f.right)
	}
	return true
}
