package fol

// ElimIff removes every biconditional from the formula, rewriting
// (P <-> Q) to ((P -> Q) & (Q -> P)). The pass is bottom-up and recurses
// through quantifier bodies without touching the quantifiers themselves.
func ElimIff(f Formula) Formula {
	switch f := f.(type) {
	case not:
		return not{ElimIff(f[0])}
	case quantifier:
		return quantifier{kind: f.kind, v: f.v, body: ElimIff(f.body)}
	case binop:
		left := ElimIff(f.left)
		right := ElimIff(f.right)
		if f.op == opIff {
			// Both operands appear twice; the second implication gets copies.
			return And(Implies(left, right), Implies(right.clone(), left.clone()))
		}
		return binop{op: f.op, left: left, right: right}
	}
	return f
}

// ElimImplies removes every implication from the formula, rewriting
// (P -> Q) to ((- P) v Q). It expects biconditionals to have been
// eliminated already.
func ElimImplies(f Formula) Formula {
	switch f := f.(type) {
	case not:
		return not{ElimImplies(f[0])}
	case quantifier:
		return quantifier{kind: f.kind, v: f.v, body: ElimImplies(f.body)}
	case binop:
		left := ElimImplies(f.left)
		right := ElimImplies(f.right)
		if f.op == opImplies {
			return Or(Not(left), right)
		}
		return binop{op: f.op, left: left, right: right}
	}
	return f
}

// PushNeg pushes negations inward until they apply to atoms only:
// double negations cancel, De Morgan's laws distribute a negation over a
// conjunction or disjunction, and a negated quantifier becomes the dual
// quantifier of the negated body. It expects implications and biconditionals
// to have been eliminated already. A single recursive pass suffices: each
// rewrite moves a negation past exactly one node.
func PushNeg(f Formula) Formula {
	switch f := f.(type) {
	case quantifier:
		return quantifier{kind: f.kind, v: f.v, body: PushNeg(f.body)}
	case binop:
		return binop{op: f.op, left: PushNeg(f.left), right: PushNeg(f.right)}
	case not:
		switch operand := f[0].(type) {
		case not:
			return PushNeg(operand[0])
		case binop:
			switch operand.op {
			case opAnd:
				return Or(PushNeg(not{operand.left}), PushNeg(not{operand.right}))
			case opOr:
				return And(PushNeg(not{operand.left}), PushNeg(not{operand.right}))
			}
			return not{PushNeg(operand)}
		case quantifier:
			dual := Universal
			if operand.kind == Universal {
				dual = Existential
			}
			return quantifier{kind: dual, v: operand.v, body: PushNeg(not{operand.body})}
		}
		return f
	}
	return f
}
