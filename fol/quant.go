package fol

import "strconv"

// A Quant identifies one quantifier of a prenex prefix.
type Quant struct {
	Kind QuantKind
	Var  string
}

// Standardize renames bound variables apart so that every quantifier in the
// result binds a globally unique name. Fresh names are generated
// deterministically by suffixing an increasing integer to the clashing name
// (x, x0, x1, ...), so the whole pipeline stays a pure function of its input.
func Standardize(f Formula) Formula {
	return standardize(f, make(map[string]bool))
}

// standardize walks top-down carrying the set of names already bound by an
// enclosing or earlier quantifier. The map is shared across the whole
// traversal: a name claimed in one branch stays claimed in its siblings.
func standardize(f Formula, used map[string]bool) Formula {
	switch f := f.(type) {
	case not:
		return not{standardize(f[0], used)}
	case binop:
		return binop{op: f.op, left: standardize(f.left, used), right: standardize(f.right, used)}
	case quantifier:
		name := f.v
		for i := 0; used[name]; i++ {
			name = f.v + strconv.Itoa(i)
		}
		used[name] = true
		body := standardize(f.body, used)
		if name != f.v {
			body = rename(body, f.v, name)
		}
		return quantifier{kind: f.kind, v: name, body: body}
	}
	return f
}

// rename substitutes new for the occurrences of old that are bound by the
// quantifier the caller is renaming. An inner quantifier that rebinds old
// shadows it: that subtree is left untouched. Standardization renames apart
// before this can arise, but rename defends against it anyway.
func rename(f Formula, old, new string) Formula {
	switch f := f.(type) {
	case atom:
		if string(f) == old {
			return atom(new)
		}
		return f
	case not:
		return not{rename(f[0], old, new)}
	case binop:
		return binop{op: f.op, left: rename(f.left, old, new), right: rename(f.right, old, new)}
	case quantifier:
		if f.v == old {
			return f
		}
		return quantifier{kind: f.kind, v: f.v, body: rename(f.body, old, new)}
	}
	return f
}

// FreeVars returns the set of variables occurring free in the formula.
// Only single lowercase letters count: suffixed names produced by
// standardization are always bound.
func FreeVars(f Formula) map[string]bool {
	free := make(map[string]bool)
	collectFree(f, make(map[string]bool), free)
	return free
}

func collectFree(f Formula, bound, free map[string]bool) {
	switch f := f.(type) {
	case atom:
		sym := string(f)
		if len(sym) == 1 && sym[0] >= 'a' && sym[0] <= 'z' && !bound[sym] {
			free[sym] = true
		}
	case not:
		collectFree(f[0], bound, free)
	case binop:
		collectFree(f.left, bound, free)
		collectFree(f.right, bound, free)
	case quantifier:
		if bound[f.v] {
			collectFree(f.body, bound, free)
			return
		}
		bound[f.v] = true
		collectFree(f.body, bound, free)
		delete(bound, f.v)
	}
}

// ExtractQuantifiers splits a standardized formula into its quantifier
// prefix and its quantifier-free matrix. Quantifiers are listed in the order
// they are encountered: outer before inner, and for binary connectives the
// left operand's before the right operand's. The matrix keeps the
// connective structure with each quantifier replaced by its body.
func ExtractQuantifiers(f Formula) ([]Quant, Formula) {
	switch f := f.(type) {
	case quantifier:
		quants, matrix := ExtractQuantifiers(f.body)
		return append([]Quant{{Kind: f.kind, Var: f.v}}, quants...), matrix
	case binop:
		lq, lm := ExtractQuantifiers(f.left)
		rq, rm := ExtractQuantifiers(f.right)
		return append(lq, rq...), binop{op: f.op, left: lm, right: rm}
	case not:
		quants, matrix := ExtractQuantifiers(f[0])
		return quants, not{matrix}
	}
	return nil, f
}

// BuildPrenex wraps the matrix in the given quantifiers, innermost last, so
// the first quantifier of the list ends up outermost.
func BuildPrenex(quants []Quant, matrix Formula) Formula {
	f := matrix
	for i := len(quants) - 1; i >= 0; i-- {
		f = quantifier{kind: quants[i].Kind, v: quants[i].Var, body: f}
	}
	return f
}

// IsPrenex reports whether the formula is in prenex form: a chain of
// quantifiers, possibly empty, over a quantifier-free matrix.
func IsPrenex(f Formula) bool {
	for {
		q, ok := f.(quantifier)
		if !ok {
			return quantifierFree(f)
		}
		f = q.body
	}
}

func quantifierFree(f Formula) bool {
	switch f := f.(type) {
	case quantifier:
		return false
	case not:
		return quantifierFree(f[0])
	case binop:
		return quantifierFree(f.left) && quantifierFree(f.right)
	}
	return true
}
