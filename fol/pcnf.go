package fol

// defaultAtom replaces a matrix that vanished during extraction. This can
// only happen when PCNF is handed a nil formula, which no parse produces.
const defaultAtom = "a"

// PCNF converts the formula to Prenex Conjunctive Normal Form:
// biconditionals and implications are eliminated, negations pushed down to
// atoms, bound variables renamed apart, quantifiers extracted to a prefix
// preserving their relative order, and the remaining matrix distributed into
// CNF. The only possible error is ErrNormalization, which signals an
// internal bug in the distribution rules rather than a malformed input.
func PCNF(f Formula) (Formula, error) {
	f = ElimIff(f)
	f = ElimImplies(f)
	f = PushNeg(f)
	f = Standardize(f)
	quants, matrix := ExtractQuantifiers(f)
	if matrix == nil {
		matrix = Atom(defaultAtom)
	}
	matrix, err := MatrixCNF(matrix)
	if err != nil {
		return nil, err
	}
	return BuildPrenex(quants, matrix), nil
}

// ConvertString parses the formula written in text, converts it to PCNF and
// renders the result. It returns a *SyntaxError if text does not match the
// grammar.
func ConvertString(text string) (string, error) {
	f, err := Parse(text)
	if err != nil {
		return "", err
	}
	pcnf, err := PCNF(f)
	if err != nil {
		return "", err
	}
	return pcnf.String(), nil
}
