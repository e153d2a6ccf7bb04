package fol

import (
	"fmt"
	"regexp"
	"strings"
)

// A SyntaxError is returned by Parse when its input does not match the
// formula grammar. Input holds the substring that could not be parsed.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid expression %q", e.Input)
}

var quantPrefix = regexp.MustCompile(`^([AE])([a-z])\s+(.+)$`)

// operator classes from lowest to highest precedence.
var precClasses = [][]string{{"<->"}, {"->"}, {"v"}, {"&"}}

// Parse parses the formula written in the given string.
// It returns the corresponding Formula, or a *SyntaxError if the string does
// not match the grammar:
//
// F ::= atom | (- F) | (F & F) | (F v F) | (F -> F) | (F <-> F) | (Ax F) | (Ex F)
//
// where atom and the quantified variable x are single lowercase letters.
// A top-level binary operator is searched by precedence class, from lowest
// (<->) to highest (&), scanning right to left; the rightmost operator of the
// lowest class splits the string, which groups repeated operators of one
// class to the left.
func Parse(text string) (Formula, error) {
	expr := strings.TrimSpace(text)
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") && wrapped(expr) {
		return Parse(expr[1 : len(expr)-1])
	}
	if m := quantPrefix.FindStringSubmatch(expr); m != nil {
		body, err := Parse(m[3])
		if err != nil {
			return nil, err
		}
		if m[1] == "A" {
			return ForAll(m[2], body), nil
		}
		return Exists(m[2], body), nil
	}
	for _, ops := range precClasses {
		depth := 0
		for i := len(expr) - 1; i >= 0; i-- {
			switch expr[i] {
			case ')':
				depth++
			case '(':
				depth--
			}
			if depth != 0 {
				continue
			}
			for _, op := range ops {
				if !strings.HasPrefix(expr[i:], op) {
					continue
				}
				left, err := Parse(expr[:i])
				if err != nil {
					return nil, err
				}
				right, err := Parse(expr[i+len(op):])
				if err != nil {
					return nil, err
				}
				return binop{op: connective(op), left: left, right: right}, nil
			}
		}
	}
	if strings.HasPrefix(expr, "- ") {
		operand, err := Parse(expr[2:])
		if err != nil {
			return nil, err
		}
		return Not(operand), nil
	}
	if len(expr) == 1 && expr[0] >= 'a' && expr[0] <= 'z' {
		return Atom(expr), nil
	}
	return nil, &SyntaxError{Input: expr}
}

// wrapped reports whether the outermost parenthesis pair of expr encloses the
// whole string, i.e. the nesting depth never drops below zero inside it.
func wrapped(expr string) bool {
	depth := 0
	for i := 1; i < len(expr)-1; i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
