// Package fol converts first-order logic formulas to Prenex Conjunctive
// Normal Form.
//
// A formula in PCNF has all its quantifiers gathered at the front, in the
// relative order they appeared in the original formula, followed by a
// quantifier-free matrix in Conjunctive Normal Form.
//
// Formulas are written in a fully-parenthesized notation where atoms are
// single lowercase letters and every operator carries its own pair of
// parentheses:
//
// (- F)         negation
// (F & F)       conjunction
// (F v F)       disjunction
// (F -> F)      implication
// (F <-> F)     biconditional
// (Ax F)        universal quantification over x
// (Ex F)        existential quantification over x
//
// For example, the formula:
//
// (Ay ((p v q) <-> r))
//
// converts, via biconditional and implication elimination, De Morgan
// rewriting and distribution of disjunctions over conjunctions, to:
//
// (Ay ((((- p) v r) & ((- q) v r)) & ((- r) v (p v q))))
//
// Atoms stand for constants or variables; the two are not distinguished
// syntactically, a letter is a variable exactly when a quantifier binds it.
// Bound variables are renamed apart before quantifiers are extracted, so no
// rewrite can capture a variable under the wrong binder.
//
// The package performs no satisfiability checking and no Skolemization:
// existential quantifiers survive into the prenex prefix.
package fol
