package cnf

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrEmptyClause is returned when adding a clause with no literals.
	// An empty clause is trivially unsatisfiable and never produced by the
	// embedding encoders, so it is rejected as a caller bug.
	ErrEmptyClause = errors.New("clause has no literals")

	// ErrZeroLiteral is returned when a clause contains the literal 0,
	// which DIMACS reserves as the end-of-clause sentinel.
	ErrZeroLiteral = errors.New("clause contains the zero literal")
)

// Clause is a disjunction of signed variable literals. A negative value
// stands for the negation of the variable with the same magnitude.
type Clause []int

// Validate checks that the clause is non-empty and free of zero literals.
func (c Clause) Validate() error {
	if len(c) == 0 {
		return ErrEmptyClause
	}
	for _, lit := range c {
		if lit == 0 {
			return ErrZeroLiteral
		}
	}
	return nil
}

// MaxVar returns the largest variable magnitude referenced by the clause.
func (c Clause) MaxVar() int {
	max := 0
	for _, lit := range c {
		if lit < 0 {
			lit = -lit
		}
		if lit > max {
			max = lit
		}
	}
	return max
}

// key returns the normalized literal-set identity used for deduplication:
// the sorted literals joined by spaces. Two clauses with the same key are
// logically identical disjunctions.
func (c Clause) key() string {
	sorted := slices.Clone(c)
	slices.Sort(sorted)
	var sb strings.Builder
	for i, lit := range sorted {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(lit))
	}
	return sb.String()
}

// String renders the clause as a DIMACS line body: space-separated literals
// followed by the zero sentinel.
func (c Clause) String() string {
	var sb strings.Builder
	for _, lit := range c {
		fmt.Fprintf(&sb, "%d ", lit)
	}
	sb.WriteByte('0')
	return sb.String()
}
