package cnf

import "slices"

// Formula is an in-memory CNF clause set. Variable and clause counts are
// authoritative here; the persisted DIMACS file is derived state that is
// kept in sync by [WriteFile] and [AppendFile].
//
// A Formula optionally deduplicates clauses by their normalized literal set.
// Duplicates are logically redundant either way; deduplication only affects
// solver load and reported counts. Whichever behavior is picked applies to
// every encoding in the build.
type Formula struct {
	clauses []Clause
	numVars int
	dedup   bool
	seen    map[string]struct{}
}

// Option configures a Formula.
type Option func(*Formula)

// WithDedup toggles clause deduplication by normalized literal set.
func WithDedup(on bool) Option {
	return func(f *Formula) { f.dedup = on }
}

// NewFormula creates an empty formula declaring numVars variables.
// Deduplication is on by default.
func NewFormula(numVars int, opts ...Option) *Formula {
	f := &Formula{numVars: numVars, dedup: true}
	for _, opt := range opts {
		opt(f)
	}
	if f.dedup {
		f.seen = make(map[string]struct{})
	}
	return f
}

// Add appends a clause. The clause is copied, so the caller may reuse the
// backing slice. Returns ErrEmptyClause or ErrZeroLiteral for malformed
// input. Adding a duplicate to a deduplicating formula is a no-op and
// reports false; otherwise Add reports true.
func (f *Formula) Add(c Clause) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	if f.dedup {
		k := c.key()
		if _, dup := f.seen[k]; dup {
			return false, nil
		}
		f.seen[k] = struct{}{}
	}
	if mv := c.MaxVar(); mv > f.numVars {
		f.numVars = mv
	}
	f.clauses = append(f.clauses, slices.Clone(c))
	return true, nil
}

// NumVars returns the declared variable count.
func (f *Formula) NumVars() int { return f.numVars }

// Len returns the number of stored clauses.
func (f *Formula) Len() int { return len(f.clauses) }

// Clause returns the i-th clause. The returned slice must not be mutated.
func (f *Formula) Clause(i int) Clause { return f.clauses[i] }

// Clauses returns the clause set as a slice of int slices, in insertion
// order. The outer slice is fresh but the inner slices alias the stored
// clauses and must not be mutated. This is the shape solver front ends
// consume directly.
func (f *Formula) Clauses() [][]int {
	out := make([][]int, len(f.clauses))
	for i, c := range f.clauses {
		out[i] = c
	}
	return out
}
