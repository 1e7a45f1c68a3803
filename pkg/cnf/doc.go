// Package cnf holds CNF clause sets and their DIMACS exchange form.
//
// A [Formula] is the in-memory clause collection built by the embedding
// encoders. Its variable and clause counts are authoritative; the persisted
// DIMACS file is derived from it. Two persistence operations exist:
//
//   - [Formula.WriteFile] serializes everything with an accurate header.
//   - [Formula.AppendFile] adds one clause to memory and file, patching the
//     fixed-width header counts in place. Enumeration loops call this once
//     per blocking clause, so the cost per append stays constant instead of
//     rewriting the whole file.
//
// [Parse] reads a DIMACS problem back; write→parse round-trips preserve the
// clause set and counts.
package cnf
