// Package sat adapts external SAT solving engines behind a single Engine
// interface with a uniform typed result: SAT with a model, UNSAT with an
// optional core, TIMEOUT, or ERROR.
//
// Two engines are provided:
//
//   - [Gophersat]: the crillab/gophersat CDCL solver. No cooperative
//     cancellation, so deadlines are enforced by abandoning the worker
//     goroutine and dropping its result channel.
//   - [Gini]: the go-air/gini solver. Deadlines use its own cancellable
//     solve handle; assumption literals enable UNSAT-core extraction.
//
// Deadlines come from the context. A context that is already expired yields
// TIMEOUT without starting the engine, so a zero deadline can never be
// reported as SAT or UNSAT. Engine faults surface as ERROR with the detail
// preserved; they are never reinterpreted as UNSAT.
package sat
