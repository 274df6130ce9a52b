// Package noise supplies the cost-field collaborator used by tilegrid.
//
// What:
//
//   - Func is the contract: a pure function of two real coordinates returning a
//     continuous value in the native range [-1, 1].
//   - NewPerlin wraps github.com/aquilax/go-perlin as a Func.
//   - Constant builds flat fields for uniform maps and tests.
//   - Normalize maps a native value into the [0, 1] cost range.
//
// Determinism:
//
//   - A Perlin Func built from the same (alpha, beta, n, seed) returns identical
//     values for identical inputs on every platform.
//
// Concurrency:
//
//   - Funcs returned by this package only read their state after construction and
//     may be shared between goroutines.
package noise
