// Package ops provides free-function batch and aggregate operations over
// ordered collections of vectors, plus element-wise operations and scalar
// reductions on single vectors.
//
// All functions construct new results and never mutate their inputs.
// Collections are processed strictly in order, so the first dimension
// mismatch encountered (by index) is the one reported.
//
// Reductions are package-qualified (ops.Sum, ops.Max, ops.Min, ops.Mean) so
// they cannot shadow builtins at call sites.
package ops
