// Package solve inverts presumed-monotonic one-dimensional functions by
// bisection.
//
// ForAxis answers "which x in [lo, hi] gives f(x) = target?" for a function
// that rises or falls across the interval. Orientation is detected from the
// end points, so the same call serves anode-voltage searches (current rises
// with Va) and grid-voltage searches.
//
// Behavior:
//
//   - Target outside [min f, max f] saturates to the nearer bound
//     (Result.Saturated). Physically this is cutoff or saturation, not a
//     failure.
//   - Bisection stops when f(x) is within AbsTol or RelTol of the target.
//   - At most MaxIter halvings are made. A non-monotonic or degenerate f
//     returns the best estimate seen with Result.Converged == false.
//
// Complexity: O(MaxIter) evaluations of f, O(1) memory.
package solve
