// Package sweep samples a material model over evenly spaced
// temperature and time grids.
//
// A [Span] is a restartable generator of N evenly spaced values; the
// sweep functions map a [material.Model] over it and collect labelled
// [Series] of (x, y) points ready for any plotting sink:
//
//   - [Temperature]: k(T) at elapsed time zero
//   - [Time]: k(t) at a fixed temperature
//   - [MultiTemperature]: one time series per temperature, evaluated
//     concurrently since the samples share no state
package sweep
