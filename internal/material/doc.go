// Package material computes the spring constant of a metal coil as a
// closed-form function of temperature and elapsed time.
//
// A [Model] is built once from a validated [Parameters] set and is
// immutable afterwards. Every operation is a pure function:
//
//   - [Model.YoungsModulus]: piecewise stiffness E(T), with quadratic
//     stiffening below 0 °C
//   - [Model.Length], [Model.Area]: linear thermal expansion
//   - [Model.SpringConstant]: k = E·A/L at a given temperature
//   - [Model.SpringConstantAt]: k with exponential time degradation
//
// # Valid temperature domain
//
// The expansion law 1 + alpha·(T−T0) must stay positive; temperatures
// at or below [Model.MinTemperature] imply a non-positive physical
// length. [Model.Evaluate] reports this as a [DomainError]; the plain
// accessors assume the caller stays inside the domain.
//
// # Discontinuity at 0 °C
//
// The sub-zero stiffening factor 1 + gamma·T² applies only for
// strictly negative T, so E(T) jumps at T = 0. This is intentional:
// the model describes a regime change, not a smooth curve.
package material
