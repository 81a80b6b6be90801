// Package sim holds the error types and small helpers shared by the canesim packages.
//
// # Reading Guide
//
// A sugar run flows leaf-first through these sub-packages:
//   - sim/numeric/: rounding, interpolation and list helpers
//   - sim/steam/: the saturated-steam reference table
//   - sim/units/: one model per unit operation (extraction, heating, clarification, boilers, ethanol)
//   - sim/evaporator/: the multiple-effect evaporator recurrence and its multiplier search
//   - sim/trace/: optional recording of the candidates the search evaluated
//   - sim/pipeline/: input validation, plant configuration and the orchestrated runs
//
// Every model is a pure function of its inputs; nothing holds state between runs.
//
// # Errors
//
// The pipeline returns *ValidationError for missing or out-of-range inputs,
// *InfeasibilityError when a mass balance cannot be closed, and wraps ErrInsufficientData
// when an upstream stage leaves the evaporator feed undefined.
package sim
