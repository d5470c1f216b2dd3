// Package codata is a read-only table of fundamental physical constants as
// recommended by the Committee on Data (CODATA) of the International Science
// Council.
//
// What:
//
//   - Constant is an immutable record: published name, unit, nominal value and
//     one-sigma standard uncertainty.
//   - Value, Uncertainty and Precision return those fields at a caller-chosen
//     floating-point width (float32, float64 or any type built on them).
//   - Table groups the constants of one CODATA adjustment and finds them by
//     published name or identifier key.
//
// The values themselves live in one package per adjustment:
//
//	codata2018/ — CODATA 2018 recommended values (exact SI defining constants)
//	codata2014/ — CODATA 2014 recommended values
//	codata2010/ — CODATA 2010 recommended values
//	codata2006/ — CODATA 2006 recommended values
//	codata2002/ — CODATA 2002 entries published under names later retired
//
// Each package exposes its constants as functions returning a Constant
// (codata2014.ElectronMass()), and its Table through Table().
//
// Widths:
//
// Literals are stored as float64. Narrower widths receive the nearest
// representable value (see Narrow); magnitudes beyond the range of float32
// saturate at ±math.MaxFloat32 so every query stays finite. A saturated
// read no longer carries the published magnitude, and neither does the
// precision derived from it; Saturated reports when that happens.
//
// Precision:
//
// Precision is the relative uncertainty |uncertainty/value|. It is never
// negative and never NaN or Inf: a nominal value of exactly zero (including
// one that underflows at the requested width) yields a precision of 0.
//
// Errors:
//
//   - ErrUnknownConstant: Lookup found no constant with the given name.
//   - ErrEmptyName: Lookup was called with a blank name.
//
// Lookup errors wrap the sentinel and name the revision once:
// codata: unknown constant "proton charge" (revision 2014).
//
// Example:
//
//	m := codata.Value[float32](codata2014.ElectronMass())
//	rel := codata.Precision[float64](codata2014.ElectronMass())
//
// Everything in this package is pure and safe for concurrent use.
//
// Source: https://physics.nist.gov/cuu/Constants/
package codata
