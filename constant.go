// SPDX-License-Identifier: MIT
// Package: codata
//
// constant.go — the Constant record and its float64 accessors.
//
// Contract:
//   - A Constant is built once by New and never mutated; all fields are unexported.
//   - New VALIDATES and PANICS on meaningless input: tables are package data,
//     so a bad literal is a programmer error, not a runtime condition.
//   - Accessors never fail.

package codata

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Constant is one tabulated physical constant.
// The zero value is an unnamed, exact constant of value 0.
type Constant struct {
	name        string
	key         string
	unit        string
	value       float64
	uncertainty float64
}

// New builds a Constant from its published name, nominal value, standard
// uncertainty and unit. Use an empty unit for dimensionless constants.
//
// Panics if name is blank, if value or uncertainty is NaN or ±Inf, or if
// uncertainty is negative. A negative-zero uncertainty is stored as +0.
func New(name string, value, uncertainty float64, unit string) Constant {
	if strings.TrimSpace(name) == "" {
		panic("codata: New with empty name")
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		panic(fmt.Sprintf("codata: New(%q): value %v is not finite", name, value))
	}
	if math.IsNaN(uncertainty) || math.IsInf(uncertainty, 0) {
		panic(fmt.Sprintf("codata: New(%q): uncertainty %v is not finite", name, uncertainty))
	}
	if uncertainty < 0 {
		panic(fmt.Sprintf("codata: New(%q): negative uncertainty %v", name, uncertainty))
	}

	return Constant{
		name:        name,
		key:         keyOf(name),
		unit:        unit,
		value:       value,
		uncertainty: math.Abs(uncertainty), // clears the sign bit of -0
	}
}

// Name returns the published CODATA name, e.g. "electron mass".
func (c Constant) Name() string { return c.name }

// Key returns the identifier form of the name, e.g. "electron_mass" or
// "lattice_spacing_of_silicon_220".
func (c Constant) Key() string { return c.key }

// Unit returns the published unit, or "" for a dimensionless constant.
func (c Constant) Unit() string { return c.unit }

// Value returns the nominal value as float64.
func (c Constant) Value() float64 { return c.value }

// Uncertainty returns the standard uncertainty as float64.
func (c Constant) Uncertainty() float64 { return c.uncertainty }

// Precision returns the relative uncertainty as float64.
// See the package-level Precision for the exact rule.
func (c Constant) Precision() float64 { return Precision[float64](c) }

// Exact reports whether the constant carries no uncertainty, i.e. it is
// defined (speed of light) or conventional (conventional value of the
// Josephson constant).
func (c Constant) Exact() bool { return c.uncertainty == 0 }

// String renders the constant the way the CODATA tables list it:
//
//	electron mass = (9.10938356e-31 ± 1.1e-38) kg
func (c Constant) String() string {
	var b strings.Builder
	b.Grow(len(c.name) + len(c.unit) + 40)
	b.WriteString(c.name)
	b.WriteString(" = (")
	b.WriteString(strconv.FormatFloat(c.value, 'g', -1, 64))
	b.WriteString(" ± ")
	b.WriteString(strconv.FormatFloat(c.uncertainty, 'g', -1, 64))
	b.WriteByte(')')
	if c.unit != "" {
		b.WriteByte(' ')
		b.WriteString(c.unit)
	}

	return b.String()
}
