// Package codata2018 holds the CODATA 2018 recommended values of the
// fundamental physical constants, the first adjustment made after the
// 2019 redefinition of the SI.
//
// The Planck constant, the elementary charge, the Boltzmann constant and
// the Avogadro constant are exact, and so is every constant derived only
// from them:
//
//	codata2018.ElementaryCharge().Exact()              // true
//	codata2018.ElectronVoltJouleRelationship().Exact() // true
//
// The vacuum permeability and permittivity, exact in earlier tables, now
// carry an uncertainty.
//
// 2018 renames several entries: "Planck constant over 2 pi" became
// "reduced Planck constant", "mag. constant" became "vacuum mag.
// permeability", the "over 2 pi" gyromagnetic ratios became "in MHz/T",
// and "{220} lattice spacing of silicon" became "lattice spacing of ideal
// Si (220)". Lookup only knows the 2018 names.
//
// Source: https://physics.nist.gov/cuu/Constants/Table/allascii.txt (2018).
package codata2018
