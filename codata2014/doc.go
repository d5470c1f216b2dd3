// Package codata2014 holds the CODATA 2014 recommended values of the
// fundamental physical constants.
//
// Every constant is returned by a function named after its published
// CODATA name ("deuteron-electron mag. mom. ratio" becomes
// DeuteronElectronMagMomRatio()). Read it at the width you need:
//
//	c := codata.Value[float64](codata2014.SpeedOfLightInVacuum())
//	e := codata.Value[float32](codata2014.ElementaryCharge())
//
// Table() lists all of them in publication order and Lookup finds one by name:
//
//	g, err := codata2014.Lookup("Newtonian constant of gravitation")
//
// Derived and reciprocal constants (the "relationship" entries) are the
// independently published literals; none is computed from another.
//
// Source: https://physics.nist.gov/cuu/Constants/Table/allascii.txt (2014).
package codata2014
