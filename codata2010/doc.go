// Package codata2010 holds the CODATA 2010 recommended values of the
// fundamental physical constants, with the same surface as codata2014.
//
// The 2010 and 2014 tables list the same quantities under the same names,
// so code can switch between the two by changing the import.
//
// Source: https://physics.nist.gov/cuu/Constants/Table/allascii.txt (2010).
package codata2010
