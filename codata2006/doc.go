// Package codata2006 holds the CODATA 2006 recommended values of the
// fundamental physical constants, with the same surface as codata2014.
//
// The 2006 adjustment names magnetic quantities "mag. mom." as later
// revisions do. Later adjustments supersede these values; prefer
// codata2018 unless a result must be reproduced against 2006 data.
package codata2006
