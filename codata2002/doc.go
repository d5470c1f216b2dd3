// Package codata2002 holds the CODATA 2002 entries whose published names
// were retired by later adjustments ("magn. moment", "gyromagn. ratio",
// "hyperpolarizablity", "Wien displacement law constant").
//
// The names are kept exactly as published, misspellings included, so that
// data keyed by 2002 names can still be resolved through Lookup.
package codata2002
