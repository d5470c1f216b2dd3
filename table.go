// SPDX-License-Identifier: MIT
// Package: codata
//
// table.go — the ordered, read-only set of constants of one CODATA adjustment.
//
// Contract:
//   - NewTable panics on programmer error (unnamed constant, duplicate key).
//   - A *Table is never mutated after NewTable returns; every method is safe
//     for concurrent use.
//   - Lookup is the only fallible query; its errors wrap the package sentinels.

package codata

import (
	"fmt"
	"io"
	"strings"
)

// Table is the ordered collection of constants published in one CODATA
// adjustment.
type Table struct {
	revision  int
	constants []Constant
	index     map[string]int // foldKey(name) -> position in constants
}

// NewTable builds the table of a revision (the adjustment year) from its
// constants, kept in the given order.
//
// Panics if a constant was not built with New or if two constants share a
// key once case is folded.
func NewTable(revision int, constants ...Constant) *Table {
	t := &Table{
		revision:  revision,
		constants: make([]Constant, len(constants)),
		index:     make(map[string]int, len(constants)),
	}
	copy(t.constants, constants)

	for i, c := range t.constants {
		if c.name == "" {
			panic(fmt.Sprintf("codata: NewTable(%d): constant #%d has no name", revision, i))
		}
		k := foldKey(c.key)
		if j, dup := t.index[k]; dup {
			panic(fmt.Sprintf("codata: NewTable(%d): %q and %q share key %q",
				revision, t.constants[j].name, c.name, c.key))
		}
		t.index[k] = i
	}

	return t
}

// Revision returns the CODATA adjustment year of the table.
func (t *Table) Revision() int { return t.revision }

// Len returns the number of constants in the table.
func (t *Table) Len() int { return len(t.constants) }

// All returns the constants in table order. The slice is a copy.
func (t *Table) All() []Constant {
	out := make([]Constant, len(t.constants))
	copy(out, t.constants)

	return out
}

// Keys returns the key of every constant in table order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.constants))
	for i, c := range t.constants {
		keys[i] = c.key
	}

	return keys
}

// Lookup finds a constant by its published name ("electron mass") or its
// key ("electron_mass"). Matching ignores case.
//
// Errors: ErrEmptyName for a blank name, ErrUnknownConstant when nothing
// matches. Both carry the revision, as in
//
//	codata: unknown constant "proton charge" (revision 2014)
func (t *Table) Lookup(name string) (Constant, error) {
	if strings.TrimSpace(name) == "" {
		return Constant{}, fmt.Errorf("%w (revision %d)", ErrEmptyName, t.revision)
	}
	i, ok := t.index[foldKey(name)]
	if !ok {
		return Constant{}, fmt.Errorf("%w %q (revision %d)", ErrUnknownConstant, name, t.revision)
	}

	return t.constants[i], nil
}

// MustLookup is like Lookup but panics when the constant is missing.
// Meant for package-level initialisation with names known to exist.
func (t *Table) MustLookup(name string) Constant {
	c, err := t.Lookup(name)
	if err != nil {
		panic(err)
	}

	return c
}

// WriteTo writes one line per constant, in table order, in the form of
// Constant.String. It implements io.WriterTo.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range t.constants {
		n, err := io.WriteString(w, c.String()+"\n")
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("codata: writing %q (revision %d): %w", c.name, t.revision, err)
		}
	}

	return total, nil
}
