package codata

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// keyOf derives the identifier form of a published name: '.', ',' and
// brackets are dropped, '-', ' ' and '/' become '_'. A leading bracketed
// qualifier, as in "{220} lattice spacing of silicon", moves to the end so
// the key reads "lattice_spacing_of_silicon_220".
func keyOf(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "{") || strings.HasPrefix(name, "(") {
		if end := strings.IndexAny(name, "})"); end > 0 && end < len(name)-1 {
			name = strings.TrimSpace(name[end+1:]) + " " + name[:end+1]
		}
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch r {
		case '.', ',', '{', '}', '(', ')':
		case '-', ' ', '/':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// foldKey maps a published name or a key to the form Table indexes by:
// the case-folded key of the NFKC-normalised name. Names and keys of the
// same constant fold to the same string.
func foldKey(name string) string {
	// A Caser carries state; one per call keeps foldKey safe for concurrent use.
	return cases.Fold().String(keyOf(norm.NFKC.String(name)))
}
