package codata

import "errors"

var (
	// ErrUnknownConstant indicates a lookup name matched no constant of the table.
	ErrUnknownConstant = errors.New("codata: unknown constant")
	// ErrEmptyName indicates a lookup with an empty or blank name.
	ErrEmptyName = errors.New("codata: empty constant name")
)
