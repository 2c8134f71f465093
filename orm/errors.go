package orm

import "errors"

// ErrNotFound is returned when a query expects exactly one row but finds none.
var ErrNotFound = errors.New("orm: not found")

// ErrInvalidMorphAlias is returned when a morph map entry has an empty
// alias or an empty entity identifier.
var ErrInvalidMorphAlias = errors.New("orm: invalid morph alias")

// ErrEmptyPivotKey is returned by pivot operations when the parent key
// value is nil.
var ErrEmptyPivotKey = errors.New("orm: empty pivot key")
