package orm

import (
	"github.com/jinzhu/inflection"

	"github.com/mickamy/ormmorph/internal/naming"
)

// TableNamer can be implemented by models to override the derived table
// name.
type TableNamer interface {
	TableName() string
}

// ResolveTableName returns the table name for e: its TableName when it
// implements TableNamer, otherwise the pluralized snake_case base of its
// morph identifier ("blog.Post" -> "posts").
func ResolveTableName(e Entity) string {
	if tn, ok := e.(TableNamer); ok {
		return tn.TableName()
	}
	return inflection.Plural(naming.CamelToSnake(naming.BaseName(e.MorphIdentifier())))
}
