package orm

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/mickamy/ormmorph/internal/naming"
)

// MorphToManyRelation describes a polymorphic many-to-many relation
// between a parent entity and a related entity through a pivot table.
//
// The pivot row stores the parent key in ForeignPivotKey, the related key
// in RelatedPivotKey and MorphClass in MorphType. For an inverse relation
// (MorphedByMany) the parent is the fixed side and MorphClass identifies
// the related entity instead.
type MorphToManyRelation struct {
	Parent  Entity
	Related string // identifier of the related entity

	Name            string // morph name, e.g. "taggable"
	Table           string // pivot table, e.g. "taggables"
	MorphType       string // discriminator column, e.g. "taggable_type"
	ForeignPivotKey string // pivot column holding the parent key
	RelatedPivotKey string // pivot column holding the related key
	ParentKey       string
	RelatedKey      string
	RelationName    string
	Inverse         bool

	// MorphClass is the discriminator value written on attach and
	// filtered on by every read.
	MorphClass string

	PivotTimestamps bool
}

// RelationOption overrides one of the defaults derived by MorphToMany and
// MorphedByMany.
type RelationOption func(*relationConfig)

type relationConfig struct {
	table           string
	foreignPivotKey string
	relatedPivotKey string
	parentKey       string
	relatedKey      string
	relationName    string
	inverse         bool
	timestamps      bool
}

// WithTable sets the pivot table name.
func WithTable(table string) RelationOption {
	return func(c *relationConfig) { c.table = table }
}

// WithForeignPivotKey sets the pivot column referencing the parent.
func WithForeignPivotKey(col string) RelationOption {
	return func(c *relationConfig) { c.foreignPivotKey = col }
}

// WithRelatedPivotKey sets the pivot column referencing the related entity.
func WithRelatedPivotKey(col string) RelationOption {
	return func(c *relationConfig) { c.relatedPivotKey = col }
}

// WithParentKey sets the parent column the pivot points at (default "id").
func WithParentKey(col string) RelationOption {
	return func(c *relationConfig) { c.parentKey = col }
}

// WithRelatedKey sets the related column the pivot points at (default "id").
func WithRelatedKey(col string) RelationOption {
	return func(c *relationConfig) { c.relatedKey = col }
}

// WithRelationName names the relation (default: the morph name).
func WithRelationName(name string) RelationOption {
	return func(c *relationConfig) { c.relationName = name }
}

// WithInverse marks the relation as the inverse side.
func WithInverse(inverse bool) RelationOption {
	return func(c *relationConfig) { c.inverse = inverse }
}

// WithPivotTimestamps makes Attach stamp created_at and updated_at on
// pivot rows.
func WithPivotTimestamps() RelationOption {
	return func(c *relationConfig) { c.timestamps = true }
}

// MorphToMany declares a polymorphic many-to-many relation from parent to
// the entity identified by related, through the pivot named after name.
//
//	orm.MorphToMany(post, "Tag", "taggable")
//	// pivot "taggables" (tag_id, taggable_id, taggable_type)
//
// The discriminator is read from MorphMap at call time, so any alias for
// parent must be registered beforehand.
func MorphToMany(parent Entity, related, name string, opts ...RelationOption) *MorphToManyRelation {
	cfg := relationConfig{
		foreignPivotKey: name + "_id",
		relatedPivotKey: naming.ForeignKey(related),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return newMorphToMany(parent, related, name, cfg)
}

// MorphedByMany declares the inverse side of MorphToMany: parent is the
// entity every morphed row points at, related is the morphed entity.
//
//	orm.MorphedByMany(tag, "Post", "taggable")
//	// pivot "taggables" (tag_id, taggable_id, taggable_type = alias of Post)
func MorphedByMany(parent Entity, related, name string, opts ...RelationOption) *MorphToManyRelation {
	cfg := relationConfig{
		foreignPivotKey: naming.ForeignKey(parent.MorphIdentifier()),
		relatedPivotKey: name + "_id",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.inverse = true
	return newMorphToMany(parent, related, name, cfg)
}

func newMorphToMany(parent Entity, related, name string, cfg relationConfig) *MorphToManyRelation {
	if cfg.table == "" {
		cfg.table = pivotTableName(name)
	}
	if cfg.parentKey == "" {
		cfg.parentKey = "id"
	}
	if cfg.relatedKey == "" {
		cfg.relatedKey = "id"
	}
	if cfg.relationName == "" {
		cfg.relationName = name
	}

	morphClass := MorphClass(parent)
	if cfg.inverse {
		morphClass = MorphMap().AliasFor(related)
	}

	return &MorphToManyRelation{
		Parent:          parent,
		Related:         related,
		Name:            name,
		Table:           cfg.table,
		MorphType:       name + "_type",
		ForeignPivotKey: cfg.foreignPivotKey,
		RelatedPivotKey: cfg.relatedPivotKey,
		ParentKey:       cfg.parentKey,
		RelatedKey:      cfg.relatedKey,
		RelationName:    cfg.relationName,
		Inverse:         cfg.inverse,
		MorphClass:      morphClass,
		PivotTimestamps: cfg.timestamps,
	}
}

// pivotTableName pluralizes the last underscore-separated word of a morph
// name: "taggable" -> "taggables", "media_owner" -> "media_owners".
func pivotTableName(name string) string {
	i := strings.LastIndexByte(name, '_')
	return name[:i+1] + inflection.Plural(name[i+1:])
}
