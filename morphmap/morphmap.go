// Package morphmap lets a model choose, per related model, the alias
// written into the "type" column of a polymorphic many-to-many relation.
//
// A model embeds CustomMorphMap, fills Aliases in its constructor and
// calls Init with itself:
//
//	type Post struct {
//		morphmap.CustomMorphMap
//		ID int
//	}
//
//	func NewPost() *Post {
//		p := &Post{}
//		p.Aliases = map[string]string{"Category": "post"}
//		p.Init(p)
//		return p
//	}
//
//	func (*Post) MorphIdentifier() string { return "Post" }
//
//	func (p *Post) Categories() (*orm.MorphToManyRelation, error) {
//		return p.MorphToMany("Category", "categoryable")
//	}
//
// Post.Categories registers "post" -> "Post" in orm.MorphMap right before
// the relation is built, so pivot rows carry "post" instead of "Post".
package morphmap

import (
	"errors"

	"github.com/mickamy/ormmorph/orm"
)

// ErrNotInitialized is returned when a relation is declared on a model
// whose constructor never called Init.
var ErrNotInitialized = errors.New("morphmap: Init was not called")

// CustomMorphMap holds a model's per-related-model morph aliases.
//
// Init must run during model construction, before any relation method.
type CustomMorphMap struct {
	// Aliases maps a related model identifier to the alias stored for
	// this model in relations to it.
	Aliases map[string]string

	// DefaultAlias is used for related models missing from Aliases.
	// Init sets it to the model's own identifier when empty.
	DefaultAlias string

	self orm.Entity
}

// Init binds the map to the concrete model and defaults DefaultAlias to
// its identifier. An explicit DefaultAlias is kept.
func (m *CustomMorphMap) Init(self orm.Entity) {
	m.self = self
	if m.DefaultAlias == "" {
		m.DefaultAlias = self.MorphIdentifier()
	}
}

// ResolveAlias returns the alias this model uses in relations to related.
func (m *CustomMorphMap) ResolveAlias(related string) string {
	if alias, ok := m.Aliases[related]; ok {
		return alias
	}
	if m.DefaultAlias == "" && m.self != nil {
		return m.self.MorphIdentifier()
	}
	return m.DefaultAlias
}

// RegisterAlias upserts ResolveAlias(related) -> this model's identifier
// into orm.MorphMap. Other entries are left as they are.
func (m *CustomMorphMap) RegisterAlias(related string) error {
	if m.self == nil {
		return ErrNotInitialized
	}
	return orm.MorphMap().Upsert(map[string]string{ //nolint:wrapcheck // pass through
		m.ResolveAlias(related): m.self.MorphIdentifier(),
	})
}

// MorphToMany registers the alias for related, then declares the relation
// with orm.MorphToMany using the same arguments.
func (m *CustomMorphMap) MorphToMany(related, name string, opts ...orm.RelationOption) (*orm.MorphToManyRelation, error) {
	if err := m.RegisterAlias(related); err != nil {
		return nil, err
	}
	return orm.MorphToMany(m.self, related, name, opts...), nil
}

// MorphedByMany registers the alias for related, then declares the inverse
// relation with orm.MorphedByMany using the same arguments.
func (m *CustomMorphMap) MorphedByMany(related, name string, opts ...orm.RelationOption) (*orm.MorphToManyRelation, error) {
	if err := m.RegisterAlias(related); err != nil {
		return nil, err
	}
	return orm.MorphedByMany(m.self, related, name, opts...), nil
}
