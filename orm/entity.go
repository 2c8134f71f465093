package orm

// Entity is implemented by models that take part in polymorphic relations.
//
// MorphIdentifier must report the identifier of the concrete model type
// (for example "Post" or "blog.Post"). Embedded helpers cannot see the
// outer type, so every model implements it itself.
type Entity interface {
	MorphIdentifier() string
}

// MorphClass returns the discriminator value stored for e in polymorphic
// relations: the alias most recently registered for it in MorphMap, or
// its identifier when no alias points at it.
func MorphClass(e Entity) string {
	return MorphMap().AliasFor(e.MorphIdentifier())
}
