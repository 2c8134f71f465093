// Package model holds the demo models. Each one embeds
// morphmap.CustomMorphMap and binds it in its constructor.
package model

import (
	"maps"

	"github.com/mickamy/ormmorph/morphmap"
	"github.com/mickamy/ormmorph/orm"
)

// Aliases configures one model's morph aliases.
type Aliases struct {
	Default string            `yaml:"default"`
	Related map[string]string `yaml:"related"`
}

func (a Aliases) apply(m *morphmap.CustomMorphMap) {
	m.DefaultAlias = a.Default
	m.Aliases = maps.Clone(a.Related)
}

type Post struct {
	morphmap.CustomMorphMap
	ID    int
	Title string
}

func NewPost(a Aliases) *Post {
	p := &Post{}
	a.apply(&p.CustomMorphMap)
	p.Init(p)
	return p
}

func (*Post) MorphIdentifier() string { return "Post" }

func (p *Post) Tags() (*orm.MorphToManyRelation, error) {
	return p.MorphToMany("Tag", "taggable", orm.WithPivotTimestamps())
}

func (p *Post) Categories() (*orm.MorphToManyRelation, error) {
	return p.MorphToMany("Category", "categoryable", orm.WithPivotTimestamps())
}

type Video struct {
	morphmap.CustomMorphMap
	ID    int
	Title string
}

func NewVideo(a Aliases) *Video {
	v := &Video{}
	a.apply(&v.CustomMorphMap)
	v.Init(v)
	return v
}

func (*Video) MorphIdentifier() string { return "Video" }

func (v *Video) Tags() (*orm.MorphToManyRelation, error) {
	return v.MorphToMany("Tag", "taggable", orm.WithPivotTimestamps())
}

func (v *Video) Categories() (*orm.MorphToManyRelation, error) {
	return v.MorphToMany("Category", "categoryable", orm.WithPivotTimestamps())
}

type Category struct {
	morphmap.CustomMorphMap
	ID   int
	Name string
}

func NewCategory(a Aliases) *Category {
	c := &Category{}
	a.apply(&c.CustomMorphMap)
	c.Init(c)
	return c
}

func (*Category) MorphIdentifier() string { return "Category" }

func (c *Category) Posts() (*orm.MorphToManyRelation, error) {
	return c.MorphedByMany("Post", "categoryable")
}

func (c *Category) Videos() (*orm.MorphToManyRelation, error) {
	return c.MorphedByMany("Video", "categoryable")
}
