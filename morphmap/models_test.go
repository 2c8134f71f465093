package morphmap_test

import (
	"database/sql"

	"github.com/mickamy/ormmorph/morphmap"
	"github.com/mickamy/ormmorph/orm"
)

// Post uses "post" in relations to Category and its identifier elsewhere.
type Post struct {
	morphmap.CustomMorphMap
	ID    int
	Title string
}

func NewPost() *Post {
	p := &Post{}
	p.Aliases = map[string]string{"Category": "post"}
	p.Init(p)
	return p
}

func (*Post) MorphIdentifier() string { return "Post" }

func (p *Post) Tags() (*orm.MorphToManyRelation, error) {
	return p.MorphToMany("Tag", "taggable")
}

func (p *Post) Categories() (*orm.MorphToManyRelation, error) {
	return p.MorphToMany("Category", "categoryable")
}

// DraftPost reuses Post's relations under its own identifier.
type DraftPost struct {
	Post
}

func NewDraftPost() *DraftPost {
	d := &DraftPost{}
	d.Aliases = map[string]string{"Category": "post"}
	d.Init(d)
	return d
}

func (*DraftPost) MorphIdentifier() string { return "DraftPost" }

type Video struct {
	morphmap.CustomMorphMap
	ID    int
	Title string
}

func NewVideo() *Video {
	v := &Video{}
	v.Aliases = map[string]string{"Category": "video"}
	v.Init(v)
	return v
}

func (*Video) MorphIdentifier() string { return "Video" }

func (v *Video) Tags() (*orm.MorphToManyRelation, error) {
	return v.MorphToMany("Tag", "taggable")
}

func (v *Video) Categories() (*orm.MorphToManyRelation, error) {
	return v.MorphToMany("Category", "categoryable")
}

// Comment's map is keyed by a morph name rather than a related model, so
// every lookup falls back to the default.
type Comment struct {
	morphmap.CustomMorphMap
	ID   int
	Body string
}

func NewComment() *Comment {
	c := &Comment{}
	c.Aliases = map[string]string{"commentable": "Comment"}
	c.Init(c)
	return c
}

func (*Comment) MorphIdentifier() string { return "Comment" }

func (c *Comment) Tags() (*orm.MorphToManyRelation, error) {
	return c.MorphToMany("Tag", "taggable")
}

type Category struct {
	morphmap.CustomMorphMap
	ID   int
	Name string
}

func NewCategory() *Category {
	c := &Category{}
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

type Tag struct {
	morphmap.CustomMorphMap
	ID   int
	Name string
}

func NewTag() *Tag {
	t := &Tag{}
	t.Init(t)
	return t
}

func (*Tag) MorphIdentifier() string { return "Tag" }

func (t *Tag) Posts() (*orm.MorphToManyRelation, error) {
	return t.MorphedByMany("Post", "taggable")
}

// --- query factories ---

func scanPost(rows *sql.Rows) (*Post, error) {
	p := NewPost()
	err := rows.Scan(&p.ID, &p.Title)
	return p, err
}

func postColumnValuePairs(p **Post, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "title"}, []any{(*p).ID, (*p).Title}
	}
	return []string{"title"}, []any{(*p).Title}
}

func setPostPK(p **Post, id int64) { (*p).ID = int(id) }

func Posts(db orm.Querier) *orm.Query[*Post] {
	return orm.NewQuery[*Post](db, "posts", []string{"id", "title"}, "id", scanPost, postColumnValuePairs, setPostPK)
}

func scanVideo(rows *sql.Rows) (*Video, error) {
	v := NewVideo()
	err := rows.Scan(&v.ID, &v.Title)
	return v, err
}

func videoColumnValuePairs(v **Video, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "title"}, []any{(*v).ID, (*v).Title}
	}
	return []string{"title"}, []any{(*v).Title}
}

func setVideoPK(v **Video, id int64) { (*v).ID = int(id) }

func Videos(db orm.Querier) *orm.Query[*Video] {
	return orm.NewQuery[*Video](db, "videos", []string{"id", "title"}, "id", scanVideo, videoColumnValuePairs, setVideoPK)
}

func scanCategory(rows *sql.Rows) (*Category, error) {
	c := NewCategory()
	err := rows.Scan(&c.ID, &c.Name)
	return c, err
}

func categoryColumnValuePairs(c **Category, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"}, []any{(*c).ID, (*c).Name}
	}
	return []string{"name"}, []any{(*c).Name}
}

func setCategoryPK(c **Category, id int64) { (*c).ID = int(id) }

func Categories(db orm.Querier) *orm.Query[*Category] {
	return orm.NewQuery[*Category](db, "categories", []string{"id", "name"}, "id", scanCategory, categoryColumnValuePairs, setCategoryPK)
}

func scanTag(rows *sql.Rows) (*Tag, error) {
	t := NewTag()
	err := rows.Scan(&t.ID, &t.Name)
	return t, err
}

func tagColumnValuePairs(t **Tag, includesPK bool) ([]string, []any) {
	if includesPK {
		return []string{"id", "name"}, []any{(*t).ID, (*t).Name}
	}
	return []string{"name"}, []any{(*t).Name}
}

func setTagPK(t **Tag, id int64) { (*t).ID = int(id) }

func Tags(db orm.Querier) *orm.Query[*Tag] {
	return orm.NewQuery[*Tag](db, "tags", []string{"id", "name"}, "id", scanTag, tagColumnValuePairs, setTagPK)
}
