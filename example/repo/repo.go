package repo

import (
	"context"
	"fmt"

	"github.com/mickamy/ormmorph/example/model"
	"github.com/mickamy/ormmorph/orm"
)

// Repository creates demo models and links them through their polymorphic
// category relations.
type Repository struct {
	db      orm.Querier
	aliases map[string]model.Aliases
}

// New returns a Repository whose models are built with the given
// per-model aliases, keyed by morph identifier.
func New(db orm.Querier, aliases map[string]model.Aliases) *Repository {
	return &Repository{db: db, aliases: aliases}
}

func (r *Repository) CreatePost(ctx context.Context, title string) (*model.Post, error) {
	p := model.NewPost(r.aliases["Post"])
	p.Title = title
	if err := posts(r.db, r.aliases["Post"]).Create(ctx, &p); err != nil {
		return nil, fmt.Errorf("create post %q: %w", title, err)
	}
	return p, nil
}

func (r *Repository) CreateVideo(ctx context.Context, title string) (*model.Video, error) {
	v := model.NewVideo(r.aliases["Video"])
	v.Title = title
	if err := videos(r.db, r.aliases["Video"]).Create(ctx, &v); err != nil {
		return nil, fmt.Errorf("create video %q: %w", title, err)
	}
	return v, nil
}

func (r *Repository) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	c := model.NewCategory(r.aliases["Category"])
	c.Name = name
	if err := categories(r.db, r.aliases["Category"]).Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create category %q: %w", name, err)
	}
	return c, nil
}

// Categorize attaches a post or video to categories.
func (r *Repository) Categorize(ctx context.Context, owner interface {
	orm.Entity
	Categories() (*orm.MorphToManyRelation, error)
}, ownerID int, categoryIDs ...int) error {
	rel, err := owner.Categories()
	if err != nil {
		return err
	}
	return orm.Sync(ctx, r.db, rel, ownerID, categoryIDs...)
}

// CategoryPosts loads the posts in category c.
func (r *Repository) CategoryPosts(ctx context.Context, c *model.Category) ([]*model.Post, error) {
	rel, err := c.Posts()
	if err != nil {
		return nil, err
	}
	return orm.LoadRelated(ctx, posts(r.db, r.aliases["Post"]).OrderBy("id"), rel, c.ID)
}

// CategoryVideos loads the videos in category c.
func (r *Repository) CategoryVideos(ctx context.Context, c *model.Category) ([]*model.Video, error) {
	rel, err := c.Videos()
	if err != nil {
		return nil, err
	}
	return orm.LoadRelated(ctx, videos(r.db, r.aliases["Video"]).OrderBy("id"), rel, c.ID)
}
