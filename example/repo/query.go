package repo

import (
	"database/sql"

	"github.com/mickamy/ormmorph/example/model"
	"github.com/mickamy/ormmorph/orm"
)

// Factories hand-written in the shape ormgen generates.

func titledColumns(includesPK bool, id int, title string) ([]string, []any) {
	if includesPK {
		return []string{"id", "title"}, []any{id, title}
	}
	return []string{"title"}, []any{title}
}

func posts(db orm.Querier, a model.Aliases) *orm.Query[*model.Post] {
	return orm.NewQuery[*model.Post](db, orm.ResolveTableName(&model.Post{}), []string{"id", "title"}, "id",
		func(rows *sql.Rows) (*model.Post, error) {
			p := model.NewPost(a)
			err := rows.Scan(&p.ID, &p.Title)
			return p, err
		},
		func(p **model.Post, includesPK bool) ([]string, []any) {
			return titledColumns(includesPK, (*p).ID, (*p).Title)
		},
		func(p **model.Post, id int64) { (*p).ID = int(id) },
	)
}

func videos(db orm.Querier, a model.Aliases) *orm.Query[*model.Video] {
	return orm.NewQuery[*model.Video](db, orm.ResolveTableName(&model.Video{}), []string{"id", "title"}, "id",
		func(rows *sql.Rows) (*model.Video, error) {
			v := model.NewVideo(a)
			err := rows.Scan(&v.ID, &v.Title)
			return v, err
		},
		func(v **model.Video, includesPK bool) ([]string, []any) {
			return titledColumns(includesPK, (*v).ID, (*v).Title)
		},
		func(v **model.Video, id int64) { (*v).ID = int(id) },
	)
}

func categories(db orm.Querier, a model.Aliases) *orm.Query[*model.Category] {
	return orm.NewQuery[*model.Category](db, orm.ResolveTableName(&model.Category{}), []string{"id", "name"}, "id",
		func(rows *sql.Rows) (*model.Category, error) {
			c := model.NewCategory(a)
			err := rows.Scan(&c.ID, &c.Name)
			return c, err
		},
		func(c **model.Category, includesPK bool) ([]string, []any) {
			if includesPK {
				return []string{"id", "name"}, []any{(*c).ID, (*c).Name}
			}
			return []string{"name"}, []any{(*c).Name}
		},
		func(c **model.Category, id int64) { (*c).ID = int(id) },
	)
}
