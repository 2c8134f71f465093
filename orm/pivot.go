package orm

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// JoinPair holds a parent–related key pair read from a pivot table.
type JoinPair[S, T comparable] struct {
	Source S
	Target T
}

// Attach inserts one pivot row per related key, all pointing at parentID
// and tagged with the relation's MorphClass.
func (r *MorphToManyRelation) Attach(ctx context.Context, db Querier, parentID any, relatedIDs ...any) error {
	if parentID == nil {
		return ErrEmptyPivotKey
	}
	if len(relatedIDs) == 0 {
		return nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	cols := []string{qi(r.ForeignPivotKey), qi(r.RelatedPivotKey), qi(r.MorphType)}
	if r.PivotTimestamps {
		cols = append(cols, qi("created_at"), qi("updated_at"))
	}

	b := sq.Insert(qi(r.Table)).Columns(cols...).PlaceholderFormat(placeholderFormat(d))
	ts := now(ctx)
	for _, id := range relatedIDs {
		vals := []any{parentID, id, r.MorphClass}
		if r.PivotTimestamps {
			vals = append(vals, ts, ts)
		}
		b = b.Values(vals...)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("orm: build attach for %s: %w", r.RelationName, err)
	}
	_, err = db.ExecContext(ctx, query, args...)
	return err //nolint:wrapcheck // pass through
}

// Detach removes the pivot rows linking parentID to relatedIDs. With no
// relatedIDs every row of parentID is removed. Rows written under another
// discriminator are never touched. It returns the number of deleted rows.
func (r *MorphToManyRelation) Detach(ctx context.Context, db Querier, parentID any, relatedIDs ...any) (int64, error) {
	if parentID == nil {
		return 0, ErrEmptyPivotKey
	}

	d := db.dialect()
	b := sq.Delete(d.QuoteIdent(r.Table)).
		Where(r.ownRows(d, parentID)).
		PlaceholderFormat(placeholderFormat(d))
	if len(relatedIDs) > 0 {
		b = b.Where(sq.Eq{d.QuoteIdent(r.RelatedPivotKey): relatedIDs})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("orm: build detach for %s: %w", r.RelationName, err)
	}
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err //nolint:wrapcheck // pass through
	}
	return res.RowsAffected() //nolint:wrapcheck // pass through
}

// ownRows matches pivot rows of parentID written by this relation.
func (r *MorphToManyRelation) ownRows(d Dialect, parentID any) sq.Eq {
	return sq.Eq{
		d.QuoteIdent(r.ForeignPivotKey): parentID,
		d.QuoteIdent(r.MorphType):       r.MorphClass,
	}
}

// QueryMorphPivot reads (parent, related) key pairs from the relation's
// pivot table for the given parents, restricted to the relation's
// MorphClass.
func QueryMorphPivot[S, T comparable](
	ctx context.Context, db Querier, r *MorphToManyRelation, parentIDs []S,
) ([]JoinPair[S, T], error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	d := db.dialect()
	qi := d.QuoteIdent

	query, args, err := sq.Select(qi(r.ForeignPivotKey), qi(r.RelatedPivotKey)).
		From(qi(r.Table)).
		Where(sq.Eq{
			qi(r.ForeignPivotKey): parentIDs,
			qi(r.MorphType):       r.MorphClass,
		}).
		PlaceholderFormat(placeholderFormat(d)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("orm: build pivot select for %s: %w", r.RelationName, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()

	var pairs []JoinPair[S, T]
	for rows.Next() {
		var p JoinPair[S, T]
		if err := rows.Scan(&p.Source, &p.Target); err != nil {
			return nil, err //nolint:wrapcheck // pass through
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err() //nolint:wrapcheck // pass through
}

// RelatedIDs returns the related keys attached to parentID, in pivot order.
func RelatedIDs[S, T comparable](ctx context.Context, db Querier, r *MorphToManyRelation, parentID S) ([]T, error) {
	pairs, err := QueryMorphPivot[S, T](ctx, db, r, []S{parentID})
	if err != nil {
		return nil, err
	}
	return UniqueTargets(pairs), nil
}

// Sync makes the related keys of parentID exactly relatedIDs: missing
// rows are attached, extra rows detached. Callers wanting atomicity pass
// a *Tx.
func Sync[S, T comparable](ctx context.Context, db Querier, r *MorphToManyRelation, parentID S, relatedIDs ...T) error {
	current, err := RelatedIDs[S, T](ctx, db, r, parentID)
	if err != nil {
		return err
	}

	want := make(map[T]struct{}, len(relatedIDs))
	for _, id := range relatedIDs {
		want[id] = struct{}{}
	}
	have := make(map[T]struct{}, len(current))
	var detach []any
	for _, id := range current {
		have[id] = struct{}{}
		if _, ok := want[id]; !ok {
			detach = append(detach, id)
		}
	}
	var attach []any
	for _, id := range relatedIDs {
		if _, ok := have[id]; !ok {
			attach = append(attach, id)
			have[id] = struct{}{}
		}
	}

	if len(detach) > 0 {
		if _, err := r.Detach(ctx, db, parentID, detach...); err != nil {
			return err
		}
	}
	return r.Attach(ctx, db, parentID, attach...)
}

// CountRelated returns the number of pivot rows attached to parentID.
func (r *MorphToManyRelation) CountRelated(ctx context.Context, db Querier, parentID any) (int64, error) {
	d := db.dialect()
	query, args, err := sq.Select("COUNT(*)").
		From(d.QuoteIdent(r.Table)).
		Where(r.ownRows(d, parentID)).
		PlaceholderFormat(placeholderFormat(d)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("orm: build pivot count for %s: %w", r.RelationName, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, err //nolint:wrapcheck // pass through
	}
	defer func() { _ = rows.Close() }()
	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err //nolint:wrapcheck // pass through
		}
	}
	return n, rows.Err() //nolint:wrapcheck // pass through
}

// LoadRelated returns the related rows attached to parentID. q selects
// from the related table; its existing conditions are kept.
func LoadRelated[T any, K comparable](ctx context.Context, q *Query[T], r *MorphToManyRelation, parentID K) ([]T, error) {
	ids, err := RelatedIDs[K, K](ctx, q.db, r, parentID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return q.WhereIn(r.RelatedKey, args...).All(ctx)
}

// UniqueTargets extracts deduplicated target values from a slice of JoinPair.
func UniqueTargets[S, T comparable](pairs []JoinPair[S, T]) []T {
	seen := make(map[T]struct{}, len(pairs))
	result := make([]T, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.Target]; !ok {
			seen[p.Target] = struct{}{}
			result = append(result, p.Target)
		}
	}
	return result
}

// GroupBySource groups JoinPair values by source key into a map[S][]T.
func GroupBySource[S, T comparable](pairs []JoinPair[S, T]) map[S][]T {
	m := make(map[S][]T)
	for _, p := range pairs {
		m[p.Source] = append(m[p.Source], p.Target)
	}
	return m
}
