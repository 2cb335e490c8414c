// Package gateway provides a generic GORM-backed persistence gateway.
//
// A Gateway is parameterized by a row type (a DTO with an int64 "id" primary key)
// and bound to one *gorm.DB, which is either the root connection or an open
// transaction. Repositories compose gateways instead of issuing raw GORM calls,
// so every table gets the same lookups, options and error translation.
//
// Example:
//
//	dishes := gateway.New[DishDTO](tx)
//	rows, err := dishes.FindByIDs(ctx, []int64{1, 2, 3})
package gateway

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// foreignKeyViolation is the SQLSTATE Postgres reports for a broken foreign key.
const foreignKeyViolation = "23503"

// ErrForeignKeyViolation is returned when a write breaks a foreign key constraint,
// for example deleting a row that other rows still reference.
var ErrForeignKeyViolation = errors.New("foreign key violation")

// Option adjusts the query a Gateway method builds.
type Option func(db *gorm.DB) *gorm.DB

// Preload eagerly loads the named association, ordered by its primary key.
func Preload(association string) Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id")
		})
	}
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
func ForUpdate() Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}

// OrderByID sorts results by primary key.
func OrderByID() Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}
}

// Omit skips the given columns or associations on writes.
// Omit("Dishes.*") stores join rows without upserting the associated records.
func Omit(columns ...string) Option {
	return func(db *gorm.DB) *gorm.DB {
		return db.Omit(columns...)
	}
}

// Gateway performs CRUD operations for rows of type T.
type Gateway[T any] struct {
	db *gorm.DB
}

// New binds a gateway for T to db.
func New[T any](db *gorm.DB) *Gateway[T] {
	return &Gateway[T]{db: db}
}

// Create inserts row and fills its generated primary key.
func (g *Gateway[T]) Create(ctx context.Context, row *T, opts ...Option) error {
	return translate(g.query(ctx, opts).Create(row).Error)
}

// FindByID returns the row with the given primary key,
// or gorm.ErrRecordNotFound when there is none.
func (g *Gateway[T]) FindByID(ctx context.Context, id int64, opts ...Option) (*T, error) {
	var row T
	if err := g.query(ctx, opts).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// FindAll returns every row. The result is empty, not nil, for an empty table.
func (g *Gateway[T]) FindAll(ctx context.Context, opts ...Option) ([]T, error) {
	rows := make([]T, 0)
	if err := g.query(ctx, opts).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// FindByIDs returns the rows whose primary key is in ids. Unknown ids are skipped.
func (g *Gateway[T]) FindByIDs(ctx context.Context, ids []int64, opts ...Option) ([]T, error) {
	rows := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return rows, nil
	}
	if err := g.query(ctx, opts).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// UpdateColumns writes the named columns of values to the row with the given
// primary key. It reports whether a row was updated.
func (g *Gateway[T]) UpdateColumns(ctx context.Context, id int64, values *T, columns ...string) (bool, error) {
	result := g.db.WithContext(ctx).
		Model(new(T)).
		Omit(clause.Associations).
		Where("id = ?", id).
		Select(columns).
		Updates(values)
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// DeleteByID removes the row with the given primary key and reports whether it existed.
func (g *Gateway[T]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := g.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return false, translate(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Exists reports whether a row matches the non-zero fields of filter.
func (g *Gateway[T]) Exists(ctx context.Context, filter *T) (bool, error) {
	count, err := g.Count(ctx, filter)
	return count > 0, err
}

// Count returns the number of rows matching the non-zero fields of filter.
// A nil filter counts every row.
func (g *Gateway[T]) Count(ctx context.Context, filter *T) (int64, error) {
	var count int64
	q := g.db.WithContext(ctx).Model(new(T))
	if filter != nil {
		q = q.Where(filter)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (g *Gateway[T]) query(ctx context.Context, opts []Option) *gorm.DB {
	q := g.db.WithContext(ctx)
	for _, opt := range opts {
		q = opt(q)
	}
	return q
}

// translate maps driver errors to gateway sentinels. Both lib/pq errors and
// GORM's translated errors are recognized.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
		return errors.Join(ErrForeignKeyViolation, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errors.Join(ErrForeignKeyViolation, err)
	}

	return err
}
