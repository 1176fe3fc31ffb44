package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"accountease/internal/core/apperror"
	"accountease/internal/core/id"
)

// OwnerRepo provides common CRUD operations for owner-scoped entities.
// Every query carries an owner_id predicate; rows belonging to another
// owner are indistinguishable from missing rows.
//
// Embed this in specific repositories.
type OwnerRepo[T any] struct {
	txm        *TxManager
	tableName  string
	entityName string
	selectCols []string
}

// NewOwnerRepo creates a new owner-scoped repository.
func NewOwnerRepo[T any](txm *TxManager, tableName, entityName string) *OwnerRepo[T] {
	return &OwnerRepo[T]{
		txm:        txm,
		tableName:  tableName,
		entityName: entityName,
		selectCols: ExtractDBColumns[T](),
	}
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r *OwnerRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the active transaction or the pool.
func (r *OwnerRepo[T]) Querier(ctx context.Context) Querier {
	return r.txm.GetQuerier(ctx)
}

// Insert saves a new entity using its "db" tags.
func (r *OwnerRepo[T]) Insert(ctx context.Context, entity any) error {
	data := StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	q := r.Builder().
		Insert(r.tableName).
		SetMap(data)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.Querier(ctx).Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewDuplicate(r.entityName, pgErr.ConstraintName, "").WithCause(err)
		}
		return apperror.NewRemoteOperation("insert "+r.tableName, err)
	}
	return nil
}

func (r *OwnerRepo[T]) baseSelect(ownerID string) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.tableName).
		Where(squirrel.Eq{"owner_id": ownerID})
}

// GetOwned retrieves an entity by id within the owner's scope.
func (r *OwnerRepo[T]) GetOwned(ctx context.Context, ownerID string, entityID id.ID) (*T, error) {
	entity := new(T)

	q := r.baseSelect(ownerID).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Get(ctx, r.Querier(ctx), entity, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.entityName, entityID.String())
		}
		return nil, apperror.NewRemoteOperation("get "+r.tableName, err)
	}
	return entity, nil
}

// ListOwned retrieves all of the owner's entities matching the extra
// equality conditions, newest first. The entire matching set is returned.
func (r *OwnerRepo[T]) ListOwned(ctx context.Context, ownerID string, conds ...squirrel.Eq) ([]T, error) {
	q := r.baseSelect(ownerID).
		OrderBy("created_at DESC")
	for _, cond := range conds {
		q = q.Where(cond)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []T
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, apperror.NewRemoteOperation("list "+r.tableName, err)
	}
	return items, nil
}

// UpdateOwned applies a partial update by column name within the owner's
// scope. Identity columns are never writable.
func (r *OwnerRepo[T]) UpdateOwned(ctx context.Context, ownerID string, entityID id.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return apperror.NewInvalidArgument("no fields to update")
	}

	valid := make(map[string]bool, len(r.selectCols))
	for _, col := range r.selectCols {
		valid[col] = true
	}

	filtered := make(map[string]any, len(fields))
	for col, val := range fields {
		if col == "id" || col == "owner_id" || col == "created_at" {
			continue
		}
		if !valid[col] {
			return apperror.NewInvalidArgument("unknown column: " + col).
				WithDetail("column", col)
		}
		filtered[col] = val
	}
	if len(filtered) == 0 {
		return apperror.NewInvalidArgument("no updatable fields")
	}

	q := r.Builder().
		Update(r.tableName).
		SetMap(filtered).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"owner_id": ownerID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewRemoteOperation("update "+r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, entityID.String())
	}
	return nil
}

// DeleteOwned performs physical removal within the owner's scope.
func (r *OwnerRepo[T]) DeleteOwned(ctx context.Context, ownerID string, entityID id.ID) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"owner_id": ownerID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return apperror.NewRemoteOperation("delete "+r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.entityName, entityID.String())
	}
	return nil
}
