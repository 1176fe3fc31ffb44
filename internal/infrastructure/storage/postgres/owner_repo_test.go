package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountease/internal/core/apperror"
	"accountease/internal/core/entity"
	"accountease/internal/core/id"
)

type widget struct {
	entity.Record
	Name string `db:"name" json:"name"`
}

// fakeQuerier stands in for the pool through the transaction context slot.
type fakeQuerier struct {
	execTag  pgconn.CommandTag
	execErr  error
	queryErr error

	execCount int
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execCount++
	return f.execTag, f.execErr
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, f.queryErr
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func repoOn(q Querier) (*OwnerRepo[widget], context.Context) {
	repo := NewOwnerRepo[widget](&TxManager{}, "widgets", "widget")
	ctx := context.WithValue(context.Background(), txKey{}, q)
	return repo, ctx
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

func TestOwnerRepo_InsertStoreFailure(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execErr: errors.New("connection reset")})

	w := &widget{Record: entity.NewRecord("owner-1"), Name: "gadget"}
	err := repo.Insert(ctx, w)
	assertCode(t, err, apperror.CodeRemoteOperation)
	assert.ErrorContains(t, err, "connection reset")
}

func TestOwnerRepo_InsertDuplicate(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execErr: &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "widgets_name_key",
	}})

	err := repo.Insert(ctx, &widget{Record: entity.NewRecord("owner-1"), Name: "gadget"})
	assertCode(t, err, apperror.CodeDuplicate)
}

func TestOwnerRepo_GetStoreFailure(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{queryErr: errors.New("connection reset")})

	_, err := repo.GetOwned(ctx, "owner-1", id.New())
	assertCode(t, err, apperror.CodeRemoteOperation)
}

func TestOwnerRepo_ListStoreFailure(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{queryErr: errors.New("connection reset")})

	_, err := repo.ListOwned(ctx, "owner-1")
	assertCode(t, err, apperror.CodeRemoteOperation)
}

func TestOwnerRepo_UpdateStoreFailure(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execErr: errors.New("connection reset")})

	err := repo.UpdateOwned(ctx, "owner-1", id.New(), map[string]any{"name": "renamed"})
	assertCode(t, err, apperror.CodeRemoteOperation)
}

func TestOwnerRepo_UpdateMissingRow(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execTag: pgconn.NewCommandTag("UPDATE 0")})

	err := repo.UpdateOwned(ctx, "owner-1", id.New(), map[string]any{"name": "renamed"})
	assertCode(t, err, apperror.CodeNotFound)
}

func TestOwnerRepo_UpdateRejectsUnknownColumn(t *testing.T) {
	q := &fakeQuerier{}
	repo, ctx := repoOn(q)

	err := repo.UpdateOwned(ctx, "owner-1", id.New(), map[string]any{"color": "red"})
	assertCode(t, err, apperror.CodeInvalidArgument)
	assert.Zero(t, q.execCount, "invalid patch must never reach the store")
}

func TestOwnerRepo_DeleteStoreFailure(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execErr: errors.New("connection reset")})

	err := repo.DeleteOwned(ctx, "owner-1", id.New())
	assertCode(t, err, apperror.CodeRemoteOperation)
}

func TestOwnerRepo_DeleteMissingRow(t *testing.T) {
	repo, ctx := repoOn(&fakeQuerier{execTag: pgconn.NewCommandTag("DELETE 0")})

	err := repo.DeleteOwned(ctx, "owner-1", id.New())
	assertCode(t, err, apperror.CodeNotFound)
}
