package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

func TestSaveChangesWithNothingStaged(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestSaveChangesReportsConflict(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	require.NoError(t, uow.Tags().Add(ctx, &models.Tag{Title: "urgent"}))
	_, err := uow.SaveChanges(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.Tags().Add(ctx, &models.Tag{Title: "urgent"}))
	_, err = uow.SaveChanges(ctx)
	assert.ErrorIs(t, err, repositories.ErrPersistenceConflict)

	// The duplicate stays staged for the caller to decide on; only the one
	// committed row exists.
	tags, err := uow.Tags().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestSaveChangesAutoTransactionRollsBackAllStagedWork(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	require.NoError(t, uow.Tags().Add(ctx, &models.Tag{Title: "home"}))
	_, err := uow.SaveChanges(ctx)
	require.NoError(t, err)

	// One good insert plus one conflicting insert in the same flush: the
	// whole batch rolls back.
	require.NoError(t, uow.Tags().Add(ctx, &models.Tag{Title: "work"}))
	require.NoError(t, uow.Tags().Add(ctx, &models.Tag{Title: "home"}))
	_, err = uow.SaveChanges(ctx)
	require.ErrorIs(t, err, repositories.ErrPersistenceConflict)

	tags, err := uow.Tags().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}

func TestExplicitTransactionCommit(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	require.NoError(t, uow.Migrate(ctx))

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.TodoLists().Add(ctx, &models.TodoList{Title: "In tx", UserID: "user-1"}))
	affected, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	require.NoError(t, tx.Commit())
	require.NoError(t, uow.Close())

	// Visible through a fresh unit after the commit.
	verify := NewDataUnitOfWork(db, appTestMigrations())
	defer verify.Close()
	lists, err := verify.TodoLists().GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, lists, 1)
}

func TestExplicitTransactionRollbackDiscardsFlushedWork(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	require.NoError(t, uow.Migrate(ctx))

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.TodoLists().Add(ctx, &models.TodoList{Title: "Doomed", UserID: "user-1"}))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())
	require.NoError(t, uow.Close())

	verify := NewDataUnitOfWork(db, appTestMigrations())
	defer verify.Close()
	lists, err := verify.TodoLists().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestSavepointRollbackKeepsEarlierWork(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	require.NoError(t, uow.Migrate(ctx))

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.TodoLists().Add(ctx, &models.TodoList{Title: "Kept", UserID: "user-1"}))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.Savepoint("mid"))

	require.NoError(t, uow.TodoLists().Add(ctx, &models.TodoList{Title: "Undone", UserID: "user-1"}))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.RollbackTo("mid"))
	require.NoError(t, tx.Commit())
	require.NoError(t, uow.Close())

	verify := NewDataUnitOfWork(db, appTestMigrations())
	defer verify.Close()
	lists, err := verify.TodoLists().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, "Kept", lists[0].Title)
}

func TestSavepointNameRules(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)
	defer tx.Rollback()

	assert.ErrorIs(t, tx.Savepoint(""), repositories.ErrInvalidArgument)

	require.NoError(t, tx.Savepoint("first"))
	assert.ErrorIs(t, tx.Savepoint("first"), repositories.ErrInvalidArgument)

	assert.ErrorIs(t, tx.RollbackTo("never declared"), repositories.ErrInvalidArgument)
}

func TestRollbackAfterCommitFails(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	assert.EqualError(t, tx.Rollback(), "rollback after commit")
}

func TestBeginTransactionWhileOneIsOpen(t *testing.T) {
	ctx := context.Background()
	uow := newTestDataUow(t)

	tx, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	_, err = uow.BeginTransaction(ctx)
	assert.Error(t, err)

	require.NoError(t, tx.Rollback())

	// A finished transaction frees the slot.
	tx2, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)
	require.NoError(t, tx2.Rollback())
}

func TestCloseRollsBackOpenTransaction(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	require.NoError(t, uow.Migrate(ctx))

	_, err := uow.BeginTransaction(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.TodoLists().Add(ctx, &models.TodoList{Title: "Dropped", UserID: "user-1"}))
	_, err = uow.SaveChanges(ctx)
	require.NoError(t, err)

	require.NoError(t, uow.Close())

	verify := NewDataUnitOfWork(db, appTestMigrations())
	defer verify.Close()
	lists, err := verify.TodoLists().GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)

	_, err = uow.BeginTransaction(ctx)
	assert.Error(t, err)
}

func TestPendingMigrationsDrainAfterMigrate(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	uow := NewDataUnitOfWork(db, appTestMigrations())
	defer uow.Close()

	pending, err := uow.PendingMigrations(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	require.NoError(t, uow.Migrate(ctx))

	pending, err = uow.PendingMigrations(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
