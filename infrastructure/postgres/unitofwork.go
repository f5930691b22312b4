package postgres

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"todoapp/domain/repositories"
	"todoapp/pkg/logger"
)

// pendingOp is one staged write. It runs inside whatever transaction is
// current when the unit of work flushes.
type pendingOp func(tx *gorm.DB) (int64, error)

// unitOfWork is the shared core behind both store-specific units: one GORM
// session, the staged write queue, the explicit transaction slot and the
// goose migration hooks.
type unitOfWork struct {
	db     *gorm.DB
	source MigrationSource

	mu      sync.Mutex
	pending []pendingOp
	tx      *transaction
	closed  bool
}

func newUnitOfWork(db *gorm.DB, source MigrationSource) *unitOfWork {
	return &unitOfWork{
		db:     db.Session(&gorm.Session{NewDB: true}),
		source: source,
	}
}

// conn returns the connection reads and flushes must use: the open explicit
// transaction when there is one, the session otherwise.
func (u *unitOfWork) conn(ctx context.Context) *gorm.DB {
	u.mu.Lock()
	tx := u.tx
	u.mu.Unlock()

	if tx != nil && !tx.finished {
		return tx.db.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}

func (u *unitOfWork) stage(op pendingOp) {
	u.mu.Lock()
	u.pending = append(u.pending, op)
	u.mu.Unlock()
}

func (u *unitOfWork) BeginTransaction(ctx context.Context) (repositories.Transaction, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.closed {
		return nil, errors.New("unit of work is closed")
	}
	if u.tx != nil && !u.tx.finished {
		return nil, errors.New("transaction already open on this unit of work")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("begin transaction: %w", tx.Error)
	}

	t := &transaction{db: tx, owner: u, savepoints: map[string]struct{}{}}
	u.tx = t
	return t, nil
}

func (u *unitOfWork) SaveChanges(ctx context.Context) (int64, error) {
	u.mu.Lock()
	ops := u.pending
	u.pending = nil
	tx := u.tx
	u.mu.Unlock()

	if len(ops) == 0 {
		return 0, nil
	}

	run := func(conn *gorm.DB) (int64, error) {
		var total int64
		for _, op := range ops {
			n, err := op(conn)
			if err != nil {
				return total, err
			}
			total += n
		}
		return total, nil
	}

	var total int64
	var err error

	if tx != nil && !tx.finished {
		// Flush into the open transaction and leave it open either way;
		// on failure the caller decides between rollback and retry, so the
		// staged work is put back for a retry.
		total, err = run(tx.db.WithContext(ctx))
	} else {
		err = u.db.WithContext(ctx).Transaction(func(conn *gorm.DB) error {
			var innerErr error
			total, innerErr = run(conn)
			return innerErr
		})
	}

	if err != nil {
		u.mu.Lock()
		u.pending = append(ops, u.pending...)
		u.mu.Unlock()

		if isConflict(err) {
			return 0, fmt.Errorf("save changes: %s: %w", err.Error(), repositories.ErrPersistenceConflict)
		}
		return 0, fmt.Errorf("save changes: %w", err)
	}

	return total, nil
}

func (u *unitOfWork) provider() (*goose.Provider, error) {
	sqlDB, err := u.db.DB()
	if err != nil {
		return nil, fmt.Errorf("underlying connection: %w", err)
	}

	fsys, err := u.source.fsys()
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	return goose.NewProvider(u.source.Dialect, sqlDB, fsys)
}

func (u *unitOfWork) PendingMigrations(ctx context.Context) ([]string, error) {
	provider, err := u.provider()
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}

	var pending []string
	for _, s := range statuses {
		if s.State == goose.StatePending {
			pending = append(pending, path.Base(s.Source.Path))
		}
	}
	return pending, nil
}

func (u *unitOfWork) Migrate(ctx context.Context) error {
	provider, err := u.provider()
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	for _, r := range results {
		logger.InfoContext(ctx, "Migration applied", "migration", path.Base(r.Source.Path))
	}
	return nil
}

// Close releases the unit. An open uncommitted transaction is discarded as
// a rollback; staged but unflushed work is dropped.
func (u *unitOfWork) Close() error {
	u.mu.Lock()
	tx := u.tx
	u.closed = true
	u.pending = nil
	u.mu.Unlock()

	if tx != nil && !tx.finished {
		return tx.Rollback()
	}
	return nil
}
