package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"todoapp/domain/repositories"
)

// transaction wraps one explicit GORM transaction. Savepoint names must be
// unique within the transaction; rollback after commit is an error.
type transaction struct {
	db         *gorm.DB
	owner      *unitOfWork
	savepoints map[string]struct{}
	committed  bool
	finished   bool
}

func (t *transaction) Savepoint(name string) error {
	if name == "" {
		return fmt.Errorf("savepoint name is empty: %w", repositories.ErrInvalidArgument)
	}
	if t.finished {
		return errors.New("transaction already finished")
	}
	if _, exists := t.savepoints[name]; exists {
		return fmt.Errorf("savepoint %q already declared: %w", name, repositories.ErrInvalidArgument)
	}

	if err := t.db.SavePoint(name).Error; err != nil {
		return fmt.Errorf("create savepoint %q: %w", name, err)
	}
	t.savepoints[name] = struct{}{}
	return nil
}

func (t *transaction) RollbackTo(name string) error {
	if t.finished {
		return errors.New("transaction already finished")
	}
	if _, exists := t.savepoints[name]; !exists {
		return fmt.Errorf("unknown savepoint %q: %w", name, repositories.ErrInvalidArgument)
	}

	if err := t.db.RollbackTo(name).Error; err != nil {
		return fmt.Errorf("rollback to savepoint %q: %w", name, err)
	}
	return nil
}

func (t *transaction) Commit() error {
	if t.finished {
		return errors.New("transaction already finished")
	}

	err := t.db.Commit().Error
	t.finished = true
	t.committed = true
	t.detach()

	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *transaction) Rollback() error {
	if t.committed {
		return errors.New("rollback after commit")
	}
	if t.finished {
		return errors.New("transaction already finished")
	}

	err := t.db.Rollback().Error
	t.finished = true
	t.detach()

	if err != nil {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

func (t *transaction) detach() {
	t.owner.mu.Lock()
	if t.owner.tx == t {
		t.owner.tx = nil
	}
	t.owner.mu.Unlock()
}
