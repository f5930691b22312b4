package seeds

import (
	"context"
	"fmt"

	"todoapp/domain/repositories"
	"todoapp/pkg/logger"
)

// AppSeeder brings the main store up to date. It carries no stock data;
// only the migration stage runs, inside the same transactional skeleton as
// the identity seeder.
type AppSeeder struct {
	uow   repositories.DataUnitOfWork
	state State
}

func NewAppSeeder(uow repositories.DataUnitOfWork) *AppSeeder {
	return &AppSeeder{uow: uow, state: StateStart}
}

func (s *AppSeeder) State() State {
	return s.state
}

func (s *AppSeeder) Run(ctx context.Context) error {
	s.state = StateStart

	tx, err := s.uow.BeginTransaction(ctx)
	if err != nil {
		return fmt.Errorf("app seeding: %w: %w", ErrSeedingFailed, err)
	}

	if err := tx.Savepoint(SavepointBeforeMigrations); err != nil {
		_ = tx.Rollback()
		s.state = StateRolledBack
		return fmt.Errorf("app seeding: %w: %w", ErrSeedingFailed, err)
	}

	if err := s.ensureMigrationsApplied(ctx, tx); err != nil {
		_ = tx.Rollback()
		s.state = StateRolledBack
		logger.ErrorContext(ctx, "Main store migration failed during seeding", "error", err)
		return fmt.Errorf("app seeding: %w: %w", ErrSeedingFailed, err)
	}
	s.state = StateMigrationsApplied

	if err := tx.Commit(); err != nil {
		s.state = StateRolledBack
		return fmt.Errorf("app seeding: %w: %w", ErrSeedingFailed, err)
	}

	s.state = StateCommitted
	logger.InfoContext(ctx, "Main store seeded", "state", s.state)
	return nil
}

func (s *AppSeeder) ensureMigrationsApplied(ctx context.Context, tx repositories.Transaction) error {
	pending, err := s.uow.PendingMigrations(ctx)
	if err != nil {
		_ = tx.RollbackTo(SavepointBeforeMigrations)
		logger.WarnContext(ctx, "Could not read pending migrations, continuing", "error", err)
		return nil
	}

	if len(pending) == 0 {
		return nil
	}

	logger.InfoContext(ctx, "Applying pending main-store migrations", "count", len(pending))
	return s.uow.Migrate(ctx)
}
