package seeds

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
	"todoapp/pkg/logger"
)

// IdentitySeeder drives the identity-store state machine:
// Start -> MigrationsApplied -> RolesPopulated -> AdminPopulated ->
// AdminRoleAssigned -> Committed, or RolledBack on failure.
type IdentitySeeder struct {
	uow   repositories.IdentityUnitOfWork
	roles []RoleSeed
	admin AdminSeed
	state State
}

func NewIdentitySeeder(uow repositories.IdentityUnitOfWork, roles []RoleSeed, admin AdminSeed) *IdentitySeeder {
	return &IdentitySeeder{
		uow:   uow,
		roles: roles,
		admin: admin,
		state: StateStart,
	}
}

func (s *IdentitySeeder) State() State {
	return s.state
}

func (s *IdentitySeeder) Run(ctx context.Context) error {
	s.state = StateStart

	tx, err := s.uow.BeginTransaction(ctx)
	if err != nil {
		return fmt.Errorf("identity seeding: %w: %w", ErrSeedingFailed, err)
	}

	if err := tx.Savepoint(SavepointBeforeMigrations); err != nil {
		_ = tx.Rollback()
		s.state = StateRolledBack
		return fmt.Errorf("identity seeding: %w: %w", ErrSeedingFailed, err)
	}

	if err := s.ensureMigrationsApplied(ctx, tx); err != nil {
		// An unknown schema state cannot be trusted for partial recovery:
		// roll back everything, not just to the savepoint.
		_ = tx.Rollback()
		s.state = StateRolledBack
		logger.ErrorContext(ctx, "Identity store migration failed during seeding", "error", err)
		return fmt.Errorf("identity seeding: %w: %w", ErrSeedingFailed, err)
	}
	s.state = StateMigrationsApplied

	if err := s.populate(ctx, tx); err != nil {
		_ = tx.Rollback()
		s.state = StateRolledBack
		logger.ErrorContext(ctx, "An error occurred while populating the identity store", "error", err)
		return fmt.Errorf("identity seeding: %w: %w", ErrSeedingFailed, err)
	}

	s.state = StateCommitted
	logger.InfoContext(ctx, "Identity store seeded", "state", s.state)
	return nil
}

// ensureMigrationsApplied applies pending migrations. A failure to even
// read the pending list is tolerated for stores without migration history:
// roll back to the savepoint and carry on. A failed apply propagates.
func (s *IdentitySeeder) ensureMigrationsApplied(ctx context.Context, tx repositories.Transaction) error {
	pending, err := s.uow.PendingMigrations(ctx)
	if err != nil {
		_ = tx.RollbackTo(SavepointBeforeMigrations)
		logger.WarnContext(ctx, "Could not read pending migrations, continuing", "error", err)
		return nil
	}

	if len(pending) == 0 {
		return nil
	}

	logger.InfoContext(ctx, "Applying pending identity migrations", "count", len(pending))
	return s.uow.Migrate(ctx)
}

func (s *IdentitySeeder) populate(ctx context.Context, tx repositories.Transaction) error {
	if err := tx.Savepoint(SavepointBeforeRolesAndAdmin); err != nil {
		return err
	}

	if err := s.ensureRolesPopulated(ctx); err != nil {
		return err
	}
	s.state = StateRolesPopulated

	if err := s.ensureAdminPopulated(ctx); err != nil {
		return err
	}
	s.state = StateAdminPopulated

	if _, err := s.uow.SaveChanges(ctx); err != nil {
		return err
	}

	if err := tx.Savepoint(SavepointBeforeAdminRole); err != nil {
		return err
	}

	if err := s.setRoleForAdmin(ctx); err != nil {
		return err
	}
	s.state = StateAdminRoleAssigned

	if _, err := s.uow.SaveChanges(ctx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *IdentitySeeder) ensureRolesPopulated(ctx context.Context) error {
	roleRepo := s.uow.Roles()

	populated, err := roleRepo.ContainsAny(ctx)
	if err != nil {
		return err
	}
	if populated {
		return nil
	}

	defaultRoles := make([]*models.Role, 0, len(s.roles))
	for _, seed := range s.roles {
		defaultRoles = append(defaultRoles, &models.Role{
			ID:          models.RoleID(seed.Name),
			Name:        seed.Name,
			Description: seed.Description,
		})
	}

	return roleRepo.AddRange(ctx, defaultRoles)
}

func (s *IdentitySeeder) ensureAdminPopulated(ctx context.Context) error {
	userRepo := s.uow.Users()

	populated, err := userRepo.ContainsAny(ctx)
	if err != nil {
		return err
	}
	if populated {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return userRepo.Add(ctx, &models.User{
		UserID:         s.admin.ID,
		Username:       s.admin.Username,
		FirstName:      s.admin.FirstName,
		LastName:       s.admin.LastName,
		NameIdentifier: s.admin.ID,
		Email:          s.admin.Email,
		Password:       string(hash),
		Provider:       s.admin.Provider,
	})
}

func (s *IdentitySeeder) setRoleForAdmin(ctx context.Context) error {
	adminUser, err := s.uow.Users().GetWithDetails(ctx, s.admin.ID)
	if err != nil {
		return err
	}

	roleForAdmin, err := s.uow.Roles().Get(ctx, models.RoleID(AdminRoleName))
	if err != nil {
		return err
	}

	if adminUser == nil || adminUser.HasAnyRole() || roleForAdmin == nil {
		return nil
	}

	return s.uow.UserRoles().Add(ctx, &models.UserRole{
		UserID: adminUser.UserID,
		RoleID: roleForAdmin.ID,
	})
}
