// Package seeds brings an empty or partially-initialized store to a
// known-good state: schema migrations, the stock role table, the default
// administrator and its role assignment, all inside one transaction with
// savepoints between stages. Re-running against a populated store is a
// no-op. Concurrent invocation is NOT guarded here; run once at startup
// per logical store.
package seeds

import "errors"

// ErrSeedingFailed marks any failure of the seeding state machine once
// migrations have begun. Startup is expected to abort on it rather than
// run with a partially-seeded database.
var ErrSeedingFailed = errors.New("seeding failed")

// State is where the orchestrator currently stands. Transitions are
// linear; the only branch is to RolledBack on failure.
type State string

const (
	StateStart             State = "Start"
	StateMigrationsApplied State = "MigrationsApplied"
	StateRolesPopulated    State = "RolesPopulated"
	StateAdminPopulated    State = "AdminPopulated"
	StateAdminRoleAssigned State = "AdminRoleAssigned"
	StateCommitted         State = "Committed"
	StateRolledBack        State = "RolledBack"
)

const (
	SavepointBeforeMigrations    = "BeforeMigrations"
	SavepointBeforeRolesAndAdmin = "BeforeRolesAndAdminPopulated"
	SavepointBeforeAdminRole     = "BeforeRoleForAdminSetup"
)

// RoleSeed is one entry of the immutable role table handed to the
// orchestrator. Role ids are derived from the name, so the table carries
// none.
type RoleSeed struct {
	Name        string
	Description string
}

// AdminRoleName is the role the seeded administrator is assigned.
const AdminRoleName = "Admin"

// DefaultRoles returns the stock role table.
func DefaultRoles() []RoleSeed {
	return []RoleSeed{
		{AdminRoleName, "Admin may do everything!"},
		{"Guest", "Guest has access only to certain, public places for a short period of time."},
		{"Developer", "Developer has access to a project environment (including team area)"},
		{"ScrumMaster", "ScrumMaster inherits access from Developer and exceed it by an area with basic, statistic data of a project progression."},
		{"TeamLeader", "Team Leader inherits access from Developer and exceed it by tech discussion area and shares it with some other roles."},
		{"ProjectOwner", "Project Owner as Project Manager gas access to project statistics and data, but cannot to manage a project."},
		{"ProjectManager", "Project Manager has the most wide access to project statistics and data. Can manage projects, teams, tasks and sprints."},
		{"Analyst", "Analyst has access to a specific module with statistics details and project plans."},
	}
}

// AdminSeed describes the default administrator record. Password arrives
// in plain text from config and is bcrypt-hashed before insert.
type AdminSeed struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Provider  string
}

// DefaultAdmin returns the well-known administrator identity.
func DefaultAdmin() AdminSeed {
	return AdminSeed{
		ID:        "adminId",
		Username:  "Admin",
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     "admin@gmail.com",
		Password:  "Secret123$",
		Provider:  "Cookies",
	}
}
