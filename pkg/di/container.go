package di

import (
	"context"

	"gorm.io/gorm"

	"todoapp/application/serviceimpl"
	"todoapp/domain/ports"
	"todoapp/domain/repositories"
	"todoapp/domain/services"
	"todoapp/infrastructure/messaging"
	"todoapp/infrastructure/postgres"
	"todoapp/infrastructure/seeds"
	"todoapp/pkg/config"
	"todoapp/pkg/logger"
	"todoapp/pkg/scheduler"
)

const reminderJobID = "task-reminder-scan"

type Container struct {
	Config *config.Config

	// Infrastructure
	MainDB         *gorm.DB
	IdentityDB     *gorm.DB
	Notifier       ports.ReminderNotifier
	NATSPublisher  *messaging.NATSReminderPublisher
	EventScheduler scheduler.EventScheduler

	// Unit-of-work factories; every service call gets a fresh unit.
	DataUnitOfWork     repositories.DataUnitOfWorkFactory
	IdentityUnitOfWork repositories.IdentityUnitOfWorkFactory

	// Services
	TodoListService services.TodoListService
	TaskService     services.TaskService
	ReminderService services.ReminderService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initUnitOfWorks()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	mainDB, err := postgres.NewDatabase(postgres.DatabaseConfig(c.Config.MainDB))
	if err != nil {
		return err
	}
	c.MainDB = mainDB
	logger.Info("Main database connected", "host", c.Config.MainDB.Host, "db", c.Config.MainDB.DBName)

	identityDB, err := postgres.NewDatabase(postgres.DatabaseConfig(c.Config.IdentityDB))
	if err != nil {
		return err
	}
	c.IdentityDB = identityDB
	logger.Info("Identity database connected", "host", c.Config.IdentityDB.Host, "db", c.Config.IdentityDB.DBName)

	// Reminder notifier. NATS when configured, log fallback otherwise;
	// a broken NATS connection degrades to the fallback too.
	if c.Config.NATS.Enabled {
		publisher, err := messaging.NewNATSReminderPublisher(c.Config.NATS.URL)
		if err != nil {
			logger.Warn("NATS publisher initialization failed, falling back to log notifier", "error", err)
			c.Notifier = messaging.NewLogNotifier()
		} else {
			c.NATSPublisher = publisher
			c.Notifier = publisher
			logger.Info("NATS reminder publisher initialized", "url", c.Config.NATS.URL)
		}
	} else {
		c.Notifier = messaging.NewLogNotifier()
	}

	return nil
}

func (c *Container) initUnitOfWorks() {
	mainDB := c.MainDB
	identityDB := c.IdentityDB

	c.DataUnitOfWork = func() repositories.DataUnitOfWork {
		return postgres.NewDataUnitOfWork(mainDB, postgres.AppMigrations())
	}
	c.IdentityUnitOfWork = func() repositories.IdentityUnitOfWork {
		return postgres.NewIdentityUnitOfWork(identityDB, postgres.IdentityMigrations())
	}
	logger.Info("Unit of work factories initialized")
}

func (c *Container) initServices() {
	c.TodoListService = serviceimpl.NewTodoListService(c.DataUnitOfWork)
	c.TaskService = serviceimpl.NewTaskService(c.DataUnitOfWork)
	c.ReminderService = serviceimpl.NewReminderService(c.DataUnitOfWork, c.Notifier)
	logger.Info("Services initialized")
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	cron := c.Config.Scheduler.ReminderCron
	err := c.EventScheduler.AddJob(reminderJobID, cron, func() {
		ctx := context.Background()
		if err := c.ReminderService.ScanOnce(ctx); err != nil {
			logger.Error("Reminder scan failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	c.EventScheduler.Start()
	logger.Info("Reminder scan scheduled", "cron", cron)
	return nil
}

// RunSeeders brings both stores to their seeded state. Identity runs
// first, then the main store; a failure aborts startup.
func (c *Container) RunSeeders(ctx context.Context) error {
	admin := seeds.DefaultAdmin()
	if c.Config.Seed.AdminID != "" {
		admin.ID = c.Config.Seed.AdminID
	}
	if c.Config.Seed.AdminUsername != "" {
		admin.Username = c.Config.Seed.AdminUsername
	}
	if c.Config.Seed.AdminEmail != "" {
		admin.Email = c.Config.Seed.AdminEmail
	}
	if c.Config.Seed.AdminPassword != "" {
		admin.Password = c.Config.Seed.AdminPassword
	}

	identityUow := c.IdentityUnitOfWork()
	defer identityUow.Close()

	identitySeeder := seeds.NewIdentitySeeder(identityUow, seeds.DefaultRoles(), admin)
	if err := identitySeeder.Run(ctx); err != nil {
		return err
	}
	logger.Info("Identity store seeded", "state", identitySeeder.State())

	dataUow := c.DataUnitOfWork()
	defer dataUow.Close()

	appSeeder := seeds.NewAppSeeder(dataUow)
	if err := appSeeder.Run(ctx); err != nil {
		return err
	}
	logger.Info("Main store seeded", "state", appSeeder.State())

	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSPublisher != nil {
		c.NATSPublisher.Close()
		logger.Info("NATS connection closed")
	}

	for _, db := range []*gorm.DB{c.MainDB, c.IdentityDB} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err != nil {
			continue
		}
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		}
	}

	logger.Info("Cleanup completed")
	return nil
}
