package cmd

import (
	"log/slog"

	httpin "github.com/anj1741/Routegenius-final-project/internal/adapters/in/http"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/gemini"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/postgres/userrepo"
	"github.com/anj1741/Routegenius-final-project/internal/adapters/out/sendgrid"
	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/commands"
	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/jobs"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. All dependency
// construction happens here so the rest of the code never reaches for
// globals.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	users      ports.UserDirectory
	generator  ports.TextGenerator
	mailer     ports.MailSender
	clk        clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	clk := clock.RealClock{}
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, clk),
		users:      userrepo.NewGormUserDirectory(gormDB),
		generator:  gemini.NewClient(config.GeminiAPIURL, config.GeminiAPIKey),
		mailer:     sendgrid.NewMailer(config.SendGridAPIKey, config.MailFrom),
		clk:        clk,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.users, c.clk)
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	dispatcher := c.CreateDispatchNotificationCommandHandler()
	return commands.NewUpdateParcelCommandHandler(f, c.users, &dispatcher, nil, c.clk, c.logger)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationCommandHandler() commands.DispatchNotificationCommandHandler {
	var f commands.DispatchUoWFactory = FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationCommandHandler(f, c.users, c.generator, c.mailer, c.logger)
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() commands.MarkNotificationReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationReadCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteNotificationCommandHandler() commands.DeleteNotificationCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteNotificationCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelByIDQueryHandler() queries.GetParcelByIDQueryHandler {
	return queries.NewGetParcelByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetParcelByTrackingIDQueryHandler() queries.GetParcelByTrackingIDQueryHandler {
	return queries.NewGetParcelByTrackingIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserParcelsQueryHandler() queries.GetUserParcelsQueryHandler {
	return queries.NewGetUserParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserNotificationsQueryHandler() queries.GetUserNotificationsQueryHandler {
	return queries.NewGetUserNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueParcelsQueryHandler() queries.GetOverdueParcelsQueryHandler {
	return queries.NewGetOverdueParcelsQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the fully wired inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateUpdateParcelCommandHandler(),
		c.CreateDeleteParcelCommandHandler(),
		c.CreateMarkNotificationReadCommandHandler(),
		c.CreateDeleteNotificationCommandHandler(),
		c.CreateGetParcelByIDQueryHandler(),
		c.CreateGetParcelByTrackingIDQueryHandler(),
		c.CreateGetAllParcelsQueryHandler(),
		c.CreateGetUserParcelsQueryHandler(),
		c.CreateGetTrackingHistoryQueryHandler(),
		c.CreateGetUserNotificationsQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueParcelsQueryHandler(), c.clk, c.logger)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}
