package container

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/notification"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// ServiceContainer wires every service to its dependencies once at startup.
// Controllers pull services out by name through GetService.
type ServiceContainer struct {
	db      *gorm.DB
	config  *config.Config
	mail    notification.MailPublisher
	notices notification.NoticePublisher

	jwtService   services.InterfaceJWTService
	redisService *services.RedisService

	communityService     services.InterfaceCommunityService
	adminService         services.InterfaceAdminService
	residentService      services.InterfaceResidentService
	commonAreaService    services.InterfaceCommonAreaService
	reservationService   services.InterfaceReservationService
	invoiceService       services.InterfaceInvoiceService
	incidentService      services.InterfaceIncidentService
	parcelService        services.InterfaceParcelService
	vehicleService       services.InterfaceVehicleService
	electionService      services.InterfaceElectionService
	maintenanceService   services.InterfaceMaintenanceService
	passwordResetService services.InterfacePasswordResetService

	mu sync.RWMutex
}

// NewServiceContainer builds the container. mail and notices may be nil in
// tests; services degrade to logging instead of publishing.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, mail notification.MailPublisher, notices notification.NoticePublisher) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	c := &ServiceContainer{
		db:      db,
		config:  cfg,
		mail:    mail,
		notices: notices,
	}
	c.initializeServices()
	return c
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)

	c.redisService = services.NewRedisService(c.config)
	if err := c.redisService.Ping(); err != nil {
		logger.Warning("redis unreachable, response caching disabled: %v", err)
		c.redisService = nil
	}

	resetTTL := time.Duration(c.config.ResetTokenTTLMin) * time.Minute

	c.communityService = services.NewCommunityService(c.db)
	c.adminService = services.NewAdminService(c.db)
	c.residentService = services.NewResidentService(c.db, c.mail)
	c.commonAreaService = services.NewCommonAreaService(c.db)
	c.reservationService = services.NewReservationService(c.db)
	c.invoiceService = services.NewInvoiceService(c.db)
	c.incidentService = services.NewIncidentService(c.db, c.notices)
	c.parcelService = services.NewParcelService(c.db)
	c.vehicleService = services.NewVehicleService(c.db)
	c.electionService = services.NewElectionService(c.db)
	c.maintenanceService = services.NewMaintenanceService(c.db)
	c.passwordResetService = services.NewPasswordResetService(c.db, c.mail, resetTTL)
}

// GetService returns the service registered under name, or nil.
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "community":
		return c.communityService
	case "admin":
		return c.adminService
	case "resident":
		return c.residentService
	case "common_area":
		return c.commonAreaService
	case "reservation":
		return c.reservationService
	case "invoice":
		return c.invoiceService
	case "incident":
		return c.incidentService
	case "parcel":
		return c.parcelService
	case "vehicle":
		return c.vehicleService
	case "election":
		return c.electionService
	case "maintenance":
		return c.maintenanceService
	case "password_reset":
		return c.passwordResetService
	default:
		return nil
	}
}

// GetDB returns the database handle.
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
