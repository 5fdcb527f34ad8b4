package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/controllers"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/middleware"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
)

// SetupRouter builds the engine with every route, middleware and the service
// container wired in.
func SetupRouter(db *gorm.DB, cfg *config.Config, serviceContainer *container.ServiceContainer) *gin.Engine {
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Auth-Token")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Total-Pages, X-Remaining-Pages")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerRoutes(r, serviceContainer)
	return r
}

func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes wires the endpoints reachable without a session.
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	// Credential endpoints get a tighter per-path limit on top of the IP one.
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.POST("/password-reset/request", controllers.HandleAuthFunc(container, "requestPasswordReset"))
	authGroup.POST("/password-reset/confirm", controllers.HandleAuthFunc(container, "confirmPasswordReset"))
}

// registerAuthenticatedRoutes wires everything behind the session guard.
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	redisService, _ := container.GetService("redis").(*services.RedisService)
	cached := func(d time.Duration) gin.HandlerFunc {
		return middleware.Cache(redisService, d)
	}

	auth := api.Group("/")
	auth.Use(middleware.Authenticate())
	auth.Use(middleware.IPRateLimiter(30, 50))

	auth.POST("/auth/logout", controllers.HandleAuthFunc(container, "logout"))

	communityGroup := auth.Group("/communities")
	communityGroup.GET("", cached(time.Minute), controllers.HandleCommunityFunc(container, "getCommunities"))
	communityGroup.GET("/:id", cached(time.Minute), controllers.HandleCommunityFunc(container, "getCommunity"))
	communityGroup.POST("", controllers.HandleCommunityFunc(container, "createCommunity"))
	communityGroup.PUT("/:id", controllers.HandleCommunityFunc(container, "updateCommunity"))
	communityGroup.DELETE("/:id", controllers.HandleCommunityFunc(container, "deleteCommunity"))

	adminGroup := auth.Group("/admins")
	adminGroup.GET("", cached(time.Minute), controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", cached(time.Minute), controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	residentGroup := auth.Group("/residents")
	residentGroup.GET("", cached(time.Minute), controllers.HandleResidentFunc(container, "getResidents"))
	residentGroup.GET("/:id", cached(time.Minute), controllers.HandleResidentFunc(container, "getResident"))
	residentGroup.POST("", controllers.HandleResidentFunc(container, "createResident"))
	residentGroup.POST("/invite", controllers.HandleResidentFunc(container, "inviteResident"))
	residentGroup.PUT("/:id", controllers.HandleResidentFunc(container, "updateResident"))
	residentGroup.DELETE("/:id", controllers.HandleResidentFunc(container, "deleteResident"))

	areaGroup := auth.Group("/common-areas")
	areaGroup.GET("", cached(5*time.Minute), controllers.HandleCommonAreaFunc(container, "getCommonAreas"))
	areaGroup.GET("/:id", cached(5*time.Minute), controllers.HandleCommonAreaFunc(container, "getCommonArea"))
	areaGroup.POST("", controllers.HandleCommonAreaFunc(container, "createCommonArea"))
	areaGroup.PUT("/:id", controllers.HandleCommonAreaFunc(container, "updateCommonArea"))
	areaGroup.DELETE("/:id", controllers.HandleCommonAreaFunc(container, "deleteCommonArea"))

	// Reservations change often and drive availability checks, so reads stay
	// fresh: short cache only.
	reservationGroup := auth.Group("/reservations")
	reservationGroup.GET("", cached(5*time.Second), controllers.HandleReservationFunc(container, "getReservations"))
	reservationGroup.GET("/:id", cached(5*time.Second), controllers.HandleReservationFunc(container, "getReservation"))
	reservationGroup.POST("", controllers.HandleReservationFunc(container, "createReservation"))
	reservationGroup.PUT("/:id", controllers.HandleReservationFunc(container, "updateReservation"))
	reservationGroup.DELETE("/:id", controllers.HandleReservationFunc(container, "deleteReservation"))

	invoiceGroup := auth.Group("/invoices")
	invoiceGroup.GET("", cached(time.Minute), controllers.HandleInvoiceFunc(container, "getInvoices"))
	invoiceGroup.GET("/:id", cached(time.Minute), controllers.HandleInvoiceFunc(container, "getInvoice"))
	invoiceGroup.POST("", controllers.HandleInvoiceFunc(container, "createInvoice"))
	invoiceGroup.PUT("/:id", controllers.HandleInvoiceFunc(container, "updateInvoice"))
	invoiceGroup.DELETE("/:id", controllers.HandleInvoiceFunc(container, "deleteInvoice"))

	incidentGroup := auth.Group("/incidents")
	incidentGroup.GET("", cached(10*time.Second), controllers.HandleIncidentFunc(container, "getIncidents"))
	incidentGroup.GET("/:id", cached(10*time.Second), controllers.HandleIncidentFunc(container, "getIncident"))
	incidentGroup.POST("", controllers.HandleIncidentFunc(container, "createIncident"))
	incidentGroup.PUT("/:id", controllers.HandleIncidentFunc(container, "updateIncident"))
	incidentGroup.DELETE("/:id", controllers.HandleIncidentFunc(container, "deleteIncident"))

	parcelGroup := auth.Group("/parcels")
	parcelGroup.GET("", cached(30*time.Second), controllers.HandleParcelFunc(container, "getParcels"))
	parcelGroup.GET("/:id", cached(30*time.Second), controllers.HandleParcelFunc(container, "getParcel"))
	parcelGroup.POST("", controllers.HandleParcelFunc(container, "createParcel"))
	parcelGroup.PUT("/:id", controllers.HandleParcelFunc(container, "updateParcel"))
	parcelGroup.DELETE("/:id", controllers.HandleParcelFunc(container, "deleteParcel"))

	vehicleGroup := auth.Group("/vehicles")
	vehicleGroup.GET("", cached(time.Minute), controllers.HandleVehicleFunc(container, "getVehicles"))
	vehicleGroup.GET("/:id", cached(time.Minute), controllers.HandleVehicleFunc(container, "getVehicle"))
	vehicleGroup.POST("", controllers.HandleVehicleFunc(container, "createVehicle"))
	vehicleGroup.PUT("/:id", controllers.HandleVehicleFunc(container, "updateVehicle"))
	vehicleGroup.DELETE("/:id", controllers.HandleVehicleFunc(container, "deleteVehicle"))

	electionGroup := auth.Group("/elections")
	electionGroup.GET("", cached(time.Minute), controllers.HandleElectionFunc(container, "getElections"))
	electionGroup.GET("/:id", cached(10*time.Second), controllers.HandleElectionFunc(container, "getElection"))
	electionGroup.POST("", controllers.HandleElectionFunc(container, "createElection"))
	electionGroup.PUT("/:id", controllers.HandleElectionFunc(container, "updateElection"))
	electionGroup.DELETE("/:id", controllers.HandleElectionFunc(container, "deleteElection"))
	electionGroup.POST("/:id/candidates", controllers.HandleElectionFunc(container, "addCandidate"))
	electionGroup.DELETE("/:id/candidates/:candidate_id", controllers.HandleElectionFunc(container, "removeCandidate"))
	electionGroup.POST("/:id/vote", controllers.HandleElectionFunc(container, "vote"))
	electionGroup.GET("/:id/results", cached(10*time.Second), controllers.HandleElectionFunc(container, "getResults"))

	maintenanceGroup := auth.Group("/maintenance-schedules")
	maintenanceGroup.GET("", cached(5*time.Minute), controllers.HandleMaintenanceFunc(container, "getSchedules"))
	maintenanceGroup.GET("/:id", cached(5*time.Minute), controllers.HandleMaintenanceFunc(container, "getSchedule"))
	maintenanceGroup.POST("", controllers.HandleMaintenanceFunc(container, "createSchedule"))
	maintenanceGroup.PUT("/:id", controllers.HandleMaintenanceFunc(container, "updateSchedule"))
	maintenanceGroup.DELETE("/:id", controllers.HandleMaintenanceFunc(container, "deleteSchedule"))
}
