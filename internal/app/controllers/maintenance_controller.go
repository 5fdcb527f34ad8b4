package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// MaintenanceController handles the recurring upkeep calendar.
type MaintenanceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewMaintenanceController(ctx *gin.Context, container *container.ServiceContainer) *MaintenanceController {
	return &MaintenanceController{Ctx: ctx, Container: container}
}

// HandleMaintenanceFunc returns a gin handler dispatching to the maintenance
// controller.
func HandleMaintenanceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMaintenanceController(ctx, container)

		switch method {
		case "getSchedules":
			controller.GetSchedules()
		case "getSchedule":
			controller.GetSchedule()
		case "createSchedule":
			controller.CreateSchedule()
		case "updateSchedule":
			controller.UpdateSchedule()
		case "deleteSchedule":
			controller.DeleteSchedule()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetSchedules
// @Summary List maintenance schedules
// @Description Community scoped, ordered by next due date.
// @Tags Maintenance
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /maintenance-schedules [get]
func (c *MaintenanceController) GetSchedules() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	schedules, total, err := maintenanceService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, schedules, total, page)
}

// GetSchedule
// @Summary Get a maintenance schedule
// @Tags Maintenance
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Schedule id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /maintenance-schedules/{id} [get]
func (c *MaintenanceController) GetSchedule() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	schedule, err := maintenanceService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, schedule)
}

// CreateSchedule
// @Summary Plan a maintenance task
// @Description Admin or root.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.MaintenanceInput true "Schedule"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /maintenance-schedules [post]
func (c *MaintenanceController) CreateSchedule() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.MaintenanceInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	schedule, err := maintenanceService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, schedule)
}

// UpdateSchedule
// @Summary Replace a maintenance task
// @Description Admin or root.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Schedule id"
// @Param body body services.MaintenanceInput true "Schedule"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /maintenance-schedules/{id} [put]
func (c *MaintenanceController) UpdateSchedule() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.MaintenanceInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	schedule, err := maintenanceService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, schedule)
}

// DeleteSchedule
// @Summary Delete a maintenance task
// @Description Admin or root.
// @Tags Maintenance
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Schedule id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /maintenance-schedules/{id} [delete]
func (c *MaintenanceController) DeleteSchedule() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	maintenanceService := c.Container.GetService("maintenance").(services.InterfaceMaintenanceService)
	if err := maintenanceService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
