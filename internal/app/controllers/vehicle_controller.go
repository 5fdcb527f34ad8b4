package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// VehicleController handles registered vehicles.
type VehicleController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewVehicleController(ctx *gin.Context, container *container.ServiceContainer) *VehicleController {
	return &VehicleController{Ctx: ctx, Container: container}
}

// HandleVehicleFunc returns a gin handler dispatching to the vehicle
// controller.
func HandleVehicleFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVehicleController(ctx, container)

		switch method {
		case "getVehicles":
			controller.GetVehicles()
		case "getVehicle":
			controller.GetVehicle()
		case "createVehicle":
			controller.CreateVehicle()
		case "updateVehicle":
			controller.UpdateVehicle()
		case "deleteVehicle":
			controller.DeleteVehicle()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetVehicles
// @Summary List vehicles
// @Description Residents see their own cars, admins their community's (through the owning resident), root everything.
// @Tags Vehicle
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /vehicles [get]
func (c *VehicleController) GetVehicles() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicles, total, err := vehicleService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, vehicles, total, page)
}

// GetVehicle
// @Summary Get a vehicle
// @Tags Vehicle
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{id} [get]
func (c *VehicleController) GetVehicle() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicle, err := vehicleService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, vehicle)
}

// CreateVehicle
// @Summary Register a vehicle
// @Description Residents register their own cars; resident_id in the payload is ignored for them.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.VehicleInput true "Vehicle"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /vehicles [post]
func (c *VehicleController) CreateVehicle() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.VehicleInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicle, err := vehicleService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, vehicle)
}

// UpdateVehicle
// @Summary Replace a vehicle
// @Description Full replacement. Moving the car to another resident is an admin operation.
// @Tags Vehicle
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Vehicle id"
// @Param body body services.VehicleInput true "Vehicle"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{id} [put]
func (c *VehicleController) UpdateVehicle() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.VehicleInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	vehicle, err := vehicleService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, vehicle)
}

// DeleteVehicle
// @Summary Delete a vehicle
// @Tags Vehicle
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Vehicle id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vehicles/{id} [delete]
func (c *VehicleController) DeleteVehicle() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	vehicleService := c.Container.GetService("vehicle").(services.InterfaceVehicleService)
	if err := vehicleService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
