package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// ResidentController handles resident accounts.
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{Ctx: ctx, Container: container}
}

// HandleResidentFunc returns a gin handler dispatching to the resident
// controller.
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "inviteResident":
			controller.InviteResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetResidents
// @Summary List residents
// @Description Root sees everyone, an admin its community, a resident only itself.
// @Tags Resident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /residents [get]
func (c *ResidentController) GetResidents() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	residents, total, err := residentService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, residents, total, page)
}

// GetResident
// @Summary Get a resident
// @Tags Resident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Resident id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /residents/{id} [get]
func (c *ResidentController) GetResident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, resident)
}

// CreateResident
// @Summary Create a resident
// @Description Admin or root. Provisions the resident profile, its login and its community role with the password given in the payload.
// @Tags Resident
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.ResidentInput true "Resident"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /residents [post]
func (c *ResidentController) CreateResident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ResidentInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, resident)
}

// InviteResident
// @Summary Invite a resident
// @Description Admin or root. Like create, but a temporary password is generated and mailed to the resident instead of being supplied by the caller.
// @Tags Resident
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.ResidentInput true "Resident, password ignored"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /residents/invite [post]
func (c *ResidentController) InviteResident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ResidentInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.Invite(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, resident)
}

// UpdateResident
// @Summary Replace a resident
// @Description Full replacement. Residents may edit their own profile but cannot move themselves between communities.
// @Tags Resident
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Resident id"
// @Param body body services.ResidentInput true "Resident"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ResidentInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, resident)
}

// DeleteResident
// @Summary Delete a resident
// @Description Admin or root. Removes the resident with its login, role, vehicles and reservations.
// @Tags Resident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Resident id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
