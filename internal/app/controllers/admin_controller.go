package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// AdminController handles community administrator accounts.
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{Ctx: ctx, Container: container}
}

// HandleAdminFunc returns a gin handler dispatching to the admin controller.
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetAdmins
// @Summary List admins
// @Description Root sees every admin; an admin sees the admins of its community. Residents are denied.
// @Tags Admin
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /admins [get]
func (c *AdminController) GetAdmins() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admins, total, err := adminService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, admins, total, page)
}

// GetAdmin
// @Summary Get an admin
// @Tags Admin
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Admin id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [get]
func (c *AdminController) GetAdmin() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, admin)
}

// CreateAdmin
// @Summary Create an admin
// @Description Provisions the admin profile, its login and its community role in one step. The email must not be registered to any admin or resident.
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.AdminInput true "Admin"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admins [post]
func (c *AdminController) CreateAdmin() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.AdminInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, admin)
}

// UpdateAdmin
// @Summary Replace an admin
// @Description Full replacement of the profile. Password changes only when a new one is supplied.
// @Tags Admin
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Admin id"
// @Param body body services.AdminInput true "Admin"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [put]
func (c *AdminController) UpdateAdmin() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.AdminInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	admin, err := adminService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, admin)
}

// DeleteAdmin
// @Summary Delete an admin
// @Tags Admin
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Admin id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admins/{id} [delete]
func (c *AdminController) DeleteAdmin() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	adminService := c.Container.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
