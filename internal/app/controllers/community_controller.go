package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// CommunityController handles community management requests.
type CommunityController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewCommunityController(ctx *gin.Context, container *container.ServiceContainer) *CommunityController {
	return &CommunityController{Ctx: ctx, Container: container}
}

// CommunityRequest is the create/update payload for a community.
type CommunityRequest struct {
	Name      string `json:"name" binding:"required" example:"Sunset Towers"`
	ShortName string `json:"short_name" binding:"required" example:"sunset"`
	Address   string `json:"address" example:"12 Ocean Drive"`
}

// HandleCommunityFunc returns a gin handler dispatching to the community
// controller.
func HandleCommunityFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCommunityController(ctx, container)

		switch method {
		case "getCommunities":
			controller.GetCommunities()
		case "getCommunity":
			controller.GetCommunity()
		case "createCommunity":
			controller.CreateCommunity()
		case "updateCommunity":
			controller.UpdateCommunity()
		case "deleteCommunity":
			controller.DeleteCommunity()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetCommunities
// @Summary List communities
// @Description Lists communities visible to the caller: all of them for root, only their own for admins and residents.
// @Tags Community
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Failure 401 {object} ErrorResponse
// @Router /communities [get]
func (c *CommunityController) GetCommunities() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	communities, total, err := communityService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, communities, total, page)
}

// GetCommunity
// @Summary Get a community
// @Tags Community
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Community id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /communities/{id} [get]
func (c *CommunityController) GetCommunity() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	community, err := communityService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, community)
}

// CreateCommunity
// @Summary Create a community
// @Description Root only.
// @Tags Community
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body CommunityRequest true "Community"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /communities [post]
func (c *CommunityController) CreateCommunity() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req CommunityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	community := models.Community{
		Name:      req.Name,
		ShortName: req.ShortName,
		Address:   req.Address,
	}
	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	if err := communityService.Create(clr, &community); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, community)
}

// UpdateCommunity
// @Summary Replace a community
// @Description Root only. Full replacement of the mutable fields.
// @Tags Community
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Community id"
// @Param body body CommunityRequest true "Community"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /communities/{id} [put]
func (c *CommunityController) UpdateCommunity() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req CommunityRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	community, err := communityService.Update(clr, c.Ctx.Param("id"), &models.Community{
		Name:      req.Name,
		ShortName: req.ShortName,
		Address:   req.Address,
	})
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, community)
}

// DeleteCommunity
// @Summary Delete a community
// @Description Root only.
// @Tags Community
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Community id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /communities/{id} [delete]
func (c *CommunityController) DeleteCommunity() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	communityService := c.Container.GetService("community").(services.InterfaceCommunityService)
	if err := communityService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
