package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// CommonAreaController handles the bookable spaces of a community.
type CommonAreaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewCommonAreaController(ctx *gin.Context, container *container.ServiceContainer) *CommonAreaController {
	return &CommonAreaController{Ctx: ctx, Container: container}
}

// CommonAreaRequest is the create/update payload for a common area.
type CommonAreaRequest struct {
	CommunityID string `json:"community_id" binding:"required"`
	Name        string `json:"name" binding:"required" example:"Barbecue deck"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" example:"12"`
	OpensAt     string `json:"opens_at" example:"08:00"`
	ClosesAt    string `json:"closes_at" example:"22:00"`
}

// HandleCommonAreaFunc returns a gin handler dispatching to the common-area
// controller.
func HandleCommonAreaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCommonAreaController(ctx, container)

		switch method {
		case "getCommonAreas":
			controller.GetCommonAreas()
		case "getCommonArea":
			controller.GetCommonArea()
		case "createCommonArea":
			controller.CreateCommonArea()
		case "updateCommonArea":
			controller.UpdateCommonArea()
		case "deleteCommonArea":
			controller.DeleteCommonArea()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetCommonAreas
// @Summary List common areas
// @Description Community scoped: residents and admins see their community's areas, root everything.
// @Tags CommonArea
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /common-areas [get]
func (c *CommonAreaController) GetCommonAreas() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	areaService := c.Container.GetService("common_area").(services.InterfaceCommonAreaService)
	areas, total, err := areaService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, areas, total, page)
}

// GetCommonArea
// @Summary Get a common area
// @Tags CommonArea
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Common area id"
// @Success 200 {object} response.Response
// @Failure 404 {object} ErrorResponse
// @Router /common-areas/{id} [get]
func (c *CommonAreaController) GetCommonArea() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	areaService := c.Container.GetService("common_area").(services.InterfaceCommonAreaService)
	area, err := areaService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, area)
}

// CreateCommonArea
// @Summary Create a common area
// @Description Admin or root.
// @Tags CommonArea
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body CommonAreaRequest true "Common area"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /common-areas [post]
func (c *CommonAreaController) CreateCommonArea() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req CommonAreaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	area := models.CommonArea{
		CommunityID: req.CommunityID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
	}
	areaService := c.Container.GetService("common_area").(services.InterfaceCommonAreaService)
	if err := areaService.Create(clr, &area); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, area)
}

// UpdateCommonArea
// @Summary Replace a common area
// @Description Admin or root.
// @Tags CommonArea
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Common area id"
// @Param body body CommonAreaRequest true "Common area"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /common-areas/{id} [put]
func (c *CommonAreaController) UpdateCommonArea() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req CommonAreaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	areaService := c.Container.GetService("common_area").(services.InterfaceCommonAreaService)
	area, err := areaService.Update(clr, c.Ctx.Param("id"), &models.CommonArea{
		CommunityID: req.CommunityID,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
	})
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, area)
}

// DeleteCommonArea
// @Summary Delete a common area
// @Description Admin or root. Removes the area and its reservations.
// @Tags CommonArea
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Common area id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /common-areas/{id} [delete]
func (c *CommonAreaController) DeleteCommonArea() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	areaService := c.Container.GetService("common_area").(services.InterfaceCommonAreaService)
	if err := areaService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
