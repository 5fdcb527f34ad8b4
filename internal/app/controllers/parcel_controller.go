package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// ParcelController handles front-desk deliveries.
type ParcelController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewParcelController(ctx *gin.Context, container *container.ServiceContainer) *ParcelController {
	return &ParcelController{Ctx: ctx, Container: container}
}

// HandleParcelFunc returns a gin handler dispatching to the parcel
// controller.
func HandleParcelFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewParcelController(ctx, container)

		switch method {
		case "getParcels":
			controller.GetParcels()
		case "getParcel":
			controller.GetParcel()
		case "createParcel":
			controller.CreateParcel()
		case "updateParcel":
			controller.UpdateParcel()
		case "deleteParcel":
			controller.DeleteParcel()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetParcels
// @Summary List parcels
// @Description Residents see their own deliveries, admins their community's, root everything.
// @Tags Parcel
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /parcels [get]
func (c *ParcelController) GetParcels() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	parcelService := c.Container.GetService("parcel").(services.InterfaceParcelService)
	parcels, total, err := parcelService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, parcels, total, page)
}

// GetParcel
// @Summary Get a parcel
// @Tags Parcel
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Parcel id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parcels/{id} [get]
func (c *ParcelController) GetParcel() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	parcelService := c.Container.GetService("parcel").(services.InterfaceParcelService)
	parcel, err := parcelService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, parcel)
}

// CreateParcel
// @Summary Log a parcel
// @Description Admin or root. arrived_at defaults to now when omitted.
// @Tags Parcel
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.ParcelInput true "Parcel"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /parcels [post]
func (c *ParcelController) CreateParcel() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ParcelInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	parcelService := c.Container.GetService("parcel").(services.InterfaceParcelService)
	parcel, err := parcelService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, parcel)
}

// UpdateParcel
// @Summary Replace a parcel
// @Description Admin or root. Marking picked_up true closes the delivery.
// @Tags Parcel
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Parcel id"
// @Param body body services.ParcelInput true "Parcel"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parcels/{id} [put]
func (c *ParcelController) UpdateParcel() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ParcelInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	parcelService := c.Container.GetService("parcel").(services.InterfaceParcelService)
	parcel, err := parcelService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, parcel)
}

// DeleteParcel
// @Summary Delete a parcel
// @Description Admin or root.
// @Tags Parcel
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Parcel id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parcels/{id} [delete]
func (c *ParcelController) DeleteParcel() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	parcelService := c.Container.GetService("parcel").(services.InterfaceParcelService)
	if err := parcelService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
