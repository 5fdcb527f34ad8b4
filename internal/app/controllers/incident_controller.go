package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// IncidentController handles problem reports.
type IncidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewIncidentController(ctx *gin.Context, container *container.ServiceContainer) *IncidentController {
	return &IncidentController{Ctx: ctx, Container: container}
}

// HandleIncidentFunc returns a gin handler dispatching to the incident
// controller.
func HandleIncidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewIncidentController(ctx, container)

		switch method {
		case "getIncidents":
			controller.GetIncidents()
		case "getIncident":
			controller.GetIncident()
		case "createIncident":
			controller.CreateIncident()
		case "updateIncident":
			controller.UpdateIncident()
		case "deleteIncident":
			controller.DeleteIncident()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetIncidents
// @Summary List incidents
// @Description Residents see their own reports, admins their community's, root everything.
// @Tags Incident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /incidents [get]
func (c *IncidentController) GetIncidents() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	incidentService := c.Container.GetService("incident").(services.InterfaceIncidentService)
	incidents, total, err := incidentService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, incidents, total, page)
}

// GetIncident
// @Summary Get an incident
// @Tags Incident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Incident id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /incidents/{id} [get]
func (c *IncidentController) GetIncident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	incidentService := c.Container.GetService("incident").(services.InterfaceIncidentService)
	incident, err := incidentService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, incident)
}

// CreateIncident
// @Summary File an incident
// @Description Residents file for themselves; admins and root may file on behalf of a resident. New reports open in status "open" and are broadcast to the community notice topic.
// @Tags Incident
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.IncidentInput true "Incident"
// @Success 201 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Router /incidents [post]
func (c *IncidentController) CreateIncident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.IncidentInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	incidentService := c.Container.GetService("incident").(services.InterfaceIncidentService)
	incident, err := incidentService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, incident)
}

// UpdateIncident
// @Summary Replace an incident
// @Description Residents may edit their own report's subject and description; status moves (open, in_progress, resolved) are for admins and root and are broadcast as notices.
// @Tags Incident
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Incident id"
// @Param body body services.IncidentInput true "Incident"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /incidents/{id} [put]
func (c *IncidentController) UpdateIncident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.IncidentInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	incidentService := c.Container.GetService("incident").(services.InterfaceIncidentService)
	incident, err := incidentService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, incident)
}

// DeleteIncident
// @Summary Delete an incident
// @Description Admin or root.
// @Tags Incident
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Incident id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /incidents/{id} [delete]
func (c *IncidentController) DeleteIncident() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	incidentService := c.Container.GetService("incident").(services.InterfaceIncidentService)
	if err := incidentService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
