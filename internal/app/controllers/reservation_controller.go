package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// ReservationController handles common-area bookings.
type ReservationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewReservationController(ctx *gin.Context, container *container.ServiceContainer) *ReservationController {
	return &ReservationController{Ctx: ctx, Container: container}
}

// HandleReservationFunc returns a gin handler dispatching to the reservation
// controller.
func HandleReservationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewReservationController(ctx, container)

		switch method {
		case "getReservations":
			controller.GetReservations()
		case "getReservation":
			controller.GetReservation()
		case "createReservation":
			controller.CreateReservation()
		case "updateReservation":
			controller.UpdateReservation()
		case "deleteReservation":
			controller.DeleteReservation()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// GetReservations
// @Summary List reservations
// @Description Residents see their own bookings, admins their community's, root everything.
// @Tags Reservation
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param page query int false "Page, default 1"
// @Param per_page query int false "Items per page, default 10"
// @Success 200 {object} response.Response
// @Router /reservations [get]
func (c *ReservationController) GetReservations() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}
	page := bindPagination(c.Ctx)

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservations, total, err := reservationService.List(clr, page)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Paginated(c.Ctx, reservations, total, page)
}

// GetReservation
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Reservation id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id} [get]
func (c *ReservationController) GetReservation() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservation, err := reservationService.Get(clr, c.Ctx.Param("id"))
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reservation)
}

// CreateReservation
// @Summary Book a common area
// @Description Books the half-open window [start_time, end_time). Residents book for themselves; resident_id in the payload is ignored for them. A window colliding with an existing booking is rejected with 409 and the conflicting window in the message.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param body body services.ReservationInput true "Booking"
// @Success 201 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reservations [post]
func (c *ReservationController) CreateReservation() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ReservationInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservation, err := reservationService.Create(clr, req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, reservation)
}

// UpdateReservation
// @Summary Reschedule a reservation
// @Description Only bookings that have not started can move. The new window is overlap-checked against every other booking of the area.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Reservation id"
// @Param body body services.ReservationInput true "New window"
// @Success 200 {object} response.Response
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reservations/{id} [put]
func (c *ReservationController) UpdateReservation() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	var req services.ReservationInput
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	reservation, err := reservationService.Update(clr, c.Ctx.Param("id"), req)
	if err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reservation)
}

// DeleteReservation
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Param id path string true "Reservation id"
// @Success 200 {object} response.Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id} [delete]
func (c *ReservationController) DeleteReservation() {
	clr, ok := caller(c.Ctx)
	if !ok {
		return
	}

	reservationService := c.Container.GetService("reservation").(services.InterfaceReservationService)
	if err := reservationService.Delete(clr, c.Ctx.Param("id")); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
