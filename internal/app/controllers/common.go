package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/middleware"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// ErrorResponse documents the error envelope in swagger output.
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message"`
}

// caller pulls the authenticated principal off the context. The auth guard
// runs before every handler that calls this; a missing caller means the
// route was wired without the guard, which is a server bug, not a client
// error.
func caller(ctx *gin.Context) (services.Caller, bool) {
	c, ok := middleware.GetCaller(ctx)
	if !ok {
		response.Unauthorized(ctx)
		return services.Caller{}, false
	}
	return c, true
}

// bindPagination reads page/per_page query parameters with their defaults.
func bindPagination(ctx *gin.Context) models.PaginationQuery {
	var q models.PaginationQuery
	_ = ctx.ShouldBindQuery(&q)
	q.Normalize()
	return q
}

// writeServiceError translates a service-layer error into the response
// envelope and status the API contract promises.
func writeServiceError(ctx *gin.Context, err error) {
	var overlap *services.OverlapError

	switch {
	case errors.Is(err, services.ErrNotFound):
		response.NotFound(ctx, "record not found")
	case errors.Is(err, services.ErrNotPermitted):
		response.Forbidden(ctx)
	case errors.Is(err, services.ErrUnauthorized):
		response.Unauthorized(ctx)
	case errors.Is(err, services.ErrEmailTaken):
		response.Fail(ctx, code.ErrEmailTaken)
	case errors.Is(err, services.ErrPlateTaken):
		response.Fail(ctx, code.ErrPlateTaken)
	case errors.Is(err, services.ErrInvalidWindow):
		response.Fail(ctx, code.ErrReservationWindow)
	case errors.Is(err, services.ErrElectionClosed):
		response.Fail(ctx, code.ErrElectionClosed)
	case errors.Is(err, services.ErrResetTokenInvalid):
		response.Fail(ctx, code.ErrResetTokenInvalid)
	case errors.As(err, &overlap):
		response.FailWithMessage(ctx, code.ErrReservationOverlap, overlap.Error())
	default:
		response.FailWithMessage(ctx, code.ErrDatabase, err.Error())
	}
}
