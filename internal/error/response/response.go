package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/models"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
)

// Response is the uniform HTTP envelope. Error is false on success; Object
// is omitted when there is no payload.
type Response struct {
	Error   bool        `json:"error"`
	Message string      `json:"message"`
	Object  interface{} `json:"object,omitempty"`
}

// Success writes a 200 envelope with the given payload.
func Success(c *gin.Context, object interface{}) {
	c.JSON(http.StatusOK, Response{
		Error:   false,
		Message: code.GetMessage(code.ErrSuccess),
		Object:  object,
	})
}

// Created writes a 201 envelope with the given payload.
func Created(c *gin.Context, object interface{}) {
	c.JSON(http.StatusCreated, Response{
		Error:   false,
		Message: code.GetMessage(code.ErrSuccess),
		Object:  object,
	})
}

// Paginated writes a 200 envelope for a list result and sets the
// X-Total-Pages / X-Remaining-Pages headers.
func Paginated(c *gin.Context, items interface{}, total int64, q models.PaginationQuery) {
	c.Header("X-Total-Pages", strconv.FormatInt(models.TotalPages(total, q.PerPage), 10))
	c.Header("X-Remaining-Pages", strconv.FormatInt(models.RemainingPages(total, q.Page, q.PerPage), 10))
	Success(c, items)
}

// Fail writes an error envelope using the code's default message.
func Fail(c *gin.Context, errorCode int) {
	FailWithMessage(c, errorCode, code.GetMessage(errorCode))
}

// FailWithMessage writes an error envelope with a custom message.
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), Response{
		Error:   true,
		Message: message,
	})
}

// ParamError writes a 400 validation failure.
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrValidation, message)
}

// NotFound writes a 404. Cross-tenant lookups use this too, so callers
// cannot distinguish "missing" from "not yours".
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message)
}

// Unauthorized writes the single generic 401. Decode, lookup and
// revocation failures all collapse here on purpose.
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}

// Forbidden writes a 403 for role/scope mismatches that should be visible
// as such (mutations on resources the caller can see but not touch).
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrForbidden)
}

// ServerError writes a generic 500; detail stays in the server log.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}
