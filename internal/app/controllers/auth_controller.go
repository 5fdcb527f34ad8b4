package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/app/middleware"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/domain/services/container"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/code"
	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/error/response"
)

// AuthController handles sign-in, sign-out and the password reset flow.
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{Ctx: ctx, Container: container}
}

// LoginRequest carries the sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

// ResetRequestRequest asks for a password reset mail.
type ResetRequestRequest struct {
	Email string `json:"email" binding:"required,email" example:"resident@example.com"`
}

// ResetConfirmRequest redeems a reset token for a new password.
type ResetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// HandleAuthFunc returns a gin handler dispatching to the auth controller.
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "requestPasswordReset":
			controller.RequestPasswordReset()
		case "confirmPasswordReset":
			controller.ConfirmPasswordReset()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// Login
// @Summary Sign in
// @Description Exchanges email and password for a session token. The account may be an admin or a resident.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password, c.Ctx.Request.UserAgent(), c.Ctx.ClientIP())
	if err != nil {
		// Bad email and bad password are indistinguishable on purpose.
		response.Fail(c.Ctx, code.ErrCredentials)
		return
	}

	response.Success(c.Ctx, result)
}

// Logout
// @Summary Sign out
// @Description Revokes the session behind the presented token.
// @Tags Auth
// @Produce json
// @Param X-Auth-Token header string true "Session token"
// @Success 200 {object} response.Response
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout() {
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)

	claims, err := jwtService.ParseClaims(c.Ctx.GetHeader(middleware.AuthHeader))
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}
	if err := jwtService.Logout(claims.TokenID); err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, nil)
}

// RequestPasswordReset
// @Summary Request a password reset
// @Description Mails a one-shot reset token to the account behind the email. Always answers 200 so the endpoint cannot be used to probe registered addresses.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetRequestRequest true "Account email"
// @Success 200 {object} response.Response
// @Router /auth/password-reset/request [post]
func (c *AuthController) RequestPasswordReset() {
	var req ResetRequestRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	resetService := c.Container.GetService("password_reset").(services.InterfacePasswordResetService)
	if err := resetService.Request(req.Email); err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, nil)
}

// ConfirmPasswordReset
// @Summary Confirm a password reset
// @Description Sets a new password using a mailed reset token. The token is single use and expires.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body ResetConfirmRequest true "Token and new password"
// @Success 200 {object} response.Response
// @Failure 401 {object} ErrorResponse
// @Router /auth/password-reset/confirm [post]
func (c *AuthController) ConfirmPasswordReset() {
	var req ResetConfirmRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, err.Error())
		return
	}

	resetService := c.Container.GetService("password_reset").(services.InterfacePasswordResetService)
	if err := resetService.Confirm(req.Token, req.NewPassword); err != nil {
		writeServiceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, nil)
}
