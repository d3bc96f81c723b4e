package handlers

import (
	"propulse-backend/helper"
	"propulse-backend/identity"
	"propulse-backend/middleware"
	"propulse-backend/models"
	"propulse-backend/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	_, identityErrors := h.authService.Register(req)
	if identityErrors != nil {
		h.Helper.SendBadRequest(c, "Registration failed", identityErrors)
		return
	}

	h.Helper.SendSuccess(c, "Register success", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendBadRequest(c, identity.InvalidLoginMessage, h.Helper.EmptyJsonMap())
		return
	}

	// Session cookie for browser clients; API clients use the token from
	// the body as a bearer token.
	c.SetCookie(middleware.SessionCookie, response.Token, 0, "/", "", false, true)

	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", user)
}
