package handlers

import (
	"net/http"

	"github.com/careerfolio/backend/internal/services"
	"github.com/careerfolio/backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	user, err := h.svc.Register(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	ctx, cancel := requestCtx(c)
	defer cancel()

	token, err := h.svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	writeOK(c, http.StatusOK, LoginResponse{Token: token})
}
