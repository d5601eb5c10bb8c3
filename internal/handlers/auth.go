package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwell-dev/inkwell/internal/apperr"
	"github.com/inkwell-dev/inkwell/internal/httpx"
	"github.com/inkwell-dev/inkwell/internal/services"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.Error(ctx, apperr.Validation("Invalid request body"))
		return
	}

	result, err := h.auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.Created(ctx, result, "User registered successfully")
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		httpx.Error(ctx, apperr.Validation("Invalid request body"))
		return
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		httpx.Error(ctx, err)
		return
	}

	httpx.OK(ctx, result, "Login successful")
}
