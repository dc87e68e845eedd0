package controllers

import (
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/entity"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/pkg/resp"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/services"
	"github.com/Dee-Rock/Soucey-Fast-Food-sub000/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type AuthController struct{ auth *services.AuthService }

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req services.RegisterInput
	if !bind(c, &req) {
		return
	}
	u, err := a.auth.Register(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	token, _, err := a.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, AuthResponse{Token: token, User: u})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}
	token, u, err := a.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, AuthResponse{Token: token, User: u})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	u, err := a.auth.Me(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, u)
}
