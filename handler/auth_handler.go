package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type AuthHandler interface {
	HandleRegister(c *gin.Context)
	HandleLogin(c *gin.Context)
	HandleMe(c *gin.Context)
}

type authHandler struct {
	userService service.UserService
}

func NewAuthHandler(userService service.UserService) AuthHandler {
	return &authHandler{
		userService: userService,
	}
}

func (h *authHandler) HandleRegister(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Register(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, user)
}

// HandleLogin accepts form fields (username, password) so that standard
// OAuth2 password-flow clients work unchanged.
func (h *authHandler) HandleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		badRequest(c, "username and password are required")
		return
	}

	token, err := h.userService.Login(c, username, password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (h *authHandler) HandleMe(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	user, err := h.userService.GetUser(c, claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, user)
}
