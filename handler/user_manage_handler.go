package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type UserManageHandler interface {
	HandleCreateStaff(c *gin.Context)
	HandleListUsers(c *gin.Context)
	HandleGetUser(c *gin.Context)
	HandleUpdateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)
}

type userManageHandler struct {
	userService service.UserService
}

func NewUserManageHandler(userService service.UserService) UserManageHandler {
	return &userManageHandler{
		userService: userService,
	}
}

func (h *userManageHandler) HandleCreateStaff(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateStaff(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, user)
}

func (h *userManageHandler) HandleListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, users)
}

func (h *userManageHandler) HandleGetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, user)
}

func (h *userManageHandler) HandleUpdateUser(c *gin.Context) {
	var req types.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateUser(c, c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, user)
}

func (h *userManageHandler) HandleDeleteUser(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	if err := h.userService.DeleteUser(c, claims.UserID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, nil)
}
