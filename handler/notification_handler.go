package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type NotificationHandler interface {
	HandleListNotifications(c *gin.Context)
	HandleMarkRead(c *gin.Context)
	HandleStream(c *gin.Context)
}

type notificationHandler struct {
	notificationService service.NotificationService
	streamService       *service.StreamService
}

func NewNotificationHandler(notificationService service.NotificationService, streamService *service.StreamService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
		streamService:       streamService,
	}
}

func (h *notificationHandler) HandleListNotifications(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	notifications, err := h.notificationService.ListForUser(c, claims.UserID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, notifications)
}

func (h *notificationHandler) HandleMarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, nil)
}

// HandleStream upgrades the connection to a websocket that receives the
// caller's notifications as they are created.
func (h *notificationHandler) HandleStream(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	h.streamService.HandleStream(claims.UserID, c.Writer, c.Request)
}
