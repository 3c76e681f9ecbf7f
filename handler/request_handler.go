package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type RequestHandler interface {
	HandleCreateRequest(c *gin.Context)
	HandleResolveRequest(c *gin.Context)
	HandleListByProject(c *gin.Context)
	HandleListByWorker(c *gin.Context)
}

type requestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) RequestHandler {
	return &requestHandler{
		requestService: requestService,
	}
}

func (h *requestHandler) HandleCreateRequest(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	var req types.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	request, err := h.requestService.Create(c, claims.UserID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, request)
}

func (h *requestHandler) HandleResolveRequest(c *gin.Context) {
	var req types.ResolveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	request, err := h.requestService.Resolve(c, c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, request)
}

func (h *requestHandler) HandleListByProject(c *gin.Context) {
	requests, err := h.requestService.ListByProject(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, requests)
}

func (h *requestHandler) HandleListByWorker(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	requests, err := h.requestService.ListByWorker(c, claims.UserID, c.Param("workerId"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, requests)
}
