package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type MaterialUsageHandler interface {
	HandleLogUsage(c *gin.Context)
	HandleListUsage(c *gin.Context)
}

type materialUsageHandler struct {
	usageService service.MaterialUsageService
}

func NewMaterialUsageHandler(usageService service.MaterialUsageService) MaterialUsageHandler {
	return &materialUsageHandler{
		usageService: usageService,
	}
}

func (h *materialUsageHandler) HandleLogUsage(c *gin.Context) {
	var req types.LogMaterialUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	usage, err := h.usageService.Log(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, usage)
}

func (h *materialUsageHandler) HandleListUsage(c *gin.Context) {
	logs, err := h.usageService.ListByProject(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, logs)
}
