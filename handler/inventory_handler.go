package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type InventoryHandler interface {
	HandleCreateItem(c *gin.Context)
	HandleListItems(c *gin.Context)
	HandleAttachImage(c *gin.Context)
}

type inventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
	}
}

func (h *inventoryHandler) HandleCreateItem(c *gin.Context) {
	var req types.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventoryService.CreateItem(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, item)
}

func (h *inventoryHandler) HandleListItems(c *gin.Context) {
	items, err := h.inventoryService.ListItemsByProject(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, items)
}

func (h *inventoryHandler) HandleAttachImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required")
		return
	}

	item, err := h.inventoryService.AttachImage(c, c.Param("id"), file)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, item)
}
