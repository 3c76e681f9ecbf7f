package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type ExpenseHandler interface {
	HandleCreateExpense(c *gin.Context)
	HandleListExpenses(c *gin.Context)
	HandleVerifyExpense(c *gin.Context)
	HandleGetReceipt(c *gin.Context)
}

type expenseHandler struct {
	expenseService service.ExpenseService
	fileService    *service.FileService
}

func NewExpenseHandler(expenseService service.ExpenseService, fileService *service.FileService) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		fileService:    fileService,
	}
}

// HandleCreateExpense reads a multipart form: amount, description, date,
// project_id and a receipt file.
func (h *expenseHandler) HandleCreateExpense(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}

	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		badRequest(c, "amount must be a number")
		return
	}
	description := c.PostForm("description")
	if description == "" {
		badRequest(c, "description is required")
		return
	}
	projectID := c.PostForm("project_id")
	if projectID == "" {
		badRequest(c, "project_id is required")
		return
	}
	receipt, err := c.FormFile("receipt")
	if err != nil {
		badRequest(c, "receipt file is required")
		return
	}

	expense, err := h.expenseService.CreateExpense(c, claims.UserID, amount, description, c.PostForm("date"), projectID, receipt)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, expense)
}

func (h *expenseHandler) HandleListExpenses(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	expenses, err := h.expenseService.ListExpensesByProject(c, claims.UserID, claims.Role, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, expenses)
}

// HandleGetReceipt serves a stored receipt file. Authentication happens in
// the route group; the filename is validated against traversal.
func (h *expenseHandler) HandleGetReceipt(c *gin.Context) {
	path, found := h.fileService.ReceiptPath(c.Param("filename"))
	if !found {
		writeError(c, types.ErrNotFound)
		return
	}
	c.File(path)
}

func (h *expenseHandler) HandleVerifyExpense(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	var req types.VerifyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.expenseService.Verify(c, claims.UserID, c.Param("id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	ok(c, nil)
}
