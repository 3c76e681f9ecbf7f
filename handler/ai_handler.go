package handler

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
	"github.com/mazikuben/construction-be/utils"
)

type AIHandler interface {
	HandleManagerAdvice(c *gin.Context)
	HandleWorkerHelp(c *gin.Context)
	HandleClientAnalysis(c *gin.Context)
}

type aiHandler struct {
	assistService service.AssistService
}

func NewAIHandler(assistService service.AssistService) AIHandler {
	return &aiHandler{
		assistService: assistService,
	}
}

func (h *aiHandler) HandleManagerAdvice(c *gin.Context) {
	var req types.ManagerAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	advice, err := h.assistService.ManagerAdvice(c, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, advice)
}

// HandleWorkerHelp reads a multipart form: a query field plus an optional
// image file that is forwarded to the model inline.
func (h *aiHandler) HandleWorkerHelp(c *gin.Context) {
	query := c.PostForm("query")
	if query == "" {
		badRequest(c, "query is required")
		return
	}

	imageBase64 := ""
	if file, err := c.FormFile("image"); err == nil {
		raw, err := utils.ReadUploadedFile(file)
		if err != nil {
			writeError(c, err)
			return
		}
		imageBase64 = base64.StdEncoding.EncodeToString(raw)
	}

	guidance, err := h.assistService.WorkerHelp(c, query, imageBase64)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, guidance)
}

func (h *aiHandler) HandleClientAnalysis(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	var req types.ClientAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	analysis, err := h.assistService.ClientAnalysis(c, claims.UserID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, analysis)
}
