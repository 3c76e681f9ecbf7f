package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mazikuben/construction-be/middleware"
	"github.com/mazikuben/construction-be/service"
	"github.com/mazikuben/construction-be/types"
)

type ProjectHandler interface {
	HandleCreateProject(c *gin.Context)
	HandleGetProject(c *gin.Context)
	HandleListProjects(c *gin.Context)
	HandleUpdateProject(c *gin.Context)
	HandleDeleteProject(c *gin.Context)
	HandleAddProgressReport(c *gin.Context)
	HandleListProgressReports(c *gin.Context)
	HandleProjectSummary(c *gin.Context)
}

type projectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

func (h *projectHandler) HandleCreateProject(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	var req types.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(c, claims.UserID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	created(c, project)
}

func (h *projectHandler) HandleGetProject(c *gin.Context) {
	project, err := h.loadAuthorized(c)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, project)
}

// HandleListProjects supports status and client_id query filters. Clients
// are always scoped to their own projects regardless of the filter sent.
func (h *projectHandler) HandleListProjects(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}

	if claims.Role == types.USER_ROLE_CLIENT {
		projects, err := h.projectService.ListProjectsByClient(c, claims.UserID)
		if err != nil {
			writeError(c, err)
			return
		}
		ok(c, projects)
		return
	}

	projects, err := h.projectService.ListProjects(c, c.Query("status"), c.Query("client_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, projects)
}

func (h *projectHandler) HandleUpdateProject(c *gin.Context) {
	var req types.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(c, c.Param("id"), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, project)
}

func (h *projectHandler) HandleDeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	ok(c, nil)
}

func (h *projectHandler) HandleAddProgressReport(c *gin.Context) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		writeError(c, types.ErrInvalidCredentials)
		return
	}
	var req types.CreateProgressReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.AddProgressReport(c, c.Param("id"), claims.UserID, &req); err != nil {
		writeError(c, err)
		return
	}
	created(c, nil)
}

func (h *projectHandler) HandleListProgressReports(c *gin.Context) {
	if _, err := h.loadAuthorized(c); err != nil {
		writeError(c, err)
		return
	}
	reports, err := h.projectService.ListProgressReports(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, reports)
}

func (h *projectHandler) HandleProjectSummary(c *gin.Context) {
	if _, err := h.loadAuthorized(c); err != nil {
		writeError(c, err)
		return
	}
	summary, err := h.projectService.Summarize(c, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	ok(c, summary)
}

// loadAuthorized fetches the project named by the path and applies the
// read rule: managers and workers see any project, clients only their own.
func (h *projectHandler) loadAuthorized(c *gin.Context) (*types.Project, error) {
	claims, okClaims := middleware.ClaimsFrom(c)
	if !okClaims {
		return nil, types.ErrInvalidCredentials
	}
	project, err := h.projectService.GetProject(c, c.Param("id"))
	if err != nil {
		return nil, err
	}
	if claims.Role == types.USER_ROLE_CLIENT && project.ClientID != claims.UserID {
		return nil, types.ErrForbidden
	}
	return project, nil
}
