package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
	"github.com/hrkit/leave_management_app/internal/middleware"
)

// leaveHandler handles HTTP requests related to leave applications.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

// registerLeaveRoutes registers routes related to leave applications.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leaves := rg.Group("/leaves")
	{
		leaves.POST("", h.submitLeave)
		leaves.GET("", h.listMyLeaves)
		leaves.GET("/pending", h.listPendingReviews)
		leaves.POST("/conflict-check", h.checkConflict)
		leaves.GET("/:id", h.getLeave)
		leaves.POST("/:id/approve", h.approveLeave)
		leaves.POST("/:id/reject", h.rejectLeave)
		leaves.POST("/:id/cancel", h.cancelLeave)
	}
}

func (h *leaveHandler) submitLeave(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind submit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	application, err := h.leaveService.Submit(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveApplicationResponse(application))
}

func (h *leaveHandler) listMyLeaves(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	limit, offset := paginationParams(c)

	applications, err := h.leaveService.ListMyApplications(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToLeaveApplicationResponses(applications)})
}

func (h *leaveHandler) listPendingReviews(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	limit, offset := paginationParams(c)

	applications, err := h.leaveService.ListPendingForReviewer(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaves": dto.ToLeaveApplicationResponses(applications)})
}

func (h *leaveHandler) checkConflict(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}
	start, err := time.ParseInLocation(dto.DateLayout, req.StartDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be formatted as " + dto.DateLayout})
		return
	}
	end, err := time.ParseInLocation(dto.DateLayout, req.EndDate, time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be formatted as " + dto.DateLayout})
		return
	}

	conflict, err := h.leaveService.CheckConflict(c.Request.Context(), actor, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflict": conflict})
}

func (h *leaveHandler) getLeave(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	application, err := h.leaveService.GetApplication(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponse(application))
}

func (h *leaveHandler) approveLeave(c *gin.Context) {
	h.decide(c, true)
}

func (h *leaveHandler) rejectLeave(c *gin.Context) {
	h.decide(c, false)
}

func (h *leaveHandler) decide(c *gin.Context, approve bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind decision request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	decision := h.leaveService.Reject
	if approve {
		decision = h.leaveService.Approve
	}
	application, err := decision(c.Request.Context(), actor, c.Param("id"), req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponse(application))
}

func (h *leaveHandler) cancelLeave(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	application, err := h.leaveService.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveApplicationResponse(application))
}
