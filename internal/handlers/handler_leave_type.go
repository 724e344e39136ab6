package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
	"github.com/hrkit/leave_management_app/internal/middleware"
)

type leaveTypeHandler struct {
	leaveTypeService portssvc.LeaveTypeSvcFacade
}

func newLeaveTypeHandler(ls portssvc.LeaveTypeSvcFacade) *leaveTypeHandler {
	return &leaveTypeHandler{leaveTypeService: ls}
}

// registerLeaveTypeRoutes registers routes related to the leave type catalog.
func registerLeaveTypeRoutes(rg *gin.RouterGroup, leaveTypeService portssvc.LeaveTypeSvcFacade) {
	h := newLeaveTypeHandler(leaveTypeService)

	leaveTypes := rg.Group("/leave-types")
	{
		leaveTypes.POST("", h.createLeaveType)
		leaveTypes.GET("", h.listLeaveTypes)
		leaveTypes.GET("/:id", h.getLeaveType)
		leaveTypes.PUT("/:id", h.updateLeaveType)
		leaveTypes.DELETE("/:id", h.deleteLeaveType)
	}
}

func (h *leaveTypeHandler) createLeaveType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("failed to bind create leave type request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	leaveType, err := h.leaveTypeService.CreateLeaveType(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveTypeResponse(leaveType))
}

func (h *leaveTypeHandler) listLeaveTypes(c *gin.Context) {
	leaveTypes, err := h.leaveTypeService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaveTypes": dto.ToLeaveTypeResponses(leaveTypes)})
}

func (h *leaveTypeHandler) getLeaveType(c *gin.Context) {
	leaveType, err := h.leaveTypeService.GetLeaveType(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveTypeResponse(leaveType))
}

func (h *leaveTypeHandler) updateLeaveType(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req dto.UpdateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format: " + err.Error()})
		return
	}

	leaveType, err := h.leaveTypeService.UpdateLeaveType(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveTypeResponse(leaveType))
}

func (h *leaveTypeHandler) deleteLeaveType(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := h.leaveTypeService.DeleteLeaveType(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
