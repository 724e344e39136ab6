package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/dto"
	"github.com/hrkit/leave_management_app/internal/middleware"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvcFacade
}

func newBalanceHandler(bs portssvc.BalanceSvcFacade) *balanceHandler {
	return &balanceHandler{balanceService: bs}
}

// registerBalanceRoutes registers routes related to the balance ledger.
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvcFacade) {
	h := newBalanceHandler(balanceService)

	balances := rg.Group("/balances")
	{
		balances.GET("", h.listMyBalances)
		balances.GET("/:employeeID", h.listEmployeeBalances)
	}
}

func (h *balanceHandler) listMyBalances(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	balances, err := h.balanceService.ListBalances(c.Request.Context(), actor, actor.EmployeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": dto.ToBalanceResponses(balances)})
}

func (h *balanceHandler) listEmployeeBalances(c *gin.Context) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	balances, err := h.balanceService.ListBalances(c.Request.Context(), actor, c.Param("employeeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balances": dto.ToBalanceResponses(balances)})
}
