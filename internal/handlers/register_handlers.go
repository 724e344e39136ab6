package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/hrkit/leave_management_app/internal/core/ports/services"
	"github.com/hrkit/leave_management_app/internal/middleware"
	"github.com/hrkit/leave_management_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("invalid RATE_LIMIT, defaulting to 100-M", slog.String("rate_limit", cfg.RateLimit))
		rate, _ = limiter.NewRateFromFormatted("100-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1",
		middleware.RateLimit(ipLimiter),
		middleware.IdentityMiddleware(cfg.JWTSecret),
	)

	registerLeaveRoutes(v1, services.Leave)
	registerBalanceRoutes(v1, services.Balance)
	registerEmployeeRoutes(v1, services.Employee)
	registerLeaveTypeRoutes(v1, services.LeaveType)
	registerDepartmentRoutes(v1, services.Department)
	registerNotificationRoutes(v1, services.Notification)
}
