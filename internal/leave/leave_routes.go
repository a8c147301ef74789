package leave

import (
	"github.com/Arun-hash30/Attendence-helix/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	jwtSecret string,
	logger *zap.Logger,
) {
	leaves := r.Group("/leave")
	leaves.Use(middleware.AuthMiddleware(jwtSecret))
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("/types", handler.GetTypes)
		leaves.GET("/statuses", handler.GetStatuses)

		leaves.GET("/balance/:userId", middleware.OwnerOrPermission(rbacService, "userId", "leave", "read_all"), handler.GetBalance)
		leaves.POST("/apply/:userId",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "apply"),
			middleware.OwnerOrPermission(rbacService, "userId", "leave", "manage"),
			middleware.Idempotency(rdb, logger),
			handler.Apply,
		)
		leaves.GET("/my/:userId", middleware.OwnerOrPermission(rbacService, "userId", "leave", "read_all"), handler.GetMyLeaves)
		leaves.PUT("/cancel/:id/:userId", middleware.RateLimitByUser(1, 5), handler.Cancel)
		leaves.GET("/stats/:userId", middleware.OwnerOrPermission(rbacService, "userId", "leave", "read_all"), handler.GetStats)

		leaves.GET("/calendar/:year/:month", middleware.RBACAuthorize(rbacService, "leave", "calendar"), handler.GetCalendar)
		leaves.GET("/calendar/:year/:month/ics", middleware.RBACAuthorize(rbacService, "leave", "calendar"), handler.GetCalendarICS)
	}

	admin := leaves.Group("/admin")
	{
		admin.GET("/all", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.AdminGetAll)
		admin.GET("/stats", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.AdminStats)
		admin.GET("/users", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.AdminUsers)
		admin.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "leave", "read_all"),
			handler.AdminExport,
		)
		admin.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.AdminGetByID)
		admin.GET("/:id/history", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.AdminHistory)
		admin.PUT("/status/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			handler.AdminUpdateStatus,
		)
	}
}
