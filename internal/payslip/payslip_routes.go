package payslip

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
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware(jwtSecret))
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.POST("/salary/:userId", middleware.RBACAuthorize(rbacService, "payslip", "manage"), handler.CreateSalaryStructure)
		payslips.GET("/salary/:userId", middleware.RBACAuthorize(rbacService, "payslip", "manage"), handler.GetSalaryStructure)
		payslips.POST("/generate",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "payslip", "manage"),
			middleware.Idempotency(rdb, logger),
			handler.Generate,
		)

		payslips.GET("/years", handler.GetYears)
		payslips.GET("/my/:userId", middleware.OwnerOrPermission(rbacService, "userId", "payslip", "manage"), handler.GetMine)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetByID)
		payslips.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "payslip", "manage"), handler.UpdateStatus)
		payslips.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payslip", "manage"), handler.Delete)
	}

	admin := payslips.Group("/admin")
	admin.Use(middleware.RBACAuthorize(rbacService, "payslip", "manage"))
	{
		admin.GET("/all", handler.AdminGetAll)
		admin.GET("/users", handler.AdminUsers)
		admin.GET("/stats", handler.AdminStats)
		admin.GET("/export", middleware.RateLimitByUser(0.2, 2), handler.AdminExport)
	}
}
