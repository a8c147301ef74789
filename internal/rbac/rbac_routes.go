package rbac

import (
	"github.com/Arun-hash30/Attendence-helix/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, service Service, jwtSecret string) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(jwtSecret))
	{
		group.POST("/check", handler.Check)
		group.GET("/roles", middleware.RBACAuthorize(service, "rbac", "read"), handler.ListRoles)
	}
}
