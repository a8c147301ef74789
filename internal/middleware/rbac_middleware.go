package middleware

import (
	"net/http"

	"github.com/Arun-hash30/Attendence-helix/internal/domain"
	"github.com/Arun-hash30/Attendence-helix/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authorize(c, service, resource, action) {
			return
		}
		c.Next()
	}
}

// OwnerOrPermission lets a user through when the :param path value is their own id;
// anyone else needs resource:action.
func OwnerOrPermission(service RBACService, param, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uid := c.GetString(ContextUserID); uid != "" && uid == c.Param(param) {
			c.Next()
			return
		}
		if !authorize(c, service, resource, action) {
			return
		}
		c.Next()
	}
}

// HasPermission reports whether the caller's role grants resource:action without aborting.
func HasPermission(c *gin.Context, service RBACService, resource, action string) bool {
	allowed, err := service.Enforce(domain.EnforceRequest{
		Subject:  c.GetString(ContextUserID),
		Role:     c.GetString(ContextRole),
		Resource: resource,
		Action:   action,
	})
	return err == nil && allowed
}

func authorize(c *gin.Context, service RBACService, resource, action string) bool {
	role := c.GetString(ContextRole)
	if role == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
		c.Abort()
		return false
	}

	allowed, err := service.Enforce(domain.EnforceRequest{
		Subject:  c.GetString(ContextUserID),
		Role:     role,
		Resource: resource,
		Action:   action,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		c.Abort()
		return false
	}
	if !allowed {
		response.Error(c, ErrForbidden.HTTPStatus, ErrForbidden.Code, ErrForbidden.Message, gin.H{
			"required": resource + ":" + action,
		})
		c.Abort()
		return false
	}
	return true
}
