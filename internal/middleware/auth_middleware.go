package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Arun-hash30/Attendence-helix/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// AuthMiddleware verifies an HS256 bearer token (header or access_token cookie)
// issued by the account service and exposes user_id and role to handlers.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		userID := claimString(claims["user_id"])
		if userID == "" {
			abortWith(c, ErrInvalidToken)
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextRole, role)

		ctx := contextutil.WithUserID(c.Request.Context(), userID)
		ctx = contextutil.WithRole(ctx, role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// user_id may be encoded as a JSON string or number.
func claimString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		if id <= 0 {
			return ""
		}
		return strconv.FormatUint(uint64(id), 10)
	default:
		return ""
	}
}

// ActorID reads the authenticated user id as an integer key.
func ActorID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.GetString(ContextUserID), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
