package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"anime-hub/domain/dto"
	"anime-hub/infrastructure/configuration"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// Auth validates the Bearer token and stores the caller's identity on the
// request context (user_id, email, is_admin).
func Auth() gin.HandlerFunc {
	var res dto.Res
	res.ResponseCode = "401"
	res.ResponseMessage = "Unauthorized"

	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}
		parts := strings.Split(authorization, "Bearer ")
		if len(parts) != 2 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(configuration.C.App.SecretKey), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		if userID, ok := claims["user_id"].(string); ok {
			ctx.Set("user_id", userID)
		}
		if email, ok := claims["email"].(string); ok {
			ctx.Set("email", email)
		}
		isAdmin, _ := claims["is_admin"].(bool)
		ctx.Set("is_admin", isAdmin)

		ctx.Next()
	}
}

// AdminOnly rejects callers whose token lacks the admin flag. Must run after
// Auth.
func AdminOnly() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !ctx.GetBool("is_admin") {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Not authorized as admin"})
			return
		}
		ctx.Next()
	}
}
