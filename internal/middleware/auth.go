package middleware

import (
	"net/http"

	"fakeshop-io/api/internal/auth"
	"fakeshop-io/api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Auth rejects requests without a valid access token.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := auth.ExtractToken(c)
		if tokenString == "" {
			util.HandleError(c, http.StatusUnauthorized, errors.New("request does not contain an access token"))
			c.Abort()
			return
		}
		if _, err := auth.ValidateToken(tokenString); err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a route to tokens carrying the admin flag. It assumes
// Auth already ran on the group.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claim, err := auth.InitJwtClaim(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if !claim.IsAdmin {
			util.HandleError(c, http.StatusForbidden, errors.New("insufficient permissions: admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
