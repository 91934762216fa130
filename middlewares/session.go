package middlewares

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yunusinal/lezzetlimani-sub001/pkg/resp"
	"github.com/yunusinal/lezzetlimani-sub001/utils"
)

const sessionHeader = "X-Session-ID"

// SessionMiddleware resolves the session key every store is scoped by.
// A valid Bearer token from the identity provider gives "user:<id>";
// otherwise the guest id from X-Session-ID (minted here on first contact)
// gives "guest:<id>". Browsing and cart building work for guests, so this
// never rejects a request.
func SessionMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := bearerToken(c); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil {
				c.Set("userId", claims.UserID)
				c.Set("session", "user:"+strconv.FormatUint(uint64(claims.UserID), 10))
				c.Next()
				return
			}
		}

		sid := c.GetHeader(sessionHeader)
		if sid == "" {
			// Websocket dials cannot set headers; guests pass ?sid= instead.
			sid = c.Query("sid")
		}
		if sid == "" {
			sid = uuid.NewString()
		}
		c.Header(sessionHeader, sid)
		c.Set("session", "guest:"+sid)
		c.Next()
	}
}

// RequireUser gates endpoints the boundary layer defers until login, such
// as the checkout handoff.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAuthenticated(c) {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	// Browsers cannot set headers on websocket dials.
	return c.Query("token")
}
