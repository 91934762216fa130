package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:  []string{"*"}, // dev only; prod pins the storefront domain
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", "X-Session-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Session-ID"},
		MaxAge:        12 * time.Hour,
	}
	return cors.New(cfg)
}
