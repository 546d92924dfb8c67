package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns a middleware allowing cross-origin requests from the
// configured origins. The frontend is served from a different origin than
// the API in every deployment variant.
func CORS(allowOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	cfg.AllowCredentials = true

	for _, origin := range allowOrigins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			cfg.AllowCredentials = false
			cfg.AllowOrigins = nil
			return cors.New(cfg)
		}
	}

	cfg.AllowOrigins = allowOrigins
	return cors.New(cfg)
}
