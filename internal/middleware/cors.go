package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/config"
)

// CORS allows cross origin calls from the configured origins, or from any
// origin when the wildcard is configured.
func CORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, config.AllowAllOrigins) {
		corsConfig.AllowAllOrigins = true
		// Credentials cannot be combined with a wildcard origin.
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}
