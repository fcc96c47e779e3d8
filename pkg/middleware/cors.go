package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the local dev frontends plus whatever is configured
// in FRONTEND_URL (comma-separated).
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURL != "" {
		for _, u := range strings.Split(frontendURL, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
