package utils

import "github.com/gin-gonic/gin"

// RespondError writes the flat error body the frontend expects. The
// travel-plan contract has no response envelope, so errors are a single
// "error" key and nothing else.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
