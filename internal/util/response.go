package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error replies with {"message": msg} and the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ServerError logs the underlying cause and replies with a single
// opaque internal-error message. Callers never see partial results or
// error detail.
func ServerError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
