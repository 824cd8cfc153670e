package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/syukranDev/mytrackerwallet-v2/internal/middleware"
	"github.com/syukranDev/mytrackerwallet-v2/internal/models"
)

// currentUser pulls the authenticated user the auth middleware stored
// in the context.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
