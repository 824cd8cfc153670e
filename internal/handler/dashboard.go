package handler

import (
	"net/http"

	"github.com/syukranDev/mytrackerwallet-v2/internal/dashboard"
	"github.com/syukranDev/mytrackerwallet-v2/internal/util"

	"github.com/gin-gonic/gin"
)

// DashboardHandler exposes the aggregated dashboard payload.
type DashboardHandler struct {
	Composer *dashboard.Composer
}

func NewDashboardHandler(composer *dashboard.Composer) *DashboardHandler {
	return &DashboardHandler{Composer: composer}
}

// GetDashboardData composes the full dashboard for the current user.
// Any underlying fetch failure aborts the whole response; there is no
// partial dashboard.
func (h *DashboardHandler) GetDashboardData(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, "Not authorized")
		return
	}

	payload, err := h.Composer.Compose(c.Request.Context(), user.ID)
	if err != nil {
		util.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, payload)
}
