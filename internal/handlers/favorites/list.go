package favorites

import (
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// List returns the user's favorites; an unknown user gets an empty list.
func (h *Handler) List(c *gin.Context) {
	user := common.UserID(c, h.defaultUserID)
	c.JSON(http.StatusOK, gin.H{"favorites": h.store.Favorites(user)})
}
