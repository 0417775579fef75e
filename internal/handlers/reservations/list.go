package reservations

import (
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/common"
	"github.com/gin-gonic/gin"
)

// List returns the user's reservations in insertion order.
// An unknown user gets an empty list and no entry is created.
func (h *Handler) List(c *gin.Context) {
	user := common.UserID(c, h.defaultUserID)
	c.JSON(http.StatusOK, gin.H{"reservations": h.store.Reservations(user)})
}
