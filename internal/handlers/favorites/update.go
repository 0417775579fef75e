package favorites

import (
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/common"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const storeName = "favorites"

// Update adds or removes one restaurant and returns the full collection.
// Flow:
// 1) Validate payload (action always, string restaurant for add/remove)
// 2) Apply the action; the user's entry is created even for unknown actions
// 3) Return the updated collection
//
// restaurant is only read by add/remove, so a stray value sent with any other
// action is ignored.
func (h *Handler) Update(c *gin.Context) {
	user := common.UserID(c, h.defaultUserID)

	var in struct {
		Action     *string      `json:"action"`
		Restaurant common.Field `json:"restaurant"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		common.BadRequest(c, "invalid JSON body")
		return
	}
	if in.Action == nil {
		common.MissingField(c, "action")
		return
	}
	action := *in.Action

	var restaurant string
	if action == common.ActionAdd || action == common.ActionRemove {
		r, ok := common.String(in.Restaurant)
		if !ok {
			common.MissingField(c, "restaurant")
			return
		}
		restaurant = r
	}

	var (
		list    []string
		changed bool
	)
	switch action {
	case common.ActionAdd:
		list, changed = h.store.AddFavorite(user, restaurant)
	case common.ActionRemove:
		list, changed = h.store.RemoveFavorite(user, restaurant)
	default:
		log.Debugf("favorites: ignoring unknown action %q for user %s", action, user)
		list = h.store.TouchFavorites(user)
	}

	outcome := metrics.OutcomeNoop
	if changed {
		outcome = action
	}
	h.metrics.ObserveMutation(storeName, outcome)

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": list})
}
