package reservations

import (
	"net/http"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/handlers/common"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const storeName = "reservations"

// Update adds or cancels reservations and returns the full collection.
//
// add:    "reservation" must be an object with an "id"; it is appended as-is.
// remove: every record whose id equals "reservation_id" is dropped. An
//         explicit null matches records whose id is null.
// Any other action leaves the collection untouched but still creates the
// user's entry. Each action only decodes the fields it reads, and payload
// problems are reported as 400 before the store is hit.
func (h *Handler) Update(c *gin.Context) {
	user := common.UserID(c, h.defaultUserID)

	var in struct {
		Action        *string      `json:"action"`
		Reservation   common.Field `json:"reservation"`
		ReservationID common.Field `json:"reservation_id"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		common.BadRequest(c, "invalid JSON body")
		return
	}
	if in.Action == nil {
		common.MissingField(c, "action")
		return
	}

	var (
		list    []store.Reservation
		outcome = metrics.OutcomeNoop
	)
	switch action := *in.Action; action {
	case common.ActionAdd:
		obj, ok := common.Object(in.Reservation)
		if !ok {
			common.MissingField(c, "reservation")
			return
		}
		rec := store.Reservation(obj)
		if _, ok := rec.ID(); !ok {
			common.MissingField(c, "reservation."+store.IDField)
			return
		}
		list = h.store.AddReservation(user, rec)
		outcome = metrics.OutcomeAdd
	case common.ActionRemove:
		id, ok := common.Value(in.ReservationID)
		if !ok {
			common.MissingField(c, "reservation_id")
			return
		}
		var removed int
		list, removed = h.store.RemoveReservation(user, id)
		if removed > 0 {
			outcome = metrics.OutcomeRemove
		}
	default:
		log.Debugf("reservations: ignoring unknown action %q for user %s", action, user)
		list = h.store.TouchReservations(user)
	}
	h.metrics.ObserveMutation(storeName, outcome)

	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": list})
}
