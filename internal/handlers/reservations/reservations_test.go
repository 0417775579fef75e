package reservations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(st *store.Memory, m *metrics.Metrics) *gin.Engine {
	h := NewHandler(st, "default_user", m)
	r := gin.New()
	r.GET("/api/reservations", h.List)
	r.POST("/api/reservations", h.Update)
	return r
}

func call(t *testing.T, r *gin.Engine, method, target, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestListUnknownUser(t *testing.T) {
	st := store.NewMemory()
	r := newRouter(st, nil)

	code, out := call(t, r, http.MethodGet, "/api/reservations?user_id=u1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"reservations": []any{}}, out)
	assert.Zero(t, st.ReservationUsers())
}

func TestAddPassesRecordThrough(t *testing.T) {
	r := newRouter(store.NewMemory(), nil)

	body := `{"action":"add","reservation":{"id":"1718000000000","restaurantName":"Sushi Place","time":"19:00","partySize":"2 people","extra":{"note":"window"}}}`
	code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", body)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, out["success"])

	list := out["reservations"].([]any)
	require.Len(t, list, 1)
	rec := list[0].(map[string]any)
	assert.Equal(t, "1718000000000", rec["id"])
	assert.Equal(t, "Sushi Place", rec["restaurantName"])
	assert.Equal(t, map[string]any{"note": "window"}, rec["extra"])
}

func TestRemoveMatchesByID(t *testing.T) {
	m := metrics.New()
	r := newRouter(store.NewMemory(), m)

	call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":1,"time":"19:00"}}`)
	call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":2,"time":"20:00"}}`)

	_, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"remove","reservation_id":1}`)
	list := out["reservations"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, float64(2), list[0].(map[string]any)["id"])

	_, out = call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"remove","reservation_id":"2"}`)
	assert.Len(t, out["reservations"], 1, "a string id never matches a numeric one")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreMutations.WithLabelValues(storeName, metrics.OutcomeAdd)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreMutations.WithLabelValues(storeName, metrics.OutcomeRemove)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.StoreMutations.WithLabelValues(storeName, metrics.OutcomeNoop)))
}

func TestDuplicatesAllowed(t *testing.T) {
	r := newRouter(store.NewMemory(), nil)

	for i := 0; i < 2; i++ {
		call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":"r1"}}`)
	}
	_, out := call(t, r, http.MethodGet, "/api/reservations?user_id=u1", "")
	assert.Len(t, out["reservations"], 2)
}

func TestRemoveForNewUser(t *testing.T) {
	st := store.NewMemory()
	r := newRouter(st, nil)

	code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"remove","reservation_id":"r1"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, out["reservations"])
	assert.Equal(t, 1, st.ReservationUsers())
}

func TestUnknownAction(t *testing.T) {
	st := store.NewMemory()
	st.AddReservation("u1", store.Reservation{"id": "r1"})
	r := newRouter(st, nil)

	code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"cancel-all"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, out["reservations"], 1)

	_, out = call(t, r, http.MethodPost, "/api/reservations?user_id=u2", `{"action":""}`)
	assert.Equal(t, []any{}, out["reservations"])
	assert.Equal(t, 2, st.ReservationUsers())
}

func TestUnusedFieldsAreNotDecoded(t *testing.T) {
	st := store.NewMemory()
	st.AddReservation("u1", store.Reservation{"id": "r1"})
	r := newRouter(st, nil)

	code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"remove","reservation_id":"r1","reservation":"x"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, out["reservations"])

	code, out = call(t, r, http.MethodPost, "/api/reservations?user_id=u2", `{"action":"noop","reservation":5,"reservation_id":{"a":1}}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, []any{}, out["reservations"])

	code, _ = call(t, r, http.MethodPost, "/api/reservations?user_id=u3", `{"action":"add","reservation":{"id":"r9"},"reservation_id":[1,2]}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, st.Reservations("u3"), 1)
}

func TestRemoveByNullID(t *testing.T) {
	st := store.NewMemory()
	r := newRouter(st, nil)

	call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":null,"time":"19:00"}}`)
	call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":"r2"}}`)

	code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"remove","reservation_id":null}`)
	assert.Equal(t, http.StatusOK, code)
	list := out["reservations"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, "r2", list[0].(map[string]any)["id"])
}

func TestUsersIsolated(t *testing.T) {
	r := newRouter(store.NewMemory(), nil)

	call(t, r, http.MethodPost, "/api/reservations?user_id=u1", `{"action":"add","reservation":{"id":"r1"}}`)
	call(t, r, http.MethodPost, "/api/reservations?user_id=u2", `{"action":"remove","reservation_id":"r1"}`)

	_, out := call(t, r, http.MethodGet, "/api/reservations?user_id=u1", "")
	assert.Len(t, out["reservations"], 1)
}

func TestUpdateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", "", "invalid JSON body"},
		{"not json", "action=add", "invalid JSON body"},
		{"reservation not an object", `{"action":"add","reservation":"r1"}`, "missing field: reservation"},
		{"reservation is a list", `{"action":"add","reservation":[{"id":"r1"}]}`, "missing field: reservation"},
		{"null reservation", `{"action":"add","reservation":null}`, "missing field: reservation"},
		{"missing action", `{"reservation":{"id":"r1"}}`, "missing field: action"},
		{"add without reservation", `{"action":"add"}`, "missing field: reservation"},
		{"add without id", `{"action":"add","reservation":{"time":"19:00"}}`, "missing field: reservation.id"},
		{"remove without id", `{"action":"remove"}`, "missing field: reservation_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := store.NewMemory()
			r := newRouter(st, nil)

			code, out := call(t, r, http.MethodPost, "/api/reservations?user_id=u1", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, "invalid_request", out["error"])
			assert.Equal(t, tt.message, out["message"])
			assert.Zero(t, st.ReservationUsers())
		})
	}
}
