package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// User is one seed entry.
type User struct {
	UserID       string              `yaml:"user_id"`
	Favorites    []string            `yaml:"favorites"`
	Reservations []store.Reservation `yaml:"reservations"`
}

// Load reads a seed file. Accepts a list or {users: [...]}.
func Load(path string) ([]User, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", path)
	}

	var wrapped struct {
		Users []User `yaml:"users"`
	}
	if err := yaml.Unmarshal(b, &wrapped); err == nil && wrapped.Users != nil {
		return wrapped.Users, nil
	}

	var list []User
	if err := yaml.Unmarshal(b, &list); err != nil {
		return nil, errors.Wrapf(err, "parse seed file %s", path)
	}
	return list, nil
}

// Client replays seed entries through the public API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: &http.Transport{Proxy: http.ProxyFromEnvironment},
		},
	}
}

// Result counts what Apply did.
type Result struct {
	Favorites    int
	Reservations int
	Skipped      int
	Failed       int
}

// Apply posts every favorite and reservation. It keeps going after
// individual failures and reports them in the result.
func (c *Client) Apply(ctx context.Context, users []User) Result {
	var res Result
	for _, u := range users {
		for _, f := range u.Favorites {
			body := map[string]any{"action": "add", "restaurant": f}
			if err := c.post(ctx, "/api/favorites", u.UserID, body); err != nil {
				log.Errorf("favorite %q for %s: %v", f, display(u.UserID), err)
				res.Failed++
				continue
			}
			res.Favorites++
		}
		for _, r := range u.Reservations {
			if _, ok := r.ID(); !ok {
				log.Warnf("skipping reservation without %s for %s: %v", store.IDField, display(u.UserID), r)
				res.Skipped++
				continue
			}
			body := map[string]any{"action": "add", "reservation": r}
			if err := c.post(ctx, "/api/reservations", u.UserID, body); err != nil {
				log.Errorf("reservation %v for %s: %v", r[store.IDField], display(u.UserID), err)
				res.Failed++
				continue
			}
			res.Reservations++
		}
	}
	return res
}

func (c *Client) post(ctx context.Context, path, userID string, body any) error {
	target := c.BaseURL + path
	if userID != "" {
		target += "?user_id=" + url.QueryEscape(userID)
	}
	b, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode body")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		rb, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	return nil
}

func display(userID string) string {
	if userID == "" {
		return "default user"
	}
	return userID
}
