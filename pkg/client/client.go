package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bcacic/joyful-playroom-manager/pkg/domain"
)

// Collection routes on the booking service. The service names its resources
// in Serbian: Slavljenik is the profile record, Rodjendan the party record.
const (
	profilePath = "/api/Slavljenik"
	partyPath   = "/api/Rodjendan"
)

// Client is the booking service API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// New creates a new API client. A nil logger falls back to the standard one.
func New(baseURL string, log logrus.FieldLogger) *Client {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// --- Profile methods ---

// ListProfiles fetches all profile records.
func (c *Client) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := c.get(ctx, profilePath, &profiles); err != nil {
		return nil, fmt.Errorf("client.ListProfiles: %w", err)
	}
	return profiles, nil
}

// GetProfile fetches a single profile by ID.
func (c *Client) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	var p domain.Profile
	if err := c.get(ctx, profilePath+"/"+strconv.Itoa(id), &p); err != nil {
		return nil, fmt.Errorf("client.GetProfile: %w", err)
	}
	return &p, nil
}

// CreateProfile creates a new profile and returns the stored record.
func (c *Client) CreateProfile(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	var created domain.Profile
	if err := c.doRequest(ctx, http.MethodPost, profilePath, p, &created); err != nil {
		return nil, fmt.Errorf("client.CreateProfile: %w", err)
	}
	return &created, nil
}

// UpdateProfile replaces the profile with the given ID. The service answers
// with an empty body on success.
func (c *Client) UpdateProfile(ctx context.Context, id int, p domain.Profile) error {
	if err := c.doRequest(ctx, http.MethodPut, profilePath+"/"+strconv.Itoa(id), p, nil); err != nil {
		return fmt.Errorf("client.UpdateProfile: %w", err)
	}
	return nil
}

// DeleteProfile deletes a profile by ID.
func (c *Client) DeleteProfile(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, profilePath+"/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteProfile: %w", err)
	}
	return nil
}

// --- Party methods ---

// ListParties fetches all party records.
func (c *Client) ListParties(ctx context.Context) ([]domain.Party, error) {
	var parties []domain.Party
	if err := c.get(ctx, partyPath, &parties); err != nil {
		return nil, fmt.Errorf("client.ListParties: %w", err)
	}
	return parties, nil
}

// GetParty fetches a single party by ID.
func (c *Client) GetParty(ctx context.Context, id int) (*domain.Party, error) {
	var p domain.Party
	if err := c.get(ctx, partyPath+"/"+strconv.Itoa(id), &p); err != nil {
		return nil, fmt.Errorf("client.GetParty: %w", err)
	}
	return &p, nil
}

// CreateParty creates a new party and returns the stored record.
func (c *Client) CreateParty(ctx context.Context, p domain.Party) (*domain.Party, error) {
	var created domain.Party
	if err := c.doRequest(ctx, http.MethodPost, partyPath, p, &created); err != nil {
		return nil, fmt.Errorf("client.CreateParty: %w", err)
	}
	return &created, nil
}

// UpdateParty replaces the party with the given ID.
func (c *Client) UpdateParty(ctx context.Context, id int, p domain.Party) error {
	if err := c.doRequest(ctx, http.MethodPut, partyPath+"/"+strconv.Itoa(id), p, nil); err != nil {
		return fmt.Errorf("client.UpdateParty: %w", err)
	}
	return nil
}

// DeleteParty deletes a party by ID.
func (c *Client) DeleteParty(ctx context.Context, id int) error {
	if err := c.doRequest(ctx, http.MethodDelete, partyPath+"/"+strconv.Itoa(id), nil, nil); err != nil {
		return fmt.Errorf("client.DeleteParty: %w", err)
	}
	return nil
}

// get issues a read with at most one automatic retry. Transport failures and
// 5xx responses retry once; 4xx responses do not. Writes never pass through
// here: a failed create or update surfaces immediately so the operator can
// resubmit deliberately.
func (c *Client) get(ctx context.Context, path string, out any) error {
	err := c.doRequest(ctx, http.MethodGet, path, nil, out)
	if err == nil || ctx.Err() != nil {
		return err
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode < 500 {
		return err
	}
	c.log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("read failed, retrying once")
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	c.log.WithFields(logrus.Fields{
		"method":      method,
		"path":        path,
		"status":      resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("request done")

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // 1 MB max error body
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			msg = fmt.Sprintf("Error: %d", resp.StatusCode)
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
	}

	// Update and delete answer with an empty or non-JSON body; the caller's
	// zero value stands in for it.
	if out != nil && isJSON(resp) {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// isJSON reports whether the response declares a JSON payload.
func isJSON(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "application/json")
}
