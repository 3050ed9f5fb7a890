// Package api implements the thin client for the remote contact fixture:
// list, create, update, delete, and fetch-one over JSON against a single
// base endpoint. No auth, no retries, no backoff; any failure is returned
// to the caller, who logs and absorbs it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/smileynet/rolodex/internal/contact"
)

// DefaultBaseURL is the public REST fixture the component was written against.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com/users"

// DefaultTimeout bounds each request when no deadline is on the context.
const DefaultTimeout = 10 * time.Second

// Client issues requests against one fixed base endpoint.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- wire types ---

// userRecord mirrors the fixture's user shape:
// {id, name, email, phone, company:{name}, website, address:{street, city}}.
type userRecord struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Company userCompany `json:"company"`
	Website string      `json:"website"`
	Address userAddress `json:"address"`
}

type userCompany struct {
	Name string `json:"name"`
}

type userAddress struct {
	Street string `json:"street"`
	City   string `json:"city"`
}

// draftBody is the JSON payload for create and update calls.
type draftBody struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   string      `json:"phone"`
	Company userCompany `json:"company"`
}

// createResponse carries the ID the fixture assigns on create.
type createResponse struct {
	ID int `json:"id"`
}

// List fetches the remote collection and maps each record to the Contact
// shape. Company is flattened to its plain name, or the fallback marker
// when the fixture has none.
func (c *Client) List(ctx context.Context) ([]contact.Contact, error) {
	var records []userRecord
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &records); err != nil {
		return nil, fmt.Errorf("api: list: %w", err)
	}

	contacts := make([]contact.Contact, len(records))
	for i, r := range records {
		contacts[i] = contact.Contact{
			ID:      r.ID,
			Name:    r.Name,
			Email:   r.Email,
			Phone:   r.Phone,
			Company: companyName(r.Company),
		}
	}
	c.log.Info("fetched contact list", zap.Int("count", len(contacts)))
	return contacts, nil
}

// Create posts the draft and returns the server-assigned ID. The fixture
// does not durably persist the record; that is its contract, not ours to
// compensate for.
func (c *Client) Create(ctx context.Context, d contact.Draft) (int, error) {
	var resp createResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL, body(d), &resp); err != nil {
		return 0, fmt.Errorf("api: create: %w", err)
	}
	c.log.Info("created contact", zap.Int("id", resp.ID))
	return resp.ID, nil
}

// Update puts the draft keyed by its ID. Success is judged solely by the
// HTTP status; the response body is ignored and the caller updates its
// state from the request payload.
func (c *Client) Update(ctx context.Context, d contact.Draft) error {
	url := fmt.Sprintf("%s/%d", c.baseURL, d.ID)
	if err := c.do(ctx, http.MethodPut, url, body(d), nil); err != nil {
		return fmt.Errorf("api: update %d: %w", d.ID, err)
	}
	c.log.Info("updated contact", zap.Int("id", d.ID))
	return nil
}

// Delete removes the record with the given ID. Success is judged solely
// by the HTTP status.
func (c *Client) Delete(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("api: delete %d: %w", id, err)
	}
	c.log.Info("deleted contact", zap.Int("id", id))
	return nil
}

// Get fetches one record and returns its supplementary detail fields,
// each falling back to the marker when the fixture has no value.
func (c *Client) Get(ctx context.Context, id int) (contact.Detail, error) {
	url := fmt.Sprintf("%s/%d", c.baseURL, id)
	var record userRecord
	if err := c.do(ctx, http.MethodGet, url, nil, &record); err != nil {
		return contact.Detail{}, fmt.Errorf("api: get %d: %w", id, err)
	}
	return contact.Detail{
		Website: orMarker(record.Website),
		Address: oneLineAddress(record.Address),
	}, nil
}

// do issues one request, decoding a JSON response into out when non-nil.
// A timeout is applied via the underlying client when the context carries
// no deadline of its own.
func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("unexpected status", zap.String("method", method), zap.String("url", url), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func body(d contact.Draft) draftBody {
	return draftBody{
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Company: userCompany{Name: d.Company},
	}
}

func companyName(co userCompany) string {
	return orMarker(co.Name)
}

// oneLineAddress synthesizes "street, city", dropping empty parts, or the
// fallback marker when both are absent.
func oneLineAddress(a userAddress) string {
	var parts []string
	if a.Street != "" {
		parts = append(parts, a.Street)
	}
	if a.City != "" {
		parts = append(parts, a.City)
	}
	if len(parts) == 0 {
		return contact.NotAvailable
	}
	return strings.Join(parts, ", ")
}

func orMarker(s string) string {
	if s == "" {
		return contact.NotAvailable
	}
	return s
}
