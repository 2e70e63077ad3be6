// Package api wraps the portfolio backend's REST endpoints and normalizes
// success/failure into typed results. The backend contract is fixed:
//
//	GET    /works           -> 200 []Work
//	GET    /categories      -> 200 []Category
//	POST   /users/login     -> 200 {token,userId}   (400/401 = bad credentials)
//	POST   /works           -> 201 Work             (bearer, multipart)
//	DELETE /works/:id       -> 204                  (bearer)
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"atelier-cli/internal/model"
)

// Client talks to one backend. The zero value is not usable; use New.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the backend rooted at baseURL (e.g.
// "http://localhost:5678/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient is New with a caller-supplied http.Client (tests).
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	c := New(baseURL)
	if hc != nil {
		c.http = hc
	}
	return c
}

// Session is a successful login result.
type Session struct {
	Token  string `json:"token"`
	UserID int64  `json:"userId"`
}

// ListWorks fetches every work, in backend order.
func (c *Client) ListWorks(ctx context.Context) ([]model.Work, error) {
	var works []model.Work
	if err := c.do(ctx, http.MethodGet, "/works", nil, "", "", &works); err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	return works, nil
}

// ListCategories fetches the known categories.
func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var cats []model.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, "", "", &cats); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

// Login exchanges credentials for a session token. 400/401 mean bad
// credentials; callers can test with IsInvalidCredentials.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}
	var s Session
	if err := c.do(ctx, http.MethodPost, "/users/login", body, "", "", &s); err != nil {
		return Session{}, fmt.Errorf("login: %w", err)
	}
	return s, nil
}

// CreateWorkRequest is the multipart payload for a new work.
type CreateWorkRequest struct {
	Title      string
	CategoryID int64
	ImageName  string
	Image      io.Reader
}

// CreateWork uploads a new work and returns the backend's representation.
// The response's category shape is not guaranteed to match list responses;
// callers normalize it with model.NormalizeCategory.
func (c *Client) CreateWork(ctx context.Context, req CreateWorkRequest, token string) (model.Work, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("image", filepath.Base(req.ImageName))
	if err != nil {
		return model.Work{}, fmt.Errorf("create work: %w", err)
	}
	if _, err := io.Copy(part, req.Image); err != nil {
		return model.Work{}, fmt.Errorf("create work: read image: %w", err)
	}
	if err := mw.WriteField("title", req.Title); err != nil {
		return model.Work{}, fmt.Errorf("create work: %w", err)
	}
	if err := mw.WriteField("category", fmt.Sprintf("%d", req.CategoryID)); err != nil {
		return model.Work{}, fmt.Errorf("create work: %w", err)
	}
	if err := mw.Close(); err != nil {
		return model.Work{}, fmt.Errorf("create work: %w", err)
	}

	var w model.Work
	if err := c.do(ctx, http.MethodPost, "/works", &buf, mw.FormDataContentType(), token, &w); err != nil {
		return model.Work{}, fmt.Errorf("create work: %w", err)
	}
	return w, nil
}

// DeleteWork removes a work by id. A 204 is success with no body.
func (c *Client) DeleteWork(ctx context.Context, id int64, token string) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/works/%d", id), nil, "", token, nil); err != nil {
		return fmt.Errorf("delete work %d: %w", id, err)
	}
	return nil
}

// do is the request helper under every operation:
//   - a plain body is JSON-encoded; an io.Reader body (a prepared multipart
//     stream) passes through untouched with the caller's Content-Type,
//   - any non-2xx status becomes *HTTPError carrying the status code,
//   - 204 No Content returns without touching out,
//   - the body is decoded into out only when the response declares a JSON
//     content type; anything else is discarded.
func (c *Client) do(ctx context.Context, method, path string, body any, contentType, token string, out any) error {
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		rd = b
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return &HTTPError{Status: resp.StatusCode}
	}
	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/json" {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
