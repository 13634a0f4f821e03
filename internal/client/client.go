// Package client habla con la API del sitio por HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"personal-site/internal/domain"
)

const maxBodyBytes = 1 << 20

// APIError es una respuesta no exitosa del servidor.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Client implementa las llamadas a la API usando net/http.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

type aboutPayload struct {
	Info   []string `json:"info"`
	Image  string   `json:"image"`
	Status string   `json:"status"`
}

type messagesPayload struct {
	Messages []domain.Message `json:"messages"`
	Status   string           `json:"status"`
}

type messagePayload struct {
	Message domain.Message `json:"message"`
	Status  string         `json:"status"`
}

type errorPayload struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
	Status string `json:"status"`
}

// About pide GET /about.
func (c *Client) About(ctx context.Context) (domain.About, error) {
	var out aboutPayload
	if err := c.do(ctx, http.MethodGet, "/about", nil, &out); err != nil {
		return domain.About{}, err
	}
	return domain.About{Info: out.Info, Image: out.Image}, nil
}

// ListMessages pide GET /messages.
func (c *Client) ListMessages(ctx context.Context) ([]domain.Message, error) {
	var out messagesPayload
	if err := c.do(ctx, http.MethodGet, "/messages", nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// GetMessage pide GET /messages/:messageId.
func (c *Client) GetMessage(ctx context.Context, id string) ([]domain.Message, error) {
	var out messagesPayload
	if err := c.do(ctx, http.MethodGet, "/messages/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// SaveMessage envía POST /messages/save.
func (c *Client) SaveMessage(ctx context.Context, name, message string) (domain.Message, error) {
	body := map[string]string{"name": name, "message": message}
	var out messagePayload
	if err := c.do(ctx, http.MethodPost, "/messages/save", body, &out); err != nil {
		return domain.Message{}, err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload errorPayload
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Status = payload.Status
			apiErr.Kind = payload.Error.Kind
			apiErr.Message = payload.Error.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
