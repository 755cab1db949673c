package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// defaultBackendURL is where the backend listens unless configured otherwise.
const defaultBackendURL = "http://localhost:8000"

// requestTimeout bounds the non-streaming endpoints (upload, reset, health).
// The chat stream deliberately has no timeout: its lifetime is controlled
// by the caller's context, and a stalled backend leaves the turn pending.
const requestTimeout = 60 * time.Second

// ChatRequest is the body of POST /chat_stream.
type ChatRequest struct {
	Message string `json:"message"`
	History []Turn `json:"history"`
}

// Client talks to the RAG backend over HTTP.
type Client struct {
	baseURL string

	// http serves the bounded request/response endpoints; streaming has
	// no client timeout so a slow stream is not cut off mid-response.
	http      *http.Client
	streaming *http.Client
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      &http.Client{Timeout: requestTimeout},
		streaming: &http.Client{},
	}
}

// ChatStream opens POST /chat_stream and returns the response body: a
// sequence of newline-delimited JSON events. The caller owns the body
// and must close it.
func (c *Client) ChatStream(ctx context.Context, req ChatRequest) (io.ReadCloser, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat_stream", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.streaming.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("chat_stream: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("chat_stream: backend returned %s", resp.Status)
	}
	return resp.Body, nil
}

// Upload sends the file at path as a multipart POST /upload and returns
// the server's confirmation message.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish upload form: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload: backend returned %s", resp.Status)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	return body.Message, nil
}

// Reset asks the backend to clear its conversation memory and returns
// the server's confirmation message.
func (c *Client) Reset(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/reset", nil)
	if err != nil {
		return "", fmt.Errorf("build reset request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("reset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("reset: backend returned %s", resp.Status)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode reset response: %w", err)
	}
	return body.Message, nil
}

// Health probes GET / and returns the backend's status line.
func (c *Client) Health(ctx context.Context) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("health: backend returned %s", resp.Status)
	}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode health response: %w", err)
	}
	if body.Message != "" {
		return body.Message, nil
	}
	return body.Status, nil
}
