package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPRemote шлёт {message, context} в chat endpoint и читает {reply}.
type HTTPRemote struct {
	endpoint string
	client   *http.Client
}

// NewHTTPRemote: timeout 0 оставляет вызов без своего лимита.
func NewHTTPRemote(endpoint string, timeout time.Duration) *HTTPRemote {
	return &HTTPRemote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

type remoteRequest struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type remoteResponse struct {
	Reply *string `json:"reply"`
}

func (c *HTTPRemote) Reply(ctx context.Context, message string, siteContext string) (string, error) {
	b, err := json.Marshal(remoteRequest{Message: message, Context: siteContext})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %s body=%s", ErrBadResponse, resp.Status, body)
	}

	var out remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// нечитаемый body считаем сбоем транспорта
		return "", fmt.Errorf("chat endpoint: decoding response: %w", err)
	}
	if out.Reply == nil {
		return "", fmt.Errorf("%w: reply field missing", ErrBadResponse)
	}

	return *out.Reply, nil
}
