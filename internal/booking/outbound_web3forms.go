package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"
)

const (
	Subject  = "Новая запись в BAZA Barbershop"
	FromName = "BAZA Website"
)

type Web3FormsRelay struct {
	endpoint  string
	accessKey string
	client    *http.Client
}

func NewWeb3FormsRelay(endpoint, accessKey string, timeout time.Duration) *Web3FormsRelay {
	return &Web3FormsRelay{
		endpoint:  endpoint,
		accessKey: accessKey,
		client:    &http.Client{Timeout: timeout},
	}
}

// Submit шлёт форму как multipart вместе с access key и подписями.
func (c *Web3FormsRelay) Submit(ctx context.Context, req Request) (RelayResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"name", req.Name},
		{"phone", req.Phone},
		{"service", req.Service},
		{"date", req.Date},
		{"message", req.Message},
		{"subject", Subject},
		{"from_name", FromName},
		{"access_key", c.accessKey},
	}
	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return RelayResponse{}, err
		}
	}
	if err := mw.Close(); err != nil {
		return RelayResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return RelayResponse{}, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return RelayResponse{}, fmt.Errorf("forms relay: %w", err)
	}
	defer resp.Body.Close()

	// отказ API приходит в body при любом статусе
	var out RelayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return RelayResponse{}, fmt.Errorf("forms relay: status %s: decoding response: %w", resp.Status, err)
	}

	return out, nil
}
