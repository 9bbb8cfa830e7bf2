package booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWeb3FormsRelay_Submit(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		want := map[string]string{
			"access_key": "secret",
			"subject":    Subject,
			"from_name":  FromName,
			"name":       "Михаил",
			"service":    "haircut",
			"date":       "2026-11-02",
		}
		for k, v := range want {
			if got := r.FormValue(k); got != v {
				t.Errorf("field %s = %q, want %q", k, got, v)
			}
		}
		w.Write([]byte(`{"success":true,"message":"Email sent successfully!"}`))
	}))
	defer server.Close()

	relay := NewWeb3FormsRelay(server.URL, "secret", time.Second)
	resp, err := relay.Submit(context.Background(), validRequest())
	req.NoError(err)
	req.True(resp.Success)
}

func TestWeb3FormsRelay_RefusalIsNotAnError(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Invalid access key"}`))
	}))
	defer server.Close()

	resp, err := NewWeb3FormsRelay(server.URL, "bad", time.Second).Submit(context.Background(), validRequest())
	req.NoError(err)
	req.False(resp.Success)
	req.Equal("Invalid access key", resp.Message)
}

func TestWeb3FormsRelay_Failures(t *testing.T) {
	req := require.New(t)

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`<html>oops</html>`))
	}))
	defer garbage.Close()

	_, err := NewWeb3FormsRelay(garbage.URL, "k", time.Second).Submit(context.Background(), validRequest())
	req.Error(err)

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()

	_, err = NewWeb3FormsRelay(url, "k", time.Second).Submit(context.Background(), validRequest())
	req.Error(err)
}
