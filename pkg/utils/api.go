package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: bad status: %s", e.URL, e.Status)
}

type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{client: &http.Client{Timeout: timeout}, baseURL: baseURL}
}

func (a *API) Get(ctx context.Context, path string, params url.Values, v any) error {
	if params != nil {
		path += "?" + params.Encode()
	}
	target := fmt.Sprintf("%s%s", a.baseURL, path)
	resp, err := a.do(ctx, target, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("couldn't decode %s: %w", target, err)
	}
	return nil
}

// Download fetches target as raw bytes. target is an absolute URL; the base
// URL is not applied.
func (a *API) Download(ctx context.Context, target string) ([]byte, error) {
	resp, err := a.do(ctx, target, "*/*")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("couldn't read %s: %w", target, err)
	}
	return content, nil
}

// do sends a GET and turns any non-2xx answer into a *StatusError.
func (a *API) do(ctx context.Context, target, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	if accept == "application/json" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := a.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &StatusError{URL: target, Code: resp.StatusCode, Status: resp.Status}
	}
	return resp, nil
}
