// Package api holds the HTTP plumbing shared by the metadata clients.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("get %s: unexpected status %d", e.URL, e.Code)
}

// NotFound reports whether the server rejected the resource as unknown.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound || e.Code == http.StatusBadRequest
}

func NewClient(userAgent string) *resty.Client {
	return resty.New().
		SetTimeout(defaultTimeout).
		SetHeader("User-Agent", userAgent)
}

// Source fetches raw documents with a resty client.
type Source struct {
	client *resty.Client
}

var _ ports.DocumentSource = (*Source)(nil)

func NewSource(client *resty.Client) *Source {
	if client == nil {
		client = NewClient("mcli")
	}
	return &Source{client: client}
}

func (s *Source) Fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, domain.Wrap(domain.CategoryAPI, fmt.Errorf("get %s: %w", url, err))
	}
	if resp.IsError() {
		return nil, domain.Wrap(domain.CategoryAPI, &StatusError{URL: url, Code: resp.StatusCode()})
	}
	return resp.Body(), nil
}
