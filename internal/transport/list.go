package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/meridian-coop/backoffice/internal/shared"
	"github.com/meridian-coop/backoffice/internal/table"
)

// listEnvelope is the response shape of every list endpoint. Envelopes may
// carry extra fields per endpoint; these five are what the engine needs.
type listEnvelope[T any] struct {
	Data        []T `json:"data"`
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	LastPage    int `json:"last_page"`
}

// ListSource builds a table fetcher for the list endpoint at path. The
// token callback supplies the current bearer token per request.
func ListSource[T any](c *Client, path string, token func() string) table.Fetcher[T] {
	return func(ctx context.Context, q table.Query) (table.Result[T], error) {
		params := url.Values{}
		params.Set("page", strconv.Itoa(q.Page))
		params.Set("per_page", strconv.Itoa(q.PerPage))
		if q.SortBy != "" {
			params.Set("sort_by", q.SortBy)
			params.Set("sort_order", string(q.SortOrder))
		}
		if q.Search != "" {
			params.Set("search", q.Search)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
		if err != nil {
			return table.Result[T]{}, err
		}
		if token != nil {
			if bearer := token(); bearer != "" {
				req.Header.Set("Authorization", "Bearer "+bearer)
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return table.Result[T]{}, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return table.Result[T]{}, c.failureError(resp)
		}

		var envelope listEnvelope[T]
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			return table.Result[T]{}, fmt.Errorf("%w: decode list response: %v", shared.ErrValidation, err)
		}
		return table.Result[T]{Rows: envelope.Data, Total: envelope.Total}, nil
	}
}
