package source

import (
	"context"
	"io"
	"net/http"

	"github.com/poiesic/searchit/core"
	"github.com/tidwall/gjson"
)

// RemoteOption configures a remote source.
type RemoteOption func(*remoteSource)

// WithClient sets the HTTP client used for fetches.
// Default is http.DefaultClient.
func WithClient(client *http.Client) RemoteOption {
	return func(r *remoteSource) {
		if client != nil {
			r.client = client
		}
	}
}

// Remote builds a Fetcher that performs a GET against url and expects a JSON
// array body where each element is a string or a record-shaped object. Non-2xx
// responses and non-array bodies yield a *FetchError carrying the HTTP status.
func Remote(url string, opts ...RemoteOption) (Fetcher, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}
	r := &remoteSource{url: url, client: http.DefaultClient}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type remoteSource struct {
	url    string
	client *http.Client
}

func (r *remoteSource) Fetch(ctx context.Context, query string) ([]core.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, &FetchError{URL: r.url, Err: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: r.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: r.url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: r.url, Status: resp.StatusCode, Err: err}
	}

	items, err := decodeItems(body)
	if err != nil {
		return nil, &FetchError{URL: r.url, Status: resp.StatusCode, Err: err}
	}
	return core.CoerceItems(items)
}

// decodeItems parses a JSON array body into raw items for coercion. Any
// other top-level shape is an error.
func decodeItems(body []byte) ([]any, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrNotJSONArray
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, ErrNotJSONArray
	}
	items, ok := parsed.Value().([]any)
	if !ok {
		return nil, ErrNotJSONArray
	}
	return items, nil
}
