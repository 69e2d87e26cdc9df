package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

type HTTP struct {
	http *http.Client
	url  string
}

func New(url string) *HTTP {
	return &HTTP{
		http: http.DefaultClient,
		url:  url,
	}
}

// Request sends req as a JSON body to path and decodes the JSON reply into
// res. It returns the status code along with any transport, status or
// decoding error.
func (h *HTTP) Request(ctx context.Context, method string, path string, req interface{}, res interface{}) (int, error) {
	var data io.Reader = nil
	if req != nil {
		b, err := json.Marshal(req)
		if err != nil {
			return 0, err
		}
		data = bytes.NewReader(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, h.url+path, data)
	if err != nil {
		return 0, err
	}

	if req != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := h.http.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, err
	}

	if response.StatusCode != http.StatusOK {
		return response.StatusCode, fmt.Errorf("%s %s: %s: %s", method, path, response.Status, bytes.TrimSpace(b))
	}

	if err := json.Unmarshal(b, res); err != nil {
		return response.StatusCode, err
	}

	return response.StatusCode, nil
}
