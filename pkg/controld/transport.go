package controld

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ctrld-tools/controld-go/pkg/util"
)

// endpoint is the shared dispatch for one resource group. Auth and
// accept headers are fixed at construction; every operation is a single
// round trip on the group's http.Client.
type endpoint struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func newEndpoint(httpClient *http.Client, baseURL, token string) *endpoint {
	return &endpoint{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}

// request performs one API round trip and returns the unwrapped "body"
// payload. A nil form means no request body; DELETE with a form still
// sends an URL-encoded body.
func (e *endpoint) request(ctx context.Context, method, path string, query, form url.Values) (json.RawMessage, error) {
	reqURL := e.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.token)
	req.Header.Set("Accept", "application/json")
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	util.WithEndpoint(path).Debugf("%s %s", method, reqURL)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	util.WithFields(map[string]interface{}{
		"endpoint": path,
		"status":   resp.StatusCode,
	}).Debug("response")

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	var envelope struct {
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	return envelope.Body, nil
}

// requestRaw is request without envelope unwrapping, for endpoints that
// return opaque non-JSON payloads.
func (e *endpoint) requestRaw(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := e.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+e.token)

	util.WithEndpoint(path).Debugf("GET %s", reqURL)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newAPIError(resp.StatusCode, raw)
	}

	return raw, nil
}

// decodeItems extracts the keyed array from an unwrapped payload and
// decodes each element. One bad element fails the whole call.
func decodeItems[M any](raw json.RawMessage, key string) ([]M, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	items := payload[key]
	if items == nil {
		return nil, fmt.Errorf("payload has no %q array", key)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(items, &elements); err != nil {
		return nil, fmt.Errorf("decode %q array: %w", key, err)
	}

	out := make([]M, 0, len(elements))
	for i, element := range elements {
		util.Tracef("%s[%d]: %s", key, i, element)

		var m M
		if err := json.Unmarshal(element, &m); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, m)
	}

	return out, nil
}

// decodeObject decodes an unwrapped payload, or a keyed object inside
// it when key is non-empty.
func decodeObject[M any](raw json.RawMessage, key string) (M, error) {
	var m M

	if key != "" {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal(raw, &payload); err != nil {
			return m, fmt.Errorf("decode payload: %w", err)
		}
		if payload[key] == nil {
			return m, fmt.Errorf("payload has no %q object", key)
		}
		raw = payload[key]
	}

	if err := json.Unmarshal(raw, &m); err != nil {
		return m, err
	}
	return m, nil
}
