// Package store provides a thin HTTP client for the hosted record store.
//
// The backend speaks the PostgREST convention: records live under
// /rest/v1/{collection}, the public key travels in the apikey and
// Authorization headers, and errors come back as JSON
// {"message": "...", "code": "..."}.
//
// Failures are classified into typed kinds (see errors.go) so callers map
// them to HTTP statuses without inspecting message text.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the record store. Safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client for the store at baseURL (e.g.
// "https://abcdefgh.supabase.co") authenticated with the public key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Insert writes a single record into a collection.
func (c *Client) Insert(ctx context.Context, collection string, record any) error {
	body, err := json.Marshal(record)
	if err != nil {
		return &Error{Kind: KindInternal, Msg: fmt.Sprintf("marshal %s record: %v", collection, err)}
	}
	req, err := c.newRequest(ctx, http.MethodPost, collection, "", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")
	_, err = c.do(req)
	return err
}

// SelectRecent reads up to limit records ordered by orderColumn descending
// and unmarshals them into dest (a pointer to a slice).
func (c *Client) SelectRecent(ctx context.Context, collection, orderColumn string, limit int, dest any) error {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", orderColumn+".desc")
	query.Set("limit", fmt.Sprintf("%d", limit))

	req, err := c.newRequest(ctx, http.MethodGet, collection, query.Encode(), nil)
	if err != nil {
		return err
	}
	data, err := c.do(req)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return &Error{Kind: KindInternal, Msg: fmt.Sprintf("unmarshal %s records: %v", collection, err)}
	}
	return nil
}

// ProbeOne reads at most one record from a collection. Used by the health
// check to verify the store answers at all.
func (c *Client) ProbeOne(ctx context.Context, collection string) error {
	query := url.Values{}
	query.Set("select", "id")
	query.Set("limit", "1")

	req, err := c.newRequest(ctx, http.MethodGet, collection, query.Encode(), nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

func (c *Client) newRequest(ctx context.Context, method, collection, rawQuery string, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/rest/v1/" + collection
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Msg: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		if isConnectionError(err) {
			return nil, &Error{Kind: KindUnavailable, Msg: err.Error()}
		}
		return nil, &Error{Kind: KindInternal, Msg: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindInternal, Msg: fmt.Sprintf("read response: %v", err)}
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, classifyResponse(resp.StatusCode, data)
}

// classifyResponse turns a non-2xx store response into a typed Error.
// Classification looks at the HTTP status, the backend error code
// (23505 is Postgres unique_violation), and as a last resort the message
// text, which is the contract the original error mapping relied on.
func classifyResponse(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	_ = json.Unmarshal(body, &payload)
	msg := payload.Message
	if msg == "" {
		msg = fmt.Sprintf("store responded %d", status)
	}

	lower := strings.ToLower(msg)
	switch {
	case status == http.StatusConflict,
		payload.Code == "23505",
		strings.Contains(lower, "duplicate"),
		strings.Contains(lower, "unique"):
		return &Error{Kind: KindConflict, Msg: msg, Code: payload.Code}
	case status == http.StatusServiceUnavailable,
		status == http.StatusBadGateway,
		status == http.StatusGatewayTimeout,
		strings.Contains(lower, "connect"):
		return &Error{Kind: KindUnavailable, Msg: msg, Code: payload.Code}
	default:
		return &Error{Kind: KindInternal, Msg: msg, Code: payload.Code}
	}
}

func isConnectionError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	// url.Error wraps the dial failure; fall back to its text
	return strings.Contains(strings.ToLower(err.Error()), "connect")
}
