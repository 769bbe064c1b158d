// Package bridge implements the isolated-context side of the privileged
// bridge. The client can invoke exactly the named operations the host
// serves and nothing else; it holds no ambient authority of its own.
//
// Every call is awaited to completion and every failure — transport,
// encoding, or a non-OK status — degrades to the operation's safe default
// (empty string / false) instead of propagating.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avolkovs/vitrina/internal/bridge"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// GetEnv returns the value of an allow-listed environment variable, or an
// empty string for anything else (including bridge failures).
func (c *Client) GetEnv(ctx context.Context, key string) string {
	var resp bridge.GetEnvResponse
	if err := c.invoke(ctx, bridge.OpGetEnv, bridge.GetEnvRequest{Key: key}, &resp); err != nil {
		return ""
	}
	return resp.Value
}

// SetSecureStorage stores a value in the host's encrypted storage.
// Returns false when encryption is unavailable or the bridge call fails;
// the caller is expected to fall back to plain storage.
func (c *Client) SetSecureStorage(ctx context.Context, key, value string) bool {
	var resp bridge.SetSecureStorageResponse
	if err := c.invoke(ctx, bridge.OpSetSecureStorage,
		bridge.SetSecureStorageRequest{Key: key, Value: value}, &resp); err != nil {
		return false
	}
	return resp.OK
}

// GetSecureStorage retrieves a value from the host's encrypted storage.
// The second return is false when nothing is stored or the call failed.
func (c *Client) GetSecureStorage(ctx context.Context, key string) (string, bool) {
	var resp bridge.GetSecureStorageResponse
	if err := c.invoke(ctx, bridge.OpGetSecureStorage,
		bridge.GetSecureStorageRequest{Key: key}, &resp); err != nil {
		return "", false
	}
	return resp.Value, resp.Found
}

// DeleteSecureStorage removes a value from the host's encrypted storage.
func (c *Client) DeleteSecureStorage(ctx context.Context, key string) bool {
	var resp bridge.DeleteSecureStorageResponse
	if err := c.invoke(ctx, bridge.OpDeleteSecureStorage,
		bridge.DeleteSecureStorageRequest{Key: key}, &resp); err != nil {
		return false
	}
	return resp.OK
}

// GetAppVersion returns the host application version, or "".
func (c *Client) GetAppVersion(ctx context.Context) string {
	var resp bridge.GetAppVersionResponse
	if err := c.invoke(ctx, bridge.OpGetAppVersion, struct{}{}, &resp); err != nil {
		return ""
	}
	return resp.Version
}

// GetAppPath resolves a named well-known host path, or "".
func (c *Client) GetAppPath(ctx context.Context, name string) string {
	var resp bridge.GetAppPathResponse
	if err := c.invoke(ctx, bridge.OpGetAppPath, bridge.GetAppPathRequest{Name: name}, &resp); err != nil {
		return ""
	}
	return resp.Path
}

func (c *Client) invoke(ctx context.Context, op string, req, resp any) error {
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/bridge/"+op, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge op %s: status %s", op, httpResp.Status)
	}

	return json.NewDecoder(httpResp.Body).Decode(resp)
}
