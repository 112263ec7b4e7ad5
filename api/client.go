package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/forumlab/board-contract-tests/framework"
)

// ServiceInfo is the metadata returned by the board service's status
// resource.
type ServiceInfo struct {
	Description  string   `json:"description"`
	Capabilities []string `json:"capabilities"`
}

// Client communicates with the board service. One Client is shared by every
// actor in a test run; credentials are supplied per request via *Session.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      framework.Logger
	serviceInfo ServiceInfo
}

// NewClient creates a Client and verifies that the board service is
// responding by querying its status resource, retrying until the timeout
// elapses. Startup progress is written to startupOutput.
func NewClient(
	baseURL string,
	statusQueryTimeout time.Duration,
	logger framework.Logger,
	startupOutput io.Writer,
) (*Client, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     logger,
	}

	info, err := queryServiceInfo(c.baseURL, statusQueryTimeout, startupOutput)
	if err != nil {
		return nil, err
	}
	c.serviceInfo = info
	return c, nil
}

func queryServiceInfo(baseURL string, timeout time.Duration, output io.Writer) (ServiceInfo, error) {
	fmt.Fprintf(output, "Connecting to board service at %s", baseURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := http.DefaultClient.Get(baseURL + "/")
		if err == nil {
			fmt.Fprintln(output)
			if resp.StatusCode != 200 {
				return ServiceInfo{}, fmt.Errorf("board service returned status code %d", resp.StatusCode)
			}
			respData, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return ServiceInfo{}, err
			}
			var info ServiceInfo
			if err := json.Unmarshal(respData, &info); err != nil {
				return ServiceInfo{}, fmt.Errorf("malformed status response from board service: %s", string(respData))
			}
			fmt.Fprintf(output, "Status query returned metadata: %s\n", string(respData))
			return info, nil
		}
		if !time.Now().Before(deadline) {
			return ServiceInfo{}, fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(time.Millisecond * 100)
	}
}

// ServiceInfo returns the metadata from the initial status query.
func (c *Client) ServiceInfo() ServiceInfo {
	return c.serviceInfo
}

// HasCapability reports whether the service declared the given capability.
func (c *Client) HasCapability(desired string) bool {
	for _, capability := range c.serviceInfo.Capabilities {
		if capability == desired {
			return true
		}
	}
	return false
}

// MissingCapabilities returns the subset of all that the service did not
// declare.
func (c *Client) MissingCapabilities(all []string) []string {
	var ret []string
	for _, capability := range all {
		if !c.HasCapability(capability) {
			ret = append(ret, capability)
		}
	}
	return ret
}

// StopService tells the board service that it should exit.
func (c *Client) StopService() error {
	req, _ := http.NewRequest("DELETE", c.baseURL+"/", nil)
	resp, err := c.httpClient.Do(req)
	if err == nil {
		resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("service returned HTTP %d", resp.StatusCode)
		}
	}
	// An I/O error here is normal if the service quit before responding.
	return nil
}

// do issues one request and decodes a JSON response into out, if out is
// non-nil. There is exactly one attempt: any error, transport or contract,
// is returned as-is to the caller.
func (c *Client) do(
	ctx context.Context,
	method, path string,
	sess *Session,
	query url.Values,
	requestBody interface{},
	out interface{},
) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var bodyReader io.Reader
	var bodyText string
	if requestBody != nil {
		data, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		bodyText = string(data)
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return err
	}
	if requestBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	c.logger.Printf("%s %s %s", method, u, bodyText)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	respData, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return err
	}

	c.logger.Printf("Response (%d): %s", resp.StatusCode, string(respData))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServiceError(resp.StatusCode, respData)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respData, out); err != nil {
		return fmt.Errorf("malformed response body from %s %s: %w", method, path, err)
	}
	return nil
}
